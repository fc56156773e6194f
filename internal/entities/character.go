package entities

import (
	"fmt"
	"strings"
)

const (
	// MaxHitPoints caps every character's hit points
	MaxHitPoints = 100

	// ExperienceFactor scales the level-up threshold: level² × ExperienceFactor
	ExperienceFactor = 10
)

// Character is a hero taking part in the battle
type Character struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Class            Class  `json:"class"`
	Level            int    `json:"level"`
	Power            int    `json:"power"`
	Knowledge        int    `json:"knowledge"`
	Luck             int    `json:"luck"`
	Experience       int    `json:"experience"`
	CurrentHitPoints int    `json:"current_hit_points"`
}

// NewCharacter creates a full-health character whose attributes are
// derived from the level and the class growth
func NewCharacter(name string, class Class, level int) *Character {
	if level < 1 {
		level = 1
	}

	growth := class.Growth()
	return &Character{
		Name:             name,
		Class:            class,
		Level:            level,
		Power:            level * growth.Power,
		Knowledge:        level * growth.Knowledge,
		Luck:             level * growth.Luck,
		CurrentHitPoints: MaxHitPoints,
	}
}

// ExperienceThreshold is the experience needed to leave the given level
func ExperienceThreshold(level int) int {
	return level * level * ExperienceFactor
}

// TakeDamage lowers hit points, never below zero, and returns the
// amount actually lost
func (c *Character) TakeDamage(amount int) int {
	if amount < 0 {
		amount = 0
	}

	before := c.CurrentHitPoints
	c.CurrentHitPoints = clamp(c.CurrentHitPoints-amount, 0, MaxHitPoints)
	return before - c.CurrentHitPoints
}

// Heal raises hit points up to MaxHitPoints and returns the amount restored
func (c *Character) Heal(amount int) int {
	if amount < 0 {
		amount = 0
	}

	before := c.CurrentHitPoints
	c.CurrentHitPoints = clamp(c.CurrentHitPoints+amount, 0, MaxHitPoints)
	return c.CurrentHitPoints - before
}

// GainExperience adds experience and levels up with the class growth for
// as long as the threshold is met. It returns every level reached, in order.
func (c *Character) GainExperience(amount int) []int {
	if amount > 0 {
		c.Experience += amount
	}

	var reached []int
	growth := c.Class.Growth()
	for c.Experience >= ExperienceThreshold(c.Level) {
		c.levelUp(growth)
		reached = append(reached, c.Level)
	}

	return reached
}

func (c *Character) levelUp(growth Growth) {
	c.Level++
	c.Power += growth.Power
	c.Knowledge += growth.Knowledge
	c.Luck += growth.Luck
}

// String renders the status line printed at the start of the battle
func (c *Character) String() string {
	msg := strings.Builder{}
	if title := c.Class.Title(); title != "" {
		msg.WriteString(title)
		msg.WriteString(" ")
	}
	msg.WriteString(fmt.Sprintf("Name: %s, Level: %d, Power: %d, Knowledge: %d, Luck: %d, Exp: %d, HP: %d",
		c.Name, c.Level, c.Power, c.Knowledge, c.Luck, c.Experience, c.CurrentHitPoints))

	return msg.String()
}

func clamp(v, low, high int) int {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}
