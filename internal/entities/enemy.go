package entities

import "fmt"

// Enemy is the single monster of an encounter. It is never healed.
type Enemy struct {
	Name             string `json:"name"`
	CurrentHitPoints int    `json:"current_hit_points"`
	Attack           int    `json:"attack"`
}

// NewEnemy creates an enemy
func NewEnemy(name string, hitPoints, attack int) *Enemy {
	return &Enemy{
		Name:             name,
		CurrentHitPoints: hitPoints,
		Attack:           attack,
	}
}

// TakeDamage lowers hit points, never below zero, and returns the
// amount actually lost
func (e *Enemy) TakeDamage(amount int) int {
	if amount < 0 {
		amount = 0
	}

	before := e.CurrentHitPoints
	e.CurrentHitPoints -= amount
	if e.CurrentHitPoints < 0 {
		e.CurrentHitPoints = 0
	}
	return before - e.CurrentHitPoints
}

// IsDefeated reports whether the enemy has no hit points left
func (e *Enemy) IsDefeated() bool {
	return e.CurrentHitPoints <= 0
}

func (e *Enemy) String() string {
	return fmt.Sprintf("Enemy: %s, HP: %d, Attack: %d", e.Name, e.CurrentHitPoints, e.Attack)
}
