package entities

import "fmt"

// Item is something a character can use on themselves
type Item interface {
	GetName() string
	// Use applies the item and returns the effect actually applied
	Use(character *Character) int
	String() string
}

// HealthPotionRestore is how many hit points a health potion restores
const HealthPotionRestore = 20

// HealthPotion restores a fixed amount of hit points
type HealthPotion struct {
	Name    string
	Restore int
}

// NewHealthPotion creates a standard health potion
func NewHealthPotion() *HealthPotion {
	return &HealthPotion{
		Name:    "Health Potion",
		Restore: HealthPotionRestore,
	}
}

func (p *HealthPotion) GetName() string { return p.Name }

// Use heals the character, capped at MaxHitPoints
func (p *HealthPotion) Use(character *Character) int {
	return character.Heal(p.Restore)
}

func (p *HealthPotion) String() string {
	return fmt.Sprintf("Item: %s", p.Name)
}
