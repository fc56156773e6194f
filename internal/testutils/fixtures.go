package testutils

import (
	"github.com/ntuteepl/finalterm-LuoJuneChi/internal/entities"
)

// CreateTestHero creates a hero with a fixed ID
func CreateTestHero(id, name string, class entities.Class, level int) *entities.Character {
	hero := entities.NewCharacter(name, class, level)
	hero.ID = id
	return hero
}

// CreateTestParty returns the three heroes of the scripted battle
func CreateTestParty() []*entities.Character {
	return []*entities.Character{
		CreateTestHero("hero-alice", "Alice", entities.ClassWarrior, 10),
		CreateTestHero("hero-sophie", "Sophie", entities.ClassWizard, 8),
		CreateTestHero("hero-robin", "Robin", entities.ClassArcher, 9),
	}
}

// CreateTestGoblin returns the goblin of the scripted battle
func CreateTestGoblin() *entities.Enemy {
	return entities.NewEnemy("Goblin", 50, 15)
}
