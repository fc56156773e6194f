package battle

import "github.com/ntuteepl/finalterm-LuoJuneChi/internal/entities"

// HeroSpec describes one hero of the party and the experience it earns
// when the enemy falls
type HeroSpec struct {
	Name   string
	Class  entities.Class
	Level  int
	Reward int
}

// EnemySpec describes the enemy the party faces
type EnemySpec struct {
	Name      string
	HitPoints int
	Attack    int
}

// Scenario fixes who fights. The order of play is not configurable.
type Scenario struct {
	Warrior HeroSpec
	Wizard  HeroSpec
	Archer  HeroSpec
	Enemy   EnemySpec
}

// DefaultScenario is the goblin skirmish
func DefaultScenario() *Scenario {
	return &Scenario{
		Warrior: HeroSpec{Name: "Alice", Class: entities.ClassWarrior, Level: 10, Reward: 200},
		Wizard:  HeroSpec{Name: "Sophie", Class: entities.ClassWizard, Level: 8, Reward: 150},
		Archer:  HeroSpec{Name: "Robin", Class: entities.ClassArcher, Level: 9, Reward: 180},
		Enemy:   EnemySpec{Name: "Goblin", HitPoints: 50, Attack: 15},
	}
}

func (s *Scenario) heroes() []HeroSpec {
	return []HeroSpec{s.Warrior, s.Wizard, s.Archer}
}
