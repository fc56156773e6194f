package battle

import (
	"context"
	"fmt"

	"github.com/ntuteepl/finalterm-LuoJuneChi/internal/entities"
	rpgerr "github.com/ntuteepl/finalterm-LuoJuneChi/internal/errors"
	"github.com/ntuteepl/finalterm-LuoJuneChi/internal/services/character"
	"github.com/ntuteepl/finalterm-LuoJuneChi/internal/services/combat"
	"github.com/ntuteepl/finalterm-LuoJuneChi/internal/services/exploration"
	"github.com/ntuteepl/finalterm-LuoJuneChi/internal/services/loot"
	"go.uber.org/zap"
)

const (
	gatheringLine = "Our heroes gather, their hearts resolute as they face their foe."
	beginLine     = "\n--- The Battle Begins ---"
	fallLine      = "With a final blow, the %s falls!"
	retreatLine   = "The %s, though wounded, retreats into the shadows."
	closingLine   = "\nThe battle is over, but the journey continues..."
)

// Narrator prints the scripted lines that are not tied to an event
type Narrator interface {
	Say(format string, args ...any) error
	Status(subjects ...fmt.Stringer) error
}

// Service runs the battle script
type Service interface {
	// Run plays the whole battle once
	Run(ctx context.Context) (*Result, error)
}

// Result is the state of the field when the script ends
type Result struct {
	Heroes  []*entities.Character // warrior, wizard, archer
	Enemy   *entities.Enemy
	Victory bool
	Drop    entities.Item // item left by the fallen enemy, if any
}

type service struct {
	scenario    *Scenario
	characters  character.Service
	combat      combat.Service
	exploration exploration.Service
	loot        loot.Service
	narrator    Narrator
	logger      *zap.Logger
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Scenario           *Scenario // Optional - DefaultScenario if nil
	CharacterService   character.Service
	CombatService      combat.Service
	ExplorationService exploration.Service
	LootService        loot.Service
	Narrator           Narrator
	Logger             *zap.Logger
}

// NewService creates a new battle service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		panic("config is required")
	}
	if cfg.CharacterService == nil {
		panic("character service is required")
	}
	if cfg.CombatService == nil {
		panic("combat service is required")
	}
	if cfg.ExplorationService == nil {
		panic("exploration service is required")
	}
	if cfg.LootService == nil {
		panic("loot service is required")
	}
	if cfg.Narrator == nil {
		panic("narrator is required")
	}

	svc := &service{
		scenario:    cfg.Scenario,
		characters:  cfg.CharacterService,
		combat:      cfg.CombatService,
		exploration: cfg.ExplorationService,
		loot:        cfg.LootService,
		narrator:    cfg.Narrator,
		logger:      cfg.Logger,
	}
	if svc.scenario == nil {
		svc.scenario = DefaultScenario()
	}
	if svc.logger == nil {
		svc.logger = zap.NewNop()
	}

	return svc
}

// Run plays the fixed sequence: each hero in turn is attacked, meets a
// random event and, if it has an attack, strikes back. The wizard never
// strikes back.
func (s *service) Run(ctx context.Context) (*Result, error) {
	party, err := s.assemble(ctx)
	if err != nil {
		return nil, err
	}
	warrior, wizard, archer := party[0], party[1], party[2]

	enemySpec := s.scenario.Enemy
	enemy := entities.NewEnemy(enemySpec.Name, enemySpec.HitPoints, enemySpec.Attack)
	result := &Result{Heroes: party, Enemy: enemy}

	s.logger.Info("battle started",
		zap.String("enemy", enemy.Name),
		zap.Int("enemy_hp", enemy.CurrentHitPoints))

	if err := s.narrator.Say(gatheringLine); err != nil {
		return nil, err
	}
	if err := s.narrator.Status(warrior, wizard, archer, enemy); err != nil {
		return nil, err
	}
	if err := s.narrator.Say(beginLine); err != nil {
		return nil, err
	}

	if err := s.turn(ctx, warrior, enemy, true); err != nil {
		return nil, err
	}
	if err := s.turn(ctx, wizard, enemy, false); err != nil {
		return nil, err
	}
	if err := s.turn(ctx, archer, enemy, true); err != nil {
		return nil, err
	}

	if enemy.IsDefeated() {
		result.Victory = true
		if err := s.victory(ctx, result); err != nil {
			return nil, err
		}
	} else if err := s.narrator.Say(retreatLine, enemy.Name); err != nil {
		return nil, err
	}

	for _, hero := range party {
		if err := s.characters.Save(ctx, hero); err != nil {
			return nil, err
		}
	}

	if err := s.narrator.Say(closingLine); err != nil {
		return nil, err
	}

	s.logger.Info("battle finished",
		zap.Bool("victory", result.Victory),
		zap.Int("enemy_hp", enemy.CurrentHitPoints))

	return result, nil
}

func (s *service) assemble(ctx context.Context) ([]*entities.Character, error) {
	specs := s.scenario.heroes()
	party := make([]*entities.Character, 0, len(specs))

	for _, spec := range specs {
		hero, err := s.characters.Register(ctx, &character.RegisterInput{
			Name:  spec.Name,
			Class: spec.Class,
			Level: spec.Level,
		})
		if err != nil {
			return nil, rpgerr.Wrapf(err, "failed to register %s", spec.Name)
		}
		party = append(party, hero)
	}

	return party, nil
}

func (s *service) turn(ctx context.Context, hero *entities.Character, enemy *entities.Enemy, strikesBack bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, err := s.combat.EnemyAttack(ctx, enemy, hero); err != nil {
		return rpgerr.Wrapf(err, "%s attack on %s failed", enemy.Name, hero.Name)
	}
	if _, err := s.exploration.RandomEvent(ctx, hero); err != nil {
		return rpgerr.Wrapf(err, "random event for %s failed", hero.Name)
	}
	if !strikesBack {
		return nil
	}
	if _, err := s.combat.Attack(ctx, hero, enemy); err != nil {
		return rpgerr.Wrapf(err, "%s attack failed", hero.Name)
	}

	return nil
}

func (s *service) victory(ctx context.Context, result *Result) error {
	if err := s.narrator.Say(fallLine, result.Enemy.Name); err != nil {
		return err
	}

	for i, spec := range s.scenario.heroes() {
		if _, err := s.combat.AwardExperience(ctx, result.Heroes[i], spec.Reward); err != nil {
			return rpgerr.Wrapf(err, "failed to reward %s", spec.Name)
		}
	}

	drop, err := s.loot.DropItem(ctx)
	if err != nil {
		return rpgerr.Wrap(err, "failed to drop loot")
	}
	result.Drop = drop

	return nil
}
