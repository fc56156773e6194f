package combat

//go:generate mockgen -destination=mock/mock_service.go -package=mockcombat -source=service.go

import (
	"context"

	"github.com/ntuteepl/finalterm-LuoJuneChi/internal/dice"
	"github.com/ntuteepl/finalterm-LuoJuneChi/internal/entities"
	rpgerr "github.com/ntuteepl/finalterm-LuoJuneChi/internal/errors"
	"github.com/ntuteepl/finalterm-LuoJuneChi/internal/events"
	"github.com/ntuteepl/finalterm-LuoJuneChi/internal/services/exploration"
	"go.uber.org/zap"
)

const (
	// EnemyDamageSpread is how far an enemy hit strays from its base attack
	EnemyDamageSpread = 5

	// CriticalChance is the highest d100 roll that makes a melee critical
	CriticalChance = 20

	// CriticalMultiplier scales melee damage on a critical
	CriticalMultiplier = 2

	// RangedAccuracy is the highest d100 roll that lands an arrow
	RangedAccuracy = 85
)

// Service defines the combat service interface
type Service interface {
	// EnemyAttack rolls the enemy's damage and applies it to the character
	EnemyAttack(ctx context.Context, enemy *entities.Enemy, target *entities.Character) (int, error)

	// Attack resolves the character's class attack against the enemy, then
	// rolls a random event for the attacker
	Attack(ctx context.Context, attacker *entities.Character, enemy *entities.Enemy) (*AttackResult, error)

	// AwardExperience grants experience for a defeated monster and returns the levels reached
	AwardExperience(ctx context.Context, character *entities.Character, experience int) ([]int, error)
}

// AttackResult is the outcome of a hero attack
type AttackResult struct {
	Roll     int
	Damage   int
	Critical bool
	Hit      bool
	Event    *exploration.Outcome // random event that followed the attack
}

type service struct {
	roller      dice.Roller
	exploration exploration.Service
	events      events.Emitter
	logger      *zap.Logger
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Roller             dice.Roller
	ExplorationService exploration.Service
	Events             events.Emitter
	Logger             *zap.Logger
}

// NewService creates a new combat service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil || cfg.Roller == nil {
		panic("dice roller is required")
	}
	if cfg.ExplorationService == nil {
		panic("exploration service is required")
	}

	svc := &service{
		roller:      cfg.Roller,
		exploration: cfg.ExplorationService,
		events:      cfg.Events,
		logger:      cfg.Logger,
	}
	if svc.events == nil {
		svc.events = events.NewBus(cfg.Logger)
	}
	if svc.logger == nil {
		svc.logger = zap.NewNop()
	}

	return svc
}

// EnemyAttack deals attack±5 damage to the target
func (s *service) EnemyAttack(ctx context.Context, enemy *entities.Enemy, target *entities.Character) (int, error) {
	if enemy == nil {
		return 0, rpgerr.InvalidArgument("enemy cannot be nil")
	}
	if target == nil {
		return 0, rpgerr.InvalidArgument("target cannot be nil")
	}

	damage, err := dice.Between(s.roller, enemy.Attack-EnemyDamageSpread, enemy.Attack+EnemyDamageSpread)
	if err != nil {
		return 0, rpgerr.Wrapf(err, "failed to roll damage for %s", enemy.Name)
	}

	event := events.NewAttackEvent(events.EventTypeEnemyAttack, enemy.Name, target.Name)
	event.Damage = damage
	if err := s.emit(event); err != nil {
		return 0, err
	}

	target.TakeDamage(damage)

	s.logger.Debug("enemy attack",
		zap.String("enemy", enemy.Name),
		zap.String("target", target.Name),
		zap.Int("damage", damage),
		zap.Int("target_hp", target.CurrentHitPoints))

	return damage, nil
}

// Attack dispatches on the attacker's class. Only warriors and archers
// have an attack; other classes get an Unimplemented error and roll nothing.
func (s *service) Attack(ctx context.Context, attacker *entities.Character, enemy *entities.Enemy) (*AttackResult, error) {
	if attacker == nil {
		return nil, rpgerr.InvalidArgument("attacker cannot be nil")
	}
	if enemy == nil {
		return nil, rpgerr.InvalidArgument("enemy cannot be nil")
	}

	var (
		result *AttackResult
		err    error
	)
	switch attacker.Class {
	case entities.ClassWarrior:
		result, err = s.meleeAttack(attacker, enemy)
	case entities.ClassArcher:
		result, err = s.rangedAttack(attacker, enemy)
	default:
		return nil, rpgerr.Unimplementedf("%s has no attack", attacker.Class).
			WithMeta("character", attacker.Name)
	}
	if err != nil {
		return nil, err
	}

	s.logger.Debug("hero attack",
		zap.String("attacker", attacker.Name),
		zap.String("class", string(attacker.Class)),
		zap.Int("roll", result.Roll),
		zap.Bool("hit", result.Hit),
		zap.Bool("critical", result.Critical),
		zap.Int("damage", result.Damage),
		zap.Int("enemy_hp", enemy.CurrentHitPoints))

	result.Event, err = s.exploration.RandomEvent(ctx, attacker)
	if err != nil {
		return nil, rpgerr.Wrapf(err, "random event after %s attack failed", attacker.Name)
	}

	return result, nil
}

func (s *service) meleeAttack(attacker *entities.Character, enemy *entities.Enemy) (*AttackResult, error) {
	roll, err := dice.Between(s.roller, 1, 100)
	if err != nil {
		return nil, rpgerr.Wrap(err, "failed to roll melee attack")
	}

	result := &AttackResult{
		Roll:     roll,
		Damage:   attacker.Power,
		Critical: roll <= CriticalChance,
		Hit:      true,
	}

	if result.Critical {
		result.Damage *= CriticalMultiplier
		crit := events.NewAttackEvent(events.EventTypeCriticalHit, attacker.Name, enemy.Name)
		crit.Roll = roll
		crit.Critical = true
		if err := s.emit(crit); err != nil {
			return nil, err
		}
	}

	enemy.TakeDamage(result.Damage)

	hit := events.NewAttackEvent(events.EventTypeMeleeHit, attacker.Name, enemy.Name)
	hit.Roll = roll
	hit.Damage = result.Damage
	hit.Critical = result.Critical
	if err := s.emit(hit); err != nil {
		return nil, err
	}

	return result, nil
}

func (s *service) rangedAttack(attacker *entities.Character, enemy *entities.Enemy) (*AttackResult, error) {
	roll, err := dice.Between(s.roller, 1, 100)
	if err != nil {
		return nil, rpgerr.Wrap(err, "failed to roll ranged attack")
	}

	result := &AttackResult{Roll: roll, Hit: roll <= RangedAccuracy}

	eventType := events.EventTypeRangedMiss
	if result.Hit {
		eventType = events.EventTypeRangedHit
		result.Damage = attacker.Power
	}

	event := events.NewAttackEvent(eventType, attacker.Name, enemy.Name)
	event.Roll = roll
	event.Damage = result.Damage
	if err := s.emit(event); err != nil {
		return nil, err
	}

	if result.Hit {
		enemy.TakeDamage(result.Damage)
	}

	return result, nil
}

// AwardExperience adds experience, levels the character with its class
// growth and emits one level_up per level gained
func (s *service) AwardExperience(ctx context.Context, character *entities.Character, experience int) ([]int, error) {
	if character == nil {
		return nil, rpgerr.InvalidArgument("character cannot be nil")
	}
	if experience < 0 {
		return nil, rpgerr.InvalidArgumentf("experience must not be negative, got %d", experience)
	}

	reached := character.GainExperience(experience)
	for _, level := range reached {
		if err := s.emit(events.NewLevelUpEvent(character, level)); err != nil {
			return reached, err
		}
	}

	s.logger.Info("experience awarded",
		zap.String("character", character.Name),
		zap.Int("experience", experience),
		zap.Int("level", character.Level))

	return reached, nil
}

func (s *service) emit(event events.Event) error {
	if err := s.events.Emit(event); err != nil {
		return rpgerr.Wrapf(err, "failed to emit %s", event.GetType())
	}
	return nil
}
