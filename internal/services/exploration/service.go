package exploration

//go:generate mockgen -destination=mock/mock_service.go -package=mockexploration -source=service.go

import (
	"context"

	"github.com/ntuteepl/finalterm-LuoJuneChi/internal/dice"
	"github.com/ntuteepl/finalterm-LuoJuneChi/internal/entities"
	rpgerr "github.com/ntuteepl/finalterm-LuoJuneChi/internal/errors"
	"github.com/ntuteepl/finalterm-LuoJuneChi/internal/events"
	"github.com/ntuteepl/finalterm-LuoJuneChi/internal/services/loot"
	"go.uber.org/zap"
)

// Event table bounds on a d100
const (
	TreasureMax = 30
	TrapMax     = 60

	TrapDamageMin = 10
	TrapDamageMax = 30
)

// OutcomeKind identifies which row of the event table was rolled
type OutcomeKind string

const (
	OutcomeTreasure   OutcomeKind = "treasure"
	OutcomeTrap       OutcomeKind = "trap"
	OutcomeUneventful OutcomeKind = "uneventful"
)

// Outcome describes what a random event did to a character
type Outcome struct {
	Kind   OutcomeKind
	Roll   int
	Damage int           // trap damage rolled
	Item   entities.Item // treasure drop, nil when the chest was empty
}

// Service defines the exploration service interface
type Service interface {
	// RandomEvent rolls on the event table for a character and applies the result
	RandomEvent(ctx context.Context, character *entities.Character) (*Outcome, error)
}

type service struct {
	roller dice.Roller
	loot   loot.Service
	events events.Emitter
	logger *zap.Logger
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Roller      dice.Roller
	LootService loot.Service
	Events      events.Emitter
	Logger      *zap.Logger
}

// NewService creates a new exploration service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil || cfg.Roller == nil {
		panic("dice roller is required")
	}
	if cfg.LootService == nil {
		panic("loot service is required")
	}

	svc := &service{
		roller: cfg.Roller,
		loot:   cfg.LootService,
		events: cfg.Events,
		logger: cfg.Logger,
	}
	if svc.events == nil {
		svc.events = events.NewBus(cfg.Logger)
	}
	if svc.logger == nil {
		svc.logger = zap.NewNop()
	}

	return svc
}

// RandomEvent draws a d100: 1-30 treasure, 31-60 trap, 61-100 nothing
func (s *service) RandomEvent(ctx context.Context, character *entities.Character) (*Outcome, error) {
	if character == nil {
		return nil, rpgerr.InvalidArgument("character cannot be nil")
	}

	roll, err := dice.Between(s.roller, 1, 100)
	if err != nil {
		return nil, rpgerr.Wrap(err, "failed to roll random event")
	}

	var outcome *Outcome
	switch {
	case roll <= TreasureMax:
		outcome, err = s.treasure(ctx, character, roll)
	case roll <= TrapMax:
		outcome, err = s.trap(character, roll)
	default:
		outcome = &Outcome{Kind: OutcomeUneventful, Roll: roll}
		err = s.emit(events.NewExplorationEvent(events.EventTypeUneventful, character, roll))
	}
	if err != nil {
		return nil, err
	}

	s.logger.Debug("random event",
		zap.String("character", character.Name),
		zap.Int("roll", roll),
		zap.String("outcome", string(outcome.Kind)))

	return outcome, nil
}

func (s *service) treasure(ctx context.Context, character *entities.Character, roll int) (*Outcome, error) {
	if err := s.emit(events.NewExplorationEvent(events.EventTypeTreasureFound, character, roll)); err != nil {
		return nil, err
	}

	item, err := s.loot.DropItem(ctx)
	if err != nil {
		return nil, rpgerr.Wrap(err, "failed to open treasure chest")
	}

	return &Outcome{Kind: OutcomeTreasure, Roll: roll, Item: item}, nil
}

func (s *service) trap(character *entities.Character, roll int) (*Outcome, error) {
	damage, err := dice.Between(s.roller, TrapDamageMin, TrapDamageMax)
	if err != nil {
		return nil, rpgerr.Wrap(err, "failed to roll trap damage")
	}

	character.TakeDamage(damage)

	event := events.NewExplorationEvent(events.EventTypeTrapSprung, character, roll)
	event.Damage = damage
	if err := s.emit(event); err != nil {
		return nil, err
	}

	return &Outcome{Kind: OutcomeTrap, Roll: roll, Damage: damage}, nil
}

func (s *service) emit(event events.Event) error {
	if err := s.events.Emit(event); err != nil {
		return rpgerr.Wrapf(err, "failed to emit %s", event.GetType())
	}
	return nil
}
