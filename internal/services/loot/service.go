package loot

//go:generate mockgen -destination=mock/mock_service.go -package=mockloot -source=service.go

import (
	"context"

	"github.com/ntuteepl/finalterm-LuoJuneChi/internal/dice"
	"github.com/ntuteepl/finalterm-LuoJuneChi/internal/entities"
	rpgerr "github.com/ntuteepl/finalterm-LuoJuneChi/internal/errors"
	"github.com/ntuteepl/finalterm-LuoJuneChi/internal/events"
	"go.uber.org/zap"
)

// ItemKinds is the size of the item table. Only the first entry holds an
// item, so most draws come up empty.
const ItemKinds = 3

// Service defines the loot service interface
type Service interface {
	// GenerateItem draws from the item table. A nil item means nothing was found.
	GenerateItem(ctx context.Context) (entities.Item, error)

	// DropItem generates an item and announces what was found
	DropItem(ctx context.Context) (entities.Item, error)

	// UseItem applies an item to a character and returns the effect applied
	UseItem(ctx context.Context, item entities.Item, character *entities.Character) (int, error)
}

type service struct {
	roller dice.Roller
	events events.Emitter
	logger *zap.Logger
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Roller dice.Roller
	Events events.Emitter // Optional - events are dropped if nil
	Logger *zap.Logger
}

// NewService creates a new loot service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil || cfg.Roller == nil {
		panic("dice roller is required")
	}

	svc := &service{
		roller: cfg.Roller,
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

// GenerateItem draws from the item table
func (s *service) GenerateItem(ctx context.Context) (entities.Item, error) {
	roll, err := dice.Between(s.roller, 1, ItemKinds)
	if err != nil {
		return nil, rpgerr.Wrap(err, "failed to roll for item")
	}

	s.logger.Debug("item table roll", zap.Int("roll", roll))

	if roll == 1 {
		return entities.NewHealthPotion(), nil
	}
	return nil, nil
}

// DropItem generates an item and emits item_dropped or nothing_dropped
func (s *service) DropItem(ctx context.Context) (entities.Item, error) {
	item, err := s.GenerateItem(ctx)
	if err != nil {
		return nil, err
	}

	eventType := events.EventTypeNothingDropped
	if item != nil {
		eventType = events.EventTypeItemDropped
	}

	if err := s.events.Emit(events.NewLootEvent(eventType, item)); err != nil {
		return nil, rpgerr.Wrapf(err, "failed to emit %s", eventType)
	}

	return item, nil
}

// UseItem applies the item and emits item_used
func (s *service) UseItem(ctx context.Context, item entities.Item, character *entities.Character) (int, error) {
	if item == nil {
		return 0, rpgerr.InvalidArgument("item cannot be nil")
	}
	if character == nil {
		return 0, rpgerr.InvalidArgument("character cannot be nil")
	}

	applied := item.Use(character)
	s.logger.Info("item used",
		zap.String("item", item.GetName()),
		zap.String("character", character.Name),
		zap.Int("applied", applied))

	event := events.NewLootEvent(events.EventTypeItemUsed, item)
	event.Character = character
	event.Applied = applied
	if err := s.events.Emit(event); err != nil {
		return applied, rpgerr.Wrapf(err, "failed to emit %s", events.EventTypeItemUsed)
	}

	return applied, nil
}
