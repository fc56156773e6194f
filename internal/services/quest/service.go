package quest

import (
	"context"

	"github.com/ntuteepl/finalterm-LuoJuneChi/internal/dice"
	"github.com/ntuteepl/finalterm-LuoJuneChi/internal/entities"
	rpgerr "github.com/ntuteepl/finalterm-LuoJuneChi/internal/errors"
	"github.com/ntuteepl/finalterm-LuoJuneChi/internal/events"
	"go.uber.org/zap"
)

// Reward bounds for a completed quest
const (
	RewardMin = 50
	RewardMax = 150
)

// Service completes quests. The battle script does not use it.
type Service interface {
	// Complete marks the quest done and returns the rolled experience reward.
	// The reward is announced, not granted to anyone.
	Complete(ctx context.Context, quest *entities.Quest) (int, error)
}

type service struct {
	roller dice.Roller
	events events.Emitter
	logger *zap.Logger
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Roller dice.Roller
	Events events.Emitter
	Logger *zap.Logger
}

// NewService creates a new quest service
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

func (s *service) Complete(ctx context.Context, quest *entities.Quest) (int, error) {
	if quest == nil {
		return 0, rpgerr.InvalidArgument("quest cannot be nil")
	}
	if quest.Completed {
		return 0, rpgerr.AlreadyExistsf("quest %q is already complete", quest.Description)
	}

	reward, err := dice.Between(s.roller, RewardMin, RewardMax)
	if err != nil {
		return 0, rpgerr.Wrap(err, "failed to roll quest reward")
	}

	quest.Complete(reward)
	s.logger.Info("quest completed",
		zap.String("quest", quest.Description),
		zap.Int("reward", reward))

	if err := s.events.Emit(events.NewQuestCompletedEvent(quest, reward)); err != nil {
		return reward, rpgerr.Wrapf(err, "failed to emit %s", events.EventTypeQuestCompleted)
	}

	return reward, nil
}
