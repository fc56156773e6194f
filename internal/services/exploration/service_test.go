package exploration_test

import (
	"context"
	"errors"
	"testing"

	mockdice "github.com/ntuteepl/finalterm-LuoJuneChi/internal/dice/mock"
	"github.com/ntuteepl/finalterm-LuoJuneChi/internal/entities"
	rpgerr "github.com/ntuteepl/finalterm-LuoJuneChi/internal/errors"
	"github.com/ntuteepl/finalterm-LuoJuneChi/internal/events"
	"github.com/ntuteepl/finalterm-LuoJuneChi/internal/services/exploration"
	mockloot "github.com/ntuteepl/finalterm-LuoJuneChi/internal/services/loot/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ExplorationTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	roller   *mockdice.ManualMockRoller
	loot     *mockloot.MockService
	bus      *events.Bus
	received []events.Event
	svc      exploration.Service
	hero     *entities.Character
}

func (s *ExplorationTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.roller = mockdice.NewManualMockRoller()
	s.loot = mockloot.NewMockService(s.ctrl)
	s.bus = events.NewBus(nil)
	s.received = nil
	s.bus.SubscribeAll(&captureListener{suite: s})
	s.svc = exploration.NewService(&exploration.ServiceConfig{
		Roller:      s.roller,
		LootService: s.loot,
		Events:      s.bus,
	})
	s.hero = entities.NewCharacter("Alice", entities.ClassWarrior, 10)
}

func TestExplorationTestSuite(t *testing.T) {
	suite.Run(t, new(ExplorationTestSuite))
}

type captureListener struct {
	suite *ExplorationTestSuite
}

func (c *captureListener) HandleEvent(e events.Event) error {
	c.suite.received = append(c.suite.received, e)
	return nil
}
func (c *captureListener) Priority() int { return 0 }
func (c *captureListener) ID() string    { return "capture" }

func (s *ExplorationTestSuite) TestTreasureRange() {
	for _, roll := range []int{1, 15, 30} {
		s.received = nil
		s.roller.SetTotals(roll)
		potion := entities.NewHealthPotion()
		s.loot.EXPECT().DropItem(gomock.Any()).Return(potion, nil)

		outcome, err := s.svc.RandomEvent(context.Background(), s.hero)
		s.Require().NoError(err)

		s.Equal(exploration.OutcomeTreasure, outcome.Kind)
		s.Equal(roll, outcome.Roll)
		s.Equal(potion, outcome.Item)
		s.Require().Len(s.received, 1)
		s.Equal(events.EventTypeTreasureFound, s.received[0].GetType())
		s.Equal(entities.MaxHitPoints, s.hero.CurrentHitPoints)
	}
}

func (s *ExplorationTestSuite) TestTrapRange() {
	for _, roll := range []int{31, 45, 60} {
		s.received = nil
		s.hero.CurrentHitPoints = entities.MaxHitPoints
		s.roller.SetTotals(roll, 22)

		outcome, err := s.svc.RandomEvent(context.Background(), s.hero)
		s.Require().NoError(err)

		s.Equal(exploration.OutcomeTrap, outcome.Kind)
		s.Equal(22, outcome.Damage)
		s.Equal(78, s.hero.CurrentHitPoints)
		s.Require().Len(s.received, 1)
		trap := s.received[0].(*events.ExplorationEvent)
		s.Equal(events.EventTypeTrapSprung, trap.GetType())
		s.Equal(22, trap.Damage)
	}
}

func (s *ExplorationTestSuite) TestTrapFloorsHitPoints() {
	s.hero.CurrentHitPoints = 15
	s.roller.SetTotals(40, 30)

	outcome, err := s.svc.RandomEvent(context.Background(), s.hero)
	s.Require().NoError(err)

	s.Equal(30, outcome.Damage)
	s.Equal(0, s.hero.CurrentHitPoints)
}

func (s *ExplorationTestSuite) TestUneventfulRange() {
	for _, roll := range []int{61, 80, 100} {
		s.received = nil
		s.roller.SetTotals(roll)

		outcome, err := s.svc.RandomEvent(context.Background(), s.hero)
		s.Require().NoError(err)

		s.Equal(exploration.OutcomeUneventful, outcome.Kind)
		s.Require().Len(s.received, 1)
		s.Equal(events.EventTypeUneventful, s.received[0].GetType())
	}
}

func (s *ExplorationTestSuite) TestLootFailure() {
	s.roller.SetTotals(5)
	s.loot.EXPECT().DropItem(gomock.Any()).Return(nil, errors.New("roller jammed"))

	_, err := s.svc.RandomEvent(context.Background(), s.hero)
	s.Error(err)
	s.Contains(err.Error(), "roller jammed")
}

func (s *ExplorationTestSuite) TestNilCharacter() {
	_, err := s.svc.RandomEvent(context.Background(), nil)
	s.True(rpgerr.IsInvalidArgument(err))
}

func TestRandomEvent_RollFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := exploration.NewService(&exploration.ServiceConfig{
		Roller:      mockdice.NewManualMockRoller(),
		LootService: mockloot.NewMockService(ctrl),
	})

	outcome, err := svc.RandomEvent(context.Background(), entities.NewCharacter("Sophie", entities.ClassWizard, 8))
	require.Error(t, err)
	assert.Nil(t, outcome)
}

func TestNewService_RequiresDependencies(t *testing.T) {
	assert.Panics(t, func() { exploration.NewService(nil) })
	assert.Panics(t, func() {
		exploration.NewService(&exploration.ServiceConfig{Roller: mockdice.NewManualMockRoller()})
	})
}
