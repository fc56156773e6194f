package combat_test

import (
	"context"
	"errors"
	"testing"

	mockdice "github.com/ntuteepl/finalterm-LuoJuneChi/internal/dice/mock"
	"github.com/ntuteepl/finalterm-LuoJuneChi/internal/entities"
	rpgerr "github.com/ntuteepl/finalterm-LuoJuneChi/internal/errors"
	"github.com/ntuteepl/finalterm-LuoJuneChi/internal/events"
	"github.com/ntuteepl/finalterm-LuoJuneChi/internal/services/combat"
	"github.com/ntuteepl/finalterm-LuoJuneChi/internal/services/exploration"
	mockexploration "github.com/ntuteepl/finalterm-LuoJuneChi/internal/services/exploration/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type eventLog struct {
	types  []events.EventType
	events []events.Event
}

func (l *eventLog) HandleEvent(e events.Event) error {
	l.types = append(l.types, e.GetType())
	l.events = append(l.events, e)
	return nil
}
func (l *eventLog) Priority() int { return 0 }
func (l *eventLog) ID() string    { return "event-log" }

type fixture struct {
	roller      *mockdice.ManualMockRoller
	exploration *mockexploration.MockService
	log         *eventLog
	svc         combat.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		roller:      mockdice.NewManualMockRoller(),
		exploration: mockexploration.NewMockService(ctrl),
		log:         &eventLog{},
	}
	bus := events.NewBus(nil)
	bus.SubscribeAll(f.log)

	f.svc = combat.NewService(&combat.ServiceConfig{
		Roller:             f.roller,
		ExplorationService: f.exploration,
		Events:             bus,
	})
	return f
}

func (f *fixture) expectUneventful(character *entities.Character) {
	f.exploration.EXPECT().
		RandomEvent(gomock.Any(), character).
		Return(&exploration.Outcome{Kind: exploration.OutcomeUneventful, Roll: 90}, nil)
}

func TestEnemyAttack(t *testing.T) {
	tests := []struct {
		name   string
		roll   int
		hp     int
		wantHP int
	}{
		{name: "low end of spread", roll: 10, hp: 100, wantHP: 90},
		{name: "high end of spread", roll: 20, hp: 100, wantHP: 80},
		{name: "floors at zero", roll: 20, hp: 15, wantHP: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.roller.SetTotals(tt.roll)
			hero := entities.NewCharacter("Sophie", entities.ClassWizard, 8)
			hero.CurrentHitPoints = tt.hp

			damage, err := f.svc.EnemyAttack(context.Background(), entities.NewEnemy("Goblin", 50, 15), hero)
			require.NoError(t, err)

			assert.Equal(t, tt.roll, damage)
			assert.Equal(t, tt.wantHP, hero.CurrentHitPoints)
			require.Len(t, f.log.events, 1)
			attack := f.log.events[0].(*events.AttackEvent)
			assert.Equal(t, events.EventTypeEnemyAttack, attack.GetType())
			assert.Equal(t, "Goblin", attack.Attacker)
			assert.Equal(t, "Sophie", attack.Target)
			assert.Equal(t, tt.roll, attack.Damage)
		})
	}
}

func TestEnemyAttack_DrawsAroundBaseAttack(t *testing.T) {
	ctrl := gomock.NewController(t)
	roller := mockdice.NewMockRoller(ctrl)
	// attack 15 spreads over [10, 20]: one d11 offset by 9
	roller.EXPECT().Roll(1, 11, 9).Return(nil, errors.New("dice fell off the table"))

	svc := combat.NewService(&combat.ServiceConfig{
		Roller:             roller,
		ExplorationService: mockexploration.NewMockService(ctrl),
	})
	hero := entities.NewCharacter("Alice", entities.ClassWarrior, 10)

	_, err := svc.EnemyAttack(context.Background(), entities.NewEnemy("Goblin", 50, 15), hero)
	assert.Error(t, err)
	assert.Equal(t, entities.MaxHitPoints, hero.CurrentHitPoints)
}

func TestWarriorAttack(t *testing.T) {
	tests := []struct {
		name         string
		roll         int
		enemyHP      int
		wantDamage   int
		wantCritical bool
		wantEnemyHP  int
		wantEvents   []events.EventType
	}{
		{
			name: "critical on 1", roll: 1, enemyHP: 500,
			wantDamage: 200, wantCritical: true, wantEnemyHP: 300,
			wantEvents: []events.EventType{events.EventTypeCriticalHit, events.EventTypeMeleeHit},
		},
		{
			name: "critical on 20", roll: 20, enemyHP: 500,
			wantDamage: 200, wantCritical: true, wantEnemyHP: 300,
			wantEvents: []events.EventType{events.EventTypeCriticalHit, events.EventTypeMeleeHit},
		},
		{
			name: "normal on 21", roll: 21, enemyHP: 500,
			wantDamage: 100, wantEnemyHP: 400,
			wantEvents: []events.EventType{events.EventTypeMeleeHit},
		},
		{
			name: "power 100 non-critical floors goblin", roll: 75, enemyHP: 50,
			wantDamage: 100, wantEnemyHP: 0,
			wantEvents: []events.EventType{events.EventTypeMeleeHit},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.roller.SetTotals(tt.roll)
			alice := entities.NewCharacter("Alice", entities.ClassWarrior, 10)
			goblin := entities.NewEnemy("Goblin", tt.enemyHP, 15)
			f.expectUneventful(alice)

			result, err := f.svc.Attack(context.Background(), alice, goblin)
			require.NoError(t, err)

			assert.True(t, result.Hit)
			assert.Equal(t, tt.roll, result.Roll)
			assert.Equal(t, tt.wantDamage, result.Damage)
			assert.Equal(t, tt.wantCritical, result.Critical)
			assert.Equal(t, tt.wantEnemyHP, goblin.CurrentHitPoints)
			assert.Equal(t, tt.wantEvents, f.log.types)
			require.NotNil(t, result.Event)
			assert.Equal(t, exploration.OutcomeUneventful, result.Event.Kind)
		})
	}
}

func TestArcherAttack(t *testing.T) {
	tests := []struct {
		name        string
		roll        int
		wantHit     bool
		wantEnemyHP int
		wantEvent   events.EventType
	}{
		{name: "hit on 85", roll: 85, wantHit: true, wantEnemyHP: 37, wantEvent: events.EventTypeRangedHit},
		{name: "hit on 1", roll: 1, wantHit: true, wantEnemyHP: 37, wantEvent: events.EventTypeRangedHit},
		{name: "miss on 86", roll: 86, wantEnemyHP: 100, wantEvent: events.EventTypeRangedMiss},
		{name: "miss on 100", roll: 100, wantEnemyHP: 100, wantEvent: events.EventTypeRangedMiss},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.roller.SetTotals(tt.roll)
			robin := entities.NewCharacter("Robin", entities.ClassArcher, 9)
			goblin := entities.NewEnemy("Goblin", 100, 15)
			f.expectUneventful(robin)

			result, err := f.svc.Attack(context.Background(), robin, goblin)
			require.NoError(t, err)

			assert.Equal(t, tt.wantHit, result.Hit)
			assert.False(t, result.Critical)
			assert.Equal(t, tt.wantEnemyHP, goblin.CurrentHitPoints)
			assert.Equal(t, []events.EventType{tt.wantEvent}, f.log.types)
			if tt.wantHit {
				assert.Equal(t, 63, result.Damage)
			} else {
				assert.Zero(t, result.Damage)
			}
		})
	}
}

func TestAttack_ClassesWithoutAttack(t *testing.T) {
	for _, class := range []entities.Class{entities.ClassWizard, entities.ClassAdventurer} {
		t.Run(string(class), func(t *testing.T) {
			f := newFixture(t)
			hero := entities.NewCharacter("Sophie", class, 8)
			goblin := entities.NewEnemy("Goblin", 50, 15)

			result, err := f.svc.Attack(context.Background(), hero, goblin)

			assert.Nil(t, result)
			assert.True(t, rpgerr.IsUnimplemented(err))
			assert.Equal(t, 50, goblin.CurrentHitPoints)
			assert.Empty(t, f.log.types)
			assert.Zero(t, f.roller.Remaining())
		})
	}
}

func TestAttack_RandomEventFailure(t *testing.T) {
	f := newFixture(t)
	f.roller.SetTotals(50)
	alice := entities.NewCharacter("Alice", entities.ClassWarrior, 10)
	f.exploration.EXPECT().RandomEvent(gomock.Any(), alice).Return(nil, errors.New("trap mechanism broke"))

	_, err := f.svc.Attack(context.Background(), alice, entities.NewEnemy("Goblin", 50, 15))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "trap mechanism broke")
}

func TestAttack_InvalidArguments(t *testing.T) {
	f := newFixture(t)
	alice := entities.NewCharacter("Alice", entities.ClassWarrior, 10)

	_, err := f.svc.Attack(context.Background(), nil, entities.NewEnemy("Goblin", 50, 15))
	assert.True(t, rpgerr.IsInvalidArgument(err))

	_, err = f.svc.Attack(context.Background(), alice, nil)
	assert.True(t, rpgerr.IsInvalidArgument(err))
}

func TestAwardExperience(t *testing.T) {
	tests := []struct {
		name          string
		class         entities.Class
		level         int
		experience    int
		wantLevels    []int
		wantPower     int
		wantKnowledge int
		wantLuck      int
	}{
		{
			name: "adventurer crosses four thresholds", class: entities.ClassAdventurer, level: 1, experience: 200,
			wantLevels: []int{2, 3, 4, 5}, wantPower: 25, wantKnowledge: 25, wantLuck: 25,
		},
		{
			name: "warrior grows power", class: entities.ClassWarrior, level: 1, experience: 10,
			wantLevels: []int{2}, wantPower: 20, wantKnowledge: 10, wantLuck: 10,
		},
		{
			name: "wizard grows knowledge", class: entities.ClassWizard, level: 1, experience: 10,
			wantLevels: []int{2}, wantPower: 10, wantKnowledge: 20, wantLuck: 14,
		},
		{
			name: "archer grows luck", class: entities.ClassArcher, level: 1, experience: 10,
			wantLevels: []int{2}, wantPower: 14, wantKnowledge: 10, wantLuck: 20,
		},
		{
			name: "below threshold", class: entities.ClassWarrior, level: 10, experience: 200,
			wantPower: 100, wantKnowledge: 50, wantLuck: 50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			hero := entities.NewCharacter("Hero", tt.class, tt.level)

			levels, err := f.svc.AwardExperience(context.Background(), hero, tt.experience)
			require.NoError(t, err)

			assert.Equal(t, tt.wantLevels, levels)
			assert.Equal(t, tt.wantPower, hero.Power)
			assert.Equal(t, tt.wantKnowledge, hero.Knowledge)
			assert.Equal(t, tt.wantLuck, hero.Luck)
			assert.Less(t, hero.Experience, entities.ExperienceThreshold(hero.Level))
			assert.Len(t, f.log.types, len(tt.wantLevels))
			for i, e := range f.log.events {
				progress := e.(*events.ProgressEvent)
				assert.Equal(t, events.EventTypeLevelUp, progress.GetType())
				assert.Equal(t, tt.wantLevels[i], progress.Level)
			}
		})
	}
}

func TestAwardExperience_InvalidArguments(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.AwardExperience(context.Background(), nil, 10)
	assert.True(t, rpgerr.IsInvalidArgument(err))

	_, err = f.svc.AwardExperience(context.Background(), entities.NewCharacter("Hero", entities.ClassArcher, 1), -1)
	assert.True(t, rpgerr.IsInvalidArgument(err))
}
