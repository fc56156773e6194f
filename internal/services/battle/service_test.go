package battle_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	mockdice "github.com/ntuteepl/finalterm-LuoJuneChi/internal/dice/mock"
	"github.com/ntuteepl/finalterm-LuoJuneChi/internal/entities"
	rpgerr "github.com/ntuteepl/finalterm-LuoJuneChi/internal/errors"
	"github.com/ntuteepl/finalterm-LuoJuneChi/internal/events"
	"github.com/ntuteepl/finalterm-LuoJuneChi/internal/narration"
	"github.com/ntuteepl/finalterm-LuoJuneChi/internal/repositories/characters"
	"github.com/ntuteepl/finalterm-LuoJuneChi/internal/services"
	"github.com/ntuteepl/finalterm-LuoJuneChi/internal/services/battle"
	"github.com/ntuteepl/finalterm-LuoJuneChi/internal/services/character"
	mockcharacter "github.com/ntuteepl/finalterm-LuoJuneChi/internal/services/character/mock"
	"github.com/ntuteepl/finalterm-LuoJuneChi/internal/services/combat"
	mockcombat "github.com/ntuteepl/finalterm-LuoJuneChi/internal/services/combat/mock"
	mockexploration "github.com/ntuteepl/finalterm-LuoJuneChi/internal/services/exploration/mock"
	mockloot "github.com/ntuteepl/finalterm-LuoJuneChi/internal/services/loot/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type harness struct {
	out    *bytes.Buffer
	roller *mockdice.ManualMockRoller
	repo   characters.Repository
	svc    battle.Service
}

func newHarness(t *testing.T, scenario *battle.Scenario, totals ...int) *harness {
	t.Helper()

	h := &harness{
		out:    &bytes.Buffer{},
		roller: mockdice.NewManualMockRoller(),
		repo:   characters.NewInMemoryRepository(),
	}
	h.roller.SetTotals(totals...)

	narrator := narration.NewNarrator(h.out)
	bus := events.NewBus(nil)
	bus.SubscribeAll(narrator)

	provider := services.NewProvider(&services.ProviderConfig{
		Roller:              h.roller,
		CharacterRepository: h.repo,
		Events:              bus,
		Narrator:            narrator,
		Scenario:            scenario,
	})
	h.svc = provider.BattleService
	return h
}

func TestRun_GoblinFalls(t *testing.T) {
	h := newHarness(t, nil,
		12, 70,     // goblin hits Alice, nothing happens
		50, 45, 17, // Alice strikes without a critical, then springs a trap
		20, 10, 1,  // goblin hits Sophie, Sophie finds a potion
		15, 99,     // goblin hits Robin, nothing happens
		90, 30, 2,  // Robin misses, then finds an empty chest
		3,          // nothing drops from the goblin
	)

	result, err := h.svc.Run(context.Background())
	require.NoError(t, err)

	want := strings.Join([]string{
		"Our heroes gather, their hearts resolute as they face their foe.",
		"Warrior Name: Alice, Level: 10, Power: 100, Knowledge: 50, Luck: 50, Exp: 0, HP: 100",
		"Wizard Name: Sophie, Level: 8, Power: 40, Knowledge: 80, Luck: 56, Exp: 0, HP: 100",
		"Archer Name: Robin, Level: 9, Power: 63, Knowledge: 45, Luck: 90, Exp: 0, HP: 100",
		"Enemy: Goblin, HP: 50, Attack: 15",
		"",
		"--- The Battle Begins ---",
		"The Goblin lunges at Alice and deals 12 damage!",
		"Alice continues onward without incident.",
		"Alice strikes Goblin and inflicts 100 damage!",
		"While exploring, Alice accidentally steps into a trap!",
		"Alice suffers 17 damage from the trap.",
		"The Goblin lunges at Sophie and deals 20 damage!",
		"As Sophie moves forward, they discover a hidden treasure chest!",
		"As the dust settles, a shimmering item is revealed: Item: Health Potion",
		"The Goblin lunges at Robin and deals 15 damage!",
		"Robin continues onward without incident.",
		"Robin fires an arrow, but it misses its mark!",
		"As Robin moves forward, they discover a hidden treasure chest!",
		"The battlefield is empty... No items were found.",
		"With a final blow, the Goblin falls!",
		"The battlefield is empty... No items were found.",
		"",
		"The battle is over, but the journey continues...",
	}, "\n") + "\n"
	assert.Equal(t, want, h.out.String())
	assert.Zero(t, h.roller.Remaining())

	assert.True(t, result.Victory)
	assert.Nil(t, result.Drop)
	assert.True(t, result.Enemy.IsDefeated())
	require.Len(t, result.Heroes, 3)
	assert.Equal(t, 71, result.Heroes[0].CurrentHitPoints)
	assert.Equal(t, 80, result.Heroes[1].CurrentHitPoints)
	assert.Equal(t, 85, result.Heroes[2].CurrentHitPoints)
	assert.Equal(t, 200, result.Heroes[0].Experience)
	assert.Equal(t, 150, result.Heroes[1].Experience)
	assert.Equal(t, 180, result.Heroes[2].Experience)

	roster, err := h.repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, roster, 3)
	for _, hero := range roster {
		switch hero.Name {
		case "Alice":
			assert.Equal(t, 200, hero.Experience)
			assert.Equal(t, 71, hero.CurrentHitPoints)
		case "Sophie":
			assert.Equal(t, 150, hero.Experience)
		case "Robin":
			assert.Equal(t, 180, hero.Experience)
		}
	}
}

func TestRun_GoblinRetreats(t *testing.T) {
	scenario := battle.DefaultScenario()
	scenario.Enemy.HitPoints = 500

	h := newHarness(t, scenario,
		12, 70, 50, 80, // Alice: hit, nothing, strike for 100, nothing
		10, 65,         // Sophie: hit, nothing
		10, 75, 5, 90,  // Robin: hit, nothing, arrow for 63, nothing
	)

	result, err := h.svc.Run(context.Background())
	require.NoError(t, err)

	assert.False(t, result.Victory)
	assert.Equal(t, 337, result.Enemy.CurrentHitPoints)
	assert.Zero(t, result.Heroes[0].Experience)
	assert.Zero(t, h.roller.Remaining())

	out := h.out.String()
	assert.Contains(t, out, "Enemy: Goblin, HP: 500, Attack: 15\n")
	assert.Contains(t, out, "Robin skillfully aims an arrow and hits Goblin for 63 damage!\n")
	assert.True(t, strings.HasSuffix(out,
		"The Goblin, though wounded, retreats into the shadows.\n\nThe battle is over, but the journey continues...\n"))
	assert.NotContains(t, out, "falls!")
	assert.NotContains(t, out, "Sophie strikes")
}

func TestRun_CriticalAndLevelUps(t *testing.T) {
	scenario := battle.DefaultScenario()
	scenario.Warrior.Level = 1
	scenario.Warrior.Reward = 50
	scenario.Enemy.HitPoints = 20

	h := newHarness(t, scenario,
		12, 70, 20, 70, // Alice: critical strike for 20
		12, 70,
		12, 70, 90, 70,
		1, // the goblin drops a potion
	)

	result, err := h.svc.Run(context.Background())
	require.NoError(t, err)

	out := h.out.String()
	assert.Contains(t, out,
		"With a powerful swing, Alice lands a critical blow!\nAlice strikes Goblin and inflicts 20 damage!\n")
	assert.Contains(t, out,
		"With a final blow, the Goblin falls!\nAlice leveled up to 2!\nAlice leveled up to 3!\n")
	assert.Contains(t, out, "As the dust settles, a shimmering item is revealed: Item: Health Potion\n")

	assert.True(t, result.Victory)
	require.NotNil(t, result.Drop)
	assert.Equal(t, "Health Potion", result.Drop.GetName())

	alice := result.Heroes[0]
	assert.Equal(t, 3, alice.Level)
	assert.Equal(t, 30, alice.Power)

	stored, err := h.repo.Get(context.Background(), alice.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, stored.Level)
}

func TestRun_RollerExhausted(t *testing.T) {
	h := newHarness(t, nil, 12)

	_, err := h.svc.Run(context.Background())

	require.Error(t, err)
	assert.NotContains(t, h.out.String(), "The battle is over")
}

func TestRun_Cancelled(t *testing.T) {
	h := newHarness(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := h.svc.Run(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}

type mocks struct {
	characters  *mockcharacter.MockService
	combat      *mockcombat.MockService
	exploration *mockexploration.MockService
	loot        *mockloot.MockService
}

func newMockedService(t *testing.T, narrator battle.Narrator) (battle.Service, *mocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := &mocks{
		characters:  mockcharacter.NewMockService(ctrl),
		combat:      mockcombat.NewMockService(ctrl),
		exploration: mockexploration.NewMockService(ctrl),
		loot:        mockloot.NewMockService(ctrl),
	}

	svc := battle.NewService(&battle.ServiceConfig{
		CharacterService:   m.characters,
		CombatService:      m.combat,
		ExplorationService: m.exploration,
		LootService:        m.loot,
		Narrator:           narrator,
	})
	return svc, m
}

func TestRun_RegistrationFailure(t *testing.T) {
	var out bytes.Buffer
	svc, m := newMockedService(t, narration.NewNarrator(&out))
	m.characters.EXPECT().Register(gomock.Any(), gomock.Any()).
		Return(nil, rpgerr.InvalidArgument("character name is required"))

	_, err := svc.Run(context.Background())

	assert.True(t, rpgerr.IsInvalidArgument(err))
	assert.Empty(t, out.String())
}

func TestRun_WizardNeverStrikes(t *testing.T) {
	var out bytes.Buffer
	svc, m := newMockedService(t, narration.NewNarrator(&out))

	m.characters.EXPECT().Register(gomock.Any(), gomock.Any()).Times(3).DoAndReturn(
		func(_ context.Context, in *character.RegisterInput) (*entities.Character, error) {
			hero := entities.NewCharacter(in.Name, in.Class, in.Level)
			hero.ID = in.Name
			return hero, nil
		})
	m.combat.EXPECT().EnemyAttack(gomock.Any(), gomock.Any(), gomock.Any()).Times(3).Return(10, nil)
	m.exploration.EXPECT().RandomEvent(gomock.Any(), gomock.Any()).Times(3).Return(nil, nil)
	m.combat.EXPECT().Attack(gomock.Any(), gomock.Any(), gomock.Any()).Times(2).DoAndReturn(
		func(_ context.Context, attacker *entities.Character, _ *entities.Enemy) (*combat.AttackResult, error) {
			assert.NotEqual(t, entities.ClassWizard, attacker.Class)
			return &combat.AttackResult{Roll: 50, Hit: true}, nil
		})
	m.characters.EXPECT().Save(gomock.Any(), gomock.Any()).Times(3).Return(nil)

	result, err := svc.Run(context.Background())
	require.NoError(t, err)

	assert.False(t, result.Victory)
	assert.Contains(t, out.String(), "retreats into the shadows")
}

func TestRun_NarratorFailure(t *testing.T) {
	svc, m := newMockedService(t, narration.NewNarrator(failingWriter{}))
	m.characters.EXPECT().Register(gomock.Any(), gomock.Any()).Times(3).
		Return(entities.NewCharacter("Alice", entities.ClassWarrior, 10), nil)

	_, err := svc.Run(context.Background())

	assert.Error(t, err)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("stdout closed") }
