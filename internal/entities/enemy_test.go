package entities_test

import (
	"testing"

	"github.com/ntuteepl/finalterm-LuoJuneChi/internal/entities"
	"github.com/stretchr/testify/assert"
)

func TestEnemy_TakeDamage(t *testing.T) {
	t.Run("non lethal damage", func(t *testing.T) {
		goblin := entities.NewEnemy("Goblin", 150, 15)

		applied := goblin.TakeDamage(100)

		assert.Equal(t, 100, applied)
		assert.Equal(t, 50, goblin.CurrentHitPoints)
		assert.False(t, goblin.IsDefeated())
	})

	t.Run("overkill floors at zero", func(t *testing.T) {
		goblin := entities.NewEnemy("Goblin", 50, 15)

		applied := goblin.TakeDamage(100)

		assert.Equal(t, 50, applied)
		assert.Equal(t, 0, goblin.CurrentHitPoints)
		assert.True(t, goblin.IsDefeated())
	})

	t.Run("negative damage is ignored", func(t *testing.T) {
		goblin := entities.NewEnemy("Goblin", 50, 15)

		assert.Equal(t, 0, goblin.TakeDamage(-5))
		assert.Equal(t, 50, goblin.CurrentHitPoints)
	})
}

func TestEnemy_String(t *testing.T) {
	assert.Equal(t, "Enemy: Goblin, HP: 50, Attack: 15", entities.NewEnemy("Goblin", 50, 15).String())
}

func TestHealthPotion_Use(t *testing.T) {
	potion := entities.NewHealthPotion()
	hero := entities.NewCharacter("Sophie", entities.ClassWizard, 8)
	hero.CurrentHitPoints = 90

	restored := potion.Use(hero)

	assert.Equal(t, 10, restored)
	assert.Equal(t, 100, hero.CurrentHitPoints)
	assert.Equal(t, "Health Potion", potion.GetName())
	assert.Equal(t, "Item: Health Potion", potion.String())
}

func TestQuest_Complete(t *testing.T) {
	quest := entities.NewQuest("Clear the cave")
	assert.Equal(t, "Quest: Clear the cave (Incomplete)", quest.String())

	quest.Complete(75)

	assert.True(t, quest.Completed)
	assert.Equal(t, 75, quest.RewardExperience)
	assert.Equal(t, "Quest: Clear the cave (Completed)", quest.String())
}
