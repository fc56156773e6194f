package events

import (
	"github.com/ntuteepl/finalterm-LuoJuneChi/internal/entities"
)

// AttackEvent is emitted for enemy attacks, critical swings, hits and misses
type AttackEvent struct {
	BaseEvent
	Attacker string
	Target   string
	Roll     int // the d100 roll for hero attacks, 0 for enemy attacks
	Damage   int
	Critical bool
}

// NewAttackEvent creates an attack event of the given type
func NewAttackEvent(eventType EventType, attacker, target string) *AttackEvent {
	return &AttackEvent{
		BaseEvent: BaseEvent{Type: eventType},
		Attacker:  attacker,
		Target:    target,
	}
}

// ExplorationEvent is emitted by the random event table
type ExplorationEvent struct {
	BaseEvent
	Character *entities.Character
	Roll      int
	Damage    int // trap damage, zero otherwise
}

// NewExplorationEvent creates an exploration event of the given type
func NewExplorationEvent(eventType EventType, character *entities.Character, roll int) *ExplorationEvent {
	return &ExplorationEvent{
		BaseEvent: BaseEvent{Type: eventType},
		Character: character,
		Roll:      roll,
	}
}

// LootEvent is emitted when an item drops, nothing drops, or an item is used
type LootEvent struct {
	BaseEvent
	Item      entities.Item
	Character *entities.Character // set for item_used
	Applied   int                 // effect actually applied by Use
}

// NewLootEvent creates a loot event of the given type
func NewLootEvent(eventType EventType, item entities.Item) *LootEvent {
	return &LootEvent{
		BaseEvent: BaseEvent{Type: eventType},
		Item:      item,
	}
}

// ProgressEvent is emitted on level-ups and quest completion
type ProgressEvent struct {
	BaseEvent
	Character *entities.Character // set for level_up
	Level     int
	Quest     *entities.Quest // set for quest_completed
	Reward    int
}

// NewLevelUpEvent creates a level_up event
func NewLevelUpEvent(character *entities.Character, level int) *ProgressEvent {
	return &ProgressEvent{
		BaseEvent: BaseEvent{Type: EventTypeLevelUp},
		Character: character,
		Level:     level,
	}
}

// NewQuestCompletedEvent creates a quest_completed event
func NewQuestCompletedEvent(quest *entities.Quest, reward int) *ProgressEvent {
	return &ProgressEvent{
		BaseEvent: BaseEvent{Type: EventTypeQuestCompleted},
		Quest:     quest,
		Reward:    reward,
	}
}
