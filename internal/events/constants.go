package events

const (
	// Combat
	EventTypeEnemyAttack EventType = "enemy_attack"
	EventTypeCriticalHit EventType = "critical_hit"
	EventTypeMeleeHit    EventType = "melee_hit"
	EventTypeRangedHit   EventType = "ranged_hit"
	EventTypeRangedMiss  EventType = "ranged_miss"

	// Exploration
	EventTypeTreasureFound EventType = "treasure_found"
	EventTypeTrapSprung    EventType = "trap_sprung"
	EventTypeUneventful    EventType = "uneventful"

	// Loot
	EventTypeItemDropped    EventType = "item_dropped"
	EventTypeNothingDropped EventType = "nothing_dropped"
	EventTypeItemUsed       EventType = "item_used"

	// Progression
	EventTypeLevelUp        EventType = "level_up"
	EventTypeQuestCompleted EventType = "quest_completed"
)

// AllEventTypes lists every event type, used by listeners that narrate
// or record everything
var AllEventTypes = []EventType{
	EventTypeEnemyAttack,
	EventTypeCriticalHit,
	EventTypeMeleeHit,
	EventTypeRangedHit,
	EventTypeRangedMiss,
	EventTypeTreasureFound,
	EventTypeTrapSprung,
	EventTypeUneventful,
	EventTypeItemDropped,
	EventTypeNothingDropped,
	EventTypeItemUsed,
	EventTypeLevelUp,
	EventTypeQuestCompleted,
}
