package services

import (
	"io"

	"github.com/ntuteepl/finalterm-LuoJuneChi/internal/dice"
	"github.com/ntuteepl/finalterm-LuoJuneChi/internal/events"
	"github.com/ntuteepl/finalterm-LuoJuneChi/internal/narration"
	"github.com/ntuteepl/finalterm-LuoJuneChi/internal/repositories/characters"
	battleService "github.com/ntuteepl/finalterm-LuoJuneChi/internal/services/battle"
	characterService "github.com/ntuteepl/finalterm-LuoJuneChi/internal/services/character"
	combatService "github.com/ntuteepl/finalterm-LuoJuneChi/internal/services/combat"
	explorationService "github.com/ntuteepl/finalterm-LuoJuneChi/internal/services/exploration"
	lootService "github.com/ntuteepl/finalterm-LuoJuneChi/internal/services/loot"
	questService "github.com/ntuteepl/finalterm-LuoJuneChi/internal/services/quest"
	"github.com/ntuteepl/finalterm-LuoJuneChi/internal/uuid"
	"go.uber.org/zap"
)

// Provider holds all service instances
type Provider struct {
	CharacterService   characterService.Service
	LootService        lootService.Service
	ExplorationService explorationService.Service
	CombatService      combatService.Service
	QuestService       questService.Service
	BattleService      battleService.Service
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	Roller              dice.Roller
	CharacterRepository characters.Repository
	UUIDGenerator       uuid.Generator
	Events              events.Emitter
	Narrator            battleService.Narrator
	Scenario            *battleService.Scenario
	Logger              *zap.Logger
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	if cfg == nil || cfg.Roller == nil {
		panic("dice roller is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	// Use in-memory repository if none provided
	charRepo := cfg.CharacterRepository
	if charRepo == nil {
		charRepo = characters.NewInMemoryRepository()
	}

	emitter := cfg.Events
	if emitter == nil {
		emitter = events.NewBus(logger.Named("events"))
	}

	narrator := cfg.Narrator
	if narrator == nil {
		narrator = narration.NewNarrator(io.Discard)
	}

	charService := characterService.NewService(&characterService.ServiceConfig{
		Repository:    charRepo,
		UUIDGenerator: cfg.UUIDGenerator,
		Logger:        logger.Named("character"),
	})

	loot := lootService.NewService(&lootService.ServiceConfig{
		Roller: cfg.Roller,
		Events: emitter,
		Logger: logger.Named("loot"),
	})

	exploration := explorationService.NewService(&explorationService.ServiceConfig{
		Roller:      cfg.Roller,
		LootService: loot,
		Events:      emitter,
		Logger:      logger.Named("exploration"),
	})

	combat := combatService.NewService(&combatService.ServiceConfig{
		Roller:             cfg.Roller,
		ExplorationService: exploration,
		Events:             emitter,
		Logger:             logger.Named("combat"),
	})

	quest := questService.NewService(&questService.ServiceConfig{
		Roller: cfg.Roller,
		Events: emitter,
		Logger: logger.Named("quest"),
	})

	battle := battleService.NewService(&battleService.ServiceConfig{
		Scenario:           cfg.Scenario,
		CharacterService:   charService,
		CombatService:      combat,
		ExplorationService: exploration,
		LootService:        loot,
		Narrator:           narrator,
		Logger:             logger.Named("battle"),
	})

	return &Provider{
		CharacterService:   charService,
		LootService:        loot,
		ExplorationService: exploration,
		CombatService:      combat,
		QuestService:       quest,
		BattleService:      battle,
	}
}
