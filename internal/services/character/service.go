package character

//go:generate mockgen -destination=mock/mock_service.go -package=mockcharacter -source=service.go

import (
	"context"
	"strings"

	"github.com/ntuteepl/finalterm-LuoJuneChi/internal/entities"
	rpgerr "github.com/ntuteepl/finalterm-LuoJuneChi/internal/errors"
	"github.com/ntuteepl/finalterm-LuoJuneChi/internal/repositories/characters"
	"github.com/ntuteepl/finalterm-LuoJuneChi/internal/uuid"
	"go.uber.org/zap"
)

// Service defines the character service interface
type Service interface {
	// Register creates a hero at the given level and stores it on the roster
	Register(ctx context.Context, input *RegisterInput) (*entities.Character, error)

	// Get retrieves a hero by ID
	Get(ctx context.Context, characterID string) (*entities.Character, error)

	// List returns the whole roster
	List(ctx context.Context) ([]*entities.Character, error)

	// Save stores the current state of a registered hero
	Save(ctx context.Context, character *entities.Character) error
}

// RegisterInput contains the data needed to create a hero
type RegisterInput struct {
	Name  string
	Class entities.Class
	Level int
}

type service struct {
	repository    characters.Repository
	uuidGenerator uuid.Generator
	logger        *zap.Logger
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository    characters.Repository
	UUIDGenerator uuid.Generator
	Logger        *zap.Logger
}

// NewService creates a new character service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil || cfg.Repository == nil {
		panic("repository is required")
	}

	svc := &service{
		repository: cfg.Repository,
		logger:     cfg.Logger,
	}

	if cfg.UUIDGenerator != nil {
		svc.uuidGenerator = cfg.UUIDGenerator
	} else {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}
	if svc.logger == nil {
		svc.logger = zap.NewNop()
	}

	return svc
}

// Register creates a hero at the given level and stores it on the roster
func (s *service) Register(ctx context.Context, input *RegisterInput) (*entities.Character, error) {
	if input == nil {
		return nil, rpgerr.InvalidArgument("input cannot be nil")
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, rpgerr.InvalidArgument("character name is required")
	}
	if !input.Class.IsValid() {
		return nil, rpgerr.InvalidArgumentf("unknown class %q", input.Class)
	}
	if input.Level < 1 {
		return nil, rpgerr.InvalidArgumentf("level must be at least 1, got %d", input.Level)
	}

	char := entities.NewCharacter(input.Name, input.Class, input.Level)
	char.ID = s.uuidGenerator.New()

	if err := s.repository.Create(ctx, char); err != nil {
		return nil, rpgerr.Wrap(err, "failed to create character")
	}

	s.logger.Info("character registered",
		zap.String("character_id", char.ID),
		zap.String("name", char.Name),
		zap.String("class", string(char.Class)),
		zap.Int("level", char.Level))

	return char, nil
}

// Get retrieves a hero by ID
func (s *service) Get(ctx context.Context, characterID string) (*entities.Character, error) {
	if characterID == "" {
		return nil, rpgerr.InvalidArgument("character ID is required")
	}

	char, err := s.repository.Get(ctx, characterID)
	if err != nil {
		return nil, rpgerr.Wrapf(err, "failed to get character %s", characterID)
	}

	return char, nil
}

// List returns the whole roster
func (s *service) List(ctx context.Context) ([]*entities.Character, error) {
	roster, err := s.repository.List(ctx)
	if err != nil {
		return nil, rpgerr.Wrap(err, "failed to list characters")
	}

	return roster, nil
}

// Save stores the current state of a registered hero
func (s *service) Save(ctx context.Context, character *entities.Character) error {
	if character == nil {
		return rpgerr.InvalidArgument("character cannot be nil")
	}

	if err := s.repository.Update(ctx, character); err != nil {
		return rpgerr.Wrapf(err, "failed to save character %s", character.Name)
	}

	s.logger.Debug("character saved",
		zap.String("character_id", character.ID),
		zap.Int("level", character.Level),
		zap.Int("experience", character.Experience),
		zap.Int("hp", character.CurrentHitPoints))

	return nil
}
