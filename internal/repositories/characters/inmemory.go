package characters

import (
	"context"
	"sort"
	"sync"

	"github.com/ntuteepl/finalterm-LuoJuneChi/internal/entities"
	rpgerr "github.com/ntuteepl/finalterm-LuoJuneChi/internal/errors"
)

// InMemoryRepository is an in-memory implementation of the character repository.
// It is the default, so a plain run of the demo keeps no state.
type InMemoryRepository struct {
	mu         sync.RWMutex
	characters map[string]*entities.Character
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() Repository {
	return &InMemoryRepository{
		characters: make(map[string]*entities.Character),
	}
}

// Create stores a new character
func (r *InMemoryRepository) Create(ctx context.Context, character *entities.Character) error {
	if err := validateCharacter(character); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.characters[character.ID]; exists {
		return rpgerr.AlreadyExistsf("character with ID '%s' already exists", character.ID).
			WithMeta("character_id", character.ID)
	}

	// Copy so callers cannot mutate the stored snapshot
	charCopy := *character
	r.characters[character.ID] = &charCopy

	return nil
}

// Get retrieves a character by ID
func (r *InMemoryRepository) Get(ctx context.Context, id string) (*entities.Character, error) {
	if id == "" {
		return nil, rpgerr.InvalidArgument("character ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	character, exists := r.characters[id]
	if !exists {
		return nil, rpgerr.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}

	charCopy := *character
	return &charCopy, nil
}

// List returns every stored character
func (r *InMemoryRepository) List(ctx context.Context) ([]*entities.Character, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*entities.Character, 0, len(r.characters))
	for _, char := range r.characters {
		charCopy := *char
		result = append(result, &charCopy)
	}
	sortRoster(result)

	return result, nil
}

// Update replaces an existing character
func (r *InMemoryRepository) Update(ctx context.Context, character *entities.Character) error {
	if err := validateCharacter(character); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.characters[character.ID]; !exists {
		return rpgerr.NotFoundf("character with ID '%s' not found", character.ID).
			WithMeta("character_id", character.ID)
	}

	charCopy := *character
	r.characters[character.ID] = &charCopy

	return nil
}

// Delete removes a character
func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return rpgerr.InvalidArgument("character ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.characters[id]; !exists {
		return rpgerr.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}

	delete(r.characters, id)
	return nil
}

func validateCharacter(character *entities.Character) error {
	if character == nil {
		return rpgerr.InvalidArgument("character cannot be nil")
	}
	if character.ID == "" {
		return rpgerr.InvalidArgument("character ID is required")
	}
	return nil
}

func sortRoster(roster []*entities.Character) {
	sort.Slice(roster, func(i, j int) bool {
		if roster[i].Name != roster[j].Name {
			return roster[i].Name < roster[j].Name
		}
		return roster[i].ID < roster[j].ID
	})
}
