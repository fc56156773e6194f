package characters

//go:generate mockgen -destination=mock/mock.go -package=mockcharacters -source=interface.go

import (
	"context"

	"github.com/ntuteepl/finalterm-LuoJuneChi/internal/entities"
)

// Repository stores snapshots of the heroes on the roster
type Repository interface {
	// Create stores a new character; the ID must already be assigned
	Create(ctx context.Context, character *entities.Character) error

	// Get retrieves a character by ID
	Get(ctx context.Context, id string) (*entities.Character, error)

	// List returns every stored character ordered by name, then ID
	List(ctx context.Context) ([]*entities.Character, error)

	// Update replaces an existing character
	Update(ctx context.Context, character *entities.Character) error

	// Delete removes a character
	Delete(ctx context.Context, id string) error
}
