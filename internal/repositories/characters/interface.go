package characters

//go:generate mockgen -destination=mock/mock_repository.go -package=mockcharacters -source=interface.go

import (
	"context"

	"github.com/kevinkickback/fizbanes-forge-sub014/internal/domain/character"
)

// Repository defines character persistence. Implementations store the
// session-boundary shape: attunement as an ordered key list, proficiencies
// as plain string lists, packs as ordered entry records.
type Repository interface {
	// Create stores a new character, assigning an ID when absent.
	Create(ctx context.Context, ch *character.Character) error

	// Get retrieves a character by ID.
	Get(ctx context.Context, id string) (*character.Character, error)

	// GetByOwner retrieves all characters belonging to an owner.
	GetByOwner(ctx context.Context, ownerID string) ([]*character.Character, error)

	// Update overwrites an existing character.
	Update(ctx context.Context, ch *character.Character) error

	// Delete removes a character.
	Delete(ctx context.Context, id string) error
}
