package characters

import (
	"context"
	"sync"

	"github.com/kevinkickback/fizbanes-forge-sub014/internal/domain/character"
	apperr "github.com/kevinkickback/fizbanes-forge-sub014/internal/errors"
	"github.com/kevinkickback/fizbanes-forge-sub014/internal/uuid"
)

// InMemoryRepository is an in-memory implementation of the character
// repository, used in tests and as the CLI fallback when Redis is not
// configured.
type InMemoryRepository struct {
	mu            sync.RWMutex
	characters    map[string]*character.Character
	uuidGenerator uuid.Generator
}

// NewInMemoryRepository creates a new in-memory repository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		characters:    make(map[string]*character.Character),
		uuidGenerator: uuid.NewGoogleUUIDGenerator(),
	}
}

// Create stores a new character, assigning an ID when absent.
func (r *InMemoryRepository) Create(ctx context.Context, ch *character.Character) error {
	if ch == nil {
		return apperr.InvalidArgument("character cannot be nil")
	}

	if ch.ID == "" {
		ch.ID = r.uuidGenerator.New()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.characters[ch.ID]; exists {
		return apperr.AlreadyExistsf("character with ID '%s' already exists", ch.ID).
			WithMeta("character_id", ch.ID)
	}

	// Store a copy so callers cannot mutate the repository's state.
	chCopy := *ch
	r.characters[ch.ID] = &chCopy

	return nil
}

// Get retrieves a character by ID.
func (r *InMemoryRepository) Get(ctx context.Context, id string) (*character.Character, error) {
	if id == "" {
		return nil, apperr.InvalidArgument("character ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	ch, exists := r.characters[id]
	if !exists {
		return nil, apperr.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}

	chCopy := *ch
	return &chCopy, nil
}

// GetByOwner retrieves all characters belonging to an owner.
func (r *InMemoryRepository) GetByOwner(ctx context.Context, ownerID string) ([]*character.Character, error) {
	if ownerID == "" {
		return nil, apperr.InvalidArgument("owner ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*character.Character
	for _, ch := range r.characters {
		if ch.OwnerID == ownerID {
			chCopy := *ch
			result = append(result, &chCopy)
		}
	}

	return result, nil
}

// Update overwrites an existing character.
func (r *InMemoryRepository) Update(ctx context.Context, ch *character.Character) error {
	if ch == nil {
		return apperr.InvalidArgument("character cannot be nil")
	}
	if ch.ID == "" {
		return apperr.InvalidArgument("character ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.characters[ch.ID]; !exists {
		return apperr.NotFoundf("character with ID '%s' not found", ch.ID).
			WithMeta("character_id", ch.ID)
	}

	chCopy := *ch
	r.characters[ch.ID] = &chCopy

	return nil
}

// Delete removes a character.
func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperr.InvalidArgument("character ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.characters[id]; !exists {
		return apperr.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}

	delete(r.characters, id)
	return nil
}
