package characters

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/kevinkickback/fizbanes-forge-sub014/internal/domain/character"
	"github.com/kevinkickback/fizbanes-forge-sub014/internal/domain/equipment"
	"github.com/kevinkickback/fizbanes-forge-sub014/internal/domain/rulebook"
	"github.com/kevinkickback/fizbanes-forge-sub014/internal/domain/shared"
	apperr "github.com/kevinkickback/fizbanes-forge-sub014/internal/errors"
	"github.com/kevinkickback/fizbanes-forge-sub014/internal/uuid"
)

// CharacterData is the serialized form of a character in Redis. Attunement
// is persisted as an ordered key list; the live ledger is rebuilt through a
// validated restore at load time, not deserialized directly.
type CharacterData struct {
	ID                string                                       `json:"id"`
	OwnerID           string                                       `json:"owner_id"`
	Name              string                                       `json:"name"`
	Level             int                                          `json:"level"`
	Alignment         shared.Alignment                             `json:"alignment"`
	Race              *rulebook.Race                               `json:"race"`
	Classes           []*rulebook.Class                            `json:"classes"`
	Background        *rulebook.Background                         `json:"background"`
	Attributes        map[shared.Attribute]*character.AbilityScore `json:"attributes"`
	FeatProficiencies []string                                     `json:"feat_proficiencies"`
	Expertise         []string                                     `json:"expertise"`
	Packs             []*equipment.Pack                            `json:"packs"`
	Attuned           []string                                     `json:"attuned"`
}

type redisRepo struct {
	client        redis.UniversalClient
	uuidGenerator uuid.Generator
}

// RedisConfig holds configuration for the Redis repository.
type RedisConfig struct {
	Client        redis.UniversalClient
	UUIDGenerator uuid.Generator // Optional, defaults to google/uuid
}

// NewRedis creates a Redis-backed character repository.
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if cfg == nil || cfg.Client == nil {
		return nil, apperr.InvalidArgument("redis client is required")
	}

	generator := cfg.UUIDGenerator
	if generator == nil {
		generator = uuid.NewGoogleUUIDGenerator()
	}

	return &redisRepo{
		client:        cfg.Client,
		uuidGenerator: generator,
	}, nil
}

func characterKey(id string) string {
	return fmt.Sprintf("character:%s", id)
}

func ownerIndexKey(ownerID string) string {
	return fmt.Sprintf("owner:%s:characters", ownerID)
}

func characterToData(ch *character.Character) *CharacterData {
	data := &CharacterData{
		ID:                ch.ID,
		OwnerID:           ch.OwnerID,
		Name:              ch.Name,
		Level:             ch.Level,
		Alignment:         ch.Alignment,
		Race:              ch.Race,
		Classes:           ch.Classes,
		Background:        ch.Background,
		Attributes:        ch.Attributes,
		FeatProficiencies: ch.FeatProficiencies,
		Expertise:         ch.Expertise,
		Packs:             ch.Packs,
		Attuned:           ch.SavedAttunements,
	}
	if ch.Attunements != nil {
		data.Attuned = ch.Attunements.AttunedKeys()
	}
	return data
}

func dataToCharacter(data *CharacterData) *character.Character {
	return &character.Character{
		ID:                data.ID,
		OwnerID:           data.OwnerID,
		Name:              data.Name,
		Level:             data.Level,
		Alignment:         data.Alignment,
		Race:              data.Race,
		Classes:           data.Classes,
		Background:        data.Background,
		Attributes:        data.Attributes,
		FeatProficiencies: data.FeatProficiencies,
		Expertise:         data.Expertise,
		Packs:             data.Packs,
		SavedAttunements:  data.Attuned,
	}
}

func (r *redisRepo) Create(ctx context.Context, ch *character.Character) error {
	if ch == nil {
		return apperr.InvalidArgument("character cannot be nil")
	}

	if ch.ID == "" {
		ch.ID = r.uuidGenerator.New()
	}

	exists, err := r.client.Exists(ctx, characterKey(ch.ID)).Result()
	if err != nil {
		return apperr.Wrapf(err, "failed to check character '%s'", ch.ID)
	}
	if exists > 0 {
		return apperr.AlreadyExistsf("character with ID '%s' already exists", ch.ID).
			WithMeta("character_id", ch.ID)
	}

	return r.save(ctx, ch)
}

func (r *redisRepo) Get(ctx context.Context, id string) (*character.Character, error) {
	if id == "" {
		return nil, apperr.InvalidArgument("character ID is required")
	}

	raw, err := r.client.Get(ctx, characterKey(id)).Result()
	if err == redis.Nil {
		return nil, apperr.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}
	if err != nil {
		return nil, apperr.Wrapf(err, "failed to get character '%s'", id)
	}

	var data CharacterData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, apperr.Wrapf(err, "failed to unmarshal character '%s'", id)
	}

	return dataToCharacter(&data), nil
}

func (r *redisRepo) GetByOwner(ctx context.Context, ownerID string) ([]*character.Character, error) {
	if ownerID == "" {
		return nil, apperr.InvalidArgument("owner ID is required")
	}

	ids, err := r.client.SMembers(ctx, ownerIndexKey(ownerID)).Result()
	if err != nil {
		return nil, apperr.Wrapf(err, "failed to list characters for owner '%s'", ownerID)
	}

	result := make([]*character.Character, 0, len(ids))
	for _, id := range ids {
		ch, err := r.Get(ctx, id)
		if err != nil {
			if apperr.IsNotFound(err) {
				// Stale index entry, skip it.
				continue
			}
			return nil, err
		}
		result = append(result, ch)
	}

	return result, nil
}

func (r *redisRepo) Update(ctx context.Context, ch *character.Character) error {
	if ch == nil {
		return apperr.InvalidArgument("character cannot be nil")
	}
	if ch.ID == "" {
		return apperr.InvalidArgument("character ID is required")
	}

	exists, err := r.client.Exists(ctx, characterKey(ch.ID)).Result()
	if err != nil {
		return apperr.Wrapf(err, "failed to check character '%s'", ch.ID)
	}
	if exists == 0 {
		return apperr.NotFoundf("character with ID '%s' not found", ch.ID).
			WithMeta("character_id", ch.ID)
	}

	return r.save(ctx, ch)
}

func (r *redisRepo) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperr.InvalidArgument("character ID is required")
	}

	ch, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, characterKey(id))
	pipe.SRem(ctx, ownerIndexKey(ch.OwnerID), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return apperr.Wrapf(err, "failed to delete character '%s'", id)
	}

	return nil
}

func (r *redisRepo) save(ctx context.Context, ch *character.Character) error {
	raw, err := json.Marshal(characterToData(ch))
	if err != nil {
		return apperr.Wrapf(err, "failed to marshal character '%s'", ch.ID)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, characterKey(ch.ID), raw, 0)
	if ch.OwnerID != "" {
		pipe.SAdd(ctx, ownerIndexKey(ch.OwnerID), ch.ID)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return apperr.Wrapf(err, "failed to save character '%s'", ch.ID)
	}

	return nil
}
