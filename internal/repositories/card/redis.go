package card

import (
	"context"
	"encoding/json"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/arcspirits/spirits-api/internal/entities/spirits"
	"github.com/arcspirits/spirits-api/internal/errors"
	"github.com/arcspirits/spirits-api/internal/pkg/clock"
	redisclient "github.com/arcspirits/spirits-api/internal/redis"
)

const (
	// Key pattern: card:{id}, indexes: cards:all and cards:rarity:{rarity}
	cardKeyPrefix     = "card:"
	cardIndexKey      = "cards:all"
	rarityIndexPrefix = "cards:rarity:"

	errCardNil     = "card cannot be nil"
	errCardIDEmpty = "card ID cannot be empty"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock cannot be nil")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedis creates a new Redis repository for the card catalog
func NewRedis(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

// Create stores a new card and adds it to the catalog and rarity indexes
func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Card == nil {
		return nil, errors.InvalidArgument(errCardNil)
	}
	if input.Card.ID == "" {
		return nil, errors.InvalidArgument(errCardIDEmpty)
	}

	key := cardKeyPrefix + input.Card.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("card with ID %s already exists", input.Card.ID)
	}

	now := r.clock.Now()
	input.Card.CreatedAt = now
	input.Card.UpdatedAt = now

	data, err := json.Marshal(input.Card)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal card")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, cardIndexKey, input.Card.ID)
	if input.Card.Rarity != "" {
		pipe.SAdd(ctx, rarityIndexPrefix+string(input.Card.Rarity), input.Card.ID)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create card")
	}

	return &CreateOutput{Card: input.Card}, nil
}

// Get retrieves a card by ID
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCardIDEmpty)
	}

	result, err := r.client.Get(ctx, cardKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("card with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get card")
	}

	var c spirits.Card
	if err := json.Unmarshal([]byte(result), &c); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal card")
	}

	return &GetOutput{Card: &c}, nil
}

// Update replaces an existing card, moving it between rarity indexes when
// the tier changed
func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Card == nil {
		return nil, errors.InvalidArgument(errCardNil)
	}
	if input.Card.ID == "" {
		return nil, errors.InvalidArgument(errCardIDEmpty)
	}

	existing, err := r.Get(ctx, GetInput{ID: input.Card.ID})
	if err != nil {
		return nil, err
	}

	input.Card.CreatedAt = existing.Card.CreatedAt
	input.Card.UpdatedAt = r.clock.Now()

	data, err := json.Marshal(input.Card)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal card")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, cardKeyPrefix+input.Card.ID, data, 0)
	if existing.Card.Rarity != input.Card.Rarity {
		if existing.Card.Rarity != "" {
			pipe.SRem(ctx, rarityIndexPrefix+string(existing.Card.Rarity), input.Card.ID)
		}
		if input.Card.Rarity != "" {
			pipe.SAdd(ctx, rarityIndexPrefix+string(input.Card.Rarity), input.Card.ID)
		}
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to update card")
	}

	return &UpdateOutput{Card: input.Card}, nil
}

// Delete removes a card and its index entries
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCardIDEmpty)
	}

	existing, err := r.Get(ctx, GetInput{ID: input.ID})
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, cardKeyPrefix+input.ID)
	pipe.SRem(ctx, cardIndexKey, input.ID)
	if existing.Card.Rarity != "" {
		pipe.SRem(ctx, rarityIndexPrefix+string(existing.Card.Rarity), input.ID)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete card")
	}

	return &DeleteOutput{}, nil
}

// List returns cards ordered by name, optionally filtered to one rarity tier
func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	indexKey := cardIndexKey
	if input.Rarity != "" {
		indexKey = rarityIndexPrefix + string(input.Rarity)
	}

	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read card index %s", indexKey)
	}

	cards := make([]*spirits.Card, 0, len(ids))
	for _, id := range ids {
		out, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			// Stale index entry; drop it and keep going.
			if errors.IsNotFound(err) {
				r.client.SRem(ctx, indexKey, id)
				continue
			}
			return nil, errors.Wrapf(err, "failed to get card %s", id)
		}
		cards = append(cards, out.Card)
	}

	sort.Slice(cards, func(i, j int) bool { return cards[i].Name < cards[j].Name })

	return &ListOutput{Cards: cards}, nil
}
