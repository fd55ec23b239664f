package monster

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
	// Key pattern: monster:{id}, index set: monsters:all
	monsterKeyPrefix = "monster:"
	monsterIndexKey  = "monsters:all"

	errMonsterNil     = "monster cannot be nil"
	errMonsterIDEmpty = "monster ID cannot be empty"
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

// NewRedis creates a new Redis repository for the monster catalog
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

// Create stores a new monster and adds it to the catalog index
func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Monster == nil {
		return nil, errors.InvalidArgument(errMonsterNil)
	}
	if input.Monster.ID == "" {
		return nil, errors.InvalidArgument(errMonsterIDEmpty)
	}

	key := monsterKeyPrefix + input.Monster.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("monster with ID %s already exists", input.Monster.ID)
	}

	now := r.clock.Now()
	input.Monster.CreatedAt = now
	input.Monster.UpdatedAt = now

	data, err := json.Marshal(input.Monster)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal monster")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, monsterIndexKey, input.Monster.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create monster")
	}

	return &CreateOutput{Monster: input.Monster}, nil
}

// Get retrieves a monster by ID
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errMonsterIDEmpty)
	}

	result, err := r.client.Get(ctx, monsterKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("monster with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get monster")
	}

	var m spirits.Monster
	if err := json.Unmarshal([]byte(result), &m); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal monster")
	}

	return &GetOutput{Monster: &m}, nil
}

// Update replaces an existing monster
func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Monster == nil {
		return nil, errors.InvalidArgument(errMonsterNil)
	}
	if input.Monster.ID == "" {
		return nil, errors.InvalidArgument(errMonsterIDEmpty)
	}

	existing, err := r.Get(ctx, GetInput{ID: input.Monster.ID})
	if err != nil {
		return nil, err
	}

	input.Monster.CreatedAt = existing.Monster.CreatedAt
	input.Monster.UpdatedAt = r.clock.Now()

	data, err := json.Marshal(input.Monster)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal monster")
	}

	if err := r.client.Set(ctx, monsterKeyPrefix+input.Monster.ID, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to update monster")
	}

	return &UpdateOutput{Monster: input.Monster}, nil
}

// Delete removes a monster and its index entry
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errMonsterIDEmpty)
	}

	if _, err := r.Get(ctx, GetInput{ID: input.ID}); err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, monsterKeyPrefix+input.ID)
	pipe.SRem(ctx, monsterIndexKey, input.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete monster")
	}

	return &DeleteOutput{}, nil
}

// List returns every monster in the catalog, ordered by name
func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	ids, err := r.client.SMembers(ctx, monsterIndexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read monster index")
	}

	monsters := make([]*spirits.Monster, 0, len(ids))
	for _, id := range ids {
		out, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			// Stale index entry; drop it and keep going.
			if errors.IsNotFound(err) {
				r.client.SRem(ctx, monsterIndexKey, id)
				continue
			}
			return nil, errors.Wrapf(err, "failed to get monster %s", id)
		}
		monsters = append(monsters, out.Monster)
	}

	sort.Slice(monsters, func(i, j int) bool { return monsters[i].Name < monsters[j].Name })

	return &ListOutput{Monsters: monsters}, nil
}
