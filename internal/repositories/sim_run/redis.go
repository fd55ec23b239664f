package simrun

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/arcspirits/spirits-api/internal/errors"
	"github.com/arcspirits/spirits-api/internal/pkg/clock"
	redisclient "github.com/arcspirits/spirits-api/internal/redis"
)

const (
	// Key pattern: sim_run:{id}
	runKeyPrefix = "sim_run:"
	defaultTTL   = 1 * time.Hour

	errRunNil     = "run cannot be nil"
	errRunIDEmpty = "run ID cannot be empty"
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

// NewRedis creates a new Redis repository for simulation runs
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

// Create stores a run with the specified TTL
func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Run == nil {
		return nil, errors.InvalidArgument(errRunNil)
	}
	if input.Run.ID == "" {
		return nil, errors.InvalidArgument(errRunIDEmpty)
	}

	now := r.clock.Now()
	ttl := input.TTL
	if ttl == 0 {
		ttl = defaultTTL
	}
	input.Run.CreatedAt = now
	input.Run.ExpiresAt = now.Add(ttl)

	data, err := json.Marshal(input.Run)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal run")
	}

	if err := r.client.Set(ctx, runKeyPrefix+input.Run.ID, data, ttl).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store run")
	}

	return &CreateOutput{Run: input.Run}, nil
}

// Get retrieves a run by ID
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errRunIDEmpty)
	}

	key := runKeyPrefix + input.ID
	data, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("simulation run %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get run")
	}

	var run Run
	if err := json.Unmarshal([]byte(data), &run); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal run")
	}

	// Redis TTL is the real expiry; this guards against clock drift between
	// writers.
	if r.clock.Now().After(run.ExpiresAt) {
		_ = r.client.Del(ctx, key)
		return nil, errors.NotFoundf("simulation run %s has expired", input.ID)
	}

	return &GetOutput{Run: &run}, nil
}

// Delete removes a run
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errRunIDEmpty)
	}

	if err := r.client.Del(ctx, runKeyPrefix+input.ID).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to delete run")
	}

	return &DeleteOutput{}, nil
}
