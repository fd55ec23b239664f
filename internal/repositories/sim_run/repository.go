// Package simrun provides repository interface and types for completed
// simulation runs
package simrun

import (
	"context"
	"time"

	"github.com/arcspirits/spirits-api/internal/engine/shopsim"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=simrunmock github.com/arcspirits/spirits-api/internal/repositories/sim_run Repository

// Run is a completed simulation kept around for a while so clients can
// re-fetch it by ID instead of re-running the estimator.
type Run struct {
	// ID of the run, generated when the simulation was requested
	ID string `json:"id"`

	// Params the run was executed with (randomness source excluded)
	Params shopsim.Params `json:"params"`

	// Seed used for the run, when the caller asked for a reproducible one
	Seed *uint64 `json:"seed,omitempty"`

	// Result of the run
	Result *shopsim.Result `json:"result"`

	// When this run was stored
	CreatedAt time.Time `json:"created_at"`

	// When this run expires
	ExpiresAt time.Time `json:"expires_at"`
}

// CreateInput contains parameters for storing a run
type CreateInput struct {
	Run *Run
	TTL time.Duration // how long the run should live
}

// CreateOutput contains the result of storing a run
type CreateOutput struct {
	Run *Run
}

// GetInput contains parameters for retrieving a run
type GetInput struct {
	ID string
}

// GetOutput contains the result of retrieving a run
type GetOutput struct {
	Run *Run
}

// DeleteInput contains parameters for deleting a run
type DeleteInput struct {
	ID string
}

// DeleteOutput contains the result of deleting a run
type DeleteOutput struct{}

// Repository defines the interface for simulation run storage
type Repository interface {
	// Create stores a run with the specified TTL
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a run by ID
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete removes a run
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}
