// Package monster provides the repository interface and types for monster
// catalog storage
package monster

import (
	"context"

	"github.com/arcspirits/spirits-api/internal/entities/spirits"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=monstermock github.com/arcspirits/spirits-api/internal/repositories/monster Repository

// CreateInput contains parameters for storing a new monster
type CreateInput struct {
	Monster *spirits.Monster
}

// CreateOutput contains the result of storing a monster
type CreateOutput struct {
	Monster *spirits.Monster
}

// GetInput contains parameters for retrieving a monster
type GetInput struct {
	ID string
}

// GetOutput contains the result of retrieving a monster
type GetOutput struct {
	Monster *spirits.Monster
}

// UpdateInput contains parameters for replacing a monster
type UpdateInput struct {
	Monster *spirits.Monster
}

// UpdateOutput contains the result of replacing a monster
type UpdateOutput struct {
	Monster *spirits.Monster
}

// DeleteInput contains parameters for deleting a monster
type DeleteInput struct {
	ID string
}

// DeleteOutput contains the result of deleting a monster
type DeleteOutput struct{}

// ListInput contains parameters for listing monsters
type ListInput struct{}

// ListOutput contains the monsters in the catalog
type ListOutput struct {
	Monsters []*spirits.Monster
}

// Repository defines the interface for monster storage operations
type Repository interface {
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)
	Get(ctx context.Context, input GetInput) (*GetOutput, error)
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}
