// Package card provides the repository interface and types for draftable
// card storage
package card

import (
	"context"

	"github.com/arcspirits/spirits-api/internal/entities/spirits"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=cardmock github.com/arcspirits/spirits-api/internal/repositories/card Repository

// CreateInput contains parameters for storing a new card
type CreateInput struct {
	Card *spirits.Card
}

// CreateOutput contains the result of storing a card
type CreateOutput struct {
	Card *spirits.Card
}

// GetInput contains parameters for retrieving a card
type GetInput struct {
	ID string
}

// GetOutput contains the result of retrieving a card
type GetOutput struct {
	Card *spirits.Card
}

// UpdateInput contains parameters for replacing a card
type UpdateInput struct {
	Card *spirits.Card
}

// UpdateOutput contains the result of replacing a card
type UpdateOutput struct {
	Card *spirits.Card
}

// DeleteInput contains parameters for deleting a card
type DeleteInput struct {
	ID string
}

// DeleteOutput contains the result of deleting a card
type DeleteOutput struct{}

// ListInput contains parameters for listing cards. Rarity narrows the list
// to a single tier when set.
type ListInput struct {
	Rarity spirits.Rarity
}

// ListOutput contains the cards matching the list filter
type ListOutput struct {
	Cards []*spirits.Card
}

// Repository defines the interface for card storage operations
type Repository interface {
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)
	Get(ctx context.Context, input GetInput) (*GetOutput, error)
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}
