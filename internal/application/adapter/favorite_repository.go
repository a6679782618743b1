// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/mercearia/backend/internal/domain/entity"
)

// FavoriteRepository defines the interface for favorites persistence operations.
type FavoriteRepository interface {
	// Add stores a favorite. Adding an existing pair is a no-op.
	Add(ctx context.Context, favorite *entity.Favorite) error

	// Remove deletes the favorite for the user and product pair.
	Remove(ctx context.Context, userID, productID uuid.UUID) error

	// ListByUser returns the user's favorites joined with their products.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.FavoriteProduct, error)

	// Exists checks if the user already favorited the product.
	Exists(ctx context.Context, userID, productID uuid.UUID) (bool, error)
}
