// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mercearia/backend/internal/domain/entity"
)

// ProductRepository defines the interface for catalog persistence operations.
type ProductRepository interface {
	// FindAll retrieves every product ordered by name.
	FindAll(ctx context.Context) ([]*entity.Product, error)

	// FindByID retrieves a product by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// Create stores a new product.
	Create(ctx context.Context, product *entity.Product) error

	// Count returns the number of stored products.
	Count(ctx context.Context) (int64, error)
}

// ProductCache caches the full catalog listing.
type ProductCache interface {
	// GetAll returns the cached catalog and whether it was present.
	GetAll(ctx context.Context) ([]*entity.Product, bool, error)

	// SetAll stores the catalog for ttl.
	SetAll(ctx context.Context, products []*entity.Product, ttl time.Duration) error

	// Invalidate drops the cached catalog.
	Invalidate(ctx context.Context) error
}
