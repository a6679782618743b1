// Package product contains catalog-related use cases.
package product

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mercearia/backend/internal/application/adapter"
	"github.com/mercearia/backend/internal/domain/entity"
)

// ListProductsInput represents the input for listing the catalog.
type ListProductsInput struct{}

// ListProductsOutput represents the output of listing the catalog.
type ListProductsOutput struct {
	Products []*entity.Product
	Cached   bool
}

// ListProductsUseCase returns the whole catalog ordered by name.
// The list is served from the cache when present; cache failures fall back to the store.
type ListProductsUseCase struct {
	productRepo adapter.ProductRepository
	cache       adapter.ProductCache
	cacheTTL    time.Duration
}

// NewListProductsUseCase creates a new ListProductsUseCase instance.
// cache may be nil, in which case every call reads the store.
func NewListProductsUseCase(
	productRepo adapter.ProductRepository,
	cache adapter.ProductCache,
	cacheTTL time.Duration,
) *ListProductsUseCase {
	return &ListProductsUseCase{
		productRepo: productRepo,
		cache:       cache,
		cacheTTL:    cacheTTL,
	}
}

// Execute performs the catalog listing.
func (uc *ListProductsUseCase) Execute(ctx context.Context, _ ListProductsInput) (*ListProductsOutput, error) {
	if uc.cache != nil {
		products, ok, err := uc.cache.GetAll(ctx)
		if err != nil {
			slog.WarnContext(ctx, "Catalog cache read failed", "error", err)
		} else if ok {
			return &ListProductsOutput{Products: products, Cached: true}, nil
		}
	}

	products, err := uc.productRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	if uc.cache != nil && uc.cacheTTL > 0 {
		if err := uc.cache.SetAll(ctx, products, uc.cacheTTL); err != nil {
			slog.WarnContext(ctx, "Catalog cache write failed", "error", err)
		}
	}

	return &ListProductsOutput{Products: products}, nil
}
