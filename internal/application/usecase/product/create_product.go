// Package product contains catalog-related use cases.
package product

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mercearia/backend/internal/application/adapter"
	"github.com/mercearia/backend/internal/domain/entity"
	domainerror "github.com/mercearia/backend/internal/domain/error"
)

// MaxProductNameLength is the maximum length for a product name.
const MaxProductNameLength = 100

// CreateProductInput represents the input for adding a product to the catalog.
type CreateProductInput struct {
	ActorRole   entity.Role
	Name        string
	Description string
	Price       decimal.Decimal
	ImageURL    string
	Tags        []string
}

// CreateProductOutput represents the output of product creation.
type CreateProductOutput struct {
	Product *entity.Product
}

// CreateProductUseCase handles product creation. Only admins may add products.
type CreateProductUseCase struct {
	productRepo adapter.ProductRepository
	cache       adapter.ProductCache
}

// NewCreateProductUseCase creates a new CreateProductUseCase instance.
func NewCreateProductUseCase(productRepo adapter.ProductRepository, cache adapter.ProductCache) *CreateProductUseCase {
	return &CreateProductUseCase{
		productRepo: productRepo,
		cache:       cache,
	}
}

// Execute performs the product creation.
func (uc *CreateProductUseCase) Execute(ctx context.Context, input CreateProductInput) (*CreateProductOutput, error) {
	if input.ActorRole != entity.RoleAdmin {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeForbidden,
			"admin role required",
			domainerror.ErrForbidden,
		)
	}

	name := strings.TrimSpace(input.Name)
	if name == "" || len(name) > MaxProductNameLength {
		return nil, domainerror.NewProductError(
			domainerror.ErrCodeInvalidProductName,
			fmt.Sprintf("product name must be between 1 and %d characters", MaxProductNameLength),
			domainerror.ErrInvalidProduct,
		)
	}

	price := input.Price.Round(2)
	if !price.IsPositive() {
		return nil, domainerror.NewProductError(
			domainerror.ErrCodeInvalidProductPrice,
			"product price must be greater than zero",
			domainerror.ErrInvalidProduct,
		)
	}

	tags := make([]string, 0, len(input.Tags))
	for _, tag := range input.Tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}

	product := entity.NewProduct(
		name,
		strings.TrimSpace(input.Description),
		price,
		strings.TrimSpace(input.ImageURL),
		tags,
	)

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	if uc.cache != nil {
		if err := uc.cache.Invalidate(ctx); err != nil {
			slog.WarnContext(ctx, "Catalog cache invalidation failed", "error", err)
		}
	}

	slog.InfoContext(ctx, "Product created", "product_id", product.ID, "name", product.Name)

	return &CreateProductOutput{Product: product}, nil
}
