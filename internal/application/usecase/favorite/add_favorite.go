// Package favorite contains use cases for the per-user favorites list.
package favorite

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/mercearia/backend/internal/application/adapter"
	"github.com/mercearia/backend/internal/domain/entity"
	domainerror "github.com/mercearia/backend/internal/domain/error"
)

// AddFavoriteInput represents the input for favoriting a product.
type AddFavoriteInput struct {
	UserID    uuid.UUID
	ProductID uuid.UUID
}

// AddFavoriteOutput represents the output of favoriting a product.
type AddFavoriteOutput struct {
	Favorite *entity.Favorite
	Created  bool
}

// AddFavoriteUseCase adds a product to the user's favorites.
// Adding a product twice is a no-op.
type AddFavoriteUseCase struct {
	favoriteRepo adapter.FavoriteRepository
	productRepo  adapter.ProductRepository
}

// NewAddFavoriteUseCase creates a new AddFavoriteUseCase instance.
func NewAddFavoriteUseCase(
	favoriteRepo adapter.FavoriteRepository,
	productRepo adapter.ProductRepository,
) *AddFavoriteUseCase {
	return &AddFavoriteUseCase{
		favoriteRepo: favoriteRepo,
		productRepo:  productRepo,
	}
}

// Execute performs the favorite addition.
func (uc *AddFavoriteUseCase) Execute(ctx context.Context, input AddFavoriteInput) (*AddFavoriteOutput, error) {
	if _, err := uc.productRepo.FindByID(ctx, input.ProductID); err != nil {
		if errors.Is(err, domainerror.ErrProductNotFound) {
			return nil, domainerror.NewFavoriteError(
				domainerror.ErrCodeFavoriteProductAbsent,
				"product not found",
				domainerror.ErrProductNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find product: %w", err)
	}

	favorite := entity.NewFavorite(input.UserID, input.ProductID)

	exists, err := uc.favoriteRepo.Exists(ctx, input.UserID, input.ProductID)
	if err != nil {
		return nil, fmt.Errorf("failed to check favorite: %w", err)
	}
	if exists {
		return &AddFavoriteOutput{Favorite: favorite, Created: false}, nil
	}

	if err := uc.favoriteRepo.Add(ctx, favorite); err != nil {
		return nil, fmt.Errorf("failed to add favorite: %w", err)
	}

	return &AddFavoriteOutput{Favorite: favorite, Created: true}, nil
}
