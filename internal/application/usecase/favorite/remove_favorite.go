// Package favorite contains use cases for the per-user favorites list.
package favorite

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/mercearia/backend/internal/application/adapter"
	domainerror "github.com/mercearia/backend/internal/domain/error"
)

// RemoveFavoriteInput represents the input for removing a favorite.
type RemoveFavoriteInput struct {
	UserID    uuid.UUID
	ProductID uuid.UUID
}

// RemoveFavoriteUseCase removes a product from the user's favorites.
type RemoveFavoriteUseCase struct {
	favoriteRepo adapter.FavoriteRepository
}

// NewRemoveFavoriteUseCase creates a new RemoveFavoriteUseCase instance.
func NewRemoveFavoriteUseCase(favoriteRepo adapter.FavoriteRepository) *RemoveFavoriteUseCase {
	return &RemoveFavoriteUseCase{
		favoriteRepo: favoriteRepo,
	}
}

// Execute performs the removal. Removing a product that is not a favorite fails.
func (uc *RemoveFavoriteUseCase) Execute(ctx context.Context, input RemoveFavoriteInput) error {
	if err := uc.favoriteRepo.Remove(ctx, input.UserID, input.ProductID); err != nil {
		if errors.Is(err, domainerror.ErrFavoriteNotFound) {
			return domainerror.NewFavoriteError(
				domainerror.ErrCodeFavoriteNotFound,
				"product is not in favorites",
				domainerror.ErrFavoriteNotFound,
			)
		}
		return fmt.Errorf("failed to remove favorite: %w", err)
	}

	return nil
}
