// Package favorite contains use cases for the per-user favorites list.
package favorite

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mercearia/backend/internal/application/adapter"
	"github.com/mercearia/backend/internal/domain/entity"
)

// ListFavoritesInput represents the input for listing favorites.
type ListFavoritesInput struct {
	UserID uuid.UUID
}

// ListFavoritesOutput represents the output of listing favorites.
type ListFavoritesOutput struct {
	Favorites []*entity.FavoriteProduct
}

// ListFavoritesUseCase lists a user's favorites with their products, newest first.
type ListFavoritesUseCase struct {
	favoriteRepo adapter.FavoriteRepository
}

// NewListFavoritesUseCase creates a new ListFavoritesUseCase instance.
func NewListFavoritesUseCase(favoriteRepo adapter.FavoriteRepository) *ListFavoritesUseCase {
	return &ListFavoritesUseCase{
		favoriteRepo: favoriteRepo,
	}
}

// Execute performs the listing.
func (uc *ListFavoritesUseCase) Execute(ctx context.Context, input ListFavoritesInput) (*ListFavoritesOutput, error) {
	favorites, err := uc.favoriteRepo.ListByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}

	if favorites == nil {
		favorites = []*entity.FavoriteProduct{}
	}

	return &ListFavoritesOutput{Favorites: favorites}, nil
}
