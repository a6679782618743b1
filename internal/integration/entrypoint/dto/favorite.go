package dto

import (
	"time"

	"github.com/mercearia/backend/internal/domain/entity"
)

// AddFavoriteRequest represents the request body for adding a favorite.
type AddFavoriteRequest struct {
	ProductID string `json:"produto_id" binding:"required,uuid"`
}

// FavoriteResponse represents a favorite with its product.
type FavoriteResponse struct {
	ID        string           `json:"id"`
	ProductID string           `json:"produto_id"`
	Product   *ProductResponse `json:"produto,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}

// FavoriteListResponse represents the favorites listing.
type FavoriteListResponse struct {
	Favorites []FavoriteResponse `json:"favoritos"`
	Total     int                `json:"total"`
}

// ToFavoriteResponse converts a domain FavoriteProduct to a FavoriteResponse DTO.
func ToFavoriteResponse(fp *entity.FavoriteProduct) FavoriteResponse {
	resp := FavoriteResponse{
		ID:        fp.Favorite.ID.String(),
		ProductID: fp.Favorite.ProductID.String(),
		CreatedAt: fp.Favorite.CreatedAt,
	}
	if fp.Product != nil {
		p := ToProductResponse(fp.Product)
		resp.Product = &p
	}
	return resp
}

// ToFavoriteListResponse converts favorites to a FavoriteListResponse DTO.
func ToFavoriteListResponse(favorites []*entity.FavoriteProduct) FavoriteListResponse {
	items := make([]FavoriteResponse, len(favorites))
	for i, f := range favorites {
		items[i] = ToFavoriteResponse(f)
	}
	return FavoriteListResponse{
		Favorites: items,
		Total:     len(items),
	}
}
