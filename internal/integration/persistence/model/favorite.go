package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/mercearia/backend/internal/domain/entity"
)

// FavoriteModel represents the favorites table. A (user, product) pair appears at most once.
type FavoriteModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_user_product"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_user_product;index"`
	CreatedAt time.Time `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	User    *UserModel    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Product *ProductModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the FavoriteModel.
func (FavoriteModel) TableName() string {
	return "favorites"
}

// ToEntity converts a FavoriteModel to a domain Favorite entity.
func (m *FavoriteModel) ToEntity() *entity.Favorite {
	return &entity.Favorite{
		ID:        m.ID,
		UserID:    m.UserID,
		ProductID: m.ProductID,
		CreatedAt: m.CreatedAt,
	}
}

// ToFavoriteProduct converts a FavoriteModel with a preloaded product.
func (m *FavoriteModel) ToFavoriteProduct() *entity.FavoriteProduct {
	fp := &entity.FavoriteProduct{Favorite: m.ToEntity()}
	if m.Product != nil {
		fp.Product = m.Product.ToEntity()
	}
	return fp
}

// FavoriteFromEntity creates a FavoriteModel from a domain Favorite entity.
func FavoriteFromEntity(favorite *entity.Favorite) *FavoriteModel {
	return &FavoriteModel{
		ID:        favorite.ID,
		UserID:    favorite.UserID,
		ProductID: favorite.ProductID,
		CreatedAt: favorite.CreatedAt,
	}
}
