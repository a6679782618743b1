package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mercearia/backend/internal/application/adapter"
	"github.com/mercearia/backend/internal/domain/entity"
	domainerror "github.com/mercearia/backend/internal/domain/error"
	"github.com/mercearia/backend/internal/integration/persistence/model"
)

// favoriteRepository implements the adapter.FavoriteRepository interface.
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository creates a new favorite repository instance.
func NewFavoriteRepository(db *gorm.DB) adapter.FavoriteRepository {
	return &favoriteRepository{
		db: db,
	}
}

// Add stores the favorite. An existing (user, product) pair is left untouched.
func (r *favoriteRepository) Add(ctx context.Context, favorite *entity.Favorite) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
			DoNothing: true,
		}).
		Create(model.FavoriteFromEntity(favorite)).Error
}

// Remove deletes the favorite, returning ErrFavoriteNotFound when there was none.
func (r *favoriteRepository) Remove(ctx context.Context, userID, productID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&model.FavoriteModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrFavoriteNotFound
	}
	return nil
}

// ListByUser returns the user's favorites with their products, newest first.
func (r *favoriteRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.FavoriteProduct, error) {
	var models []model.FavoriteModel
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	favorites := make([]*entity.FavoriteProduct, 0, len(models))
	for i := range models {
		favorites = append(favorites, models[i].ToFavoriteProduct())
	}
	return favorites, nil
}

// Exists reports whether the user already favorited the product.
func (r *favoriteRepository) Exists(ctx context.Context, userID, productID uuid.UUID) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.FavoriteModel{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}
