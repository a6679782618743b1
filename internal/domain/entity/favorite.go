package entity

import (
	"time"

	"github.com/google/uuid"
)

// Favorite marks a product as favorited by a user.
type Favorite struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	ProductID uuid.UUID
	CreatedAt time.Time
}

// NewFavorite creates a new Favorite for the given user and product.
func NewFavorite(userID, productID uuid.UUID) *Favorite {
	return &Favorite{
		ID:        uuid.New(),
		UserID:    userID,
		ProductID: productID,
		CreatedAt: time.Now().UTC(),
	}
}

// Same reports whether both favorites refer to the same user and product pair.
func (f *Favorite) Same(other *Favorite) bool {
	if other == nil {
		return false
	}
	return f.UserID == other.UserID && f.ProductID == other.ProductID
}

// FavoriteProduct is a favorite joined with the product it points to.
type FavoriteProduct struct {
	Favorite *Favorite
	Product  *Product
}
