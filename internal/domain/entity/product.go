package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product represents an item of the grocery catalog.
type Product struct {
	ID          uuid.UUID
	Name        string
	Description string
	Price       decimal.Decimal
	ImageURL    string
	Tags        []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewProduct creates a new Product entity.
// Price validation is the caller's job (see the product use cases).
func NewProduct(name, description string, price decimal.Decimal, imageURL string, tags []string) *Product {
	now := time.Now().UTC()

	return &Product{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		Price:       price,
		ImageURL:    imageURL,
		Tags:        tags,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
