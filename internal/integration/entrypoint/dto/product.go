package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mercearia/backend/internal/domain/entity"
)

// CreateProductRequest represents the request body for product creation.
type CreateProductRequest struct {
	Name        string          `json:"nome" binding:"required,min=1,max=100"`
	Description string          `json:"descricao" binding:"max=1000"`
	Price       decimal.Decimal `json:"preco" binding:"required"`
	ImageURL    string          `json:"imagem" binding:"max=500"`
	Tags        []string        `json:"tags"`
}

// ProductResponse represents a product in API responses.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"nome"`
	Description string          `json:"descricao"`
	Price       decimal.Decimal `json:"preco"`
	ImageURL    string          `json:"imagem"`
	Tags        []string        `json:"tags"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ProductListResponse represents the catalog listing.
type ProductListResponse struct {
	Products []ProductResponse `json:"produtos"`
	Total    int               `json:"total"`
}

// ToProductResponse converts a domain Product entity to a ProductResponse DTO.
func ToProductResponse(product *entity.Product) ProductResponse {
	tags := product.Tags
	if tags == nil {
		tags = []string{}
	}

	return ProductResponse{
		ID:          product.ID.String(),
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price.Round(2),
		ImageURL:    product.ImageURL,
		Tags:        tags,
		CreatedAt:   product.CreatedAt,
	}
}

// ToProductListResponse converts a slice of products to a ProductListResponse DTO.
func ToProductListResponse(products []*entity.Product) ProductListResponse {
	items := make([]ProductResponse, len(products))
	for i, p := range products {
		items[i] = ToProductResponse(p)
	}
	return ProductListResponse{
		Products: items,
		Total:    len(items),
	}
}
