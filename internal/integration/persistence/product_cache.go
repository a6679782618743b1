package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/mercearia/backend/internal/application/adapter"
	"github.com/mercearia/backend/internal/domain/entity"
)

// catalogCacheKey holds the JSON-encoded, name-ordered catalog.
const catalogCacheKey = "mercearia:catalog:all"

type cachedProduct struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url"`
	Tags        []string        `json:"tags"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// productCache implements the adapter.ProductCache interface on Redis.
type productCache struct {
	client redis.UniversalClient
}

// NewProductCache creates a catalog cache backed by the given Redis client.
func NewProductCache(client redis.UniversalClient) adapter.ProductCache {
	return &productCache{
		client: client,
	}
}

// GetAll returns the cached catalog. The boolean is false on a cache miss.
func (c *productCache) GetAll(ctx context.Context) ([]*entity.Product, bool, error) {
	raw, err := c.client.Get(ctx, catalogCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read catalog cache: %w", err)
	}

	var cached []cachedProduct
	if err := json.Unmarshal(raw, &cached); err != nil {
		return nil, false, fmt.Errorf("failed to decode catalog cache: %w", err)
	}

	products := make([]*entity.Product, len(cached))
	for i, p := range cached {
		products[i] = &entity.Product{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			ImageURL:    p.ImageURL,
			Tags:        p.Tags,
			CreatedAt:   p.CreatedAt,
			UpdatedAt:   p.UpdatedAt,
		}
	}
	return products, true, nil
}

// SetAll stores the catalog for ttl.
func (c *productCache) SetAll(ctx context.Context, products []*entity.Product, ttl time.Duration) error {
	cached := make([]cachedProduct, len(products))
	for i, p := range products {
		cached[i] = cachedProduct{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			ImageURL:    p.ImageURL,
			Tags:        p.Tags,
			CreatedAt:   p.CreatedAt,
			UpdatedAt:   p.UpdatedAt,
		}
	}

	raw, err := json.Marshal(cached)
	if err != nil {
		return fmt.Errorf("failed to encode catalog cache: %w", err)
	}

	if err := c.client.Set(ctx, catalogCacheKey, raw, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write catalog cache: %w", err)
	}
	return nil
}

// Invalidate drops the cached catalog.
func (c *productCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, catalogCacheKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate catalog cache: %w", err)
	}
	return nil
}
