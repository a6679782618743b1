package product

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mercearia/backend/internal/domain/entity"
	domainerror "github.com/mercearia/backend/internal/domain/error"
)

type fakeProductRepo struct {
	products  []*entity.Product
	findCalls int
}

func (r *fakeProductRepo) FindAll(_ context.Context) ([]*entity.Product, error) {
	r.findCalls++
	out := append([]*entity.Product(nil), r.products...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeProductRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, domainerror.ErrProductNotFound
}

func (r *fakeProductRepo) Create(_ context.Context, product *entity.Product) error {
	r.products = append(r.products, product)
	return nil
}

func (r *fakeProductRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.products)), nil
}

type fakeCache struct {
	products    []*entity.Product
	present     bool
	getErr      error
	invalidated int
	lastTTL     time.Duration
}

func (c *fakeCache) GetAll(_ context.Context) ([]*entity.Product, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	return c.products, c.present, nil
}

func (c *fakeCache) SetAll(_ context.Context, products []*entity.Product, ttl time.Duration) error {
	c.products = products
	c.present = true
	c.lastTTL = ttl
	return nil
}

func (c *fakeCache) Invalidate(_ context.Context) error {
	c.invalidated++
	c.products = nil
	c.present = false
	return nil
}

func seededRepo() *fakeProductRepo {
	return &fakeProductRepo{products: []*entity.Product{
		entity.NewProduct("Feijão", "Feijão carioca", decimal.RequireFromString("8.49"), "", nil),
		entity.NewProduct("Arroz", "Arroz branco", decimal.RequireFromString("24.90"), "", []string{"grãos"}),
	}}
}

func TestListProductsUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("reads through the cache", func(t *testing.T) {
		repo := seededRepo()
		cache := &fakeCache{}
		uc := NewListProductsUseCase(repo, cache, time.Minute)

		first, err := uc.Execute(ctx, ListProductsInput{})
		require.NoError(t, err)
		require.Len(t, first.Products, 2)
		assert.Equal(t, "Arroz", first.Products[0].Name)
		assert.False(t, first.Cached)
		assert.Equal(t, time.Minute, cache.lastTTL)

		second, err := uc.Execute(ctx, ListProductsInput{})
		require.NoError(t, err)
		assert.True(t, second.Cached)
		assert.Equal(t, 1, repo.findCalls)
	})

	t.Run("cache failure falls back to the store", func(t *testing.T) {
		repo := seededRepo()
		uc := NewListProductsUseCase(repo, &fakeCache{getErr: errors.New("connection refused")}, time.Minute)

		out, err := uc.Execute(ctx, ListProductsInput{})
		require.NoError(t, err)
		assert.Len(t, out.Products, 2)
		assert.Equal(t, 1, repo.findCalls)
	})

	t.Run("works without a cache", func(t *testing.T) {
		uc := NewListProductsUseCase(seededRepo(), nil, 0)

		out, err := uc.Execute(ctx, ListProductsInput{})
		require.NoError(t, err)
		assert.Len(t, out.Products, 2)
	})
}

func TestGetProductUseCase(t *testing.T) {
	ctx := context.Background()
	repo := seededRepo()
	uc := NewGetProductUseCase(repo)

	out, err := uc.Execute(ctx, GetProductInput{ProductID: repo.products[0].ID})
	require.NoError(t, err)
	assert.Equal(t, "Feijão", out.Product.Name)

	_, err = uc.Execute(ctx, GetProductInput{ProductID: uuid.New()})
	var productErr *domainerror.ProductError
	require.True(t, errors.As(err, &productErr))
	assert.Equal(t, domainerror.ErrCodeProductNotFound, productErr.Code)
	assert.ErrorIs(t, err, domainerror.ErrProductNotFound)
}

func TestCreateProductUseCase(t *testing.T) {
	ctx := context.Background()

	valid := CreateProductInput{
		ActorRole:   entity.RoleAdmin,
		Name:        "  Café  ",
		Description: "Café torrado e moído",
		Price:       decimal.RequireFromString("15.999"),
		Tags:        []string{"bebidas", " ", "matinal"},
	}

	t.Run("admin creates and invalidates the cache", func(t *testing.T) {
		repo := seededRepo()
		cache := &fakeCache{present: true}
		uc := NewCreateProductUseCase(repo, cache)

		out, err := uc.Execute(ctx, valid)
		require.NoError(t, err)
		assert.Equal(t, "Café", out.Product.Name)
		assert.True(t, decimal.RequireFromString("16").Equal(out.Product.Price))
		assert.Equal(t, []string{"bebidas", "matinal"}, out.Product.Tags)
		assert.Len(t, repo.products, 3)
		assert.Equal(t, 1, cache.invalidated)
	})

	t.Run("standard user is forbidden", func(t *testing.T) {
		repo := seededRepo()
		input := valid
		input.ActorRole = entity.RoleUser

		_, err := NewCreateProductUseCase(repo, nil).Execute(ctx, input)
		var authErr *domainerror.AuthError
		require.True(t, errors.As(err, &authErr))
		assert.Equal(t, domainerror.ErrCodeForbidden, authErr.Code)
		assert.Len(t, repo.products, 2)
	})

	tests := []struct {
		name   string
		mutate func(*CreateProductInput)
		code   domainerror.ProductErrorCode
	}{
		{"blank name", func(in *CreateProductInput) { in.Name = "   " }, domainerror.ErrCodeInvalidProductName},
		{"zero price", func(in *CreateProductInput) { in.Price = decimal.Zero }, domainerror.ErrCodeInvalidProductPrice},
		{"sub-cent price rounds to zero", func(in *CreateProductInput) { in.Price = decimal.RequireFromString("0.004") }, domainerror.ErrCodeInvalidProductPrice},
		{"negative price", func(in *CreateProductInput) { in.Price = decimal.NewFromInt(-3) }, domainerror.ErrCodeInvalidProductPrice},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := valid
			tt.mutate(&input)

			_, err := NewCreateProductUseCase(seededRepo(), nil).Execute(ctx, input)
			var productErr *domainerror.ProductError
			require.True(t, errors.As(err, &productErr))
			assert.Equal(t, tt.code, productErr.Code)
			assert.ErrorIs(t, err, domainerror.ErrInvalidProduct)
		})
	}
}
