package favorite

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mercearia/backend/internal/domain/entity"
	domainerror "github.com/mercearia/backend/internal/domain/error"
)

type fakeFavoriteRepo struct {
	favorites []*entity.Favorite
	products  map[uuid.UUID]*entity.Product
	addCalls  int
}

func (r *fakeFavoriteRepo) Add(_ context.Context, favorite *entity.Favorite) error {
	r.addCalls++
	for _, f := range r.favorites {
		if f.Same(favorite) {
			return nil
		}
	}
	r.favorites = append(r.favorites, favorite)
	return nil
}

func (r *fakeFavoriteRepo) Remove(_ context.Context, userID, productID uuid.UUID) error {
	for i, f := range r.favorites {
		if f.UserID == userID && f.ProductID == productID {
			r.favorites = append(r.favorites[:i], r.favorites[i+1:]...)
			return nil
		}
	}
	return domainerror.ErrFavoriteNotFound
}

func (r *fakeFavoriteRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]*entity.FavoriteProduct, error) {
	var out []*entity.FavoriteProduct
	for _, f := range r.favorites {
		if f.UserID == userID {
			out = append(out, &entity.FavoriteProduct{Favorite: f, Product: r.products[f.ProductID]})
		}
	}
	return out, nil
}

func (r *fakeFavoriteRepo) Exists(_ context.Context, userID, productID uuid.UUID) (bool, error) {
	for _, f := range r.favorites {
		if f.UserID == userID && f.ProductID == productID {
			return true, nil
		}
	}
	return false, nil
}

type fakeProductRepo struct {
	products map[uuid.UUID]*entity.Product
}

func (r *fakeProductRepo) FindAll(_ context.Context) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeProductRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, domainerror.ErrProductNotFound
	}
	return p, nil
}

func (r *fakeProductRepo) Create(_ context.Context, product *entity.Product) error {
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.products)), nil
}

func setup() (*fakeFavoriteRepo, *fakeProductRepo, *entity.Product) {
	arroz := entity.NewProduct("Arroz", "Arroz branco", decimal.RequireFromString("24.90"), "", nil)
	products := map[uuid.UUID]*entity.Product{arroz.ID: arroz}
	return &fakeFavoriteRepo{products: products}, &fakeProductRepo{products: products}, arroz
}

func TestAddFavoriteUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("duplicate add is a no-op", func(t *testing.T) {
		favs, products, arroz := setup()
		uc := NewAddFavoriteUseCase(favs, products)

		first, err := uc.Execute(ctx, AddFavoriteInput{UserID: userID, ProductID: arroz.ID})
		require.NoError(t, err)
		assert.True(t, first.Created)

		second, err := uc.Execute(ctx, AddFavoriteInput{UserID: userID, ProductID: arroz.ID})
		require.NoError(t, err)
		assert.False(t, second.Created)

		assert.Len(t, favs.favorites, 1)
		assert.Equal(t, 1, favs.addCalls)
	})

	t.Run("unknown product", func(t *testing.T) {
		favs, products, _ := setup()
		uc := NewAddFavoriteUseCase(favs, products)

		_, err := uc.Execute(ctx, AddFavoriteInput{UserID: userID, ProductID: uuid.New()})
		var favErr *domainerror.FavoriteError
		require.True(t, errors.As(err, &favErr))
		assert.Equal(t, domainerror.ErrCodeFavoriteProductAbsent, favErr.Code)
		assert.Empty(t, favs.favorites)
	})
}

func TestRemoveFavoriteUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	favs, products, arroz := setup()

	_, err := NewAddFavoriteUseCase(favs, products).Execute(ctx, AddFavoriteInput{UserID: userID, ProductID: arroz.ID})
	require.NoError(t, err)

	uc := NewRemoveFavoriteUseCase(favs)
	require.NoError(t, uc.Execute(ctx, RemoveFavoriteInput{UserID: userID, ProductID: arroz.ID}))
	assert.Empty(t, favs.favorites)

	err = uc.Execute(ctx, RemoveFavoriteInput{UserID: userID, ProductID: arroz.ID})
	var favErr *domainerror.FavoriteError
	require.True(t, errors.As(err, &favErr))
	assert.Equal(t, domainerror.ErrCodeFavoriteNotFound, favErr.Code)
	assert.ErrorIs(t, err, domainerror.ErrFavoriteNotFound)
}

func TestListFavoritesUseCase(t *testing.T) {
	ctx := context.Background()
	favs, products, arroz := setup()
	ana, bia := uuid.New(), uuid.New()

	_, err := NewAddFavoriteUseCase(favs, products).Execute(ctx, AddFavoriteInput{UserID: ana, ProductID: arroz.ID})
	require.NoError(t, err)

	uc := NewListFavoritesUseCase(favs)

	out, err := uc.Execute(ctx, ListFavoritesInput{UserID: ana})
	require.NoError(t, err)
	require.Len(t, out.Favorites, 1)
	assert.Equal(t, "Arroz", out.Favorites[0].Product.Name)

	empty, err := uc.Execute(ctx, ListFavoritesInput{UserID: bia})
	require.NoError(t, err)
	assert.NotNil(t, empty.Favorites)
	assert.Empty(t, empty.Favorites)
}
