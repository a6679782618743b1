package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mercearia/backend/internal/domain/entity"
	domainerror "github.com/mercearia/backend/internal/domain/error"
	"github.com/mercearia/backend/internal/integration/persistence/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&model.UserModel{}, &model.ProductModel{}, &model.FavoriteModel{}))
	return db
}

func mustUser(t *testing.T, email string) *entity.User {
	t.Helper()
	u, err := entity.NewUser("Ana", email, "$2a$04$hash", entity.RoleUser)
	require.NoError(t, err)
	return u
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	user := mustUser(t, "ana@example.com")
	require.NoError(t, repo.Create(ctx, user))

	t.Run("find by email and id", func(t *testing.T) {
		found, err := repo.FindByEmail(ctx, "ana@example.com")
		require.NoError(t, err)
		assert.Equal(t, user.ID, found.ID)
		assert.Equal(t, entity.RoleUser, found.Role)

		found, err = repo.FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "ana@example.com", found.Email)
	})

	t.Run("absent user", func(t *testing.T) {
		_, err := repo.FindByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, domainerror.ErrUserNotFound)

		_, err = repo.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, domainerror.ErrUserNotFound)
	})

	t.Run("duplicate email", func(t *testing.T) {
		err := repo.Create(ctx, mustUser(t, "ana@example.com"))
		assert.ErrorIs(t, err, domainerror.ErrEmailAlreadyExists)
	})

	t.Run("update password", func(t *testing.T) {
		require.NoError(t, repo.UpdatePassword(ctx, user.ID, "$2a$04$other"))

		found, err := repo.FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "$2a$04$other", found.PasswordHash)

		assert.ErrorIs(t, repo.UpdatePassword(ctx, uuid.New(), "x"), domainerror.ErrUserNotFound)
	})

	t.Run("exists and count", func(t *testing.T) {
		exists, err := repo.ExistsByEmail(ctx, "ana@example.com")
		require.NoError(t, err)
		assert.True(t, exists)

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})
}

func TestProductRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(newTestDB(t))

	cafe := entity.NewProduct("Café", "Café torrado", decimal.RequireFromString("15.90"), "cafe.png", []string{"bebidas", "matinal"})
	arroz := entity.NewProduct("Arroz", "Arroz branco", decimal.RequireFromString("24.90"), "", nil)
	require.NoError(t, repo.Create(ctx, cafe))
	require.NoError(t, repo.Create(ctx, arroz))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Arroz", all[0].Name)
	assert.Equal(t, "Café", all[1].Name)

	found, err := repo.FindByID(ctx, cafe.ID)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("15.90").Equal(found.Price))
	assert.Equal(t, []string{"bebidas", "matinal"}, found.Tags)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, domainerror.ErrProductNotFound)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestFavoriteRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	users := NewUserRepository(db)
	products := NewProductRepository(db)
	repo := NewFavoriteRepository(db)

	user := mustUser(t, "ana@example.com")
	require.NoError(t, users.Create(ctx, user))
	arroz := entity.NewProduct("Arroz", "", decimal.RequireFromString("24.90"), "", nil)
	feijao := entity.NewProduct("Feijão", "", decimal.RequireFromString("8.49"), "", nil)
	require.NoError(t, products.Create(ctx, arroz))
	require.NoError(t, products.Create(ctx, feijao))

	first := entity.NewFavorite(user.ID, arroz.ID)
	first.CreatedAt = time.Now().UTC().Add(-time.Minute)
	require.NoError(t, repo.Add(ctx, first))
	require.NoError(t, repo.Add(ctx, entity.NewFavorite(user.ID, feijao.ID)))

	t.Run("duplicate add keeps a single row", func(t *testing.T) {
		require.NoError(t, repo.Add(ctx, entity.NewFavorite(user.ID, arroz.ID)))

		var count int64
		require.NoError(t, db.Model(&model.FavoriteModel{}).Count(&count).Error)
		assert.Equal(t, int64(2), count)
	})

	t.Run("list newest first with products", func(t *testing.T) {
		list, err := repo.ListByUser(ctx, user.ID)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "Feijão", list[0].Product.Name)
		assert.Equal(t, "Arroz", list[1].Product.Name)

		empty, err := repo.ListByUser(ctx, uuid.New())
		require.NoError(t, err)
		assert.Empty(t, empty)
	})

	t.Run("remove", func(t *testing.T) {
		exists, err := repo.Exists(ctx, user.ID, feijao.ID)
		require.NoError(t, err)
		assert.True(t, exists)

		require.NoError(t, repo.Remove(ctx, user.ID, feijao.ID))
		assert.ErrorIs(t, repo.Remove(ctx, user.ID, feijao.ID), domainerror.ErrFavoriteNotFound)

		exists, err = repo.Exists(ctx, user.ID, feijao.ID)
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestProductCache(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cache := NewProductCache(client)

	_, ok, err := cache.GetAll(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	products := []*entity.Product{
		entity.NewProduct("Arroz", "Arroz branco", decimal.RequireFromString("24.90"), "", []string{"grãos"}),
	}
	require.NoError(t, cache.SetAll(ctx, products, time.Minute))

	got, ok, err := cache.GetAll(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, got, 1)
	assert.Equal(t, products[0].ID, got[0].ID)
	assert.True(t, products[0].Price.Equal(got[0].Price))
	assert.Equal(t, []string{"grãos"}, got[0].Tags)

	mr.FastForward(2 * time.Minute)
	_, ok, err = cache.GetAll(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cache.SetAll(ctx, products, time.Minute))
	require.NoError(t, cache.Invalidate(ctx))
	_, ok, err = cache.GetAll(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}
