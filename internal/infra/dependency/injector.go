// Package dependency provides dependency injection for the application.
package dependency

import (
	"gorm.io/gorm"

	"github.com/mercearia/backend/config"
	"github.com/mercearia/backend/internal/application/adapter"
	"github.com/mercearia/backend/internal/application/usecase/auth"
	"github.com/mercearia/backend/internal/application/usecase/favorite"
	"github.com/mercearia/backend/internal/application/usecase/product"
	"github.com/mercearia/backend/internal/infra/cache"
	"github.com/mercearia/backend/internal/infra/seed"
	"github.com/mercearia/backend/internal/infra/server/router"
	"github.com/mercearia/backend/internal/integration/adapters"
	"github.com/mercearia/backend/internal/integration/entrypoint/controller"
	"github.com/mercearia/backend/internal/integration/entrypoint/middleware"
	"github.com/mercearia/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config          *config.Config
	DB              *gorm.DB
	Redis           *cache.Redis
	Router          *router.Router
	Seeder          *seed.Seeder
	PasswordService adapter.PasswordService
	TokenService    adapter.TokenService
}

// NewInjector creates a new dependency injector with all dependencies wired.
// redis may be nil, in which case the catalog is always read from the database.
func NewInjector(cfg *config.Config, db *gorm.DB, redis *cache.Redis) *Injector {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	productRepo := persistence.NewProductRepository(db)
	favoriteRepo := persistence.NewFavoriteRepository(db)

	var productCache adapter.ProductCache
	cacheHealthChecker := func() bool { return false }
	if redis != nil {
		productCache = persistence.NewProductCache(redis.Client)
		cacheHealthChecker = redis.HealthCheck
	}

	// Create adapters/services
	passwordService := adapters.NewPasswordService(cfg.Security.BcryptCost)
	tokenService := adapters.NewTokenService(
		cfg.JWT.Secret,
		adapters.WithIssuer(cfg.JWT.Issuer),
		adapters.WithDefaultExpiry(cfg.JWT.Expiry),
	)

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService, cfg.JWT.Expiry)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService, cfg.JWT.Expiry)
	changePasswordUseCase := auth.NewChangePasswordUseCase(userRepo, passwordService)
	getCurrentUserUseCase := auth.NewGetCurrentUserUseCase(userRepo)

	// Create product use cases
	listProductsUseCase := product.NewListProductsUseCase(productRepo, productCache, cfg.Redis.CatalogCacheTTL)
	getProductUseCase := product.NewGetProductUseCase(productRepo)
	createProductUseCase := product.NewCreateProductUseCase(productRepo, productCache)

	// Create favorite use cases
	listFavoritesUseCase := favorite.NewListFavoritesUseCase(favoriteRepo)
	addFavoriteUseCase := favorite.NewAddFavoriteUseCase(favoriteRepo, productRepo)
	removeFavoriteUseCase := favorite.NewRemoveFavoriteUseCase(favoriteRepo)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	}, cacheHealthChecker)

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		changePasswordUseCase,
		getCurrentUserUseCase,
	)

	productController := controller.NewProductController(
		listProductsUseCase,
		getProductUseCase,
		createProductUseCase,
	)

	favoriteController := controller.NewFavoriteController(
		listFavoritesUseCase,
		addFavoriteUseCase,
		removeFavoriteUseCase,
	)

	// Create middleware
	// Rate limiting is bypassed for E2E/test environments to prevent flaky tests
	loginRateLimiter := middleware.NewRateLimiterWithConfig(
		cfg.Security.LoginRateLimit,
		cfg.Security.LoginRateLimitWindow,
	).Bypass(cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test")
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(healthController, authController, productController, favoriteController, loginRateLimiter, authMiddleware)

	return &Injector{
		Config:          cfg,
		DB:              db,
		Redis:           redis,
		Router:          r,
		Seeder:          seed.NewSeeder(userRepo, productRepo, passwordService, cfg.Seed),
		PasswordService: passwordService,
		TokenService:    tokenService,
	}
}
