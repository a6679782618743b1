// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/mercearia/backend/internal/domain/entity"
	"github.com/mercearia/backend/internal/integration/entrypoint/controller"
	"github.com/mercearia/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine             *gin.Engine
	healthController   *controller.HealthController
	authController     *controller.AuthController
	productController  *controller.ProductController
	favoriteController *controller.FavoriteController
	loginRateLimiter   *middleware.RateLimiter
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	productController *controller.ProductController,
	favoriteController *controller.FavoriteController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:   healthController,
		authController:     authController,
		productController:  productController,
		favoriteController: favoriteController,
		loginRateLimiter:   loginRateLimiter,
		authMiddleware:     authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/", r.healthController.Welcome)
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// User routes (only setup if auth controller is available)
		if r.authController != nil && r.loginRateLimiter != nil && r.authMiddleware != nil {
			user := v1.Group("/user")
			{
				user.POST("/register", r.authController.Register)
				user.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				user.POST("/update-password", r.authController.UpdatePassword)
				user.GET("/me", r.authMiddleware.Authenticate(), r.authController.Me)
			}
		}

		// Product routes (listing is public, creation requires an admin)
		if r.productController != nil && r.authMiddleware != nil {
			products := v1.Group("/produtos")
			{
				products.GET("", r.productController.List)
				products.GET("/:id", r.productController.Get)
				products.POST("",
					r.authMiddleware.Authenticate(),
					r.authMiddleware.RequireRole(entity.RoleAdmin),
					r.productController.Create,
				)
			}
		}

		// Favorite routes (require authentication)
		if r.favoriteController != nil && r.authMiddleware != nil {
			favorites := v1.Group("/favoritos")
			favorites.Use(r.authMiddleware.Authenticate())
			{
				favorites.GET("", r.favoriteController.List)
				favorites.POST("", r.favoriteController.Add)
				favorites.DELETE("/:produto_id", r.favoriteController.Remove)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
