package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mercearia/backend/internal/application/usecase/product"
	domainerror "github.com/mercearia/backend/internal/domain/error"
	"github.com/mercearia/backend/internal/integration/entrypoint/dto"
	"github.com/mercearia/backend/internal/integration/entrypoint/middleware"
)

// ProductController handles catalog endpoints.
type ProductController struct {
	listUseCase   *product.ListProductsUseCase
	getUseCase    *product.GetProductUseCase
	createUseCase *product.CreateProductUseCase
}

// NewProductController creates a new product controller instance.
func NewProductController(
	listUseCase *product.ListProductsUseCase,
	getUseCase *product.GetProductUseCase,
	createUseCase *product.CreateProductUseCase,
) *ProductController {
	return &ProductController{
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		createUseCase: createUseCase,
	}
}

// List handles GET /produtos requests.
func (c *ProductController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context(), product.ListProductsInput{})
	if err != nil {
		c.handleProductError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductListResponse(output.Products))
}

// Get handles GET /produtos/:id requests.
func (c *ProductController) Get(ctx *gin.Context) {
	productID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid product ID format",
			Code:  string(domainerror.ErrCodeInvalidProductID),
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), product.GetProductInput{ProductID: productID})
	if err != nil {
		c.handleProductError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(output.Product))
}

// Create handles POST /produtos requests.
func (c *ProductController) Create(ctx *gin.Context) {
	role, ok := middleware.GetUserRoleFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Authentication required",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeMissingProductFields),
			Details: err.Error(),
		})
		return
	}

	input := product.CreateProductInput{
		ActorRole:   role,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Tags:        req.Tags,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleProductError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToProductResponse(output.Product))
}

// handleProductError handles product errors and returns appropriate HTTP responses.
func (c *ProductController) handleProductError(ctx *gin.Context, err error) {
	var productErr *domainerror.ProductError
	if errors.As(err, &productErr) {
		ctx.JSON(c.getStatusCodeForProductError(productErr.Code), dto.ErrorResponse{
			Error: productErr.Message,
			Code:  string(productErr.Code),
		})
		return
	}

	handleAuthError(ctx, err)
}

// getStatusCodeForProductError maps product error codes to HTTP status codes.
func (c *ProductController) getStatusCodeForProductError(code domainerror.ProductErrorCode) int {
	switch code {
	case domainerror.ErrCodeProductNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidProductPrice,
		domainerror.ErrCodeInvalidProductName,
		domainerror.ErrCodeInvalidProductID,
		domainerror.ErrCodeMissingProductFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
