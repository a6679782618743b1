package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mercearia/backend/internal/application/usecase/favorite"
	domainerror "github.com/mercearia/backend/internal/domain/error"
	"github.com/mercearia/backend/internal/integration/entrypoint/dto"
	"github.com/mercearia/backend/internal/integration/entrypoint/middleware"
)

// FavoriteController handles the authenticated user's favorites.
type FavoriteController struct {
	listUseCase   *favorite.ListFavoritesUseCase
	addUseCase    *favorite.AddFavoriteUseCase
	removeUseCase *favorite.RemoveFavoriteUseCase
}

// NewFavoriteController creates a new favorite controller instance.
func NewFavoriteController(
	listUseCase *favorite.ListFavoritesUseCase,
	addUseCase *favorite.AddFavoriteUseCase,
	removeUseCase *favorite.RemoveFavoriteUseCase,
) *FavoriteController {
	return &FavoriteController{
		listUseCase:   listUseCase,
		addUseCase:    addUseCase,
		removeUseCase: removeUseCase,
	}
}

// List handles GET /favoritos requests.
func (c *FavoriteController) List(ctx *gin.Context) {
	userID, ok := c.requireUser(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), favorite.ListFavoritesInput{UserID: userID})
	if err != nil {
		c.handleFavoriteError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFavoriteListResponse(output.Favorites))
}

// Add handles POST /favoritos requests.
// It answers 201 when the favorite is new and 200 when it already existed.
func (c *FavoriteController) Add(ctx *gin.Context) {
	userID, ok := c.requireUser(ctx)
	if !ok {
		return
	}

	var req dto.AddFavoriteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingFavoriteFields),
		})
		return
	}
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid product ID format",
			Code:  string(domainerror.ErrCodeMissingFavoriteFields),
		})
		return
	}

	output, err := c.addUseCase.Execute(ctx.Request.Context(), favorite.AddFavoriteInput{
		UserID:    userID,
		ProductID: productID,
	})
	if err != nil {
		c.handleFavoriteError(ctx, err)
		return
	}

	status := http.StatusOK
	if output.Created {
		status = http.StatusCreated
	}
	ctx.JSON(status, dto.MessageResponse{Message: "Produto adicionado aos favoritos"})
}

// Remove handles DELETE /favoritos/:produto_id requests.
func (c *FavoriteController) Remove(ctx *gin.Context) {
	userID, ok := c.requireUser(ctx)
	if !ok {
		return
	}

	productID, err := uuid.Parse(ctx.Param("produto_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid product ID format",
			Code:  string(domainerror.ErrCodeMissingFavoriteFields),
		})
		return
	}

	err = c.removeUseCase.Execute(ctx.Request.Context(), favorite.RemoveFavoriteInput{
		UserID:    userID,
		ProductID: productID,
	})
	if err != nil {
		c.handleFavoriteError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (c *FavoriteController) requireUser(ctx *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Authentication required",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return uuid.Nil, false
	}
	return userID, true
}

// handleFavoriteError handles favorite errors and returns appropriate HTTP responses.
func (c *FavoriteController) handleFavoriteError(ctx *gin.Context, err error) {
	var favErr *domainerror.FavoriteError
	if errors.As(err, &favErr) {
		status := http.StatusInternalServerError
		switch favErr.Code {
		case domainerror.ErrCodeFavoriteNotFound, domainerror.ErrCodeFavoriteProductAbsent:
			status = http.StatusNotFound
		case domainerror.ErrCodeMissingFavoriteFields:
			status = http.StatusBadRequest
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: favErr.Message,
			Code:  string(favErr.Code),
		})
		return
	}

	handleAuthError(ctx, err)
}
