package handlers

import (
	"net/http"
	"strconv"

	apierrors "github.com/ephanta/eva-app/internal/errors"
	"github.com/ephanta/eva-app/internal/middleware"
	"github.com/ephanta/eva-app/internal/services"
	"github.com/ephanta/eva-app/internal/utils"
	"github.com/gin-gonic/gin"
)

// RecipeHandler coordinates recipe HTTP handlers.
type RecipeHandler struct {
	recipeService *services.RecipeService
}

// NewRecipeHandler creates a new RecipeHandler.
func NewRecipeHandler(recipeService *services.RecipeService) *RecipeHandler {
	return &RecipeHandler{
		recipeService: recipeService,
	}
}

func idParam(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid ID")
		return 0, false
	}
	return id, true
}

// ListRecipes returns the caller's recipes with pagination.
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	params := utils.GetPaginationParams(c)

	recipes, total, err := h.recipeService.ListRecipes(userID, params)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": recipes,
		"pagination": utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}

// CreateRecipe creates a recipe owned by the caller.
func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type CreateRecipeRequest struct {
		Name         string `json:"name" binding:"required"`
		Description  string `json:"description"`
		Ingredients  string `json:"ingredients"`
		Instructions string `json:"instructions"`
	}

	var req CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	recipe, err := h.recipeService.CreateRecipe(services.CreateRecipeInput{
		Name:         req.Name,
		Description:  req.Description,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		OwnerID:      userID,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": recipe})
}

// GetRecipe returns a single recipe.
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	recipe, err := h.recipeService.GetRecipe(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": recipe})
}

// UpdateRecipe updates a recipe owned by the caller.
func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	id, ok := idParam(c)
	if !ok {
		return
	}

	type UpdateRecipeRequest struct {
		Name         *string `json:"name"`
		Description  *string `json:"description"`
		Ingredients  *string `json:"ingredients"`
		Instructions *string `json:"instructions"`
	}

	var req UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	recipe, err := h.recipeService.UpdateRecipe(id, userID, services.UpdateRecipeInput{
		Name:         req.Name,
		Description:  req.Description,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": recipe})
}

// DeleteRecipe deletes a recipe owned by the caller.
func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.recipeService.DeleteRecipe(id, userID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Recipe deleted successfully"})
}
