package handlers

import (
	"net/http"
	"strconv"

	"github.com/ephanta/eva-app/internal/dto"
	apierrors "github.com/ephanta/eva-app/internal/errors"
	"github.com/ephanta/eva-app/internal/middleware"
	"github.com/ephanta/eva-app/internal/services"
	"github.com/gin-gonic/gin"
)

// RatingHandler coordinates recipe-rating HTTP handlers.
type RatingHandler struct {
	ratingService *services.RatingService
}

// NewRatingHandler creates a new RatingHandler.
func NewRatingHandler(ratingService *services.RatingService) *RatingHandler {
	return &RatingHandler{
		ratingService: ratingService,
	}
}

// GetRatings returns either all ratings of a recipe (?recipe_id=) or
// the caller's own ratings with recipe names (?action=get_user_ratings).
func (h *RatingHandler) GetRatings(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	if c.Query("action") == "get_user_ratings" {
		ratings, err := h.ratingService.ListForUser(userID)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": dto.ToRatingWithRecipeDTOs(ratings)})
		return
	}

	recipeIDStr := c.Query("recipe_id")
	if recipeIDStr == "" {
		apierrors.BadRequest(c, "Missing recipe_id parameter")
		return
	}
	recipeID, err := strconv.ParseUint(recipeIDStr, 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid recipe_id parameter")
		return
	}

	ratings, err := h.ratingService.ListForRecipe(recipeID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": ratings})
}

// CreateRating records a new rating by the caller.
func (h *RatingHandler) CreateRating(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type CreateRatingRequest struct {
		RecipeID uint64 `json:"recipe_id" binding:"required"`
		Rating   int    `json:"rating" binding:"required,min=1,max=5"`
		Comment  string `json:"comment"`
	}

	var req CreateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Missing required fields")
		return
	}

	rating, err := h.ratingService.CreateRating(services.CreateRatingInput{
		RecipeID: req.RecipeID,
		Score:    req.Rating,
		Comment:  req.Comment,
	}, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": rating})
}

// UpdateRating updates a rating owned by the caller.
func (h *RatingHandler) UpdateRating(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	id, ok := idParam(c)
	if !ok {
		return
	}

	type UpdateRatingRequest struct {
		Rating  *int    `json:"rating" binding:"omitempty,min=1,max=5"`
		Comment *string `json:"comment"`
	}

	var req UpdateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.ratingService.UpdateRating(id, userID, services.UpdateRatingInput{
		Score:   req.Rating,
		Comment: req.Comment,
	}); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Rating updated successfully"})
}

// DeleteRating deletes a rating owned by the caller.
func (h *RatingHandler) DeleteRating(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.ratingService.DeleteRating(id, userID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Rating deleted successfully"})
}
