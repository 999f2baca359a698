package handlers

import (
	"net/http"

	apierrors "github.com/ephanta/eva-app/internal/errors"
	"github.com/ephanta/eva-app/internal/middleware"
	"github.com/ephanta/eva-app/internal/services"
	"github.com/gin-gonic/gin"
)

// ProfileHandler coordinates profile HTTP handlers.
type ProfileHandler struct {
	profileService *services.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profileService *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

// GetProfile returns the caller's profile.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	profile, err := h.profileService.GetProfile(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": profile})
}

// UpdateProfile applies a partial update to the caller's profile.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type UpdateProfileRequest struct {
		Username     *string `json:"username"`
		AvatarURL    *string `json:"avatar_url"`
		DietaryNotes *string `json:"hinweise_zur_ernaehrung"`
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	profile, err := h.profileService.UpdateProfile(userID, services.UpdateProfileInput{
		Username:     req.Username,
		AvatarURL:    req.AvatarURL,
		DietaryNotes: req.DietaryNotes,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": profile})
}
