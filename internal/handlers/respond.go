package handlers

import (
	"errors"

	apierrors "github.com/ephanta/eva-app/internal/errors"
	"github.com/ephanta/eva-app/internal/services"
	"github.com/gin-gonic/gin"
)

// respondServiceError translates service sentinel errors into the
// uniform error envelope. Every handler funnels its failures through
// here so the status mapping lives in exactly one place.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrHouseholdNotFound):
		apierrors.NotFound(c, "Household not found")
	case errors.Is(err, services.ErrInvalidInviteCode):
		apierrors.NotFound(c, "Invalid invite code")
	case errors.Is(err, services.ErrNotHouseholdMember):
		apierrors.Forbidden(c, "User is not a member of this household")
	case errors.Is(err, services.ErrPlannerEntryNotFound):
		apierrors.NotFound(c, "Planner entry not found")
	case errors.Is(err, services.ErrItemNotFound):
		apierrors.NotFound(c, "Item not found")
	case errors.Is(err, services.ErrRecipeNotFound):
		apierrors.NotFound(c, "Recipe not found")
	case errors.Is(err, services.ErrRatingNotFound):
		apierrors.NotFound(c, "Rating not found")
	case errors.Is(err, services.ErrProfileNotFound):
		apierrors.NotFound(c, "Profile not found")
	case errors.Is(err, services.ErrInvalidHouseholdName),
		errors.Is(err, services.ErrInvalidRecipeName),
		errors.Is(err, services.ErrInvalidDate):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
