package middleware

import (
	"strconv"

	"github.com/ephanta/eva-app/internal/constants"
	apierrors "github.com/ephanta/eva-app/internal/errors"
	"github.com/ephanta/eva-app/internal/models"
	"github.com/ephanta/eva-app/internal/repository"
	"github.com/gin-gonic/gin"
)

// RequireHouseholdAccess checks that the household exists and that the
// caller is a member. A missing household is 404, a missing membership
// is 403; the two are deliberately distinct.
func RequireHouseholdAccess(households repository.HouseholdRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		householdID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			apierrors.BadRequest(c, "Invalid household ID")
			c.Abort()
			return
		}

		userID, exists := GetUserID(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		household, err := households.FindByID(householdID)
		if err != nil {
			apierrors.NotFound(c, "Household not found")
			c.Abort()
			return
		}

		member, err := households.FindMember(householdID, userID)
		if err != nil {
			apierrors.Forbidden(c, "User is not a member of this household")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyHousehold, *household)
		c.Set(constants.ContextKeyMembership, *member)
		c.Next()
	}
}

// RequireHouseholdAdmin checks that the membership loaded by
// RequireHouseholdAccess carries the admin role.
func RequireHouseholdAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		member, ok := GetMembership(c)
		if !ok {
			apierrors.Forbidden(c, "Household access required")
			c.Abort()
			return
		}

		if member.Role != models.RoleAdmin {
			apierrors.Forbidden(c, "Only household admins can perform this action")
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetHousehold retrieves the household loaded by RequireHouseholdAccess
func GetHousehold(c *gin.Context) (models.Household, bool) {
	value, exists := c.Get(constants.ContextKeyHousehold)
	if !exists {
		return models.Household{}, false
	}
	household, ok := value.(models.Household)
	return household, ok
}

// GetMembership retrieves the membership loaded by RequireHouseholdAccess
func GetMembership(c *gin.Context) (models.HouseholdMember, bool) {
	value, exists := c.Get(constants.ContextKeyMembership)
	if !exists {
		return models.HouseholdMember{}, false
	}
	member, ok := value.(models.HouseholdMember)
	return member, ok
}
