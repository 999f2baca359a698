package middleware

import (
	"strconv"

	"github.com/ephanta/eva-app/internal/constants"
	apierrors "github.com/ephanta/eva-app/internal/errors"
	"github.com/ephanta/eva-app/internal/models"
	"github.com/ephanta/eva-app/internal/repository"
	"github.com/gin-gonic/gin"
)

// RequireShoppingItemAccess loads the target item and re-derives the
// caller's membership from the item's household. Ownership of the item
// itself is irrelevant; household membership is the sole gate.
func RequireShoppingItemAccess(items repository.ShoppingRepository, households repository.HouseholdRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			apierrors.BadRequest(c, "Invalid item ID")
			c.Abort()
			return
		}

		userID, exists := GetUserID(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		item, err := items.FindByID(itemID)
		if err != nil {
			apierrors.NotFound(c, "Item not found")
			c.Abort()
			return
		}

		if _, err := households.FindMember(item.HouseholdID, userID); err != nil {
			apierrors.Forbidden(c, "User is not a member of this household")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyItem, *item)
		c.Next()
	}
}

// GetShoppingItem retrieves the item loaded by RequireShoppingItemAccess
func GetShoppingItem(c *gin.Context) (models.ShoppingListItem, bool) {
	value, exists := c.Get(constants.ContextKeyItem)
	if !exists {
		return models.ShoppingListItem{}, false
	}
	item, ok := value.(models.ShoppingListItem)
	return item, ok
}
