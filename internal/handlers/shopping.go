package handlers

import (
	"net/http"

	apierrors "github.com/ephanta/eva-app/internal/errors"
	"github.com/ephanta/eva-app/internal/middleware"
	"github.com/ephanta/eva-app/internal/models"
	"github.com/ephanta/eva-app/internal/services"
	"github.com/gin-gonic/gin"
)

// ShoppingHandler coordinates shopping-list HTTP handlers.
type ShoppingHandler struct {
	shoppingService *services.ShoppingService
}

// NewShoppingHandler creates a new ShoppingHandler.
func NewShoppingHandler(shoppingService *services.ShoppingService) *ShoppingHandler {
	return &ShoppingHandler{
		shoppingService: shoppingService,
	}
}

// ListItems returns the household's shopping list.
func (h *ShoppingHandler) ListItems(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	householdID, ok := householdIDQuery(c)
	if !ok {
		return
	}

	items, err := h.shoppingService.ListItems(householdID, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": items})
}

// CreateItem adds an item to a household's shopping list.
func (h *ShoppingHandler) CreateItem(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type CreateItemRequest struct {
		HouseholdID uint64 `json:"household_id" binding:"required"`
		ItemName    string `json:"item_name" binding:"required"`
		Amount      string `json:"amount"`
	}

	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Missing required fields")
		return
	}

	item, err := h.shoppingService.CreateItem(services.CreateItemInput{
		HouseholdID: req.HouseholdID,
		ItemName:    req.ItemName,
		Amount:      req.Amount,
	}, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": item})
}

// UpdateItem transitions an item's status. The target item and the
// membership gate are resolved by RequireShoppingItemAccess.
func (h *ShoppingHandler) UpdateItem(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	item, ok := middleware.GetShoppingItem(c)
	if !ok {
		apierrors.InternalError(c, "Item not found in context")
		return
	}

	type UpdateItemRequest struct {
		Status models.ShoppingStatus `json:"status" binding:"required"`
	}

	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Missing required fields")
		return
	}

	updated, err := h.shoppingService.ApplyStatus(item, req.Status, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": updated})
}

// DeleteItem removes an item from the shopping list.
func (h *ShoppingHandler) DeleteItem(c *gin.Context) {
	item, ok := middleware.GetShoppingItem(c)
	if !ok {
		apierrors.InternalError(c, "Item not found in context")
		return
	}

	if err := h.shoppingService.DeleteItem(item.ID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Item deleted successfully"})
}
