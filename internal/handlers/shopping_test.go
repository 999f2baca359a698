package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/ephanta/eva-app/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func createTestItem(t *testing.T, env testEnv, token string, householdID uint64, name string) models.ShoppingListItem {
	t.Helper()

	w := env.perform(t, http.MethodPost, "/api/shopping", token, gin.H{
		"household_id": householdID,
		"item_name":    name,
		"amount":       "2",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var response struct {
		Data models.ShoppingListItem `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotZero(t, response.Data.ID)
	return response.Data
}

func TestShoppingHandler_CreateGateOrdering(t *testing.T) {
	env := setupTestEnv(t)

	household := createTestHousehold(t, env, "token-u1", "Shoppers")

	// Missing household reports not found even for a stranger.
	w := env.perform(t, http.MethodPost, "/api/shopping", "token-u2", gin.H{
		"household_id": 99999,
		"item_name":    "Milk",
	})
	require.Equal(t, http.StatusNotFound, w.Code)

	// Existing household without membership is forbidden.
	w = env.perform(t, http.MethodPost, "/api/shopping", "token-u2", gin.H{
		"household_id": household.ID,
		"item_name":    "Milk",
	})
	require.Equal(t, http.StatusForbidden, w.Code)

	item := createTestItem(t, env, "token-u1", household.ID, "Milk")
	require.Equal(t, models.ShoppingStatusPending, item.Status)
	require.Equal(t, "user-1", item.CreatedBy)
	require.Nil(t, item.PurchasedBy)
}

func TestShoppingHandler_PurchasedStampsActor(t *testing.T) {
	env := setupTestEnv(t)

	household := createTestHousehold(t, env, "token-u1", "Buyers")
	joinTestHousehold(t, env, "token-u2", household.InviteCode)

	item := createTestItem(t, env, "token-u1", household.ID, "Eggs")

	// Another member marks the item purchased; the stamp names them,
	// not the creator.
	w := env.perform(t, http.MethodPut, fmt.Sprintf("/api/shopping/%d", item.ID), "token-u2",
		gin.H{"status": "purchased"})
	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Data models.ShoppingListItem `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, models.ShoppingStatusPurchased, response.Data.Status)
	require.NotNil(t, response.Data.PurchasedBy)
	require.Equal(t, "user-2", *response.Data.PurchasedBy)
	require.NotNil(t, response.Data.PurchasedAt)

	// Back to pending clears both purchase fields.
	w = env.perform(t, http.MethodPut, fmt.Sprintf("/api/shopping/%d", item.ID), "token-u1",
		gin.H{"status": "pending"})
	require.Equal(t, http.StatusOK, w.Code)

	var stored models.ShoppingListItem
	require.NoError(t, env.db.First(&stored, item.ID).Error)
	require.Equal(t, models.ShoppingStatusPending, stored.Status)
	require.Nil(t, stored.PurchasedBy)
	require.Nil(t, stored.PurchasedAt)
}

func TestShoppingHandler_NonMemberCannotMutate(t *testing.T) {
	env := setupTestEnv(t)

	household := createTestHousehold(t, env, "token-u1", "Locked List")
	item := createTestItem(t, env, "token-u1", household.ID, "Butter")

	w := env.perform(t, http.MethodPut, fmt.Sprintf("/api/shopping/%d", item.ID), "token-u2",
		gin.H{"status": "purchased"})
	require.Equal(t, http.StatusForbidden, w.Code)

	w = env.perform(t, http.MethodDelete, fmt.Sprintf("/api/shopping/%d", item.ID), "token-u2", nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	// The item is untouched.
	var stored models.ShoppingListItem
	require.NoError(t, env.db.First(&stored, item.ID).Error)
	require.Equal(t, models.ShoppingStatusPending, stored.Status)
	require.Nil(t, stored.PurchasedBy)

	// Unknown items report not found before any membership check.
	w = env.perform(t, http.MethodPut, "/api/shopping/99999", "token-u2", gin.H{"status": "purchased"})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestShoppingHandler_ListAndDelete(t *testing.T) {
	env := setupTestEnv(t)

	household := createTestHousehold(t, env, "token-u1", "Groceries")
	createTestItem(t, env, "token-u1", household.ID, "Bread")
	item := createTestItem(t, env, "token-u1", household.ID, "Cheese")

	w := env.perform(t, http.MethodGet, fmt.Sprintf("/api/shopping?household_id=%d", household.ID), "token-u1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Data []models.ShoppingListItem `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Data, 2)

	w = env.perform(t, http.MethodDelete, fmt.Sprintf("/api/shopping/%d", item.ID), "token-u1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.perform(t, http.MethodGet, fmt.Sprintf("/api/shopping?household_id=%d", household.ID), "token-u1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Data, 1)
	require.Equal(t, "Bread", response.Data[0].ItemName)
}
