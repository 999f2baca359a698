package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/ephanta/eva-app/internal/dto"
	"github.com/ephanta/eva-app/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestRatingHandler_CreateAndList(t *testing.T) {
	env := setupTestEnv(t)

	recipe := createTestRecipe(t, env, "token-u1", "Curry")

	w := env.perform(t, http.MethodPost, "/api/ratings", "token-u2", gin.H{
		"recipe_id": recipe.ID,
		"rating":    5,
		"comment":   "great",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.perform(t, http.MethodGet, fmt.Sprintf("/api/ratings?recipe_id=%d", recipe.ID), "token-u1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var listResponse struct {
		Data []models.Rating `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResponse))
	require.Len(t, listResponse.Data, 1)
	require.Equal(t, 5, listResponse.Data[0].Score)
	require.Equal(t, "user-2", listResponse.Data[0].UserID)

	// The own-ratings view carries the recipe name.
	w = env.perform(t, http.MethodGet, "/api/ratings?action=get_user_ratings", "token-u2", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var userResponse struct {
		Data []dto.RatingWithRecipeDTO `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &userResponse))
	require.Len(t, userResponse.Data, 1)
	require.Equal(t, "Curry", userResponse.Data[0].RecipeName)
	require.Equal(t, 5, userResponse.Data[0].Rating)
}

func TestRatingHandler_Validation(t *testing.T) {
	env := setupTestEnv(t)

	recipe := createTestRecipe(t, env, "token-u1", "Toast")

	// Score outside 1..5 is rejected.
	w := env.perform(t, http.MethodPost, "/api/ratings", "token-u2", gin.H{
		"recipe_id": recipe.ID,
		"rating":    6,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = env.perform(t, http.MethodPost, "/api/ratings", "token-u2", gin.H{
		"recipe_id": recipe.ID,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = env.perform(t, http.MethodGet, "/api/ratings", "token-u2", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRatingHandler_OwnerScoping(t *testing.T) {
	env := setupTestEnv(t)

	recipe := createTestRecipe(t, env, "token-u1", "Pizza")

	w := env.perform(t, http.MethodPost, "/api/ratings", "token-u2", gin.H{
		"recipe_id": recipe.ID,
		"rating":    3,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Data models.Rating `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	// Someone else cannot touch the rating.
	w = env.perform(t, http.MethodPut, fmt.Sprintf("/api/ratings/%d", created.Data.ID), "token-u1",
		gin.H{"rating": 1})
	require.Equal(t, http.StatusNotFound, w.Code)

	w = env.perform(t, http.MethodDelete, fmt.Sprintf("/api/ratings/%d", created.Data.ID), "token-u1", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	// The author can.
	w = env.perform(t, http.MethodPut, fmt.Sprintf("/api/ratings/%d", created.Data.ID), "token-u2",
		gin.H{"rating": 4, "comment": "better on second thought"})
	require.Equal(t, http.StatusOK, w.Code)

	var stored models.Rating
	require.NoError(t, env.db.First(&stored, created.Data.ID).Error)
	require.Equal(t, 4, stored.Score)
	require.Equal(t, "better on second thought", stored.Comment)

	w = env.perform(t, http.MethodDelete, fmt.Sprintf("/api/ratings/%d", created.Data.ID), "token-u2", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, env.db.Model(&models.Rating{}).Count(&count).Error)
	require.Zero(t, count)
}
