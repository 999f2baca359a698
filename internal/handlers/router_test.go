package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ephanta/eva-app/internal/auth"
	"github.com/ephanta/eva-app/internal/database"
	"github.com/ephanta/eva-app/internal/models"
	"github.com/ephanta/eva-app/internal/repository"
	"github.com/ephanta/eva-app/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// staticVerifier resolves tokens from a fixed map, standing in for the
// identity service.
type staticVerifier map[string]string

func (v staticVerifier) Verify(_ context.Context, token string) (string, error) {
	userID, ok := v[token]
	if !ok {
		return "", auth.ErrInvalidToken
	}
	return userID, nil
}

var testTokens = staticVerifier{
	"token-u1": "user-1",
	"token-u2": "user-2",
	"token-u3": "user-3",
}

type testEnv struct {
	db     *gorm.DB
	router *gin.Engine
}

func setupTestEnv(t *testing.T) testEnv {
	t.Helper()

	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Household{},
		&models.HouseholdMember{},
		&models.PlannerEntry{},
		&models.Recipe{},
		&models.Rating{},
		&models.ShoppingListItem{},
		&models.Profile{},
	)
	require.NoError(t, err)

	database.SetDB(db)

	householdRepo := repository.NewHouseholdRepository(db)
	plannerRepo := repository.NewPlannerRepository(db)
	recipeRepo := repository.NewRecipeRepository(db)
	ratingRepo := repository.NewRatingRepository(db)
	shoppingRepo := repository.NewShoppingRepository(db)
	profileRepo := repository.NewProfileRepository(db)

	router := gin.New()
	RegisterRoutes(router, RouterConfig{
		Verifier:   testTokens,
		Households: householdRepo,
		Items:      shoppingRepo,
		Household:  NewHouseholdHandler(services.NewHouseholdService(householdRepo)),
		Planner:    NewPlannerHandler(services.NewPlannerService(plannerRepo, householdRepo)),
		Shopping:   NewShoppingHandler(services.NewShoppingService(shoppingRepo, householdRepo)),
		Recipe:     NewRecipeHandler(services.NewRecipeService(recipeRepo)),
		Rating:     NewRatingHandler(services.NewRatingService(ratingRepo)),
		Profile:    NewProfileHandler(services.NewProfileService(profileRepo)),
	})

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return testEnv{db: db, router: router}
}

// perform runs one request through the full router, middleware included.
func (env testEnv) perform(t *testing.T, method, url, token string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, url, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]json.RawMessage {
	t.Helper()

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func decodeMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	var message string
	body := decodeBody(t, w)
	require.Contains(t, body, "message")
	require.NoError(t, json.Unmarshal(body["message"], &message))
	return message
}

// createTestHousehold creates a household through the API and returns it.
func createTestHousehold(t *testing.T, env testEnv, token, name string) models.Household {
	t.Helper()

	w := env.perform(t, http.MethodPost, "/api/households", token, gin.H{"name": name})
	require.Equal(t, http.StatusCreated, w.Code)

	var response struct {
		Data models.Household `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotZero(t, response.Data.ID)
	require.NotEmpty(t, response.Data.InviteCode)
	return response.Data
}

// joinTestHousehold joins a household through the API via invite code.
func joinTestHousehold(t *testing.T, env testEnv, token, inviteCode string) {
	t.Helper()

	w := env.perform(t, http.MethodPost, "/api/households/join", token, gin.H{"invite_code": inviteCode})
	require.Equal(t, http.StatusOK, w.Code)
}
