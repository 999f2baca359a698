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

// PlannerHandler coordinates meal-planner HTTP handlers.
type PlannerHandler struct {
	plannerService *services.PlannerService
}

// NewPlannerHandler creates a new PlannerHandler.
func NewPlannerHandler(plannerService *services.PlannerService) *PlannerHandler {
	return &PlannerHandler{
		plannerService: plannerService,
	}
}

// plannerMealsRequest carries the three nullable meal slots.
type plannerMealsRequest struct {
	BreakfastRecipeID *uint64 `json:"fruehstueck_rezept_id"`
	LunchRecipeID     *uint64 `json:"mittagessen_rezept_id"`
	DinnerRecipeID    *uint64 `json:"abendessen_rezept_id"`
}

func householdIDQuery(c *gin.Context) (uint64, bool) {
	raw := c.Query("household_id")
	if raw == "" {
		apierrors.BadRequest(c, "Missing household_id parameter")
		return 0, false
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid household_id parameter")
		return 0, false
	}
	return id, true
}

// GetPlan returns the household's entire meal plan keyed by day.
func (h *PlannerHandler) GetPlan(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	householdID, ok := householdIDQuery(c)
	if !ok {
		return
	}

	entries, err := h.plannerService.GetPlan(householdID, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": dto.ToPlanMap(entries)})
}

// UpsertDay adds or overwrites the meal plan for one day.
func (h *PlannerHandler) UpsertDay(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type UpsertDayRequest struct {
		HouseholdID uint64 `json:"household_id" binding:"required"`
		Datum       string `json:"datum" binding:"required"`
		plannerMealsRequest
	}

	var req UpsertDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Missing required fields: household_id or datum")
		return
	}

	entry, err := h.plannerService.UpsertDay(services.UpsertDayInput{
		HouseholdID:       req.HouseholdID,
		Datum:             req.Datum,
		BreakfastRecipeID: req.BreakfastRecipeID,
		LunchRecipeID:     req.LunchRecipeID,
		DinnerRecipeID:    req.DinnerRecipeID,
	}, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": entry})
}

// UpdateDay overwrites the meal slots of an existing day.
func (h *PlannerHandler) UpdateDay(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	householdID, ok := householdIDQuery(c)
	if !ok {
		return
	}

	datum := c.Query("datum")
	if datum == "" {
		apierrors.BadRequest(c, "Missing required parameter: datum")
		return
	}

	var req plannerMealsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	entry, err := h.plannerService.UpdateDay(services.UpsertDayInput{
		HouseholdID:       householdID,
		Datum:             datum,
		BreakfastRecipeID: req.BreakfastRecipeID,
		LunchRecipeID:     req.LunchRecipeID,
		DinnerRecipeID:    req.DinnerRecipeID,
	}, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": entry})
}

// DeleteDay removes the plan for one day.
func (h *PlannerHandler) DeleteDay(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	householdID, ok := householdIDQuery(c)
	if !ok {
		return
	}

	datum := c.Query("datum")
	if datum == "" {
		apierrors.BadRequest(c, "Missing required parameter: datum")
		return
	}

	if err := h.plannerService.DeleteDay(householdID, datum, userID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Planner entry removed successfully"})
}
