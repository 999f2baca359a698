package handlers

import (
	"net/http"

	"github.com/ephanta/eva-app/internal/dto"
	apierrors "github.com/ephanta/eva-app/internal/errors"
	"github.com/ephanta/eva-app/internal/middleware"
	"github.com/ephanta/eva-app/internal/services"
	"github.com/gin-gonic/gin"
)

// HouseholdHandler coordinates household HTTP handlers.
type HouseholdHandler struct {
	householdService *services.HouseholdService
}

// NewHouseholdHandler creates a new HouseholdHandler.
func NewHouseholdHandler(householdService *services.HouseholdService) *HouseholdHandler {
	return &HouseholdHandler{
		householdService: householdService,
	}
}

// CreateHousehold creates a new household owned by the caller.
func (h *HouseholdHandler) CreateHousehold(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type CreateHouseholdRequest struct {
		Name       string `json:"name" binding:"required"`
		Color      string `json:"color"`
		InviteCode string `json:"invite_code"`
	}

	var req CreateHouseholdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	household, err := h.householdService.CreateHousehold(services.CreateHouseholdInput{
		Name:       req.Name,
		Color:      req.Color,
		InviteCode: req.InviteCode,
		OwnerID:    userID,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": dto.ToHouseholdDTO(*household, true)})
}

// ListHouseholds returns all households the caller belongs to.
func (h *HouseholdHandler) ListHouseholds(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	memberships, owned, err := h.householdService.ListHouseholdsForUser(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": dto.MergeHouseholdsWithRole(memberships, owned)})
}

// GetHousehold returns household details with members and the caller's role.
func (h *HouseholdHandler) GetHousehold(c *gin.Context) {
	household, ok := middleware.GetHousehold(c)
	if !ok {
		apierrors.InternalError(c, "Household not found in context")
		return
	}
	member, _ := middleware.GetMembership(c)

	members, err := h.householdService.ListMembers(household.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":      dto.ToHouseholdDTO(household, true),
		"members":   dto.ToMemberDTOs(members),
		"your_role": member.Role,
	})
}

// GetRole returns the caller's role in the household.
func (h *HouseholdHandler) GetRole(c *gin.Context) {
	member, ok := middleware.GetMembership(c)
	if !ok {
		apierrors.InternalError(c, "Membership not found in context")
		return
	}

	c.JSON(http.StatusOK, gin.H{"role": member.Role})
}

// GetMembers returns all members of the household.
func (h *HouseholdHandler) GetMembers(c *gin.Context) {
	household, ok := middleware.GetHousehold(c)
	if !ok {
		apierrors.InternalError(c, "Household not found in context")
		return
	}

	members, err := h.householdService.ListMembers(household.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"members": dto.ToMemberDTOs(members)})
}

// JoinHousehold adds the caller to a household via invite code. Joining
// twice is benign and leaves the membership untouched.
func (h *HouseholdHandler) JoinHousehold(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type JoinRequest struct {
		InviteCode string `json:"invite_code" binding:"required"`
	}

	var req JoinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	household, alreadyMember, err := h.householdService.JoinByInviteCode(userID, req.InviteCode)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	message := "Successfully joined household"
	if alreadyMember {
		message = "Already a member of this household"
	}

	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"data":    dto.ToHouseholdDTO(*household, true),
	})
}

// LeaveHousehold removes the caller's own membership.
func (h *HouseholdHandler) LeaveHousehold(c *gin.Context) {
	household, ok := middleware.GetHousehold(c)
	if !ok {
		apierrors.InternalError(c, "Household not found in context")
		return
	}
	userID, _ := middleware.GetUserID(c)

	if err := h.householdService.Leave(household.ID, userID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Left household successfully"})
}

// UpdateHousehold updates name and color. Admin only.
func (h *HouseholdHandler) UpdateHousehold(c *gin.Context) {
	household, ok := middleware.GetHousehold(c)
	if !ok {
		apierrors.InternalError(c, "Household not found in context")
		return
	}

	type UpdateHouseholdRequest struct {
		Name  *string `json:"name"`
		Color *string `json:"color"`
	}

	var req UpdateHouseholdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	updated, err := h.householdService.UpdateHousehold(household.ID, services.UpdateHouseholdInput{
		Name:  req.Name,
		Color: req.Color,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": dto.ToHouseholdDTO(*updated, true)})
}

// RegenerateInviteCode replaces the household's invite code. Admin only.
func (h *HouseholdHandler) RegenerateInviteCode(c *gin.Context) {
	household, ok := middleware.GetHousehold(c)
	if !ok {
		apierrors.InternalError(c, "Household not found in context")
		return
	}

	updated, err := h.householdService.RegenerateInviteCode(household.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": dto.ToHouseholdDTO(*updated, true)})
}

// DeleteHousehold deletes the household and its dependent rows. Admin only.
func (h *HouseholdHandler) DeleteHousehold(c *gin.Context) {
	household, ok := middleware.GetHousehold(c)
	if !ok {
		apierrors.InternalError(c, "Household not found in context")
		return
	}

	if err := h.householdService.DeleteHousehold(household.ID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Household deleted successfully"})
}
