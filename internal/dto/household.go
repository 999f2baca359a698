package dto

import (
	"time"

	"github.com/ephanta/eva-app/internal/models"
)

// HouseholdDTO represents a household in API responses
type HouseholdDTO struct {
	ID         uint64 `json:"id"`
	Name       string `json:"name"`
	Color      string `json:"color"`
	OwnerID    string `json:"owner_id"`
	InviteCode string `json:"invite_code,omitempty"`
}

// HouseholdWithRoleDTO represents a household with the user's role
type HouseholdWithRoleDTO struct {
	HouseholdDTO
	Role models.HouseholdRole `json:"role"`
}

// MemberDTO represents a member in a household
type MemberDTO struct {
	MemberUID string               `json:"member_uid"`
	Role      models.HouseholdRole `json:"role"`
	JoinedAt  time.Time            `json:"joined_at"`
}

// ToHouseholdDTO converts a Household model to HouseholdDTO. The
// invite code is only exposed to members.
func ToHouseholdDTO(household models.Household, includeInviteCode bool) HouseholdDTO {
	dto := HouseholdDTO{
		ID:      household.ID,
		Name:    household.Name,
		Color:   household.Color,
		OwnerID: household.OwnerID,
	}
	if includeInviteCode {
		dto.InviteCode = household.InviteCode
	}
	return dto
}

// ToMemberDTO converts a membership to MemberDTO
func ToMemberDTO(member models.HouseholdMember) MemberDTO {
	return MemberDTO{
		MemberUID: member.MemberUID,
		Role:      member.Role,
		JoinedAt:  member.JoinedAt,
	}
}

// ToMemberDTOs converts a slice of memberships
func ToMemberDTOs(members []models.HouseholdMember) []MemberDTO {
	dtos := make([]MemberDTO, len(members))
	for i, member := range members {
		dtos[i] = ToMemberDTO(member)
	}
	return dtos
}

// MergeHouseholdsWithRole folds the user's memberships and owned
// households into one list. An owned household without a membership
// row (a pre-compensation artifact) still surfaces as admin.
func MergeHouseholdsWithRole(memberships []models.HouseholdMember, owned []models.Household) []HouseholdWithRoleDTO {
	result := make([]HouseholdWithRoleDTO, 0, len(memberships)+len(owned))
	seen := make(map[uint64]bool, len(memberships))

	for _, m := range memberships {
		seen[m.HouseholdID] = true
		result = append(result, HouseholdWithRoleDTO{
			HouseholdDTO: ToHouseholdDTO(m.Household, true),
			Role:         m.Role,
		})
	}

	for _, h := range owned {
		if seen[h.ID] {
			continue
		}
		result = append(result, HouseholdWithRoleDTO{
			HouseholdDTO: ToHouseholdDTO(h, true),
			Role:         models.RoleAdmin,
		})
	}

	return result
}
