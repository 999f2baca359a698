package models

import "time"

type HouseholdRole string

const (
	RoleAdmin  HouseholdRole = "admin"
	RoleMember HouseholdRole = "member"
)

// HouseholdMember records one user's membership in a household. A user
// holds at most one role per household; the composite primary key
// enforces that at the store level.
type HouseholdMember struct {
	HouseholdID uint64        `gorm:"primarykey" json:"household_id"`
	MemberUID   string        `gorm:"primarykey;type:varchar(64)" json:"member_uid"`
	Role        HouseholdRole `gorm:"type:varchar(20);not null" json:"role"`
	JoinedAt    time.Time     `json:"joined_at"`

	// Relations
	Household Household `gorm:"foreignKey:HouseholdID" json:"household,omitempty"`
}
