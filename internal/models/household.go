package models

import "time"

type Household struct {
	ID         uint64    `gorm:"primarykey" json:"id"`
	Name       string    `gorm:"type:varchar(255);not null" json:"name"`
	Color      string    `gorm:"type:varchar(20)" json:"color"`
	OwnerID    string    `gorm:"type:varchar(64);not null;index" json:"owner_id"`
	InviteCode string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"invite_code"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Relations
	Members []HouseholdMember `gorm:"foreignKey:HouseholdID" json:"members,omitempty"`
}
