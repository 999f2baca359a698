package models

import "time"

type ShoppingStatus string

const (
	ShoppingStatusPending   ShoppingStatus = "pending"
	ShoppingStatusPurchased ShoppingStatus = "purchased"
)

// ShoppingListItem belongs to a household, not to the user who created
// it; every mutation is gated on membership in that household.
// Transitioning to "purchased" stamps the purchaser and timestamp, any
// other status clears both.
type ShoppingListItem struct {
	ID          uint64         `gorm:"primarykey" json:"id"`
	HouseholdID uint64         `gorm:"not null;index" json:"household_id"`
	ItemName    string         `gorm:"type:varchar(255);not null" json:"item_name"`
	Amount      string         `gorm:"type:varchar(100)" json:"amount"`
	Status      ShoppingStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedBy   string         `gorm:"type:varchar(64);not null" json:"created_by"`
	PurchasedBy *string        `gorm:"type:varchar(64)" json:"purchased_by"`
	PurchasedAt *time.Time     `json:"purchased_at"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`

	// Relations
	Household Household `gorm:"foreignKey:HouseholdID" json:"household,omitempty"`
}
