package models

import "time"

// PlannerEntry is the meal plan for a single day in a household.
// Datum is always normalized to UTC midnight; the composite unique
// index keeps at most one row per (household, day). Column and JSON
// names follow the original wire contract.
type PlannerEntry struct {
	ID                uint64    `gorm:"primarykey" json:"id"`
	HouseholdID       uint64    `gorm:"not null;uniqueIndex:idx_planner_household_datum" json:"household_id"`
	Datum             time.Time `gorm:"not null;uniqueIndex:idx_planner_household_datum" json:"datum"`
	BreakfastRecipeID *uint64   `gorm:"column:fruehstueck_rezept_id" json:"fruehstueck_rezept_id"`
	LunchRecipeID     *uint64   `gorm:"column:mittagessen_rezept_id" json:"mittagessen_rezept_id"`
	DinnerRecipeID    *uint64   `gorm:"column:abendessen_rezept_id" json:"abendessen_rezept_id"`
	UserID            string    `gorm:"column:benutzer_id;type:varchar(64)" json:"benutzer_id"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
