package models

import "time"

type Recipe struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	OwnerID      string    `gorm:"column:benutzer_id;type:varchar(64);not null;index" json:"benutzer_id"`
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`
	Description  string    `gorm:"type:text" json:"description"`
	Ingredients  string    `gorm:"type:text" json:"ingredients"`
	Instructions string    `gorm:"type:text" json:"instructions"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Ratings []Rating `gorm:"foreignKey:RecipeID" json:"ratings,omitempty"`
}
