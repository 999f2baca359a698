package models

import "time"

type Rating struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	UserID    string    `gorm:"type:varchar(64);not null;index" json:"user_id"`
	RecipeID  uint64    `gorm:"not null;index" json:"recipe_id"`
	Score     int       `gorm:"column:rating;not null" json:"rating"`
	Comment   string    `gorm:"type:text" json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Recipe Recipe `gorm:"foreignKey:RecipeID" json:"recipe,omitempty"`
}
