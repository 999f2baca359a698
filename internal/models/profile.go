package models

import "time"

// Profile holds per-user presentation data. The user itself lives in
// the external identity service; UserID is its opaque id.
type Profile struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	UserID       string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"user_id"`
	Username     string    `gorm:"type:varchar(255)" json:"username"`
	AvatarURL    string    `gorm:"type:text" json:"avatar_url"`
	DietaryNotes string    `gorm:"column:hinweise_zur_ernaehrung;type:text" json:"hinweise_zur_ernaehrung"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
