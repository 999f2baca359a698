package repository

import (
	"github.com/ephanta/eva-app/internal/models"
	"gorm.io/gorm"
)

// GormProfileRepository is a GORM implementation of ProfileRepository
type GormProfileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &GormProfileRepository{db: db}
}

// FindByUser finds a profile by the owning user's id
func (r *GormProfileRepository) FindByUser(userUID string) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.Where("user_id = ?", userUID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// Save inserts or updates a profile
func (r *GormProfileRepository) Save(profile *models.Profile) error {
	return r.db.Save(profile).Error
}
