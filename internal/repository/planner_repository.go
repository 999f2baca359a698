package repository

import (
	"time"

	"github.com/ephanta/eva-app/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPlannerRepository is a GORM implementation of PlannerRepository
type GormPlannerRepository struct {
	db *gorm.DB
}

// NewPlannerRepository creates a new PlannerRepository
func NewPlannerRepository(db *gorm.DB) PlannerRepository {
	return &GormPlannerRepository{db: db}
}

// UpsertDay inserts the entry, or overwrites the meal slots and acting
// user of the existing row keyed on (household_id, datum). The unique
// index resolves concurrent upserts for the same day at the store
// level.
func (r *GormPlannerRepository) UpsertDay(entry *models.PlannerEntry) error {
	return r.db.
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "household_id"}, {Name: "datum"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"fruehstueck_rezept_id",
				"mittagessen_rezept_id",
				"abendessen_rezept_id",
				"benutzer_id",
				"updated_at",
			}),
		}).
		Create(entry).Error
}

// FindDay finds the entry for a single day
func (r *GormPlannerRepository) FindDay(householdID uint64, datum time.Time) (*models.PlannerEntry, error) {
	var entry models.PlannerEntry
	if err := r.db.Where("household_id = ? AND datum = ?", householdID, datum).
		First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListByHousehold returns all entries of a household ordered by datum
func (r *GormPlannerRepository) ListByHousehold(householdID uint64) ([]models.PlannerEntry, error) {
	var entries []models.PlannerEntry
	if err := r.db.Where("household_id = ?", householdID).
		Order("datum ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// UpdateDay overwrites the meal slots of an existing day
func (r *GormPlannerRepository) UpdateDay(householdID uint64, datum time.Time, values map[string]interface{}) (int64, error) {
	result := r.db.Model(&models.PlannerEntry{}).
		Where("household_id = ? AND datum = ?", householdID, datum).
		Updates(values)
	return result.RowsAffected, result.Error
}

// DeleteDay removes the entry for a day
func (r *GormPlannerRepository) DeleteDay(householdID uint64, datum time.Time) (int64, error) {
	result := r.db.Where("household_id = ? AND datum = ?", householdID, datum).
		Delete(&models.PlannerEntry{})
	return result.RowsAffected, result.Error
}
