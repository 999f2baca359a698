package repository

import (
	"github.com/ephanta/eva-app/internal/models"
	"gorm.io/gorm"
)

// GormRatingRepository is a GORM implementation of RatingRepository
type GormRatingRepository struct {
	db *gorm.DB
}

// NewRatingRepository creates a new RatingRepository
func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &GormRatingRepository{db: db}
}

// Create creates a new rating
func (r *GormRatingRepository) Create(rating *models.Rating) error {
	return r.db.Create(rating).Error
}

// ListByRecipe lists all ratings for a recipe
func (r *GormRatingRepository) ListByRecipe(recipeID uint64) ([]models.Rating, error) {
	var ratings []models.Rating
	if err := r.db.Where("recipe_id = ?", recipeID).
		Order("created_at DESC").
		Find(&ratings).Error; err != nil {
		return nil, err
	}
	return ratings, nil
}

// ListByUser lists the user's ratings with their recipes preloaded
func (r *GormRatingRepository) ListByUser(userUID string) ([]models.Rating, error) {
	var ratings []models.Rating
	if err := r.db.Preload("Recipe").
		Where("user_id = ?", userUID).
		Order("created_at DESC").
		Find(&ratings).Error; err != nil {
		return nil, err
	}
	return ratings, nil
}

// UpdateOwned updates a rating if it belongs to the user
func (r *GormRatingRepository) UpdateOwned(id uint64, userUID string, values map[string]interface{}) (int64, error) {
	result := r.db.Model(&models.Rating{}).
		Where("id = ? AND user_id = ?", id, userUID).
		Updates(values)
	return result.RowsAffected, result.Error
}

// DeleteOwned deletes a rating if it belongs to the user
func (r *GormRatingRepository) DeleteOwned(id uint64, userUID string) (int64, error) {
	result := r.db.Where("id = ? AND user_id = ?", id, userUID).
		Delete(&models.Rating{})
	return result.RowsAffected, result.Error
}
