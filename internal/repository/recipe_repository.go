package repository

import (
	"github.com/ephanta/eva-app/internal/database"
	"github.com/ephanta/eva-app/internal/models"
	"github.com/ephanta/eva-app/internal/utils"
	"gorm.io/gorm"
)

// GormRecipeRepository is a GORM implementation of RecipeRepository
type GormRecipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository creates a new RecipeRepository
func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &GormRecipeRepository{db: db}
}

// Create creates a new recipe
func (r *GormRecipeRepository) Create(recipe *models.Recipe) error {
	return r.db.Create(recipe).Error
}

// FindByID finds a recipe by ID
func (r *GormRecipeRepository) FindByID(id uint64) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := r.db.First(&recipe, id).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// ListByOwner returns the user's recipes with pagination
func (r *GormRecipeRepository) ListByOwner(ownerUID string, params utils.PaginationParams) ([]models.Recipe, int64, error) {
	query := r.db.Model(&models.Recipe{}).Where("benutzer_id = ?", ownerUID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var recipes []models.Recipe
	if err := query.Scopes(database.Paginate(params)).
		Order("created_at DESC").
		Find(&recipes).Error; err != nil {
		return nil, 0, err
	}

	return recipes, total, nil
}

// UpdateOwned updates a recipe if it belongs to the owner
func (r *GormRecipeRepository) UpdateOwned(id uint64, ownerUID string, values map[string]interface{}) (int64, error) {
	result := r.db.Model(&models.Recipe{}).
		Where("id = ? AND benutzer_id = ?", id, ownerUID).
		Updates(values)
	return result.RowsAffected, result.Error
}

// DeleteOwned deletes a recipe if it belongs to the owner
func (r *GormRecipeRepository) DeleteOwned(id uint64, ownerUID string) (int64, error) {
	result := r.db.Where("id = ? AND benutzer_id = ?", id, ownerUID).
		Delete(&models.Recipe{})
	return result.RowsAffected, result.Error
}
