package repository

import (
	"github.com/ephanta/eva-app/internal/models"
	"gorm.io/gorm"
)

// GormShoppingRepository is a GORM implementation of ShoppingRepository
type GormShoppingRepository struct {
	db *gorm.DB
}

// NewShoppingRepository creates a new ShoppingRepository
func NewShoppingRepository(db *gorm.DB) ShoppingRepository {
	return &GormShoppingRepository{db: db}
}

// Create creates a new shopping-list item
func (r *GormShoppingRepository) Create(item *models.ShoppingListItem) error {
	return r.db.Create(item).Error
}

// FindByID finds a shopping-list item by ID
func (r *GormShoppingRepository) FindByID(id uint64) (*models.ShoppingListItem, error) {
	var item models.ShoppingListItem
	if err := r.db.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// ListByHousehold lists all items of a household
func (r *GormShoppingRepository) ListByHousehold(householdID uint64) ([]models.ShoppingListItem, error) {
	var items []models.ShoppingListItem
	if err := r.db.Where("household_id = ?", householdID).
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Update updates a shopping-list item
func (r *GormShoppingRepository) Update(item *models.ShoppingListItem) error {
	return r.db.Save(item).Error
}

// Delete deletes a shopping-list item
func (r *GormShoppingRepository) Delete(id uint64) error {
	return r.db.Delete(&models.ShoppingListItem{}, id).Error
}
