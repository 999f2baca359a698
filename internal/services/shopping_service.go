package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/ephanta/eva-app/internal/models"
	"github.com/ephanta/eva-app/internal/repository"
	"gorm.io/gorm"
)

var ErrItemNotFound = errors.New("item not found")

// ShoppingService provides business logic for household shopping lists.
type ShoppingService struct {
	items      repository.ShoppingRepository
	households repository.HouseholdRepository
}

// NewShoppingService creates a new ShoppingService.
func NewShoppingService(items repository.ShoppingRepository, households repository.HouseholdRepository) *ShoppingService {
	return &ShoppingService{
		items:      items,
		households: households,
	}
}

// requireMembership checks household existence before membership so
// that a missing household reports not-found and a missing membership
// reports forbidden.
func (s *ShoppingService) requireMembership(householdID uint64, userID string) error {
	if _, err := s.households.FindByID(householdID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrHouseholdNotFound
		}
		return fmt.Errorf("failed to find household: %w", err)
	}

	if _, err := s.households.FindMember(householdID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotHouseholdMember
		}
		return fmt.Errorf("failed to verify membership: %w", err)
	}

	return nil
}

// ListItems returns a household's shopping list for a member.
func (s *ShoppingService) ListItems(householdID uint64, userID string) ([]models.ShoppingListItem, error) {
	if err := s.requireMembership(householdID, userID); err != nil {
		return nil, err
	}

	items, err := s.items.ListByHousehold(householdID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shopping items: %w", err)
	}

	return items, nil
}

// CreateItemInput represents parameters to add a shopping-list item.
type CreateItemInput struct {
	HouseholdID uint64
	ItemName    string
	Amount      string
}

// CreateItem adds an item to the household's shopping list.
func (s *ShoppingService) CreateItem(input CreateItemInput, userID string) (*models.ShoppingListItem, error) {
	if err := s.requireMembership(input.HouseholdID, userID); err != nil {
		return nil, err
	}

	item := &models.ShoppingListItem{
		HouseholdID: input.HouseholdID,
		ItemName:    input.ItemName,
		Amount:      input.Amount,
		Status:      models.ShoppingStatusPending,
		CreatedBy:   userID,
	}

	if err := s.items.Create(item); err != nil {
		return nil, fmt.Errorf("failed to create shopping item: %w", err)
	}

	return item, nil
}

// ApplyStatus transitions an item's status. Moving to "purchased"
// stamps the acting user and time; any other status clears both.
// Membership must already have been re-derived from the item's
// household by the caller.
func (s *ShoppingService) ApplyStatus(item models.ShoppingListItem, status models.ShoppingStatus, userID string) (*models.ShoppingListItem, error) {
	item.Status = status
	if status == models.ShoppingStatusPurchased {
		now := time.Now()
		item.PurchasedBy = &userID
		item.PurchasedAt = &now
	} else {
		item.PurchasedBy = nil
		item.PurchasedAt = nil
	}

	if err := s.items.Update(&item); err != nil {
		return nil, fmt.Errorf("failed to update shopping item: %w", err)
	}

	return &item, nil
}

// DeleteItem removes an item from the shopping list.
func (s *ShoppingService) DeleteItem(itemID uint64) error {
	if err := s.items.Delete(itemID); err != nil {
		return fmt.Errorf("failed to delete shopping item: %w", err)
	}
	return nil
}
