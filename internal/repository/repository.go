package repository

import (
	"time"

	"github.com/ephanta/eva-app/internal/models"
	"github.com/ephanta/eva-app/internal/utils"
)

// HouseholdRepository defines the interface for household and
// membership data access.
type HouseholdRepository interface {
	// CreateWithOwner creates a household and its admin membership.
	// On membership failure the household row is compensated away.
	CreateWithOwner(household *models.Household, owner *models.HouseholdMember) error

	// FindByID finds a household by ID
	FindByID(id uint64) (*models.Household, error)

	// FindByInviteCode finds a household by invite code
	FindByInviteCode(code string) (*models.Household, error)

	// Update updates a household
	Update(household *models.Household) error

	// Delete deletes a household and all dependent rows
	Delete(id uint64) error

	// AddMember adds a member to a household
	AddMember(member *models.HouseholdMember) error

	// RemoveMember removes a member from a household
	RemoveMember(householdID uint64, memberUID string) error

	// FindMember finds a specific household member
	FindMember(householdID uint64, memberUID string) (*models.HouseholdMember, error)

	// ListMembershipsByUser lists all households a user is a member of
	ListMembershipsByUser(memberUID string) ([]models.HouseholdMember, error)

	// ListOwnedByUser lists all households a user owns
	ListOwnedByUser(ownerUID string) ([]models.Household, error)

	// ListMembers lists all members of a household
	ListMembers(householdID uint64) ([]models.HouseholdMember, error)
}

// PlannerRepository defines the interface for meal-plan data access.
type PlannerRepository interface {
	// UpsertDay inserts the entry or overwrites the meal slots of the
	// existing row for the same (household, day) key
	UpsertDay(entry *models.PlannerEntry) error

	// FindDay finds the entry for a single day
	FindDay(householdID uint64, datum time.Time) (*models.PlannerEntry, error)

	// ListByHousehold returns all entries of a household, datum ascending
	ListByHousehold(householdID uint64) ([]models.PlannerEntry, error)

	// UpdateDay overwrites the meal slots of an existing day, returning
	// the number of affected rows
	UpdateDay(householdID uint64, datum time.Time, values map[string]interface{}) (int64, error)

	// DeleteDay removes the entry for a day, returning affected rows
	DeleteDay(householdID uint64, datum time.Time) (int64, error)
}

// RecipeRepository defines the interface for recipe data access.
type RecipeRepository interface {
	Create(recipe *models.Recipe) error
	FindByID(id uint64) (*models.Recipe, error)

	// ListByOwner returns the user's recipes with pagination
	ListByOwner(ownerUID string, params utils.PaginationParams) ([]models.Recipe, int64, error)

	// UpdateOwned updates a recipe if it belongs to the owner,
	// returning the number of affected rows
	UpdateOwned(id uint64, ownerUID string, values map[string]interface{}) (int64, error)

	// DeleteOwned deletes a recipe if it belongs to the owner
	DeleteOwned(id uint64, ownerUID string) (int64, error)
}

// RatingRepository defines the interface for recipe-rating data access.
type RatingRepository interface {
	Create(rating *models.Rating) error
	ListByRecipe(recipeID uint64) ([]models.Rating, error)

	// ListByUser returns the user's ratings with their recipes preloaded
	ListByUser(userUID string) ([]models.Rating, error)

	// UpdateOwned updates a rating if it belongs to the user
	UpdateOwned(id uint64, userUID string, values map[string]interface{}) (int64, error)

	// DeleteOwned deletes a rating if it belongs to the user
	DeleteOwned(id uint64, userUID string) (int64, error)
}

// ShoppingRepository defines the interface for shopping-list data access.
type ShoppingRepository interface {
	Create(item *models.ShoppingListItem) error
	FindByID(id uint64) (*models.ShoppingListItem, error)
	ListByHousehold(householdID uint64) ([]models.ShoppingListItem, error)
	Update(item *models.ShoppingListItem) error
	Delete(id uint64) error
}

// ProfileRepository defines the interface for profile data access.
type ProfileRepository interface {
	FindByUser(userUID string) (*models.Profile, error)
	Save(profile *models.Profile) error
}
