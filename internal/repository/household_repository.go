package repository

import (
	"errors"
	"fmt"

	"github.com/ephanta/eva-app/internal/models"
	"gorm.io/gorm"
)

var (
	// ErrCreateHousehold is returned when the household insert fails.
	ErrCreateHousehold = errors.New("household repository: create household failed")
	// ErrCreateOwnerMembership is returned when the admin membership
	// insert fails after the household insert succeeded.
	ErrCreateOwnerMembership = errors.New("household repository: create owner membership failed")
)

// GormHouseholdRepository is a GORM implementation of HouseholdRepository
type GormHouseholdRepository struct {
	db *gorm.DB
}

// NewHouseholdRepository creates a new HouseholdRepository
func NewHouseholdRepository(db *gorm.DB) HouseholdRepository {
	return &GormHouseholdRepository{db: db}
}

// CreateWithOwner creates the household row, then the admin membership
// for the owner. The two inserts are not wrapped in a transaction; if
// the membership insert fails, a best-effort compensating delete
// removes the household so no admin-less household is left behind.
func (r *GormHouseholdRepository) CreateWithOwner(household *models.Household, owner *models.HouseholdMember) error {
	if err := r.db.Create(household).Error; err != nil {
		return fmt.Errorf("%w: %v", ErrCreateHousehold, err)
	}

	owner.HouseholdID = household.ID
	owner.MemberUID = household.OwnerID
	owner.Role = models.RoleAdmin

	if err := r.db.Create(owner).Error; err != nil {
		if delErr := r.db.Delete(&models.Household{}, household.ID).Error; delErr != nil {
			return fmt.Errorf("%w: %v (compensating delete failed: %v)", ErrCreateOwnerMembership, err, delErr)
		}
		return fmt.Errorf("%w: %v", ErrCreateOwnerMembership, err)
	}

	return nil
}

// FindByID finds a household by ID
func (r *GormHouseholdRepository) FindByID(id uint64) (*models.Household, error) {
	var household models.Household
	if err := r.db.First(&household, id).Error; err != nil {
		return nil, err
	}
	return &household, nil
}

// FindByInviteCode finds a household by invite code
func (r *GormHouseholdRepository) FindByInviteCode(code string) (*models.Household, error) {
	var household models.Household
	if err := r.db.Where("invite_code = ?", code).First(&household).Error; err != nil {
		return nil, err
	}
	return &household, nil
}

// Update updates a household
func (r *GormHouseholdRepository) Update(household *models.Household) error {
	return r.db.Save(household).Error
}

// Delete deletes a household and all dependent rows in a transaction
func (r *GormHouseholdRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("household_id = ?", id).Delete(&models.ShoppingListItem{}).Error; err != nil {
			return err
		}

		if err := tx.Where("household_id = ?", id).Delete(&models.PlannerEntry{}).Error; err != nil {
			return err
		}

		if err := tx.Where("household_id = ?", id).Delete(&models.HouseholdMember{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Household{}, id).Error
	})
}

// AddMember adds a member to a household
func (r *GormHouseholdRepository) AddMember(member *models.HouseholdMember) error {
	return r.db.Create(member).Error
}

// RemoveMember removes a member from a household
func (r *GormHouseholdRepository) RemoveMember(householdID uint64, memberUID string) error {
	return r.db.Where("household_id = ? AND member_uid = ?", householdID, memberUID).
		Delete(&models.HouseholdMember{}).Error
}

// FindMember finds a specific household member
func (r *GormHouseholdRepository) FindMember(householdID uint64, memberUID string) (*models.HouseholdMember, error) {
	var member models.HouseholdMember
	if err := r.db.Where("household_id = ? AND member_uid = ?", householdID, memberUID).
		First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// ListMembershipsByUser lists all households a user is a member of
func (r *GormHouseholdRepository) ListMembershipsByUser(memberUID string) ([]models.HouseholdMember, error) {
	var memberships []models.HouseholdMember
	if err := r.db.Preload("Household").
		Where("member_uid = ?", memberUID).
		Find(&memberships).Error; err != nil {
		return nil, err
	}
	return memberships, nil
}

// ListOwnedByUser lists all households a user owns
func (r *GormHouseholdRepository) ListOwnedByUser(ownerUID string) ([]models.Household, error) {
	var households []models.Household
	if err := r.db.Where("owner_id = ?", ownerUID).Find(&households).Error; err != nil {
		return nil, err
	}
	return households, nil
}

// ListMembers lists all members of a household
func (r *GormHouseholdRepository) ListMembers(householdID uint64) ([]models.HouseholdMember, error) {
	var members []models.HouseholdMember
	if err := r.db.Where("household_id = ?", householdID).
		Order("joined_at ASC").
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}
