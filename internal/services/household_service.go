package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ephanta/eva-app/internal/models"
	"github.com/ephanta/eva-app/internal/repository"
	"github.com/ephanta/eva-app/internal/utils"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

var (
	ErrHouseholdNotFound          = errors.New("household not found")
	ErrInvalidHouseholdName       = errors.New("household name cannot be empty")
	ErrInviteCodeGenerationFailed = errors.New("failed to generate invite code")
	ErrInvalidInviteCode          = errors.New("invalid invite code")
	ErrNotHouseholdMember         = errors.New("user is not a member of this household")
)

// HouseholdService provides business logic for household operations.
type HouseholdService struct {
	households repository.HouseholdRepository
}

// NewHouseholdService creates a new HouseholdService.
func NewHouseholdService(households repository.HouseholdRepository) *HouseholdService {
	return &HouseholdService{
		households: households,
	}
}

// CreateHouseholdInput represents parameters to create a new household.
type CreateHouseholdInput struct {
	Name       string
	Color      string
	InviteCode string
	OwnerID    string
}

// CreateHousehold creates a household and makes the owner its admin
// member. An invite code is generated when the caller supplied none.
func (s *HouseholdService) CreateHousehold(input CreateHouseholdInput) (*models.Household, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrInvalidHouseholdName
	}

	inviteCode := strings.TrimSpace(input.InviteCode)
	if inviteCode == "" {
		code, err := utils.GenerateInviteCode()
		if err != nil {
			return nil, ErrInviteCodeGenerationFailed
		}
		inviteCode = code
	}

	household := &models.Household{
		Name:       input.Name,
		Color:      input.Color,
		OwnerID:    input.OwnerID,
		InviteCode: inviteCode,
	}

	owner := &models.HouseholdMember{
		Role:     models.RoleAdmin,
		JoinedAt: time.Now(),
	}

	if err := s.households.CreateWithOwner(household, owner); err != nil {
		return nil, fmt.Errorf("failed to create household: %w", err)
	}

	return household, nil
}

// ListHouseholdsForUser returns the user's memberships and owned
// households. The two reads are independent and issued concurrently.
func (s *HouseholdService) ListHouseholdsForUser(userID string) ([]models.HouseholdMember, []models.Household, error) {
	var (
		memberships []models.HouseholdMember
		owned       []models.Household
	)

	g := new(errgroup.Group)
	g.Go(func() error {
		var err error
		memberships, err = s.households.ListMembershipsByUser(userID)
		return err
	})
	g.Go(func() error {
		var err error
		owned, err = s.households.ListOwnedByUser(userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, fmt.Errorf("failed to list households: %w", err)
	}

	return memberships, owned, nil
}

// GetRole returns the user's role in the household.
func (s *HouseholdService) GetRole(householdID uint64, userID string) (models.HouseholdRole, error) {
	member, err := s.households.FindMember(householdID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotHouseholdMember
		}
		return "", fmt.Errorf("failed to find household member: %w", err)
	}
	return member.Role, nil
}

// ListMembers returns all members of a household.
func (s *HouseholdService) ListMembers(householdID uint64) ([]models.HouseholdMember, error) {
	members, err := s.households.ListMembers(householdID)
	if err != nil {
		return nil, fmt.Errorf("failed to list household members: %w", err)
	}
	return members, nil
}

// JoinByInviteCode adds the user to the household the invite code
// resolves to. Joining a household the user already belongs to is a
// no-op; the second return value reports it.
func (s *HouseholdService) JoinByInviteCode(userID, inviteCode string) (*models.Household, bool, error) {
	household, err := s.households.FindByInviteCode(inviteCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, ErrInvalidInviteCode
		}
		return nil, false, fmt.Errorf("failed to find household by invite code: %w", err)
	}

	if _, err := s.households.FindMember(household.ID, userID); err == nil {
		return household, true, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to verify membership: %w", err)
	}

	member := &models.HouseholdMember{
		HouseholdID: household.ID,
		MemberUID:   userID,
		Role:        models.RoleMember,
		JoinedAt:    time.Now(),
	}

	if err := s.households.AddMember(member); err != nil {
		return nil, false, fmt.Errorf("failed to add member to household: %w", err)
	}

	return household, false, nil
}

// Leave removes the caller's own membership. There is no role check;
// admins may leave like anyone else.
func (s *HouseholdService) Leave(householdID uint64, userID string) error {
	if err := s.households.RemoveMember(householdID, userID); err != nil {
		return fmt.Errorf("failed to leave household: %w", err)
	}
	return nil
}

// UpdateHouseholdInput holds the updatable household fields.
type UpdateHouseholdInput struct {
	Name  *string
	Color *string
}

// UpdateHousehold updates a household's name and color.
func (s *HouseholdService) UpdateHousehold(householdID uint64, input UpdateHouseholdInput) (*models.Household, error) {
	household, err := s.households.FindByID(householdID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHouseholdNotFound
		}
		return nil, fmt.Errorf("failed to find household: %w", err)
	}

	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, ErrInvalidHouseholdName
		}
		household.Name = *input.Name
	}
	if input.Color != nil {
		household.Color = *input.Color
	}

	if err := s.households.Update(household); err != nil {
		return nil, fmt.Errorf("failed to update household: %w", err)
	}

	return household, nil
}

// RegenerateInviteCode generates a new invite code for the household.
func (s *HouseholdService) RegenerateInviteCode(householdID uint64) (*models.Household, error) {
	household, err := s.households.FindByID(householdID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHouseholdNotFound
		}
		return nil, fmt.Errorf("failed to find household: %w", err)
	}

	code, err := utils.GenerateInviteCode()
	if err != nil {
		return nil, ErrInviteCodeGenerationFailed
	}

	household.InviteCode = code
	if err := s.households.Update(household); err != nil {
		return nil, fmt.Errorf("failed to update invite code: %w", err)
	}

	return household, nil
}

// DeleteHousehold removes a household and cascades its memberships,
// planner entries and shopping-list items.
func (s *HouseholdService) DeleteHousehold(householdID uint64) error {
	if _, err := s.households.FindByID(householdID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrHouseholdNotFound
		}
		return fmt.Errorf("failed to find household: %w", err)
	}

	if err := s.households.Delete(householdID); err != nil {
		return fmt.Errorf("failed to delete household: %w", err)
	}

	return nil
}
