package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/ephanta/eva-app/internal/models"
	"github.com/ephanta/eva-app/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrInvalidDate          = errors.New("invalid datum, expected YYYY-MM-DD or RFC 3339")
	ErrPlannerEntryNotFound = errors.New("planner entry not found")
)

// dayLayout is the wire format for planner day keys.
const dayLayout = "2006-01-02"

// PlannerService provides business logic for the day-keyed meal plan.
type PlannerService struct {
	planner    repository.PlannerRepository
	households repository.HouseholdRepository
}

// NewPlannerService creates a new PlannerService.
func NewPlannerService(planner repository.PlannerRepository, households repository.HouseholdRepository) *PlannerService {
	return &PlannerService{
		planner:    planner,
		households: households,
	}
}

// ParseDay parses a datum value and normalizes it to day granularity.
// Values differing only in time of day resolve to the same day.
func ParseDay(value string) (time.Time, error) {
	for _, layout := range []string{dayLayout, time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			t = t.UTC()
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, ErrInvalidDate
}

// FormatDay renders a normalized day as its wire key.
func FormatDay(t time.Time) string {
	return t.UTC().Format(dayLayout)
}

// requireMembership gates planner access on household membership,
// keeping household-missing and not-a-member failures distinct.
func (s *PlannerService) requireMembership(householdID uint64, userID string) error {
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

// UpsertDayInput represents a day's meal slots.
type UpsertDayInput struct {
	HouseholdID       uint64
	Datum             string
	BreakfastRecipeID *uint64
	LunchRecipeID     *uint64
	DinnerRecipeID    *uint64
}

// UpsertDay writes the meal plan for one day. A second call for the
// same (household, day) overwrites all three slots instead of creating
// a duplicate row; an absent slot overwrites to null.
func (s *PlannerService) UpsertDay(input UpsertDayInput, userID string) (*models.PlannerEntry, error) {
	if err := s.requireMembership(input.HouseholdID, userID); err != nil {
		return nil, err
	}

	day, err := ParseDay(input.Datum)
	if err != nil {
		return nil, err
	}

	entry := &models.PlannerEntry{
		HouseholdID:       input.HouseholdID,
		Datum:             day,
		BreakfastRecipeID: input.BreakfastRecipeID,
		LunchRecipeID:     input.LunchRecipeID,
		DinnerRecipeID:    input.DinnerRecipeID,
		UserID:            userID,
	}

	if err := s.planner.UpsertDay(entry); err != nil {
		return nil, fmt.Errorf("failed to upsert planner entry: %w", err)
	}

	// Reload the canonical row; on conflict the insert does not carry
	// the existing row's id.
	stored, err := s.planner.FindDay(input.HouseholdID, day)
	if err != nil {
		return nil, fmt.Errorf("failed to load planner entry: %w", err)
	}

	return stored, nil
}

// GetPlan returns all planner entries of a household, datum ascending.
func (s *PlannerService) GetPlan(householdID uint64, userID string) ([]models.PlannerEntry, error) {
	if err := s.requireMembership(householdID, userID); err != nil {
		return nil, err
	}

	entries, err := s.planner.ListByHousehold(householdID)
	if err != nil {
		return nil, fmt.Errorf("failed to list planner entries: %w", err)
	}

	return entries, nil
}

// UpdateDay overwrites the meal slots of an existing day.
func (s *PlannerService) UpdateDay(input UpsertDayInput, userID string) (*models.PlannerEntry, error) {
	if err := s.requireMembership(input.HouseholdID, userID); err != nil {
		return nil, err
	}

	day, err := ParseDay(input.Datum)
	if err != nil {
		return nil, err
	}

	values := map[string]interface{}{
		"fruehstueck_rezept_id": input.BreakfastRecipeID,
		"mittagessen_rezept_id": input.LunchRecipeID,
		"abendessen_rezept_id":  input.DinnerRecipeID,
		"benutzer_id":           userID,
	}

	rows, err := s.planner.UpdateDay(input.HouseholdID, day, values)
	if err != nil {
		return nil, fmt.Errorf("failed to update planner entry: %w", err)
	}
	if rows == 0 {
		return nil, ErrPlannerEntryNotFound
	}

	return s.planner.FindDay(input.HouseholdID, day)
}

// DeleteDay removes the plan for one day.
func (s *PlannerService) DeleteDay(householdID uint64, datum string, userID string) error {
	if err := s.requireMembership(householdID, userID); err != nil {
		return err
	}

	day, err := ParseDay(datum)
	if err != nil {
		return err
	}

	rows, err := s.planner.DeleteDay(householdID, day)
	if err != nil {
		return fmt.Errorf("failed to delete planner entry: %w", err)
	}
	if rows == 0 {
		return ErrPlannerEntryNotFound
	}

	return nil
}
