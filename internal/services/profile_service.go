package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ephanta/eva-app/internal/constants"
	"github.com/ephanta/eva-app/internal/models"
	"github.com/ephanta/eva-app/internal/repository"
	"gorm.io/gorm"
)

var ErrProfileNotFound = errors.New("profile not found")

// ProfileService provides business logic for user profiles.
type ProfileService struct {
	profiles repository.ProfileRepository
}

// NewProfileService creates a new ProfileService.
func NewProfileService(profiles repository.ProfileRepository) *ProfileService {
	return &ProfileService{
		profiles: profiles,
	}
}

// GetProfile returns the caller's profile.
func (s *ProfileService) GetProfile(userID string) (*models.Profile, error) {
	profile, err := s.profiles.FindByUser(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to find profile: %w", err)
	}
	return profile, nil
}

// UpdateProfileInput holds the updatable profile fields.
type UpdateProfileInput struct {
	Username     *string
	AvatarURL    *string
	DietaryNotes *string
}

// UpdateProfile applies a partial update, creating the profile row on
// first write. Empty dietary notes normalize to the "keine" placeholder.
func (s *ProfileService) UpdateProfile(userID string, input UpdateProfileInput) (*models.Profile, error) {
	profile, err := s.profiles.FindByUser(userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to find profile: %w", err)
		}
		profile = &models.Profile{UserID: userID}
	}

	if input.Username != nil {
		profile.Username = *input.Username
	}
	if input.AvatarURL != nil {
		profile.AvatarURL = *input.AvatarURL
	}
	if input.DietaryNotes != nil {
		notes := strings.TrimSpace(*input.DietaryNotes)
		if notes == "" {
			notes = constants.DietaryNotesNone
		}
		profile.DietaryNotes = notes
	}

	if err := s.profiles.Save(profile); err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}

	return profile, nil
}
