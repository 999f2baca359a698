package services

import (
	"errors"
	"fmt"

	"github.com/ephanta/eva-app/internal/models"
	"github.com/ephanta/eva-app/internal/repository"
)

var ErrRatingNotFound = errors.New("rating not found")

// RatingService provides business logic for recipe ratings.
type RatingService struct {
	ratings repository.RatingRepository
}

// NewRatingService creates a new RatingService.
func NewRatingService(ratings repository.RatingRepository) *RatingService {
	return &RatingService{
		ratings: ratings,
	}
}

// CreateRatingInput represents parameters to rate a recipe.
type CreateRatingInput struct {
	RecipeID uint64
	Score    int
	Comment  string
}

// CreateRating records a rating by the caller.
func (s *RatingService) CreateRating(input CreateRatingInput, userID string) (*models.Rating, error) {
	rating := &models.Rating{
		UserID:   userID,
		RecipeID: input.RecipeID,
		Score:    input.Score,
		Comment:  input.Comment,
	}

	if err := s.ratings.Create(rating); err != nil {
		return nil, fmt.Errorf("failed to create rating: %w", err)
	}

	return rating, nil
}

// ListForRecipe returns all ratings of one recipe.
func (s *RatingService) ListForRecipe(recipeID uint64) ([]models.Rating, error) {
	ratings, err := s.ratings.ListByRecipe(recipeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ratings: %w", err)
	}
	return ratings, nil
}

// ListForUser returns the caller's ratings with recipes preloaded so
// responses can carry the recipe name.
func (s *RatingService) ListForUser(userID string) ([]models.Rating, error) {
	ratings, err := s.ratings.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user ratings: %w", err)
	}
	return ratings, nil
}

// UpdateRatingInput holds the updatable rating fields.
type UpdateRatingInput struct {
	Score   *int
	Comment *string
}

// UpdateRating updates a rating owned by the caller.
func (s *RatingService) UpdateRating(id uint64, userID string, input UpdateRatingInput) error {
	values := map[string]interface{}{}
	if input.Score != nil {
		values["rating"] = *input.Score
	}
	if input.Comment != nil {
		values["comment"] = *input.Comment
	}

	if len(values) == 0 {
		return nil
	}

	rows, err := s.ratings.UpdateOwned(id, userID, values)
	if err != nil {
		return fmt.Errorf("failed to update rating: %w", err)
	}
	if rows == 0 {
		return ErrRatingNotFound
	}
	return nil
}

// DeleteRating deletes a rating owned by the caller.
func (s *RatingService) DeleteRating(id uint64, userID string) error {
	rows, err := s.ratings.DeleteOwned(id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete rating: %w", err)
	}
	if rows == 0 {
		return ErrRatingNotFound
	}
	return nil
}
