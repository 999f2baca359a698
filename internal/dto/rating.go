package dto

import (
	"time"

	"github.com/ephanta/eva-app/internal/models"
)

// RatingWithRecipeDTO is a rating enriched with its recipe's name for
// the caller's own-ratings view.
type RatingWithRecipeDTO struct {
	ID         uint64    `json:"id"`
	RecipeID   uint64    `json:"recipe_id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	RecipeName string    `json:"recipe_name"`
	CreatedAt  time.Time `json:"created_at"`
}

// ToRatingWithRecipeDTO converts a rating with preloaded recipe. A
// rating whose recipe has been deleted keeps a placeholder name.
func ToRatingWithRecipeDTO(rating models.Rating) RatingWithRecipeDTO {
	recipeName := "Unknown Recipe"
	if rating.Recipe.ID != 0 {
		recipeName = rating.Recipe.Name
	}

	return RatingWithRecipeDTO{
		ID:         rating.ID,
		RecipeID:   rating.RecipeID,
		Rating:     rating.Score,
		Comment:    rating.Comment,
		RecipeName: recipeName,
		CreatedAt:  rating.CreatedAt,
	}
}

// ToRatingWithRecipeDTOs converts a slice of ratings
func ToRatingWithRecipeDTOs(ratings []models.Rating) []RatingWithRecipeDTO {
	dtos := make([]RatingWithRecipeDTO, len(ratings))
	for i, rating := range ratings {
		dtos[i] = ToRatingWithRecipeDTO(rating)
	}
	return dtos
}
