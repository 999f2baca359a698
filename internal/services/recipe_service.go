package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ephanta/eva-app/internal/models"
	"github.com/ephanta/eva-app/internal/repository"
	"github.com/ephanta/eva-app/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrRecipeNotFound    = errors.New("recipe not found")
	ErrInvalidRecipeName = errors.New("recipe name cannot be empty")
)

// RecipeService provides business logic for user-owned recipes.
type RecipeService struct {
	recipes repository.RecipeRepository
}

// NewRecipeService creates a new RecipeService.
func NewRecipeService(recipes repository.RecipeRepository) *RecipeService {
	return &RecipeService{
		recipes: recipes,
	}
}

// CreateRecipeInput represents parameters to create a recipe.
type CreateRecipeInput struct {
	Name         string
	Description  string
	Ingredients  string
	Instructions string
	OwnerID      string
}

// CreateRecipe creates a recipe owned by the caller.
func (s *RecipeService) CreateRecipe(input CreateRecipeInput) (*models.Recipe, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrInvalidRecipeName
	}

	recipe := &models.Recipe{
		OwnerID:      input.OwnerID,
		Name:         input.Name,
		Description:  input.Description,
		Ingredients:  input.Ingredients,
		Instructions: input.Instructions,
	}

	if err := s.recipes.Create(recipe); err != nil {
		return nil, fmt.Errorf("failed to create recipe: %w", err)
	}

	return recipe, nil
}

// GetRecipe returns a recipe by id. Recipes are readable by any
// authenticated user; only mutations are owner-scoped.
func (s *RecipeService) GetRecipe(id uint64) (*models.Recipe, error) {
	recipe, err := s.recipes.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, fmt.Errorf("failed to find recipe: %w", err)
	}
	return recipe, nil
}

// ListRecipes returns the caller's recipes with pagination.
func (s *RecipeService) ListRecipes(ownerID string, params utils.PaginationParams) ([]models.Recipe, int64, error) {
	recipes, total, err := s.recipes.ListByOwner(ownerID, params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list recipes: %w", err)
	}
	return recipes, total, nil
}

// UpdateRecipeInput holds the updatable recipe fields.
type UpdateRecipeInput struct {
	Name         *string
	Description  *string
	Ingredients  *string
	Instructions *string
}

// UpdateRecipe updates a recipe owned by the caller. A recipe that
// does not exist or belongs to someone else reports not-found.
func (s *RecipeService) UpdateRecipe(id uint64, ownerID string, input UpdateRecipeInput) (*models.Recipe, error) {
	values := map[string]interface{}{}
	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, ErrInvalidRecipeName
		}
		values["name"] = *input.Name
	}
	if input.Description != nil {
		values["description"] = *input.Description
	}
	if input.Ingredients != nil {
		values["ingredients"] = *input.Ingredients
	}
	if input.Instructions != nil {
		values["instructions"] = *input.Instructions
	}

	if len(values) > 0 {
		rows, err := s.recipes.UpdateOwned(id, ownerID, values)
		if err != nil {
			return nil, fmt.Errorf("failed to update recipe: %w", err)
		}
		if rows == 0 {
			return nil, ErrRecipeNotFound
		}
	}

	return s.GetRecipe(id)
}

// DeleteRecipe deletes a recipe owned by the caller.
func (s *RecipeService) DeleteRecipe(id uint64, ownerID string) error {
	rows, err := s.recipes.DeleteOwned(id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}
	if rows == 0 {
		return ErrRecipeNotFound
	}
	return nil
}
