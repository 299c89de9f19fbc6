// Package inbound defines the interfaces for inbound ports (primary/driving adapters)
// These are the use-case interfaces the HTTP layer invokes.
package inbound

import (
	"context"
	"time"

	"github.com/platewise/v1/internal/domain/recipe"
)

// RecipeService defines the recipe management use cases.
type RecipeService interface {
	CreateRecipe(ctx context.Context, cmd CreateRecipeCommand) (*RecipeDTO, error)
	UpdateRecipe(ctx context.Context, cmd UpdateRecipeCommand) (*RecipeDTO, error)
	DeleteRecipe(ctx context.Context, userID, recipeID int64) error
	GetRecipeByID(ctx context.Context, userID, recipeID int64) (*RecipeDTO, error)
	ListRecipes(ctx context.Context, userID int64) ([]RecipeDTO, error)
	ListRecipesByMealType(ctx context.Context, userID int64, mealType recipe.MealType) ([]RecipeDTO, error)
}

// CreateRecipeCommand contains the data to create a recipe. Ingredients
// may be submitted as a newline-separated blob; it is split into atomic
// entries before storage.
type CreateRecipeCommand struct {
	UserID       int64
	MealName     string
	MealType     string
	Ingredients  string
	Instructions string
}

// UpdateRecipeCommand contains the data to update a recipe. Nil fields
// are left unchanged.
type UpdateRecipeCommand struct {
	UserID       int64
	RecipeID     int64
	MealName     *string
	MealType     *string
	Ingredients  *string
	Instructions *string
}

// RecipeDTO represents recipe data returned to the HTTP layer.
type RecipeDTO struct {
	ID           int64     `json:"id"`
	MealName     string    `json:"meal_name"`
	MealType     string    `json:"meal_type"`
	Ingredients  []string  `json:"ingredients"`
	Instructions string    `json:"instructions"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
