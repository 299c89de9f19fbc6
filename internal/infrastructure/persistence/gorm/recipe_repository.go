package gorm

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/platewise/v1/internal/domain/recipe"
	"github.com/platewise/v1/internal/ports/outbound"
)

// RecipeRepository implements outbound.RecipeRepository using GORM.
// Every query is scoped by the owning user.
type RecipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository creates a new GORM recipe repository.
func NewRecipeRepository(db *gorm.DB) outbound.RecipeRepository {
	return &RecipeRepository{db: db}
}

// Create inserts a new recipe and backfills the generated ID.
func (r *RecipeRepository) Create(ctx context.Context, rec *recipe.Recipe) error {
	model := recipeToModel(rec)
	model.ID = 0

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create recipe: %w", err)
	}

	rec.SetID(model.ID)
	return nil
}

// Update saves the mutable fields of an existing recipe.
func (r *RecipeRepository) Update(ctx context.Context, rec *recipe.Recipe) error {
	model := recipeToModel(rec)

	result := r.db.WithContext(ctx).Model(&RecipeModel{}).
		Where("id = ? AND user_id = ?", model.ID, model.UserID).
		Updates(map[string]interface{}{
			"meal_name":    model.MealName,
			"meal_type":    model.MealType,
			"ingredients":  model.Ingredients,
			"instructions": model.Instructions,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update recipe: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("recipe %d not found", model.ID)
	}
	return nil
}

// Delete removes a recipe owned by the user.
func (r *RecipeRepository) Delete(ctx context.Context, ownerID, id int64) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&RecipeModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete recipe: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("recipe %d not found", id)
	}
	return nil
}

// FindByID returns the recipe, or (nil, nil) when absent.
func (r *RecipeRepository) FindByID(ctx context.Context, ownerID, id int64) (*recipe.Recipe, error) {
	var model RecipeModel
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find recipe by id: %w", err)
	}
	return recipeToDomain(&model), nil
}

// FindByName returns the first recipe with the meal name, lowest ID
// first so duplicate names resolve deterministically. Absence is
// (nil, nil), not an error.
func (r *RecipeRepository) FindByName(ctx context.Context, ownerID int64, mealName string) (*recipe.Recipe, error) {
	var model RecipeModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND meal_name = ?", ownerID, mealName).
		Order("id ASC").
		First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find recipe by name: %w", err)
	}
	return recipeToDomain(&model), nil
}

// FindIngredientsByName returns the ingredients of the first recipe
// matching the meal name. nil means no recipe matched; a non-nil empty
// slice means the recipe exists with zero ingredients.
func (r *RecipeRepository) FindIngredientsByName(ctx context.Context, ownerID int64, mealName string) ([]string, error) {
	rec, err := r.FindByName(ctx, ownerID, mealName)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	ingredients := rec.Ingredients()
	if ingredients == nil {
		ingredients = []string{}
	}
	return ingredients, nil
}

// ListByOwner returns all recipes owned by the user, ordered by meal
// name without regard to case.
func (r *RecipeRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*recipe.Recipe, error) {
	var models []RecipeModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("LOWER(meal_name) ASC").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	return toDomainSlice(models), nil
}

// ListByMealType returns the user's recipes of one meal type.
func (r *RecipeRepository) ListByMealType(ctx context.Context, ownerID int64, mealType recipe.MealType) ([]*recipe.Recipe, error) {
	var models []RecipeModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND meal_type = ?", ownerID, mealType.String()).
		Order("LOWER(meal_name) ASC").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes by meal type: %w", err)
	}
	return toDomainSlice(models), nil
}

func toDomainSlice(models []RecipeModel) []*recipe.Recipe {
	recipes := make([]*recipe.Recipe, 0, len(models))
	for i := range models {
		recipes = append(recipes, recipeToDomain(&models[i]))
	}
	return recipes
}
