// Package recipe implements the recipe management use cases.
package recipe

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/platewise/v1/internal/domain/recipe"
	"github.com/platewise/v1/internal/ports/inbound"
	"github.com/platewise/v1/internal/ports/outbound"
	"github.com/platewise/v1/pkg/errors"
)

const cacheTTL = 15 * time.Minute

// Service implements inbound.RecipeService.
type Service struct {
	recipes outbound.RecipeRepository
	cache   outbound.CacheRepository
	logger  *zap.Logger
}

// NewService creates the recipe service.
func NewService(recipes outbound.RecipeRepository, cache outbound.CacheRepository, logger *zap.Logger) *Service {
	return &Service{
		recipes: recipes,
		cache:   cache,
		logger:  logger,
	}
}

// CreateRecipe validates and stores a new recipe. The ingredients blob
// is split into one entry per non-blank line.
func (s *Service) CreateRecipe(ctx context.Context, cmd inbound.CreateRecipeCommand) (*inbound.RecipeDTO, error) {
	mealType := recipe.MealType(cmd.MealType)
	ingredients := recipe.ParseIngredientsText(cmd.Ingredients)

	r, err := recipe.NewRecipe(cmd.UserID, cmd.MealName, mealType, ingredients, cmd.Instructions)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.recipes.Create(ctx, r); err != nil {
		return nil, errors.NewDatabaseError("create recipe", err)
	}

	s.logger.Info("Recipe created",
		zap.Int64("user_id", cmd.UserID),
		zap.Int64("recipe_id", r.ID()),
		zap.String("meal_type", mealType.String()))

	dto := toDTO(r)
	return &dto, nil
}

// UpdateRecipe applies the non-nil fields of the command and
// invalidates the cached copy.
func (s *Service) UpdateRecipe(ctx context.Context, cmd inbound.UpdateRecipeCommand) (*inbound.RecipeDTO, error) {
	r, err := s.recipes.FindByID(ctx, cmd.UserID, cmd.RecipeID)
	if err != nil {
		return nil, errors.NewDatabaseError("find recipe by id", err)
	}
	if r == nil {
		return nil, errors.NewRecipeNotFoundError(cmd.RecipeID)
	}

	if cmd.MealName != nil {
		if err := r.Rename(*cmd.MealName); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.MealType != nil {
		if err := r.Retype(recipe.MealType(*cmd.MealType)); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Ingredients != nil {
		r.ReplaceIngredients(recipe.ParseIngredientsText(*cmd.Ingredients))
	}
	if cmd.Instructions != nil {
		r.ReplaceInstructions(*cmd.Instructions)
	}

	if err := s.recipes.Update(ctx, r); err != nil {
		return nil, errors.NewDatabaseError("update recipe", err)
	}
	s.invalidate(ctx, cmd.UserID, cmd.RecipeID)

	dto := toDTO(r)
	return &dto, nil
}

// DeleteRecipe removes a recipe. Plan slots referencing it are left in
// place; aggregation treats them as stale references.
func (s *Service) DeleteRecipe(ctx context.Context, userID, recipeID int64) error {
	r, err := s.recipes.FindByID(ctx, userID, recipeID)
	if err != nil {
		return errors.NewDatabaseError("find recipe by id", err)
	}
	if r == nil {
		return errors.NewRecipeNotFoundError(recipeID)
	}

	if err := s.recipes.Delete(ctx, userID, recipeID); err != nil {
		return errors.NewDatabaseError("delete recipe", err)
	}
	s.invalidate(ctx, userID, recipeID)

	s.logger.Info("Recipe deleted",
		zap.Int64("user_id", userID),
		zap.Int64("recipe_id", recipeID))
	return nil
}

// GetRecipeByID returns a single recipe, serving from cache when
// possible. Cache failures fall through to the repository.
func (s *Service) GetRecipeByID(ctx context.Context, userID, recipeID int64) (*inbound.RecipeDTO, error) {
	key := cacheKey(userID, recipeID)
	if data, err := s.cache.Get(ctx, key); err == nil && data != nil {
		var dto inbound.RecipeDTO
		if err := json.Unmarshal(data, &dto); err == nil {
			return &dto, nil
		}
	}

	r, err := s.recipes.FindByID(ctx, userID, recipeID)
	if err != nil {
		return nil, errors.NewDatabaseError("find recipe by id", err)
	}
	if r == nil {
		return nil, errors.NewRecipeNotFoundError(recipeID)
	}

	dto := toDTO(r)
	if data, err := json.Marshal(dto); err == nil {
		if err := s.cache.Set(ctx, key, data, cacheTTL); err != nil {
			s.logger.Warn("Failed to cache recipe", zap.String("key", key), zap.Error(err))
		}
	}
	return &dto, nil
}

// ListRecipes returns all recipes owned by the user.
func (s *Service) ListRecipes(ctx context.Context, userID int64) ([]inbound.RecipeDTO, error) {
	rs, err := s.recipes.ListByOwner(ctx, userID)
	if err != nil {
		return nil, errors.NewDatabaseError("list recipes", err)
	}
	return toDTOs(rs), nil
}

// ListRecipesByMealType returns the user's recipes for one meal type.
func (s *Service) ListRecipesByMealType(ctx context.Context, userID int64, mealType recipe.MealType) ([]inbound.RecipeDTO, error) {
	if !mealType.Valid() {
		return nil, errors.NewValidationError(fmt.Sprintf("invalid meal type: %s", mealType))
	}
	rs, err := s.recipes.ListByMealType(ctx, userID, mealType)
	if err != nil {
		return nil, errors.NewDatabaseError("list recipes by meal type", err)
	}
	return toDTOs(rs), nil
}

func (s *Service) invalidate(ctx context.Context, userID, recipeID int64) {
	if err := s.cache.Delete(ctx, cacheKey(userID, recipeID)); err != nil {
		s.logger.Warn("Failed to invalidate recipe cache",
			zap.Int64("recipe_id", recipeID),
			zap.Error(err))
	}
}

func cacheKey(userID, recipeID int64) string {
	return fmt.Sprintf("recipe:%d:%d", userID, recipeID)
}

func toDTO(r *recipe.Recipe) inbound.RecipeDTO {
	return inbound.RecipeDTO{
		ID:           r.ID(),
		MealName:     r.MealName(),
		MealType:     r.MealType().String(),
		Ingredients:  r.Ingredients(),
		Instructions: r.Instructions(),
		CreatedAt:    r.CreatedAt(),
		UpdatedAt:    r.UpdatedAt(),
	}
}

func toDTOs(rs []*recipe.Recipe) []inbound.RecipeDTO {
	dtos := make([]inbound.RecipeDTO, 0, len(rs))
	for _, r := range rs {
		dtos = append(dtos, toDTO(r))
	}
	return dtos
}
