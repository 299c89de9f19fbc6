// Package shoppinglist aggregates ingredients for all meals planned
// across a date range into a single deduplicated shopping list.
package shoppinglist

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/platewise/v1/internal/domain/mealplan"
	"github.com/platewise/v1/internal/ports/outbound"
	"github.com/platewise/v1/pkg/errors"
)

// Service implements inbound.ShoppingListService.
type Service struct {
	plans   outbound.PlanRepository
	recipes outbound.RecipeRepository
	logger  *zap.Logger
}

// NewService creates the shopping list service.
func NewService(plans outbound.PlanRepository, recipes outbound.RecipeRepository, logger *zap.Logger) *Service {
	return &Service{
		plans:   plans,
		recipes: recipes,
		logger:  logger,
	}
}

// GetIngredientsForDateRange walks each day in the inclusive range,
// resolves the meal planned in each slot, and unions the ingredient
// lists of every resolved meal. The result is deduplicated and sorted;
// an empty slice means nothing planned in the range had ingredients.
func (s *Service) GetIngredientsForDateRange(ctx context.Context, userID int64, start, end time.Time) ([]string, error) {
	seen := make(map[string]struct{})

	for _, day := range ExpandDateRange(start, end) {
		slots, err := s.slotsForDay(ctx, userID, day)
		if err != nil {
			return nil, err
		}

		for _, slot := range mealplan.Slots() {
			name, ok := ExtractMealName(slots.Get(slot))
			if !ok {
				continue
			}
			for _, ing := range s.ingredientsForMeal(ctx, userID, name) {
				seen[ing] = struct{}{}
			}
		}
	}

	list := make([]string, 0, len(seen))
	for ing := range seen {
		list = append(list, ing)
	}
	sort.Strings(list)
	return list, nil
}

// slotsForDay loads the plan row for one day. A day with no stored plan
// is not an error; it resolves to a plan with every slot unassigned.
func (s *Service) slotsForDay(ctx context.Context, userID int64, day time.Time) (mealplan.PlanSlots, error) {
	plan, err := s.plans.FindByDate(ctx, userID, day)
	if err != nil {
		return mealplan.PlanSlots{}, errors.NewDatabaseError("find plan by date", err)
	}
	if plan == nil {
		return mealplan.PlanSlots{}, nil
	}
	return plan.Slots(), nil
}

// ingredientsForMeal looks up a recipe by name and returns its
// ingredients. Unknown meals and lookup failures both contribute
// nothing; a stale slot reference must never sink the whole list.
func (s *Service) ingredientsForMeal(ctx context.Context, userID int64, mealName string) []string {
	ingredients, err := s.recipes.FindIngredientsByName(ctx, userID, mealName)
	if err != nil {
		s.logger.Warn("Failed to resolve ingredients for planned meal",
			zap.Int64("user_id", userID),
			zap.String("meal_name", mealName),
			zap.Error(err))
		return nil
	}
	if ingredients == nil {
		s.logger.Debug("Planned meal has no matching recipe",
			zap.Int64("user_id", userID),
			zap.String("meal_name", mealName))
		return nil
	}
	return ingredients
}
