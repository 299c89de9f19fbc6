// Package plan implements the meal plan use cases.
package plan

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/platewise/v1/internal/domain/mealplan"
	"github.com/platewise/v1/internal/ports/inbound"
	"github.com/platewise/v1/internal/ports/outbound"
	"github.com/platewise/v1/pkg/errors"
)

// Service implements inbound.PlanService.
type Service struct {
	plans   outbound.PlanRepository
	recipes outbound.RecipeRepository
	logger  *zap.Logger
}

// NewService creates the plan service.
func NewService(plans outbound.PlanRepository, recipes outbound.RecipeRepository, logger *zap.Logger) *Service {
	return &Service{
		plans:   plans,
		recipes: recipes,
		logger:  logger,
	}
}

// GetPlansForRange returns one DTO per day in the inclusive range. Days
// without a stored row are synthesized with every slot unassigned, so
// callers always receive a dense sequence.
func (s *Service) GetPlansForRange(ctx context.Context, userID int64, start, end time.Time) ([]inbound.PlanDTO, error) {
	start = mealplan.NormalizeDate(start)
	end = mealplan.NormalizeDate(end)
	if start.After(end) {
		return []inbound.PlanDTO{}, nil
	}

	stored, err := s.plans.FindByDateRange(ctx, userID, start, end)
	if err != nil {
		return nil, errors.NewDatabaseError("find plans by date range", err)
	}

	byDate := make(map[string]*mealplan.Plan, len(stored))
	for _, p := range stored {
		byDate[p.Date().Format(time.DateOnly)] = p
	}

	dtos := make([]inbound.PlanDTO, 0, int(end.Sub(start).Hours()/24)+1)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		key := d.Format(time.DateOnly)
		if p, ok := byDate[key]; ok {
			dtos = append(dtos, toDTO(p))
			continue
		}
		dtos = append(dtos, inbound.PlanDTO{Date: key})
	}
	return dtos, nil
}

// GetPlanForDate returns the plan for one day. A missing row is
// rendered as a DTO with every slot unassigned.
func (s *Service) GetPlanForDate(ctx context.Context, userID int64, date time.Time) (*inbound.PlanDTO, error) {
	date = mealplan.NormalizeDate(date)
	p, err := s.plans.FindByDate(ctx, userID, date)
	if err != nil {
		return nil, errors.NewDatabaseError("find plan by date", err)
	}
	if p == nil {
		return &inbound.PlanDTO{Date: date.Format(time.DateOnly)}, nil
	}
	dto := toDTO(p)
	return &dto, nil
}

// ChooseMeal assigns a recipe to a slot, storing the decorated
// "Name (ID: n)" reference. The embedded ID is informational; lookups
// during aggregation always go by name.
func (s *Service) ChooseMeal(ctx context.Context, cmd inbound.ChooseMealCommand) (*inbound.PlanDTO, error) {
	slot, err := mealplan.ParseSlot(cmd.Slot)
	if err != nil {
		return nil, errors.NewInvalidMealSlotError(cmd.Slot)
	}

	r, err := s.recipes.FindByID(ctx, cmd.UserID, cmd.RecipeID)
	if err != nil {
		return nil, errors.NewDatabaseError("find recipe by id", err)
	}
	if r == nil {
		return nil, errors.NewRecipeNotFoundError(cmd.RecipeID)
	}

	p, err := s.loadOrCreate(ctx, cmd.UserID, cmd.Date)
	if err != nil {
		return nil, err
	}

	if err := p.Assign(slot, mealplan.FormatReference(r.MealName(), r.ID())); err != nil {
		return nil, errors.NewInvalidMealSlotError(cmd.Slot)
	}

	if err := s.plans.Upsert(ctx, p); err != nil {
		return nil, errors.NewDatabaseError("upsert plan", err)
	}

	s.logger.Info("Meal assigned to plan slot",
		zap.Int64("user_id", cmd.UserID),
		zap.String("date", p.Date().Format(time.DateOnly)),
		zap.String("slot", slot.String()),
		zap.Int64("recipe_id", r.ID()))

	dto := toDTO(p)
	return &dto, nil
}

// ClearMeal removes the assignment from a slot. Clearing an unassigned
// slot on a missing row is a no-op that still succeeds.
func (s *Service) ClearMeal(ctx context.Context, cmd inbound.ClearMealCommand) (*inbound.PlanDTO, error) {
	slot, err := mealplan.ParseSlot(cmd.Slot)
	if err != nil {
		return nil, errors.NewInvalidMealSlotError(cmd.Slot)
	}

	p, err := s.loadOrCreate(ctx, cmd.UserID, cmd.Date)
	if err != nil {
		return nil, err
	}

	if err := p.Clear(slot); err != nil {
		return nil, errors.NewInvalidMealSlotError(cmd.Slot)
	}

	if err := s.plans.Upsert(ctx, p); err != nil {
		return nil, errors.NewDatabaseError("upsert plan", err)
	}

	dto := toDTO(p)
	return &dto, nil
}

func (s *Service) loadOrCreate(ctx context.Context, userID int64, date time.Time) (*mealplan.Plan, error) {
	date = mealplan.NormalizeDate(date)
	p, err := s.plans.FindByDate(ctx, userID, date)
	if err != nil {
		return nil, errors.NewDatabaseError("find plan by date", err)
	}
	if p == nil {
		p = mealplan.NewPlan(userID, date)
	}
	return p, nil
}

func toDTO(p *mealplan.Plan) inbound.PlanDTO {
	slots := p.Slots()
	return inbound.PlanDTO{
		Date:      p.Date().Format(time.DateOnly),
		Breakfast: slots.Breakfast,
		Lunch:     slots.Lunch,
		Dinner:    slots.Dinner,
		Dessert:   slots.Dessert,
	}
}
