package inbound

import (
	"context"
	"time"
)

// PlanService defines the meal plan use cases.
type PlanService interface {
	// GetPlansForRange returns one entry per calendar day in the inclusive
	// range. Days without a stored plan appear with all slots empty.
	GetPlansForRange(ctx context.Context, userID int64, start, end time.Time) ([]PlanDTO, error)

	// GetPlanForDate returns a single day's plan, with all slots empty when
	// no plan is stored.
	GetPlanForDate(ctx context.Context, userID int64, date time.Time) (*PlanDTO, error)

	// ChooseMeal assigns a recipe to a slot on a given day, recording the
	// decorated "Name (ID: n)" reference.
	ChooseMeal(ctx context.Context, cmd ChooseMealCommand) (*PlanDTO, error)

	// ClearMeal removes the assignment from a slot on a given day.
	ClearMeal(ctx context.Context, cmd ClearMealCommand) (*PlanDTO, error)
}

// ChooseMealCommand assigns a recipe to a plan slot.
type ChooseMealCommand struct {
	UserID   int64
	Date     time.Time
	Slot     string
	RecipeID int64
}

// ClearMealCommand empties a plan slot.
type ClearMealCommand struct {
	UserID int64
	Date   time.Time
	Slot   string
}

// PlanDTO represents one day's plan as returned to the HTTP layer.
// Slot values carry the stored meal references verbatim; nil means the
// slot is unassigned.
type PlanDTO struct {
	Date      string  `json:"date"`
	Breakfast *string `json:"breakfast"`
	Lunch     *string `json:"lunch"`
	Dinner    *string `json:"dinner"`
	Dessert   *string `json:"dessert"`
}
