package gorm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/platewise/v1/internal/domain/mealplan"
	"github.com/platewise/v1/internal/ports/outbound"
)

// PlanRepository implements outbound.PlanRepository using GORM.
type PlanRepository struct {
	db *gorm.DB
}

// NewPlanRepository creates a new GORM meal plan repository.
func NewPlanRepository(db *gorm.DB) outbound.PlanRepository {
	return &PlanRepository{db: db}
}

// FindByDate returns the plan row for (user, date), or (nil, nil) when
// no row exists.
func (r *PlanRepository) FindByDate(ctx context.Context, userID int64, date time.Time) (*mealplan.Plan, error) {
	var model MealPlanModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, mealplan.NormalizeDate(date)).
		First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find plan by date: %w", err)
	}
	return planToDomain(&model), nil
}

// FindByDateRange returns the stored plan rows within the inclusive
// range, ordered by date ascending.
func (r *PlanRepository) FindByDateRange(ctx context.Context, userID int64, start, end time.Time) ([]*mealplan.Plan, error) {
	var models []MealPlanModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, mealplan.NormalizeDate(start), mealplan.NormalizeDate(end)).
		Order("date ASC").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find plans by date range: %w", err)
	}

	plans := make([]*mealplan.Plan, 0, len(models))
	for i := range models {
		plans = append(plans, planToDomain(&models[i]))
	}
	return plans, nil
}

// Upsert inserts the plan row for (user, date), or updates the slot
// columns of the existing row. Rows are never deleted, so clearing the
// last slot leaves an all-null row behind.
func (r *PlanRepository) Upsert(ctx context.Context, p *mealplan.Plan) error {
	model := planToModel(p)
	model.ID = 0

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"breakfast", "lunch", "dinner", "dessert", "updated_at"}),
	}).Create(model).Error
	if err != nil {
		return fmt.Errorf("failed to upsert plan: %w", err)
	}

	p.SetID(model.ID)
	return nil
}
