package gorm

import (
	"github.com/platewise/v1/internal/domain/mealplan"
	"github.com/platewise/v1/internal/domain/recipe"
	"github.com/platewise/v1/internal/domain/user"
)

func userToModel(u *user.User) *UserModel {
	return &UserModel{
		ID:           u.ID(),
		Email:        u.Email(),
		Name:         u.Name(),
		PasswordHash: u.PasswordHash(),
		IsActive:     u.IsActive(),
		CreatedAt:    u.CreatedAt(),
		LastLoginAt:  u.LastLoginAt(),
	}
}

func userToDomain(m *UserModel) *user.User {
	return user.Reconstitute(m.ID, m.Email, m.Name, m.PasswordHash, m.IsActive, m.CreatedAt, m.LastLoginAt)
}

func recipeToModel(r *recipe.Recipe) *RecipeModel {
	return &RecipeModel{
		ID:           r.ID(),
		UserID:       r.OwnerID(),
		MealName:     r.MealName(),
		MealType:     r.MealType().String(),
		Ingredients:  StringSlice(r.Ingredients()),
		Instructions: r.Instructions(),
		CreatedAt:    r.CreatedAt(),
		UpdatedAt:    r.UpdatedAt(),
	}
}

func recipeToDomain(m *RecipeModel) *recipe.Recipe {
	return recipe.Reconstitute(
		m.ID,
		m.UserID,
		m.MealName,
		recipe.MealType(m.MealType),
		[]string(m.Ingredients),
		m.Instructions,
		m.CreatedAt,
		m.UpdatedAt,
	)
}

func planToModel(p *mealplan.Plan) *MealPlanModel {
	slots := p.Slots()
	return &MealPlanModel{
		ID:        p.ID(),
		UserID:    p.UserID(),
		Date:      p.Date(),
		Breakfast: slots.Breakfast,
		Lunch:     slots.Lunch,
		Dinner:    slots.Dinner,
		Dessert:   slots.Dessert,
		CreatedAt: p.CreatedAt(),
		UpdatedAt: p.UpdatedAt(),
	}
}

func planToDomain(m *MealPlanModel) *mealplan.Plan {
	slots := mealplan.PlanSlots{
		Breakfast: m.Breakfast,
		Lunch:     m.Lunch,
		Dinner:    m.Dinner,
		Dessert:   m.Dessert,
	}
	return mealplan.Reconstitute(m.ID, m.UserID, mealplan.NormalizeDate(m.Date), slots, m.CreatedAt, m.UpdatedAt)
}
