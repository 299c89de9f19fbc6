package sqlite

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/platewise/v1/internal/domain/mealplan"
	"github.com/platewise/v1/internal/domain/recipe"
	"github.com/platewise/v1/internal/domain/user"
	gormrepo "github.com/platewise/v1/internal/infrastructure/persistence/gorm"
)

// DemoEmail and DemoPassword are the credentials of the seeded account.
const (
	DemoEmail    = "demo@platewise.dev"
	DemoPassword = "Demo1234!"
)

// Seed populates an empty development database with a demo account, a
// few recipes and today's dinner. It is a no-op when any user exists.
func Seed(db *gorm.DB, log *zap.Logger) error {
	ctx := context.Background()
	users := gormrepo.NewUserRepository(db)

	taken, err := users.Exists(ctx, DemoEmail)
	if err != nil {
		return fmt.Errorf("failed to check demo account: %w", err)
	}
	if taken {
		return nil
	}

	u, err := user.NewUser(DemoEmail, "Demo Cook", DemoPassword, 10)
	if err != nil {
		return fmt.Errorf("failed to build demo user: %w", err)
	}
	if err := users.Create(ctx, u); err != nil {
		return err
	}

	recipes := gormrepo.NewRecipeRepository(db)
	samples := []struct {
		name        string
		mealType    recipe.MealType
		ingredients []string
	}{
		{"Overnight Oats", recipe.MealTypeBreakfast, []string{"rolled oats", "milk", "honey"}},
		{"Greek Salad", recipe.MealTypeLunch, []string{"tomatoes", "cucumber", "feta", "olives"}},
		{"Beef Stew", recipe.MealTypeDinner, []string{"beef", "carrots", "potatoes", "onion"}},
	}

	var dinner *recipe.Recipe
	for _, sample := range samples {
		r, err := recipe.NewRecipe(u.ID(), sample.name, sample.mealType, sample.ingredients, "")
		if err != nil {
			return fmt.Errorf("failed to build demo recipe: %w", err)
		}
		if err := recipes.Create(ctx, r); err != nil {
			return err
		}
		if sample.mealType == recipe.MealTypeDinner {
			dinner = r
		}
	}

	plans := gormrepo.NewPlanRepository(db)
	p := mealplan.NewPlan(u.ID(), time.Now().UTC())
	if err := p.Assign(mealplan.SlotDinner, mealplan.FormatReference(dinner.MealName(), dinner.ID())); err != nil {
		return err
	}
	if err := plans.Upsert(ctx, p); err != nil {
		return err
	}

	log.Info("Seeded demo data", zap.String("email", DemoEmail))
	return nil
}
