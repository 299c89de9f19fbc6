package testutils

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/platewise/v1/internal/domain/mealplan"
	"github.com/platewise/v1/internal/domain/recipe"
	"github.com/platewise/v1/internal/domain/user"
)

// TestPassword satisfies the account password policy and is shared by
// the user factories so login tests can authenticate.
const TestPassword = "Sup3rSecret!"

// UserFactory builds user entities with seeded fake data.
type UserFactory struct {
	faker  *gofakeit.Faker
	nextID int64
}

// NewUserFactory creates a user factory with a deterministic seed.
func NewUserFactory(seed int64) *UserFactory {
	return &UserFactory{faker: gofakeit.New(seed), nextID: 1}
}

// Build returns a persisted-looking user with a hashed TestPassword.
func (f *UserFactory) Build() *user.User {
	u, err := user.NewUser(f.faker.Email(), f.faker.Name(), TestPassword, 4)
	if err != nil {
		panic(fmt.Sprintf("user factory: %v", err))
	}
	u.SetID(f.nextID)
	f.nextID++
	return u
}

// RecipeFactory builds recipe entities with seeded fake data.
type RecipeFactory struct {
	faker  *gofakeit.Faker
	nextID int64
}

// NewRecipeFactory creates a recipe factory with a deterministic seed.
func NewRecipeFactory(seed int64) *RecipeFactory {
	return &RecipeFactory{faker: gofakeit.New(seed), nextID: 1}
}

// Build returns a recipe owned by ownerID with random ingredients.
func (f *RecipeFactory) Build(ownerID int64) *recipe.Recipe {
	ingredients := make([]string, 0, 4)
	for i := 0; i < 4; i++ {
		ingredients = append(ingredients, f.faker.Lunch())
	}

	r, err := recipe.NewRecipe(ownerID, f.faker.Dinner(), recipe.MealTypeDinner, ingredients, f.faker.Sentence(10))
	if err != nil {
		panic(fmt.Sprintf("recipe factory: %v", err))
	}
	r.SetID(f.nextID)
	f.nextID++
	return r
}

// BuildNamed returns a recipe with a fixed name and ingredient list.
func (f *RecipeFactory) BuildNamed(ownerID int64, mealName string, mealType recipe.MealType, ingredients []string) *recipe.Recipe {
	r, err := recipe.NewRecipe(ownerID, mealName, mealType, ingredients, f.faker.Sentence(8))
	if err != nil {
		panic(fmt.Sprintf("recipe factory: %v", err))
	}
	r.SetID(f.nextID)
	f.nextID++
	return r
}

// PlanBuilder assembles a meal plan day for tests.
type PlanBuilder struct {
	userID int64
	date   time.Time
	slots  mealplan.PlanSlots
}

// NewPlanBuilder creates a plan builder for a user and day.
func NewPlanBuilder(userID int64, date time.Time) *PlanBuilder {
	return &PlanBuilder{userID: userID, date: mealplan.NormalizeDate(date)}
}

// WithSlot assigns a raw slot value, exactly as it would be stored.
func (b *PlanBuilder) WithSlot(slot mealplan.Slot, value string) *PlanBuilder {
	v := value
	if err := b.slots.Set(slot, &v); err != nil {
		panic(fmt.Sprintf("plan builder: %v", err))
	}
	return b
}

// WithMeal assigns a decorated "Name (ID: n)" reference to a slot.
func (b *PlanBuilder) WithMeal(slot mealplan.Slot, mealName string, recipeID int64) *PlanBuilder {
	return b.WithSlot(slot, mealplan.FormatReference(mealName, recipeID))
}

// Build returns the assembled plan.
func (b *PlanBuilder) Build() *mealplan.Plan {
	now := time.Now().UTC()
	return mealplan.Reconstitute(0, b.userID, b.date, b.slots, now, now)
}
