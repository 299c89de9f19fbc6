package gorm

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	sqlitedriver "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/platewise/v1/internal/domain/mealplan"
	"github.com/platewise/v1/internal/domain/recipe"
	"github.com/platewise/v1/internal/domain/user"
	"github.com/platewise/v1/internal/ports/outbound"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlitedriver.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

type UserRepositoryTestSuite struct {
	suite.Suite
	repo outbound.UserRepository
	ctx  context.Context
}

func (s *UserRepositoryTestSuite) SetupTest() {
	s.repo = NewUserRepository(newTestDB(s.T()))
	s.ctx = context.Background()
}

func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}

func (s *UserRepositoryTestSuite) newUser(email string) *user.User {
	u, err := user.NewUser(email, "Alex", "Sup3rSecret!", 4)
	s.Require().NoError(err)
	return u
}

func (s *UserRepositoryTestSuite) TestCreate_ShouldBackfillID() {
	u := s.newUser("alex@example.com")

	s.Require().NoError(s.repo.Create(s.ctx, u))

	s.Positive(u.ID())
}

func (s *UserRepositoryTestSuite) TestFindByEmail_RoundTrip() {
	u := s.newUser("alex@example.com")
	s.Require().NoError(s.repo.Create(s.ctx, u))

	found, err := s.repo.FindByEmail(s.ctx, "alex@example.com")

	s.Require().NoError(err)
	s.Require().NotNil(found)
	s.Equal(u.ID(), found.ID())
	s.Equal("Alex", found.Name())
	s.True(found.IsActive())
}

func (s *UserRepositoryTestSuite) TestFindByEmail_Missing_ShouldReturnNilNil() {
	found, err := s.repo.FindByEmail(s.ctx, "ghost@example.com")

	s.Require().NoError(err)
	s.Nil(found)
}

func (s *UserRepositoryTestSuite) TestExists() {
	s.Require().NoError(s.repo.Create(s.ctx, s.newUser("alex@example.com")))

	taken, err := s.repo.Exists(s.ctx, "alex@example.com")
	s.Require().NoError(err)
	s.True(taken)

	free, err := s.repo.Exists(s.ctx, "other@example.com")
	s.Require().NoError(err)
	s.False(free)
}

func (s *UserRepositoryTestSuite) TestUpdate_ShouldPersistLoginTime() {
	u := s.newUser("alex@example.com")
	s.Require().NoError(s.repo.Create(s.ctx, u))

	u.RecordLogin()
	s.Require().NoError(s.repo.Update(s.ctx, u))

	found, err := s.repo.FindByID(s.ctx, u.ID())
	s.Require().NoError(err)
	s.Require().NotNil(found)
	s.NotNil(found.LastLoginAt())
}

func (s *UserRepositoryTestSuite) TestUpdate_Missing_ShouldFail() {
	u := s.newUser("alex@example.com")
	u.SetID(999)

	s.Error(s.repo.Update(s.ctx, u))
}

type RecipeRepositoryTestSuite struct {
	suite.Suite
	repo outbound.RecipeRepository
	ctx  context.Context
}

func (s *RecipeRepositoryTestSuite) SetupTest() {
	s.repo = NewRecipeRepository(newTestDB(s.T()))
	s.ctx = context.Background()
}

func TestRecipeRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RecipeRepositoryTestSuite))
}

const testOwnerID int64 = 1

func (s *RecipeRepositoryTestSuite) create(ownerID int64, name string, ingredients []string) *recipe.Recipe {
	r, err := recipe.NewRecipe(ownerID, name, recipe.MealTypeDinner, ingredients, "Cook it.")
	s.Require().NoError(err)
	s.Require().NoError(s.repo.Create(s.ctx, r))
	return r
}

func (s *RecipeRepositoryTestSuite) TestCreateAndFindByID_RoundTrip() {
	r := s.create(testOwnerID, "Stew", []string{"beef", "carrots"})

	found, err := s.repo.FindByID(s.ctx, testOwnerID, r.ID())

	s.Require().NoError(err)
	s.Require().NotNil(found)
	s.Equal("Stew", found.MealName())
	s.Equal([]string{"beef", "carrots"}, found.Ingredients())
}

func (s *RecipeRepositoryTestSuite) TestFindByID_OtherOwner_ShouldReturnNilNil() {
	r := s.create(testOwnerID, "Stew", []string{"beef"})

	found, err := s.repo.FindByID(s.ctx, testOwnerID+1, r.ID())

	s.Require().NoError(err)
	s.Nil(found)
}

func (s *RecipeRepositoryTestSuite) TestFindByName_DuplicateNames_ShouldReturnLowestID() {
	first := s.create(testOwnerID, "Stew", []string{"beef"})
	s.create(testOwnerID, "Stew", []string{"lamb"})

	found, err := s.repo.FindByName(s.ctx, testOwnerID, "Stew")

	s.Require().NoError(err)
	s.Require().NotNil(found)
	s.Equal(first.ID(), found.ID())
	s.Equal([]string{"beef"}, found.Ingredients())
}

func (s *RecipeRepositoryTestSuite) TestFindIngredientsByName_Missing_ShouldReturnNil() {
	ingredients, err := s.repo.FindIngredientsByName(s.ctx, testOwnerID, "Ghost Meal")

	s.Require().NoError(err)
	s.Nil(ingredients)
}

func (s *RecipeRepositoryTestSuite) TestFindIngredientsByName_Found() {
	s.create(testOwnerID, "Stew", []string{"beef", "carrots"})

	ingredients, err := s.repo.FindIngredientsByName(s.ctx, testOwnerID, "Stew")

	s.Require().NoError(err)
	s.Equal([]string{"beef", "carrots"}, ingredients)
}

func (s *RecipeRepositoryTestSuite) TestDelete_Missing_ShouldFail() {
	s.Error(s.repo.Delete(s.ctx, testOwnerID, 999))
}

func (s *RecipeRepositoryTestSuite) TestDelete_ShouldRemoveRow() {
	r := s.create(testOwnerID, "Stew", []string{"beef"})

	s.Require().NoError(s.repo.Delete(s.ctx, testOwnerID, r.ID()))

	found, err := s.repo.FindByID(s.ctx, testOwnerID, r.ID())
	s.Require().NoError(err)
	s.Nil(found)
}

func (s *RecipeRepositoryTestSuite) TestListByMealType_ShouldFilter() {
	s.create(testOwnerID, "Stew", []string{"beef"})
	breakfast, err := recipe.NewRecipe(testOwnerID, "Pancakes", recipe.MealTypeBreakfast, []string{"flour"}, "")
	s.Require().NoError(err)
	s.Require().NoError(s.repo.Create(s.ctx, breakfast))

	rs, err := s.repo.ListByMealType(s.ctx, testOwnerID, recipe.MealTypeBreakfast)

	s.Require().NoError(err)
	s.Require().Len(rs, 1)
	s.Equal("Pancakes", rs[0].MealName())
}

func (s *RecipeRepositoryTestSuite) TestListByOwner_OrdersByNameCaseInsensitive() {
	s.create(testOwnerID, "beef stew", []string{"beef"})
	s.create(testOwnerID, "Apple Pie", []string{"apples"})
	s.create(testOwnerID, "Zucchini Soup", []string{"zucchini"})

	rs, err := s.repo.ListByOwner(s.ctx, testOwnerID)

	s.Require().NoError(err)
	s.Require().Len(rs, 3)
	s.Equal("Apple Pie", rs[0].MealName())
	s.Equal("beef stew", rs[1].MealName())
	s.Equal("Zucchini Soup", rs[2].MealName())
}

type PlanRepositoryTestSuite struct {
	suite.Suite
	repo outbound.PlanRepository
	ctx  context.Context
}

func (s *PlanRepositoryTestSuite) SetupTest() {
	s.repo = NewPlanRepository(newTestDB(s.T()))
	s.ctx = context.Background()
}

func TestPlanRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(PlanRepositoryTestSuite))
}

const testPlanUserID int64 = 2

func planDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (s *PlanRepositoryTestSuite) upsert(date time.Time, slot mealplan.Slot, value string) *mealplan.Plan {
	p := mealplan.NewPlan(testPlanUserID, date)
	s.Require().NoError(p.Assign(slot, value))
	s.Require().NoError(s.repo.Upsert(s.ctx, p))
	return p
}

func (s *PlanRepositoryTestSuite) TestFindByDate_Missing_ShouldReturnNilNil() {
	found, err := s.repo.FindByDate(s.ctx, testPlanUserID, planDate(2026, time.March, 1))

	s.Require().NoError(err)
	s.Nil(found)
}

func (s *PlanRepositoryTestSuite) TestUpsert_Insert_ThenFindByDate() {
	date := planDate(2026, time.March, 1)
	s.upsert(date, mealplan.SlotDinner, "Stew (ID: 4)")

	noon := time.Date(2026, time.March, 1, 12, 30, 0, 0, time.UTC)
	found, err := s.repo.FindByDate(s.ctx, testPlanUserID, noon)

	s.Require().NoError(err)
	s.Require().NotNil(found)
	dinner := found.Slots().Get(mealplan.SlotDinner)
	s.Require().NotNil(dinner)
	s.Equal("Stew (ID: 4)", *dinner)
}

func (s *PlanRepositoryTestSuite) TestUpsert_Conflict_ShouldUpdateSlots() {
	date := planDate(2026, time.March, 1)
	s.upsert(date, mealplan.SlotDinner, "Stew (ID: 4)")

	p := mealplan.NewPlan(testPlanUserID, date)
	s.Require().NoError(p.Assign(mealplan.SlotDinner, "Tacos (ID: 9)"))
	s.Require().NoError(s.repo.Upsert(s.ctx, p))

	found, err := s.repo.FindByDate(s.ctx, testPlanUserID, date)
	s.Require().NoError(err)
	s.Require().NotNil(found)
	dinner := found.Slots().Get(mealplan.SlotDinner)
	s.Require().NotNil(dinner)
	s.Equal("Tacos (ID: 9)", *dinner)

	plans, err := s.repo.FindByDateRange(s.ctx, testPlanUserID, date, date)
	s.Require().NoError(err)
	s.Len(plans, 1)
}

func (s *PlanRepositoryTestSuite) TestFindByDateRange_OrdersByDateAscending() {
	s.upsert(planDate(2026, time.March, 3), mealplan.SlotLunch, "Salad (ID: 2)")
	s.upsert(planDate(2026, time.March, 1), mealplan.SlotBreakfast, "Pancakes (ID: 1)")
	s.upsert(planDate(2026, time.March, 10), mealplan.SlotDinner, "Stew (ID: 4)")

	plans, err := s.repo.FindByDateRange(s.ctx, testPlanUserID,
		planDate(2026, time.March, 1), planDate(2026, time.March, 5))

	s.Require().NoError(err)
	s.Require().Len(plans, 2)
	s.Equal(planDate(2026, time.March, 1), plans[0].Date())
	s.Equal(planDate(2026, time.March, 3), plans[1].Date())
}

func (s *PlanRepositoryTestSuite) TestFindByDateRange_ScopedToUser() {
	s.upsert(planDate(2026, time.March, 1), mealplan.SlotDinner, "Stew (ID: 4)")

	other := mealplan.NewPlan(testPlanUserID+1, planDate(2026, time.March, 1))
	s.Require().NoError(other.Assign(mealplan.SlotDinner, "Tacos (ID: 9)"))
	s.Require().NoError(s.repo.Upsert(s.ctx, other))

	plans, err := s.repo.FindByDateRange(s.ctx, testPlanUserID,
		planDate(2026, time.March, 1), planDate(2026, time.March, 1))

	s.Require().NoError(err)
	s.Require().Len(plans, 1)
	s.Equal(testPlanUserID, plans[0].UserID())
}
