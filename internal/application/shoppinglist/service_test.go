package shoppinglist

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/platewise/v1/internal/domain/mealplan"
	"github.com/platewise/v1/test/testutils"
)

type ShoppingListServiceTestSuite struct {
	suite.Suite
	plans   *testutils.MockPlanRepository
	recipes *testutils.MockRecipeRepository
	service *Service
	ctx     context.Context
}

func (s *ShoppingListServiceTestSuite) SetupTest() {
	s.plans = new(testutils.MockPlanRepository)
	s.recipes = new(testutils.MockRecipeRepository)
	s.service = NewService(s.plans, s.recipes, zap.NewNop())
	s.ctx = context.Background()
}

func TestShoppingListServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ShoppingListServiceTestSuite))
}

const userID int64 = 7

func (s *ShoppingListServiceTestSuite) TestGetIngredients_NoPlans_ShouldReturnEmptyList() {
	start := day(2024, time.March, 1)
	end := day(2024, time.March, 3)
	s.plans.On("FindByDate", s.ctx, userID, mock.AnythingOfType("time.Time")).Return(nil, nil).Times(3)

	list, err := s.service.GetIngredientsForDateRange(s.ctx, userID, start, end)

	s.Require().NoError(err)
	s.Empty(list)
	s.plans.AssertExpectations(s.T())
}

func (s *ShoppingListServiceTestSuite) TestGetIngredients_StartAfterEnd_ShouldReturnEmptyWithoutLookups() {
	list, err := s.service.GetIngredientsForDateRange(s.ctx, userID, day(2024, time.March, 5), day(2024, time.March, 1))

	s.Require().NoError(err)
	s.Empty(list)
	s.plans.AssertNotCalled(s.T(), "FindByDate")
}

func (s *ShoppingListServiceTestSuite) TestGetIngredients_SingleDay_ShouldUnionAllSlots() {
	date := day(2024, time.March, 10)
	plan := testutils.NewPlanBuilder(userID, date).
		WithMeal(mealplan.SlotBreakfast, "Pancakes", 1).
		WithMeal(mealplan.SlotDinner, "Stir Fry", 2).
		Build()

	s.plans.On("FindByDate", s.ctx, userID, date).Return(plan, nil)
	s.recipes.On("FindIngredientsByName", s.ctx, userID, "Pancakes").Return([]string{"flour", "eggs", "milk"}, nil)
	s.recipes.On("FindIngredientsByName", s.ctx, userID, "Stir Fry").Return([]string{"rice", "eggs", "soy sauce"}, nil)

	list, err := s.service.GetIngredientsForDateRange(s.ctx, userID, date, date)

	s.Require().NoError(err)
	s.Equal([]string{"eggs", "flour", "milk", "rice", "soy sauce"}, list)
}

func (s *ShoppingListServiceTestSuite) TestGetIngredients_RepeatedMealAcrossDays_ShouldDeduplicate() {
	d1 := day(2024, time.March, 10)
	d2 := day(2024, time.March, 11)
	p1 := testutils.NewPlanBuilder(userID, d1).WithMeal(mealplan.SlotLunch, "Pancakes", 1).Build()
	p2 := testutils.NewPlanBuilder(userID, d2).WithMeal(mealplan.SlotBreakfast, "Pancakes", 1).Build()

	s.plans.On("FindByDate", s.ctx, userID, d1).Return(p1, nil)
	s.plans.On("FindByDate", s.ctx, userID, d2).Return(p2, nil)
	s.recipes.On("FindIngredientsByName", s.ctx, userID, "Pancakes").Return([]string{"flour", "eggs"}, nil).Times(2)

	list, err := s.service.GetIngredientsForDateRange(s.ctx, userID, d1, d2)

	s.Require().NoError(err)
	s.Equal([]string{"eggs", "flour"}, list)
}

func (s *ShoppingListServiceTestSuite) TestGetIngredients_PlainSlotValue_ShouldResolveVerbatim() {
	date := day(2024, time.March, 12)
	plan := testutils.NewPlanBuilder(userID, date).
		WithSlot(mealplan.SlotLunch, "Chicken Salad - Lunch").
		Build()

	s.plans.On("FindByDate", s.ctx, userID, date).Return(plan, nil)
	s.recipes.On("FindIngredientsByName", s.ctx, userID, "Chicken Salad - Lunch").Return([]string{"chicken", "lettuce"}, nil)

	list, err := s.service.GetIngredientsForDateRange(s.ctx, userID, date, date)

	s.Require().NoError(err)
	s.Equal([]string{"chicken", "lettuce"}, list)
}

func (s *ShoppingListServiceTestSuite) TestGetIngredients_LegacySentinelSlots_ShouldBeSkipped() {
	date := day(2024, time.March, 13)
	plan := testutils.NewPlanBuilder(userID, date).
		WithSlot(mealplan.SlotBreakfast, "None").
		WithSlot(mealplan.SlotLunch, "null").
		WithSlot(mealplan.SlotDinner, "  ").
		Build()

	s.plans.On("FindByDate", s.ctx, userID, date).Return(plan, nil)

	list, err := s.service.GetIngredientsForDateRange(s.ctx, userID, date, date)

	s.Require().NoError(err)
	s.Empty(list)
	s.recipes.AssertNotCalled(s.T(), "FindIngredientsByName")
}

func (s *ShoppingListServiceTestSuite) TestGetIngredients_UnknownMeal_ShouldContributeNothing() {
	date := day(2024, time.March, 14)
	plan := testutils.NewPlanBuilder(userID, date).
		WithMeal(mealplan.SlotBreakfast, "Deleted Recipe", 99).
		WithMeal(mealplan.SlotDinner, "Stir Fry", 2).
		Build()

	s.plans.On("FindByDate", s.ctx, userID, date).Return(plan, nil)
	s.recipes.On("FindIngredientsByName", s.ctx, userID, "Deleted Recipe").Return(nil, nil)
	s.recipes.On("FindIngredientsByName", s.ctx, userID, "Stir Fry").Return([]string{"rice"}, nil)

	list, err := s.service.GetIngredientsForDateRange(s.ctx, userID, date, date)

	s.Require().NoError(err)
	s.Equal([]string{"rice"}, list)
}

func (s *ShoppingListServiceTestSuite) TestGetIngredients_RecipeLookupFailure_ShouldSkipMealNotFail() {
	date := day(2024, time.March, 15)
	plan := testutils.NewPlanBuilder(userID, date).
		WithMeal(mealplan.SlotLunch, "Flaky Lookup", 3).
		WithMeal(mealplan.SlotDinner, "Stir Fry", 2).
		Build()

	s.plans.On("FindByDate", s.ctx, userID, date).Return(plan, nil)
	s.recipes.On("FindIngredientsByName", s.ctx, userID, "Flaky Lookup").Return(nil, errors.New("connection reset"))
	s.recipes.On("FindIngredientsByName", s.ctx, userID, "Stir Fry").Return([]string{"rice", "broccoli"}, nil)

	list, err := s.service.GetIngredientsForDateRange(s.ctx, userID, date, date)

	s.Require().NoError(err)
	s.Equal([]string{"broccoli", "rice"}, list)
}

func (s *ShoppingListServiceTestSuite) TestGetIngredients_PlanLookupFailure_ShouldPropagate() {
	date := day(2024, time.March, 16)
	s.plans.On("FindByDate", s.ctx, userID, date).Return(nil, errors.New("database down"))

	list, err := s.service.GetIngredientsForDateRange(s.ctx, userID, date, date)

	s.Require().Error(err)
	s.Nil(list)
	s.recipes.AssertNotCalled(s.T(), "FindIngredientsByName")
}

func (s *ShoppingListServiceTestSuite) TestGetIngredients_ZeroIngredientRecipe_ShouldContributeNothing() {
	date := day(2024, time.March, 17)
	plan := testutils.NewPlanBuilder(userID, date).
		WithMeal(mealplan.SlotBreakfast, "Water Fast", 5).
		Build()

	s.plans.On("FindByDate", s.ctx, userID, date).Return(plan, nil)
	s.recipes.On("FindIngredientsByName", s.ctx, userID, "Water Fast").Return([]string{}, nil)

	list, err := s.service.GetIngredientsForDateRange(s.ctx, userID, date, date)

	s.Require().NoError(err)
	s.Empty(list)
}

func (s *ShoppingListServiceTestSuite) TestGetIngredients_RepeatedCalls_ShouldBeDeterministic() {
	date := day(2024, time.March, 18)
	plan := testutils.NewPlanBuilder(userID, date).
		WithMeal(mealplan.SlotDinner, "Stew", 4).
		Build()

	s.plans.On("FindByDate", s.ctx, userID, date).Return(plan, nil)
	s.recipes.On("FindIngredientsByName", s.ctx, userID, "Stew").Return([]string{"carrots", "beef", "onions"}, nil)

	first, err := s.service.GetIngredientsForDateRange(s.ctx, userID, date, date)
	s.Require().NoError(err)
	second, err := s.service.GetIngredientsForDateRange(s.ctx, userID, date, date)
	s.Require().NoError(err)

	s.Equal(first, second)
	s.Equal([]string{"beef", "carrots", "onions"}, first)
}
