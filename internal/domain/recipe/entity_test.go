package recipe

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// RecipeTestSuite provides a test suite for the Recipe entity
type RecipeTestSuite struct {
	suite.Suite
}

func TestRecipeTestSuite(t *testing.T) {
	suite.Run(t, new(RecipeTestSuite))
}

func (s *RecipeTestSuite) TestRecipeCreation() {
	s.Run("ValidRecipe_ShouldCreateSuccessfully", func() {
		r, err := NewRecipe(1, "Spaghetti Carbonara", MealTypeDinner, []string{"spaghetti", "eggs", "guanciale"}, "Boil pasta.")

		require.NoError(s.T(), err)
		require.NotNil(s.T(), r)
		assert.Equal(s.T(), "Spaghetti Carbonara", r.MealName())
		assert.Equal(s.T(), MealTypeDinner, r.MealType())
		assert.Equal(s.T(), []string{"spaghetti", "eggs", "guanciale"}, r.Ingredients())
		assert.NotZero(s.T(), r.CreatedAt())
	})

	s.Run("EmptyMealName_ShouldReturnError", func() {
		r, err := NewRecipe(1, "   ", MealTypeDinner, nil, "")

		assert.Nil(s.T(), r)
		assert.ErrorIs(s.T(), err, ErrMealNameRequired)
	})

	s.Run("MealNameTooLong_ShouldReturnError", func() {
		r, err := NewRecipe(1, strings.Repeat("x", 101), MealTypeLunch, nil, "")

		assert.Nil(s.T(), r)
		assert.ErrorIs(s.T(), err, ErrMealNameTooLong)
	})

	s.Run("InvalidMealType_ShouldReturnError", func() {
		r, err := NewRecipe(1, "Toast", MealType("brunch"), nil, "")

		assert.Nil(s.T(), r)
		assert.ErrorIs(s.T(), err, ErrInvalidMealType)
	})

	s.Run("BlankIngredients_ShouldBeDropped", func() {
		r, err := NewRecipe(1, "Toast", MealTypeBreakfast, []string{" bread ", "", "  ", "butter"}, "")

		require.NoError(s.T(), err)
		assert.Equal(s.T(), []string{"bread", "butter"}, r.Ingredients())
	})
}

func (s *RecipeTestSuite) TestRecipeMutation() {
	s.Run("Rename_ValidName_ShouldUpdate", func() {
		r, err := NewRecipe(1, "Old Name", MealTypeDinner, nil, "")
		require.NoError(s.T(), err)

		require.NoError(s.T(), r.Rename("New Name"))
		assert.Equal(s.T(), "New Name", r.MealName())
	})

	s.Run("Retype_InvalidType_ShouldReject", func() {
		r, err := NewRecipe(1, "Stew", MealTypeDinner, nil, "")
		require.NoError(s.T(), err)

		assert.ErrorIs(s.T(), r.Retype(MealType("supper")), ErrInvalidMealType)
		assert.Equal(s.T(), MealTypeDinner, r.MealType())
	})

	s.Run("ReplaceIngredients_ShouldNormalize", func() {
		r, err := NewRecipe(1, "Stew", MealTypeDinner, []string{"beef"}, "")
		require.NoError(s.T(), err)

		r.ReplaceIngredients([]string{"  carrots", "", "onions  "})
		assert.Equal(s.T(), []string{"carrots", "onions"}, r.Ingredients())
	})
}

func TestParseIngredientsText(t *testing.T) {
	t.Run("MultilineBlob_ShouldSplitAndTrim", func(t *testing.T) {
		got := ParseIngredientsText("2 eggs\n  1 cup flour \n\n500ml milk\n")

		assert.Equal(t, []string{"2 eggs", "1 cup flour", "500ml milk"}, got)
	})

	t.Run("EmptyBlob_ShouldReturnNothing", func(t *testing.T) {
		assert.Empty(t, ParseIngredientsText("  \n \n"))
	})
}
