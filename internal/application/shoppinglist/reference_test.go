package shoppinglist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestExtractMealName(t *testing.T) {
	t.Run("NilValue_ShouldReportNoMeal", func(t *testing.T) {
		name, ok := ExtractMealName(nil)

		assert.False(t, ok)
		assert.Empty(t, name)
	})

	t.Run("BlankValue_ShouldReportNoMeal", func(t *testing.T) {
		for _, v := range []string{"", "   ", "\t"} {
			name, ok := ExtractMealName(strPtr(v))

			assert.False(t, ok, "value %q", v)
			assert.Empty(t, name)
		}
	})

	t.Run("LegacySentinels_ShouldReportNoMeal", func(t *testing.T) {
		for _, v := range []string{"None", "null"} {
			name, ok := ExtractMealName(strPtr(v))

			assert.False(t, ok, "value %q", v)
			assert.Empty(t, name)
		}
	})

	t.Run("DecoratedReference_ShouldStripIDSuffix", func(t *testing.T) {
		name, ok := ExtractMealName(strPtr("Spaghetti Bolognese (ID: 42)"))

		assert.True(t, ok)
		assert.Equal(t, "Spaghetti Bolognese", name)
	})

	t.Run("DecoratedReferenceExtraSpaces_ShouldTrim", func(t *testing.T) {
		name, ok := ExtractMealName(strPtr("  Pancakes   (ID: 7)  "))

		assert.True(t, ok)
		assert.Equal(t, "Pancakes", name)
	})

	t.Run("PlainName_ShouldReturnVerbatim", func(t *testing.T) {
		name, ok := ExtractMealName(strPtr("Chicken Salad - Lunch"))

		assert.True(t, ok)
		assert.Equal(t, "Chicken Salad - Lunch", name)
	})

	t.Run("NameWithOtherParentheses_ShouldReturnVerbatim", func(t *testing.T) {
		name, ok := ExtractMealName(strPtr("Soup (vegan)"))

		assert.True(t, ok)
		assert.Equal(t, "Soup (vegan)", name)
	})

	t.Run("MarkerOnly_ShouldReportNoMeal", func(t *testing.T) {
		name, ok := ExtractMealName(strPtr("(ID: 9)"))

		assert.False(t, ok)
		assert.Empty(t, name)
	})
}
