package mealplan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSlot(t *testing.T) {
	t.Run("KnownSlots_ShouldParse", func(t *testing.T) {
		for _, name := range []string{"breakfast", "lunch", "dinner", "dessert"} {
			slot, err := ParseSlot(name)

			require.NoError(t, err)
			assert.Equal(t, name, slot.String())
		}
	})

	t.Run("UnknownSlot_ShouldError", func(t *testing.T) {
		_, err := ParseSlot("brunch")

		assert.ErrorIs(t, err, ErrInvalidSlot)
	})
}

func TestPlanSlots(t *testing.T) {
	t.Run("SetAndGet_ShouldRoundTrip", func(t *testing.T) {
		var slots PlanSlots
		v := "Pancakes (ID: 3)"

		require.NoError(t, slots.Set(SlotBreakfast, &v))

		got := slots.Get(SlotBreakfast)
		require.NotNil(t, got)
		assert.Equal(t, v, *got)
		assert.Nil(t, slots.Get(SlotLunch))
	})

	t.Run("IsEmpty_NoAssignments_ShouldBeTrue", func(t *testing.T) {
		var slots PlanSlots

		assert.True(t, slots.IsEmpty())
	})

	t.Run("CanonicalOrder_ShouldBeStable", func(t *testing.T) {
		assert.Equal(t, [4]Slot{SlotBreakfast, SlotLunch, SlotDinner, SlotDessert}, Slots())
	})
}

func TestPlan(t *testing.T) {
	t.Run("NewPlan_ShouldNormalizeDate", func(t *testing.T) {
		p := NewPlan(1, time.Date(2024, time.June, 5, 17, 30, 0, 0, time.UTC))

		assert.Equal(t, time.Date(2024, time.June, 5, 0, 0, 0, 0, time.UTC), p.Date())
		assert.True(t, p.Slots().IsEmpty())
	})

	t.Run("AssignAndClear_ShouldUpdateSlot", func(t *testing.T) {
		p := NewPlan(1, time.Now())

		require.NoError(t, p.Assign(SlotDinner, "Stew (ID: 9)"))
		require.NotNil(t, p.Slots().Dinner)
		assert.Equal(t, "Stew (ID: 9)", *p.Slots().Dinner)

		require.NoError(t, p.Clear(SlotDinner))
		assert.Nil(t, p.Slots().Dinner)
	})
}

func TestFormatReference(t *testing.T) {
	assert.Equal(t, "Chicken Salad (ID: 12)", FormatReference("Chicken Salad", 12))
}
