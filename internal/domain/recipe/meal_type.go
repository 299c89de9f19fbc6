package recipe

// MealType categorizes a recipe by the meal it is intended for.
type MealType string

const (
	MealTypeBreakfast MealType = "breakfast"
	MealTypeLunch     MealType = "lunch"
	MealTypeDinner    MealType = "dinner"
	MealTypeDessert   MealType = "dessert"
)

// Valid reports whether mt is one of the four known meal types.
func (mt MealType) Valid() bool {
	switch mt {
	case MealTypeBreakfast, MealTypeLunch, MealTypeDinner, MealTypeDessert:
		return true
	}
	return false
}

// String returns the meal type as a string.
func (mt MealType) String() string { return string(mt) }
