// Package recipe contains the core domain logic for recipe management.
package recipe

import (
	"strings"
	"time"
)

// Recipe represents a user-owned recipe. A recipe's meal name is what
// meal-plan slots reference; names are not required to be unique per
// user, and name lookups resolve to the first match.
type Recipe struct {
	id           int64
	ownerID      int64
	mealName     string
	mealType     MealType
	ingredients  []string
	instructions string
	createdAt    time.Time
	updatedAt    time.Time
}

// NewRecipe creates a new Recipe with validation. Ingredient entries are
// trimmed and blank lines dropped; the stored list is the atomic unit the
// shopping-list pipeline consumes without further parsing.
func NewRecipe(ownerID int64, mealName string, mealType MealType, ingredients []string, instructions string) (*Recipe, error) {
	mealName = strings.TrimSpace(mealName)
	if mealName == "" {
		return nil, ErrMealNameRequired
	}
	if len(mealName) > 100 {
		return nil, ErrMealNameTooLong
	}
	if !mealType.Valid() {
		return nil, ErrInvalidMealType
	}

	now := time.Now()
	return &Recipe{
		ownerID:      ownerID,
		mealName:     mealName,
		mealType:     mealType,
		ingredients:  normalizeIngredients(ingredients),
		instructions: strings.TrimSpace(instructions),
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// Reconstitute rebuilds a Recipe from persisted state.
func Reconstitute(id, ownerID int64, mealName string, mealType MealType, ingredients []string, instructions string, createdAt, updatedAt time.Time) *Recipe {
	return &Recipe{
		id:           id,
		ownerID:      ownerID,
		mealName:     mealName,
		mealType:     mealType,
		ingredients:  ingredients,
		instructions: instructions,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// ID returns the recipe's identifier.
func (r *Recipe) ID() int64 { return r.id }

// SetID assigns the database-generated identifier after insert.
func (r *Recipe) SetID(id int64) { r.id = id }

// OwnerID returns the owning user's ID.
func (r *Recipe) OwnerID() int64 { return r.ownerID }

// MealName returns the recipe's meal name.
func (r *Recipe) MealName() string { return r.mealName }

// MealType returns the recipe's meal type.
func (r *Recipe) MealType() MealType { return r.mealType }

// Ingredients returns the recipe's ingredient list. The list may be
// empty; entries are atomic strings.
func (r *Recipe) Ingredients() []string { return r.ingredients }

// Instructions returns the preparation instructions.
func (r *Recipe) Instructions() string { return r.instructions }

// CreatedAt returns when the recipe was created.
func (r *Recipe) CreatedAt() time.Time { return r.createdAt }

// UpdatedAt returns when the recipe was last updated.
func (r *Recipe) UpdatedAt() time.Time { return r.updatedAt }

// Rename updates the recipe's meal name with validation. Plan slots
// referencing the old name become dangling references; the shopping-list
// pipeline treats those as recoverable misses.
func (r *Recipe) Rename(mealName string) error {
	mealName = strings.TrimSpace(mealName)
	if mealName == "" {
		return ErrMealNameRequired
	}
	if len(mealName) > 100 {
		return ErrMealNameTooLong
	}
	r.mealName = mealName
	r.updatedAt = time.Now()
	return nil
}

// Retype updates the recipe's meal type.
func (r *Recipe) Retype(mealType MealType) error {
	if !mealType.Valid() {
		return ErrInvalidMealType
	}
	r.mealType = mealType
	r.updatedAt = time.Now()
	return nil
}

// ReplaceIngredients replaces the ingredient list.
func (r *Recipe) ReplaceIngredients(ingredients []string) {
	r.ingredients = normalizeIngredients(ingredients)
	r.updatedAt = time.Now()
}

// ReplaceInstructions replaces the preparation instructions.
func (r *Recipe) ReplaceInstructions(instructions string) {
	r.instructions = strings.TrimSpace(instructions)
	r.updatedAt = time.Now()
}

// normalizeIngredients trims entries and drops blanks, preserving order.
func normalizeIngredients(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, ing := range raw {
		if ing = strings.TrimSpace(ing); ing != "" {
			out = append(out, ing)
		}
	}
	return out
}

// ParseIngredientsText splits a newline-separated ingredients blob into
// atomic entries, trimming whitespace and dropping blank lines.
func ParseIngredientsText(text string) []string {
	return normalizeIngredients(strings.Split(text, "\n"))
}
