package mealplan

import "fmt"

// FormatReference builds the decorated meal reference stored in a plan
// slot when a recipe is assigned: "Name (ID: n)". The embedded ID is
// decorative; resolution is always by the parsed name.
func FormatReference(mealName string, recipeID int64) string {
	return fmt.Sprintf("%s (ID: %d)", mealName, recipeID)
}
