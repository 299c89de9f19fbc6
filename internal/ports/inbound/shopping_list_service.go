package inbound

import (
	"context"
	"time"
)

// ShoppingListService aggregates ingredients across a date range.
type ShoppingListService interface {
	// GetIngredientsForDateRange walks every day in the inclusive range,
	// resolves the meals planned for each slot, and returns the union of
	// their ingredient lists with duplicates removed, sorted ascending.
	// The empty result is valid and means no planned meal contributed
	// any ingredients.
	GetIngredientsForDateRange(ctx context.Context, userID int64, start, end time.Time) ([]string, error)
}
