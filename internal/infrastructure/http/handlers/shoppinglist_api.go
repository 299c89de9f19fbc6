package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/platewise/v1/internal/infrastructure/http/middleware"
	"github.com/platewise/v1/internal/ports/inbound"
	"github.com/platewise/v1/pkg/errors"
)

// ShoppingListAPIHandlers handles shopping list API requests
type ShoppingListAPIHandlers struct {
	baseHandler
	shoppingListService inbound.ShoppingListService
	maxRangeDays        int
}

// NewShoppingListAPIHandlers creates a new shopping list API handlers instance
func NewShoppingListAPIHandlers(shoppingListService inbound.ShoppingListService, maxRangeDays int, logger *zap.Logger) *ShoppingListAPIHandlers {
	return &ShoppingListAPIHandlers{
		baseHandler:         newBaseHandler(logger),
		shoppingListService: shoppingListService,
		maxRangeDays:        maxRangeDays,
	}
}

// ShoppingListResponse carries the aggregated ingredient list
type ShoppingListResponse struct {
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
	Ingredients []string `json:"ingredients"`
}

// GetShoppingList handles GET /api/v1/shopping-list?start_date=...&end_date=...
// An empty aggregation result is reported as 404: there is nothing to
// shop for in that period.
func (h *ShoppingListAPIHandlers) GetShoppingList(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		h.writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	start, end, err := parseDateRange(r, h.maxRangeDays)
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	ingredients, err := h.shoppingListService.GetIngredientsForDateRange(r.Context(), userID, start, end)
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	if len(ingredients) == 0 {
		h.writeAppError(w, r, errors.NewPlanNotFoundError("no meal plan for this period"))
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data: ShoppingListResponse{
			StartDate:   start.Format("2006-01-02"),
			EndDate:     end.Format("2006-01-02"),
			Ingredients: ingredients,
		},
	})
}
