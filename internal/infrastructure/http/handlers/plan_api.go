package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/platewise/v1/internal/infrastructure/http/middleware"
	"github.com/platewise/v1/internal/ports/inbound"
	"github.com/platewise/v1/pkg/errors"
)

// PlanAPIHandlers handles meal plan API requests
type PlanAPIHandlers struct {
	baseHandler
	planService  inbound.PlanService
	maxRangeDays int
}

// NewPlanAPIHandlers creates a new plan API handlers instance
func NewPlanAPIHandlers(planService inbound.PlanService, maxRangeDays int, logger *zap.Logger) *PlanAPIHandlers {
	return &PlanAPIHandlers{
		baseHandler:  newBaseHandler(logger),
		planService:  planService,
		maxRangeDays: maxRangeDays,
	}
}

// ChooseMealRequest assigns a recipe to a plan slot
type ChooseMealRequest struct {
	Date     string `json:"date" validate:"required"`
	Slot     string `json:"slot" validate:"required,oneof=breakfast lunch dinner dessert"`
	RecipeID int64  `json:"recipe_id" validate:"required,gt=0"`
}

// ClearMealRequest empties a plan slot
type ClearMealRequest struct {
	Date string `json:"date" validate:"required"`
	Slot string `json:"slot" validate:"required,oneof=breakfast lunch dinner dessert"`
}

// GetPlans handles GET /api/v1/plans?start_date=...&end_date=...
func (h *PlanAPIHandlers) GetPlans(w http.ResponseWriter, r *http.Request) {
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

	dtos, err := h.planService.GetPlansForRange(r.Context(), userID, start, end)
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: dtos})
}

// GetPlanForDate handles GET /api/v1/plans/{date}
func (h *PlanAPIHandlers) GetPlanForDate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		h.writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	date, err := time.Parse(time.DateOnly, chi.URLParam(r, "date"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	dto, err := h.planService.GetPlanForDate(r.Context(), userID, date)
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: dto})
}

// ChooseMeal handles POST /api/v1/plans/meals
func (h *PlanAPIHandlers) ChooseMeal(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		h.writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req ChooseMealRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.writeAppError(w, r, err)
		return
	}

	date, err := time.Parse(time.DateOnly, req.Date)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	dto, err := h.planService.ChooseMeal(r.Context(), inbound.ChooseMealCommand{
		UserID:   userID,
		Date:     date,
		Slot:     req.Slot,
		RecipeID: req.RecipeID,
	})
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    dto,
		Message: "Meal assigned successfully",
	})
}

// ClearMeal handles DELETE /api/v1/plans/meals
func (h *PlanAPIHandlers) ClearMeal(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		h.writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req ClearMealRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.writeAppError(w, r, err)
		return
	}

	date, err := time.Parse(time.DateOnly, req.Date)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	dto, err := h.planService.ClearMeal(r.Context(), inbound.ClearMealCommand{
		UserID: userID,
		Date:   date,
		Slot:   req.Slot,
	})
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    dto,
		Message: "Meal cleared successfully",
	})
}

// parseDateRange reads start_date and end_date query parameters and
// enforces the configured range ceiling.
func parseDateRange(r *http.Request, maxRangeDays int) (time.Time, time.Time, error) {
	startStr := r.URL.Query().Get("start_date")
	endStr := r.URL.Query().Get("end_date")
	if startStr == "" || endStr == "" {
		return time.Time{}, time.Time{}, errors.NewBadRequestError("start_date and end_date are required")
	}

	start, err := time.Parse(time.DateOnly, startStr)
	if err != nil {
		return time.Time{}, time.Time{}, errors.NewBadRequestError("Invalid start_date, expected YYYY-MM-DD")
	}
	end, err := time.Parse(time.DateOnly, endStr)
	if err != nil {
		return time.Time{}, time.Time{}, errors.NewBadRequestError("Invalid end_date, expected YYYY-MM-DD")
	}

	if days := int(end.Sub(start).Hours()/24) + 1; days > maxRangeDays {
		return time.Time{}, time.Time{}, errors.NewRangeTooLargeError(days, maxRangeDays)
	}

	return start, end, nil
}
