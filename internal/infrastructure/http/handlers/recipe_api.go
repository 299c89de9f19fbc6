package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/platewise/v1/internal/domain/recipe"
	"github.com/platewise/v1/internal/infrastructure/http/middleware"
	"github.com/platewise/v1/internal/ports/inbound"
)

// RecipeAPIHandlers handles recipe API requests
type RecipeAPIHandlers struct {
	baseHandler
	recipeService inbound.RecipeService
}

// NewRecipeAPIHandlers creates a new recipe API handlers instance
func NewRecipeAPIHandlers(recipeService inbound.RecipeService, logger *zap.Logger) *RecipeAPIHandlers {
	return &RecipeAPIHandlers{
		baseHandler:   newBaseHandler(logger),
		recipeService: recipeService,
	}
}

// CreateRecipeRequest represents a recipe creation request. Ingredients
// arrive as one newline-separated text blob.
type CreateRecipeRequest struct {
	MealName     string `json:"meal_name" validate:"required,max=100"`
	MealType     string `json:"meal_type" validate:"required,oneof=breakfast lunch dinner dessert"`
	Ingredients  string `json:"ingredients"`
	Instructions string `json:"instructions"`
}

// UpdateRecipeRequest represents a partial recipe update
type UpdateRecipeRequest struct {
	MealName     *string `json:"meal_name" validate:"omitempty,max=100"`
	MealType     *string `json:"meal_type" validate:"omitempty,oneof=breakfast lunch dinner dessert"`
	Ingredients  *string `json:"ingredients"`
	Instructions *string `json:"instructions"`
}

// ListRecipes handles GET /api/v1/recipes
func (h *RecipeAPIHandlers) ListRecipes(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		h.writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var (
		dtos []inbound.RecipeDTO
		err  error
	)
	if mealType := r.URL.Query().Get("meal_type"); mealType != "" {
		dtos, err = h.recipeService.ListRecipesByMealType(r.Context(), userID, recipe.MealType(mealType))
	} else {
		dtos, err = h.recipeService.ListRecipes(r.Context(), userID)
	}
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: dtos})
}

// CreateRecipe handles POST /api/v1/recipes
func (h *RecipeAPIHandlers) CreateRecipe(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		h.writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req CreateRecipeRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.writeAppError(w, r, err)
		return
	}

	dto, err := h.recipeService.CreateRecipe(r.Context(), inbound.CreateRecipeCommand{
		UserID:       userID,
		MealName:     req.MealName,
		MealType:     req.MealType,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
	})
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, APIResponse{
		Success: true,
		Data:    dto,
		Message: "Recipe created successfully",
	})
}

// GetRecipe handles GET /api/v1/recipes/{id}
func (h *RecipeAPIHandlers) GetRecipe(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		h.writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	recipeID, err := parseIDParam(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid recipe ID")
		return
	}

	dto, err := h.recipeService.GetRecipeByID(r.Context(), userID, recipeID)
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: dto})
}

// UpdateRecipe handles PUT /api/v1/recipes/{id}
func (h *RecipeAPIHandlers) UpdateRecipe(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		h.writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	recipeID, err := parseIDParam(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid recipe ID")
		return
	}

	var req UpdateRecipeRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.writeAppError(w, r, err)
		return
	}

	dto, err := h.recipeService.UpdateRecipe(r.Context(), inbound.UpdateRecipeCommand{
		UserID:       userID,
		RecipeID:     recipeID,
		MealName:     req.MealName,
		MealType:     req.MealType,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
	})
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    dto,
		Message: "Recipe updated successfully",
	})
}

// DeleteRecipe handles DELETE /api/v1/recipes/{id}
func (h *RecipeAPIHandlers) DeleteRecipe(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		h.writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	recipeID, err := parseIDParam(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid recipe ID")
		return
	}

	if err := h.recipeService.DeleteRecipe(r.Context(), userID, recipeID); err != nil {
		h.writeAppError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Message: "Recipe deleted successfully",
	})
}

func parseIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
