// Package handlers provides HTTP handlers for the REST API
package handlers

import (
	"encoding/json"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/platewise/v1/pkg/errors"
)

// APIResponse represents a standard API response envelope
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

// baseHandler carries the pieces every handler group needs.
type baseHandler struct {
	validate *validator.Validate
	logger   *zap.Logger
}

func newBaseHandler(logger *zap.Logger) baseHandler {
	return baseHandler{
		validate: validator.New(),
		logger:   logger,
	}
}

// writeJSON writes a JSON response
func (h *baseHandler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}

// writeError writes a plain error response
func (h *baseHandler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, APIResponse{Success: false, Error: message})
}

// writeAppError maps an application error onto its HTTP status.
func (h *baseHandler) writeAppError(w http.ResponseWriter, r *http.Request, err error) {
	if appErr, ok := err.(*errors.AppError); ok {
		if appErr.StatusCode() >= http.StatusInternalServerError {
			h.logger.Error("Request failed", zap.Error(err))
		}
		h.writeJSON(w, appErr.StatusCode(), errors.ToErrorResponse(appErr, chimiddleware.GetReqID(r.Context())))
		return
	}

	h.logger.Error("Request failed", zap.Error(err))
	h.writeError(w, http.StatusInternalServerError, "Internal server error")
}

// decodeAndValidate parses the JSON body into dst and runs struct
// validation on it.
func (h *baseHandler) decodeAndValidate(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.NewBadRequestError("Invalid JSON payload")
	}
	if err := h.validate.Struct(dst); err != nil {
		return errors.NewValidationError(err.Error())
	}
	return nil
}
