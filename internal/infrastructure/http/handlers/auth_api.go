package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/platewise/v1/internal/infrastructure/http/middleware"
	"github.com/platewise/v1/internal/ports/inbound"
)

// AuthAPIHandlers handles authentication API requests
type AuthAPIHandlers struct {
	baseHandler
	userService inbound.UserService
}

// NewAuthAPIHandlers creates a new authentication API handlers instance
func NewAuthAPIHandlers(userService inbound.UserService, logger *zap.Logger) *AuthAPIHandlers {
	return &AuthAPIHandlers{
		baseHandler: newBaseHandler(logger),
		userService: userService,
	}
}

// RegisterRequest represents a user registration request
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=20"`
}

// LoginRequest represents a user login request
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest exchanges a refresh token for a new session
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// Register handles POST /api/v1/auth/register
func (h *AuthAPIHandlers) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.writeAppError(w, r, err)
		return
	}

	dto, err := h.userService.Register(r.Context(), inbound.RegisterUserCommand{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, APIResponse{
		Success: true,
		Data:    dto,
		Message: "Account created successfully",
	})
}

// Login handles POST /api/v1/auth/login
func (h *AuthAPIHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.writeAppError(w, r, err)
		return
	}

	session, err := h.userService.Login(r.Context(), inbound.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: session})
}

// Refresh handles POST /api/v1/auth/refresh
func (h *AuthAPIHandlers) Refresh(w http.ResponseWriter, r *http.Request) {
	var req RefreshRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.writeAppError(w, r, err)
		return
	}

	session, err := h.userService.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: session})
}

// Logout handles POST /api/v1/auth/logout
func (h *AuthAPIHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	tokenID, ok := middleware.GetTokenIDFromContext(r.Context())
	if !ok {
		h.writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}
	expiresAt, _ := middleware.GetTokenExpiryFromContext(r.Context())

	if err := h.userService.Logout(r.Context(), tokenID, expiresAt); err != nil {
		h.writeAppError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Message: "Logged out successfully",
	})
}

// Profile handles GET /api/v1/auth/profile
func (h *AuthAPIHandlers) Profile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		h.writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	dto, err := h.userService.GetProfile(r.Context(), userID)
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: dto})
}
