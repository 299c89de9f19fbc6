// Package errors provides structured error handling for the application
package errors

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ErrorCode represents an error code
type ErrorCode string

// Common error codes following RESTful API conventions
const (
	// Client errors (4xx)
	CodeBadRequest       ErrorCode = "BAD_REQUEST"
	CodeUnauthorized     ErrorCode = "UNAUTHORIZED"
	CodeForbidden        ErrorCode = "FORBIDDEN"
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeConflict         ErrorCode = "CONFLICT"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeTooManyRequests  ErrorCode = "TOO_MANY_REQUESTS"

	// Server errors (5xx)
	CodeInternal             ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError        ErrorCode = "DATABASE_ERROR"
	CodeExternalServiceError ErrorCode = "EXTERNAL_SERVICE_ERROR"

	// Business logic errors
	CodeRecipeNotFound     ErrorCode = "RECIPE_NOT_FOUND"
	CodeUserNotFound       ErrorCode = "USER_NOT_FOUND"
	CodePlanNotFound       ErrorCode = "PLAN_NOT_FOUND"
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeEmailAlreadyExists ErrorCode = "EMAIL_ALREADY_EXISTS"
	CodeInvalidMealSlot    ErrorCode = "INVALID_MEAL_SLOT"
	CodeRangeTooLarge      ErrorCode = "RANGE_TOO_LARGE"
	CodeTokenRevoked       ErrorCode = "TOKEN_REVOKED"
)

// AppError represents an application error with structured information
type AppError struct {
	Code     ErrorCode              `json:"code"`
	Message  string                 `json:"message"`
	Details  string                 `json:"details,omitempty"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	Cause    error                  `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// StatusCode returns the appropriate HTTP status code
func (e *AppError) StatusCode() int {
	switch e.Code {
	case CodeBadRequest, CodeValidationFailed, CodeInvalidMealSlot, CodeRangeTooLarge:
		return http.StatusBadRequest
	case CodeUnauthorized, CodeInvalidCredentials, CodeTokenRevoked:
		return http.StatusUnauthorized
	case CodeForbidden:
		return http.StatusForbidden
	case CodeNotFound, CodeRecipeNotFound, CodeUserNotFound, CodePlanNotFound:
		return http.StatusNotFound
	case CodeConflict, CodeEmailAlreadyExists:
		return http.StatusConflict
	case CodeTooManyRequests:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// WithMetadata adds metadata to the error
func (e *AppError) WithMetadata(key string, value interface{}) *AppError {
	if e.Metadata == nil {
		e.Metadata = make(map[string]interface{})
	}
	e.Metadata[key] = value
	return e
}

// WithCause adds a cause error
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// NewAppError creates a new application error
func NewAppError(code ErrorCode, message, details string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// NewBadRequestError creates a bad request error
func NewBadRequestError(message string) *AppError {
	return NewAppError(CodeBadRequest, message, "")
}

// NewValidationError creates a validation error
func NewValidationError(details string) *AppError {
	return NewAppError(CodeValidationFailed, "Validation failed", details)
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError(message string) *AppError {
	if message == "" {
		message = "Authentication required"
	}
	return NewAppError(CodeUnauthorized, message, "")
}

// NewForbiddenError creates a forbidden error
func NewForbiddenError(message string) *AppError {
	if message == "" {
		message = "Access forbidden"
	}
	return NewAppError(CodeForbidden, message, "")
}

// NewNotFoundError creates a not found error
func NewNotFoundError(resource string) *AppError {
	message := "Resource not found"
	if resource != "" {
		message = fmt.Sprintf("%s not found", strings.Title(resource))
	}
	return NewAppError(CodeNotFound, message, "")
}

// NewInternalError creates an internal server error
func NewInternalError(message string) *AppError {
	if message == "" {
		message = "An unexpected error occurred"
	}
	return NewAppError(CodeInternal, message, "")
}

// NewDatabaseError creates a database error
func NewDatabaseError(operation string, cause error) *AppError {
	return NewAppError(
		CodeDatabaseError,
		"Database operation failed",
		fmt.Sprintf("Failed to %s", operation),
	).WithCause(cause)
}

// NewRecipeNotFoundError creates a recipe not found error
func NewRecipeNotFoundError(recipeID int64) *AppError {
	return NewAppError(
		CodeRecipeNotFound,
		"Recipe not found",
		fmt.Sprintf("Recipe with ID %d does not exist", recipeID),
	).WithMetadata("recipe_id", recipeID)
}

// NewUserNotFoundError creates a user not found error
func NewUserNotFoundError(userID int64) *AppError {
	return NewAppError(
		CodeUserNotFound,
		"User not found",
		fmt.Sprintf("User with ID %d does not exist", userID),
	).WithMetadata("user_id", userID)
}

// NewPlanNotFoundError creates a meal plan not found error
func NewPlanNotFoundError(period string) *AppError {
	return NewAppError(
		CodePlanNotFound,
		"No meal plan for this period",
		period,
	).WithMetadata("period", period)
}

// NewEmailAlreadyExistsError creates an email already exists error
func NewEmailAlreadyExistsError(email string) *AppError {
	return NewAppError(
		CodeEmailAlreadyExists,
		"Email already exists",
		"An account with this email address already exists",
	).WithMetadata("email", email)
}

// NewInvalidCredentialsError creates an invalid credentials error
func NewInvalidCredentialsError() *AppError {
	return NewAppError(
		CodeInvalidCredentials,
		"Invalid credentials",
		"The provided email or password is incorrect",
	)
}

// NewInvalidMealSlotError creates an invalid meal slot error
func NewInvalidMealSlotError(slot string) *AppError {
	return NewAppError(
		CodeInvalidMealSlot,
		"Invalid meal slot",
		fmt.Sprintf("%q is not one of breakfast, lunch, dinner, dessert", slot),
	).WithMetadata("slot", slot)
}

// NewRangeTooLargeError creates a date range too large error
func NewRangeTooLargeError(days, maxDays int) *AppError {
	return NewAppError(
		CodeRangeTooLarge,
		"Date range too large",
		fmt.Sprintf("Requested range spans %d days, maximum is %d", days, maxDays),
	).WithMetadata("days", days).WithMetadata("max_days", maxDays)
}

// Wrap wraps an error as an internal error if it's not already an AppError
func Wrap(err error, message string) *AppError {
	if err == nil {
		return nil
	}

	if appErr, ok := err.(*AppError); ok {
		return appErr
	}

	return NewInternalError(message).WithCause(err)
}

// Is checks if an error is of a specific error code
func Is(err error, code ErrorCode) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code == code
	}
	return false
}

// GetCode extracts the error code from an error
func GetCode(err error) ErrorCode {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code
	}
	return CodeInternal
}

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails represents the error details in API responses
type ErrorDetails struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	RequestID string                 `json:"request_id,omitempty"`
	Timestamp string                 `json:"timestamp"`
}

// ToErrorResponse converts an AppError to an API error response
func ToErrorResponse(err *AppError, requestID string) ErrorResponse {
	return ErrorResponse{
		Error: ErrorDetails{
			Code:      err.Code,
			Message:   err.Message,
			Details:   err.Details,
			Metadata:  err.Metadata,
			RequestID: requestID,
			Timestamp: fmt.Sprintf("%d", time.Now().Unix()),
		},
	}
}
