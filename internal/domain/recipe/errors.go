package recipe

import "errors"

// Domain validation errors
var (
	ErrMealNameRequired = errors.New("meal name is required")
	ErrMealNameTooLong  = errors.New("meal name must be at most 100 characters")
	ErrInvalidMealType  = errors.New("meal type must be breakfast, lunch, dinner or dessert")
)
