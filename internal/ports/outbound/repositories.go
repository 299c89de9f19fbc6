// Package outbound defines the interfaces for outbound ports (secondary/driven adapters)
// These are the interfaces that the application uses to interact with external systems
package outbound

import (
	"context"
	"time"

	"github.com/platewise/v1/internal/domain/mealplan"
	"github.com/platewise/v1/internal/domain/recipe"
	"github.com/platewise/v1/internal/domain/user"
)

// UserRepository defines the interface for user persistence
type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	Update(ctx context.Context, u *user.User) error
	FindByID(ctx context.Context, id int64) (*user.User, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	Exists(ctx context.Context, email string) (bool, error)
}

// RecipeRepository defines the interface for recipe persistence.
// All lookups are scoped by the owning user to prevent cross-user leakage.
type RecipeRepository interface {
	Create(ctx context.Context, r *recipe.Recipe) error
	Update(ctx context.Context, r *recipe.Recipe) error
	Delete(ctx context.Context, ownerID, id int64) error
	FindByID(ctx context.Context, ownerID, id int64) (*recipe.Recipe, error)

	// FindByName returns the first recipe matching the meal name, or
	// (nil, nil) when no recipe matches. Duplicate names resolve to the
	// lowest-ID match.
	FindByName(ctx context.Context, ownerID int64, mealName string) (*recipe.Recipe, error)

	// FindIngredientsByName returns the ingredient list of the first
	// recipe matching the meal name. A nil slice signals "no such
	// recipe"; an empty non-nil slice signals "recipe with zero
	// ingredients". Both are valid outcomes.
	FindIngredientsByName(ctx context.Context, ownerID int64, mealName string) ([]string, error)

	ListByOwner(ctx context.Context, ownerID int64) ([]*recipe.Recipe, error)
	ListByMealType(ctx context.Context, ownerID int64, mealType recipe.MealType) ([]*recipe.Recipe, error)
}

// PlanRepository defines the interface for meal plan persistence.
type PlanRepository interface {
	// FindByDate returns the plan row for (user, date), or (nil, nil)
	// when no row exists. Absence of a plan is a normal condition.
	FindByDate(ctx context.Context, userID int64, date time.Time) (*mealplan.Plan, error)

	// FindByDateRange returns the plan rows stored within the inclusive
	// range, ordered by date ascending. Days without rows are absent
	// from the result.
	FindByDateRange(ctx context.Context, userID int64, start, end time.Time) ([]*mealplan.Plan, error)

	// Upsert creates the plan row for (user, date) if absent, otherwise
	// updates the existing row's slots. Plan rows are never deleted.
	Upsert(ctx context.Context, p *mealplan.Plan) error
}

// TokenStore defines the interface for server-side token revocation.
type TokenStore interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
