// Package testutils provides mock implementations and test data factories.
package testutils

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/platewise/v1/internal/domain/mealplan"
	"github.com/platewise/v1/internal/domain/recipe"
	"github.com/platewise/v1/internal/domain/user"
)

// MockUserRepository is a testify mock of outbound.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id int64) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) Exists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

// MockRecipeRepository is a testify mock of outbound.RecipeRepository.
type MockRecipeRepository struct {
	mock.Mock
}

func (m *MockRecipeRepository) Create(ctx context.Context, r *recipe.Recipe) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRecipeRepository) Update(ctx context.Context, r *recipe.Recipe) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRecipeRepository) Delete(ctx context.Context, ownerID, id int64) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}

func (m *MockRecipeRepository) FindByID(ctx context.Context, ownerID, id int64) (*recipe.Recipe, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recipe.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) FindByName(ctx context.Context, ownerID int64, mealName string) (*recipe.Recipe, error) {
	args := m.Called(ctx, ownerID, mealName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recipe.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) FindIngredientsByName(ctx context.Context, ownerID int64, mealName string) ([]string, error) {
	args := m.Called(ctx, ownerID, mealName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockRecipeRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*recipe.Recipe, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*recipe.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) ListByMealType(ctx context.Context, ownerID int64, mealType recipe.MealType) ([]*recipe.Recipe, error) {
	args := m.Called(ctx, ownerID, mealType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*recipe.Recipe), args.Error(1)
}

// MockPlanRepository is a testify mock of outbound.PlanRepository.
type MockPlanRepository struct {
	mock.Mock
}

func (m *MockPlanRepository) FindByDate(ctx context.Context, userID int64, date time.Time) (*mealplan.Plan, error) {
	args := m.Called(ctx, userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mealplan.Plan), args.Error(1)
}

func (m *MockPlanRepository) FindByDateRange(ctx context.Context, userID int64, start, end time.Time) ([]*mealplan.Plan, error) {
	args := m.Called(ctx, userID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*mealplan.Plan), args.Error(1)
}

func (m *MockPlanRepository) Upsert(ctx context.Context, p *mealplan.Plan) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

// MockTokenStore is a testify mock of outbound.TokenStore.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}

// MockCacheRepository is a testify mock of outbound.CacheRepository.
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}
