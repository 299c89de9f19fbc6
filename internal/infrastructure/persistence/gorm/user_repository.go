package gorm

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/platewise/v1/internal/domain/user"
	"github.com/platewise/v1/internal/ports/outbound"
)

// UserRepository implements outbound.UserRepository using GORM.
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new GORM user repository.
func NewUserRepository(db *gorm.DB) outbound.UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user and backfills the generated ID.
func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	model := userToModel(u)
	model.ID = 0

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	u.SetID(model.ID)
	return nil
}

// Update saves the mutable fields of an existing user.
func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	model := userToModel(u)

	result := r.db.WithContext(ctx).Model(&UserModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":          model.Name,
			"password_hash": model.PasswordHash,
			"is_active":     model.IsActive,
			"last_login_at": model.LastLoginAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("user %d not found", model.ID)
	}
	return nil
}

// FindByID returns the user with the given ID, or (nil, nil) when absent.
func (r *UserRepository) FindByID(ctx context.Context, id int64) (*user.User, error) {
	var model UserModel
	err := r.db.WithContext(ctx).First(&model, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user by id: %w", err)
	}
	return userToDomain(&model), nil
}

// FindByEmail returns the user with the given email, or (nil, nil) when absent.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	var model UserModel
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return userToDomain(&model), nil
}

// Exists reports whether an account with the email already exists.
func (r *UserRepository) Exists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&UserModel{}).
		Where("email = ?", email).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check user exists: %w", err)
	}
	return count > 0, nil
}
