// Package gorm provides GORM model definitions and repository
// implementations backed by a relational database.
package gorm

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// StringSlice stores a []string as a JSON column.
type StringSlice []string

// Scan implements sql.Scanner.
func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into StringSlice", value)
	}

	return json.Unmarshal(data, s)
}

// Value implements driver.Valuer.
func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal([]string(s))
}

// UserModel represents the users table.
type UserModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name         string `gorm:"type:varchar(255);not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	IsActive     bool   `gorm:"default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	LastLoginAt  *time.Time

	Recipes []RecipeModel `gorm:"foreignKey:UserID"`
}

// TableName returns the table name for users
func (UserModel) TableName() string {
	return "users"
}

// RecipeModel represents the recipes table. Ingredients are stored as
// a JSON array of atomic entries.
type RecipeModel struct {
	ID           int64       `gorm:"primaryKey;autoIncrement"`
	UserID       int64       `gorm:"not null;index"`
	MealName     string      `gorm:"type:varchar(100);not null;index:idx_recipes_user_meal_name,priority:2"`
	MealType     string      `gorm:"type:varchar(20);not null;index"`
	Ingredients  StringSlice `gorm:"type:json"`
	Instructions string      `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	User UserModel `gorm:"foreignKey:UserID"`
}

// TableName returns the table name for recipes
func (RecipeModel) TableName() string {
	return "recipes"
}

// MealPlanModel represents the meal plan table: one row per user per
// calendar day, with a nullable column per slot. Slot values hold meal
// references exactly as written.
type MealPlanModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	UserID    int64     `gorm:"not null;uniqueIndex:idx_plans_user_date,priority:1"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:idx_plans_user_date,priority:2"`
	Breakfast *string   `gorm:"type:varchar(255)"`
	Lunch     *string   `gorm:"type:varchar(255)"`
	Dinner    *string   `gorm:"type:varchar(255)"`
	Dessert   *string   `gorm:"type:varchar(255)"`
	CreatedAt time.Time
	UpdatedAt time.Time

	User UserModel `gorm:"foreignKey:UserID"`
}

// TableName returns the table name for meal plans
func (MealPlanModel) TableName() string {
	return "meal_plans"
}

// Migrate applies the schema for all tables.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&UserModel{},
		&RecipeModel{},
		&MealPlanModel{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}
