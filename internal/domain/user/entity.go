// Package user contains the core domain logic for user accounts.
package user

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Password policy errors
var (
	ErrInvalidEmail    = errors.New("invalid email address")
	ErrNameRequired    = errors.New("user name is required")
	ErrWeakPassword    = errors.New("password must be 8-20 characters with upper, lower, digit and one of !#?%$&")
	ErrAccountInactive = errors.New("account is deactivated")
)

// User represents a registered account. All recipes and meal plans
// are scoped by the owning user's ID.
type User struct {
	id           int64
	email        string
	name         string
	passwordHash string
	isActive     bool
	createdAt    time.Time
	lastLoginAt  *time.Time
}

// NewUser creates a new User with a bcrypt-hashed password.
func NewUser(email, name, password string, bcryptCost int) (*User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	name = strings.TrimSpace(name)

	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, ErrNameRequired
	}
	if !ValidatePassword(password) {
		return nil, ErrWeakPassword
	}

	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, err
	}

	return &User{
		email:        email,
		name:         name,
		passwordHash: string(hash),
		isActive:     true,
		createdAt:    time.Now(),
	}, nil
}

// Reconstitute rebuilds a User from persisted state.
func Reconstitute(id int64, email, name, passwordHash string, isActive bool, createdAt time.Time, lastLoginAt *time.Time) *User {
	return &User{
		id:           id,
		email:        email,
		name:         name,
		passwordHash: passwordHash,
		isActive:     isActive,
		createdAt:    createdAt,
		lastLoginAt:  lastLoginAt,
	}
}

// ID returns the user's identifier.
func (u *User) ID() int64 { return u.id }

// SetID assigns the database-generated identifier after insert.
func (u *User) SetID(id int64) { u.id = id }

// Email returns the user's email address.
func (u *User) Email() string { return u.email }

// Name returns the user's display name.
func (u *User) Name() string { return u.name }

// PasswordHash returns the bcrypt hash of the user's password.
func (u *User) PasswordHash() string { return u.passwordHash }

// IsActive reports whether the account is active.
func (u *User) IsActive() bool { return u.isActive }

// CreatedAt returns when the account was created.
func (u *User) CreatedAt() time.Time { return u.createdAt }

// LastLoginAt returns the time of the most recent login, if any.
func (u *User) LastLoginAt() *time.Time { return u.lastLoginAt }

// CheckPassword verifies a plaintext password against the stored hash.
func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.passwordHash), []byte(password))
}

// RecordLogin stamps the current time as the last login.
func (u *User) RecordLogin() {
	now := time.Now()
	u.lastLoginAt = &now
}

// Deactivate marks the account inactive.
func (u *User) Deactivate() {
	u.isActive = false
}

// ValidatePassword enforces the password policy: 8-20 characters with at
// least one digit, one uppercase letter, one lowercase letter and one of
// the symbols !#?%$&.
func ValidatePassword(password string) bool {
	if len(password) < 8 || len(password) > 20 {
		return false
	}

	var hasDigit, hasUpper, hasLower, hasSymbol bool
	for _, c := range password {
		switch {
		case c >= '0' && c <= '9':
			hasDigit = true
		case c >= 'A' && c <= 'Z':
			hasUpper = true
		case c >= 'a' && c <= 'z':
			hasLower = true
		case strings.ContainsRune("!#?%$&", c):
			hasSymbol = true
		}
	}

	return hasDigit && hasUpper && hasLower && hasSymbol
}

// validateEmail performs a minimal structural check.
func validateEmail(email string) error {
	at := strings.Index(email, "@")
	if at < 1 || at == len(email)-1 || !strings.Contains(email[at+1:], ".") {
		return ErrInvalidEmail
	}
	return nil
}
