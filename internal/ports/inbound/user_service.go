package inbound

import (
	"context"
	"time"
)

// UserService defines the account and session use cases.
type UserService interface {
	Register(ctx context.Context, cmd RegisterUserCommand) (*UserDTO, error)
	Login(ctx context.Context, cmd LoginCommand) (*SessionDTO, error)
	Refresh(ctx context.Context, refreshToken string) (*SessionDTO, error)
	Logout(ctx context.Context, tokenID string, expiresAt time.Time) error
	GetProfile(ctx context.Context, userID int64) (*UserDTO, error)
}

// RegisterUserCommand contains the data to create an account.
type RegisterUserCommand struct {
	Email    string
	Name     string
	Password string
}

// LoginCommand contains credentials for authentication.
type LoginCommand struct {
	Email    string
	Password string
}

// UserDTO represents account data returned to the HTTP layer.
type UserDTO struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// SessionDTO is returned on successful login and refresh.
type SessionDTO struct {
	User         UserDTO   `json:"user"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	TokenType    string    `json:"token_type"`
	ExpiresAt    time.Time `json:"expires_at"`
}
