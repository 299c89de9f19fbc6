// Package user implements the account and session use cases.
package user

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/platewise/v1/internal/domain/user"
	"github.com/platewise/v1/internal/infrastructure/security"
	"github.com/platewise/v1/internal/ports/inbound"
	"github.com/platewise/v1/internal/ports/outbound"
	apperrors "github.com/platewise/v1/pkg/errors"
)

// Service implements inbound.UserService.
type Service struct {
	users      outbound.UserRepository
	auth       *security.AuthService
	bcryptCost int
	logger     *zap.Logger
}

// NewService creates the user service.
func NewService(users outbound.UserRepository, auth *security.AuthService, bcryptCost int, logger *zap.Logger) *Service {
	return &Service{
		users:      users,
		auth:       auth,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// Register creates a new account. Emails are unique; the password must
// satisfy the domain policy before it is hashed.
func (s *Service) Register(ctx context.Context, cmd inbound.RegisterUserCommand) (*inbound.UserDTO, error) {
	taken, err := s.users.Exists(ctx, cmd.Email)
	if err != nil {
		return nil, apperrors.NewDatabaseError("check email exists", err)
	}
	if taken {
		return nil, apperrors.NewEmailAlreadyExistsError(cmd.Email)
	}

	u, err := user.NewUser(cmd.Email, cmd.Name, cmd.Password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := s.users.Create(ctx, u); err != nil {
		return nil, apperrors.NewDatabaseError("create user", err)
	}

	s.logger.Info("User registered",
		zap.Int64("user_id", u.ID()),
		zap.String("email", u.Email()))

	dto := toDTO(u)
	return &dto, nil
}

// Login verifies credentials and issues an access token. Unknown email
// and wrong password produce the same error so they cannot be told
// apart from outside.
func (s *Service) Login(ctx context.Context, cmd inbound.LoginCommand) (*inbound.SessionDTO, error) {
	u, err := s.users.FindByEmail(ctx, cmd.Email)
	if err != nil {
		return nil, apperrors.NewDatabaseError("find user by email", err)
	}
	if u == nil || u.CheckPassword(cmd.Password) != nil {
		return nil, apperrors.NewInvalidCredentialsError()
	}
	if !u.IsActive() {
		return nil, apperrors.NewForbiddenError("account is deactivated")
	}

	pair, err := s.auth.IssueTokenPair(u.ID(), u.Email())
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to issue tokens")
	}

	u.RecordLogin()
	if err := s.users.Update(ctx, u); err != nil {
		s.logger.Warn("Failed to record login time",
			zap.Int64("user_id", u.ID()),
			zap.Error(err))
	}

	s.logger.Info("User logged in", zap.Int64("user_id", u.ID()))

	return &inbound.SessionDTO{
		User:         toDTO(u),
		AccessToken:  pair.Access.Value,
		RefreshToken: pair.Refresh.Value,
		TokenType:    "Bearer",
		ExpiresAt:    pair.Access.ExpiresAt,
	}, nil
}

// Refresh exchanges a valid refresh token for a new token pair. The
// used refresh token is revoked so it cannot be replayed.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*inbound.SessionDTO, error) {
	claims, err := s.auth.ValidateRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, apperrors.NewUnauthorizedError("Invalid or expired refresh token")
	}

	u, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, apperrors.NewDatabaseError("find user by id", err)
	}
	if u == nil || !u.IsActive() {
		return nil, apperrors.NewUnauthorizedError("Account is no longer available")
	}

	if err := s.auth.RevokeToken(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
		s.logger.Warn("Failed to revoke used refresh token",
			zap.Int64("user_id", u.ID()),
			zap.Error(err))
	}

	pair, err := s.auth.IssueTokenPair(u.ID(), u.Email())
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to issue tokens")
	}

	return &inbound.SessionDTO{
		User:         toDTO(u),
		AccessToken:  pair.Access.Value,
		RefreshToken: pair.Refresh.Value,
		TokenType:    "Bearer",
		ExpiresAt:    pair.Access.ExpiresAt,
	}, nil
}

// Logout revokes the presented token until its natural expiry.
func (s *Service) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if err := s.auth.RevokeToken(ctx, tokenID, expiresAt); err != nil {
		return apperrors.Wrap(err, "failed to revoke token")
	}
	return nil
}

// GetProfile returns the account for an authenticated user.
func (s *Service) GetProfile(ctx context.Context, userID int64) (*inbound.UserDTO, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, apperrors.NewDatabaseError("find user by id", err)
	}
	if u == nil {
		return nil, apperrors.NewUserNotFoundError(userID)
	}

	dto := toDTO(u)
	return &dto, nil
}

func toDTO(u *user.User) inbound.UserDTO {
	return inbound.UserDTO{
		ID:        u.ID(),
		Email:     u.Email(),
		Name:      u.Name(),
		CreatedAt: u.CreatedAt(),
	}
}
