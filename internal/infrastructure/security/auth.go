// Package security provides JWT based authentication with server-side
// token revocation.
package security

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/platewise/v1/internal/ports/outbound"
)

// Token type claims. Refresh tokens cannot be used to authenticate API
// requests and vice versa.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims are the JWT claims carried by issued tokens. The ID claim
// (jti) keys the revocation list.
type Claims struct {
	UserID    int64  `json:"user_id"`
	Email     string `json:"email"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// Token is an issued token together with its identifying claims.
type Token struct {
	Value     string
	TokenID   string
	ExpiresAt time.Time
}

// TokenPair bundles the access and refresh tokens issued on login.
type TokenPair struct {
	Access  *Token
	Refresh *Token
}

// AuthService issues and validates tokens.
type AuthService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	tokens     outbound.TokenStore
	logger     *zap.Logger
}

// NewAuthService creates an auth service. tokens may be nil in tests
// that do not exercise revocation.
func NewAuthService(secret string, accessTTL, refreshTTL time.Duration, tokens outbound.TokenStore, logger *zap.Logger) *AuthService {
	return &AuthService{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		tokens:     tokens,
		logger:     logger,
	}
}

// IssueToken signs a new access token for the user.
func (a *AuthService) IssueToken(userID int64, email string) (*Token, error) {
	return a.issue(userID, email, TokenTypeAccess, a.accessTTL)
}

// IssueTokenPair signs a new access and refresh token for the user.
func (a *AuthService) IssueTokenPair(userID int64, email string) (*TokenPair, error) {
	access, err := a.issue(userID, email, TokenTypeAccess, a.accessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := a.issue(userID, email, TokenTypeRefresh, a.refreshTTL)
	if err != nil {
		return nil, err
	}
	return &TokenPair{Access: access, Refresh: refresh}, nil
}

func (a *AuthService) issue(userID int64, email, tokenType string, ttl time.Duration) (*Token, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(ttl)
	tokenID := uuid.NewString()

	claims := Claims{
		UserID:    userID,
		Email:     email,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			Subject:   fmt.Sprintf("%d", userID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &Token{Value: signed, TokenID: tokenID, ExpiresAt: expiresAt}, nil
}

// ValidateToken verifies an access token and checks it against the
// revocation list.
func (a *AuthService) ValidateToken(ctx context.Context, tokenString string) (*Claims, error) {
	return a.validate(ctx, tokenString, TokenTypeAccess)
}

// ValidateRefreshToken verifies a refresh token and checks it against
// the revocation list.
func (a *AuthService) ValidateRefreshToken(ctx context.Context, tokenString string) (*Claims, error) {
	return a.validate(ctx, tokenString, TokenTypeRefresh)
}

func (a *AuthService) validate(ctx context.Context, tokenString, wantType string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	if claims.TokenType != wantType {
		return nil, fmt.Errorf("unexpected token type: %s", claims.TokenType)
	}

	if a.tokens != nil && claims.ID != "" {
		revoked, err := a.tokens.IsRevoked(ctx, claims.ID)
		if err != nil {
			// A dead revocation store must not lock every user out;
			// logout itself still reports store failures.
			a.logger.Warn("Failed to check token revocation, allowing token",
				zap.Error(err))
		} else if revoked {
			return nil, fmt.Errorf("token has been revoked")
		}
	}

	return claims, nil
}

// RevokeToken adds a token to the revocation list until it would have
// expired on its own.
func (a *AuthService) RevokeToken(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if a.tokens == nil {
		return nil
	}
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	return a.tokens.Revoke(ctx, tokenID, ttl)
}
