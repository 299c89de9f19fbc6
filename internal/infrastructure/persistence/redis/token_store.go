package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/platewise/v1/internal/ports/outbound"
)

const revokedTokenPrefix = "revoked_token:"

// TokenStore implements outbound.TokenStore on Redis. Revoked token
// IDs live until the token would have expired anyway, so the set
// cleans itself up.
type TokenStore struct {
	client *redis.Client
}

// NewTokenStore creates a Redis token revocation store.
func NewTokenStore(client *redis.Client) outbound.TokenStore {
	return &TokenStore{client: client}
}

// Revoke marks a token ID as revoked for the remaining token lifetime.
func (s *TokenStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if err := s.client.Set(ctx, revokedTokenPrefix+tokenID, "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

// IsRevoked reports whether a token ID is on the revocation list.
func (s *TokenStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, revokedTokenPrefix+tokenID).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check token revocation: %w", err)
	}
	return n > 0, nil
}
