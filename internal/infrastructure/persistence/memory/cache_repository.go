// Package memory provides in-process fallbacks for the cache and token
// store, used when Redis is not configured.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/platewise/v1/internal/ports/outbound"
)

type entry struct {
	value     []byte
	expiresAt time.Time
}

// CacheRepository implements outbound.CacheRepository with an
// in-process map. Expired entries are dropped lazily on access.
type CacheRepository struct {
	mu      sync.RWMutex
	entries map[string]entry
}

// NewCacheRepository creates an in-memory cache repository.
func NewCacheRepository() outbound.CacheRepository {
	return &CacheRepository{entries: make(map[string]entry)}
}

// Get returns the cached value, or (nil, nil) on a miss.
func (c *CacheRepository) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, nil
	}
	if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return nil, nil
	}
	return e.value, nil
}

// Set stores a value with a TTL. A zero TTL means no expiry.
func (c *CacheRepository) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = time.Now().Add(ttl)
	}

	c.mu.Lock()
	c.entries[key] = entry{value: value, expiresAt: expiresAt}
	c.mu.Unlock()
	return nil
}

// Delete removes a key.
func (c *CacheRepository) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
	return nil
}

// Exists reports whether the key is present and unexpired.
func (c *CacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	data, err := c.Get(ctx, key)
	if err != nil {
		return false, err
	}
	return data != nil, nil
}

// TokenStore implements outbound.TokenStore with an in-process map.
type TokenStore struct {
	mu      sync.RWMutex
	revoked map[string]time.Time
}

// NewTokenStore creates an in-memory token revocation store.
func NewTokenStore() outbound.TokenStore {
	return &TokenStore{revoked: make(map[string]time.Time)}
}

// Revoke marks a token ID as revoked for the given lifetime.
func (s *TokenStore) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	s.mu.Lock()
	s.revoked[tokenID] = time.Now().Add(ttl)
	s.mu.Unlock()
	return nil
}

// IsRevoked reports whether a token ID is on the revocation list.
func (s *TokenStore) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	s.mu.RLock()
	expiresAt, ok := s.revoked[tokenID]
	s.mu.RUnlock()

	if !ok {
		return false, nil
	}
	if time.Now().After(expiresAt) {
		s.mu.Lock()
		delete(s.revoked, tokenID)
		s.mu.Unlock()
		return false, nil
	}
	return true, nil
}
