package auth

import (
	"context"
	"fmt"
	"time"

	"tasktracker/internal/cache"
	apperrors "tasktracker/internal/errors"
)

const revokedTokenKeyPrefix = "revoked_token:"

// TokenStoreInterface defines the interface for token revocation operations.
type TokenStoreInterface interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// TokenStore records revoked token IDs in Redis.
type TokenStore struct {
	cache *cache.Client
}

// Ensure TokenStore implements TokenStoreInterface
var _ TokenStoreInterface = (*TokenStore)(nil)

// NewTokenStore creates a new token store.
func NewTokenStore(cache *cache.Client) *TokenStore {
	return &TokenStore{cache: cache}
}

// Revoke marks tokenID as revoked for ttl. It fails with
// apperrors.ErrRevocationUnavailable when the mark cannot be written.
func (s *TokenStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if tokenID == "" || ttl <= 0 {
		return nil
	}
	if err := s.cache.Set(ctx, revokedTokenKeyPrefix+tokenID, []byte("1"), ttl); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrRevocationUnavailable, err)
	}
	return nil
}

// IsRevoked reports whether tokenID was revoked. An unreachable cache reads
// as not revoked.
func (s *TokenStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if tokenID == "" {
		return false, nil
	}
	data, err := s.cache.Get(ctx, revokedTokenKeyPrefix+tokenID)
	if err != nil {
		return false, nil
	}
	return data != nil, nil
}
