package revocation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultPrefix = "revoked:jti"

// RedisStore keeps revoked token identifiers in Redis with a TTL matching
// the remaining token lifetime, so entries disappear exactly when the
// token would have expired anyway.
type RedisStore struct {
	client *redis.Client
	prefix string
}

var _ Store = (*RedisStore)(nil)

// NewRedisStore wraps an existing Redis client. An empty prefix falls back
// to "revoked:jti".
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	if prefix == "" {
		prefix = defaultPrefix
	}
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if s.client == nil {
		return errors.New("revocation: redis store is not initialized")
	}
	if tokenID == "" {
		return errors.New("revocation: token id is required")
	}
	if ttl <= 0 {
		return nil
	}

	if err := s.client.Set(ctx, s.key(tokenID), "1", ttl).Err(); err != nil {
		return fmt.Errorf("revocation: failed to store revoked token: %w", err)
	}
	return nil
}

func (s *RedisStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if s.client == nil {
		return false, errors.New("revocation: redis store is not initialized")
	}
	if tokenID == "" {
		return false, nil
	}

	n, err := s.client.Exists(ctx, s.key(tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("revocation: failed to query revoked token: %w", err)
	}
	return n > 0, nil
}

func (s *RedisStore) key(tokenID string) string {
	return s.prefix + ":" + tokenID
}
