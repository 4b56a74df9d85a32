package cache

import (
	"context"
	"fmt"
	"time"
)

// TokenCache is the revocation store for issued JWTs. Logout writes the
// token ID here with a TTL matching the remaining token lifetime; the JWT
// middleware rejects any token whose ID is present.
type TokenCache struct {
	redis *RedisClient
}

// NewTokenCache creates a new TokenCache.
func NewTokenCache(redis *RedisClient) *TokenCache {
	return &TokenCache{redis: redis}
}

func (c *TokenCache) key(tokenID string) string {
	return fmt.Sprintf("auth:revoked:%s", tokenID)
}

// Revoke marks a token ID as revoked until it would have expired anyway.
func (c *TokenCache) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		// Token already expired; nothing to store.
		return nil
	}
	return c.redis.Set(ctx, c.key(tokenID), "1", ttl)
}

// IsRevoked reports whether a token ID has been revoked.
func (c *TokenCache) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	return c.redis.Exists(ctx, c.key(tokenID))
}
