// Package cache holds the redis-backed repositories.
package cache

import (
	"context"
	"fmt"
	"time"

	portsrepo "github.com/SscSPs/wallet_ledger_backend/internal/core/ports/repositories"
	"github.com/redis/go-redis/v9"
)

const claimKeyPrefix = "wallet:claim:"

// RedisClaimStore keeps in-flight claims as SET NX keys with a TTL.
type RedisClaimStore struct {
	client redis.Cmdable
}

// NewRedisClaimStore creates a claim store on an existing client.
func NewRedisClaimStore(client redis.Cmdable) *RedisClaimStore {
	return &RedisClaimStore{client: client}
}

var _ portsrepo.ClaimStore = (*RedisClaimStore)(nil)

// Acquire sets the claim key if it is absent.
func (r *RedisClaimStore) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := r.client.SetNX(ctx, claimKeyPrefix+key, "1", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire claim %s: %w", key, err)
	}
	return ok, nil
}

// Release deletes the claim key.
func (r *RedisClaimStore) Release(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, claimKeyPrefix+key).Err(); err != nil {
		return fmt.Errorf("failed to release claim %s: %w", key, err)
	}
	return nil
}
