package repositories

import (
	"context"
	"time"
)

// ClaimStore holds short-lived exclusive claims on external transaction ids.
type ClaimStore interface {
	// Acquire claims key for ttl. It returns false when someone else holds the claim.
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)

	// Release drops a claim acquired earlier.
	Release(ctx context.Context, key string) error
}
