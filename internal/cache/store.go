// Package cache keeps item totals around between page requests.
//
// Counting a large table is often the most expensive part of serving a page,
// and the total rarely changes between two clicks on "next".
package cache

import (
	"context"
	"time"
)

// Store holds item totals keyed by collection.
// Backends:
//   - Memory: single instance, no external dependencies
//   - Redis: shared between instances (also Dragonfly, Valkey, KeyDB)
type Store interface {
	// Get returns the cached total and whether one was present and unexpired.
	Get(ctx context.Context, key string) (uint, bool, error)

	// Set stores n for key; ttl <= 0 means no expiry.
	Set(ctx context.Context, key string, n uint, ttl time.Duration) error

	// Invalidate drops key, e.g. after the caller inserted or deleted rows.
	Invalidate(ctx context.Context, key string) error

	// Close releases resources.
	Close() error
}
