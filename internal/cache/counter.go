package cache

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/maxviazov/pagination/internal/repository"
)

// CachedCounter serves totals from a Store and falls back to the wrapped counter.
// A failing store only costs a log line; the real count is still returned.
type CachedCounter struct {
	next  repository.Counter
	store Store
	key   string
	ttl   time.Duration
	log   zerolog.Logger
}

func NewCachedCounter(next repository.Counter, store Store, key string, ttl time.Duration, logger zerolog.Logger) *CachedCounter {
	l := logger.With().Str("module", "cache").Str("component", "counter").Str("key", key).Logger()
	return &CachedCounter{next: next, store: store, key: key, ttl: ttl, log: l}
}

// Count implements repository.Counter.
func (c *CachedCounter) Count(ctx context.Context) (uint, error) {
	n, ok, err := c.store.Get(ctx, c.key)
	switch {
	case err != nil:
		c.log.Warn().Err(err).Msg("count cache read failed")
	case ok:
		c.log.Debug().Uint("total", n).Msg("count cache hit")
		return n, nil
	}

	n, err = c.next.Count(ctx)
	if err != nil {
		return 0, err
	}
	if err := c.store.Set(ctx, c.key, n, c.ttl); err != nil {
		c.log.Warn().Err(err).Msg("count cache write failed")
	}
	return n, nil
}

// Invalidate forgets the cached total so the next Count hits the source.
func (c *CachedCounter) Invalidate(ctx context.Context) error {
	return c.store.Invalidate(ctx, c.key)
}

var _ repository.Counter = (*CachedCounter)(nil)
