package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/maxviazov/pagination/internal/config"
)

// NewStore picks the backend named by cfg.Backend:
//   - "none": totals are never cached
//   - "local" or "": in-memory store
//   - "redis": Redis-compatible store at cfg.RedisURL
func NewStore(ctx context.Context, cfg config.CacheConfig, logger zerolog.Logger) (Store, error) {
	switch cfg.Backend {
	case "none":
		logger.Info().Msg("count cache disabled")
		return nopStore{}, nil
	case "local", "":
		logger.Info().Msg("using in-memory count cache")
		return NewMemoryStore(10 * time.Minute), nil
	case "redis":
		if cfg.RedisURL == "" {
			return nil, fmt.Errorf("redis_url is required for redis count cache")
		}
		store, err := NewRedisStore(ctx, cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		logger.Info().Msg("using redis count cache")
		return store, nil
	default:
		return nil, fmt.Errorf("unknown count cache backend: %s (valid options: none, local, redis)", cfg.Backend)
	}
}

// nopStore never holds anything.
type nopStore struct{}

func (nopStore) Get(context.Context, string) (uint, bool, error)        { return 0, false, nil }
func (nopStore) Set(context.Context, string, uint, time.Duration) error { return nil }
func (nopStore) Invalidate(context.Context, string) error               { return nil }
func (nopStore) Close() error                                           { return nil }
