// Command pagedump prints one page of a Postgres table as JSON, navigation metadata included.
// What to list comes from config.yaml (override with APP_LISTING_PAGE and friends).
package main

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/maxviazov/pagination/internal/cache"
	"github.com/maxviazov/pagination/internal/config"
	"github.com/maxviazov/pagination/internal/logger"
	"github.com/maxviazov/pagination/internal/repository"
	"github.com/maxviazov/pagination/internal/repository/postgres"
	"github.com/maxviazov/pagination/internal/service"
	"github.com/maxviazov/pagination/pkg/response"
)

func main() {
	path := os.Getenv("APP_CONFIG")
	if path == "" {
		path = "config.yaml"
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("❌ Config loading failed: %v", err)
	}

	appLogger, err := logger.New(logToStderr(cfg))
	if err != nil {
		log.Fatalf("❌ Logger initialization failed: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, cfg, appLogger, os.Stdout)
	stop()
	os.Exit(code)
}

// logToStderr keeps stdout for the JSON document whatever the config says.
func logToStderr(cfg *config.Config) *logger.LoggerConfig {
	cfg.Logger.OutputTarget = "stderr"
	return &cfg.Logger
}

// run writes exactly one JSON document to out: the page view or an error payload.
func run(ctx context.Context, cfg *config.Config, appLogger zerolog.Logger, out io.Writer) int {
	repo, err := repository.New(ctx, cfg, &appLogger)
	if err != nil {
		appLogger.Error().Err(err).Msg("postgres connection failed")
		return 1
	}
	defer repo.Close()

	store, err := cache.NewStore(ctx, cfg.Cache, logger.For(appLogger, "cache", "store"))
	if err != nil {
		appLogger.Error().Err(err).Msg("count cache initialization failed")
		return 1
	}
	defer store.Close()

	src, err := postgres.NewMapSource(repo.Pool(), postgres.TableQuery{
		Table:   cfg.Listing.Table,
		Columns: cfg.Listing.Columns,
		OrderBy: cfg.Listing.OrderBy,
	})
	if err != nil {
		appLogger.Error().Err(err).Str("table", cfg.Listing.Table).Msg("invalid listing query")
		return 1
	}

	counter := cache.NewCachedCounter(src, store, "table:"+cfg.Listing.Table, time.Duration(cfg.Cache.TTL)*time.Second, appLogger)
	lister := service.NewLister[map[string]any](counter, src.Fetch, postgres.NewTxManager(repo.Pool()), cfg.Pagination, appLogger)

	view, err := lister.List(ctx, service.PageRequest{Page: cfg.Listing.Page, PageSize: cfg.Listing.PageSize})
	if err != nil {
		status, payload := response.MapError(err)
		appLogger.Error().Err(err).Int("status", status).Msg("listing failed")
		_ = writeJSON(out, payload)
		return 2
	}
	if err := writeJSON(out, view); err != nil {
		appLogger.Error().Err(err).Msg("write page failed")
		return 1
	}
	appLogger.Info().Uint("page", view.Page).Uint("pages_total", view.PagesTotal).Msg("✅ page written")
	return 0
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
