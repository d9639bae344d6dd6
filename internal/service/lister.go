package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/maxviazov/pagination/internal/config"
	"github.com/maxviazov/pagination/internal/repository"
	"github.com/maxviazov/pagination/pkg/pagination"
)

// Lister serves pages of one collection. The total always comes from the counter,
// never from the fetched page.
type Lister[T any] struct {
	counter repository.Counter
	fetch   pagination.FetchFunc[T]
	tx      repository.TxManager
	limits  config.PaginationConfig
	log     zerolog.Logger
}

// NewLister wires a listing use case. tx may be nil; when set, count and fetch
// run inside one read snapshot.
func NewLister[T any](counter repository.Counter, fetch pagination.FetchFunc[T], tx repository.TxManager, limits config.PaginationConfig, logger zerolog.Logger) *Lister[T] {
	l := logger.With().Str("module", "service").Str("component", "lister").Logger()
	return &Lister[T]{counter: counter, fetch: fetch, tx: tx, limits: limits, log: l}
}

// NewSourceLister is NewLister for a source that both counts and fetches.
func NewSourceLister[T any](src repository.Source[T], tx repository.TxManager, limits config.PaginationConfig, logger zerolog.Logger) *Lister[T] {
	return NewLister[T](src, src.Fetch, tx, limits, logger)
}

// List validates req and returns the requested page. A page past the end is
// clamped to the last page rather than rejected.
func (s *Lister[T]) List(ctx context.Context, req PageRequest) (PageView[T], error) {
	start := time.Now()

	settings, err := settingsFor(req, s.limits)
	if err != nil {
		s.log.Debug().Interface("field_errors", FieldErrors(err)).Uint("page", req.Page).Uint("page_size", req.PageSize).Msg("page request validation failed")
		return PageView[T]{}, err
	}

	var res pagination.Result[T]
	load := func(ctx context.Context) error {
		total, err := s.counter.Count(ctx)
		if err != nil {
			return err
		}
		res, err = pagination.Paginate(ctx, settings, total, s.fetch)
		return err
	}

	if s.tx != nil {
		err = s.tx.WithinSnapshot(ctx, load)
	} else {
		err = load(ctx)
	}
	if err != nil {
		// Sources surface domain errors already, do not wrap.
		s.log.Error().Err(err).Uint("page", settings.PageIndex()).Uint("page_size", settings.PageSize()).Msg("list page failed")
		return PageView[T]{}, err
	}

	s.log.Debug().
		Dur("took", time.Since(start)).
		Uint("page", res.PageIndex()).
		Uint("pages_total", res.PagesTotal()).
		Uint("items_total", res.ItemsTotal()).
		Int("items", res.Len()).
		Msg("page listed")

	return NewPageView(res, settings.PageIndex(), s.limits.Spread), nil
}
