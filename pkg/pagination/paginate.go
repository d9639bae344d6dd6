package pagination

import "context"

// FetchFunc loads up to limit items starting at offset.
// It may block on I/O; ctx is handed through from Paginate untouched.
type FetchFunc[T any] func(ctx context.Context, offset, limit uint) ([]T, error)

// Paginate computes the page described by s over a collection of totalItems items
// and calls fetch exactly once for that page.
//
// A page index beyond the last page is clamped to the last page. An empty collection
// still has one (empty) page. Errors returned by fetch are passed back as is.
func Paginate[T any](ctx context.Context, s Settings, totalItems uint, fetch FetchFunc[T]) (Result[T], error) {
	size := s.PageSize()

	pagesTotal := totalItems / size
	if totalItems%size != 0 {
		pagesTotal++
	}
	if pagesTotal == 0 {
		pagesTotal = 1
	}

	index := min(s.PageIndex(), pagesTotal)
	offset := (index - 1) * size

	items, err := fetch(ctx, offset, size)
	if err != nil {
		return Result[T]{}, err
	}

	return Result[T]{
		items:              items,
		settings:           Settings{sizeMinusOne: size - 1, indexMinusOne: index - 1},
		pagesTotalMinusOne: pagesTotal - 1,
		itemsTotal:         totalItems,
	}, nil
}
