package repository

import "context"

// Pinger represents a minimal readiness probe capability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Counter reports how many items a collection holds.
type Counter interface {
	Count(ctx context.Context) (uint, error)
}

// Source is a collection that can be counted and read one window at a time.
// Fetch has the shape of pagination.FetchFunc so it can be passed straight to Paginate.
type Source[T any] interface {
	Counter
	Fetch(ctx context.Context, offset, limit uint) ([]T, error)
}

// TxFunc is the unit of work executed within a transaction boundary.
type TxFunc func(ctx context.Context) error

// TxManager runs fn inside one read snapshot so a count and the page fetched
// after it see the same rows.
type TxManager interface {
	WithinSnapshot(ctx context.Context, fn TxFunc) error
}
