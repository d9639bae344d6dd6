package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// Domain-level errors I prefer to bubble up from repository implementations.
var (
	ErrUnknownRelation  = errors.New("unknown table or column")
	ErrPermissionDenied = errors.New("permission denied")
	ErrInvalidQuery     = errors.New("invalid listing query")
)

// MapPgError translates the Postgres error codes a listing query can realistically hit.
// Everything else passes through untouched.
func MapPgError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UndefinedTable, pgerrcode.UndefinedColumn:
			return ErrUnknownRelation
		case pgerrcode.InsufficientPrivilege:
			return ErrPermissionDenied
		case pgerrcode.QueryCanceled:
			return context.Canceled
		}
	}
	return err
}
