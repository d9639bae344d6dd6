package postgres

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/maxviazov/pagination/internal/repository"
)

// TableQuery describes which rows of a table a TableSource pages through.
// Names come from configuration, never from request input, and are quoted anyway.
type TableQuery struct {
	// Table may be schema qualified: "public.articles".
	Table string
	// Columns to select; empty selects every column.
	Columns []string
	// OrderBy entries are "column" or "column desc". Without an order, page
	// boundaries are not stable between queries.
	OrderBy []string
}

// Build validates q and renders the COUNT and page statements.
func (q TableQuery) Build() (countSQL, pageSQL string, err error) {
	table, err := quoteQualified(q.Table)
	if err != nil {
		return "", "", err
	}

	cols := "*"
	if len(q.Columns) > 0 {
		quoted := make([]string, 0, len(q.Columns))
		for _, c := range q.Columns {
			qc, err := quoteQualified(c)
			if err != nil {
				return "", "", err
			}
			quoted = append(quoted, qc)
		}
		cols = strings.Join(quoted, ", ")
	}

	var order string
	if len(q.OrderBy) > 0 {
		terms := make([]string, 0, len(q.OrderBy))
		for _, o := range q.OrderBy {
			term, err := orderTerm(o)
			if err != nil {
				return "", "", err
			}
			terms = append(terms, term)
		}
		order = " ORDER BY " + strings.Join(terms, ", ")
	}

	countSQL = "SELECT COUNT(*) FROM " + table
	pageSQL = "SELECT " + cols + " FROM " + table + order + " LIMIT $1 OFFSET $2"
	return countSQL, pageSQL, nil
}

func quoteQualified(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: empty identifier", repository.ErrInvalidQuery)
	}
	parts := strings.Split(name, ".")
	for _, p := range parts {
		if p == "" {
			return "", fmt.Errorf("%w: malformed identifier %q", repository.ErrInvalidQuery, name)
		}
	}
	return pgx.Identifier(parts).Sanitize(), nil
}

func orderTerm(raw string) (string, error) {
	fields := strings.Fields(raw)
	switch len(fields) {
	case 1:
		return quoteQualified(fields[0])
	case 2:
		col, err := quoteQualified(fields[0])
		if err != nil {
			return "", err
		}
		switch dir := strings.ToUpper(fields[1]); dir {
		case "ASC", "DESC":
			return col + " " + dir, nil
		}
	}
	return "", fmt.Errorf("%w: bad order term %q", repository.ErrInvalidQuery, raw)
}

// TableSource counts and fetches windows of a single table.
type TableSource[T any] struct {
	pool     querier
	scan     pgx.RowToFunc[T]
	countSQL string
	pageSQL  string
}

// NewTableSource builds a source scanning each row with scan,
// e.g. pgx.RowToStructByName[Article] or pgx.RowToMap.
func NewTableSource[T any](pool *pgxpool.Pool, q TableQuery, scan pgx.RowToFunc[T]) (*TableSource[T], error) {
	if err := ensurePool(pool); err != nil {
		return nil, err
	}
	return newTableSource(pool, q, scan)
}

func newTableSource[T any](db querier, q TableQuery, scan pgx.RowToFunc[T]) (*TableSource[T], error) {
	if scan == nil {
		return nil, fmt.Errorf("%w: row scanner is required", repository.ErrInvalidQuery)
	}
	countSQL, pageSQL, err := q.Build()
	if err != nil {
		return nil, err
	}
	return &TableSource[T]{pool: db, scan: scan, countSQL: countSQL, pageSQL: pageSQL}, nil
}

// NewMapSource is a TableSource yielding each row as column name -> value.
func NewMapSource(pool *pgxpool.Pool, q TableQuery) (*TableSource[map[string]any], error) {
	return NewTableSource[map[string]any](pool, q, pgx.RowToMap)
}

// Count implements repository.Counter.
func (s *TableSource[T]) Count(ctx context.Context) (uint, error) {
	var n int64
	if err := getQ(ctx, s.pool).QueryRow(ctx, s.countSQL).Scan(&n); err != nil {
		return 0, repository.MapPgError(err)
	}
	if n < 0 {
		return 0, nil
	}
	return uint(n), nil
}

// Fetch reads at most limit rows starting at offset.
func (s *TableSource[T]) Fetch(ctx context.Context, offset, limit uint) ([]T, error) {
	rows, err := getQ(ctx, s.pool).Query(ctx, s.pageSQL, toInt64(limit), toInt64(offset))
	if err != nil {
		return nil, repository.MapPgError(err)
	}
	items, err := pgx.CollectRows(rows, s.scan)
	if err != nil {
		return nil, repository.MapPgError(err)
	}
	return items, nil
}

func toInt64(v uint) int64 {
	if uint64(v) > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(v)
}

var _ repository.Source[map[string]any] = (*TableSource[map[string]any])(nil)
