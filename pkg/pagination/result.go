package pagination

import "slices"

// Result is one page of a paginated collection together with its totals.
// It is immutable; the zero value is an empty single page.
type Result[T any] struct {
	items              []T
	settings           Settings
	pagesTotalMinusOne uint
	itemsTotal         uint
}

// Items returns a copy of the page items in the order fetch returned them.
func (r Result[T]) Items() []T { return slices.Clone(r.items) }

// Len is the number of items on this page.
func (r Result[T]) Len() int { return len(r.items) }

// Settings are the effective settings; the index may be lower than the one requested.
func (r Result[T]) Settings() Settings { return r.settings }

// PageIndex is shorthand for Settings().PageIndex().
func (r Result[T]) PageIndex() uint { return r.settings.PageIndex() }

// PageSize is shorthand for Settings().PageSize().
func (r Result[T]) PageSize() uint { return r.settings.PageSize() }

// PagesTotal is the number of pages, at least 1.
func (r Result[T]) PagesTotal() uint { return r.pagesTotalMinusOne + 1 }

// ItemsTotal is the caller-supplied size of the whole collection.
func (r Result[T]) ItemsTotal() uint { return r.itemsTotal }

// HasOtherPages reports whether the collection spans more than one page.
func (r Result[T]) HasOtherPages() bool { return r.PagesTotal() > 1 }

// HasPrevPage reports whether a page precedes the current one.
func (r Result[T]) HasPrevPage() bool { return r.PageIndex() > 1 }

// HasNextPage reports whether a page follows the current one.
func (r Result[T]) HasNextPage() bool { return r.PageIndex() < r.PagesTotal() }

// Map applies fn to every item and keeps all metadata.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	var items []U
	if r.items != nil {
		items = make([]U, len(r.items))
		for i, it := range r.items {
			items[i] = fn(it)
		}
	}
	return Result[U]{
		items:              items,
		settings:           r.settings,
		pagesTotalMinusOne: r.pagesTotalMinusOne,
		itemsTotal:         r.itemsTotal,
	}
}

// Zip combines the items of a and b pairwise with fn. Metadata is taken from a.
// When the pages differ in length the extra items of the longer one are dropped.
func Zip[A, B, C any](a Result[A], b Result[B], fn func(A, B) C) Result[C] {
	n := min(len(a.items), len(b.items))
	var items []C
	if a.items != nil && b.items != nil {
		items = make([]C, n)
		for i := 0; i < n; i++ {
			items[i] = fn(a.items[i], b.items[i])
		}
	}
	return Result[C]{
		items:              items,
		settings:           a.settings,
		pagesTotalMinusOne: a.pagesTotalMinusOne,
		itemsTotal:         a.itemsTotal,
	}
}
