// Package pagination computes page windows over a collection whose size is known up front.
//
// A caller validates the requested page with NewSettings, supplies the total item count
// it obtained elsewhere (usually a COUNT query) and a FetchFunc, and gets back a Result
// describing the page: its items, the effective page index and the totals needed to
// render navigation controls.
package pagination

// Settings is a validated (page size, page index) pair. Page indexes are 1-based.
//
// Fields are stored minus one so that the zero value reads as size 1, index 1
// and no Settings value can ever report a zero size or index.
type Settings struct {
	sizeMinusOne  uint
	indexMinusOne uint
}

// NewSettings validates and builds Settings.
// Page size is checked before page index.
func NewSettings(pageSize, pageIndex uint) (Settings, error) {
	if pageSize == 0 {
		return Settings{}, ErrZeroPageSize
	}
	if pageIndex == 0 {
		return Settings{}, ErrZeroPageIndex
	}
	return Settings{sizeMinusOne: pageSize - 1, indexMinusOne: pageIndex - 1}, nil
}

// PageSize is the number of items per page, always > 0.
func (s Settings) PageSize() uint { return s.sizeMinusOne + 1 }

// PageIndex is the 1-based page number, always > 0.
func (s Settings) PageIndex() uint { return s.indexMinusOne + 1 }
