package service

import (
	"errors"
	"strconv"

	"github.com/maxviazov/pagination/internal/config"
	"github.com/maxviazov/pagination/pkg/pagination"
)

// PageRequest is what a caller asks for. A zero PageSize means "use the default";
// a zero Page is rejected, pages are numbered from 1.
type PageRequest struct {
	Page     uint `json:"page"`
	PageSize uint `json:"page_size"`
}

// settingsFor applies defaults and limits, then builds pagination settings.
// Every problem is reported as a FieldError under ErrInvalidInput.
func settingsFor(req PageRequest, limits config.PaginationConfig) (pagination.Settings, error) {
	size := req.PageSize
	if size == 0 {
		size = limits.DefaultPageSize
	}

	var ferrs []FieldError
	if limits.MaxPageSize > 0 && size > limits.MaxPageSize {
		ferrs = append(ferrs, FieldError{Field: "page_size", Message: "must be <= " + strconv.FormatUint(uint64(limits.MaxPageSize), 10)})
	}

	s, err := pagination.NewSettings(size, req.Page)
	switch {
	case errors.Is(err, pagination.ErrZeroPageSize):
		ferrs = append(ferrs, FieldError{Field: "page_size", Message: "must be > 0"})
		// index is checked after size; report it too so clients see both problems at once
		if req.Page == 0 {
			ferrs = append(ferrs, FieldError{Field: "page", Message: "must be > 0"})
		}
	case errors.Is(err, pagination.ErrZeroPageIndex):
		ferrs = append(ferrs, FieldError{Field: "page", Message: "must be > 0"})
	}

	if err := newInvalidInput(ferrs); err != nil {
		return pagination.Settings{}, err
	}
	return s, nil
}
