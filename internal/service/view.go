package service

import "github.com/maxviazov/pagination/pkg/pagination"

// PageView is a pagination.Result flattened for JSON and page-navigation widgets.
type PageView[T any] struct {
	Items         []T  `json:"items"`
	Page          uint `json:"page"`
	RequestedPage uint `json:"requested_page"`
	Clamped       bool `json:"clamped"`
	PageSize      uint `json:"page_size"`
	PagesTotal    uint `json:"pages_total"`
	ItemsTotal    uint `json:"items_total"`

	HasOtherPages bool  `json:"has_other_pages"`
	HasPrev       bool  `json:"has_prev"`
	HasNext       bool  `json:"has_next"`
	PrevPage      *uint `json:"prev_page,omitempty"`
	NextPage      *uint `json:"next_page,omitempty"`

	PageRange        []uint `json:"page_range"`
	BackwardEllipsis bool   `json:"backward_ellipsis"`
	ForwardEllipsis  bool   `json:"forward_ellipsis"`
}

// NewPageView derives the navigation fields of res for a window of spread pages
// on each side of the current one.
func NewPageView[T any](res pagination.Result[T], requested, spread uint) PageView[T] {
	items := res.Items()
	if items == nil {
		items = []T{}
	}
	page := res.PageIndex()

	v := PageView[T]{
		Items:            items,
		Page:             page,
		RequestedPage:    requested,
		Clamped:          requested != page,
		PageSize:         res.PageSize(),
		PagesTotal:       res.PagesTotal(),
		ItemsTotal:       res.ItemsTotal(),
		HasOtherPages:    res.HasOtherPages(),
		HasPrev:          res.HasPrevPage(),
		HasNext:          res.HasNextPage(),
		PageRange:        res.PageRange(spread),
		BackwardEllipsis: res.BackwardEllipsis(spread),
		ForwardEllipsis:  res.ForwardEllipsis(spread),
	}
	if v.HasPrev {
		prev := page - 1
		v.PrevPage = &prev
	}
	if v.HasNext {
		next := page + 1
		v.NextPage = &next
	}
	return v
}
