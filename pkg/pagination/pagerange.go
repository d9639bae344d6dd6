package pagination

// PageRange returns the page numbers to show around the current page, spread pages on
// each side. Near either end the window slides so it keeps its length while staying
// inside [1, PagesTotal]. The result is never empty and strictly ascending.
func (r Result[T]) PageRange(spread uint) []uint {
	index := r.PageIndex()
	if spread == 0 {
		return []uint{index}
	}

	total := r.PagesTotal()
	windowLen := total
	// 2*spread+1 < total, written so neither side can wrap.
	if spread < total/2 {
		windowLen = 2*spread + 1
	}

	var shift uint
	switch {
	case index <= spread:
		shift = 0
	case index >= total-spread: // spread < index <= total here
		shift = total - windowLen
	default:
		shift = index - spread - 1
	}

	pages := make([]uint, windowLen)
	for i := range pages {
		pages[i] = uint(i) + 1 + shift
	}
	return pages
}

// BackwardEllipsis reports whether at least one page is hidden between page 1
// and the start of PageRange(spread).
func (r Result[T]) BackwardEllipsis(spread uint) bool {
	pages := r.PageRange(spread)
	return pages[0] > 2
}

// ForwardEllipsis reports whether at least one page is hidden between the end of
// PageRange(spread) and the last page.
func (r Result[T]) ForwardEllipsis(spread uint) bool {
	pages := r.PageRange(spread)
	return pages[len(pages)-1] < r.PagesTotal()-1
}
