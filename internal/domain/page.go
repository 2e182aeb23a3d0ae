package domain

// PaginationParams carries page/limit values from the HTTP layer to the
// services. Page is 1-indexed. Limit is capped at 100 by NewPaginationParams.
type PaginationParams struct {
	Page  int
	Limit int
}

// NewPaginationParams builds a PaginationParams from optional query params.
// Nil pointers fall back to page=1, limit=20.
func NewPaginationParams(page, limit *int) PaginationParams {
	p := PaginationParams{Page: 1, Limit: 20}
	if page != nil && *page >= 1 {
		p.Page = *page
	}
	if limit != nil && *limit >= 1 {
		p.Limit = min(*limit, 100)
	}
	return p
}

// Offset returns the zero-based index of the first item on the page.
func (p PaginationParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Bounds returns the half-open [lo, hi) slice bounds of the page within a
// list of total items. Pages past the end yield an empty range.
func (p PaginationParams) Bounds(total int) (int, int) {
	lo := min(p.Offset(), total)
	hi := min(lo+p.Limit, total)
	return lo, hi
}
