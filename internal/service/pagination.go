package service

import "math"

const (
	defaultPageLimit = 10
	minPageLimit     = 5
	maxPageLimit     = 50

	defaultHistoryLimit = 20
	maxHistoryLimit     = 50

	// maxPage keeps (page-1)*limit far below the int64 OFFSET bound.
	maxPage = math.MaxInt32
)

// Page describes the position of an offset-paged result.
type Page struct {
	Page       int
	Limit      int
	Total      int
	TotalPages int
	HasNext    bool
	HasPrev    bool
}

// Offset returns the row offset for the page.
func (p Page) Offset() int {
	return (p.Page - 1) * p.Limit
}

// normalizePage clamps the requested page and limit. A missing limit gets the default;
// anything else is clamped into [minPageLimit, maxPageLimit].
func normalizePage(page, limit int) Page {
	if page < 1 {
		page = 1
	}
	if page > maxPage {
		page = maxPage
	}
	switch {
	case limit <= 0:
		limit = defaultPageLimit
	case limit < minPageLimit:
		limit = minPageLimit
	case limit > maxPageLimit:
		limit = maxPageLimit
	}
	return Page{Page: page, Limit: limit}
}

// withTotal fills in the counters derived from the total row count.
func (p Page) withTotal(total int) Page {
	p.Total = total
	p.TotalPages = (total + p.Limit - 1) / p.Limit
	p.HasNext = p.Page < p.TotalPages
	p.HasPrev = p.Page > 1
	return p
}

func normalizeHistoryLimit(limit int) int {
	if limit <= 0 {
		return defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		return maxHistoryLimit
	}
	return limit
}
