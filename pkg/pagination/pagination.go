package pagination

import (
	"math"
	"strconv"
)

const (
	// DefaultPage first page
	DefaultPage = 1
	// DefaultLimit page size when none is given
	DefaultLimit = 10
	// MaxLimit upper bound of a page
	MaxLimit = 100
)

// Page is a slice of results plus the paging totals
type Page[T any] struct {
	Items           []T   `json:"items"`
	TotalResults    int64 `json:"totalResults"`
	Page            int   `json:"page"`
	Limit           int   `json:"limit"`
	TotalPages      int   `json:"totalPages"`
	HasNextPage     bool  `json:"hasNextPage"`
	HasPreviousPage bool  `json:"hasPreviousPage"`
}

// Params page & limit requested by the caller
type Params struct {
	Page  int
	Limit int
}

// Parse read page/limit query values, falling back to defaults on bad input
func Parse(page, limit string) Params {
	p := Params{Page: DefaultPage, Limit: DefaultLimit}
	if v, err := strconv.Atoi(page); err == nil {
		p.Page = v
	}
	if v, err := strconv.Atoi(limit); err == nil {
		p.Limit = v
	}
	return p.Normalize()
}

// Normalize clamp page >= 1 and 1 <= limit <= MaxLimit
func (p Params) Normalize() Params {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	// (page-1)*limit 必須放得進 int64
	if maxPage := math.MaxInt64 / int64(p.Limit); int64(p.Page) > maxPage {
		p.Page = int(maxPage)
	}
	return p
}

// Skip number of documents before the page
func (p Params) Skip() int64 {
	if p.Page <= 1 || p.Limit <= 0 {
		return 0
	}
	if int64(p.Page-1) > math.MaxInt64/int64(p.Limit) {
		return math.MaxInt64
	}
	return int64(p.Page-1) * int64(p.Limit)
}

// TotalPages ceil(total/limit)
func TotalPages(total int64, limit int) int {
	if limit <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

// New assemble a Page from the items of one page and the total match count
func New[T any](items []T, total int64, p Params) Page[T] {
	if items == nil {
		items = []T{}
	}
	totalPages := TotalPages(total, p.Limit)
	return Page[T]{
		Items:           items,
		TotalResults:    total,
		Page:            p.Page,
		Limit:           p.Limit,
		TotalPages:      totalPages,
		HasNextPage:     p.Page < totalPages,
		HasPreviousPage: p.Page > 1,
	}
}
