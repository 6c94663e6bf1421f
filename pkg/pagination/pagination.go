package pagination

import "strings"

const (
	DefaultPage    = 1
	DefaultPerPage = 10
	MaxPerPage     = 100

	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"
)

// Params carries the list query knobs shared by every collection endpoint.
type Params struct {
	Page      int
	PerPage   int
	SortBy    string
	SortOrder string
	Search    string
	All       bool
}

// Normalize clamps the params into their valid ranges and lowercases the sort
// order, falling back to descending when the value is unrecognized.
func (p Params) Normalize() Params {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.PerPage < 1 {
		p.PerPage = DefaultPerPage
	}
	if p.PerPage > MaxPerPage {
		p.PerPage = MaxPerPage
	}
	order := strings.ToLower(strings.TrimSpace(p.SortOrder))
	if order != SortOrderAsc && order != SortOrderDesc {
		order = SortOrderDesc
	}
	p.SortOrder = order
	p.Search = strings.TrimSpace(p.Search)
	return p
}

// Offset returns the row offset for the current page.
func (p Params) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// Meta describes the window a list response covers.
type Meta struct {
	HasNext     bool  `json:"hasNext"`
	HasPrevious bool  `json:"hasPrevious"`
	Page        int   `json:"page"`
	PerPage     int   `json:"perPage"`
	Total       int64 `json:"total"`
}

// GenerateMeta computes the window metadata for a total row count. When the
// paging bypass is set the whole result is one window, so the effective page
// size becomes the total.
func GenerateMeta(params Params, total int64) Meta {
	page := int64(params.Page)
	take := int64(params.PerPage)
	perPage := params.PerPage
	if params.All {
		take = total
		perPage = int(total)
	}

	hasNext := total > take*page
	hasPrevious := params.Page != 1 &&
		((page-1)*take <= total || (page-1)*take-(total+take) < 0)

	return Meta{
		HasNext:     hasNext,
		HasPrevious: hasPrevious,
		Page:        params.Page,
		PerPage:     perPage,
		Total:       total,
	}
}
