package query

import "github.com/freightline/tms-backend/internal/core/domain"

const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// Page is one page of a filtered, sorted shipment sequence plus the counts a
// client needs to render a pager.
type Page struct {
	Items      []domain.Shipment
	TotalCount int
	Page       int
	PageSize   int
	TotalPages int
}

// ApplyPagination slices items down to the requested page. Page is 1-based
// and clamped into [1, totalPages]; an out-of-range page is never an error.
func ApplyPagination(items []domain.Shipment, page, pageSize int) Page {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if page <= 0 {
		page = DefaultPage
	}

	totalCount := len(items)
	totalPages := (totalCount + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > totalCount {
		start = totalCount
	}
	if end > totalCount {
		end = totalCount
	}

	return Page{
		Items:      items[start:end],
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}

// Params bundles one full list query.
type Params struct {
	Filter    Filter
	SortBy    string
	SortOrder string
	Page      int
	PageSize  int
}

// Apply runs the whole pipeline over a snapshot.
func Apply(items []domain.Shipment, p Params) Page {
	filtered := ApplyFilter(items, p.Filter)
	sorted := ApplySort(filtered, p.SortBy, p.SortOrder)
	return ApplyPagination(sorted, p.Page, p.PageSize)
}
