package utils

import "math"

// Pagination represents the pagination details returned alongside lists.
type Pagination struct {
	TotalItems  int `json:"totalItems"`
	CurrentPage int `json:"currentPage"`
	PageSize    int `json:"pageSize"`
	TotalPages  int `json:"totalPages"`
}

// CreatePagination creates a Pagination object, defaulting page to 1 and
// pageSize to 10 when out of range.
func CreatePagination(totalItems, page, pageSize int) *Pagination {
	if pageSize <= 0 {
		pageSize = 10
	}
	if page <= 0 {
		page = 1
	}

	totalPages := int(math.Ceil(float64(totalItems) / float64(pageSize)))

	return &Pagination{
		TotalItems:  totalItems,
		CurrentPage: page,
		PageSize:    pageSize,
		TotalPages:  totalPages,
	}
}

// Bounds returns the [start, end) slice indexes of the current page for an
// in-memory list of totalItems entries.
func (p *Pagination) Bounds() (int, int) {
	start := (p.CurrentPage - 1) * p.PageSize
	if start > p.TotalItems {
		start = p.TotalItems
	}
	end := start + p.PageSize
	if end > p.TotalItems {
		end = p.TotalItems
	}
	return start, end
}
