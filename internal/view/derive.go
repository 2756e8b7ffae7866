package view

import (
	"merchant-dashboard/internal/models"
)

// Result is one derived view of a snapshot. TotalPages is 0 for an empty
// result so navigation can be disabled.
type Result[T any] struct {
	Records       []T `json:"visibleRecords"`
	TotalPages    int `json:"totalPages"`
	Page          int `json:"currentPage"`
	PageSize      int `json:"pageSize"`
	FilteredCount int `json:"filteredCount"`
}

// Pagination returns the navigation state of the result
func (r Result[T]) Pagination() models.Pagination {
	return models.Pagination{Page: r.Page, PageSize: r.PageSize, TotalPages: r.TotalPages}
}

// TotalPages returns ceil(count/pageSize)
func TotalPages(count, pageSize int) int {
	if count <= 0 || pageSize <= 0 {
		return 0
	}
	return (count + pageSize - 1) / pageSize
}

// ClampPage bounds page to [0, max(totalPages-1, 0)]
func ClampPage(page, totalPages int) int {
	last := totalPages - 1
	if last < 0 {
		last = 0
	}
	if page > last {
		page = last
	}
	if page < 0 {
		page = 0
	}
	return page
}

// Derive filters snapshot with pred, preserving order, and slices out the
// requested page. A page past the end is clamped, never an error. A
// pageSize below one is treated as one.
func Derive[T models.Record](snapshot *models.Snapshot[T], pred Predicate[T], page, pageSize int) Result[T] {
	if pageSize < 1 {
		pageSize = 1
	}
	if pred == nil {
		pred = MatchAll[T]()
	}

	filtered := make([]T, 0, snapshot.Len())
	if snapshot != nil {
		for _, record := range snapshot.Records {
			if pred(record) {
				filtered = append(filtered, record)
			}
		}
	}

	totalPages := TotalPages(len(filtered), pageSize)
	page = ClampPage(page, totalPages)

	start := page * pageSize
	end := start + pageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	if start > end {
		start = end
	}

	return Result[T]{
		Records:       filtered[start:end:end],
		TotalPages:    totalPages,
		Page:          page,
		PageSize:      pageSize,
		FilteredCount: len(filtered),
	}
}
