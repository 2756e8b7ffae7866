package view

import (
	"sync"

	"merchant-dashboard/internal/models"
)

// View memoizes Derive for one dashboard. The result is recomputed only when
// the snapshot pointer, the filter, the page or the page size changes.
type View[T models.Record] struct {
	mu       sync.Mutex
	pageSize int
	filter   models.Filter
	pred     Predicate[T]
	page     int

	cachedFor *models.Snapshot[T]
	cached    Result[T]
	valid     bool

	recomputations int
}

// New creates a view with the given page size
func New[T models.Record](pageSize int) *View[T] {
	if pageSize < 1 {
		pageSize = 1
	}
	return &View[T]{
		pageSize: pageSize,
		pred:     MatchAll[T](),
	}
}

// SetFilter replaces the filter. When it actually changes the page resets to
// 0 and true is returned.
func (v *View[T]) SetFilter(filter models.Filter) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	if filter == v.filter {
		return false
	}
	v.filter = filter
	v.pred = NewPredicate[T](filter)
	v.page = 0
	v.valid = false
	return true
}

// SetPage requests a page; it is clamped on the next Result call
func (v *View[T]) SetPage(page int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if page < 0 {
		page = 0
	}
	if page == v.page {
		return
	}
	v.page = page
	v.valid = false
}

func (v *View[T]) Filter() models.Filter {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.filter
}

func (v *View[T]) PageSize() int {
	return v.pageSize
}

// Result returns the derived view of snapshot. The clamped page is stored
// back so later navigation starts from a valid page.
func (v *View[T]) Result(snapshot *models.Snapshot[T]) Result[T] {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.valid && v.cachedFor == snapshot {
		return v.cached
	}

	result := Derive(snapshot, v.pred, v.page, v.pageSize)
	v.page = result.Page
	v.cached = result
	v.cachedFor = snapshot
	v.valid = true
	v.recomputations++
	return result
}

// Recomputations counts how many times Derive actually ran
func (v *View[T]) Recomputations() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.recomputations
}
