package models

import (
	"time"
)

// Attribute names understood by Record.Attribute
const (
	AttrStatus   = "status"
	AttrCategory = "category"
)

// Record is a single item of a polled collection. Identity is by RecordID;
// SearchText lists the fields free-text search runs against and Attribute
// exposes the fields equality filters compare.
type Record interface {
	RecordID() string
	SearchText() []string
	Attribute(name string) string
}

// FetchKey identifies what collection a poll controller fetches. Keys are
// compared by value: equal keys keep the running schedule.
type FetchKey interface {
	comparable
	Params() map[string]string
}

// Page is the result of one fetch from the upstream source
type Page[T any] struct {
	Records    []T
	TotalCount int
	Page       int
	Size       int
}

// Snapshot is the product of exactly one completed fetch. It is never
// modified after construction; a newer fetch replaces the whole value.
type Snapshot[T any] struct {
	Records       []T               `json:"records"`
	TotalCount    int               `json:"totalCount"`
	Page          int               `json:"page"`
	Size          int               `json:"size"`
	RequestParams map[string]string `json:"requestParams"`
	FetchedAt     time.Time         `json:"fetchedAt"`
	Sequence      uint64            `json:"sequence"`
}

// NewSnapshot freezes a fetched page into a snapshot. The records slice is
// copied so later changes to the caller's slice cannot leak in.
func NewSnapshot[T any](page Page[T], params map[string]string, seq uint64, fetchedAt time.Time) *Snapshot[T] {
	records := make([]T, len(page.Records))
	copy(records, page.Records)

	copied := make(map[string]string, len(params))
	for k, v := range params {
		copied[k] = v
	}

	total := page.TotalCount
	if total < len(records) {
		total = len(records)
	}

	return &Snapshot[T]{
		Records:       records,
		TotalCount:    total,
		Page:          page.Page,
		Size:          page.Size,
		RequestParams: copied,
		FetchedAt:     fetchedAt,
		Sequence:      seq,
	}
}

// Len returns the number of records held; a nil snapshot has none
func (s *Snapshot[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Records)
}
