package models

import (
	"errors"
	"strconv"
	"time"
)

const (
	DefaultTransactionPageSize = 10
	MaxTransactionPageSize     = 100
	DefaultMerchantPageSize    = 100

	DateLayout = "2006-01-02"
)

var (
	ErrMerchantIDRequired = errors.New("merchant id is required")
	ErrInvalidDateRange   = errors.New("start date must not be after end date")
	ErrInvalidPageSize    = errors.New("page size must be between 1 and 100")
	ErrInvalidDate        = errors.New("dates must use the YYYY-MM-DD format")
)

// TransactionKey is the fetch key of the transaction dashboard. Any change to
// it restarts polling against the upstream.
type TransactionKey struct {
	MerchantID string `json:"merchantId"`
	StartDate  string `json:"startDate,omitempty"`
	EndDate    string `json:"endDate,omitempty"`
	Status     string `json:"status,omitempty"`
	Page       int    `json:"page"`
	Size       int    `json:"size"`
}

// DefaultTransactionKey returns the key shown when the dashboard opens
func DefaultTransactionKey(merchantID string) TransactionKey {
	return TransactionKey{
		MerchantID: merchantID,
		Page:       0,
		Size:       DefaultTransactionPageSize,
	}
}

// Params renders the key as upstream query parameters
func (k TransactionKey) Params() map[string]string {
	params := map[string]string{
		"merchantId": k.MerchantID,
		"page":       strconv.Itoa(k.Page),
		"size":       strconv.Itoa(k.Size),
	}
	if k.StartDate != "" {
		params["startDate"] = k.StartDate
	}
	if k.EndDate != "" {
		params["endDate"] = k.EndDate
	}
	if k.Status != "" {
		params["status"] = k.Status
	}
	return params
}

// WithFilters returns a copy with new date/status filters and the page reset
func (k TransactionKey) WithFilters(startDate, endDate, status string) TransactionKey {
	k.StartDate = startDate
	k.EndDate = endDate
	k.Status = status
	k.Page = 0
	return k
}

// WithPage returns a copy pointing at another server-side page
func (k TransactionKey) WithPage(page int) TransactionKey {
	if page < 0 {
		page = 0
	}
	k.Page = page
	return k
}

// Validate checks the key before it is sent upstream
func (k TransactionKey) Validate() error {
	if k.MerchantID == "" {
		return ErrMerchantIDRequired
	}
	if k.Size < 1 || k.Size > MaxTransactionPageSize {
		return ErrInvalidPageSize
	}

	var start, end time.Time
	var err error
	if k.StartDate != "" {
		if start, err = time.Parse(DateLayout, k.StartDate); err != nil {
			return ErrInvalidDate
		}
	}
	if k.EndDate != "" {
		if end, err = time.Parse(DateLayout, k.EndDate); err != nil {
			return ErrInvalidDate
		}
	}
	if !start.IsZero() && !end.IsZero() && start.After(end) {
		return ErrInvalidDateRange
	}
	return nil
}

// MerchantListKey is the fetch key of the merchant list. The upstream returns
// every merchant in one call so the key carries no parameters.
type MerchantListKey struct{}

func (MerchantListKey) Params() map[string]string {
	return map[string]string{}
}

// Filter holds the client-side filter inputs of a view. Empty fields match
// everything.
type Filter struct {
	Search   string `json:"search"`
	Status   string `json:"status"`
	Category string `json:"category"`
}

// IsZero reports whether the filter matches every record
func (f Filter) IsZero() bool {
	return f == Filter{}
}

// Pagination describes the page a view is showing
type Pagination struct {
	Page       int `json:"currentPage"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
}

// HasPrev reports whether a previous page exists
func (p Pagination) HasPrev() bool {
	return p.Page > 0
}

// HasNext reports whether a following page exists
func (p Pagination) HasNext() bool {
	return p.Page+1 < p.TotalPages
}
