package dto

import (
	"time"

	"github.com/shopspring/decimal"

	apierrors "merchant-dashboard/internal/errors"
	"merchant-dashboard/internal/models"
	"merchant-dashboard/internal/view"
)

// FilterRequest sets the client-side filter of a dashboard
type FilterRequest struct {
	Search   string `json:"search" validate:"max=255"`
	Status   string `json:"status" validate:"max=50"`
	Category string `json:"category" validate:"max=100"`
}

func (r FilterRequest) ToFilter() models.Filter {
	return models.Filter{Search: r.Search, Status: r.Status, Category: r.Category}
}

// PageRequest selects a zero-based page
type PageRequest struct {
	Page int `json:"page" validate:"gte=0"`
}

// TransactionKeyRequest changes what the transaction dashboard polls
type TransactionKeyRequest struct {
	MerchantID string `json:"merchantId" validate:"required,max=64"`
	StartDate  string `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate    string `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
	Status     string `json:"status" validate:"omitempty,transaction_status"`
	Size       int    `json:"size" validate:"omitempty,gte=1,lte=100"`
}

// Ack is the outcome of a successful submit
type Ack struct {
	ID      string `json:"id,omitempty"`
	Message string `json:"message"`
}

// SummaryView is the summary card of the transaction dashboard
type SummaryView struct {
	TotalAmount       decimal.Decimal `json:"totalAmount"`
	FormattedTotal    string          `json:"formattedTotal"`
	Currency          string          `json:"currency"`
	TotalTransactions int             `json:"totalTransactions"`
	ByStatus          map[string]int  `json:"byStatus"`
}

// MerchantDashboardResponse is the rendered state of the merchant list
type MerchantDashboardResponse struct {
	Status         string                `json:"status"`
	VisibleRecords []models.Merchant     `json:"visibleRecords"`
	TotalPages     int                   `json:"totalPages"`
	CurrentPage    int                   `json:"currentPage"`
	PageSize       int                   `json:"pageSize"`
	FilteredCount  int                   `json:"filteredCount"`
	TotalCount     int                   `json:"totalCount"`
	PageNumbers    []view.PageLink       `json:"pageNumbers"`
	Filter         models.Filter         `json:"filter"`
	Categories     []string              `json:"categories"`
	Statuses       []string              `json:"statuses"`
	FetchedAt      *time.Time            `json:"fetchedAt,omitempty"`
	Error          *apierrors.FetchError `json:"error"`
}

// TransactionDashboardResponse is the rendered state of one merchant's
// transaction list
type TransactionDashboardResponse struct {
	Status            string                `json:"status"`
	Key               models.TransactionKey `json:"fetchKey"`
	VisibleRecords    []models.Transaction  `json:"visibleRecords"`
	TotalPages        int                   `json:"totalPages"`
	CurrentPage       int                   `json:"currentPage"`
	PageSize          int                   `json:"pageSize"`
	TotalTransactions int                   `json:"totalTransactions"`
	HasPrev           bool                  `json:"hasPrev"`
	HasNext           bool                  `json:"hasNext"`
	Filter            models.Filter         `json:"filter"`
	Summary           SummaryView           `json:"summary"`
	FetchedAt         *time.Time            `json:"fetchedAt,omitempty"`
	Error             *apierrors.FetchError `json:"error"`
}
