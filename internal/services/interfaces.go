package services

import (
	"context"
	"time"

	"merchant-dashboard/internal/dto"
	"merchant-dashboard/internal/models"
)

// UpstreamAPI is the merchant REST API as the dashboards use it
type UpstreamAPI interface {
	ListMerchants(ctx context.Context) ([]models.Merchant, error)
	GetMerchant(ctx context.Context, merchantID string) (*models.Merchant, error)
	CreateMerchant(ctx context.Context, req *dto.CreateMerchantRequest) (*dto.MerchantMutationData, error)
	UpdateMerchant(ctx context.Context, merchantID string, req *dto.UpdateMerchantRequest) (*dto.MerchantMutationData, error)
	ListTransactions(ctx context.Context, key models.TransactionKey) (models.Page[models.Transaction], error)
	CreateTransaction(ctx context.Context, req *dto.CreateTransactionRequest) (*dto.CreateTransactionData, error)
}

// CircuitBreakerInterface defines the circuit breaker guarding the upstream API
type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() models.CircuitBreakerState
	Reset()
	GetFailureCount() int
}

// MetricsRecorderInterface records counters, timings and gauges
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// MutationLogServiceInterface keeps the audit trail of submitted mutations
type MutationLogServiceInterface interface {
	Record(ctx context.Context, entry *models.MutationLog) error
	Recent(filters models.MutationLogFilters, offset, limit int) ([]*models.MutationLog, int64, error)
	OutcomeCounts(since time.Time) (map[string]int64, error)
	Purge(olderThan time.Duration) (int64, error)
}

// Refetcher triggers an immediate fetch outside the poll schedule
type Refetcher interface {
	Refetch() error
}

// MerchantDashboardInterface is the polled merchant list with its filters
type MerchantDashboardInterface interface {
	Start() error
	Stop()
	Render() dto.MerchantDashboardResponse
	SetFilter(filter models.Filter)
	SetPage(page int)
	Refetch() error
	GetMerchant(ctx context.Context, merchantID string) (*models.Merchant, error)
	CreateMerchant(ctx context.Context, req *dto.CreateMerchantRequest) (*dto.Ack, error)
	UpdateMerchant(ctx context.Context, merchantID string, req *dto.UpdateMerchantRequest) (*dto.Ack, error)
}

// TransactionDashboardInterface is the polled transaction list of one merchant
type TransactionDashboardInterface interface {
	Start() error
	Stop()
	Render() dto.TransactionDashboardResponse
	SetFetchKey(req dto.TransactionKeyRequest) error
	SetFilter(search string)
	SetPage(page int) error
	Refetch() error
	CreateTransaction(ctx context.Context, req *dto.CreateTransactionRequest) (*dto.Ack, error)
}
