package services

import (
	"log/slog"
	"time"

	"merchant-dashboard/internal/models"
	"merchant-dashboard/internal/poller"
	"merchant-dashboard/internal/store"
	"merchant-dashboard/internal/summary"
)

const (
	defaultPollInterval = 5 * time.Second

	MerchantPollerName    = "merchants"
	TransactionPollerName = "transactions"
)

// DashboardOptions configures a polled dashboard
type DashboardOptions struct {
	Interval       time.Duration
	RequestTimeout time.Duration
	PageSize       int
	// Store persists the last good snapshot; nil disables warm start
	Store        *store.Store
	Metrics      MetricsRecorderInterface
	MutationLogs MutationLogServiceInterface
	Logger       *slog.Logger

	// Locale, DefaultCurrency and Formatters drive the transaction summary
	Locale          string
	DefaultCurrency string
	Formatters      *summary.Formatters
}

func (o DashboardOptions) withDefaults() DashboardOptions {
	if o.Interval <= 0 {
		o.Interval = defaultPollInterval
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	if o.Locale == "" {
		o.Locale = "en-US"
	}
	if o.DefaultCurrency == "" {
		o.DefaultCurrency = models.DefaultCurrency
	}
	if o.Formatters == nil {
		o.Formatters = summary.NewFormatters()
	}
	return o
}

func controllerOptions[T any](name string, o DashboardOptions) poller.Options[T] {
	opts := poller.Options[T]{
		Name:           name,
		RequestTimeout: o.RequestTimeout,
		Logger:         o.Logger,
	}
	if o.Metrics != nil {
		opts.Metrics = o.Metrics
	}
	if o.Store != nil {
		opts.Cache = store.NewCache[T](o.Store)
	}
	return opts
}

// recordSnapshotSize publishes the record count of every applied snapshot
func recordSnapshotSize[T any](metrics MetricsRecorderInterface, name string) func(poller.State[T]) {
	return func(state poller.State[T]) {
		if metrics == nil || state.Data == nil {
			return
		}
		metrics.RecordGauge(MetricDashboardRecords, float64(state.Data.Len()), map[string]string{"dashboard": name})
	}
}
