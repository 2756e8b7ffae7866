package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names accepted by PrometheusMetrics besides the poller and client ones
const (
	MetricMutationSubmitted = "mutation.submitted"
	MetricMutationDuration  = "mutation.submit"
	MetricBreakerState      = "circuit_breaker.state"
	MetricDashboardRecords  = "dashboard.records"
)

type PrometheusMetrics struct {
	pollFetches      *prometheus.CounterVec
	pollDuration     prometheus.Histogram
	upstreamRequests *prometheus.CounterVec
	upstreamDuration prometheus.Histogram
	mutations        *prometheus.CounterVec
	mutationDuration prometheus.Histogram
	circuitBreaker   *prometheus.GaugeVec
	dashboardRecords *prometheus.GaugeVec
}

// NewPrometheusMetrics registers the dashboard collectors on reg. Passing
// prometheus.DefaultRegisterer exposes them on the default /metrics handler.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		pollFetches: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "poll_fetch_total",
				Help: "Total number of poll fetches by outcome",
			},
			[]string{"poller", "outcome"},
		),
		pollDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "poll_fetch_duration_milliseconds",
				Help:    "Poll fetch duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 14),
			},
		),
		upstreamRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "upstream_requests_total",
				Help: "Total number of merchant API requests",
			},
			[]string{"operation", "outcome"},
		),
		upstreamDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "upstream_request_duration_milliseconds",
				Help:    "Merchant API request duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 14),
			},
		),
		mutations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mutations_total",
				Help: "Total number of submitted mutations",
			},
			[]string{"operation", "outcome"},
		),
		mutationDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "mutation_duration_milliseconds",
				Help:    "Mutation submit duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 14),
			},
		),
		circuitBreaker: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
		dashboardRecords: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "dashboard_snapshot_records",
				Help: "Number of records in the current snapshot of a dashboard",
			},
			[]string{"dashboard"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "poll.fetch.success":
		m.pollFetches.WithLabelValues(tags["poller"], "success").Inc()
	case "poll.fetch.failed":
		m.pollFetches.WithLabelValues(tags["poller"], "failed_"+tags["kind"]).Inc()
	case "poll.fetch.discarded":
		m.pollFetches.WithLabelValues(tags["poller"], "discarded").Inc()
	case "upstream.request":
		m.upstreamRequests.WithLabelValues(tags["operation"], tags["outcome"]).Inc()
	case MetricMutationSubmitted:
		m.mutations.WithLabelValues(tags["operation"], tags["outcome"]).Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	ms := float64(duration.Milliseconds())
	switch name {
	case "poll.fetch":
		m.pollDuration.Observe(ms)
	case "upstream.request":
		m.upstreamDuration.Observe(ms)
	case MetricMutationDuration:
		m.mutationDuration.Observe(ms)
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricBreakerState:
		m.circuitBreaker.WithLabelValues(tags["service"]).Set(value)
	case MetricDashboardRecords:
		m.dashboardRecords.WithLabelValues(tags["dashboard"]).Set(value)
	}
}
