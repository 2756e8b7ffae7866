package poller

import (
	"context"
	"time"

	"merchant-dashboard/internal/models"
)

// Source fetches one page of a remote collection for a fetch key
type Source[K models.FetchKey, T any] interface {
	Fetch(ctx context.Context, key K) (models.Page[T], error)
}

// SourceFunc adapts a function to Source
type SourceFunc[K models.FetchKey, T any] func(ctx context.Context, key K) (models.Page[T], error)

func (f SourceFunc[K, T]) Fetch(ctx context.Context, key K) (models.Page[T], error) {
	return f(ctx, key)
}

// SnapshotCache keeps the last good snapshot per fetch key so a restarted
// controller has something to show before its first fetch returns. Load
// returns nil, nil when nothing is stored.
type SnapshotCache[T any] interface {
	Load(name string, params map[string]string) (*models.Snapshot[T], error)
	Save(name string, snapshot *models.Snapshot[T]) error
}

// Recorder receives poll metrics
type Recorder interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
}

// Metric names emitted by the controller
const (
	MetricFetchSuccess   = "poll.fetch.success"
	MetricFetchFailed    = "poll.fetch.failed"
	MetricFetchDiscarded = "poll.fetch.discarded"
	MetricFetchDuration  = "poll.fetch"
)

type noopRecorder struct{}

func (noopRecorder) IncrementCounter(string, map[string]string) {}
func (noopRecorder) RecordProcessingTime(string, time.Duration) {}
