package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"merchant-dashboard/internal/dto"
	apierrors "merchant-dashboard/internal/errors"
	"merchant-dashboard/internal/models"
	"merchant-dashboard/internal/poller"
	"merchant-dashboard/internal/validation"
)

// Mutation describes one write against the merchant API
type Mutation struct {
	Operation  string
	Resource   string
	ResourceID string
	// Payload is validated before the call and stored in the mutation log
	Payload interface{}
	// SuccessMessage is used when the server answers without a message
	SuccessMessage string
	// FailureMessage is used when the failure carries no server message
	FailureMessage string
}

// SubmitResult is what a successful call returned
type SubmitResult struct {
	ID      string
	Message string
}

// SubmitFunc performs the upstream call of a mutation
type SubmitFunc func(ctx context.Context) (SubmitResult, error)

// Submitter sends mutations to the merchant API. Each submit is exactly one
// attempt; on success the bound dashboard is asked to refetch so the new data
// shows up without waiting for the next poll.
type Submitter struct {
	refetch   Refetcher
	logs      MutationLogServiceInterface
	metrics   MetricsRecorderInterface
	validator *validation.Validator
	logger    *slog.Logger
	now       func() time.Time
}

func NewSubmitter(refetch Refetcher, logs MutationLogServiceInterface, metrics MetricsRecorderInterface, logger *slog.Logger) *Submitter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Submitter{
		refetch:   refetch,
		logs:      logs,
		metrics:   metrics,
		validator: validation.GetValidator(),
		logger:    logger,
		now:       time.Now,
	}
}

// Submit validates m.Payload, performs call once and records the outcome.
// Failures are returned as *errors.FetchError.
func (s *Submitter) Submit(ctx context.Context, m Mutation, call SubmitFunc) (*dto.Ack, error) {
	entry := &models.MutationLog{
		Operation:  m.Operation,
		Resource:   m.Resource,
		ResourceID: m.ResourceID,
	}
	if m.Payload != nil {
		entry.SetPayload("request", m.Payload)

		if fields := s.validator.FieldErrors(m.Payload); fields != nil {
			fe := apierrors.NewValidationFailure(validation.Summary(fields))
			entry.Outcome = models.MutationOutcomeRejected
			entry.Message = fe.Message
			s.finish(ctx, m, entry)
			return nil, fe
		}
	}

	start := s.now()
	result, err := call(ctx)
	entry.DurationMs = s.now().Sub(start).Milliseconds()
	s.record(MetricMutationDuration, time.Duration(entry.DurationMs)*time.Millisecond)

	if err != nil {
		fe := s.failure(m, err)
		entry.Outcome = models.MutationOutcomeFailed
		entry.ResponseCode = fe.Code
		entry.Message = fe.Message
		s.finish(ctx, m, entry)
		return nil, fe
	}

	ack := &dto.Ack{ID: result.ID, Message: result.Message}
	if ack.Message == "" {
		ack.Message = m.SuccessMessage
	}
	if ack.ID != "" && entry.ResourceID == "" {
		entry.ResourceID = ack.ID
	}
	entry.Outcome = models.MutationOutcomeSuccess
	entry.Message = ack.Message
	s.finish(ctx, m, entry)

	if s.refetch != nil {
		if err := s.refetch.Refetch(); err != nil && !errors.Is(err, poller.ErrNotStarted) {
			s.logger.WarnContext(ctx, "refetch after mutation failed", "operation", m.Operation, "error", err)
		}
	}

	return ack, nil
}

// failure keeps the server's message when there is one and falls back to
// the mutation's generic message otherwise
func (s *Submitter) failure(m Mutation, err error) *apierrors.FetchError {
	fe := apierrors.AsFetchError(err)
	if fe.Kind == apierrors.KindServer && fe.Message != "" {
		return fe
	}
	if m.FailureMessage == "" {
		return fe
	}

	out := *fe
	out.Message = m.FailureMessage
	return &out
}

func (s *Submitter) finish(ctx context.Context, m Mutation, entry *models.MutationLog) {
	if s.metrics != nil {
		s.metrics.IncrementCounter(MetricMutationSubmitted, map[string]string{
			"operation": m.Operation,
			"outcome":   entry.Outcome,
		})
	}
	if s.logs == nil {
		return
	}
	if err := s.logs.Record(ctx, entry); err != nil {
		s.logger.WarnContext(ctx, "failed to record mutation", "operation", m.Operation, "error", err)
	}
}

func (s *Submitter) record(name string, d time.Duration) {
	if s.metrics != nil {
		s.metrics.RecordProcessingTime(name, d)
	}
}
