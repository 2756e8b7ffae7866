package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"merchant-dashboard/internal/client"
	"merchant-dashboard/internal/models"
	"merchant-dashboard/internal/repositories"
)

var (
	ErrInvalidMutationLog = errors.New("invalid mutation log")
)

// MutationLogService writes submit outcomes to the audit store and mirrors
// them to the structured log
type MutationLogService struct {
	repo   repositories.MutationLogRepositoryInterface
	logger *slog.Logger
}

func NewMutationLogService(repo repositories.MutationLogRepositoryInterface, logger *slog.Logger) MutationLogServiceInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &MutationLogService{
		repo:   repo,
		logger: logger,
	}
}

func (s *MutationLogService) Record(ctx context.Context, entry *models.MutationLog) error {
	if entry == nil || entry.Operation == "" || entry.Outcome == "" {
		return ErrInvalidMutationLog
	}
	if entry.TraceID == "" {
		entry.TraceID = client.TraceIDFromContext(ctx)
	}

	level := slog.LevelInfo
	if !entry.Succeeded() {
		level = slog.LevelWarn
	}
	s.logger.Log(ctx, level, "mutation submitted",
		slog.String("event_type", "mutation_"+entry.Outcome),
		slog.String("operation", entry.Operation),
		slog.String("resource", entry.Resource),
		slog.String("resource_id", entry.ResourceID),
		slog.String("response_code", entry.ResponseCode),
		slog.String("message", entry.Message),
		slog.Int64("duration_ms", entry.DurationMs),
		slog.String("correlation_id", entry.TraceID),
	)

	if err := s.repo.Create(entry); err != nil {
		return fmt.Errorf("failed to record mutation: %w", err)
	}
	return nil
}

func (s *MutationLogService) Recent(filters models.MutationLogFilters, offset, limit int) ([]*models.MutationLog, int64, error) {
	return s.repo.List(filters, offset, limit)
}

func (s *MutationLogService) OutcomeCounts(since time.Time) (map[string]int64, error) {
	return s.repo.CountByOutcome(since)
}

// Purge removes entries older than olderThan
func (s *MutationLogService) Purge(olderThan time.Duration) (int64, error) {
	if olderThan <= 0 {
		return 0, fmt.Errorf("retention must be positive, got %s", olderThan)
	}
	deleted, err := s.repo.DeleteOlderThan(olderThan)
	if err != nil {
		return 0, err
	}
	s.logger.Info("purged mutation logs", "deleted", deleted, "older_than", olderThan.String())
	return deleted, nil
}
