package repositories

import (
	"errors"
	"fmt"
	"time"

	"merchant-dashboard/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrMutationLogNotFound = errors.New("mutation log not found")

// MutationLogRepository handles database operations for mutation logs
type MutationLogRepository struct {
	db *gorm.DB
}

func NewMutationLogRepository(db *gorm.DB) MutationLogRepositoryInterface {
	return &MutationLogRepository{
		db: db,
	}
}

func (r *MutationLogRepository) Create(entry *models.MutationLog) error {
	if entry == nil {
		return errors.New("mutation log cannot be nil")
	}

	if err := r.db.Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create mutation log: %w", err)
	}

	return nil
}

func (r *MutationLogRepository) GetByID(id uuid.UUID) (*models.MutationLog, error) {
	entry := &models.MutationLog{}
	if err := r.db.First(entry, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMutationLogNotFound
		}
		return nil, fmt.Errorf("failed to get mutation log by ID: %w", err)
	}

	return entry, nil
}

// List returns mutation logs newest first, narrowed by filters
func (r *MutationLogRepository) List(filters models.MutationLogFilters, offset, limit int) ([]*models.MutationLog, int64, error) {
	query := r.db.Model(&models.MutationLog{})

	if filters.Operation != "" {
		query = query.Where("operation = ?", filters.Operation)
	}
	if filters.Outcome != "" {
		query = query.Where("outcome = ?", filters.Outcome)
	}
	if filters.Since != nil {
		query = query.Where("created_at >= ?", *filters.Since)
	}

	return r.page(query, offset, limit, "failed to list mutation logs")
}

func (r *MutationLogRepository) GetByResource(resource, resourceID string, offset, limit int) ([]*models.MutationLog, int64, error) {
	query := r.db.Model(&models.MutationLog{}).Where("resource = ? AND resource_id = ?", resource, resourceID)
	return r.page(query, offset, limit, "failed to get mutation logs by resource")
}

func (r *MutationLogRepository) page(query *gorm.DB, offset, limit int, failure string) ([]*models.MutationLog, int64, error) {
	if limit <= 0 || limit > 1000 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	var logs []*models.MutationLog
	var total int64

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count mutation logs: %w", err)
	}

	if err := query.Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&logs).Error; err != nil {
		return nil, 0, fmt.Errorf("%s: %w", failure, err)
	}

	return logs, total, nil
}

// CountByOutcome tallies mutation logs created since the given time
func (r *MutationLogRepository) CountByOutcome(since time.Time) (map[string]int64, error) {
	var rows []struct {
		Outcome string
		Count   int64
	}

	err := r.db.Model(&models.MutationLog{}).
		Select("outcome, COUNT(*) AS count").
		Where("created_at >= ?", since).
		Group("outcome").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count mutation logs by outcome: %w", err)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Outcome] = row.Count
	}
	return counts, nil
}

// DeleteOlderThan removes mutation logs older than the specified duration
func (r *MutationLogRepository) DeleteOlderThan(duration time.Duration) (int64, error) {
	cutoffTime := time.Now().Add(-duration)

	result := r.db.Where("created_at < ?", cutoffTime).Delete(&models.MutationLog{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete old mutation logs: %w", result.Error)
	}

	return result.RowsAffected, nil
}
