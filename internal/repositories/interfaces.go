package repositories

import (
	"time"

	"merchant-dashboard/internal/models"

	"github.com/google/uuid"
)

// MutationLogRepositoryInterface defines the contract for mutation log storage
type MutationLogRepositoryInterface interface {
	Create(entry *models.MutationLog) error
	GetByID(id uuid.UUID) (*models.MutationLog, error)
	List(filters models.MutationLogFilters, offset, limit int) ([]*models.MutationLog, int64, error)
	GetByResource(resource, resourceID string, offset, limit int) ([]*models.MutationLog, int64, error)
	CountByOutcome(since time.Time) (map[string]int64, error)
	DeleteOlderThan(duration time.Duration) (int64, error)
}
