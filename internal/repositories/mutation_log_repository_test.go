package repositories

import (
	"testing"
	"time"

	"merchant-dashboard/internal/database"
	"merchant-dashboard/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

func TestMutationLogRepository(t *testing.T) {
	suite.Run(t, new(MutationLogRepositorySuite))
}

type MutationLogRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo MutationLogRepositoryInterface
}

func (s *MutationLogRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewMutationLogRepository(s.db.DB)
}

func (s *MutationLogRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *MutationLogRepositorySuite) TestCreate() {
	entry := &models.MutationLog{
		Operation:    models.MutationCreateTransaction,
		Resource:     models.MutationResourceTransaction,
		ResourceID:   "MCH-00009",
		Outcome:      models.MutationOutcomeSuccess,
		ResponseCode: "200",
		Message:      "Successfully inserted New Transaction",
	}
	entry.SetPayload("amount", 1500)

	s.NoError(s.repo.Create(entry))
	s.NotEqual(uuid.Nil, entry.ID)
	s.NotZero(entry.CreatedAt)

	found, err := s.repo.GetByID(entry.ID)
	s.NoError(err)
	s.Equal("MCH-00009", found.ResourceID)
	s.Equal(float64(1500), found.Payload["amount"])
}

func (s *MutationLogRepositorySuite) TestCreateNil() {
	s.Error(s.repo.Create(nil))
}

func (s *MutationLogRepositorySuite) TestGetByIDNotFound() {
	_, err := s.repo.GetByID(uuid.New())
	s.ErrorIs(err, ErrMutationLogNotFound)
}

func (s *MutationLogRepositorySuite) TestListFiltersAndPaginates() {
	now := time.Now()
	for i := 0; i < 5; i++ {
		database.CreateTestMutationLog(s.T(), s.db, models.MutationCreateMerchant, models.MutationOutcomeSuccess, now.Add(-time.Duration(i)*time.Minute))
	}
	database.CreateTestMutationLog(s.T(), s.db, models.MutationCreateTransaction, models.MutationOutcomeRejected, now)

	logs, total, err := s.repo.List(models.MutationLogFilters{Operation: models.MutationCreateMerchant}, 0, 2)
	s.NoError(err)
	s.Len(logs, 2)
	s.Equal(int64(5), total)
	s.True(!logs[0].CreatedAt.Before(logs[1].CreatedAt))

	logs, total, err = s.repo.List(models.MutationLogFilters{Operation: models.MutationCreateMerchant}, 4, 2)
	s.NoError(err)
	s.Len(logs, 1)
	s.Equal(int64(5), total)

	logs, total, err = s.repo.List(models.MutationLogFilters{Outcome: models.MutationOutcomeRejected}, 0, 10)
	s.NoError(err)
	s.Len(logs, 1)
	s.Equal(int64(1), total)
	s.Equal(models.MutationCreateTransaction, logs[0].Operation)

	since := now.Add(-90 * time.Second)
	_, total, err = s.repo.List(models.MutationLogFilters{Since: &since}, 0, 10)
	s.NoError(err)
	s.Equal(int64(3), total)
}

func (s *MutationLogRepositorySuite) TestGetByResource() {
	for _, id := range []string{"42", "42", "7"} {
		s.NoError(s.repo.Create(&models.MutationLog{
			Operation:  models.MutationUpdateMerchant,
			Resource:   models.MutationResourceMerchant,
			ResourceID: id,
			Outcome:    models.MutationOutcomeSuccess,
		}))
	}

	logs, total, err := s.repo.GetByResource(models.MutationResourceMerchant, "42", 0, 10)
	s.NoError(err)
	s.Len(logs, 2)
	s.Equal(int64(2), total)
}

func (s *MutationLogRepositorySuite) TestCountByOutcome() {
	now := time.Now()
	database.CreateTestMutationLog(s.T(), s.db, models.MutationCreateMerchant, models.MutationOutcomeSuccess, now)
	database.CreateTestMutationLog(s.T(), s.db, models.MutationCreateMerchant, models.MutationOutcomeSuccess, now)
	database.CreateTestMutationLog(s.T(), s.db, models.MutationCreateTransaction, models.MutationOutcomeFailed, now)
	database.CreateTestMutationLog(s.T(), s.db, models.MutationCreateTransaction, models.MutationOutcomeFailed, now.Add(-48*time.Hour))

	counts, err := s.repo.CountByOutcome(now.Add(-time.Hour))
	s.NoError(err)
	s.Equal(int64(2), counts[models.MutationOutcomeSuccess])
	s.Equal(int64(1), counts[models.MutationOutcomeFailed])
}

func (s *MutationLogRepositorySuite) TestDeleteOlderThan() {
	now := time.Now()
	database.CreateTestMutationLog(s.T(), s.db, models.MutationCreateMerchant, models.MutationOutcomeSuccess, now.Add(-72*time.Hour))
	database.CreateTestMutationLog(s.T(), s.db, models.MutationCreateMerchant, models.MutationOutcomeSuccess, now)

	deleted, err := s.repo.DeleteOlderThan(24 * time.Hour)
	s.NoError(err)
	s.Equal(int64(1), deleted)

	_, total, err := s.repo.List(models.MutationLogFilters{}, 0, 10)
	s.NoError(err)
	s.Equal(int64(1), total)
}
