package services

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"merchant-dashboard/internal/dto"
	apierrors "merchant-dashboard/internal/errors"
	"merchant-dashboard/internal/models"
	"merchant-dashboard/internal/poller"
	"merchant-dashboard/internal/services/service_mocks"
)

type TransactionDashboardTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockAPI   *service_mocks.MockUpstreamAPI
	dashboard *TransactionDashboard

	mu   sync.Mutex
	keys []models.TransactionKey
}

func TestTransactionDashboardSuite(t *testing.T) {
	suite.Run(t, new(TransactionDashboardTestSuite))
}

func (s *TransactionDashboardTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockAPI = service_mocks.NewMockUpstreamAPI(s.ctrl)
	s.keys = nil

	logs := service_mocks.NewMockMutationLogServiceInterface(s.ctrl)
	logs.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	s.dashboard = NewTransactionDashboard(s.mockAPI, models.DefaultTransactionKey("MCH-00009"), DashboardOptions{
		Interval:     time.Hour,
		MutationLogs: logs,
		Locale:       "en-US",
	})
}

func (s *TransactionDashboardTestSuite) TearDownTest() {
	s.dashboard.Stop()
	s.ctrl.Finish()
}

// serve answers every fetch with a page of the given records and a server
// total of 25
func (s *TransactionDashboardTestSuite) serve(records []models.Transaction) {
	s.mockAPI.EXPECT().ListTransactions(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, key models.TransactionKey) (models.Page[models.Transaction], error) {
			s.mu.Lock()
			s.keys = append(s.keys, key)
			s.mu.Unlock()
			return models.Page[models.Transaction]{Records: records, TotalCount: 25, Page: key.Page, Size: key.Size}, nil
		}).AnyTimes()
}

func (s *TransactionDashboardTestSuite) lastKey() models.TransactionKey {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.keys) == 0 {
		return models.TransactionKey{}
	}
	return s.keys[len(s.keys)-1]
}

func (s *TransactionDashboardTestSuite) waitReady() dto.TransactionDashboardResponse {
	var resp dto.TransactionDashboardResponse
	s.Require().Eventually(func() bool {
		resp = s.dashboard.Render()
		return resp.Status == string(poller.StatusReady)
	}, waitFor, 5*time.Millisecond)
	return resp
}

func sampleTransactions() []models.Transaction {
	return []models.Transaction{
		{TxnID: 1, MerchantID: "MCH-00009", Amount: decimal.RequireFromString("10.00"), Currency: "USD", Status: "completed", CardType: "VISA", CardLast4: "4242"},
		{TxnID: 2, MerchantID: "MCH-00009", Amount: decimal.RequireFromString("5.50"), Currency: "USD", Status: "pending", CardType: "MASTERCARD", CardLast4: "5555"},
	}
}

func (s *TransactionDashboardTestSuite) TestSummaryAndNavigation() {
	s.serve(sampleTransactions())
	s.Require().NoError(s.dashboard.Start())

	resp := s.waitReady()

	s.Len(resp.VisibleRecords, 2)
	s.Equal(25, resp.TotalTransactions)
	s.Equal(3, resp.TotalPages)
	s.False(resp.HasPrev)
	s.True(resp.HasNext)
	s.True(decimal.RequireFromString("15.50").Equal(resp.Summary.TotalAmount))
	s.Equal("USD", resp.Summary.Currency)
	s.Equal(2, resp.Summary.TotalTransactions)
	s.Equal(map[string]int{"completed": 1, "pending": 1}, resp.Summary.ByStatus)
	s.Contains(resp.Summary.FormattedTotal, "15.5")
	s.Equal("MCH-00009", resp.Key.MerchantID)
}

func (s *TransactionDashboardTestSuite) TestEmptySummaryUsesDefaultCurrency() {
	resp := s.dashboard.Render()

	s.Equal(string(poller.StatusIdle), resp.Status)
	s.True(resp.Summary.TotalAmount.IsZero())
	s.Equal(models.DefaultCurrency, resp.Summary.Currency)
	s.False(resp.HasNext)
}

func (s *TransactionDashboardTestSuite) TestSetPageChangesFetchKey() {
	s.serve(sampleTransactions())
	s.Require().NoError(s.dashboard.Start())
	s.waitReady()

	s.Require().NoError(s.dashboard.SetPage(2))
	s.Equal(2, s.dashboard.Key().Page)

	resp := s.waitReady()
	s.Equal(2, resp.CurrentPage)
	s.True(resp.HasPrev)
	s.False(resp.HasNext)
	s.Equal(2, s.lastKey().Page)

	s.NoError(s.dashboard.SetPage(3))
	s.Equal(2, s.dashboard.Key().Page, "past the last page clamps to it")
	s.NoError(s.dashboard.SetPage(-1))
	s.Equal(0, s.dashboard.Key().Page)
}

func (s *TransactionDashboardTestSuite) TestShrinkingTotalClampsPage() {
	var total atomic.Int64
	total.Store(50)
	s.mockAPI.EXPECT().ListTransactions(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, key models.TransactionKey) (models.Page[models.Transaction], error) {
			s.mu.Lock()
			s.keys = append(s.keys, key)
			s.mu.Unlock()

			n := int(total.Load())
			var records []models.Transaction
			if key.Page*key.Size < n {
				records = sampleTransactions()
			}
			return models.Page[models.Transaction]{Records: records, TotalCount: n, Page: key.Page, Size: key.Size}, nil
		}).AnyTimes()

	s.Require().NoError(s.dashboard.Start())
	s.waitReady()
	s.Require().NoError(s.dashboard.SetPage(4))
	resp := s.waitReady()
	s.Require().Equal(4, resp.CurrentPage)
	s.Require().Equal(5, resp.TotalPages)

	total.Store(15)
	s.Require().NoError(s.dashboard.Refetch())

	s.Eventually(func() bool {
		resp = s.dashboard.Render()
		return s.dashboard.Key().Page == 1 && s.lastKey().Page == 1 &&
			resp.Status == string(poller.StatusReady) && len(resp.VisibleRecords) > 0
	}, waitFor, 5*time.Millisecond)
	s.Equal(1, resp.CurrentPage)
	s.Equal(2, resp.TotalPages)
	s.True(resp.HasPrev)
	s.False(resp.HasNext)

	s.NoError(s.dashboard.SetPage(7))
	s.Equal(1, s.dashboard.Key().Page)
}

func (s *TransactionDashboardTestSuite) TestSetFetchKey() {
	s.serve(sampleTransactions())
	s.Require().NoError(s.dashboard.Start())
	s.waitReady()
	s.Require().NoError(s.dashboard.SetPage(1))

	err := s.dashboard.SetFetchKey(dto.TransactionKeyRequest{MerchantID: "MCH-2", StartDate: "2024-02-01", EndDate: "2024-01-01"})
	var fe *apierrors.FetchError
	s.Require().True(errors.As(err, &fe))
	s.Equal(apierrors.KindValidation, fe.Kind)
	s.Equal("MCH-00009", s.dashboard.Key().MerchantID)

	s.Require().NoError(s.dashboard.SetFetchKey(dto.TransactionKeyRequest{
		MerchantID: " MCH-2 ",
		StartDate:  "2024-01-01",
		EndDate:    "2024-01-31",
		Status:     "Completed",
	}))

	key := s.dashboard.Key()
	s.Equal("MCH-2", key.MerchantID)
	s.Equal(0, key.Page)
	s.Equal(models.DefaultTransactionPageSize, key.Size)
	s.Equal("completed", key.Status)

	s.waitReady()
	s.Eventually(func() bool {
		s.mu.Lock()
		defer s.mu.Unlock()
		for _, k := range s.keys {
			if k == key {
				return true
			}
		}
		return false
	}, waitFor, 5*time.Millisecond)
}

func (s *TransactionDashboardTestSuite) TestSearchFiltersLoadedPage() {
	s.serve(sampleTransactions())
	s.Require().NoError(s.dashboard.Start())
	s.waitReady()

	s.dashboard.SetFilter("5555")
	resp := s.dashboard.Render()

	s.Require().Len(resp.VisibleRecords, 1)
	s.Equal(int64(2), resp.VisibleRecords[0].TxnID)
	s.Equal("5555", resp.Filter.Search)
	s.Equal(2, resp.Summary.TotalTransactions)
}

func (s *TransactionDashboardTestSuite) TestCreateTransactionDefaultMessage() {
	s.serve(sampleTransactions())
	s.Require().NoError(s.dashboard.Start())
	s.waitReady()

	req := &dto.CreateTransactionRequest{
		MerchantID:   "MCH-00009",
		GPAcquirerID: 3,
		GPIssuerID:   4,
		Amount:       2599,
		Currency:     "USD",
		CardType:     "VISA",
		CardLast4:    "1111",
		AuthCode:     "ZX81",
		ResponseCode: "00",
	}
	s.mockAPI.EXPECT().CreateTransaction(gomock.Any(), req).Return(&dto.CreateTransactionData{TransactionID: "991"}, nil)

	ack, err := s.dashboard.CreateTransaction(context.Background(), req)
	s.Require().NoError(err)
	s.Equal("Successfully inserted New Transaction", ack.Message)
	s.Equal("991", ack.ID)

	s.Eventually(func() bool {
		s.mu.Lock()
		defer s.mu.Unlock()
		return len(s.keys) >= 2
	}, waitFor, 5*time.Millisecond)
}

func (s *TransactionDashboardTestSuite) TestCreateTransactionFailure() {
	req := &dto.CreateTransactionRequest{
		MerchantID:   "MCH-00009",
		GPAcquirerID: 3,
		GPIssuerID:   4,
		Amount:       2599,
		Currency:     "USD",
		CardType:     "VISA",
		CardLast4:    "1111",
		AuthCode:     "ZX81",
		ResponseCode: "00",
	}
	s.mockAPI.EXPECT().CreateTransaction(gomock.Any(), req).Return(nil, apierrors.NewMalformedError(errors.New("unexpected EOF")))

	_, err := s.dashboard.CreateTransaction(context.Background(), req)
	fe := apierrors.AsFetchError(err)
	s.Equal(apierrors.KindMalformed, fe.Kind)
	s.Equal("Failed to add transaction", fe.Message)
}
