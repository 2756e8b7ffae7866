package services

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"merchant-dashboard/internal/dto"
	apierrors "merchant-dashboard/internal/errors"
	"merchant-dashboard/internal/models"
	"merchant-dashboard/internal/poller"
	"merchant-dashboard/internal/services/service_mocks"
)

const waitFor = 2 * time.Second

type MerchantDashboardTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockAPI   *service_mocks.MockUpstreamAPI
	mockLogs  *service_mocks.MockMutationLogServiceInterface
	dashboard *MerchantDashboard
	merchants []models.Merchant
	listCalls atomic.Int32
}

func TestMerchantDashboardSuite(t *testing.T) {
	suite.Run(t, new(MerchantDashboardTestSuite))
}

func (s *MerchantDashboardTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockAPI = service_mocks.NewMockUpstreamAPI(s.ctrl)
	s.mockLogs = service_mocks.NewMockMutationLogServiceInterface(s.ctrl)
	s.mockLogs.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	s.listCalls.Store(0)

	s.merchants = make([]models.Merchant, 250)
	statuses := models.MerchantStatuses()
	for i := range s.merchants {
		s.merchants[i] = models.Merchant{
			MerchantID:       int64(i + 1),
			MerchantName:     fmt.Sprintf("%s %03d", gofakeit.Company(), i),
			MerchantStatus:   statuses[i%len(statuses)],
			MerchantCategory: models.AllCategories()[i%4],
			MerchantType:     models.MerchantTypeBusiness,
		}
	}

	s.dashboard = NewMerchantDashboard(s.mockAPI, DashboardOptions{
		Interval:     time.Hour,
		PageSize:     100,
		MutationLogs: s.mockLogs,
	})
}

func (s *MerchantDashboardTestSuite) TearDownTest() {
	s.dashboard.Stop()
	s.ctrl.Finish()
}

func (s *MerchantDashboardTestSuite) serveMerchants() {
	s.mockAPI.EXPECT().ListMerchants(gomock.Any()).DoAndReturn(func(context.Context) ([]models.Merchant, error) {
		s.listCalls.Add(1)
		return s.merchants, nil
	}).AnyTimes()
}

func (s *MerchantDashboardTestSuite) waitStatus(status poller.Status) dto.MerchantDashboardResponse {
	var resp dto.MerchantDashboardResponse
	s.Require().Eventually(func() bool {
		resp = s.dashboard.Render()
		return resp.Status == string(status)
	}, waitFor, 5*time.Millisecond)
	return resp
}

func (s *MerchantDashboardTestSuite) TestRenderBeforeStart() {
	resp := s.dashboard.Render()

	s.Equal(string(poller.StatusIdle), resp.Status)
	s.Empty(resp.VisibleRecords)
	s.NotNil(resp.VisibleRecords)
	s.Equal(0, resp.TotalPages)
	s.Nil(resp.FetchedAt)
	s.ErrorIs(s.dashboard.Refetch(), poller.ErrNotStarted)
}

func (s *MerchantDashboardTestSuite) TestStartRendersFirstPage() {
	s.serveMerchants()
	s.Require().NoError(s.dashboard.Start())

	resp := s.waitStatus(poller.StatusReady)

	s.Len(resp.VisibleRecords, 100)
	s.Equal(3, resp.TotalPages)
	s.Equal(0, resp.CurrentPage)
	s.Equal(250, resp.FilteredCount)
	s.Equal(250, resp.TotalCount)
	s.Len(resp.PageNumbers, 3)
	s.Equal(models.AllCategories()[:4], resp.Categories)
	s.Equal(models.MerchantStatuses(), resp.Statuses)
	s.NotNil(resp.FetchedAt)
	s.Nil(resp.Error)
}

func (s *MerchantDashboardTestSuite) TestCategoriesFollowSnapshot() {
	s.serveMerchants()
	s.Require().NoError(s.dashboard.Start())
	first := s.waitStatus(poller.StatusReady)

	s.dashboard.SetPage(1)
	again := s.dashboard.Render()
	s.Require().NotEmpty(again.Categories)
	s.Same(&first.Categories[0], &again.Categories[0], "unchanged snapshot reuses the category list")

	s.merchants = s.merchants[:1]
	s.Require().NoError(s.dashboard.Refetch())
	s.Eventually(func() bool {
		return s.dashboard.Render().TotalCount == 1
	}, waitFor, 5*time.Millisecond)

	s.Equal(models.AllCategories()[:1], s.dashboard.Render().Categories)
}

func (s *MerchantDashboardTestSuite) TestPageClampAndFilterReset() {
	s.serveMerchants()
	s.Require().NoError(s.dashboard.Start())
	s.waitStatus(poller.StatusReady)

	s.dashboard.SetPage(5)
	resp := s.dashboard.Render()
	s.Equal(2, resp.CurrentPage)
	s.Len(resp.VisibleRecords, 50)
	s.Equal(int64(201), resp.VisibleRecords[0].MerchantID)

	s.dashboard.SetFilter(models.Filter{Status: "suspended"})
	resp = s.dashboard.Render()
	s.Equal(0, resp.CurrentPage)
	s.Equal(83, resp.FilteredCount)
	for _, m := range resp.VisibleRecords {
		s.Equal(models.MerchantStatusSuspended, m.MerchantStatus)
	}
}

func (s *MerchantDashboardTestSuite) TestSearchIgnoresCaseAndSpacing() {
	s.merchants[7].MerchantName = "ABC Store"
	s.serveMerchants()
	s.Require().NoError(s.dashboard.Start())
	s.waitStatus(poller.StatusReady)

	s.dashboard.SetFilter(models.Filter{Search: "abc   store"})
	resp := s.dashboard.Render()

	s.Require().Len(resp.VisibleRecords, 1)
	s.Equal("ABC Store", resp.VisibleRecords[0].MerchantName)
}

func (s *MerchantDashboardTestSuite) TestFailedRefreshKeepsRecords() {
	gomock.InOrder(
		s.mockAPI.EXPECT().ListMerchants(gomock.Any()).Return(s.merchants, nil),
		s.mockAPI.EXPECT().ListMerchants(gomock.Any()).Return(nil, apierrors.NewServerError("500", "Database unavailable")).AnyTimes(),
	)
	s.Require().NoError(s.dashboard.Start())
	s.waitStatus(poller.StatusReady)

	s.Require().NoError(s.dashboard.Refetch())
	resp := s.waitStatus(poller.StatusError)

	s.Len(resp.VisibleRecords, 100)
	s.Equal(250, resp.TotalCount)
	s.Require().NotNil(resp.Error)
	s.Equal("Database unavailable", resp.Error.Message)
}

func (s *MerchantDashboardTestSuite) TestCreateMerchantRefetches() {
	s.serveMerchants()
	s.Require().NoError(s.dashboard.Start())
	s.waitStatus(poller.StatusReady)

	req := &dto.CreateMerchantRequest{
		MerchantName:     gofakeit.Company(),
		MerchantStatus:   models.MerchantStatusActive,
		ContactInfo:      gofakeit.Email(),
		MerchantCategory: models.CategoryDining,
		MerchantLocation: gofakeit.City(),
		PaymentMethod:    "Card",
		MerchantWebsite:  "https://merchant.example.com",
		MerchantType:     models.MerchantTypeFranchise,
	}
	s.mockAPI.EXPECT().CreateMerchant(gomock.Any(), req).Return(&dto.MerchantMutationData{MerchantID: "251"}, nil)

	ack, err := s.dashboard.CreateMerchant(context.Background(), req)
	s.Require().NoError(err)
	s.Equal("251", ack.ID)
	s.Equal("Merchant created successfully", ack.Message)

	s.Eventually(func() bool { return s.listCalls.Load() == 2 }, waitFor, 5*time.Millisecond)
}

func (s *MerchantDashboardTestSuite) TestCreateMerchantRejectsInvalidPayload() {
	req := &dto.CreateMerchantRequest{MerchantName: "Missing fields", MerchantType: "Cooperative"}

	_, err := s.dashboard.CreateMerchant(context.Background(), req)

	var fe *apierrors.FetchError
	s.Require().True(errors.As(err, &fe))
	s.Equal(apierrors.KindValidation, fe.Kind)
	s.Contains(fe.Message, "merchantType")
}

func (s *MerchantDashboardTestSuite) TestUpdateMerchantFailures() {
	req := &dto.UpdateMerchantRequest{
		MerchantName:     "ABC Store",
		MerchantStatus:   models.MerchantStatusInactive,
		ContactInfo:      "ops@abc.example",
		MerchantCategory: models.CategoryGroceries,
		MerchantLocation: "Austin",
		MerchantRating:   4.5,
		PaymentMethod:    "Card",
		MerchantWebsite:  "https://abc.example",
		MerchantType:     models.MerchantTypeBusiness,
	}

	s.mockAPI.EXPECT().UpdateMerchant(gomock.Any(), "42", req).Return(nil, apierrors.NewServerError("409", "Merchant name already exists"))
	_, err := s.dashboard.UpdateMerchant(context.Background(), "42", req)
	s.Equal("Merchant name already exists", apierrors.AsFetchError(err).Message)

	s.mockAPI.EXPECT().UpdateMerchant(gomock.Any(), "42", req).Return(nil, apierrors.NewTransportError(errors.New("EOF")))
	_, err = s.dashboard.UpdateMerchant(context.Background(), "42", req)
	s.Equal("Failed to update merchant", apierrors.AsFetchError(err).Message)
}

func (s *MerchantDashboardTestSuite) TestUpdateMerchantSuccessKeepsPathID() {
	req := &dto.UpdateMerchantRequest{
		MerchantName:     "ABC Store",
		MerchantStatus:   models.MerchantStatusActive,
		ContactInfo:      "ops@abc.example",
		MerchantCategory: models.CategoryGroceries,
		MerchantLocation: "Austin",
		PaymentMethod:    "Card",
		MerchantWebsite:  "https://abc.example",
		MerchantType:     models.MerchantTypeIndividual,
	}
	s.mockAPI.EXPECT().UpdateMerchant(gomock.Any(), "42", req).Return(&dto.MerchantMutationData{Message: "Updated"}, nil)

	ack, err := s.dashboard.UpdateMerchant(context.Background(), "42", req)
	s.Require().NoError(err)
	s.Equal("42", ack.ID)
	s.Equal("Updated", ack.Message)
}

func (s *MerchantDashboardTestSuite) TestGetMerchantReadsThrough() {
	want := &s.merchants[0]
	s.mockAPI.EXPECT().GetMerchant(gomock.Any(), "1").Return(want, nil)

	got, err := s.dashboard.GetMerchant(context.Background(), "1")
	s.NoError(err)
	s.Same(want, got)
}
