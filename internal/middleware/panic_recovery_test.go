package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"

	"merchant-dashboard/internal/errors"
)

type PanicRecoveryTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func (s *PanicRecoveryTestSuite) SetupTest() {
	s.echo = echo.New()
}

func TestPanicRecoveryTestSuite(t *testing.T) {
	suite.Run(t, new(PanicRecoveryTestSuite))
}

func (s *PanicRecoveryTestSuite) serve(path string, h echo.HandlerFunc, traceID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, path, nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetPath(path)
	if traceID != "" {
		c.Set(TraceIDContextKey, traceID)
	}

	s.NotPanics(func() {
		s.NoError(PanicRecovery(nil)(h)(c))
	})
	return rec
}

func (s *PanicRecoveryTestSuite) decode(rec *httptest.ResponseRecorder) errors.ErrorResponse {
	var resp errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func (s *PanicRecoveryTestSuite) TestRecoversWithTraceID() {
	rec := s.serve("/api/v1/dashboard/merchants/page", func(c echo.Context) error {
		panic("page index out of range")
	}, "trace-123")

	s.Equal(http.StatusInternalServerError, rec.Code)
	resp := s.decode(rec)
	s.Equal(string(errors.SystemInternalError), resp.Error.Code)
	s.Equal("trace-123", resp.Error.TraceID)
	s.NotContains(rec.Body.String(), "page index out of range")
}

func (s *PanicRecoveryTestSuite) TestUnknownTraceID() {
	rec := s.serve("/api/v1/dashboard/transactions", func(c echo.Context) error {
		panic("boom")
	}, "")

	s.Equal("unknown", s.decode(rec).Error.TraceID)
}

func (s *PanicRecoveryTestSuite) TestPassesThroughWithoutPanic() {
	rec := s.serve("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
	}, "")

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "healthy")
}

func (s *PanicRecoveryTestSuite) TestPanicValues() {
	values := map[string]interface{}{
		"string": "string panic",
		"int":    42,
		"error":  errors.NewServerError("500", "upstream exploded"),
		"nil":    nil,
	}

	for name, value := range values {
		s.Run(name, func() {
			rec := s.serve("/api/v1/dashboard/merchants", func(c echo.Context) error {
				panic(value)
			}, "t")
			s.Equal(http.StatusInternalServerError, rec.Code)
		})
	}
}

func (s *PanicRecoveryTestSuite) TestCountsPerRoute() {
	route := "/api/v1/dashboard/merchants/refetch"
	before := testutil.ToFloat64(panicsRecovered.WithLabelValues(route))

	s.serve(route, func(c echo.Context) error { panic("again") }, "")
	s.serve(route, func(c echo.Context) error { panic("and again") }, "")

	s.Equal(before+2, testutil.ToFloat64(panicsRecovered.WithLabelValues(route)))
}

func (s *PanicRecoveryTestSuite) TestCommittedResponseIsLeftAlone() {
	rec := s.serve("/api/v1/dashboard/merchants", func(c echo.Context) error {
		c.Response().WriteHeader(http.StatusOK)
		_, _ = c.Response().Write([]byte(`{"status":`))
		panic("mid-stream")
	}, "")

	s.Equal(http.StatusOK, rec.Code)
	s.Equal(`{"status":`, rec.Body.String())
}

func (s *PanicRecoveryTestSuite) TestAbortHandlerIsReraised() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := s.echo.NewContext(req, httptest.NewRecorder())

	h := PanicRecovery(nil)(func(c echo.Context) error {
		panic(http.ErrAbortHandler)
	})

	s.PanicsWithValue(http.ErrAbortHandler, func() { _ = h(c) })
}
