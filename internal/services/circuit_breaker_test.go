package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"merchant-dashboard/internal/models"
)

type CircuitBreakerTestSuite struct {
	suite.Suite
	breaker     *CircuitBreaker
	now         time.Time
	transitions []models.CircuitBreakerState
}

func TestCircuitBreakerSuite(t *testing.T) {
	suite.Run(t, new(CircuitBreakerTestSuite))
}

func (s *CircuitBreakerTestSuite) SetupTest() {
	s.now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	s.transitions = nil

	cb := NewCircuitBreaker(CircuitBreakerConfig{
		MaxFailures:     3,
		ResetTimeout:    30 * time.Second,
		HalfOpenMaxSucc: 2,
		OnStateChange: func(state models.CircuitBreakerState) {
			s.transitions = append(s.transitions, state)
		},
	}).(*CircuitBreaker)
	cb.now = func() time.Time { return s.now }
	s.breaker = cb
}

func (s *CircuitBreakerTestSuite) fail(n int) {
	for i := 0; i < n; i++ {
		s.breaker.RecordFailure()
	}
}

func (s *CircuitBreakerTestSuite) TestOpensAfterMaxFailures() {
	s.fail(2)
	s.False(s.breaker.IsOpen())
	s.Equal(2, s.breaker.GetFailureCount())

	s.fail(1)
	s.True(s.breaker.IsOpen())
	s.Equal(StateOpen, s.breaker.GetState())
	s.Equal([]models.CircuitBreakerState{StateOpen}, s.transitions)
}

func (s *CircuitBreakerTestSuite) TestSuccessResetsFailureCount() {
	s.fail(2)
	s.breaker.RecordSuccess()
	s.Equal(0, s.breaker.GetFailureCount())

	s.fail(2)
	s.False(s.breaker.IsOpen())
}

func (s *CircuitBreakerTestSuite) TestHalfOpenAfterResetTimeout() {
	s.fail(3)
	s.True(s.breaker.IsOpen())

	s.now = s.now.Add(31 * time.Second)
	s.False(s.breaker.IsOpen())
	s.Equal(StateHalfOpen, s.breaker.GetState())

	s.breaker.RecordSuccess()
	s.Equal(StateHalfOpen, s.breaker.GetState())
	s.breaker.RecordSuccess()
	s.Equal(StateClosed, s.breaker.GetState())

	s.Equal([]models.CircuitBreakerState{StateOpen, StateHalfOpen, StateClosed}, s.transitions)
}

func (s *CircuitBreakerTestSuite) TestHalfOpenFailureReopens() {
	s.fail(3)
	s.now = s.now.Add(time.Minute)
	s.False(s.breaker.IsOpen())

	s.breaker.RecordFailure()
	s.True(s.breaker.IsOpen())
}

func (s *CircuitBreakerTestSuite) TestReset() {
	s.fail(3)
	s.breaker.Reset()

	s.False(s.breaker.IsOpen())
	s.Equal(0, s.breaker.GetFailureCount())
	s.Equal("closed", s.breaker.GetState().String())
}

func (s *CircuitBreakerTestSuite) TestDefaults() {
	cfg := DefaultCircuitBreakerConfig()
	s.Equal(5, cfg.MaxFailures)
	s.Equal(30*time.Second, cfg.ResetTimeout)

	cb := NewCircuitBreaker(CircuitBreakerConfig{}).(*CircuitBreaker)
	s.Equal(1, cb.config.MaxFailures)
	s.Equal(1, cb.config.HalfOpenMaxSucc)
}
