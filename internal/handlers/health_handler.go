package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"merchant-dashboard/internal/errors"
	"merchant-dashboard/internal/services"
)

// Pinger is anything the health check can ping
type Pinger interface {
	Ping() error
}

// PingFunc adapts a function to Pinger
type PingFunc func() error

func (f PingFunc) Ping() error { return f() }

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	db      Pinger
	cache   Pinger
	breaker services.CircuitBreakerInterface
	now     func() time.Time
}

// NewHealthCheckHandler creates a new health check handler. cache and
// breaker may be nil.
func NewHealthCheckHandler(db Pinger, cache Pinger, breaker services.CircuitBreakerInterface) *HealthCheckHandler {
	return &HealthCheckHandler{db: db, cache: cache, breaker: breaker, now: time.Now}
}

// HealthCheck adds the health check endpoint
// @Summary Health check
// @Description Check audit database and snapshot cache connectivity and report the upstream circuit breaker state
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string,time=string,upstream=string} "Service is healthy"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Service unavailable (database connection failed)"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	if err := h.db.Ping(); err != nil {
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Database connection failed"))
	}

	if h.cache != nil {
		if err := h.cache.Ping(); err != nil {
			return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Snapshot cache unavailable"))
		}
	}

	body := map[string]string{
		"status": "healthy",
		"time":   h.now().UTC().Format(time.RFC3339),
	}
	if h.breaker != nil {
		body["upstream"] = h.breaker.GetState().String()
	}
	return c.JSON(http.StatusOK, body)
}
