package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"merchant-dashboard/internal/errors"
)

var panicsRecovered = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "http_panics_recovered_total",
		Help: "Handler panics turned into SYSTEM_001 responses, by route",
	},
	[]string{"route"},
)

// PanicRecovery turns a handler panic into a SYSTEM_001 response. Polling
// goroutines run outside echo and are not covered. http.ErrAbortHandler is
// re-raised so net/http can abort the connection.
func PanicRecovery(logger *slog.Logger) echo.MiddlewareFunc {
	if logger == nil {
		logger = slog.Default()
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				if r == http.ErrAbortHandler {
					panic(r)
				}

				traceID := traceIDOrUnknown(c)
				route := c.Path()
				panicsRecovered.WithLabelValues(route).Inc()

				logger.Error("handler panicked",
					"trace_id", traceID,
					"route", route,
					"method", c.Request().Method,
					"panic", fmt.Sprint(r),
					"stack", string(debug.Stack()),
				)

				// headers already sent; the client sees a truncated body
				if c.Response().Committed {
					err = nil
					return
				}
				err = c.JSON(http.StatusInternalServerError, errors.NewErrorResponse(errors.SystemInternalError, traceID))
			}()

			return next(c)
		}
	}
}
