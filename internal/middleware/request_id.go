package middleware

import (
	"regexp"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"merchant-dashboard/internal/client"
)

const (
	TraceIDHeader     = client.TraceHeader
	TraceIDContextKey = "trace_id"

	// maxTraceIDLength matches the trace_id column of the mutation log
	maxTraceIDLength = 64
)

var traceIDPattern = regexp.MustCompile(`^[A-Za-z0-9._:-]+$`)

// RequestID assigns every request a trace ID. A caller-supplied X-Trace-ID is
// kept when it is short and printable, otherwise a UUID replaces it. The ID
// is echoed in the response, stored on the echo context and attached to the
// request context so upstream calls forward it.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			traceID := req.Header.Get(TraceIDHeader)
			if !validTraceID(traceID) {
				traceID = uuid.NewString()
			}

			c.Set(TraceIDContextKey, traceID)
			c.SetRequest(req.WithContext(client.ContextWithTraceID(req.Context(), traceID)))
			c.Response().Header().Set(TraceIDHeader, traceID)
			return next(c)
		}
	}
}

func validTraceID(id string) bool {
	return id != "" && len(id) <= maxTraceIDLength && traceIDPattern.MatchString(id)
}

// GetTraceID returns the request's trace ID, or "" outside RequestID
func GetTraceID(c echo.Context) string {
	traceID, _ := c.Get(TraceIDContextKey).(string)
	return traceID
}

func traceIDOrUnknown(c echo.Context) string {
	if traceID := GetTraceID(c); traceID != "" {
		return traceID
	}
	return "unknown"
}
