package handlers

import (
	goerrors "errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"merchant-dashboard/internal/errors"
	"merchant-dashboard/internal/middleware"
	"merchant-dashboard/internal/poller"
)

// STANDARDIZED ERROR HANDLING PATTERNS
//
// All handlers must use the following standardized error response functions:
//
// 1. SendError - For client errors and business logic errors (4xx responses)
//    Use cases:
//    - Validation errors: SendError(c, errors.ValidationGeneral, errors.WithDetails("..."))
//    - Not found errors: SendError(c, errors.MerchantNotFound)
//    - Dashboard state errors: SendError(c, errors.DashboardNotLoaded)
//
// 2. SendDashboardError - For errors coming back from a dashboard or the
//    upstream API. Fetch errors keep their kind, everything else is a system
//    error.
//
// 3. SendDatabaseError - For audit store failures (SYSTEM_002)
//
// 4. SendSystemError - For system/internal errors (500 responses)
//    Use cases:
//    - Unexpected errors that should not expose internal details to client
//
// DO NOT USE:
//    - echo.NewHTTPError() - Use SendError or SendSystemError instead
//    - Direct c.JSON() for errors - Use the helper functions
//    - return err without wrapping - Use SendSystemError to protect internal details

// SuccessResponse represents a standard success response
// Used for successful API responses with data, messages, and metadata
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty" swaggertype:"object"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty" swaggertype:"object"`
}

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

func getTraceID(c echo.Context) string {
	return middleware.GetTraceID(c)
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	errorResponse := errors.NewErrorResponse(code, getTraceID(c), opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendValidationError sends VALIDATION_001 with one detail per field
func SendValidationError(c echo.Context, fields map[string]string) error {
	return c.JSON(http.StatusBadRequest, errors.NewValidationError(fields, getTraceID(c)))
}

// SendDatabaseError hides an audit store failure behind SYSTEM_002
func SendDatabaseError(c echo.Context, err error) error {
	errorResponse, err := errors.WrapDatabaseError(err, getTraceID(c))
	slog.Error("audit store query failed", "trace_id", errorResponse.Error.TraceID, "error", err)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}

// SendSystemError wraps a system error with generic message and logs the internal error
func SendSystemError(c echo.Context, err error) error {
	errorResponse, err := errors.WrapSystemError(err, getTraceID(c))
	slog.Error("request failed", "trace_id", errorResponse.Error.TraceID, "path", c.Path(), "error", err)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}

// SendDashboardError maps errors returned by the dashboards onto responses
func SendDashboardError(c echo.Context, err error) error {
	var fe *errors.FetchError
	switch {
	case goerrors.As(err, &fe):
		resp := errors.NewUpstreamError(fe, getTraceID(c))
		return c.JSON(resp.GetHTTPStatus(), resp)
	case goerrors.Is(err, poller.ErrNotStarted):
		return SendError(c, errors.DashboardNotLoaded)
	default:
		return SendSystemError(c, err)
	}
}
