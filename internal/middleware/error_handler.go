package middleware

import (
	goerrors "errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"merchant-dashboard/internal/errors"
	"merchant-dashboard/internal/validation"
)

var (
	// API errors counter metric
	apiErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_errors_total",
			Help: "Total number of API errors by code, endpoint, and status",
		},
		[]string{"code", "endpoint", "status"},
	)
)

// CustomHTTPErrorHandler is a custom error handler for Echo that formats errors
// as standardized error responses and logs them appropriately
func CustomHTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	traceID := traceIDOrUnknown(c)
	errorResponse, httpStatus := toErrorResponse(err, traceID)

	logLevel := slog.LevelWarn
	if httpStatus >= 500 {
		logLevel = slog.LevelError
	}

	slog.Log(c.Request().Context(), logLevel, "HTTP error occurred",
		"trace_id", traceID,
		"error_code", errorResponse.Error.Code,
		"status", httpStatus,
		"message", errorResponse.Error.Message,
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"error", err.Error(),
	)

	apiErrorsTotal.WithLabelValues(
		errorResponse.Error.Code,
		c.Path(),
		fmt.Sprintf("%d", httpStatus),
	).Inc()

	if sendErr := c.JSON(httpStatus, errorResponse); sendErr != nil {
		slog.Error("Failed to send error response",
			"trace_id", traceID,
			"error", sendErr.Error(),
		)
	}
}

func toErrorResponse(err error, traceID string) (*errors.ErrorResponse, int) {
	var echoErr *echo.HTTPError
	var validationErrs validator.ValidationErrors
	var fetchErr *errors.FetchError

	switch {
	case goerrors.As(err, &echoErr):
		resp := errors.NewErrorResponse(
			mapHTTPStatusToErrorCode(echoErr.Code),
			traceID,
			errors.WithMessage(fmt.Sprintf("%v", echoErr.Message)),
		)
		return resp, echoErr.Code

	case goerrors.As(err, &validationErrs):
		return errors.NewValidationError(validation.FormatErrors(validationErrs), traceID), http.StatusBadRequest

	case goerrors.As(err, &fetchErr):
		resp := errors.NewUpstreamError(fetchErr, traceID)
		return resp, resp.GetHTTPStatus()

	default:
		resp, _ := errors.WrapSystemError(err, traceID)
		return resp, resp.GetHTTPStatus()
	}
}

// mapHTTPStatusToErrorCode maps HTTP status codes to error codes
func mapHTTPStatusToErrorCode(status int) errors.ErrorCode {
	switch status {
	case http.StatusBadRequest, http.StatusMethodNotAllowed, http.StatusUnprocessableEntity,
		http.StatusUnsupportedMediaType, http.StatusRequestEntityTooLarge:
		return errors.ValidationGeneral
	case http.StatusNotFound:
		return errors.SystemRouteNotFound
	case http.StatusTooManyRequests:
		return errors.SystemRateLimitExceeded
	case http.StatusInternalServerError:
		return errors.SystemInternalError
	case http.StatusBadGateway:
		return errors.UpstreamServerError
	case http.StatusServiceUnavailable:
		return errors.SystemServiceUnavailable
	case http.StatusGatewayTimeout:
		return errors.UpstreamTimeout
	default:
		return errors.SystemUnexpectedError
	}
}
