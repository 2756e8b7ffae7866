package errors

import (
	"fmt"
	"net/http"
	"sort"
)

// ErrorResponse represents the standardized API error response structure
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains the detailed error information
type ErrorDetail struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
	TraceID string   `json:"trace_id"`
}

// ErrorOption is a functional option for configuring error responses
type ErrorOption func(*ErrorResponse)

// WithDetails adds detail messages to the error response
func WithDetails(details ...string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Details = details
	}
}

// WithMessage overrides the default message for the error code
func WithMessage(message string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Message = message
	}
}

// NewErrorResponse creates a standardized error response with the given error code and trace ID
// Optional details can be added using functional options
func NewErrorResponse(code ErrorCode, traceID string, opts ...ErrorOption) *ErrorResponse {
	response := &ErrorResponse{
		Error: ErrorDetail{
			Code:    string(code),
			Message: GetErrorMessage(code),
			TraceID: traceID,
			Details: []string{},
		},
	}

	for _, opt := range opts {
		opt(response)
	}

	return response
}

// NewValidationError reports field failures as VALIDATION_001. Details are
// "field: message" sorted by field so responses are stable.
func NewValidationError(fieldErrors map[string]string, traceID string) *ErrorResponse {
	fields := make([]string, 0, len(fieldErrors))
	for field := range fieldErrors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	details := make([]string, 0, len(fields))
	for _, field := range fields {
		details = append(details, fmt.Sprintf("%s: %s", field, fieldErrors[field]))
	}
	return NewErrorResponse(ValidationGeneral, traceID, WithDetails(details...))
}

// NewUpstreamError converts a fetch-path error into an error response. The
// upstream's own message, or the reason a payload was refused locally, is
// surfaced as the detail. Transport causes stay server-side.
func NewUpstreamError(fe *FetchError, traceID string) *ErrorResponse {
	response := NewErrorResponse(fe.ErrorCode(), traceID)
	switch fe.Kind {
	case KindServer, KindValidation:
		if fe.Message != "" {
			response.Error.Details = []string{fe.Message}
		}
	}
	return response
}

// WrapSystemError hides err behind SYSTEM_001. err is returned unchanged for
// server-side logging.
func WrapSystemError(err error, traceID string) (*ErrorResponse, error) {
	return NewErrorResponse(SystemInternalError, traceID), err
}

// WrapDatabaseError hides an audit store failure behind SYSTEM_002
func WrapDatabaseError(err error, traceID string) (*ErrorResponse, error) {
	return NewErrorResponse(SystemDatabaseError, traceID), err
}

// GetHTTPStatus returns the appropriate HTTP status code for the error code
func GetHTTPStatus(code ErrorCode) int {
	switch code {
	// 400 Bad Request - Validation errors, malformed requests
	case ValidationGeneral, ValidationRequiredField, ValidationInvalidFormat,
		ValidationOutOfRange, ValidationInvalidDate, MerchantInvalidID,
		TransactionInvalidAmount, TransactionInvalidRange, DashboardInvalidPage:
		return http.StatusBadRequest

	// 404 Not Found - Resource not found
	case MerchantNotFound, SystemRouteNotFound:
		return http.StatusNotFound

	// 409 Conflict - Dashboard has nothing to show yet
	case DashboardNotLoaded:
		return http.StatusConflict

	// 422 Unprocessable Entity - Upstream rejected the mutation
	case MerchantCreateFailed, MerchantUpdateFailed, TransactionCreateFailed:
		return http.StatusUnprocessableEntity

	// 429 Too Many Requests - Rate limiting
	case SystemRateLimitExceeded:
		return http.StatusTooManyRequests

	// 502 Bad Gateway - Upstream answered but the answer is unusable
	case UpstreamServerError, UpstreamMalformedResponse:
		return http.StatusBadGateway

	// 503 Service Unavailable
	case SystemServiceUnavailable, UpstreamUnavailable, UpstreamCircuitOpen:
		return http.StatusServiceUnavailable

	// 504 Gateway Timeout
	case UpstreamTimeout:
		return http.StatusGatewayTimeout

	case SystemInternalError, SystemDatabaseError, SystemConfigurationError,
		SystemUnexpectedError:
		return http.StatusInternalServerError

	default:
		return http.StatusInternalServerError
	}
}

// GetHTTPStatus returns the HTTP status code for the error response
func (er *ErrorResponse) GetHTTPStatus() int {
	return GetHTTPStatus(ErrorCode(er.Error.Code))
}
