package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Upstream error codes (UPSTREAM_*)
const (
	UpstreamUnavailable       ErrorCode = "UPSTREAM_001"
	UpstreamServerError       ErrorCode = "UPSTREAM_002"
	UpstreamMalformedResponse ErrorCode = "UPSTREAM_003"
	UpstreamTimeout           ErrorCode = "UPSTREAM_004"
	UpstreamCircuitOpen       ErrorCode = "UPSTREAM_005"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
)

// Merchant error codes (MERCHANT_*)
const (
	MerchantNotFound     ErrorCode = "MERCHANT_001"
	MerchantInvalidID    ErrorCode = "MERCHANT_002"
	MerchantCreateFailed ErrorCode = "MERCHANT_003"
	MerchantUpdateFailed ErrorCode = "MERCHANT_004"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionInvalidAmount ErrorCode = "TRANSACTION_001"
	TransactionCreateFailed  ErrorCode = "TRANSACTION_002"
	TransactionInvalidRange  ErrorCode = "TRANSACTION_003"
)

// Dashboard error codes (DASHBOARD_*)
const (
	DashboardNotLoaded   ErrorCode = "DASHBOARD_001"
	DashboardInvalidPage ErrorCode = "DASHBOARD_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
	SystemRouteNotFound      ErrorCode = "SYSTEM_007"
)

var errorMessages = map[ErrorCode]string{
	// Upstream errors
	UpstreamUnavailable:       "Merchant API is unreachable",
	UpstreamServerError:       "Merchant API returned an error",
	UpstreamMalformedResponse: "Merchant API returned an unexpected response",
	UpstreamTimeout:           "Merchant API request timed out",
	UpstreamCircuitOpen:       "Merchant API calls are paused after repeated failures",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Invalid date format or range",

	// Merchant errors
	MerchantNotFound:     "Merchant not found",
	MerchantInvalidID:    "Invalid merchant ID",
	MerchantCreateFailed: "Failed to create merchant",
	MerchantUpdateFailed: "Failed to update merchant",

	// Transaction errors
	TransactionInvalidAmount: "Invalid transaction amount",
	TransactionCreateFailed:  "Failed to add transaction",
	TransactionInvalidRange:  "Start date must not be after end date",

	// Dashboard errors
	DashboardNotLoaded:   "Dashboard data has not been loaded yet",
	DashboardInvalidPage: "Invalid page number",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemRouteNotFound:      "Route not found",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
