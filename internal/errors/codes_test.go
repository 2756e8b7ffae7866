package errors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

// CodesTestSuite defines the test suite for error codes
type CodesTestSuite struct {
	suite.Suite
}

// TestCodesTestSuite runs the test suite
func TestCodesTestSuite(t *testing.T) {
	suite.Run(t, new(CodesTestSuite))
}

func allCodes() []ErrorCode {
	return []ErrorCode{
		UpstreamUnavailable,
		UpstreamServerError,
		UpstreamMalformedResponse,
		UpstreamTimeout,
		UpstreamCircuitOpen,
		ValidationGeneral,
		ValidationRequiredField,
		ValidationInvalidFormat,
		ValidationOutOfRange,
		ValidationInvalidDate,
		MerchantNotFound,
		MerchantInvalidID,
		MerchantCreateFailed,
		MerchantUpdateFailed,
		TransactionInvalidAmount,
		TransactionCreateFailed,
		TransactionInvalidRange,
		DashboardNotLoaded,
		DashboardInvalidPage,
		SystemInternalError,
		SystemDatabaseError,
		SystemServiceUnavailable,
		SystemConfigurationError,
		SystemUnexpectedError,
		SystemRateLimitExceeded,
		SystemRouteNotFound,
	}
}

// TestGetErrorMessage_ValidCode tests getting message for valid error codes
func (s *CodesTestSuite) TestGetErrorMessage_ValidCode() {
	testCases := []struct {
		name     string
		code     ErrorCode
		expected string
	}{
		{
			name:     "Upstream Unavailable",
			code:     UpstreamUnavailable,
			expected: "Merchant API is unreachable",
		},
		{
			name:     "Validation General",
			code:     ValidationGeneral,
			expected: "Validation failed",
		},
		{
			name:     "Merchant Not Found",
			code:     MerchantNotFound,
			expected: "Merchant not found",
		},
		{
			name:     "Transaction Create Failed",
			code:     TransactionCreateFailed,
			expected: "Failed to add transaction",
		},
		{
			name:     "Rate Limit",
			code:     SystemRateLimitExceeded,
			expected: "Rate limit exceeded. Please try again later",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, GetErrorMessage(tc.code))
		})
	}
}

// TestGetErrorMessage_InvalidCode tests getting message for an unknown code
func (s *CodesTestSuite) TestGetErrorMessage_InvalidCode() {
	s.Equal("An error occurred", GetErrorMessage(ErrorCode("NOPE_999")))
}

func (s *CodesTestSuite) TestIsValidErrorCode() {
	for _, code := range allCodes() {
		s.True(IsValidErrorCode(code), "Expected %s to be valid", code)
	}
	s.False(IsValidErrorCode(ErrorCode("")))
	s.False(IsValidErrorCode(ErrorCode("AUTH_001")))
}

// TestErrorCodeConstants_Uniqueness ensures all error codes are unique
func (s *CodesTestSuite) TestErrorCodeConstants_Uniqueness() {
	seen := make(map[ErrorCode]bool)
	for _, code := range allCodes() {
		s.False(seen[code], "Duplicate error code found: %s", code)
		seen[code] = true
	}
}

// TestErrorCodeConstants_Format ensures all error codes follow naming convention
func (s *CodesTestSuite) TestErrorCodeConstants_Format() {
	prefixes := []string{"UPSTREAM_", "VALIDATION_", "MERCHANT_", "TRANSACTION_", "DASHBOARD_", "SYSTEM_"}
	for _, code := range allCodes() {
		matched := false
		for _, prefix := range prefixes {
			if strings.HasPrefix(string(code), prefix) {
				matched = true
				break
			}
		}
		s.True(matched, "Error code %s has an unknown prefix", code)
	}
}

// TestAllErrorCodesHaveMessages ensures every error code has a message
func (s *CodesTestSuite) TestAllErrorCodesHaveMessages() {
	for _, code := range allCodes() {
		s.NotEqual("An error occurred", GetErrorMessage(code), "Error code %s should have a message", code)
	}
}
