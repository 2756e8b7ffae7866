package errors

import (
	"context"
	goerrors "errors"
	"fmt"
)

// Kind classifies failures on the upstream fetch and submit paths
type Kind string

const (
	KindTransport  Kind = "transport"
	KindServer     Kind = "server"
	KindMalformed  Kind = "malformed"
	KindValidation Kind = "validation"
)

// ErrCircuitOpen is wrapped by transport errors refused locally because the
// upstream circuit breaker is open
var ErrCircuitOpen = goerrors.New("circuit breaker is open")

// GenericFailureMessage is shown when the upstream gave no message of its own
const GenericFailureMessage = "Something went wrong. Please try again."

// FetchError is the error carried by the poll controller state and returned
// by mutation submits. Message is safe to show to end users.
type FetchError struct {
	Kind    Kind   `json:"kind"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
	Timeout bool   `json:"timeout,omitempty"`
	Err     error  `json:"-"`
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s error: %s: %v", e.Kind, e.Message, e.Err)
	}
	if e.Code != "" {
		return fmt.Sprintf("%s error (code %s): %s", e.Kind, e.Code, e.Message)
	}
	return fmt.Sprintf("%s error: %s", e.Kind, e.Message)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// ErrorCode maps the failure to the API error code used in HTTP responses
func (e *FetchError) ErrorCode() ErrorCode {
	switch e.Kind {
	case KindTransport:
		if goerrors.Is(e.Err, ErrCircuitOpen) {
			return UpstreamCircuitOpen
		}
		if e.Timeout {
			return UpstreamTimeout
		}
		return UpstreamUnavailable
	case KindServer:
		return UpstreamServerError
	case KindMalformed:
		return UpstreamMalformedResponse
	case KindValidation:
		return ValidationGeneral
	default:
		return SystemUnexpectedError
	}
}

// NewTransportError wraps a network-level failure. Deadline errors are flagged
// as timeouts so they can be reported distinctly.
func NewTransportError(err error) *FetchError {
	timeout := goerrors.Is(err, context.DeadlineExceeded)
	var te interface{ Timeout() bool }
	if !timeout && goerrors.As(err, &te) {
		timeout = te.Timeout()
	}
	message := "Unable to reach the merchant API"
	if goerrors.Is(err, ErrCircuitOpen) {
		message = "The merchant API is temporarily unavailable"
	} else if timeout {
		message = "The merchant API did not respond in time"
	}
	return &FetchError{Kind: KindTransport, Message: message, Timeout: timeout, Err: err}
}

// NewServerError builds an error for a non-success response code. An empty
// message falls back to the generic one.
func NewServerError(code, message string) *FetchError {
	if message == "" {
		message = GenericFailureMessage
	}
	return &FetchError{Kind: KindServer, Code: code, Message: message}
}

// NewMalformedError reports a response body that could not be decoded
func NewMalformedError(err error) *FetchError {
	return &FetchError{Kind: KindMalformed, Message: "The merchant API returned an unreadable response", Err: err}
}

// NewValidationFailure reports a payload rejected before it was sent
func NewValidationFailure(details string) *FetchError {
	return &FetchError{Kind: KindValidation, Message: details}
}

// AsFetchError normalises any error into a *FetchError. Errors that are not
// already classified are treated as transport failures.
func AsFetchError(err error) *FetchError {
	if err == nil {
		return nil
	}
	var fe *FetchError
	if goerrors.As(err, &fe) {
		return fe
	}
	return NewTransportError(err)
}
