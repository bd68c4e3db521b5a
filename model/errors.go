package model

import "fmt"

// ErrorKind classifies provider call failures so the caller of the run loop
// can pick a retry policy. The run loop itself never retries backend errors.
type ErrorKind int

const (
	// KindTransient marks failures that may succeed on retry (timeouts,
	// rate limits, 5xx responses).
	KindTransient ErrorKind = iota
	// KindMalformedOutput marks responses the adapter could not map into a
	// Response (contract-violating payloads).
	KindMalformedOutput
)

// String returns the string representation of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case KindTransient:
		return "transient"
	case KindMalformedOutput:
		return "malformed_output"
	default:
		return "unknown"
	}
}

// Error wraps a provider failure with its kind.
type Error struct {
	Kind ErrorKind
	Err  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("model error (%s): %v", e.Kind, e.Err)
}

// Unwrap exposes the underlying provider error.
func (e *Error) Unwrap() error { return e.Err }

// NewTransientError wraps err as a retryable provider failure.
func NewTransientError(err error) *Error {
	return &Error{Kind: KindTransient, Err: err}
}

// NewMalformedOutputError wraps err as a contract-violation failure.
func NewMalformedOutputError(err error) *Error {
	return &Error{Kind: KindMalformedOutput, Err: err}
}
