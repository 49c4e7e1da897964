// Package compose contains pure functions for assembling docker-compose
// documents from project options and for verifying the rendered text.
// This is part of the Functional Core - all functions are pure with no I/O.
package compose

import (
	"errors"
	"fmt"
)

// =============================================================================
// Error Types
// =============================================================================

var (
	// Serialization errors
	ErrEncodeFailed = errors.New("cannot encode compose document")

	// Verification input errors
	ErrEmptyInput = errors.New("compose document is empty")

	// YAML parsing errors
	ErrInvalidYAML = errors.New("invalid YAML syntax")

	// Compose structure errors
	ErrNoServices     = errors.New("compose document must define at least one service")
	ErrServiceMissing = errors.New("expected service is not defined")
)

// VerifyError wraps errors with context about which part of the rendered
// document failed verification.
type VerifyError struct {
	Service string // e.g., "mysite-webserver"
	Message string
	Err     error
}

func (e *VerifyError) Error() string {
	if e.Service != "" {
		return fmt.Sprintf("%s: %s", e.Service, e.Message)
	}
	return e.Message
}

func (e *VerifyError) Unwrap() error {
	return e.Err
}

// NewVerifyError creates a new VerifyError.
func NewVerifyError(service, message string, err error) *VerifyError {
	return &VerifyError{
		Service: service,
		Message: message,
		Err:     err,
	}
}
