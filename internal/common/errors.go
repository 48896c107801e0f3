// Package common provides shared utilities and types used across the application.
package common

import (
	"context"
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Configuration errors. These are fatal and abort the run before any
	// batch is processed.
	ErrMissingConfig   = errors.New("missing configuration")
	ErrInvalidConfig   = errors.New("invalid configuration")
	ErrUnknownProvider = errors.New("unknown provider")

	// Classification errors.
	ErrNoItems              = errors.New("no items to classify")
	ErrClassificationFailed = errors.New("classification failed")
	ErrInvalidResponse      = errors.New("invalid response from classification service")
)

// RetryableError wraps an error with retry-specific metadata.
type RetryableError struct {
	Err       error
	Retryable bool
}

func (e *RetryableError) Error() string {
	return e.Err.Error()
}

func (e *RetryableError) Unwrap() error {
	return e.Err
}

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// IsRetryable determines if an error should trigger a retry. Configuration
// errors never retry; service and parse failures do.
func IsRetryable(err error) bool {
	if errors.Is(err, ErrMissingConfig) ||
		errors.Is(err, ErrInvalidConfig) ||
		errors.Is(err, ErrUnknownProvider) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var retryableErr *RetryableError
	if errors.As(err, &retryableErr) {
		return retryableErr.Retryable
	}

	return true
}
