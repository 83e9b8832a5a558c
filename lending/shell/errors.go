package shell

import (
	"context"
	"errors"

	"github.com/librarydesk/lendingdesk/eventstore"
	"github.com/librarydesk/lendingdesk/lending/core"
)

// Error types used as the error_type label on metrics and spans.
const (
	ErrorTypeNotFound            = "not_found"
	ErrorTypeNotAvailable        = "not_available"
	ErrorTypeLimitExceeded       = "limit_exceeded"
	ErrorTypeInvalidInput        = "invalid_input"
	ErrorTypeCanceled            = "canceled"
	ErrorTypeTimeout             = "timeout"
	ErrorTypeConcurrencyConflict = "concurrency_conflict"
	ErrorTypeInternal            = "internal"
)

// ClassifyError maps an error returned by a handler to an error type label.
// It returns "" for a nil error.
func ClassifyError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, core.ErrBookNotFound), errors.Is(err, core.ErrMemberNotFound):
		return ErrorTypeNotFound
	case errors.Is(err, core.ErrBookNotAvailable):
		return ErrorTypeNotAvailable
	case errors.Is(err, core.ErrMaxBooksExceeded):
		return ErrorTypeLimitExceeded
	case errors.Is(err, core.ErrInvalidInput):
		return ErrorTypeInvalidInput
	case IsCancellationError(err):
		return ErrorTypeCanceled
	case IsTimeoutError(err):
		return ErrorTypeTimeout
	case IsConcurrencyConflictError(err):
		return ErrorTypeConcurrencyConflict
	default:
		return ErrorTypeInternal
	}
}

// IsRejection reports whether err is one of the core lending rule failures,
// as opposed to an infrastructure failure.
func IsRejection(err error) bool {
	switch ClassifyError(err) {
	case ErrorTypeNotFound, ErrorTypeNotAvailable, ErrorTypeLimitExceeded, ErrorTypeInvalidInput:
		return true
	default:
		return false
	}
}

// IsCancellationError checks if an error is due to context cancellation.
func IsCancellationError(err error) bool {
	return errors.Is(err, context.Canceled)
}

// IsTimeoutError checks if an error is due to context deadline exceeded.
func IsTimeoutError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded)
}

// IsConcurrencyConflictError checks if an error is due to the journal's optimistic concurrency check.
func IsConcurrencyConflictError(err error) bool {
	return errors.Is(err, eventstore.ErrConcurrencyConflict)
}
