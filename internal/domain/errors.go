package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrTutorNotFound signals a tutor id absent from the catalog.
	ErrTutorNotFound = errors.New("tutor not found")
	// ErrTutorExists signals a duplicate tutor id on create.
	ErrTutorExists = errors.New("tutor already exists")
	// ErrReviewNotFound signals a missing review.
	ErrReviewNotFound = errors.New("review not found")
	// ErrInvalidArgument signals a request that fails domain validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrQuotaExceeded signals an exhausted daily request quota.
	ErrQuotaExceeded = errors.New("daily quota exceeded")
	// ErrRateLimited signals a rate limit hit.
	ErrRateLimited = errors.New("rate limited")
)

// ValidationError wraps ErrInvalidArgument with the offending field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrInvalidArgument.Error(), e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidArgument }

// NewValidation creates a field-level validation error.
func NewValidation(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// QuotaExceededError wraps ErrQuotaExceeded with the scope and its daily cap.
type QuotaExceededError struct {
	Scope string
	Limit int
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("%s: scope %q allows %d requests per day", ErrQuotaExceeded.Error(), e.Scope, e.Limit)
}

func (e *QuotaExceededError) Unwrap() error { return ErrQuotaExceeded }

// NewQuotaExceeded creates a quota exhaustion error for an API scope.
func NewQuotaExceeded(scope string, limit int) error {
	return &QuotaExceededError{Scope: scope, Limit: limit}
}
