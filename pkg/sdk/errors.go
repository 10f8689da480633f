package sdk

import (
	"fmt"

	"github.com/findmytutor/tutormatch/internal/domain"
)

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrTutorNotFound   = domain.ErrTutorNotFound
	ErrTutorExists     = domain.ErrTutorExists
	ErrReviewNotFound  = domain.ErrReviewNotFound
	ErrInvalidArgument = domain.ErrInvalidArgument
	ErrQuotaExceeded   = domain.ErrQuotaExceeded
	ErrRateLimited     = domain.ErrRateLimited
)

// APIError is a non-2xx response from the service, carrying the wire
// error code and message. Unwrap maps the code back onto the package
// sentinels so errors.Is works across the HTTP boundary.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("sdk: %s (http %d, code %s)", e.Message, e.StatusCode, e.Code)
}

func (e *APIError) Unwrap() error {
	switch e.Code {
	case "tutor_not_found":
		return ErrTutorNotFound
	case "tutor_already_exists":
		return ErrTutorExists
	case "review_not_found":
		return ErrReviewNotFound
	case "bad_request", "validation_failed":
		return ErrInvalidArgument
	case "quota_exceeded":
		return ErrQuotaExceeded
	case "rate_limited":
		return ErrRateLimited
	default:
		return nil
	}
}
