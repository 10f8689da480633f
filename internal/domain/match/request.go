package match

import "fmt"

// Request parameter limits.
const (
	// MaxQueryLength is the maximum allowed query length.
	MaxQueryLength = 4096
	DefaultLimit   = 10
	MaxLimit       = 50
)

// Request is a validated recommendation query.
// A blank query is legal and yields an empty result set downstream;
// rejecting it with a caller-visible error is the transport's choice.
type Request struct {
	query      string
	limit      int
	maxPrice   *float64
	onlineOnly bool
}

// Bounds overrides the result-count limits applied during request
// construction. Zero values fall back to DefaultLimit and MaxLimit.
type Bounds struct {
	DefaultLimit int
	MaxLimit     int
}

// NewRequest normalizes and validates recommendation parameters.
// Limit defaults to 10 and is clamped to 1-50. A non-positive max
// price is treated as absent.
func NewRequest(query string, limit int, maxPrice *float64, onlineOnly bool) (Request, error) {
	return NewBoundedRequest(query, limit, maxPrice, onlineOnly, Bounds{})
}

// NewBoundedRequest is NewRequest with caller-supplied limit bounds.
func NewBoundedRequest(query string, limit int, maxPrice *float64, onlineOnly bool, b Bounds) (Request, error) {
	if b.DefaultLimit <= 0 {
		b.DefaultLimit = DefaultLimit
	}
	if b.MaxLimit <= 0 {
		b.MaxLimit = MaxLimit
	}
	if len(query) > MaxQueryLength {
		return Request{}, fmt.Errorf("query too long (max %d chars)", MaxQueryLength)
	}
	if limit <= 0 {
		limit = b.DefaultLimit
	}
	if limit > b.MaxLimit {
		limit = b.MaxLimit
	}
	if maxPrice != nil && *maxPrice <= 0 {
		maxPrice = nil
	}
	if maxPrice != nil {
		price := *maxPrice
		maxPrice = &price
	}
	return Request{query: query, limit: limit, maxPrice: maxPrice, onlineOnly: onlineOnly}, nil
}

// Query returns the free-text query.
func (r *Request) Query() string { return r.query }

// Limit returns the maximum number of results.
func (r *Request) Limit() int { return r.limit }

// MaxPrice returns the hourly rate ceiling and whether one is set.
func (r *Request) MaxPrice() (float64, bool) {
	if r.maxPrice == nil {
		return 0, false
	}
	return *r.maxPrice, true
}

// OnlineOnly reports whether offline tutors are excluded.
func (r *Request) OnlineOnly() bool { return r.onlineOnly }
