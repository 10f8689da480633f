package usage

// Scope identifies a throttled operation family. Quota windows are
// tracked per scope per UTC day.
type Scope string

// Throttled scopes.
const (
	ScopeRecommend Scope = "recommend"
	ScopeSentiment Scope = "sentiment"
	ScopeML        Scope = "ml"
)

// Scopes lists every throttled scope, in reporting order.
func Scopes() []Scope {
	return []Scope{ScopeRecommend, ScopeSentiment, ScopeML}
}

// Window is one scope's request counter for a single UTC day.
type Window struct {
	scope    Scope
	day      string // UTC date, YYYY-MM-DD
	used     int64
	limit    int64
	resetsAt int64 // unix millis, converted to ISO 8601 at transport layer
}

// NewWindow creates a daily window snapshot.
func NewWindow(scope Scope, day string, used, limit, resetsAt int64) Window {
	return Window{scope: scope, day: day, used: used, limit: limit, resetsAt: resetsAt}
}

// Scope returns the throttled scope.
func (w Window) Scope() Scope { return w.scope }

// Day returns the UTC date the window covers.
func (w Window) Day() string { return w.day }

// Used returns the requests consumed so far.
func (w Window) Used() int64 { return w.used }

// Limit returns the daily request cap. A limit of zero or below means
// the scope is not throttled.
func (w Window) Limit() int64 { return w.limit }

// Remaining returns the requests left in the window, never negative.
func (w Window) Remaining() int64 {
	if w.limit <= 0 {
		return 0
	}
	if rem := w.limit - w.used; rem > 0 {
		return rem
	}
	return 0
}

// IsExhausted reports whether the window's cap has been reached.
func (w Window) IsExhausted() bool {
	return w.limit > 0 && w.used >= w.limit
}

// ResetsAt returns the next UTC midnight as unix millis.
func (w Window) ResetsAt() int64 { return w.resetsAt }
