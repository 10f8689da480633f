package match

// Impact is the weight class of a recommendation factor.
type Impact string

// Factor impact levels.
const (
	ImpactHigh   Impact = "high"
	ImpactMedium Impact = "medium"
	ImpactLow    Impact = "low"
)

// Factor is one named contributor to a recommendation, shown to the end user.
// Keywords carries matched terms or subject tags where relevant; value carries
// the numeric basis (rating, years, rate) where one exists.
type Factor struct {
	name        string
	description string
	impact      Impact
	keywords    []string
	value       *float64
}

// NewFactor creates a recommendation factor.
func NewFactor(name, description string, impact Impact, keywords []string, value *float64) Factor {
	return Factor{name: name, description: description, impact: impact, keywords: keywords, value: value}
}

// Name returns the factor name.
func (f Factor) Name() string { return f.name }

// Description returns the human-readable description.
func (f Factor) Description() string { return f.description }

// Impact returns the factor's weight class.
func (f Factor) Impact() Impact { return f.impact }

// Keywords returns associated terms or subject tags.
func (f Factor) Keywords() []string { return f.keywords }

// Value returns the numeric basis and whether one exists.
func (f Factor) Value() (float64, bool) {
	if f.value == nil {
		return 0, false
	}
	return *f.value, true
}
