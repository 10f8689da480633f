package match

// Strength grades how well a tutor matches a query.
type Strength string

// Match strength grades, strongest first.
const (
	Excellent Strength = "Excellent"
	Strong    Strength = "Strong"
	Good      Strength = "Good"
	Moderate  Strength = "Moderate"
	Partial   Strength = "Partial"
)

// StrengthFor grades a match percentage on fixed thresholds.
func StrengthFor(matchPercentage float64) Strength {
	switch {
	case matchPercentage >= 70:
		return Excellent
	case matchPercentage >= 50:
		return Strong
	case matchPercentage >= 30:
		return Good
	case matchPercentage >= 15:
		return Moderate
	default:
		return Partial
	}
}
