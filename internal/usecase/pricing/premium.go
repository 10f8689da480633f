package pricing

import "strings"

// subjectPremiums maps in-demand subjects to rate multipliers. Order
// matters: the first match wins, so more specific subjects must come
// before broader ones they substring-overlap with.
var subjectPremiums = []struct {
	subject    string
	multiplier float64
}{
	{"data science", 1.3},
	{"machine learning", 1.35},
	{"artificial intelligence", 1.4},
	{"python programming", 1.2},
	{"java programming", 1.2},
	{"web development", 1.15},
	{"calculus", 1.1},
	{"statistics", 1.15},
	{"physics", 1.1},
	{"chemistry", 1.1},
	{"sat prep", 1.2},
	{"gre prep", 1.25},
	{"gmat prep", 1.3},
}

// premiumFor returns the multiplier for a subject, matching case-insensitive
// substrings in either direction ("calc" hits "calculus", "advanced calculus"
// hits too). Unknown subjects return 1.
func premiumFor(subject string) float64 {
	if subject == "" {
		return 1
	}
	lower := strings.ToLower(subject)
	for _, p := range subjectPremiums {
		if strings.Contains(lower, p.subject) || strings.Contains(p.subject, lower) {
			return p.multiplier
		}
	}
	return 1
}
