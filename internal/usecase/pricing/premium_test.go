package pricing

import "testing"

func TestPremiumFor(t *testing.T) {
	tests := []struct {
		subject string
		want    float64
	}{
		{"machine learning", 1.35},
		{"Machine Learning", 1.35},
		{"advanced calculus", 1.1},
		{"calc", 1.1},
		{"I tutor data science", 1.3},
		{"chemistry", 1.1},
		{"gmat prep", 1.3},
		{"underwater basket weaving", 1},
		{"", 1},
	}
	for _, tc := range tests {
		t.Run(tc.subject, func(t *testing.T) {
			if got := premiumFor(tc.subject); got != tc.want {
				t.Errorf("premiumFor(%q) = %v, want %v", tc.subject, got, tc.want)
			}
		})
	}
}

func TestPremiumFor_FirstMatchWins(t *testing.T) {
	// Both premiums apply textually; the earlier table entry decides.
	if got := premiumFor("data science and machine learning"); got != 1.3 {
		t.Errorf("premiumFor = %v, want 1.3", got)
	}
}
