package sentiment

import (
	"reflect"
	"testing"
)

func TestDetectEmotions(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Emotions
	}{
		{
			"gratitude and satisfaction",
			"thank you, such a helpful and professional tutor",
			Emotions{Gratitude: true, Satisfaction: true},
		},
		{
			"joy",
			"I love the sessions, great experience",
			Emotions{Joy: true},
		},
		{
			"frustration and confusion",
			"frustrated and confused after every class",
			Emotions{Frustration: true, Confusion: true},
		},
		{
			"enthusiasm",
			"excited and motivated to keep learning",
			Emotions{Enthusiasm: true},
		},
		{
			"none",
			"we covered quadratic equations",
			Emotions{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := detectEmotions(tt.text); got != tt.want {
				t.Errorf("detectEmotions(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}

func TestDetectEmotions_WholeWordsOnly(t *testing.T) {
	// "thanks" must not match the "thank" keyword.
	if got := detectEmotions("thanks anyway"); got.Gratitude {
		t.Errorf("detectEmotions(%q).Gratitude = true, want false", "thanks anyway")
	}
}

func TestModerate_AutoApprove(t *testing.T) {
	got := moderate(0.8, "great tutor, learned a lot")

	if !got.AutoApprove {
		t.Error("AutoApprove = false, want true")
	}
	if got.Action != ActionAutoApprove {
		t.Errorf("Action = %q, want %q", got.Action, ActionAutoApprove)
	}
	if len(got.Issues) != 0 {
		t.Errorf("Issues = %v, want none", got.Issues)
	}
	if got.ReviewPriority != "low" {
		t.Errorf("ReviewPriority = %q, want %q", got.ReviewPriority, "low")
	}
}

func TestModerate_FlagsOffensiveLanguage(t *testing.T) {
	got := moderate(-0.1, "this was a waste but he improved")

	if got.Action != ActionFlagForReview {
		t.Errorf("Action = %q, want %q", got.Action, ActionFlagForReview)
	}
	if !got.AutoApprove {
		t.Error("AutoApprove = false, want true")
	}
	want := []string{"Strong negative language detected"}
	if !reflect.DeepEqual(got.Issues, want) {
		t.Errorf("Issues = %v, want %v", got.Issues, want)
	}
}

func TestModerate_FlagsHighlyNegativePolarity(t *testing.T) {
	got := moderate(-0.65, "rude and disappointing")

	if got.Action != ActionFlagForReview {
		t.Errorf("Action = %q, want %q", got.Action, ActionFlagForReview)
	}
	want := []string{"Highly negative sentiment detected"}
	if !reflect.DeepEqual(got.Issues, want) {
		t.Errorf("Issues = %v, want %v", got.Issues, want)
	}
	if got.ReviewPriority != "low" {
		t.Errorf("ReviewPriority = %q, want %q", got.ReviewPriority, "low")
	}
}

func TestModerate_TwoIssuesRequireReview(t *testing.T) {
	got := moderate(-0.8, "terrible waste of time")

	if got.Action != ActionReviewRequired {
		t.Errorf("Action = %q, want %q", got.Action, ActionReviewRequired)
	}
	if got.AutoApprove {
		t.Error("AutoApprove = true, want false")
	}
	if got.ReviewPriority != "high" {
		t.Errorf("ReviewPriority = %q, want %q", got.ReviewPriority, "high")
	}
	want := []string{
		"Highly negative sentiment detected",
		"Strong negative language detected",
	}
	if !reflect.DeepEqual(got.Issues, want) {
		t.Errorf("Issues = %v, want %v", got.Issues, want)
	}
}

func TestModerate_PolarityBoundary(t *testing.T) {
	// Exactly -0.6 is not flagged; the threshold is strict.
	if got := moderate(-0.6, "plain text"); len(got.Issues) != 0 {
		t.Errorf("Issues at -0.6 = %v, want none", got.Issues)
	}
	if got := moderate(-0.61, "plain text"); len(got.Issues) != 1 {
		t.Errorf("Issues at -0.61 = %v, want one", got.Issues)
	}
}

func TestAnalyzeDetailed_ModerationEndToEnd(t *testing.T) {
	a := NewAnalyzer()

	t.Run("hostile review blocked from auto approval", func(t *testing.T) {
		got := a.AnalyzeDetailed("Terrible waste of time")

		if got.Polarity != -0.8 {
			t.Errorf("Polarity = %v, want -0.8", got.Polarity)
		}
		if got.Moderation.Action != ActionReviewRequired {
			t.Errorf("Action = %q, want %q", got.Moderation.Action, ActionReviewRequired)
		}
		if got.Moderation.AutoApprove {
			t.Error("AutoApprove = true, want false")
		}
	})

	t.Run("critical but civil review flagged only", func(t *testing.T) {
		got := a.AnalyzeDetailed("Rude and disappointing.")

		if got.Polarity != -0.65 {
			t.Errorf("Polarity = %v, want -0.65", got.Polarity)
		}
		if got.Moderation.Action != ActionFlagForReview {
			t.Errorf("Action = %q, want %q", got.Moderation.Action, ActionFlagForReview)
		}
		if !got.Moderation.AutoApprove {
			t.Error("AutoApprove = false, want true")
		}
		if !got.Emotions.Frustration {
			t.Error("Emotions.Frustration = false, want true")
		}
	})

	t.Run("positive review approved", func(t *testing.T) {
		got := a.AnalyzeDetailed("Wonderful tutor, thank you!")

		if got.Moderation.Action != ActionAutoApprove {
			t.Errorf("Action = %q, want %q", got.Moderation.Action, ActionAutoApprove)
		}
		if !got.Emotions.Joy || !got.Emotions.Gratitude {
			t.Errorf("Emotions = %+v, want joy and gratitude", got.Emotions)
		}
	})
}
