package sentiment

import "regexp"

// Action is a moderation recommendation for a review.
type Action string

// Moderation actions, from least to most restrictive.
const (
	ActionAutoApprove    Action = "auto_approve"
	ActionFlagForReview  Action = "flag_for_review"
	ActionReviewRequired Action = "review_required"
)

// Moderation issue descriptions.
const (
	issueHighlyNegative = "Highly negative sentiment detected"
	issueStrongLanguage = "Strong negative language detected"
)

// Moderation is a content moderation recommendation. Two or more issues
// block auto-approval.
type Moderation struct {
	AutoApprove    bool
	Action         Action
	Issues         []string
	ReviewPriority string
}

var (
	joyPattern          = regexp.MustCompile(`\b(happy|joy|delighted|pleased|wonderful|amazing|fantastic|great|love|loved)\b`)
	gratitudePattern    = regexp.MustCompile(`\b(thank|grateful|appreciate|appreciative|thankful)\b`)
	frustrationPattern  = regexp.MustCompile(`\b(frustrated|annoying|annoyed|irritated|disappointing|disappointed)\b`)
	satisfactionPattern = regexp.MustCompile(`\b(satisfied|helpful|recommend|excellent|professional|effective)\b`)
	confusionPattern    = regexp.MustCompile(`\b(confused|confusing|unclear|difficult to understand|lost)\b`)
	enthusiasmPattern   = regexp.MustCompile(`\b(enthusiastic|excited|eager|motivated|inspired|inspiring)\b`)

	offensivePattern = regexp.MustCompile(`\b(hate|terrible|worst|awful|horrible|useless|waste)\b`)
)

// detectEmotions matches keyword groups against lowercased text.
func detectEmotions(lower string) Emotions {
	return Emotions{
		Joy:          joyPattern.MatchString(lower),
		Gratitude:    gratitudePattern.MatchString(lower),
		Frustration:  frustrationPattern.MatchString(lower),
		Satisfaction: satisfactionPattern.MatchString(lower),
		Confusion:    confusionPattern.MatchString(lower),
		Enthusiasm:   enthusiasmPattern.MatchString(lower),
	}
}

// moderate recommends a moderation action from the overall polarity and
// the lowercased text.
func moderate(polarity float64, lower string) Moderation {
	var issues []string
	if polarity < -0.6 {
		issues = append(issues, issueHighlyNegative)
	}
	if offensivePattern.MatchString(lower) {
		issues = append(issues, issueStrongLanguage)
	}

	m := Moderation{Issues: issues}
	switch {
	case len(issues) >= 2:
		m.Action = ActionReviewRequired
		m.AutoApprove = false
	case len(issues) == 1:
		m.Action = ActionFlagForReview
		m.AutoApprove = true
	default:
		m.Action = ActionAutoApprove
		m.AutoApprove = true
	}

	if m.AutoApprove {
		m.ReviewPriority = "low"
	} else {
		m.ReviewPriority = "high"
	}
	return m
}
