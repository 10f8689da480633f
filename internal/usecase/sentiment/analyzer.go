// Package sentiment scores review text with a lexicon-based analyzer.
// Every score is a pure function of the input text, so repeated analysis
// of the same comment always produces the same result.
package sentiment

import (
	"math"
	"regexp"
	"strings"
)

// MaxBatchSize bounds a single batch analysis call.
const MaxBatchSize = 100

// Label classifies overall sentiment.
type Label string

// Sentiment labels.
const (
	LabelPositive Label = "Positive"
	LabelNeutral  Label = "Neutral"
	LabelNegative Label = "Negative"
)

// Confidence grades how reliable a classification is.
type Confidence string

// Classification confidence levels.
const (
	ConfidenceHigh   Confidence = "High"
	ConfidenceMedium Confidence = "Medium"
	ConfidenceLow    Confidence = "Low"
)

// Analysis is the sentiment of one text.
type Analysis struct {
	Polarity     float64 // [-1, 1], negative to positive
	Subjectivity float64 // [0, 1], factual to opinionated
	Label        Label
	Confidence   Confidence
	WordCount    int
}

// SentenceScore is the per-sentence breakdown inside a detailed analysis.
type SentenceScore struct {
	Text     string
	Polarity float64
	Label    Label
}

// Emotions are keyword-level emotion signals found in a text.
type Emotions struct {
	Joy          bool
	Gratitude    bool
	Frustration  bool
	Satisfaction bool
	Confusion    bool
	Enthusiasm   bool
}

// DetailedAnalysis extends Analysis with sentence, emotion, and
// moderation signals.
type DetailedAnalysis struct {
	Analysis
	Sentences  []SentenceScore
	Emotions   Emotions
	Moderation Moderation
}

// Distribution counts texts per sentiment label.
type Distribution struct {
	Positive int
	Neutral  int
	Negative int
}

// Percentage is a distribution as shares of the whole, rounded to one
// decimal.
type Percentage struct {
	Positive float64
	Neutral  float64
	Negative float64
}

// Summary aggregates sentiment across a set of texts.
type Summary struct {
	TotalReviews    int
	AveragePolarity float64
	Distribution    Distribution
	Percentage      Percentage
	Overall         Label
}

var (
	urlPattern   = regexp.MustCompile(`http\S+|www\S+`)
	emailPattern = regexp.MustCompile(`\S+@\S+`)
	junkPattern  = regexp.MustCompile(`[^\w\s.,!?'"-]`)
	wordPattern  = regexp.MustCompile(`[a-z']+`)

	sentencePattern = regexp.MustCompile(`[^.!?]+[.!?]*`)
)

// Analyzer scores text against the embedded lexicon. The zero value is
// not usable; construct with NewAnalyzer.
type Analyzer struct{}

// NewAnalyzer creates a lexicon-based sentiment analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Analyze scores a single text. Blank or unanalyzable input yields a
// neutral zero analysis with low confidence.
func (a *Analyzer) Analyze(text string) Analysis {
	cleaned := preprocess(text)
	if cleaned == "" {
		return Analysis{Label: LabelNeutral, Confidence: ConfidenceLow}
	}

	polarity, subjectivity := score(cleaned)

	return Analysis{
		Polarity:     round4(polarity),
		Subjectivity: round4(subjectivity),
		Label:        labelFor(polarity),
		Confidence:   confidenceFor(polarity, subjectivity),
		WordCount:    len(strings.Fields(cleaned)),
	}
}

// AnalyzeDetailed scores a text and adds per-sentence polarities,
// emotion signals, and a moderation recommendation.
func (a *Analyzer) AnalyzeDetailed(text string) DetailedAnalysis {
	basic := a.Analyze(text)
	lower := strings.ToLower(text)

	var sentences []SentenceScore
	for _, raw := range sentencePattern.FindAllString(text, -1) {
		sent := strings.TrimSpace(raw)
		if sent == "" {
			continue
		}
		polarity, _ := score(preprocess(sent))
		sentences = append(sentences, SentenceScore{
			Text:     sent,
			Polarity: round4(polarity),
			Label:    labelFor(polarity),
		})
	}

	return DetailedAnalysis{
		Analysis:   basic,
		Sentences:  sentences,
		Emotions:   detectEmotions(lower),
		Moderation: moderate(basic.Polarity, lower),
	}
}

// Batch analyzes up to MaxBatchSize texts; extras are ignored.
func (a *Analyzer) Batch(texts []string) []Analysis {
	if len(texts) > MaxBatchSize {
		texts = texts[:MaxBatchSize]
	}
	results := make([]Analysis, len(texts))
	for i, text := range texts {
		results[i] = a.Analyze(text)
	}
	return results
}

// Summarize aggregates sentiment across all given texts. Blank texts
// count as neutral in the distribution but are excluded from the
// average polarity.
func (a *Analyzer) Summarize(texts []string) Summary {
	if len(texts) == 0 {
		return Summary{Overall: LabelNeutral}
	}

	var dist Distribution
	var polaritySum float64
	var scored int
	for _, text := range texts {
		result := a.Analyze(text)
		switch result.Label {
		case LabelPositive:
			dist.Positive++
		case LabelNegative:
			dist.Negative++
		default:
			dist.Neutral++
		}
		if result.WordCount > 0 {
			polaritySum += result.Polarity
			scored++
		}
	}

	var avg float64
	if scored > 0 {
		avg = polaritySum / float64(scored)
	}

	total := float64(len(texts))
	return Summary{
		TotalReviews:    len(texts),
		AveragePolarity: round4(avg),
		Distribution:    dist,
		Percentage: Percentage{
			Positive: round1(float64(dist.Positive) / total * 100),
			Neutral:  round1(float64(dist.Neutral) / total * 100),
			Negative: round1(float64(dist.Negative) / total * 100),
		},
		Overall: labelFor(avg),
	}
}

// preprocess strips URLs, email addresses, and special characters, then
// collapses whitespace.
func preprocess(text string) string {
	text = urlPattern.ReplaceAllString(text, "")
	text = emailPattern.ReplaceAllString(text, "")
	text = junkPattern.ReplaceAllString(text, " ")
	return strings.Join(strings.Fields(text), " ")
}

// score averages lexicon hits over the cleaned text. A negation within
// the preceding window flips a hit's polarity at half strength, an
// intensifier scales it by intensifierBoost.
func score(cleaned string) (polarity, subjectivity float64) {
	tokens := wordPattern.FindAllString(strings.ToLower(cleaned), -1)
	for i := range tokens {
		tokens[i] = strings.Trim(tokens[i], "'")
	}

	var pSum, sSum float64
	var matched int
	for i, tok := range tokens {
		e, ok := lexicon[tok]
		if !ok {
			continue
		}

		negated := false
		boost := 1.0
		for j := i - 1; j >= 0 && j >= i-modifierWindow; j-- {
			if isNegation(tokens[j]) {
				negated = true
			}
			if _, ok := intensifiers[tokens[j]]; ok {
				boost = intensifierBoost
			}
		}

		p := e.polarity * boost
		s := math.Min(e.subjectivity*boost, 1)
		if negated {
			p *= -0.5
		}
		p = math.Max(-1, math.Min(1, p))

		pSum += p
		sSum += s
		matched++
	}

	if matched == 0 {
		return 0, 0
	}
	return pSum / float64(matched), sSum / float64(matched)
}

func isNegation(tok string) bool {
	if _, ok := negations[tok]; ok {
		return true
	}
	return strings.HasSuffix(tok, "n't")
}

func labelFor(polarity float64) Label {
	switch {
	case polarity > 0.1:
		return LabelPositive
	case polarity < -0.1:
		return LabelNegative
	default:
		return LabelNeutral
	}
}

// confidenceFor grades a classification: strong polarity in subjective
// text scores high, weak signals score low.
func confidenceFor(polarity, subjectivity float64) Confidence {
	magnitude := math.Abs(polarity)
	switch {
	case magnitude > 0.5 && subjectivity > 0.5:
		return ConfidenceHigh
	case magnitude > 0.2 || subjectivity > 0.3:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }

func round4(v float64) float64 { return math.Round(v*10000) / 10000 }
