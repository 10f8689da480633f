package chi

import (
	"fmt"
	"net/http"
	"strings"

	domusage "github.com/findmytutor/tutormatch/internal/domain/usage"
	"github.com/findmytutor/tutormatch/internal/metrics"
	"github.com/findmytutor/tutormatch/internal/usecase/sentiment"
)

type analyzeRequest struct {
	Comment  string `json:"comment"`
	Detailed bool   `json:"detailed,omitempty"`
}

type analysisJSON struct {
	Polarity     float64 `json:"polarity"`
	Subjectivity float64 `json:"subjectivity"`
	Sentiment    string  `json:"sentiment"`
	Confidence   string  `json:"confidence"`
	WordCount    int     `json:"word_count"`
}

type sentenceJSON struct {
	Text      string  `json:"text"`
	Polarity  float64 `json:"polarity"`
	Sentiment string  `json:"sentiment"`
}

type emotionsJSON struct {
	Joy          bool `json:"joy"`
	Gratitude    bool `json:"gratitude"`
	Frustration  bool `json:"frustration"`
	Satisfaction bool `json:"satisfaction"`
	Confusion    bool `json:"confusion"`
	Enthusiasm   bool `json:"enthusiasm"`
}

type moderationJSON struct {
	AutoApprove    bool     `json:"auto_approve"`
	Action         string   `json:"action"`
	Issues         []string `json:"issues"`
	ReviewPriority string   `json:"review_priority,omitempty"`
}

type detailedJSON struct {
	analysisJSON
	Sentences  []sentenceJSON `json:"sentences"`
	Emotions   emotionsJSON   `json:"emotions"`
	Moderation moderationJSON `json:"moderation"`
}

// handleAnalyze handles POST /api/v1/reviews/analyze.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	if strings.TrimSpace(req.Comment) == "" {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "Comment is required")
		return
	}

	if !s.allowQuota(w, r, domusage.ScopeSentiment) {
		return
	}

	if req.Detailed {
		detailed := s.scorer.AnalyzeDetailed(req.Comment)
		metrics.SentimentAnalysesTotal.WithLabelValues(string(detailed.Label)).Inc()
		metrics.ModerationOutcomesTotal.WithLabelValues(string(detailed.Moderation.Action)).Inc()
		writeJSON(w, http.StatusOK, map[string]any{
			"status":   "success",
			"analysis": detailedToJSON(detailed),
		})
		return
	}

	analysis := s.scorer.Analyze(req.Comment)
	metrics.SentimentAnalysesTotal.WithLabelValues(string(analysis.Label)).Inc()
	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "success",
		"analysis": analysisToJSON(analysis),
	})
}

type analyzeBatchRequest struct {
	Comments []string `json:"comments"`
}

// handleAnalyzeBatch handles POST /api/v1/reviews/analyze/batch.
func (s *Server) handleAnalyzeBatch(w http.ResponseWriter, r *http.Request) {
	var req analyzeBatchRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	if len(req.Comments) == 0 || len(req.Comments) > sentiment.MaxBatchSize {
		writeError(w, http.StatusBadRequest, codeValidationFailed,
			fmt.Sprintf("comments count must be between 1 and %d", sentiment.MaxBatchSize))
		return
	}

	if !s.allowQuota(w, r, domusage.ScopeSentiment) {
		return
	}

	analyses := s.scorer.Batch(req.Comments)
	items := make([]analysisJSON, len(analyses))
	for i, a := range analyses {
		metrics.SentimentAnalysesTotal.WithLabelValues(string(a.Label)).Inc()
		items[i] = analysisToJSON(a)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "success",
		"count":   len(items),
		"results": items,
		"summary": summaryToJSON(s.scorer.Summarize(req.Comments)),
	})
}

func analysisToJSON(a sentiment.Analysis) analysisJSON {
	return analysisJSON{
		Polarity:     a.Polarity,
		Subjectivity: a.Subjectivity,
		Sentiment:    string(a.Label),
		Confidence:   string(a.Confidence),
		WordCount:    a.WordCount,
	}
}

func detailedToJSON(d sentiment.DetailedAnalysis) detailedJSON {
	sentences := make([]sentenceJSON, len(d.Sentences))
	for i, sc := range d.Sentences {
		sentences[i] = sentenceJSON{
			Text:      sc.Text,
			Polarity:  sc.Polarity,
			Sentiment: string(sc.Label),
		}
	}

	issues := d.Moderation.Issues
	if issues == nil {
		issues = []string{}
	}

	return detailedJSON{
		analysisJSON: analysisToJSON(d.Analysis),
		Sentences:    sentences,
		Emotions: emotionsJSON{
			Joy:          d.Emotions.Joy,
			Gratitude:    d.Emotions.Gratitude,
			Frustration:  d.Emotions.Frustration,
			Satisfaction: d.Emotions.Satisfaction,
			Confusion:    d.Emotions.Confusion,
			Enthusiasm:   d.Emotions.Enthusiasm,
		},
		Moderation: moderationJSON{
			AutoApprove:    d.Moderation.AutoApprove,
			Action:         string(d.Moderation.Action),
			Issues:         issues,
			ReviewPriority: d.Moderation.ReviewPriority,
		},
	}
}

func summaryToJSON(sm sentiment.Summary) map[string]any {
	return map[string]any{
		"total_reviews":    sm.TotalReviews,
		"average_polarity": sm.AveragePolarity,
		"overall":          string(sm.Overall),
		"distribution": map[string]int{
			"positive": sm.Distribution.Positive,
			"neutral":  sm.Distribution.Neutral,
			"negative": sm.Distribution.Negative,
		},
		"percentage": map[string]float64{
			"positive": sm.Percentage.Positive,
			"neutral":  sm.Percentage.Neutral,
			"negative": sm.Percentage.Negative,
		},
	}
}
