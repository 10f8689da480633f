package chi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/findmytutor/tutormatch/internal/domain/match"
	"github.com/findmytutor/tutormatch/internal/metrics"
	"github.com/findmytutor/tutormatch/internal/usecase/recommend"
)

type recommendRequest struct {
	Query      string   `json:"query"`
	MaxPrice   *float64 `json:"max_price,omitempty"`
	OnlineOnly bool     `json:"online_only,omitempty"`
	Limit      int      `json:"limit,omitempty"`
}

type recommendFilters struct {
	MaxPrice   *float64 `json:"max_price"`
	OnlineOnly bool     `json:"online_only"`
	Limit      int      `json:"limit"`
}

type recommendResponse struct {
	Status  string           `json:"status"`
	Query   string           `json:"query"`
	Filters recommendFilters `json:"filters"`
	Count   int              `json:"count"`
	Results []resultJSON     `json:"results"`
}

type termMatchJSON struct {
	Term         string  `json:"term"`
	QueryWeight  float64 `json:"query_weight"`
	TutorWeight  float64 `json:"tutor_weight"`
	Contribution float64 `json:"contribution"`
}

type factorJSON struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Impact      string   `json:"impact"`
	Keywords    []string `json:"keywords,omitempty"`
	Value       *float64 `json:"value,omitempty"`
}

type explanationJSON struct {
	Summary          string          `json:"summary"`
	Strength         string          `json:"strength"`
	MatchingKeywords []string        `json:"matching_keywords"`
	DetailedMatches  []termMatchJSON `json:"detailed_matches"`
	Factors          []factorJSON    `json:"factors"`
}

type resultJSON struct {
	Rank            int             `json:"rank"`
	Tutor           tutorJSON       `json:"tutor"`
	Similarity      float64         `json:"similarity_score"`
	MatchPercentage float64         `json:"match_percentage"`
	Explanation     explanationJSON `json:"explanation"`
}

// handleRecommend handles POST /api/v1/recommendations.
func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	var req recommendRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	if strings.TrimSpace(req.Query) == "" {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "Query is required")
		return
	}

	matchReq, err := match.NewBoundedRequest(req.Query, req.Limit, req.MaxPrice, req.OnlineOnly, s.recommendLimits)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, err.Error())
		return
	}

	results, err := s.recommender.Recommend(r.Context(), matchReq)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	items := make([]resultJSON, len(results))
	for i := range results {
		items[i] = resultToJSON(&results[i])
	}

	var maxPrice *float64
	if v, ok := matchReq.MaxPrice(); ok {
		maxPrice = &v
	}

	writeJSON(w, http.StatusOK, recommendResponse{
		Status: "success",
		Query:  matchReq.Query(),
		Filters: recommendFilters{
			MaxPrice:   maxPrice,
			OnlineOnly: matchReq.OnlineOnly(),
			Limit:      matchReq.Limit(),
		},
		Count:   len(items),
		Results: items,
	})
}

type explainRequest struct {
	Query   string `json:"query"`
	TutorID string `json:"tutor_id"`
}

type weightedTermJSON struct {
	Term   string  `json:"term"`
	Weight float64 `json:"weight"`
}

type insightResponse struct {
	Status         string             `json:"status"`
	Query          string             `json:"query"`
	TutorID        string             `json:"tutor_id"`
	TutorName      string             `json:"tutor_name"`
	Similarity     float64            `json:"similarity_score"`
	Explanation    explanationJSON    `json:"explanation"`
	QueryTerms     []weightedTermJSON `json:"query_terms"`
	MatchingTerms  []termMatchJSON    `json:"matching_terms"`
	VocabularySize int                `json:"vocabulary_size"`
}

// handleExplain handles POST /api/v1/recommendations/explain.
func (s *Server) handleExplain(w http.ResponseWriter, r *http.Request) {
	var req explainRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	if strings.TrimSpace(req.Query) == "" {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "Query is required")
		return
	}
	if req.TutorID == "" {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "Tutor id is required")
		return
	}

	insight, err := s.recommender.Explain(r.Context(), req.Query, req.TutorID)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, insightToJSON(insight))
}

// handleSimilar handles GET /api/v1/tutors/{id}/similar.
func (s *Server) handleSimilar(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, codeValidationFailed, "Limit must be an integer")
			return
		}
		limit = n
	}

	results, err := s.recommender.Similar(r.Context(), id, limit)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	items := make([]resultJSON, len(results))
	for i := range results {
		items[i] = resultToJSON(&results[i])
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "success",
		"tutor_id": id,
		"count":    len(items),
		"results":  items,
	})
}

type scopeUsageJSON struct {
	Used      int64 `json:"used"`
	Limit     int64 `json:"limit"`
	Remaining int64 `json:"remaining"`
}

// handleRecommendHealth handles GET /api/v1/recommendations/health.
func (s *Server) handleRecommendHealth(w http.ResponseWriter, r *http.Request) {
	stats, err := s.health.Statistics(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	metrics.CorpusTutors.Set(float64(stats.TotalTutors))

	requestsToday := make(map[string]scopeUsageJSON, len(stats.RequestsToday))
	for _, u := range stats.RequestsToday {
		requestsToday[u.Scope] = scopeUsageJSON{
			Used:      u.Used,
			Limit:     u.Limit,
			Remaining: u.Remaining,
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"service":   "tutor_recommendations",
		"algorithm": "tfidf_cosine_similarity",
		"statistics": map[string]any{
			"total_tutors":   stats.TotalTutors,
			"total_reviews":  stats.TotalReviews,
			"requests_today": requestsToday,
		},
	})
}

func resultToJSON(res *match.Result) resultJSON {
	return resultJSON{
		Rank:            res.Rank(),
		Tutor:           tutorToJSON(res.Tutor()),
		Similarity:      res.Similarity(),
		MatchPercentage: res.MatchPercentage(),
		Explanation:     explanationToJSON(res.Explanation()),
	}
}

func explanationToJSON(expl match.Explanation) explanationJSON {
	matches := make([]termMatchJSON, len(expl.DetailedMatches()))
	for i, m := range expl.DetailedMatches() {
		matches[i] = termMatchJSON{
			Term:         m.Term(),
			QueryWeight:  m.QueryWeight(),
			TutorWeight:  m.TutorWeight(),
			Contribution: m.Contribution(),
		}
	}

	factors := make([]factorJSON, len(expl.Factors()))
	for i, f := range expl.Factors() {
		fj := factorJSON{
			Name:        f.Name(),
			Description: f.Description(),
			Impact:      string(f.Impact()),
			Keywords:    f.Keywords(),
		}
		if v, ok := f.Value(); ok {
			fj.Value = &v
		}
		factors[i] = fj
	}

	keywords := expl.MatchingKeywords()
	if keywords == nil {
		keywords = []string{}
	}

	return explanationJSON{
		Summary:          expl.Summary(),
		Strength:         string(expl.Strength()),
		MatchingKeywords: keywords,
		DetailedMatches:  matches,
		Factors:          factors,
	}
}

func insightToJSON(in recommend.Insight) insightResponse {
	queryTerms := make([]weightedTermJSON, len(in.QueryTerms))
	for i, t := range in.QueryTerms {
		queryTerms[i] = weightedTermJSON{Term: t.Term, Weight: t.Weight}
	}

	matching := make([]termMatchJSON, len(in.MatchingTerms))
	for i, m := range in.MatchingTerms {
		matching[i] = termMatchJSON{
			Term:         m.Term(),
			QueryWeight:  m.QueryWeight(),
			TutorWeight:  m.TutorWeight(),
			Contribution: m.Contribution(),
		}
	}

	return insightResponse{
		Status:         "success",
		Query:          in.Query,
		TutorID:        in.TutorID,
		TutorName:      in.TutorName,
		Similarity:     in.Similarity,
		Explanation:    explanationToJSON(in.Explanation),
		QueryTerms:     queryTerms,
		MatchingTerms:  matching,
		VocabularySize: in.VocabularySize,
	}
}
