package sdk

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

// stubServer routes method+path pairs to canned handlers and records
// the last decoded request body per route.
type stubServer struct {
	t        *testing.T
	mux      *http.ServeMux
	handlers map[string]map[string]http.HandlerFunc // path -> method -> handler
	bodies   map[string]json.RawMessage
}

func newStubServer(t *testing.T) *stubServer {
	t.Helper()
	return &stubServer{
		t:        t,
		mux:      http.NewServeMux(),
		handlers: make(map[string]map[string]http.HandlerFunc),
		bodies:   make(map[string]json.RawMessage),
	}
}

func (s *stubServer) on(method, path string, status int, body string) {
	key := method + " " + path
	if s.handlers[path] == nil {
		s.handlers[path] = make(map[string]http.HandlerFunc)
		s.mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
			h, ok := s.handlers[r.URL.Path][r.Method]
			if !ok {
				http.NotFound(w, r)
				return
			}
			h(w, r)
		})
	}
	s.handlers[path][method] = func(w http.ResponseWriter, r *http.Request) {
		if r.Body != nil {
			var raw json.RawMessage
			_ = json.NewDecoder(r.Body).Decode(&raw)
			s.bodies[key] = raw
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}
}

func (s *stubServer) client() (*Client, func()) {
	srv := httptest.NewServer(s.mux)
	c, err := New(srv.URL)
	if err != nil {
		s.t.Fatalf("New: %v", err)
	}
	return c, srv.Close
}

func (s *stubServer) sentBody(method, path string, v any) {
	s.t.Helper()
	raw, ok := s.bodies[method+" "+path]
	if !ok {
		s.t.Fatalf("no body recorded for %s %s", method, path)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		s.t.Fatalf("decode recorded body: %v", err)
	}
}

func TestRecommendations_Recommend(t *testing.T) {
	stub := newStubServer(t)
	stub.on(http.MethodPost, "/api/v1/recommendations", http.StatusOK, `{
		"status": "success",
		"query": "calculus",
		"count": 1,
		"results": [{
			"rank": 1,
			"tutor": {"id": "tut-1", "first_name": "Sarah", "last_name": "Chen", "full_name": "Sarah Chen", "qualifications": ["Mathematics"], "experience_years": 10, "is_online": true},
			"similarity_score": 0.4312,
			"match_percentage": 43.1,
			"explanation": {
				"summary": "Strong match for calculus",
				"strength": "Strong",
				"matching_keywords": ["calculus"],
				"detailed_matches": [{"term": "calculus", "query_weight": 0.8, "tutor_weight": 0.5, "contribution": 0.4}],
				"factors": [{"name": "subject_match", "description": "Qualified in Mathematics", "impact": "high", "keywords": ["mathematics"]}]
			}
		}]
	}`)
	client, done := stub.client()
	defer done()

	recs, err := client.Recommendations().Recommend(context.Background(), RecommendRequest{
		Query:    "calculus",
		MaxPrice: Float(60),
		Limit:    5,
	})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("got %d results, want 1", len(recs))
	}
	top := recs[0]
	if top.Rank != 1 || top.Tutor.ID != "tut-1" || top.Similarity != 0.4312 {
		t.Fatalf("top = %+v", top)
	}
	if top.Explanation.Strength != "Strong" || len(top.Explanation.DetailedMatches) != 1 {
		t.Fatalf("explanation = %+v", top.Explanation)
	}

	var sent RecommendRequest
	stub.sentBody(http.MethodPost, "/api/v1/recommendations", &sent)
	if sent.Query != "calculus" || sent.MaxPrice == nil || *sent.MaxPrice != 60 || sent.Limit != 5 {
		t.Fatalf("sent request = %+v", sent)
	}
}

func TestRecommendations_Explain(t *testing.T) {
	stub := newStubServer(t)
	stub.on(http.MethodPost, "/api/v1/recommendations/explain", http.StatusOK, `{
		"status": "success",
		"query": "calculus",
		"tutor_id": "tut-1",
		"tutor_name": "Sarah Chen",
		"similarity_score": 0.43,
		"explanation": {"summary": "ok", "strength": "Good", "matching_keywords": [], "detailed_matches": [], "factors": []},
		"query_terms": [{"term": "calculus", "weight": 1}],
		"matching_terms": [],
		"vocabulary_size": 120
	}`)
	client, done := stub.client()
	defer done()

	insight, err := client.Recommendations().Explain(context.Background(), "calculus", "tut-1")
	if err != nil {
		t.Fatalf("Explain: %v", err)
	}
	if insight.TutorName != "Sarah Chen" || insight.VocabularySize != 120 {
		t.Fatalf("insight = %+v", insight)
	}
	if len(insight.QueryTerms) != 1 || insight.QueryTerms[0].Term != "calculus" {
		t.Fatalf("query terms = %+v", insight.QueryTerms)
	}
}

func TestRecommendations_Stats(t *testing.T) {
	stub := newStubServer(t)
	stub.on(http.MethodGet, "/api/v1/recommendations/health", http.StatusOK, `{
		"status": "healthy",
		"service": "tutor_recommendations",
		"algorithm": "tfidf_cosine_similarity",
		"statistics": {
			"total_tutors": 42,
			"total_reviews": 137,
			"requests_today": {"recommend": {"used": 17, "limit": 200, "remaining": 183}}
		}
	}`)
	client, done := stub.client()
	defer done()

	stats, err := client.Recommendations().Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.TotalTutors != 42 || stats.TotalReviews != 137 {
		t.Fatalf("stats = %+v", stats)
	}
	if usage := stats.RequestsToday["recommend"]; usage.Remaining != 183 {
		t.Fatalf("recommend usage = %+v", usage)
	}
}

func TestTutors_CRUD(t *testing.T) {
	stub := newStubServer(t)
	stub.on(http.MethodPost, "/api/v1/tutors", http.StatusCreated,
		`{"id": "tut-1", "first_name": "Sarah", "full_name": "Sarah Chen", "qualifications": [], "experience_years": 10, "is_online": true}`)
	stub.on(http.MethodGet, "/api/v1/tutors/tut-1", http.StatusOK,
		`{"id": "tut-1", "first_name": "Sarah", "full_name": "Sarah Chen", "qualifications": [], "experience_years": 10, "is_online": true, "hourly_rate": 55}`)
	stub.on(http.MethodGet, "/api/v1/tutors", http.StatusOK,
		`{"count": 1, "tutors": [{"id": "tut-1", "first_name": "Sarah", "full_name": "Sarah Chen", "qualifications": [], "experience_years": 10, "is_online": true}]}`)
	stub.on(http.MethodPatch, "/api/v1/tutors/tut-1", http.StatusOK,
		`{"id": "tut-1", "first_name": "Sarah", "full_name": "Sarah Chen", "qualifications": [], "experience_years": 10, "is_online": true, "hourly_rate": 60}`)
	stub.on(http.MethodDelete, "/api/v1/tutors/tut-1", http.StatusNoContent, "")
	client, done := stub.client()
	defer done()
	ctx := context.Background()

	created, err := client.Tutors().Create(ctx, TutorAttributes{ID: "tut-1", FirstName: "Sarah", LastName: "Chen"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID != "tut-1" {
		t.Fatalf("created = %+v", created)
	}

	got, err := client.Tutors().Get(ctx, "tut-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.HourlyRate == nil || *got.HourlyRate != 55 {
		t.Fatalf("got = %+v", got)
	}

	all, err := client.Tutors().List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("List returned %d tutors", len(all))
	}

	updated, err := client.Tutors().Update(ctx, "tut-1", TutorPatch{HourlyRate: Float(60)})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.HourlyRate == nil || *updated.HourlyRate != 60 {
		t.Fatalf("updated = %+v", updated)
	}

	var sentPatch map[string]any
	stub.sentBody(http.MethodPatch, "/api/v1/tutors/tut-1", &sentPatch)
	if len(sentPatch) != 1 {
		t.Fatalf("patch body has unset fields: %v", sentPatch)
	}

	if err := client.Tutors().Delete(ctx, "tut-1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
}

func TestTutors_BulkUpsert(t *testing.T) {
	stub := newStubServer(t)
	stub.on(http.MethodPost, "/api/v1/tutors/bulk", http.StatusOK, `{
		"items": [
			{"id": "tut-1", "status": "ok"},
			{"id": "tut-2", "status": "error", "error": "first name is required"}
		],
		"succeeded": 1,
		"failed": 1
	}`)
	client, done := stub.client()
	defer done()

	result, err := client.Tutors().BulkUpsert(context.Background(), []TutorAttributes{
		{ID: "tut-1", FirstName: "Sarah"},
		{ID: "tut-2"},
	})
	if err != nil {
		t.Fatalf("BulkUpsert: %v", err)
	}
	if result.Succeeded != 1 || result.Failed != 1 || len(result.Items) != 2 {
		t.Fatalf("result = %+v", result)
	}
	if result.Items[1].Error == "" {
		t.Fatal("failed item has no error message")
	}
}

func TestTutors_Similar(t *testing.T) {
	stub := newStubServer(t)
	stub.on(http.MethodGet, "/api/v1/tutors/tut-1/similar", http.StatusOK,
		`{"status": "success", "tutor_id": "tut-1", "count": 0, "results": []}`)
	client, done := stub.client()
	defer done()

	recs, err := client.Tutors().Similar(context.Background(), "tut-1", 3)
	if err != nil {
		t.Fatalf("Similar: %v", err)
	}
	if len(recs) != 0 {
		t.Fatalf("got %d results, want 0", len(recs))
	}
}

func TestReviews_AddAndList(t *testing.T) {
	stub := newStubServer(t)
	stub.on(http.MethodPost, "/api/v1/tutors/tut-1/reviews", http.StatusCreated, `{
		"status": "success",
		"review": {"id": "rev-1", "tutor_id": "tut-1", "student_name": "Alex", "rating": 5, "comment": "Excellent", "created_at": "2025-06-01T12:00:00Z"},
		"average_rating": 4.8,
		"sentiment": {"polarity": 0.9, "subjectivity": 0.7, "sentiment": "Positive", "confidence": "high", "word_count": 1}
	}`)
	stub.on(http.MethodGet, "/api/v1/tutors/tut-1/reviews", http.StatusOK, `{
		"tutor_id": "tut-1",
		"count": 1,
		"reviews": [{"id": "rev-1", "tutor_id": "tut-1", "rating": 5, "created_at": "2025-06-01T12:00:00Z"}]
	}`)
	client, done := stub.client()
	defer done()
	ctx := context.Background()

	added, err := client.Reviews().Add(ctx, "tut-1", ReviewInput{StudentName: "Alex", Rating: 5, Comment: "Excellent"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if added.Review.ID != "rev-1" {
		t.Fatalf("added = %+v", added)
	}
	if added.AverageRating == nil || *added.AverageRating != 4.8 {
		t.Fatalf("average rating = %v", added.AverageRating)
	}
	if added.Sentiment == nil || added.Sentiment.Sentiment != "Positive" {
		t.Fatalf("sentiment = %+v", added.Sentiment)
	}

	reviews, err := client.Reviews().List(ctx, "tut-1")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(reviews) != 1 || reviews[0].Rating != 5 {
		t.Fatalf("reviews = %+v", reviews)
	}
}

func TestReviews_Analyze(t *testing.T) {
	stub := newStubServer(t)
	stub.on(http.MethodPost, "/api/v1/reviews/analyze", http.StatusOK, `{
		"status": "success",
		"analysis": {"polarity": -0.6, "subjectivity": 0.8, "sentiment": "Negative", "confidence": "medium", "word_count": 4}
	}`)
	client, done := stub.client()
	defer done()

	analysis, err := client.Reviews().Analyze(context.Background(), "always late, poor teaching")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if analysis.Sentiment != "Negative" || analysis.Polarity != -0.6 {
		t.Fatalf("analysis = %+v", analysis)
	}
}

func TestReviews_AnalyzeDetailed(t *testing.T) {
	stub := newStubServer(t)
	stub.on(http.MethodPost, "/api/v1/reviews/analyze", http.StatusOK, `{
		"status": "success",
		"analysis": {
			"polarity": 0.5, "subjectivity": 0.6, "sentiment": "Positive", "confidence": "high", "word_count": 6,
			"sentences": [{"text": "Great tutor.", "polarity": 0.8, "sentiment": "Positive"}],
			"emotions": {"joy": true, "gratitude": false, "frustration": false, "satisfaction": true, "confusion": false, "enthusiasm": false},
			"moderation": {"auto_approve": true, "action": "approve", "issues": []}
		}
	}`)
	client, done := stub.client()
	defer done()

	detailed, err := client.Reviews().AnalyzeDetailed(context.Background(), "Great tutor. Very helpful.")
	if err != nil {
		t.Fatalf("AnalyzeDetailed: %v", err)
	}
	if !detailed.Moderation.AutoApprove || len(detailed.Sentences) != 1 {
		t.Fatalf("detailed = %+v", detailed)
	}
	if !detailed.Emotions.Joy {
		t.Fatal("joy flag not decoded")
	}

	var sent map[string]any
	stub.sentBody(http.MethodPost, "/api/v1/reviews/analyze", &sent)
	if sent["detailed"] != true {
		t.Fatalf("detailed flag not sent: %v", sent)
	}
}

func TestReviews_AnalyzeBatch(t *testing.T) {
	stub := newStubServer(t)
	stub.on(http.MethodPost, "/api/v1/reviews/analyze/batch", http.StatusOK, `{
		"status": "success",
		"count": 2,
		"results": [
			{"polarity": 0.9, "subjectivity": 0.7, "sentiment": "Positive", "confidence": "high", "word_count": 2},
			{"polarity": -0.4, "subjectivity": 0.6, "sentiment": "Negative", "confidence": "medium", "word_count": 3}
		],
		"summary": {
			"total_reviews": 2,
			"average_polarity": 0.25,
			"overall": "Positive",
			"distribution": {"positive": 1, "neutral": 0, "negative": 1},
			"percentage": {"positive": 50, "neutral": 0, "negative": 50}
		}
	}`)
	client, done := stub.client()
	defer done()

	batch, err := client.Reviews().AnalyzeBatch(context.Background(), []string{"great tutor", "always cancels lessons"})
	if err != nil {
		t.Fatalf("AnalyzeBatch: %v", err)
	}
	if batch.Count != 2 || len(batch.Results) != 2 {
		t.Fatalf("batch = %+v", batch)
	}
	if batch.Summary.Distribution.Positive != 1 || batch.Summary.Percentage.Negative != 50 {
		t.Fatalf("summary = %+v", batch.Summary)
	}
}

func TestTutors_Sentiment(t *testing.T) {
	stub := newStubServer(t)
	stub.on(http.MethodGet, "/api/v1/tutors/tut-1/sentiment", http.StatusOK, `{
		"tutor_id": "tut-1",
		"summary": {
			"total_reviews": 3,
			"average_polarity": 0.6,
			"overall": "Positive",
			"distribution": {"positive": 3, "neutral": 0, "negative": 0},
			"percentage": {"positive": 100, "neutral": 0, "negative": 0}
		}
	}`)
	client, done := stub.client()
	defer done()

	summary, err := client.Tutors().Sentiment(context.Background(), "tut-1")
	if err != nil {
		t.Fatalf("Sentiment: %v", err)
	}
	if summary.TotalReviews != 3 || summary.Overall != "Positive" {
		t.Fatalf("summary = %+v", summary)
	}
}

func TestPricing_PredictRate(t *testing.T) {
	stub := newStubServer(t)
	stub.on(http.MethodPost, "/api/v1/pricing/predict", http.StatusOK, `{
		"status": "success",
		"prediction": {
			"suggested_hourly_rate": 47.5,
			"base_rate": 45,
			"premium_multiplier": 1.05,
			"method": "ml_linear_regression",
			"confidence": "high",
			"model_stats": {"samples_used": 25, "intercept": 28.4, "coefficient": 2.1, "r2_score": 0.82, "rmse": 4.5, "mean_rate": 44, "min_rate": 25, "max_rate": 80, "interpretation": "strong fit"},
			"experience_years": 8,
			"subject": "Mathematics"
		}
	}`)
	client, done := stub.client()
	defer done()

	est, err := client.Pricing().PredictRate(context.Background(), 8, "Mathematics")
	if err != nil {
		t.Fatalf("PredictRate: %v", err)
	}
	if est.Method != "ml_linear_regression" || est.SuggestedRate != 47.5 {
		t.Fatalf("estimate = %+v", est)
	}
	if est.Stats == nil || est.Stats.SamplesUsed != 25 {
		t.Fatalf("stats = %+v", est.Stats)
	}
}

func TestPricing_Market(t *testing.T) {
	stub := newStubServer(t)
	stub.on(http.MethodGet, "/api/v1/pricing/market", http.StatusOK, `{
		"status": "success",
		"analysis": {
			"subject_filter": "Physics",
			"sample_size": 12,
			"rates": {"mean": 42, "median": 40, "min": 25, "max": 70, "std": 9.1},
			"experience": {"mean": 6.5, "min": 1, "max": 20},
			"percentiles": {"p25": 35, "p50": 40, "p75": 48, "p90": 60}
		}
	}`)
	client, done := stub.client()
	defer done()

	report, err := client.Pricing().Market(context.Background(), "Physics")
	if err != nil {
		t.Fatalf("Market: %v", err)
	}
	if report.SampleSize != 12 || report.Rates.Median != 40 || report.Percentiles.P90 != 60 {
		t.Fatalf("report = %+v", report)
	}
}

func TestHealth_Check(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantStatus string
	}{
		{
			name:       "healthy",
			status:     http.StatusOK,
			body:       `{"status": "ok", "checks": {"db": "ok"}}`,
			wantStatus: "ok",
		},
		{
			name:       "unhealthy still decoded",
			status:     http.StatusServiceUnavailable,
			body:       `{"status": "error", "checks": {"db": "error"}}`,
			wantStatus: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := newStubServer(t)
			stub.on(http.MethodGet, "/health", tt.status, tt.body)
			client, done := stub.client()
			defer done()

			status, err := client.Health().Check(context.Background())
			if err != nil {
				t.Fatalf("Check: %v", err)
			}
			if status.Status != tt.wantStatus {
				t.Fatalf("status = %q, want %q", status.Status, tt.wantStatus)
			}
		})
	}
}
