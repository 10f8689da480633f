package sdk

import (
	"context"
	"net/http"
)

// RecommendationsAPI groups recommendation operations.
type RecommendationsAPI struct {
	client *Client
}

// Recommend returns ranked tutors for a free-text query.
func (a *RecommendationsAPI) Recommend(ctx context.Context, req RecommendRequest) ([]Recommendation, error) {
	var resp struct {
		Results []Recommendation `json:"results"`
	}
	err := a.client.do(ctx, "recommend", http.MethodPost, "/api/v1/recommendations", req, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// Explain breaks down how a query scores against one tutor.
func (a *RecommendationsAPI) Explain(ctx context.Context, query, tutorID string) (Insight, error) {
	req := struct {
		Query   string `json:"query"`
		TutorID string `json:"tutor_id"`
	}{Query: query, TutorID: tutorID}

	var insight Insight
	err := a.client.do(ctx, "explain", http.MethodPost, "/api/v1/recommendations/explain", req, &insight)
	if err != nil {
		return Insight{}, err
	}
	return insight, nil
}

// Stats returns the recommendation service health snapshot: corpus
// sizes and today's quota consumption per scope.
func (a *RecommendationsAPI) Stats(ctx context.Context) (ServiceStats, error) {
	var resp struct {
		Statistics ServiceStats `json:"statistics"`
	}
	err := a.client.do(ctx, "recommend_stats", http.MethodGet, "/api/v1/recommendations/health", nil, &resp)
	if err != nil {
		return ServiceStats{}, err
	}
	return resp.Statistics, nil
}
