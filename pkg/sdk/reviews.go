package sdk

import (
	"context"
	"net/http"
	"net/url"
)

// ReviewsAPI groups review storage and sentiment analysis operations.
type ReviewsAPI struct {
	client *Client
}

// Add stores a review for a tutor. The tutor's average rating is
// recomputed and the comment is sentiment-tagged in the result.
func (a *ReviewsAPI) Add(ctx context.Context, tutorID string, input ReviewInput) (AddReviewResult, error) {
	path := "/api/v1/tutors/" + url.PathEscape(tutorID) + "/reviews"

	var result AddReviewResult
	if err := a.client.do(ctx, "review_add", http.MethodPost, path, input, &result); err != nil {
		return AddReviewResult{}, err
	}
	return result, nil
}

// List returns a tutor's reviews, newest first.
func (a *ReviewsAPI) List(ctx context.Context, tutorID string) ([]Review, error) {
	path := "/api/v1/tutors/" + url.PathEscape(tutorID) + "/reviews"

	var resp struct {
		Reviews []Review `json:"reviews"`
	}
	if err := a.client.do(ctx, "review_list", http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Reviews, nil
}

// Analyze scores one comment.
func (a *ReviewsAPI) Analyze(ctx context.Context, comment string) (Analysis, error) {
	req := struct {
		Comment string `json:"comment"`
	}{Comment: comment}

	var resp struct {
		Analysis Analysis `json:"analysis"`
	}
	err := a.client.do(ctx, "analyze", http.MethodPost, "/api/v1/reviews/analyze", req, &resp)
	if err != nil {
		return Analysis{}, err
	}
	return resp.Analysis, nil
}

// AnalyzeDetailed scores one comment with per-sentence breakdown,
// emotion flags and a moderation verdict.
func (a *ReviewsAPI) AnalyzeDetailed(ctx context.Context, comment string) (DetailedAnalysis, error) {
	req := struct {
		Comment  string `json:"comment"`
		Detailed bool   `json:"detailed"`
	}{Comment: comment, Detailed: true}

	var resp struct {
		Analysis DetailedAnalysis `json:"analysis"`
	}
	err := a.client.do(ctx, "analyze_detailed", http.MethodPost, "/api/v1/reviews/analyze", req, &resp)
	if err != nil {
		return DetailedAnalysis{}, err
	}
	return resp.Analysis, nil
}

// AnalyzeBatch scores up to 100 comments in one call.
func (a *ReviewsAPI) AnalyzeBatch(ctx context.Context, comments []string) (BatchAnalysis, error) {
	req := struct {
		Comments []string `json:"comments"`
	}{Comments: comments}

	var result BatchAnalysis
	err := a.client.do(ctx, "analyze_batch", http.MethodPost, "/api/v1/reviews/analyze/batch", req, &result)
	if err != nil {
		return BatchAnalysis{}, err
	}
	return result, nil
}
