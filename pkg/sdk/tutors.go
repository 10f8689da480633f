package sdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// TutorsAPI groups tutor catalog operations.
type TutorsAPI struct {
	client *Client
}

// Create registers a new tutor profile.
func (a *TutorsAPI) Create(ctx context.Context, attrs TutorAttributes) (Tutor, error) {
	var t Tutor
	err := a.client.do(ctx, "tutor_create", http.MethodPost, "/api/v1/tutors", attrs, &t)
	if err != nil {
		return Tutor{}, err
	}
	return t, nil
}

// Get fetches one tutor by id.
func (a *TutorsAPI) Get(ctx context.Context, id string) (Tutor, error) {
	var t Tutor
	err := a.client.do(ctx, "tutor_get", http.MethodGet, "/api/v1/tutors/"+url.PathEscape(id), nil, &t)
	if err != nil {
		return Tutor{}, err
	}
	return t, nil
}

// List returns every tutor, ordered by id.
func (a *TutorsAPI) List(ctx context.Context) ([]Tutor, error) {
	var resp struct {
		Tutors []Tutor `json:"tutors"`
	}
	err := a.client.do(ctx, "tutor_list", http.MethodGet, "/api/v1/tutors", nil, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Tutors, nil
}

// Update applies a partial update and returns the updated profile.
func (a *TutorsAPI) Update(ctx context.Context, id string, patch TutorPatch) (Tutor, error) {
	var t Tutor
	err := a.client.do(ctx, "tutor_update", http.MethodPatch, "/api/v1/tutors/"+url.PathEscape(id), patch, &t)
	if err != nil {
		return Tutor{}, err
	}
	return t, nil
}

// Delete removes a tutor and all their reviews.
func (a *TutorsAPI) Delete(ctx context.Context, id string) error {
	return a.client.do(ctx, "tutor_delete", http.MethodDelete, "/api/v1/tutors/"+url.PathEscape(id), nil, nil)
}

// BulkUpsert creates or replaces several tutors in one call, with
// per-item outcomes.
func (a *TutorsAPI) BulkUpsert(ctx context.Context, tutors []TutorAttributes) (BulkResult, error) {
	req := struct {
		Tutors []TutorAttributes `json:"tutors"`
	}{Tutors: tutors}

	var result BulkResult
	err := a.client.do(ctx, "tutor_bulk_upsert", http.MethodPost, "/api/v1/tutors/bulk", req, &result)
	if err != nil {
		return BulkResult{}, err
	}
	return result, nil
}

// Similar returns tutors ranked by profile similarity to the given
// tutor. A zero limit uses the service default.
func (a *TutorsAPI) Similar(ctx context.Context, id string, limit int) ([]Recommendation, error) {
	path := "/api/v1/tutors/" + url.PathEscape(id) + "/similar"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}

	var resp struct {
		Results []Recommendation `json:"results"`
	}
	if err := a.client.do(ctx, "tutor_similar", http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// Sentiment aggregates sentiment over the tutor's stored reviews.
func (a *TutorsAPI) Sentiment(ctx context.Context, id string) (Summary, error) {
	var resp struct {
		Summary Summary `json:"summary"`
	}
	path := fmt.Sprintf("/api/v1/tutors/%s/sentiment", url.PathEscape(id))
	if err := a.client.do(ctx, "tutor_sentiment", http.MethodGet, path, nil, &resp); err != nil {
		return Summary{}, err
	}
	return resp.Summary, nil
}
