package sdk

import (
	"context"
	"net/http"
	"net/url"
)

// PricingAPI groups hourly rate suggestion operations.
type PricingAPI struct {
	client *Client
}

// PredictRate suggests an hourly rate for the given experience, via
// catalog regression when enough priced tutors exist, rule-based
// fallback otherwise.
func (a *PricingAPI) PredictRate(ctx context.Context, experienceYears int, subject string) (Estimate, error) {
	req := struct {
		ExperienceYears int    `json:"experience_years"`
		Subject         string `json:"subject,omitempty"`
	}{ExperienceYears: experienceYears, Subject: subject}

	var resp struct {
		Prediction Estimate `json:"prediction"`
	}
	err := a.client.do(ctx, "pricing_predict", http.MethodPost, "/api/v1/pricing/predict", req, &resp)
	if err != nil {
		return Estimate{}, err
	}
	return resp.Prediction, nil
}

// Market summarizes the rate landscape, optionally filtered to tutors
// qualified in the given subject.
func (a *PricingAPI) Market(ctx context.Context, subject string) (MarketReport, error) {
	path := "/api/v1/pricing/market"
	if subject != "" {
		path += "?subject=" + url.QueryEscape(subject)
	}

	var resp struct {
		Analysis MarketReport `json:"analysis"`
	}
	if err := a.client.do(ctx, "pricing_market", http.MethodGet, path, nil, &resp); err != nil {
		return MarketReport{}, err
	}
	return resp.Analysis, nil
}
