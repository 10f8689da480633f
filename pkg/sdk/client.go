package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "tutormatch-go-sdk"
)

// Client is the tutormatch SDK entry point. Safe for concurrent use.
type Client struct {
	baseURL   string
	hc        *http.Client
	userAgent string
	obs       *observer
}

// New creates a Client for a tutormatch service at baseURL
// (e.g. "http://localhost:8080").
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("sdk: base URL required")
	}
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("sdk: invalid base URL %q", baseURL)
	}

	cfg := &clientConfig{
		timeout:   defaultTimeout,
		userAgent: defaultUserAgent,
	}
	for _, o := range opts {
		o.apply(cfg)
	}

	hc := cfg.httpClient
	if hc == nil {
		hc = &http.Client{Timeout: cfg.timeout}
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		hc:        hc,
		userAgent: cfg.userAgent,
		obs:       obs,
	}, nil
}

// Recommendations returns the recommendation API.
func (c *Client) Recommendations() *RecommendationsAPI {
	return &RecommendationsAPI{client: c}
}

// Tutors returns the tutor catalog API.
func (c *Client) Tutors() *TutorsAPI {
	return &TutorsAPI{client: c}
}

// Reviews returns the review and sentiment API.
func (c *Client) Reviews() *ReviewsAPI {
	return &ReviewsAPI{client: c}
}

// Pricing returns the rate suggestion API.
func (c *Client) Pricing() *PricingAPI {
	return &PricingAPI{client: c}
}

// Health returns the service health API.
func (c *Client) Health() *HealthAPI {
	return &HealthAPI{client: c}
}

// do performs one API call: encode in (skipped when nil), decode the
// response into out (skipped when nil), map non-2xx bodies to *APIError.
func (c *Client) do(ctx context.Context, op, method, path string, in, out any) error {
	start := time.Now()
	err := c.roundTrip(ctx, method, path, in, out)
	c.obs.observe(op, start, err)
	return err
}

func (c *Client) roundTrip(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("sdk: encode request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("sdk: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("sdk: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeAPIError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("sdk: decode response: %w", err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))

	var wire struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &wire); err != nil || wire.Code == "" {
		return &APIError{
			StatusCode: resp.StatusCode,
			Code:       "unknown",
			Message:    http.StatusText(resp.StatusCode),
		}
	}
	return &APIError{
		StatusCode: resp.StatusCode,
		Code:       wire.Code,
		Message:    wire.Message,
	}
}
