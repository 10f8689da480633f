package sdk

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// HealthAPI groups service health operations.
type HealthAPI struct {
	client *Client
}

// Check reports aggregated service health. An unhealthy service is a
// valid answer, not an error: the report is returned for both the 200
// and 503 responses.
func (a *HealthAPI) Check(ctx context.Context) (HealthStatus, error) {
	c := a.client
	start := time.Now()

	status, err := a.check(ctx)
	c.obs.observe("health_check", start, err)
	return status, err
}

func (a *HealthAPI) check(ctx context.Context) (HealthStatus, error) {
	c := a.client

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return HealthStatus{}, fmt.Errorf("sdk: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.hc.Do(req)
	if err != nil {
		return HealthStatus{}, fmt.Errorf("sdk: GET /health: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusServiceUnavailable {
		return HealthStatus{}, decodeAPIError(resp)
	}

	var status HealthStatus
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return HealthStatus{}, fmt.Errorf("sdk: decode response: %w", err)
	}
	return status, nil
}

// Version returns the running service build.
func (a *HealthAPI) Version(ctx context.Context) (VersionInfo, error) {
	var info VersionInfo
	if err := a.client.do(ctx, "version", http.MethodGet, "/version", nil, &info); err != nil {
		return VersionInfo{}, err
	}
	return info, nil
}
