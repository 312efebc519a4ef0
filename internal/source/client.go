package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/user/wispmon/internal/model"
	"github.com/user/wispmon/internal/storage"
)

// APISource pulls the accumulated telemetry feed from the ingestion API
// and collapses it to the latest record per router, so the snapshot
// keeps ids unique.
type APISource struct {
	baseURL string
	token   string
	client  *http.Client
}

// NewAPISource creates a source for the given ingestion API base URL.
func NewAPISource(baseURL, token string, timeout time.Duration) *APISource {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &APISource{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		client:  &http.Client{Timeout: timeout},
	}
}

// Fetch retrieves the full collection and reduces it to a fleet snapshot.
func (s *APISource) Fetch(ctx context.Context) ([]model.RouterRecord, error) {
	var records []model.RouterRecord
	if err := s.get(ctx, "/api/router-data", &records); err != nil {
		return nil, err
	}
	return storage.CollapseLatest(records), nil
}

// Summary retrieves fleet counts from the server.
func (s *APISource) Summary(ctx context.Context) (model.FleetSummary, error) {
	var summary model.FleetSummary
	err := s.get(ctx, "/api/summary", &summary)
	return summary, err
}

// Health probes the liveness endpoint and returns the server timestamp.
func (s *APISource) Health(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/health", nil)
	if err != nil {
		return "", err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("health check failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("health check returned status %d", resp.StatusCode)
	}

	var body struct {
		Status    string `json:"status"`
		Timestamp string `json:"timestamp"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode health response: %w", err)
	}
	return body.Timestamp, nil
}

// SendAction posts a restart/disconnect command for a router.
func (s *APISource) SendAction(ctx context.Context, routerID, action string) error {
	url := fmt.Sprintf("%s/api/router-data/%s/%s", s.baseURL, routerID, action)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.token)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s request failed: %w", action, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s returned status %d", action, resp.StatusCode)
	}
	return nil
}

func (s *APISource) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.token)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("unauthorized: check the configured api token")
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s returned status %d", path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}
	return nil
}
