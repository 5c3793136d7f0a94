package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"labor-planner/internal/model"
)

// HTTPSource reads the catalog from a remote service exposing
// GET /processes and GET /productivity/process/{id}.
type HTTPSource struct {
	BaseURL string
	Client  *http.Client
}

// NewHTTPSource builds a source with its own client timeout.
func NewHTTPSource(baseURL string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{Timeout: timeout},
	}
}

func (s *HTTPSource) ListProcesses(ctx context.Context) ([]model.Process, error) {
	var processes []model.Process
	found, err := s.getJSON(ctx, "/processes", &processes)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("GET %s/processes: not found", s.BaseURL)
	}
	return processes, nil
}

func (s *HTTPSource) ProductivityByProcess(ctx context.Context, processID string) (*model.ProductivityProfile, error) {
	var profile model.ProductivityProfile
	found, err := s.getJSON(ctx, "/productivity/process/"+url.PathEscape(processID), &profile)
	if err != nil || !found {
		return nil, err
	}
	return &profile, nil
}

// getJSON decodes the response body into out. A 404 reports found=false with no error.
func (s *HTTPSource) getJSON(ctx context.Context, path string, out any) (bool, error) {
	target := s.BaseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return false, err
	}
	req.Header.Set("Accept", "application/json")

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return false, fmt.Errorf("GET %s: %w", target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return false, nil
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return false, fmt.Errorf("GET %s: unexpected status %d: %s", target, resp.StatusCode, strings.TrimSpace(string(body)))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return false, fmt.Errorf("GET %s: failed to decode JSON: %w", target, err)
	}
	return true, nil
}
