// Package client calls a remote labor planning service.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"labor-planner/internal/model"
	"labor-planner/internal/planning"
	"labor-planner/internal/session"
)

const (
	CalculatePath = "/labor-planning/calculate"

	IssuesHeader        = "X-Planning-Issues"
	CalculationIDHeader = "X-Calculation-ID"
)

// ErrBusy is returned when a calculation is already in flight on this client.
var ErrBusy = errors.New("a calculation is already in progress")

// TransportError reports a network failure or a non-success response.
type TransportError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: status %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Issue is a per-process computation problem reported by the server.
type Issue struct {
	ProcessID string
	Code      planning.ComputationCode
}

// Response is a successful calculation.
type Response struct {
	CalculationID string
	Rows          []model.ResultRow
	Issues        []Issue
}

// Client submits one calculation at a time. Failed requests are not retried.
type Client struct {
	BaseURL   string
	SessionID string
	HTTP      *http.Client

	busy atomic.Bool
}

func New(baseURL, sessionID string, timeout time.Duration) *Client {
	return &Client{
		BaseURL:   strings.TrimRight(baseURL, "/"),
		SessionID: sessionID,
		HTTP:      &http.Client{Timeout: timeout},
	}
}

// Busy reports whether a calculation is in flight.
func (c *Client) Busy() bool { return c.busy.Load() }

// Calculate posts the request and decodes the result rows.
func (c *Client) Calculate(ctx context.Context, req model.CalculateRequest) (*Response, error) {
	if !c.busy.CompareAndSwap(false, true) {
		return nil, ErrBusy
	}
	defer c.busy.Store(false)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+CalculatePath, bytes.NewReader(body))
	if err != nil {
		return nil, &TransportError{Op: "build request", Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.SessionID != "" {
		httpReq.Header.Set(session.Header, c.SessionID)
	}

	resp, err := c.HTTP.Do(httpReq)
	if err != nil {
		return nil, &TransportError{Op: "POST " + CalculatePath, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusBadRequest:
		return nil, decodeValidationError(resp.Body)
	case resp.StatusCode != http.StatusOK:
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &TransportError{
			Op:         "POST " + CalculatePath,
			StatusCode: resp.StatusCode,
			Err:        errors.New(strings.TrimSpace(string(msg))),
		}
	}

	var rows []model.ResultRow
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, &TransportError{Op: "decode response", StatusCode: resp.StatusCode, Err: err}
	}
	return &Response{
		CalculationID: resp.Header.Get(CalculationIDHeader),
		Rows:          rows,
		Issues:        ParseIssues(resp.Header.Get(IssuesHeader)),
	}, nil
}

// decodeValidationError turns a 400 body back into a *planning.ValidationError.
func decodeValidationError(r io.Reader) error {
	var body struct {
		Error  string                `json:"error"`
		Fields []planning.FieldError `json:"fields"`
	}
	if err := json.NewDecoder(r).Decode(&body); err != nil || len(body.Fields) == 0 {
		return &TransportError{Op: "POST " + CalculatePath, StatusCode: http.StatusBadRequest, Err: planning.ErrValidation}
	}
	return &planning.ValidationError{Fields: body.Fields}
}

// ParseIssues reads the issues header written by planning.FormatIssues. Malformed entries are skipped.
func ParseIssues(header string) []Issue {
	var out []Issue
	for _, part := range strings.Split(header, ",") {
		id, code, ok := strings.Cut(strings.TrimSpace(part), ":")
		if !ok || id == "" || code == "" {
			continue
		}
		out = append(out, Issue{ProcessID: id, Code: planning.ComputationCode(code)})
	}
	return out
}
