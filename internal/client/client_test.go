package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"labor-planner/internal/model"
	"labor-planner/internal/planning"
	"labor-planner/internal/session"
)

func ptr(v float64) *float64 { return &v }

func TestCalculateDecodesRowsAndIssues(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != CalculatePath || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get(session.Header); got != "abc" {
			t.Errorf("session header = %q", got)
		}
		var req model.CalculateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode: %v", err)
		}
		w.Header().Set(CalculationIDHeader, "calc-1")
		w.Header().Set(IssuesHeader, "p2:missing_productivity_profile")
		json.NewEncoder(w).Encode([]model.ResultRow{{ProcessID: "p1", ProcessName: "Picking", Volume: 360, RequiredHeadcount: 1}})
	}))
	defer srv.Close()

	c := New(srv.URL+"/", "abc", time.Second)
	resp, err := c.Calculate(context.Background(), model.CalculateRequest{
		InboundVolume: ptr(0), OutboundVolume: ptr(360), WorkingHoursPerShift: ptr(8),
	})
	if err != nil {
		t.Fatalf("Calculate returned error: %v", err)
	}
	if resp.CalculationID != "calc-1" || len(resp.Rows) != 1 || resp.Rows[0].RequiredHeadcount != 1 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if len(resp.Issues) != 1 || resp.Issues[0].Code != planning.CodeMissingProductivityProfile {
		t.Fatalf("unexpected issues: %+v", resp.Issues)
	}
	if c.Busy() {
		t.Fatal("client still busy after Calculate returned")
	}
}

func TestCalculateValidationError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{
			"error":  "validation failed",
			"fields": []planning.FieldError{{Field: "inboundVolume", Kind: planning.MissingField}},
		})
	}))
	defer srv.Close()

	_, err := New(srv.URL, "", time.Second).Calculate(context.Background(), model.CalculateRequest{})
	if !errors.Is(err, planning.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	var verr *planning.ValidationError
	if !errors.As(err, &verr) || verr.Fields[0].Field != "inboundVolume" {
		t.Fatalf("fields not decoded: %v", err)
	}
}

func TestCalculateServerErrorIsNotRetried(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "catalog unavailable", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := New(srv.URL, "", time.Second).Calculate(context.Background(), model.CalculateRequest{})
	var terr *TransportError
	if !errors.As(err, &terr) || terr.StatusCode != http.StatusBadGateway {
		t.Fatalf("expected TransportError with 502, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("server called %d times, want 1", calls)
	}
}

func TestCalculateWhileBusy(t *testing.T) {
	release := make(chan struct{})
	entered := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(entered)
		<-release
		w.Write([]byte("[]"))
	}))
	defer srv.Close()

	c := New(srv.URL, "", 5*time.Second)
	done := make(chan error, 1)
	go func() {
		_, err := c.Calculate(context.Background(), model.CalculateRequest{})
		done <- err
	}()
	<-entered

	if _, err := c.Calculate(context.Background(), model.CalculateRequest{}); !errors.Is(err, ErrBusy) {
		t.Fatalf("expected ErrBusy, got %v", err)
	}
	close(release)
	if err := <-done; err != nil {
		t.Fatalf("first calculation failed: %v", err)
	}
}

func TestIssuesHeaderRoundTrip(t *testing.T) {
	header := planning.FormatIssues([]*planning.ComputationError{
		{ProcessID: "a", Code: planning.CodeDivisionByZero},
		{ProcessID: "b", Code: planning.CodeMissingProductivityProfile},
	})
	if header != "a:division_by_zero,b:missing_productivity_profile" {
		t.Fatalf("unexpected header %q", header)
	}
	issues := ParseIssues(header + ", junk,:x")
	if len(issues) != 2 || issues[1].ProcessID != "b" {
		t.Fatalf("unexpected parse: %+v", issues)
	}
	if ParseIssues("") != nil {
		t.Fatal("empty header should yield no issues")
	}
}
