package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestParseDuration(t *testing.T) {
	if got := ParseDuration("", time.Second); got != time.Second {
		t.Errorf("empty: got %v", got)
	}
	if got := ParseDuration("bogus", time.Second); got != time.Second {
		t.Errorf("malformed: got %v", got)
	}
	if got := ParseDuration(" 250ms ", time.Second); got != 250*time.Millisecond {
		t.Errorf("valid: got %v", got)
	}
}

func TestParseNumber(t *testing.T) {
	valid := map[string]float64{"8": 8, " 8.48 ": 8.48, "8,48": 8.48, "-3": -3, "1e3": 1000}
	for in, want := range valid {
		got, err := ParseNumber(in)
		if err != nil || got != want {
			t.Errorf("ParseNumber(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	for _, in := range []string{"", "abc", "NaN", "Inf", "-Inf", "1,000.5", "1,2,3"} {
		if _, err := ParseNumber(in); err == nil {
			t.Errorf("ParseNumber(%q) should fail", in)
		}
	}
}

func TestParseKeyValues(t *testing.T) {
	got, err := ParseKeyValues([]string{"a=80", " b = 50 "})
	if err != nil || got["a"] != "80" || got["b"] != "50" {
		t.Fatalf("unexpected result %v, %v", got, err)
	}
	if _, err := ParseKeyValues([]string{"novalue"}); err == nil {
		t.Error("expected error for missing '='")
	}
}

func TestOutputManager(t *testing.T) {
	om := NewOutputManager(t.TempDir())
	path, err := om.FilePath("run-1", "../../headcount.csv")
	if err != nil {
		t.Fatalf("FilePath: %v", err)
	}
	if want := filepath.Join(om.BaseOutputDir, "run-1", "headcount.csv"); path != want {
		t.Errorf("path = %q, want %q", path, want)
	}
	if _, err := os.Stat(filepath.Dir(path)); err != nil {
		t.Errorf("run directory not created: %v", err)
	}
	if _, err := om.CreateRunDir("../escape"); err == nil {
		t.Error("expected run id with separators to be rejected")
	}
	if FileType("a.JSON") != "json" || FileType("a.csv") != "csv" || FileType("a.xlsx") != "unknown" {
		t.Error("unexpected FileType result")
	}
}
