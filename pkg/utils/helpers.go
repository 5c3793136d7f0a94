package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ParseDuration safely parses a duration string like "10s", falling back when
// the value is empty or malformed.
func ParseDuration(d string, fallback time.Duration) time.Duration {
	if strings.TrimSpace(d) == "" {
		return fallback
	}
	duration, err := time.ParseDuration(strings.TrimSpace(d))
	if err != nil || duration <= 0 {
		return fallback
	}
	return duration
}

// ParseNumber parses a decimal number typed by a person. Surrounding whitespace
// is ignored and a comma is accepted as decimal separator ("8,48").
// NaN and infinities are rejected.
func ParseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%q is not a finite number", s)
	}
	return f, nil
}

// ParseKeyValues splits "key=value" pairs, as given on the command line.
func ParseKeyValues(pairs []string) (map[string]string, error) {
	out := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("expected key=value, got %q", pair)
		}
		out[key] = strings.TrimSpace(value)
	}
	return out, nil
}
