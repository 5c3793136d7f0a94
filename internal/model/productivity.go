package model

import (
	"fmt"
	"math"
	"time"
)

// ProductivityProfile holds the per-worker productivity assumptions of one process.
type ProductivityProfile struct {
	ID                      string    `json:"id"`
	ProcessID               string    `json:"processId"`
	TargetPerHour           float64   `json:"targetPerHour"`
	FatigueFactor           float64   `json:"fatigueFactor"`
	DisplacementTimeMinutes float64   `json:"displacementTimeMinutes"`
	CreatedAt               time.Time `json:"createdAt,omitempty"`
	UpdatedAt               time.Time `json:"updatedAt,omitempty"`
}

// ProductivityInput is the payload for POST/PUT /productivity
type ProductivityInput struct {
	ProcessID               string  `json:"processId"`
	TargetPerHour           float64 `json:"targetPerHour"`
	FatigueFactor           float64 `json:"fatigueFactor"`
	DisplacementTimeMinutes float64 `json:"displacementTimeMinutes"`
}

// Validate checks the write-time constraints of a productivity profile.
func (in ProductivityInput) Validate() error {
	switch {
	case in.ProcessID == "":
		return fmt.Errorf("processId is required")
	case !finite(in.TargetPerHour) || in.TargetPerHour <= 0:
		return fmt.Errorf("targetPerHour must be greater than 0, got %v", in.TargetPerHour)
	case !finite(in.FatigueFactor) || in.FatigueFactor < 0 || in.FatigueFactor > 1:
		return fmt.Errorf("fatigueFactor must be between 0 and 1, got %v", in.FatigueFactor)
	case !finite(in.DisplacementTimeMinutes) || in.DisplacementTimeMinutes < 0:
		return fmt.Errorf("displacementTimeMinutes must be >= 0, got %v", in.DisplacementTimeMinutes)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
