package planning

import (
	"fmt"

	"labor-planner/internal/model"
)

// EffectiveCapacity is a worker's realistic output per hour: the target rate
// discounted by the fatigue factor. Displacement time is not applied here; it
// reduces the minutes spent per unit, not the hourly rate.
func EffectiveCapacity(profile model.ProductivityProfile) (float64, error) {
	reason := ""
	switch {
	case !finite(profile.TargetPerHour) || profile.TargetPerHour < 0:
		reason = fmt.Sprintf("targetPerHour must be a non-negative number, got %v", profile.TargetPerHour)
	case !finite(profile.FatigueFactor) || profile.FatigueFactor < 0 || profile.FatigueFactor > 1:
		reason = fmt.Sprintf("fatigueFactor must be in [0, 1], got %v", profile.FatigueFactor)
	case !finite(profile.DisplacementTimeMinutes) || profile.DisplacementTimeMinutes < 0:
		reason = fmt.Sprintf("displacementTimeMinutes must be >= 0, got %v", profile.DisplacementTimeMinutes)
	}
	if reason != "" {
		return 0, &ComputationError{ProcessID: profile.ProcessID, Code: CodeInvalidProductivityProfile, Reason: reason}
	}
	return profile.TargetPerHour * profile.FatigueFactor, nil
}

func missingProfile(processID string) *ComputationError {
	return &ComputationError{
		ProcessID: processID,
		Code:      CodeMissingProductivityProfile,
		Reason:    "no productivity profile registered for this process",
	}
}
