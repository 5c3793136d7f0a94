package planning

import (
	"fmt"
	"math"

	"labor-planner/internal/model"
)

// HeadcountParams gathers everything the headcount formula needs for one process.
type HeadcountParams struct {
	AppliedVolume        float64
	CapacityPerHour      float64
	DisplacementMinutes  float64
	WorkingHoursPerShift float64
	WorkedHoursPercent   float64
	AbsPercent           float64
	SupportFraction      float64
}

// Headcount is the staffing need of one process.
type Headcount struct {
	Required float64
	Support  float64
}

// AvailableMinutes is the productive time one worker has in a shift.
func AvailableMinutes(hoursPerShift, workedHoursPercent, absPercent float64) float64 {
	return hoursPerShift * 60 * workedHoursPercent * (1 - absPercent)
}

// ComputeHeadcount applies
//
//	required = appliedVolume * (60/capacity + displacement) / availableMinutes
//
// and adds the support share on top. Zero capacity is always an error, even with
// no volume, because the process could never be staffed.
func ComputeHeadcount(processID string, p HeadcountParams) (Headcount, error) {
	if p.CapacityPerHour == 0 {
		return Headcount{}, divisionByZero(processID, "effective capacity per hour is zero")
	}
	available := AvailableMinutes(p.WorkingHoursPerShift, p.WorkedHoursPercent, p.AbsPercent)
	if available <= 0 || !finite(available) {
		return Headcount{}, divisionByZero(processID, fmt.Sprintf("available minutes per shift is %v", available))
	}
	if p.AppliedVolume == 0 {
		return Headcount{}, nil
	}

	minutesPerUnit := 60/p.CapacityPerHour + p.DisplacementMinutes
	required := p.AppliedVolume * minutesPerUnit / available
	if !finite(required) || required < 0 {
		return Headcount{}, divisionByZero(processID, fmt.Sprintf("headcount is not a finite non-negative number (%v)", required))
	}

	support := 0.0
	if p.SupportFraction > 0 {
		support = required * p.SupportFraction
	}
	return Headcount{Required: required, Support: support}, nil
}

// SupportPolicy supplies the overhead fraction added as support headcount.
type SupportPolicy interface {
	SupportFraction(p model.Process) float64
}

// NoSupport adds no support headcount.
type NoSupport struct{}

func (NoSupport) SupportFraction(model.Process) float64 { return 0 }

// StaticSupportPolicy uses a per-type fraction when configured, else Default.
type StaticSupportPolicy struct {
	Default float64
	ByType  map[model.ProcessType]float64
}

func (s StaticSupportPolicy) SupportFraction(p model.Process) float64 {
	if f, ok := s.ByType[p.Type()]; ok {
		return clampFraction(f)
	}
	return clampFraction(s.Default)
}

func clampFraction(f float64) float64 {
	if !finite(f) || f < 0 {
		return 0
	}
	return math.Min(f, 1)
}
