package planning

import (
	"math"
	"sort"
	"strings"

	"labor-planner/internal/model"
	"labor-planner/pkg/utils"
)

// Field names as they appear on the wire.
const (
	FieldInboundVolume        = "inboundVolume"
	FieldOutboundVolume       = "outboundVolume"
	FieldWorkingHoursPerShift = "workingHoursPerShift"
	FieldWorkedHoursPercent   = "workedHoursPercent"
	FieldAbsPercent           = "absPercent"
	FieldProcessVolumeFactor  = "processVolumeFactor"
	FieldProcessVolumeFactors = "processVolumeFactors"
)

// maxVolume keeps volumes exactly representable as float64.
const maxVolume = 1 << 53

// Corrections are the global efficiency and absenteeism assumptions applied when
// the input does not carry its own.
type Corrections struct {
	WorkedHoursPercent float64
	AbsPercent         float64
}

// DefaultCorrections assume full worked hours and no absenteeism.
var DefaultCorrections = Corrections{WorkedHoursPercent: 1.0, AbsPercent: 0.0}

// RawForm carries planning fields exactly as typed in a form or on the command line.
// Factors and correction percentages are percentages (0-100).
type RawForm struct {
	InboundVolume        string
	OutboundVolume       string
	WorkingHoursPerShift string
	ProcessVolumeFactor  map[string]string
	WorkedHoursPercent   string
	AbsPercent           string
}

// ValidateForm parses and checks a raw form. All violations are reported together.
func ValidateForm(form RawForm, defaults Corrections) (model.PlanningInput, error) {
	verr := &ValidationError{}

	parse := func(field, raw string, required bool) (float64, bool) {
		if strings.TrimSpace(raw) == "" {
			if required {
				verr.missing(field)
			}
			return 0, false
		}
		v, err := utils.ParseNumber(raw)
		if err != nil {
			verr.invalid(field, "%q is not a number", raw)
			return 0, false
		}
		return v, true
	}

	var in model.PlanningInput
	if v, ok := parse(FieldInboundVolume, form.InboundVolume, true); ok {
		in.InboundVolume = checkVolume(verr, FieldInboundVolume, v)
	}
	if v, ok := parse(FieldOutboundVolume, form.OutboundVolume, true); ok {
		in.OutboundVolume = checkVolume(verr, FieldOutboundVolume, v)
	}
	if v, ok := parse(FieldWorkingHoursPerShift, form.WorkingHoursPerShift, true); ok {
		in.WorkingHoursPerShift = checkHours(verr, v)
	}

	in.WorkedHoursPercent = defaults.WorkedHoursPercent
	if v, ok := parse(FieldWorkedHoursPercent, form.WorkedHoursPercent, false); ok {
		in.WorkedHoursPercent = checkWorkedHours(verr, v/100)
	}
	in.AbsPercent = defaults.AbsPercent
	if v, ok := parse(FieldAbsPercent, form.AbsPercent, false); ok {
		in.AbsPercent = checkAbsenteeism(verr, v/100)
	}

	in.ProcessVolumeFactor = make(map[string]float64, len(form.ProcessVolumeFactor))
	for _, id := range sortedKeys(form.ProcessVolumeFactor) {
		field := factorField(id)
		if v, ok := parse(field, form.ProcessVolumeFactor[id], false); ok {
			if f, ok := checkFactor(verr, field, v/100); ok {
				in.ProcessVolumeFactor[id] = f
			}
		}
	}

	return in, verr.orNil()
}

// ValidateRequest checks a decoded JSON request. Factors are already fractions.
// A null factor counts as not supplied, so the process keeps the 1.0 default.
func ValidateRequest(req model.CalculateRequest, defaults Corrections) (model.PlanningInput, error) {
	verr := &ValidationError{}
	reported := make(map[string]bool, len(req.Malformed))

	notNumber := func(field string) bool {
		raw, bad := req.Malformed[field]
		if bad {
			verr.invalid(field, "%s is not a number", raw)
			reported[field] = true
		}
		return bad
	}
	required := func(field string, v *float64) (float64, bool) {
		if notNumber(field) {
			return 0, false
		}
		if v == nil {
			verr.missing(field)
			return 0, false
		}
		if !finite(*v) {
			verr.invalid(field, "must be a finite number")
			return 0, false
		}
		return *v, true
	}

	var in model.PlanningInput
	if v, ok := required(FieldInboundVolume, req.InboundVolume); ok {
		in.InboundVolume = checkVolume(verr, FieldInboundVolume, v)
	}
	if v, ok := required(FieldOutboundVolume, req.OutboundVolume); ok {
		in.OutboundVolume = checkVolume(verr, FieldOutboundVolume, v)
	}
	if v, ok := required(FieldWorkingHoursPerShift, req.WorkingHoursPerShift); ok {
		in.WorkingHoursPerShift = checkHours(verr, v)
	}

	in.WorkedHoursPercent = defaults.WorkedHoursPercent
	if !notNumber(FieldWorkedHoursPercent) && req.WorkedHoursPercent != nil {
		in.WorkedHoursPercent = checkWorkedHours(verr, *req.WorkedHoursPercent)
	}
	in.AbsPercent = defaults.AbsPercent
	if !notNumber(FieldAbsPercent) && req.AbsPercent != nil {
		in.AbsPercent = checkAbsenteeism(verr, *req.AbsPercent)
	}

	// The current key wins over the legacy plural one.
	factors := make(map[string]float64, len(req.ProcessVolumeFactors)+len(req.ProcessVolumeFactor))
	for _, m := range []map[string]*float64{req.ProcessVolumeFactors, req.ProcessVolumeFactor} {
		for id, v := range m {
			if v != nil {
				factors[id] = *v
			}
		}
	}
	in.ProcessVolumeFactor = make(map[string]float64, len(factors))
	for _, id := range sortedKeys(factors) {
		if f, ok := checkFactor(verr, factorField(id), factors[id]); ok {
			in.ProcessVolumeFactor[id] = f
		}
	}

	for _, field := range sortedKeys(req.Malformed) {
		switch {
		case reported[field]:
		case field == FieldProcessVolumeFactor || field == FieldProcessVolumeFactors:
			verr.invalid(field, "%s is not an object of factors", req.Malformed[field])
		default:
			notNumber(field)
		}
	}

	return in, verr.orNil()
}

func checkVolume(verr *ValidationError, field string, v float64) int {
	switch {
	case v < 0:
		verr.invalid(field, "must not be negative, got %v", v)
	case math.Trunc(v) != v:
		verr.invalid(field, "must be a whole number, got %v", v)
	case v > maxVolume:
		verr.invalid(field, "too large, got %v", v)
	default:
		return int(v)
	}
	return 0
}

func checkHours(verr *ValidationError, v float64) float64 {
	if v <= 0 {
		verr.invalid(FieldWorkingHoursPerShift, "must be greater than 0, got %v", v)
		return 0
	}
	return v
}

func checkWorkedHours(verr *ValidationError, v float64) float64 {
	if !finite(v) || v <= 0 || v > 1 {
		verr.invalid(FieldWorkedHoursPercent, "must be in (0, 1], got %v", v)
		return 0
	}
	return v
}

func checkAbsenteeism(verr *ValidationError, v float64) float64 {
	if !finite(v) || v < 0 || v >= 1 {
		verr.invalid(FieldAbsPercent, "must be in [0, 1), got %v", v)
		return 0
	}
	return v
}

func checkFactor(verr *ValidationError, field string, v float64) (float64, bool) {
	switch {
	case !finite(v):
		verr.invalid(field, "must be a finite number")
	case v < 0:
		verr.invalid(field, "must not be negative, got %v", v)
	case v > 1:
		verr.invalid(field, "must not exceed 100%%, got %v", v)
	default:
		return v, true
	}
	return 0, false
}

func factorField(processID string) string {
	return model.FactorField(processID)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
