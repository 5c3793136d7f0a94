package model

import "encoding/json"

// PlanningInput is the typed, validated input of one headcount calculation.
// It is built once by the validator and never persisted.
type PlanningInput struct {
	InboundVolume        int
	OutboundVolume       int
	WorkingHoursPerShift float64
	// ProcessVolumeFactor holds fractions in [0,1]; missing entries mean 1.0.
	ProcessVolumeFactor map[string]float64
	WorkedHoursPercent  float64
	AbsPercent          float64
}

// VolumeFactor returns the consideration factor of a process, defaulting to 1.0.
func (in PlanningInput) VolumeFactor(processID string) float64 {
	if f, ok := in.ProcessVolumeFactor[processID]; ok {
		return f
	}
	return 1.0
}

// Pool returns the global volume for a process type.
func (in PlanningInput) Pool(t ProcessType) int {
	if t == ProcessInbound {
		return in.InboundVolume
	}
	return in.OutboundVolume
}

// CalculateRequest is the JSON body of POST /labor-planning/calculate.
// Pointers distinguish an omitted (or null) field from an explicit zero.
type CalculateRequest struct {
	InboundVolume        *float64            `json:"inboundVolume"`
	OutboundVolume       *float64            `json:"outboundVolume"`
	WorkingHoursPerShift *float64            `json:"workingHoursPerShift"`
	ProcessShare         map[string]float64  `json:"processShare,omitempty"` // ignored, always 1.0
	ProcessVolumeFactor  map[string]*float64 `json:"processVolumeFactor,omitempty"`
	// ProcessVolumeFactors is the key older clients send.
	ProcessVolumeFactors map[string]*float64 `json:"processVolumeFactors,omitempty"`
	WorkedHoursPercent   *float64            `json:"workedHoursPercent,omitempty"`
	AbsPercent           *float64            `json:"absPercent,omitempty"`

	// Malformed maps a field name to its raw JSON when the value was present
	// but not a number (or, for the factor maps, not an object). Factor
	// entries are named by FactorField.
	Malformed map[string]string `json:"-"`
}

// FactorField names the factor of one process in validation reports.
func FactorField(processID string) string {
	return "processVolumeFactor[" + processID + "]"
}

// UnmarshalJSON decodes field by field so that one non-numeric value does not
// hide the rest of the request. Only a body that is not a JSON object fails.
func (r *CalculateRequest) UnmarshalJSON(data []byte) error {
	var wire struct {
		InboundVolume        json.RawMessage `json:"inboundVolume"`
		OutboundVolume       json.RawMessage `json:"outboundVolume"`
		WorkingHoursPerShift json.RawMessage `json:"workingHoursPerShift"`
		ProcessShare         json.RawMessage `json:"processShare"`
		ProcessVolumeFactor  json.RawMessage `json:"processVolumeFactor"`
		ProcessVolumeFactors json.RawMessage `json:"processVolumeFactors"`
		WorkedHoursPercent   json.RawMessage `json:"workedHoursPercent"`
		AbsPercent           json.RawMessage `json:"absPercent"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	*r = CalculateRequest{}
	number := func(field string, raw json.RawMessage) *float64 {
		if isNull(raw) {
			return nil
		}
		var v float64
		if err := json.Unmarshal(raw, &v); err != nil {
			r.malformed(field, raw)
			return nil
		}
		return &v
	}
	factors := func(field string, raw json.RawMessage) map[string]*float64 {
		if isNull(raw) {
			return nil
		}
		var entries map[string]json.RawMessage
		if err := json.Unmarshal(raw, &entries); err != nil {
			r.malformed(field, raw)
			return nil
		}
		out := make(map[string]*float64, len(entries))
		for id, v := range entries {
			f := number(FactorField(id), v)
			if f != nil || isNull(v) {
				out[id] = f
			}
		}
		return out
	}

	r.InboundVolume = number("inboundVolume", wire.InboundVolume)
	r.OutboundVolume = number("outboundVolume", wire.OutboundVolume)
	r.WorkingHoursPerShift = number("workingHoursPerShift", wire.WorkingHoursPerShift)
	r.WorkedHoursPercent = number("workedHoursPercent", wire.WorkedHoursPercent)
	r.AbsPercent = number("absPercent", wire.AbsPercent)
	r.ProcessVolumeFactors = factors("processVolumeFactors", wire.ProcessVolumeFactors)
	r.ProcessVolumeFactor = factors("processVolumeFactor", wire.ProcessVolumeFactor)
	if !isNull(wire.ProcessShare) {
		_ = json.Unmarshal(wire.ProcessShare, &r.ProcessShare)
	}
	return nil
}

func (r *CalculateRequest) malformed(field string, raw json.RawMessage) {
	if r.Malformed == nil {
		r.Malformed = make(map[string]string)
	}
	r.Malformed[field] = string(raw)
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}

// ResultRow is one line of the staffing recommendation.
type ResultRow struct {
	ProcessID         string      `json:"processId"`
	ProcessName       string      `json:"processName"`
	ProcessType       ProcessType `json:"processType"`
	Volume            float64     `json:"volume"`
	RequiredHeadcount float64     `json:"requiredHeadcount"`
	SupportHeadcount  float64     `json:"supportHeadcount"`
}

// TotalHeadcount is computed for display only.
func (r ResultRow) TotalHeadcount() float64 {
	return r.RequiredHeadcount + r.SupportHeadcount
}
