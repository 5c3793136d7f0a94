package planning

import (
	"errors"
	"testing"

	"labor-planner/internal/model"
)

func ptr(v float64) *float64 { return &v }

func TestValidateFormParsesPercentages(t *testing.T) {
	in, err := ValidateForm(RawForm{
		InboundVolume:        "15000",
		OutboundVolume:       " 25000 ",
		WorkingHoursPerShift: "8.48",
		ProcessVolumeFactor:  map[string]string{"1": "100", "2": "40", "3": ""},
		AbsPercent:           "10",
	}, DefaultCorrections)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.InboundVolume != 15000 || in.OutboundVolume != 25000 || in.WorkingHoursPerShift != 8.48 {
		t.Errorf("unexpected numbers: %+v", in)
	}
	if in.VolumeFactor("1") != 1.0 || in.VolumeFactor("2") != 0.4 {
		t.Errorf("factors not divided by 100: %+v", in.ProcessVolumeFactor)
	}
	if _, ok := in.ProcessVolumeFactor["3"]; ok {
		t.Error("blank factor should be treated as not supplied")
	}
	if in.VolumeFactor("3") != 1.0 {
		t.Error("missing factor should default to 1.0")
	}
	if in.WorkedHoursPercent != 1.0 || in.AbsPercent != 0.1 {
		t.Errorf("unexpected corrections: worked=%v abs=%v", in.WorkedHoursPercent, in.AbsPercent)
	}
}

func TestValidateFormReportsEveryViolation(t *testing.T) {
	_, err := ValidateForm(RawForm{
		InboundVolume:        "",
		OutboundVolume:       "-5",
		WorkingHoursPerShift: "abc",
		ProcessVolumeFactor:  map[string]string{"b": "-1", "a": "150"},
	}, DefaultCorrections)

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if !errors.Is(err, ErrValidation) {
		t.Error("expected errors.Is(err, ErrValidation)")
	}

	want := []FieldError{
		{Field: FieldInboundVolume, Kind: MissingField},
		{Field: FieldOutboundVolume, Kind: InvalidValue},
		{Field: FieldWorkingHoursPerShift, Kind: InvalidValue},
		{Field: "processVolumeFactor[a]", Kind: InvalidValue},
		{Field: "processVolumeFactor[b]", Kind: InvalidValue},
	}
	if len(verr.Fields) != len(want) {
		t.Fatalf("expected %d field errors, got %d: %v", len(want), len(verr.Fields), verr)
	}
	for i, w := range want {
		if verr.Fields[i].Field != w.Field || verr.Fields[i].Kind != w.Kind {
			t.Errorf("field error %d = %+v, want %s/%s", i, verr.Fields[i], w.Field, w.Kind)
		}
	}
}

func TestValidateFormRules(t *testing.T) {
	base := RawForm{InboundVolume: "10", OutboundVolume: "10", WorkingHoursPerShift: "8"}

	tests := []struct {
		name   string
		mutate func(*RawForm)
		field  string
	}{
		{"zero hours", func(f *RawForm) { f.WorkingHoursPerShift = "0" }, FieldWorkingHoursPerShift},
		{"fractional volume", func(f *RawForm) { f.InboundVolume = "10.5" }, FieldInboundVolume},
		{"not finite", func(f *RawForm) { f.OutboundVolume = "NaN" }, FieldOutboundVolume},
		{"infinite", func(f *RawForm) { f.OutboundVolume = "Inf" }, FieldOutboundVolume},
		{"abs at 100", func(f *RawForm) { f.AbsPercent = "100" }, FieldAbsPercent},
		{"worked zero", func(f *RawForm) { f.WorkedHoursPercent = "0" }, FieldWorkedHoursPercent},
		{"worked above 100", func(f *RawForm) { f.WorkedHoursPercent = "120" }, FieldWorkedHoursPercent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := base
			tt.mutate(&form)
			_, err := ValidateForm(form, DefaultCorrections)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if len(verr.Fields) != 1 || verr.Fields[0].Field != tt.field || verr.Fields[0].Kind != InvalidValue {
				t.Errorf("unexpected field errors: %+v", verr.Fields)
			}
		})
	}

	if _, err := ValidateForm(RawForm{InboundVolume: "0", OutboundVolume: "0", WorkingHoursPerShift: "1"}, DefaultCorrections); err != nil {
		t.Errorf("zero volumes are valid, got %v", err)
	}
}

func TestValidateRequest(t *testing.T) {
	in, err := ValidateRequest(model.CalculateRequest{
		InboundVolume:        ptr(15000),
		OutboundVolume:       ptr(0),
		WorkingHoursPerShift: ptr(8),
		ProcessShare:         map[string]float64{"1": 1.0},
		ProcessVolumeFactors: map[string]*float64{"1": ptr(0.2), "2": ptr(0.3)},
		ProcessVolumeFactor:  map[string]*float64{"1": ptr(0.5), "2": nil},
	}, Corrections{WorkedHoursPercent: 0.9, AbsPercent: 0.05})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.VolumeFactor("1") != 0.5 {
		t.Errorf("processVolumeFactor should win over the legacy key, got %v", in.VolumeFactor("1"))
	}
	if in.VolumeFactor("2") != 0.3 {
		t.Errorf("legacy key should still be read when the current one is null, got %v", in.VolumeFactor("2"))
	}
	if in.WorkedHoursPercent != 0.9 || in.AbsPercent != 0.05 {
		t.Errorf("policy defaults not applied: %+v", in)
	}

	in, err = ValidateRequest(model.CalculateRequest{
		InboundVolume:        ptr(1),
		OutboundVolume:       ptr(1),
		WorkingHoursPerShift: ptr(8),
		WorkedHoursPercent:   ptr(0.8),
		AbsPercent:           ptr(0.1),
	}, DefaultCorrections)
	if err != nil || in.WorkedHoursPercent != 0.8 || in.AbsPercent != 0.1 {
		t.Errorf("explicit corrections not used: %+v %v", in, err)
	}
}

func TestValidateRequestMissingFields(t *testing.T) {
	_, err := ValidateRequest(model.CalculateRequest{
		ProcessVolumeFactor: map[string]*float64{"1": ptr(1.5)},
	}, DefaultCorrections)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(verr.Fields) != 4 {
		t.Fatalf("expected 3 missing fields and 1 bad factor, got %+v", verr.Fields)
	}
	for _, f := range verr.Fields[:3] {
		if f.Kind != MissingField {
			t.Errorf("expected missing field, got %+v", f)
		}
	}
	if verr.Fields[3].Field != "processVolumeFactor[1]" {
		t.Errorf("unexpected last field: %+v", verr.Fields[3])
	}
}

func TestValidateRequestReportsMalformedValues(t *testing.T) {
	_, err := ValidateRequest(model.CalculateRequest{
		OutboundVolume:       ptr(-1),
		WorkingHoursPerShift: ptr(8),
		Malformed: map[string]string{
			FieldInboundVolume:        `"abc"`,
			FieldAbsPercent:           `true`,
			model.FactorField("b"):    `"half"`,
			FieldProcessVolumeFactors: `[1]`,
		},
	}, DefaultCorrections)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	got := map[string]FieldErrorKind{}
	for _, f := range verr.Fields {
		got[f.Field] = f.Kind
	}
	for _, field := range []string{FieldInboundVolume, FieldOutboundVolume, FieldAbsPercent, "processVolumeFactor[b]", FieldProcessVolumeFactors} {
		if got[field] != InvalidValue {
			t.Errorf("%s: kind %q, want invalid_value (all: %+v)", field, got[field], verr.Fields)
		}
	}
	if len(verr.Fields) != 5 {
		t.Errorf("expected 5 violations, got %+v", verr.Fields)
	}
}

func TestValidateRequestNullFactorDefaults(t *testing.T) {
	in, err := ValidateRequest(model.CalculateRequest{
		InboundVolume:        ptr(360),
		OutboundVolume:       ptr(0),
		WorkingHoursPerShift: ptr(8),
		ProcessVolumeFactor:  map[string]*float64{"p": nil},
	}, DefaultCorrections)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.VolumeFactor("p") != 1.0 {
		t.Errorf("null factor should default to 1.0, got %v", in.VolumeFactor("p"))
	}
}
