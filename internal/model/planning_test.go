package model

import (
	"encoding/json"
	"testing"
)

func TestCalculateRequestKeepsMalformedFields(t *testing.T) {
	var req CalculateRequest
	body := `{"inboundVolume":"abc","outboundVolume":-1,"workingHoursPerShift":8,
		"processVolumeFactor":{"a":null,"b":"half","c":0.5},"processVolumeFactors":[1],"absPercent":true}`
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}

	if req.InboundVolume != nil || req.Malformed["inboundVolume"] != `"abc"` {
		t.Errorf("inboundVolume not recorded as malformed: %v %v", req.InboundVolume, req.Malformed)
	}
	if req.OutboundVolume == nil || *req.OutboundVolume != -1 {
		t.Errorf("outboundVolume lost: %v", req.OutboundVolume)
	}
	if req.WorkingHoursPerShift == nil || *req.WorkingHoursPerShift != 8 {
		t.Errorf("workingHoursPerShift lost: %v", req.WorkingHoursPerShift)
	}
	if f, ok := req.ProcessVolumeFactor["a"]; !ok || f != nil {
		t.Errorf("null factor should be kept as nil, got %v %v", f, ok)
	}
	if _, ok := req.ProcessVolumeFactor["b"]; ok || req.Malformed[FactorField("b")] != `"half"` {
		t.Errorf("non-numeric factor not recorded: %v", req.Malformed)
	}
	if f := req.ProcessVolumeFactor["c"]; f == nil || *f != 0.5 {
		t.Errorf("valid factor lost: %v", f)
	}
	if _, ok := req.Malformed["processVolumeFactors"]; !ok {
		t.Errorf("non-object legacy factors not recorded: %v", req.Malformed)
	}
	if _, ok := req.Malformed["absPercent"]; !ok {
		t.Errorf("boolean absPercent not recorded: %v", req.Malformed)
	}
}

func TestCalculateRequestRejectsNonObject(t *testing.T) {
	var req CalculateRequest
	for _, body := range []string{`[1,2]`, `{"inboundVolume":`, `"x"`} {
		if err := json.Unmarshal([]byte(body), &req); err == nil {
			t.Errorf("expected %q to fail", body)
		}
	}
}

func TestCalculateRequestEncodesLikeItDecodes(t *testing.T) {
	v, f := 360.0, 0.25
	data, err := json.Marshal(CalculateRequest{InboundVolume: &v, ProcessVolumeFactor: map[string]*float64{"p": &f}})
	if err != nil {
		t.Fatal(err)
	}
	var back CalculateRequest
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if *back.InboundVolume != 360 || *back.ProcessVolumeFactor["p"] != 0.25 || back.Malformed != nil {
		t.Errorf("unexpected decode %+v", back)
	}
}
