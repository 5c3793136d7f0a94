package planning

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"testing"

	"labor-planner/internal/catalog"
	"labor-planner/internal/model"
)

func testSnapshot() *catalog.Snapshot {
	processes := []model.Process{
		{ID: "out", Name: "Outbound Picking"},
		{ID: "in", Name: "Inbound Recebimento"},
		{ID: "none", Name: "Packing"},
		{ID: "zero", Name: "Expedição"},
	}
	profiles := []model.ProductivityProfile{
		{ProcessID: "out", TargetPerHour: 50, FatigueFactor: 0.9},
		{ProcessID: "in", TargetPerHour: 100, FatigueFactor: 1, DisplacementTimeMinutes: 0.4},
		{ProcessID: "zero", TargetPerHour: 50, FatigueFactor: 0},
	}
	return catalog.NewSnapshot(processes, profiles)
}

func TestCalculate(t *testing.T) {
	in := model.PlanningInput{
		InboundVolume:        480,
		OutboundVolume:       360,
		WorkingHoursPerShift: 8,
		WorkedHoursPercent:   1,
		AbsPercent:           0,
	}
	policy := StaticSupportPolicy{ByType: map[model.ProcessType]float64{model.ProcessInbound: 0.5}}

	res := Calculate(in, testSnapshot(), policy)

	if len(res.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %+v", res.Rows)
	}
	out, inbound := res.Rows[0], res.Rows[1]
	if out.ProcessID != "out" || inbound.ProcessID != "in" {
		t.Fatalf("rows not in catalog order: %+v", res.Rows)
	}
	if out.ProcessType != model.ProcessOutbound || out.Volume != 360 || !approx(out.RequiredHeadcount, 1.0) || out.SupportHeadcount != 0 {
		t.Errorf("unexpected outbound row: %+v", out)
	}
	// 60/100 + 0.4 = 1 minute per unit, 480 units over 480 minutes.
	if !approx(inbound.RequiredHeadcount, 1.0) || !approx(inbound.SupportHeadcount, 0.5) || !approx(inbound.TotalHeadcount(), 1.5) {
		t.Errorf("unexpected inbound row: %+v", inbound)
	}

	if len(res.Issues) != 2 {
		t.Fatalf("expected 2 issues, got %+v", res.Issues)
	}
	if res.Issues[0].ProcessID != "none" || !errors.Is(res.Issues[0], ErrMissingProductivityProfile) {
		t.Errorf("expected missing profile for packing, got %+v", res.Issues[0])
	}
	if res.Issues[0].ProcessName != "Packing" {
		t.Errorf("issue should carry the process name, got %q", res.Issues[0].ProcessName)
	}
	if res.Issues[1].ProcessID != "zero" || !errors.Is(res.Issues[1], ErrDivisionByZero) {
		t.Errorf("expected division by zero for expedição, got %+v", res.Issues[1])
	}
}

func TestCalculateIsRepeatable(t *testing.T) {
	snap := testSnapshot()
	in := model.PlanningInput{InboundVolume: 100, OutboundVolume: 200, WorkingHoursPerShift: 8, WorkedHoursPercent: 1}
	first := Calculate(in, snap, nil)
	second := Calculate(in, snap, nil)
	if len(first.Rows) != len(second.Rows) {
		t.Fatal("row count changed between calls")
	}
	for i := range first.Rows {
		if first.Rows[i] != second.Rows[i] {
			t.Errorf("row %d changed: %+v vs %+v", i, first.Rows[i], second.Rows[i])
		}
	}
}

func TestSummarize(t *testing.T) {
	rows := []model.ResultRow{
		{ProcessType: model.ProcessInbound, Volume: 10, RequiredHeadcount: 1, SupportHeadcount: 0.5},
		{ProcessType: model.ProcessOutbound, Volume: 20, RequiredHeadcount: 2},
		{ProcessType: model.ProcessOutbound, Volume: 5, RequiredHeadcount: 1, SupportHeadcount: 1},
	}
	overall, byType := Summarize(rows)
	if overall.Volume != 35 || overall.Total() != 5.5 {
		t.Errorf("unexpected overall totals: %+v", overall)
	}
	if byType[model.ProcessOutbound].Total() != 4 || byType[model.ProcessInbound].Total() != 1.5 {
		t.Errorf("unexpected per-type totals: %+v", byType)
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	rows := []model.ResultRow{{ProcessID: "1", ProcessName: "Picking", ProcessType: model.ProcessOutbound, Volume: 360, RequiredHeadcount: 1.0 / 3.0, SupportHeadcount: 0.125}}
	if err := WriteCSV(&buf, rows); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read back CSV: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected header + 1 row, got %d", len(records))
	}
	want := []string{"1", "Picking", "OUTBOUND", "360.00", "0.33", "0.13", "0.46"}
	for i, w := range want {
		if records[1][i] != w {
			t.Errorf("column %s = %q, want %q", records[0][i], records[1][i], w)
		}
	}
}

func TestWriteJSONNeverNull(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, Result{}); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	var doc map[string][]any
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if doc["results"] == nil || doc["issues"] == nil {
		t.Errorf("expected empty arrays, got %s", buf.String())
	}
}
