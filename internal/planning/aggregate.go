package planning

import "labor-planner/internal/model"

// Totals sums headcount over a set of rows.
type Totals struct {
	Volume            float64 `json:"volume"`
	RequiredHeadcount float64 `json:"requiredHeadcount"`
	SupportHeadcount  float64 `json:"supportHeadcount"`
}

// Total is required plus support.
func (t Totals) Total() float64 {
	return t.RequiredHeadcount + t.SupportHeadcount
}

func (t *Totals) add(row model.ResultRow) {
	t.Volume += row.Volume
	t.RequiredHeadcount += row.RequiredHeadcount
	t.SupportHeadcount += row.SupportHeadcount
}

// Aggregate builds result rows in catalog order. Processes without a computed
// headcount (because they failed) are left out.
func Aggregate(catalogOrder []model.Process, applied map[string]float64, computed map[string]Headcount) []model.ResultRow {
	rows := make([]model.ResultRow, 0, len(computed))
	for _, p := range catalogOrder {
		hc, ok := computed[p.ID]
		if !ok {
			continue
		}
		rows = append(rows, model.ResultRow{
			ProcessID:         p.ID,
			ProcessName:       p.Name,
			ProcessType:       p.Type(),
			Volume:            applied[p.ID],
			RequiredHeadcount: hc.Required,
			SupportHeadcount:  hc.Support,
		})
	}
	return rows
}

// Summarize totals rows overall and per process type.
func Summarize(rows []model.ResultRow) (Totals, map[model.ProcessType]Totals) {
	var overall Totals
	byType := make(map[model.ProcessType]Totals, 2)
	for _, row := range rows {
		overall.add(row)
		t := byType[row.ProcessType]
		t.add(row)
		byType[row.ProcessType] = t
	}
	return overall, byType
}
