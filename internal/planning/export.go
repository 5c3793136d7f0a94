package planning

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"labor-planner/internal/model"

	"github.com/shopspring/decimal"
)

// Round2 formats a headcount or volume with two decimals, as shown to planners.
func Round2(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

var csvHeader = []string{"process_id", "process_name", "process_type", "volume", "required_headcount", "support_headcount", "total_headcount"}

// WriteCSV writes rows with a header and a computed total column.
func WriteCSV(w io.Writer, rows []model.ResultRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write CSV header: %w", err)
	}
	for _, row := range rows {
		record := []string{
			row.ProcessID,
			row.ProcessName,
			string(row.ProcessType),
			Round2(row.Volume),
			Round2(row.RequiredHeadcount),
			Round2(row.SupportHeadcount),
			Round2(row.TotalHeadcount()),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write CSV row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON writes the result rows and issues as an indented document.
func WriteJSON(w io.Writer, res Result) error {
	issues := res.Issues
	if issues == nil {
		issues = []*ComputationError{}
	}
	rows := res.Rows
	if rows == nil {
		rows = []model.ResultRow{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		Results []model.ResultRow   `json:"results"`
		Issues  []*ComputationError `json:"issues"`
	}{rows, issues})
}
