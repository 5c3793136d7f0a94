package cli

import (
	"fmt"
	"io"

	"labor-planner/internal/model"
	"labor-planner/internal/planning"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/fatih/color"
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	dimColor     = color.New(color.FgHiBlack)

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	numberStyle = cellStyle.Align(lipgloss.Right)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#444444"))
)

// PrintSuccess prints a confirmation line to w.
func PrintSuccess(w io.Writer, msg string) {
	_, _ = successColor.Fprintf(w, "✓ %s\n", msg)
}

// PrintWarning prints a warning line to w.
func PrintWarning(w io.Writer, msg string) {
	_, _ = warningColor.Fprintf(w, "⚠ %s\n", msg)
}

// PrintError prints an error line to w.
func PrintError(w io.Writer, msg string) {
	_, _ = errorColor.Fprintf(w, "✗ %s\n", msg)
}

// printIssues lists the processes that could not be computed.
func printIssues(w io.Writer, issues []*planning.ComputationError) {
	for _, is := range issues {
		name := is.ProcessName
		if name == "" {
			name = is.ProcessID
		}
		msg := fmt.Sprintf("%s skipped: %s", name, is.Code)
		if is.Reason != "" {
			msg += " (" + is.Reason + ")"
		}
		PrintWarning(w, msg)
	}
}

// printValidation lists every rejected input field.
func printValidation(w io.Writer, verr *planning.ValidationError) {
	for _, f := range verr.Fields {
		PrintError(w, f.String())
	}
}

// renderTable draws rows, a subtotal per process type and a totals line. Numbers use two decimals.
func renderTable(rows []model.ResultRow) string {
	total, byType := planning.Summarize(rows)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers("PROCESS", "TYPE", "VOLUME", "REQUIRED", "SUPPORT", "TOTAL").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col < 2:
				return cellStyle
			default:
				return numberStyle
			}
		})

	for _, r := range rows {
		t.Row(r.ProcessName, string(r.ProcessType),
			planning.Round2(r.Volume),
			planning.Round2(r.RequiredHeadcount),
			planning.Round2(r.SupportHeadcount),
			planning.Round2(r.TotalHeadcount()))
	}
	for _, pt := range []model.ProcessType{model.ProcessInbound, model.ProcessOutbound} {
		sub, ok := byType[pt]
		if !ok {
			continue
		}
		t.Row("Subtotal", string(pt),
			planning.Round2(sub.Volume),
			planning.Round2(sub.RequiredHeadcount),
			planning.Round2(sub.SupportHeadcount),
			planning.Round2(sub.Total()))
	}
	t.Row("Total", "",
		planning.Round2(total.Volume),
		planning.Round2(total.RequiredHeadcount),
		planning.Round2(total.SupportHeadcount),
		planning.Round2(total.Total()))

	return t.String()
}
