package report

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/nao1215/markdown"

	"github.com/fitqa/revcheck/internal/model"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the full report in Markdown format.
func (w *MarkdownWriter) Write(report *model.RunReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)
	w.writeScenarios(md, report)
	w.writeValues(md, report)
	w.writeReimbursements(md, report)
	w.writeVerdict(md, report)

	return len(md.String()), md.Build()
}

// writeHeader writes the report header with run information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.RunReport) {
	md.H1("Revenue Calculator Check")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"URL", "`" + report.URL + "`"},
			{"Started", report.StartedAt.Format("2006-01-02 15:04:05 MST")},
			{"Duration", report.Duration.Round(10 * time.Millisecond).String()},
			{"Status", w.statusText(report)},
		},
	})
	md.PlainText("")
}

// statusText returns the overall status text for the info table.
func (w *MarkdownWriter) statusText(report *model.RunReport) string {
	if report.Passed() {
		return "✅ Pass"
	}
	return "❌ Fail"
}

// writeScenarios writes the per-scenario outcome table.
func (w *MarkdownWriter) writeScenarios(md *markdown.Markdown, report *model.RunReport) {
	md.H2("Scenarios")
	md.PlainText("")

	if len(report.Scenarios) == 0 {
		md.PlainText("No scenarios executed.")
		md.PlainText("")
		return
	}

	rows := make([][]string, 0, len(report.Scenarios))
	for _, s := range report.Scenarios {
		detail := s.Error
		if detail == "" {
			detail = "-"
		}
		rows = append(rows, []string{s.Name, w.scenarioStatusText(s.Status), detail})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Scenario", "Status", "Detail"},
		Rows:   rows,
	})
	md.PlainText("")
}

// scenarioStatusText maps a scenario status to its display text.
func (w *MarkdownWriter) scenarioStatusText(status model.ScenarioStatus) string {
	switch status {
	case model.StatusPassed:
		return "✅ passed"
	case model.StatusFailed:
		return "❌ failed"
	default:
		return "⏭️ skipped"
	}
}

// writeValues writes the slider and textbox readings when present.
func (w *MarkdownWriter) writeValues(md *markdown.Markdown, report *model.RunReport) {
	if report.SliderValue == 0 && report.TextboxValue == "" {
		return
	}

	md.H2("Page Values")
	md.PlainText("")

	rows := [][]string{}
	if report.SliderValue != 0 {
		rows = append(rows, []string{"Slider", strconv.Itoa(report.SliderValue)})
	}
	if report.TextboxValue != "" {
		rows = append(rows, []string{"Patient count input", report.TextboxValue})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Element", "Value"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeReimbursements writes the per-code amounts and the totals comparison.
func (w *MarkdownWriter) writeReimbursements(md *markdown.Markdown, report *model.RunReport) {
	if len(report.Reimbursements) == 0 {
		return
	}

	md.H2("Reimbursements")
	md.PlainText("")

	rows := make([][]string, 0, len(report.Reimbursements))
	for _, r := range report.Reimbursements {
		kind := "one time"
		if r.Recurring {
			kind = "recurring"
		}
		rows = append(rows, []string{r.Code, fmt.Sprintf("$%.2f", r.Amount), kind})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Code", "Amount", "Billing"},
		Rows:   rows,
	})
	md.PlainText("")

	if t := report.Totals; t != nil {
		md.PlainTextf(
			"Monthly total: $%.2f × %d patients = $%.2f (displayed $%.2f)",
			t.RecurringSum, t.PatientCount, t.Computed, t.Displayed,
		)
		md.PlainText("")
	}
}

// writeVerdict writes an alert summarizing the run outcome.
func (w *MarkdownWriter) writeVerdict(md *markdown.Markdown, report *model.RunReport) {
	if report.Passed() {
		md.Tip("All scenarios passed. The displayed total matches the computed total.")
	} else {
		md.Cautionf("%d scenario(s) failed. See the scenario table for details.", w.failedCount(report))
	}
	md.PlainText("")
}

// failedCount counts failed scenarios.
func (w *MarkdownWriter) failedCount(report *model.RunReport) int {
	n := 0
	for _, s := range report.Scenarios {
		if s.Status == model.StatusFailed {
			n++
		}
	}
	return n
}
