package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fitqa/revcheck/internal/model"
)

// SimpleWriter outputs human-readable text reports.
// This format is designed for terminal display.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors because:
// 1. It works in all terminals without compatibility issues
// 2. It's easier to pipe to files or other tools
// 3. Color can be added as an option later if needed
type SimpleWriter struct {
	baseWriter
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer) *SimpleWriter {
	return &SimpleWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the report in human-readable format.
func (w *SimpleWriter) Write(report *model.RunReport) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, report)
	w.writeScenarios(&sb, report)
	w.writeValues(&sb, report)
	w.writeReimbursements(&sb, report)
	w.writeResult(&sb, report)

	return fmt.Fprint(w.output, sb.String())
}

// writeHeader writes the run identification block.
func (w *SimpleWriter) writeHeader(sb *strings.Builder, report *model.RunReport) {
	sb.WriteString("Revenue Calculator Check\n")
	sb.WriteString(strings.Repeat("=", 40) + "\n")
	fmt.Fprintf(sb, "URL:      %s\n", report.URL)
	fmt.Fprintf(sb, "Started:  %s\n", report.StartedAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(sb, "Duration: %s\n\n", report.Duration.Round(10*time.Millisecond))
}

// writeScenarios writes per-scenario outcomes.
func (w *SimpleWriter) writeScenarios(sb *strings.Builder, report *model.RunReport) {
	sb.WriteString("Scenarios:\n")
	for _, s := range report.Scenarios {
		fmt.Fprintf(sb, "  %-10s %s", s.Name, s.Status)
		if s.Error != "" {
			fmt.Fprintf(sb, ": %s", s.Error)
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
}

// writeValues writes the slider and textbox outcomes when they ran.
func (w *SimpleWriter) writeValues(sb *strings.Builder, report *model.RunReport) {
	if report.SliderValue == 0 && report.TextboxValue == "" {
		return
	}
	if report.SliderValue != 0 {
		fmt.Fprintf(sb, "Slider value:  %d\n", report.SliderValue)
	}
	if report.TextboxValue != "" {
		fmt.Fprintf(sb, "Textbox value: %q\n", report.TextboxValue)
	}
	sb.WriteString("\n")
}

// writeReimbursements writes the collected amounts and totals comparison.
func (w *SimpleWriter) writeReimbursements(sb *strings.Builder, report *model.RunReport) {
	if len(report.Reimbursements) == 0 {
		return
	}

	sb.WriteString("Reimbursements:\n")
	for _, r := range report.Reimbursements {
		kind := "recurring"
		if !r.Recurring {
			kind = "one time"
		}
		fmt.Fprintf(sb, "  %-12s $%.2f  %s\n", r.Code, r.Amount, kind)
	}
	sb.WriteString("\n")

	if t := report.Totals; t != nil {
		verdict := "MISMATCH"
		if t.Matches() {
			verdict = "ok"
		}
		fmt.Fprintf(sb, "Monthly total: $%.2f × %d patients = $%.2f (displayed $%.2f) %s\n\n",
			t.RecurringSum, t.PatientCount, t.Computed, t.Displayed, verdict)
	}
}

// writeResult writes the overall verdict.
func (w *SimpleWriter) writeResult(sb *strings.Builder, report *model.RunReport) {
	if report.Passed() {
		sb.WriteString("Result: PASS\n")
	} else {
		sb.WriteString("Result: FAIL\n")
	}
}
