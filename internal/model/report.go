package model

import "time"

// ScenarioStatus is the outcome of a single scenario within a run.
type ScenarioStatus string

// Scenario outcomes. A scenario either completed with all of its assertions
// holding, failed an assertion or locator, or was never reached because an
// earlier scenario aborted the run.
const (
	StatusPassed  ScenarioStatus = "passed"
	StatusFailed  ScenarioStatus = "failed"
	StatusSkipped ScenarioStatus = "skipped"
)

// ScenarioResult records the outcome of one scenario.
type ScenarioResult struct {
	// Name identifies the scenario ("slider" or "reimburse").
	Name string `json:"name"`

	// Status is the scenario outcome.
	Status ScenarioStatus `json:"status"`

	// Error holds the failure message when Status is StatusFailed.
	Error string `json:"error,omitempty"`
}

// RunReport is the full result of a revcheck run.
//
// Design decision: We use a single struct covering both scenarios rather than
// per-scenario report types. Report writers always want the whole run, and
// fields for a scenario that did not run simply stay at their zero values.
type RunReport struct {
	// URL is the page the run was executed against.
	URL string `json:"url"`

	// StartedAt is the timestamp when the run began.
	StartedAt time.Time `json:"started_at"`

	// Duration is the total wall-clock time of the run.
	Duration time.Duration `json:"duration"`

	// Scenarios lists per-scenario outcomes in execution order.
	Scenarios []ScenarioResult `json:"scenarios"`

	// SliderValue is the logical value the slider reported after
	// positioning. Zero when the slider scenario did not run.
	SliderValue int `json:"slider_value,omitempty"`

	// TextboxValue is the value the numeric input reported after being set.
	TextboxValue string `json:"textbox_value,omitempty"`

	// Reimbursements lists the scraped per-code amounts in collection order.
	Reimbursements []Reimbursement `json:"reimbursements,omitempty"`

	// Totals holds the final comparison when the reimburse scenario ran.
	Totals *Totals `json:"totals,omitempty"`
}

// Passed reports whether every executed scenario passed.
// A run with no scenarios has nothing to fail and counts as passed.
func (r *RunReport) Passed() bool {
	for _, s := range r.Scenarios {
		if s.Status == StatusFailed {
			return false
		}
	}
	return true
}

// AddResult appends a scenario outcome. A nil err records a pass; otherwise
// the error message is captured and the scenario marked failed.
func (r *RunReport) AddResult(name string, err error) {
	result := ScenarioResult{Name: name, Status: StatusPassed}
	if err != nil {
		result.Status = StatusFailed
		result.Error = err.Error()
	}
	r.Scenarios = append(r.Scenarios, result)
}
