package calculator

import "errors"

// Scenario assertion errors. All of them abort the run; the wrapping error
// carries both the expected and observed values.
var (
	// ErrSliderConvergence is returned when the slider's reported value
	// does not reach the target after the coarse drag and the bounded
	// fine-correction pass.
	ErrSliderConvergence = errors.New("slider failed to converge")

	// ErrValueMismatch is returned when the numeric input's text differs
	// from the expected value. Comparison is exact string equality:
	// "560" is not satisfied by "560.0" or "0560".
	ErrValueMismatch = errors.New("textbox value mismatch")

	// ErrReimbursementMismatch is returned when the computed total
	// (sum of recurring amounts × patient count) does not equal the
	// displayed aggregate.
	ErrReimbursementMismatch = errors.New("reimbursement total mismatch")
)
