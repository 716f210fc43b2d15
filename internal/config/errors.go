package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrNoURL is returned when the target URL is empty.
	ErrNoURL = errors.New("no target URL specified")

	// ErrInvalidSliderRange is returned when the slider minimum is not
	// strictly below the maximum.
	ErrInvalidSliderRange = errors.New("invalid slider range: min must be below max")

	// ErrSliderTargetOutOfRange is returned when the slider target lies
	// outside [min, max]. An out-of-range target is a configuration error,
	// not a condition the positioning algorithm handles.
	ErrSliderTargetOutOfRange = errors.New("slider target outside the configured range")

	// ErrNoTextboxTarget is returned when the textbox value is empty.
	// The field assertion compares exact strings, so there is no meaningful
	// run without a value to type.
	ErrNoTextboxTarget = errors.New("no textbox target value specified")

	// ErrNoCodes is returned when the CPT code list is empty.
	ErrNoCodes = errors.New("no CPT codes specified")

	// ErrInvalidTimeout is returned when the wait timeout is not positive.
	// A zero timeout would fail every explicit wait immediately.
	ErrInvalidTimeout = errors.New("invalid wait timeout: must be positive")

	// ErrInvalidPort is returned when the chromedriver port is outside the
	// valid TCP port range.
	ErrInvalidPort = errors.New("invalid chromedriver port")

	// ErrConflictingReportFormats is returned when both --json and
	// --markdown are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")
)
