package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
// The scenario defaults mirror the observed Revenue Calculator configuration;
// all of them can be overridden via flags or the config file.
const (
	// DefaultURL is the page hosting the Revenue Calculator widget.
	DefaultURL = "https://www.fitpeo.com/"

	// DefaultSliderMin and DefaultSliderMax are the slider's documented
	// logical bounds.
	DefaultSliderMin = 0
	DefaultSliderMax = 2000

	// DefaultSliderTarget is the logical value the slider scenario
	// converges the widget to.
	DefaultSliderTarget = 820

	// DefaultTextboxTarget is the literal string typed into the numeric
	// input. It is a string, not a number: the scenario asserts the field's
	// text byte-for-byte, so "560" and "0560" are different values.
	DefaultTextboxTarget = "560"

	// DefaultWaitTimeout bounds every explicit wait in a session. 10 seconds
	// matches the page's observed render latency with headroom; waits longer
	// than this indicate the markup has drifted, not that the page is slow.
	DefaultWaitTimeout = 10 * time.Second

	// DefaultChromeDriverPath is the chromedriver binary to launch.
	// A bare name is resolved via PATH.
	DefaultChromeDriverPath = "chromedriver"

	// DefaultChromeDriverPort is chromedriver's standard listen port.
	DefaultChromeDriverPort = 9515

	// AppName is the application name used for XDG directory paths.
	AppName = "revcheck"
)

// DefaultCodes returns the CPT codes whose checkboxes the reimburse scenario
// selects, in click order. The order matters: amounts are collected and
// reported in this sequence.
func DefaultCodes() []string {
	return []string{"CPT-99091", "CPT-99453", "CPT-99454", "CPT-99474"}
}

// Config holds all configuration options for revcheck.
// This struct is populated from defaults, then the optional config file,
// then CLI flags, and passed through the application via dependency
// injection rather than global state.
//
// Design decision: We use a single flat struct instead of nested structs
// (e.g., SliderConfig, BrowserConfig) for simplicity. The number of options
// is manageable, and nesting would add complexity without significant benefit.
type Config struct {
	// URL is the page to open. The locators in internal/locator are coupled
	// to this page's markup; pointing revcheck elsewhere is not supported.
	URL string

	// SliderMin and SliderMax are the slider's logical bounds.
	SliderMin int
	SliderMax int

	// SliderTarget is the logical value to drive the slider to.
	// Must lie within [SliderMin, SliderMax].
	SliderTarget int

	// TextboxTarget is the exact string typed into the numeric input after
	// the slider is positioned.
	TextboxTarget string

	// Codes are the CPT code identifiers to select, in click order.
	Codes []string

	// WaitTimeout bounds every explicit wait (clickable, present) within
	// the browser session.
	WaitTimeout time.Duration

	// Headless runs Chrome without a visible window. Off by default so a
	// failing run can be watched; CI turns it on.
	Headless bool

	// ChromeDriverPath is the chromedriver binary to launch.
	ChromeDriverPath string

	// ChromeDriverPort is the local port chromedriver listens on.
	ChromeDriverPort int

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// ConfigFilePath is the path to the configuration file. If empty, the
	// tool searches for .revcheck in the current directory, the user's home
	// directory, and the XDG config directory.
	ConfigFilePath string

	// JSONReport enables JSON report output instead of human-readable
	// format. Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown report output instead of
	// human-readable format. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the report. When set, the
	// report is written to this file in addition to stdout.
	ReportFile string
}

// NewConfig creates a new Config with default values.
// All fields are set to the observed Revenue Calculator configuration so a
// bare `revcheck run` is a complete, runnable check.
func NewConfig() *Config {
	return &Config{
		URL:              DefaultURL,
		SliderMin:        DefaultSliderMin,
		SliderMax:        DefaultSliderMax,
		SliderTarget:     DefaultSliderTarget,
		TextboxTarget:    DefaultTextboxTarget,
		Codes:            DefaultCodes(),
		WaitTimeout:      DefaultWaitTimeout,
		ChromeDriverPath: DefaultChromeDriverPath,
		ChromeDriverPort: DefaultChromeDriverPort,
	}
}

// XDGConfigDir returns the XDG config directory for revcheck.
// On Linux: ~/.config/revcheck
// On macOS: ~/Library/Application Support/revcheck
// On Windows: %APPDATA%\revcheck
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns the first error found; fixing one error often makes others
// irrelevant. Called once after flag parsing, before the browser starts.
func (c *Config) Validate() error {
	if c.URL == "" {
		return ErrNoURL
	}

	if c.SliderMin >= c.SliderMax {
		return ErrInvalidSliderRange
	}

	if c.SliderTarget < c.SliderMin || c.SliderTarget > c.SliderMax {
		return ErrSliderTargetOutOfRange
	}

	if c.TextboxTarget == "" {
		return ErrNoTextboxTarget
	}

	if len(c.Codes) == 0 {
		return ErrNoCodes
	}

	if c.WaitTimeout <= 0 {
		return ErrInvalidTimeout
	}

	if c.ChromeDriverPort <= 0 || c.ChromeDriverPort > 65535 {
		return ErrInvalidPort
	}

	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	return nil
}
