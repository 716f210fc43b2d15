package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/fitqa/revcheck/internal/browser"
	"github.com/fitqa/revcheck/internal/calculator"
	"github.com/fitqa/revcheck/internal/config"
	"github.com/fitqa/revcheck/internal/log"
	"github.com/fitqa/revcheck/internal/model"
	"github.com/fitqa/revcheck/internal/report"
)

// errCheckFailed is returned when at least one scenario failed. The details
// are in the report; the error only drives the process exit code.
var errCheckFailed = errors.New("check failed")

// NewRunCmd creates the run command.
func NewRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the slider and reimbursement scenarios in one session",
		Long: `Run opens the Revenue Calculator once and executes both scenarios in
sequence: position the slider and set the patient count, then select the CPT
code checkboxes and validate the displayed monthly total.

Examples:
  # Run both scenarios with defaults
  revcheck run

  # Run headless with a custom slider target
  revcheck run --headless --target 1500

  # Output a JSON report to a file as well as stdout
  revcheck run --json --output reports/run.json

Configuration file (.revcheck) example:
  url: https://www.fitpeo.com/
  sliderTarget: 820
  textboxTarget: "560"
  codeIdentifiers:
    - CPT-99091
    - CPT-99453
  waitTimeout: 10s
  headless: true`,
		Args: cobra.NoArgs,
		RunE: runRunCmd,
	}

	addScenarioFlags(cmd)
	addReportFlags(cmd)

	return cmd
}

// addScenarioFlags registers the flags shared by run, slider, and reimburse.
func addScenarioFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("url", "u", config.DefaultURL,
		"Page hosting the Revenue Calculator")
	cmd.Flags().Int("slider-min", config.DefaultSliderMin,
		"Slider's logical minimum value")
	cmd.Flags().Int("slider-max", config.DefaultSliderMax,
		"Slider's logical maximum value")
	cmd.Flags().Int("target", config.DefaultSliderTarget,
		"Logical value to drive the slider to")
	cmd.Flags().String("patients", config.DefaultTextboxTarget,
		"Exact string typed into the patient count input")
	cmd.Flags().StringSlice("code", config.DefaultCodes(),
		"CPT code checkbox to select (repeatable, click order preserved)")
	cmd.Flags().DurationP("wait-timeout", "t", config.DefaultWaitTimeout,
		"Timeout for each explicit element wait")
	cmd.Flags().Bool("headless", false,
		"Run Chrome without a visible window")
	cmd.Flags().String("chromedriver-path", config.DefaultChromeDriverPath,
		"Path to the chromedriver binary")
	cmd.Flags().Int("chromedriver-port", config.DefaultChromeDriverPort,
		"Local port chromedriver listens on")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .revcheck in current or home directory)")
}

// addReportFlags registers the report output flags.
func addReportFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Also write the report to the specified file (creates directories if needed)")
}

// runRunCmd executes the run command.
func runRunCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := log.NewLogger(os.Stderr, cfg.Verbose)
	slog.SetDefault(logger)

	ctx, cancel := signalContext(logger)
	defer cancel()

	runReport, err := executeScenarios(ctx, cfg, logger, true, true)
	if err != nil {
		return err
	}

	if err := outputReport(cfg, runReport); err != nil {
		return err
	}
	if !runReport.Passed() {
		return errCheckFailed
	}
	return nil
}

// executeScenarios starts a browser session, opens the Revenue Calculator,
// and runs the requested scenarios against it. The session is closed before
// returning on every path. A scenario failure is recorded in the report, not
// returned; only setup failures (chromedriver, navigation) become errors.
func executeScenarios(ctx context.Context, cfg *config.Config, logger *slog.Logger, slider, reimburse bool) (*model.RunReport, error) {
	runReport := &model.RunReport{
		URL:       cfg.URL,
		StartedAt: time.Now(),
	}
	defer func() {
		runReport.Duration = time.Since(runReport.StartedAt)
	}()

	session, err := browser.Start(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to start browser session: %w", err)
	}
	defer func() {
		if err := session.Close(); err != nil {
			logger.Error("failed to close browser session", "error", err)
		}
	}()

	calc := calculator.New(session, cfg, logger)
	if err := calc.Open(ctx); err != nil {
		return nil, fmt.Errorf("failed to open revenue calculator: %w", err)
	}

	if slider {
		sliderValue, textboxValue, err := calc.RunSlider(ctx)
		runReport.AddResult("slider", err)
		runReport.SliderValue = sliderValue
		runReport.TextboxValue = textboxValue
		if ctx.Err() != nil {
			return runReport, ctx.Err()
		}
	}

	if reimburse {
		collected, totals, err := calc.RunReimbursement(ctx)
		runReport.AddResult("reimburse", err)
		runReport.Reimbursements = collected
		runReport.Totals = totals
		if ctx.Err() != nil {
			return runReport, ctx.Err()
		}
	}

	return runReport, nil
}

// signalContext returns a context cancelled on SIGINT or SIGTERM.
func signalContext(logger *slog.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return ctx, cancel
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from defaults, the optional config file, and
// cobra command flags, in that precedence order.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.Verbose = getVerboseFlag(cmd)

	var err error
	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// Apply the config file before flags so explicit flags win.
	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently run on defaults when no file exists.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	if configPath != "" {
		cf, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		cf.Apply(cfg)
	} else if explicitConfigPath {
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
	}

	if err := applyFlagOverrides(cmd, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyFlagOverrides copies explicitly set flags onto the config.
// Only flags the user actually passed override the file; defaults do not.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) error {
	var err error

	if cmd.Flags().Changed("url") {
		if cfg.URL, err = cmd.Flags().GetString("url"); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("slider-min") {
		if cfg.SliderMin, err = cmd.Flags().GetInt("slider-min"); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("slider-max") {
		if cfg.SliderMax, err = cmd.Flags().GetInt("slider-max"); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("target") {
		if cfg.SliderTarget, err = cmd.Flags().GetInt("target"); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("patients") {
		if cfg.TextboxTarget, err = cmd.Flags().GetString("patients"); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("code") {
		if cfg.Codes, err = cmd.Flags().GetStringSlice("code"); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("wait-timeout") {
		if cfg.WaitTimeout, err = cmd.Flags().GetDuration("wait-timeout"); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("headless") {
		if cfg.Headless, err = cmd.Flags().GetBool("headless"); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("chromedriver-path") {
		if cfg.ChromeDriverPath, err = cmd.Flags().GetString("chromedriver-path"); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("chromedriver-port") {
		if cfg.ChromeDriverPort, err = cmd.Flags().GetInt("chromedriver-port"); err != nil {
			return err
		}
	}

	// Report flags only exist where addReportFlags was called.
	if cmd.Flags().Lookup("json") != nil {
		if cfg.JSONReport, err = cmd.Flags().GetBool("json"); err != nil {
			return err
		}
		if cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown"); err != nil {
			return err
		}
		if cfg.ReportFile, err = cmd.Flags().GetString("output"); err != nil {
			return err
		}
	}

	return nil
}

// outputReport writes the run report to stdout in the requested format, and
// additionally to cfg.ReportFile when set.
func outputReport(cfg *config.Config, runReport *model.RunReport) error {
	writers := []report.Writer{newReportWriter(cfg, os.Stdout)}

	if cfg.ReportFile != "" {
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600) //nolint:gosec // User-provided report path is intentional
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		writers = append(writers, newReportWriter(cfg, f))
	}

	_, err := report.NewMultiWriter(writers...).Write(runReport)
	return err
}

// newReportWriter picks the report format from the config.
func newReportWriter(cfg *config.Config, output *os.File) report.Writer {
	switch {
	case cfg.JSONReport:
		return report.NewJSONWriter(output, report.WithPrettyPrint())
	case cfg.MarkdownReport:
		return report.NewMarkdownWriter(output)
	default:
		return report.NewSimpleWriter(output)
	}
}
