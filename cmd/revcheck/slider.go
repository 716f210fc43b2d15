package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/fitqa/revcheck/internal/log"
)

// NewSliderCmd creates the slider command.
func NewSliderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "slider",
		Short: "Position the patient slider and set the patient count",
		Long: `Slider opens the Revenue Calculator and runs only the slider scenario:
drag the patient slider to the target value, correct it with arrow keys
until the widget reports exactly that value, then clear the patient count
input and type the configured string.

Examples:
  # Position the slider to the default target
  revcheck slider

  # Drive the slider to 1500 with a larger wait budget
  revcheck slider --target 1500 --wait-timeout 20s`,
		Args: cobra.NoArgs,
		RunE: runSliderCmd,
	}

	addScenarioFlags(cmd)
	addReportFlags(cmd)

	return cmd
}

// runSliderCmd executes the slider command.
func runSliderCmd(cmd *cobra.Command, _ []string) error {
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

	runReport, err := executeScenarios(ctx, cfg, logger, true, false)
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
