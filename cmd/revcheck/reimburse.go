package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/fitqa/revcheck/internal/log"
)

// NewReimburseCmd creates the reimburse command.
func NewReimburseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reimburse",
		Short: "Select CPT codes and validate the monthly reimbursement total",
		Long: `Reimburse opens the Revenue Calculator and runs only the reimbursement
scenario: select each configured CPT code checkbox in order, scrape its
reimbursement amount, classify it as recurring or one-time, and check that
the displayed monthly total equals the sum of the recurring amounts
multiplied by the patient count currently shown on the page.

Examples:
  # Validate with the default CPT codes
  revcheck reimburse

  # Validate a subset of codes only
  revcheck reimburse --code CPT-99091 --code CPT-99454`,
		Args: cobra.NoArgs,
		RunE: runReimburseCmd,
	}

	addScenarioFlags(cmd)
	addReportFlags(cmd)

	return cmd
}

// runReimburseCmd executes the reimburse command.
func runReimburseCmd(cmd *cobra.Command, _ []string) error {
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

	runReport, err := executeScenarios(ctx, cfg, logger, false, true)
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
