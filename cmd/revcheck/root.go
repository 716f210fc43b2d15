// Package main provides the entry point for the revcheck CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for revcheck.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "revcheck",
		Short: "Automated checks for the FitPeo Revenue Calculator",
		Long: `Revcheck drives a real Chrome browser against the FitPeo Revenue
Calculator page and verifies its arithmetic.

The slider scenario drags the patient slider to a target value and types an
exact patient count. The reimburse scenario selects CPT code checkboxes,
collects their reimbursement amounts, and checks the displayed monthly total
against the recomputed sum.

Revcheck launches chromedriver itself; the binary must be on PATH or named
via --chromedriver-path.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewRunCmd())
	cmd.AddCommand(NewSliderCmd())
	cmd.AddCommand(NewReimburseCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
