// Package main provides the entry point for the revcheck CLI.
//
// Revcheck drives a real Chrome browser against the FitPeo Revenue
// Calculator page and verifies its arithmetic: slider positioning,
// patient-count entry, and the reimbursement total for a set of CPT codes.
//
// Usage:
//
//	revcheck run
//	revcheck slider --target 820
//	revcheck reimburse --code CPT-99091 --code CPT-99454
//
// See --help for all available options.
package main

// main is the entry point for revcheck.
func main() {
	Execute()
}
