// Package report renders run results in multiple output formats.
//
// Three writers share one interface: a human-readable text format for
// terminals (default), JSON for tool integration, and GitHub Flavored
// Markdown for sharing check results in issues and docs. A MultiWriter fans
// a report out to several destinations, which is how "stdout plus a file"
// output works.
package report
