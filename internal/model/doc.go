// Package model defines the core data structures used throughout revcheck.
//
// This package contains the following main types:
//   - SliderRange: The logical value range and target for the slider widget
//   - Geometry: An on-screen snapshot of an element's horizontal extent
//   - Reimbursement: A scraped per-code reimbursement amount
//   - Totals: The computed-versus-displayed monthly reimbursement comparison
//   - RunReport: The result of a full check run, serializable for reports
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Multiple packages (calculator, report) need to use these
// types, so centralizing them prevents import cycles.
//
// All entities are transient: they are scraped from a live page, used within
// a single run, and discarded. Nothing in this package is persisted.
package model
