// Package calculator drives the Revenue Calculator widget.
//
// It contains the page-level operations the two scenarios are built from:
//
//   - Slider: two-phase positioning. A coarse press-drag-release computed
//     from on-screen geometry, then keyboard-arrow fine correction until the
//     widget reports exactly the target value. The coarse phase alone is
//     imprecise (fractional pixel rounding, widget snapping); the key-step
//     phase guarantees integer convergence regardless of rendering scale.
//   - ValueField: exact-string semantics for the numeric input: clear one
//     character at a time, type the replacement, assert byte-for-byte.
//   - Collector: per-code checkbox selection and amount scraping, with a
//     non-blocking probe for the "One Time" chip.
//   - Validator: the final sum(recurring) × patients == displayed aggregate
//     assertion, compared in whole cents.
//
// Calculator ties these together against one browser session. All failures
// are fatal to the run; there is no retry beyond the session's explicit
// waits.
package calculator
