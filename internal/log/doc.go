// Package log provides logging helpers for revcheck, built on top of the
// standard slog package.
//
// Scraping logs carry page-derived strings: XPath locators, scraped element
// text, attribute values. On a drifted page these can balloon to whole DOM
// fragments, which makes verbose logs unreadable and occasionally enormous.
// The TrimHandler wraps any slog.Handler and bounds every string attribute
// to a fixed length before delegating, so a misbehaving page cannot flood
// the log.
//
// Usage:
//
//	logger := log.NewLogger(os.Stderr, verbose)
//	logger.Debug("scraped amount", "text", hugePageFragment) // trimmed
//	slog.SetDefault(logger)
package log
