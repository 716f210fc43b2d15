// Package money parses the currency strings revcheck scrapes from the page.
//
// The widget renders dollar amounts as "$1,234.00". Parsing strips the
// currency symbol and thousands separators before numeric conversion, and
// reports malformed input as an error instead of propagating a bare strconv
// failure into the middle of a scenario.
package money
