package money

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformed is returned when a scraped string does not parse as a dollar
// amount after formatting characters are stripped.
var ErrMalformed = errors.New("malformed currency value")

// Parse converts a scraped currency string to a dollar amount.
// All "$" and "," characters are stripped before conversion, so
// "$1,234.00" parses to 1234.00 and "$0" to 0.
func Parse(s string) (float64, error) {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.ReplaceAll(cleaned, "$", "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	if cleaned == "" {
		return 0, fmt.Errorf("%w: %q", ErrMalformed, s)
	}

	amount, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformed, s)
	}
	return amount, nil
}

// ParseInt converts a scraped currency string to a whole dollar amount.
// The aggregate monthly total is rendered without cents; a fractional value
// here means the page changed shape and the run should fail loudly.
func ParseInt(s string) (int, error) {
	amount, err := Parse(s)
	if err != nil {
		return 0, err
	}

	whole := int(amount)
	if float64(whole) != amount {
		return 0, fmt.Errorf("%w: %q is not a whole dollar amount", ErrMalformed, s)
	}
	return whole, nil
}
