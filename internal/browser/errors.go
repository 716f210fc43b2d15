package browser

import "errors"

// Session errors.
var (
	// ErrElementNotFound is returned when a locator resolves to nothing,
	// either immediately (Find) or within the wait timeout (WaitClickable,
	// WaitPresent). The wrapping error names the locator.
	ErrElementNotFound = errors.New("element not found")

	// ErrSessionStart is returned when chromedriver or the WebDriver
	// session cannot be brought up.
	ErrSessionStart = errors.New("failed to start browser session")
)
