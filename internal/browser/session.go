package browser

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/tebeka/selenium"
	"github.com/tebeka/selenium/chrome"

	"github.com/fitqa/revcheck/internal/config"
)

// Session is a scoped browser acquisition: it owns the chromedriver process
// and the WebDriver connection, and releases both in Close. Callers defer
// Close immediately after Start so the browser is torn down on every exit
// path, not only on success.
type Session struct {
	wd      selenium.WebDriver
	service *selenium.Service
	timeout time.Duration
	logger  *slog.Logger
}

// Start launches chromedriver, opens a WebDriver session against it, and
// returns the combined handle. On any failure the already-acquired pieces
// are released before returning.
func Start(cfg *config.Config, logger *slog.Logger) (*Session, error) {
	if logger == nil {
		logger = slog.Default()
	}

	// chromedriver's own logging is noisy; keep it out of our output.
	service, err := selenium.NewChromeDriverService(
		cfg.ChromeDriverPath, cfg.ChromeDriverPort,
		selenium.Output(io.Discard),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: chromedriver at %s: %v", ErrSessionStart, cfg.ChromeDriverPath, err)
	}

	caps := selenium.Capabilities{"browserName": "chrome"}
	chromeCaps := chrome.Capabilities{}
	if cfg.Headless {
		chromeCaps.Args = append(chromeCaps.Args, "--headless=new", "--window-size=1920,1080")
	}
	caps.AddChrome(chromeCaps)

	wd, err := selenium.NewRemote(caps, fmt.Sprintf("http://localhost:%d/wd/hub", cfg.ChromeDriverPort))
	if err != nil {
		if stopErr := service.Stop(); stopErr != nil {
			logger.Error("failed to stop chromedriver after session failure", "error", stopErr)
		}
		return nil, fmt.Errorf("%w: %v", ErrSessionStart, err)
	}

	logger.Debug("browser session started",
		"chromedriver", cfg.ChromeDriverPath,
		"port", cfg.ChromeDriverPort,
		"headless", cfg.Headless,
	)

	return &Session{
		wd:      wd,
		service: service,
		timeout: cfg.WaitTimeout,
		logger:  logger,
	}, nil
}

// NewWithDriver wraps an existing WebDriver in a Session. Close quits the
// driver but has no chromedriver process to stop. Used by tests that
// substitute a fake driver.
func NewWithDriver(wd selenium.WebDriver, timeout time.Duration, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{wd: wd, timeout: timeout, logger: logger}
}

// Close quits the WebDriver session and stops chromedriver. Safe to call
// once regardless of how far the run got; both halves are attempted even if
// the first fails.
func (s *Session) Close() error {
	var quitErr error
	if s.wd != nil {
		quitErr = s.wd.Quit()
	}
	if s.service != nil {
		if err := s.service.Stop(); err != nil && quitErr == nil {
			quitErr = err
		}
	}
	if quitErr != nil {
		return fmt.Errorf("closing browser session: %w", quitErr)
	}
	return nil
}

// Driver exposes the underlying WebDriver for gesture-level operations
// (button down/up during the slider drag) that have no place in the wait
// vocabulary.
func (s *Session) Driver() selenium.WebDriver {
	return s.wd
}

// Open navigates to the URL and maximizes the window.
func (s *Session) Open(url string) error {
	if err := s.wd.Get(url); err != nil {
		return fmt.Errorf("opening %s: %w", url, err)
	}
	if err := s.wd.MaximizeWindow(""); err != nil {
		return fmt.Errorf("maximizing window: %w", err)
	}
	s.logger.Debug("page opened", "url", url)
	return nil
}

// Find returns the first element matching the XPath, failing immediately if
// none exists. No implicit wait is applied.
func (s *Session) Find(xpath string) (selenium.WebElement, error) {
	elem, err := s.wd.FindElement(selenium.ByXPATH, xpath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrElementNotFound, xpath)
	}
	return elem, nil
}

// WaitPresent blocks until an element matching the XPath exists in the DOM,
// or the session timeout elapses.
func (s *Session) WaitPresent(xpath string) (selenium.WebElement, error) {
	return s.waitFor(xpath, func(elem selenium.WebElement) (bool, error) {
		return true, nil
	})
}

// WaitClickable blocks until an element matching the XPath is displayed and
// enabled, or the session timeout elapses.
func (s *Session) WaitClickable(xpath string) (selenium.WebElement, error) {
	return s.waitFor(xpath, func(elem selenium.WebElement) (bool, error) {
		displayed, err := elem.IsDisplayed()
		if err != nil || !displayed {
			return false, nil
		}
		enabled, err := elem.IsEnabled()
		if err != nil {
			return false, nil
		}
		return enabled, nil
	})
}

// waitFor polls for an element matching the XPath that also satisfies ready,
// returning the element once found. Lookup errors during polling are treated
// as "not yet", not failures; only the timeout fails the wait.
func (s *Session) waitFor(xpath string, ready func(selenium.WebElement) (bool, error)) (selenium.WebElement, error) {
	var found selenium.WebElement

	condition := func(wd selenium.WebDriver) (bool, error) {
		elem, err := wd.FindElement(selenium.ByXPATH, xpath)
		if err != nil {
			return false, nil
		}
		ok, err := ready(elem)
		if err != nil || !ok {
			return false, nil
		}
		found = elem
		return true, nil
	}

	if err := s.wd.WaitWithTimeout(condition, s.timeout); err != nil {
		return nil, fmt.Errorf("%w: %s (waited %v)", ErrElementNotFound, xpath, s.timeout)
	}
	return found, nil
}

// Exists reports whether at least one element currently matches the XPath.
// This is a non-blocking probe: absence answers immediately instead of
// costing a full wait timeout.
func (s *Session) Exists(xpath string) (bool, error) {
	elems, err := s.wd.FindElements(selenium.ByXPATH, xpath)
	if err != nil {
		return false, fmt.Errorf("probing %s: %w", xpath, err)
	}
	return len(elems) > 0, nil
}

// ScrollIntoView centers the element in the viewport. Used before gestures
// on elements that may sit below the fold.
func (s *Session) ScrollIntoView(elem selenium.WebElement) error {
	_, err := s.wd.ExecuteScript(
		"arguments[0].scrollIntoView({block: 'center', inline: 'center'});",
		[]interface{}{elem},
	)
	if err != nil {
		return fmt.Errorf("scrolling element into view: %w", err)
	}
	return nil
}
