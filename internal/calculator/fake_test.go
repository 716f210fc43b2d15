package calculator

import (
	"errors"
	"io"
	"log/slog"
	"math"
	"strconv"
	"time"

	"github.com/tebeka/selenium"
)

// The fakes below stand in for the WebDriver wire protocol. They embed the
// library interfaces so only the methods the code under test reaches need
// implementations; an unexpected call panics, which is exactly what a unit
// test wants.

// testLogger returns a logger that swallows output.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeDriver resolves XPath strings against a fixed element table and
// simulates the pointer for drag gestures.
type fakeDriver struct {
	selenium.WebDriver

	elements map[string]selenium.WebElement

	pointerX   int
	buttonHeld bool
	widget     *fakeSliderWidget

	scrolls   int
	navigated []string
	maximized bool
	quit      bool
}

func newFakeDriver() *fakeDriver {
	return &fakeDriver{elements: make(map[string]selenium.WebElement)}
}

func (d *fakeDriver) FindElement(by, value string) (selenium.WebElement, error) {
	if elem, ok := d.elements[value]; ok {
		return elem, nil
	}
	return nil, errors.New("no such element: " + value)
}

func (d *fakeDriver) FindElements(by, value string) ([]selenium.WebElement, error) {
	if elem, ok := d.elements[value]; ok {
		return []selenium.WebElement{elem}, nil
	}
	return nil, nil
}

func (d *fakeDriver) WaitWithTimeout(condition selenium.Condition, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for {
		ok, err := condition(d)
		if err != nil {
			return err
		}
		if ok {
			return nil
		}
		if time.Now().After(deadline) {
			return errors.New("timeout")
		}
		time.Sleep(time.Millisecond)
	}
}

func (d *fakeDriver) ExecuteScript(script string, args []interface{}) (interface{}, error) {
	d.scrolls++
	return nil, nil
}

func (d *fakeDriver) ButtonDown() error {
	d.buttonHeld = true
	return nil
}

func (d *fakeDriver) ButtonUp() error {
	if d.buttonHeld && d.widget != nil {
		d.widget.drop(d.pointerX)
	}
	d.buttonHeld = false
	return nil
}

func (d *fakeDriver) Get(url string) error {
	d.navigated = append(d.navigated, url)
	return nil
}

func (d *fakeDriver) MaximizeWindow(name string) error {
	d.maximized = true
	return nil
}

func (d *fakeDriver) Quit() error {
	d.quit = true
	return nil
}

// fakeSliderWidget models the slider's value/pixel relationship: the handle
// center tracks the value along the rail, and releasing a drag snaps the
// value to the pixel the pointer landed on. The snapping is where real
// widgets diverge from the coarse computation, so the fake reproduces it.
type fakeSliderWidget struct {
	min, max int
	value    int

	trackX, trackWidth int
	handleWidth        int
}

// handleLeft returns the handle's left edge for the current value.
func (w *fakeSliderWidget) handleLeft() int {
	frac := float64(w.value-w.min) / float64(w.max-w.min)
	center := w.trackX + int(math.Round(frac*float64(w.trackWidth)))
	return center - w.handleWidth/2
}

// drop converts the release position into a snapped logical value.
func (w *fakeSliderWidget) drop(pointerX int) {
	frac := float64(pointerX-w.trackX) / float64(w.trackWidth)
	v := w.min + int(math.Round(frac*float64(w.max-w.min)))
	if v < w.min {
		v = w.min
	}
	if v > w.max {
		v = w.max
	}
	w.value = v
}

// step moves the value by one in the given direction, clamped to the range.
func (w *fakeSliderWidget) step(delta int) {
	v := w.value + delta
	if v < w.min {
		v = w.min
	}
	if v > w.max {
		v = w.max
	}
	w.value = v
}

// fakeHandle is the slider's range input: it reports geometry and
// aria-valuenow from the widget and feeds gestures back into it.
type fakeHandle struct {
	selenium.WebElement

	driver *fakeDriver
	widget *fakeSliderWidget
}

func (h *fakeHandle) Location() (*selenium.Point, error) {
	return &selenium.Point{X: h.widget.handleLeft(), Y: 0}, nil
}

func (h *fakeHandle) Size() (*selenium.Size, error) {
	return &selenium.Size{Width: h.widget.handleWidth, Height: 20}, nil
}

func (h *fakeHandle) MoveTo(xOffset, yOffset int) error {
	// Offsets are relative to the element's center, like the real protocol.
	center := h.widget.handleLeft() + h.widget.handleWidth/2
	h.driver.pointerX = center + xOffset
	return nil
}

func (h *fakeHandle) GetAttribute(name string) (string, error) {
	if name == "aria-valuenow" {
		return strconv.Itoa(h.widget.value), nil
	}
	return "", errors.New("unknown attribute: " + name)
}

func (h *fakeHandle) SendKeys(keys string) error {
	switch keys {
	case selenium.RightArrowKey:
		h.widget.step(1)
	case selenium.LeftArrowKey:
		h.widget.step(-1)
	default:
		return errors.New("unexpected key")
	}
	return nil
}

func (h *fakeHandle) IsDisplayed() (bool, error) { return true, nil }
func (h *fakeHandle) IsEnabled() (bool, error)   { return true, nil }

// fakeTrack is the slider rail: geometry only.
type fakeTrack struct {
	selenium.WebElement

	widget *fakeSliderWidget
}

func (t *fakeTrack) Location() (*selenium.Point, error) {
	return &selenium.Point{X: t.widget.trackX, Y: 0}, nil
}

func (t *fakeTrack) Size() (*selenium.Size, error) {
	return &selenium.Size{Width: t.widget.trackWidth, Height: 4}, nil
}

// fakeInput is a text input whose value responds to keystrokes the way a
// browser input does: backspace removes the last character, anything else
// appends.
type fakeInput struct {
	selenium.WebElement

	value    string
	keyCalls []string
}

func (f *fakeInput) GetAttribute(name string) (string, error) {
	if name == "value" {
		return f.value, nil
	}
	return "", errors.New("unknown attribute: " + name)
}

func (f *fakeInput) SendKeys(keys string) error {
	f.keyCalls = append(f.keyCalls, keys)
	for _, r := range keys {
		if string(r) == selenium.BackspaceKey {
			if f.value != "" {
				f.value = f.value[:len(f.value)-1]
			}
			continue
		}
		f.value += string(r)
	}
	return nil
}

func (f *fakeInput) IsDisplayed() (bool, error) { return true, nil }
func (f *fakeInput) IsEnabled() (bool, error)   { return true, nil }

// fakeClickable is a generic visible element that counts clicks.
type fakeClickable struct {
	selenium.WebElement

	clicks int
}

func (c *fakeClickable) Click() error {
	c.clicks++
	return nil
}

func (c *fakeClickable) IsDisplayed() (bool, error) { return true, nil }
func (c *fakeClickable) IsEnabled() (bool, error)   { return true, nil }

// fakeText is a generic element exposing static text.
type fakeText struct {
	selenium.WebElement

	text string
}

func (t *fakeText) Text() (string, error)        { return t.text, nil }
func (t *fakeText) IsDisplayed() (bool, error)   { return true, nil }
func (t *fakeText) IsEnabled() (bool, error)     { return true, nil }
