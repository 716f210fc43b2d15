package calculator

import (
	"errors"
	"testing"
	"time"

	"github.com/tebeka/selenium"

	"github.com/fitqa/revcheck/internal/browser"
	"github.com/fitqa/revcheck/internal/model"
)

// sliderFixture wires a fake slider widget into a session.
type sliderFixture struct {
	driver *fakeDriver
	widget *fakeSliderWidget
	handle *fakeHandle
	track  *fakeTrack
	slider *Slider
}

func newSliderFixture(t *testing.T, rng model.SliderRange, start int) *sliderFixture {
	t.Helper()

	driver := newFakeDriver()
	widget := &fakeSliderWidget{
		min: rng.Min, max: rng.Max, value: start,
		trackX: 100, trackWidth: 500, handleWidth: 20,
	}
	driver.widget = widget

	handle := &fakeHandle{driver: driver, widget: widget}
	track := &fakeTrack{widget: widget}

	session := browser.NewWithDriver(driver, 100*time.Millisecond, testLogger())
	return &sliderFixture{
		driver: driver,
		widget: widget,
		handle: handle,
		track:  track,
		slider: NewSlider(session, handle, track, rng, testLogger()),
	}
}

func TestSliderPosition(t *testing.T) {
	t.Parallel()

	t.Run("converges to 820 in [0,2000]", func(t *testing.T) {
		t.Parallel()
		f := newSliderFixture(t, model.SliderRange{Min: 0, Max: 2000, Target: 820}, 0)

		got, err := f.slider.Position()
		if err != nil {
			t.Fatalf("Position returned error: %v", err)
		}
		if got != 820 {
			t.Errorf("Position() = %d, want 820", got)
		}
		if f.widget.value != 820 {
			t.Errorf("widget value = %d, want 820", f.widget.value)
		}
	})

	t.Run("converges regardless of start and target", func(t *testing.T) {
		t.Parallel()

		// The track maps 4 logical units per pixel here, so the coarse
		// drag alone can be off by several units; the fine correction
		// must close the gap every time.
		targets := []int{0, 1, 413, 820, 1000, 1999, 2000}
		starts := []int{0, 500, 2000}

		for _, start := range starts {
			for _, target := range targets {
				f := newSliderFixture(t, model.SliderRange{Min: 0, Max: 2000, Target: target}, start)
				got, err := f.slider.Position()
				if err != nil {
					t.Fatalf("start %d target %d: %v", start, target, err)
				}
				if got != target {
					t.Errorf("start %d: Position() = %d, want %d", start, got, target)
				}
			}
		}
	})

	t.Run("scrolls the track into view before key correction", func(t *testing.T) {
		t.Parallel()
		f := newSliderFixture(t, model.SliderRange{Min: 0, Max: 2000, Target: 820}, 0)

		if _, err := f.slider.Position(); err != nil {
			t.Fatal(err)
		}
		if f.driver.scrolls == 0 {
			t.Error("expected a scroll-into-view call before fine correction")
		}
	})

	t.Run("rejects out-of-range target without touching the widget", func(t *testing.T) {
		t.Parallel()
		f := newSliderFixture(t, model.SliderRange{Min: 0, Max: 2000, Target: 2500}, 0)

		if _, err := f.slider.Position(); err == nil {
			t.Fatal("expected error for out-of-range target")
		}
		if f.widget.value != 0 {
			t.Errorf("widget moved to %d despite invalid target", f.widget.value)
		}
	})

	t.Run("fails when the widget ignores key events", func(t *testing.T) {
		t.Parallel()

		// A coarse track (few pixels for many units) guarantees the drag
		// lands off target, forcing the correction phase against a handle
		// that swallows keys.
		driver := newFakeDriver()
		widget := &fakeSliderWidget{
			min: 0, max: 2000, value: 0,
			trackX: 100, trackWidth: 7, handleWidth: 20,
		}
		driver.widget = widget
		handle := &stuckHandle{fakeHandle{driver: driver, widget: widget}}
		track := &fakeTrack{widget: widget}

		session := browser.NewWithDriver(driver, 100*time.Millisecond, testLogger())
		rng := model.SliderRange{Min: 0, Max: 2000, Target: 820}
		slider := NewSlider(session, handle, track, rng, testLogger())

		_, err := slider.Position()
		if !errors.Is(err, ErrSliderConvergence) {
			t.Errorf("expected ErrSliderConvergence, got %v", err)
		}
	})

	t.Run("fails when the reported value is outside the range", func(t *testing.T) {
		t.Parallel()

		f := newSliderFixture(t, model.SliderRange{Min: 0, Max: 2000, Target: 820}, 0)
		handle := &liarHandle{fakeHandle: fakeHandle{driver: f.driver, widget: f.widget}}
		session := browser.NewWithDriver(f.driver, 100*time.Millisecond, testLogger())
		slider := NewSlider(session, handle, f.track, model.SliderRange{Min: 0, Max: 2000, Target: 820}, testLogger())

		_, err := slider.Position()
		if !errors.Is(err, ErrSliderConvergence) {
			t.Errorf("expected ErrSliderConvergence for impossible reported value, got %v", err)
		}
	})

	t.Run("fails on non-integer reported value", func(t *testing.T) {
		t.Parallel()

		f := newSliderFixture(t, model.SliderRange{Min: 0, Max: 2000, Target: 820}, 0)
		handle := &garbledHandle{fakeHandle: fakeHandle{driver: f.driver, widget: f.widget}}
		session := browser.NewWithDriver(f.driver, 100*time.Millisecond, testLogger())
		slider := NewSlider(session, handle, f.track, model.SliderRange{Min: 0, Max: 2000, Target: 820}, testLogger())

		if _, err := slider.Position(); err == nil {
			t.Error("expected error for non-integer aria-valuenow")
		}
	})
}

// stuckHandle drops all key events: the widget never moves during fine
// correction.
type stuckHandle struct {
	fakeHandle
}

func (h *stuckHandle) SendKeys(keys string) error { return nil }

// liarHandle reports a value far outside the slider's range.
type liarHandle struct {
	fakeHandle
}

func (h *liarHandle) GetAttribute(name string) (string, error) {
	if name == "aria-valuenow" {
		return "99999", nil
	}
	return h.fakeHandle.GetAttribute(name)
}

// garbledHandle reports a non-numeric value.
type garbledHandle struct {
	fakeHandle
}

func (h *garbledHandle) GetAttribute(name string) (string, error) {
	if name == "aria-valuenow" {
		return "eight hundred", nil
	}
	return h.fakeHandle.GetAttribute(name)
}

// Interface conformance for the fakes that override methods via embedding.
var (
	_ selenium.WebElement = (*stuckHandle)(nil)
	_ selenium.WebElement = (*liarHandle)(nil)
)
