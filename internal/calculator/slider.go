package calculator

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"

	"github.com/tebeka/selenium"

	"github.com/fitqa/revcheck/internal/browser"
	"github.com/fitqa/revcheck/internal/model"
)

// Slider positions the calculator's slider widget to an exact logical value.
//
// Positioning is two-phase. The coarse phase converts the target value into
// a pixel offset from the handle's current position and performs a
// press-drag-release gesture. The fine phase reads the widget's reported
// value (aria-valuenow) and closes any remaining gap with single-step arrow
// keys, which move the value by exactly one regardless of geometry.
type Slider struct {
	session *browser.Session
	handle  selenium.WebElement
	track   selenium.WebElement
	rng     model.SliderRange
	logger  *slog.Logger
}

// NewSlider builds a Slider over already-resolved handle and track elements.
func NewSlider(session *browser.Session, handle, track selenium.WebElement, rng model.SliderRange, logger *slog.Logger) *Slider {
	if logger == nil {
		logger = slog.Default()
	}
	return &Slider{
		session: session,
		handle:  handle,
		track:   track,
		rng:     rng,
		logger:  logger,
	}
}

// Position drives the widget to the range's target value and returns the
// value the widget reports afterwards. The range must already be valid;
// an out-of-range target is rejected before the browser is touched.
func (s *Slider) Position() (int, error) {
	if err := s.rng.Validate(); err != nil {
		return 0, err
	}

	if err := s.drag(); err != nil {
		return 0, fmt.Errorf("coarse drag: %w", err)
	}

	// The original page keeps the slider near the fold; center it before
	// sending key events so they land on a visible widget.
	if err := s.session.ScrollIntoView(s.track); err != nil {
		return 0, err
	}

	return s.correct()
}

// drag performs the press-drag-release gesture moving the handle to the
// pixel position of the target value.
func (s *Slider) drag() error {
	track, handle, err := s.geometry()
	if err != nil {
		return err
	}

	// Desired left edge of the handle, then the horizontal distance from
	// where the handle currently is. Ceil so a fractional gap always moves
	// at least one pixel.
	targetX := float64(track.X) + float64(track.Width)*s.rng.Fraction() - float64(handle.Width)/2
	offset := int(math.Ceil(targetX - float64(handle.X)))

	s.logger.Debug("slider coarse drag",
		"trackX", track.X,
		"trackWidth", track.Width,
		"handleX", handle.X,
		"offset", offset,
	)

	// Press on the handle's center, move by the offset, release.
	if err := s.handle.MoveTo(0, 0); err != nil {
		return err
	}
	if err := s.session.Driver().ButtonDown(); err != nil {
		return err
	}
	if err := s.handle.MoveTo(offset, 0); err != nil {
		return err
	}
	return s.session.Driver().ButtonUp()
}

// geometry snapshots the track's and handle's horizontal extents. The
// snapshot is taken immediately before the drag; a page reflow between the
// read and the gesture would desynchronize them.
func (s *Slider) geometry() (track, handle model.Geometry, err error) {
	trackLoc, err := s.track.Location()
	if err != nil {
		return track, handle, fmt.Errorf("track location: %w", err)
	}
	trackSize, err := s.track.Size()
	if err != nil {
		return track, handle, fmt.Errorf("track size: %w", err)
	}
	handleLoc, err := s.handle.Location()
	if err != nil {
		return track, handle, fmt.Errorf("handle location: %w", err)
	}
	handleSize, err := s.handle.Size()
	if err != nil {
		return track, handle, fmt.Errorf("handle size: %w", err)
	}

	track = model.Geometry{X: trackLoc.X, Width: trackSize.Width}
	handle = model.Geometry{X: handleLoc.X, Width: handleSize.Width}
	return track, handle, nil
}

// correct closes the gap between the widget's reported value and the target
// with single-step key events, then verifies convergence. The number of
// steps is bounded by the range width: a gap larger than that means the
// widget's reported value cannot be trusted and stepping would never
// terminate usefully.
func (s *Slider) correct() (int, error) {
	current, err := s.value()
	if err != nil {
		return 0, err
	}

	delta := s.rng.Target - current
	if delta == 0 {
		s.logger.Debug("slider converged on drag alone", "value", current)
		return current, nil
	}

	steps := delta
	key := selenium.RightArrowKey
	if steps < 0 {
		steps = -steps
		key = selenium.LeftArrowKey
	}
	if steps > s.rng.Steps() {
		return 0, fmt.Errorf("%w: widget reports %d, outside range [%d,%d]",
			ErrSliderConvergence, current, s.rng.Min, s.rng.Max)
	}

	s.logger.Debug("slider fine correction", "from", current, "to", s.rng.Target, "steps", steps)
	for i := 0; i < steps; i++ {
		if err := s.handle.SendKeys(key); err != nil {
			return 0, fmt.Errorf("sending correction key: %w", err)
		}
	}

	final, err := s.value()
	if err != nil {
		return 0, err
	}
	if final != s.rng.Target {
		return final, fmt.Errorf("%w: want %d, widget reports %d after %d steps",
			ErrSliderConvergence, s.rng.Target, final, steps)
	}
	return final, nil
}

// value reads the widget's reported logical value from aria-valuenow.
func (s *Slider) value() (int, error) {
	raw, err := s.handle.GetAttribute("aria-valuenow")
	if err != nil {
		return 0, fmt.Errorf("reading slider value: %w", err)
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("slider reports non-integer value %q: %w", raw, err)
	}
	return v, nil
}
