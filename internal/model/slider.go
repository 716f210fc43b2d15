package model

import "fmt"

// SliderRange describes the logical value range of the slider widget and the
// value a run should converge it to. The range is read from the widget's
// documented bounds, not scraped; the target comes from configuration.
type SliderRange struct {
	// Min is the lowest logical value the slider can report.
	Min int `json:"min"`

	// Max is the highest logical value the slider can report.
	Max int `json:"max"`

	// Target is the logical value the run drives the slider to.
	// Must satisfy Min <= Target <= Max.
	Target int `json:"target"`
}

// Validate checks the range invariant Min <= Target <= Max.
// A target outside the range is a configuration error, not a runtime
// condition to recover from.
func (r SliderRange) Validate() error {
	if r.Min >= r.Max {
		return fmt.Errorf("slider range [%d,%d] is empty", r.Min, r.Max)
	}
	if r.Target < r.Min || r.Target > r.Max {
		return fmt.Errorf("slider target %d outside range [%d,%d]", r.Target, r.Min, r.Max)
	}
	return nil
}

// Fraction returns the target's position within the range as a value in
// [0,1]. Validate must have passed before calling this.
func (r SliderRange) Fraction() float64 {
	return float64(r.Target-r.Min) / float64(r.Max-r.Min)
}

// Steps returns the maximum number of single-step key presses that can ever
// be needed to move between two values in the range. It bounds the fine
// correction loop so a widget that stops responding to key events cannot
// spin forever.
func (r SliderRange) Steps() int {
	return r.Max - r.Min
}

// Geometry is a read-only snapshot of an element's horizontal extent, taken
// at computation time. It becomes stale if the page reflows; callers take it
// immediately before using it.
type Geometry struct {
	// X is the element's left edge in page pixels.
	X int `json:"x"`

	// Width is the element's width in pixels.
	Width int `json:"width"`
}
