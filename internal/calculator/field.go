package calculator

import (
	"fmt"

	"github.com/tebeka/selenium"
)

// ValueField wraps a text input with exact-string set and assert semantics.
type ValueField struct {
	elem selenium.WebElement
}

// NewValueField wraps an already-resolved input element.
func NewValueField(elem selenium.WebElement) *ValueField {
	return &ValueField{elem: elem}
}

// SetExact replaces the field's content with value. Existing characters are
// deleted one backspace per character rather than a bulk clear; MUI inputs
// re-derive their state per keystroke, and a bulk clear can leave the
// widget's internal value out of sync with the visible text.
func (f *ValueField) SetExact(value string) error {
	current, err := f.Value()
	if err != nil {
		return err
	}

	for range current {
		if err := f.elem.SendKeys(selenium.BackspaceKey); err != nil {
			return fmt.Errorf("clearing field: %w", err)
		}
	}

	if err := f.elem.SendKeys(value); err != nil {
		return fmt.Errorf("typing %q: %w", value, err)
	}
	return nil
}

// AssertValue fails unless the field's current text equals expected exactly.
// No numeric coercion: leading zeros and formatting differences count.
func (f *ValueField) AssertValue(expected string) error {
	got, err := f.Value()
	if err != nil {
		return err
	}
	if got != expected {
		return fmt.Errorf("%w: want %q, got %q", ErrValueMismatch, expected, got)
	}
	return nil
}

// Value returns the field's current text.
func (f *ValueField) Value() (string, error) {
	v, err := f.elem.GetAttribute("value")
	if err != nil {
		return "", fmt.Errorf("reading field value: %w", err)
	}
	return v, nil
}
