package calculator

import (
	"errors"
	"strings"
	"testing"

	"github.com/tebeka/selenium"
)

func TestValueFieldSetExact(t *testing.T) {
	t.Parallel()

	t.Run("replaces existing content", func(t *testing.T) {
		t.Parallel()
		input := &fakeInput{value: "100"}
		field := NewValueField(input)

		if err := field.SetExact("560"); err != nil {
			t.Fatalf("SetExact returned error: %v", err)
		}
		if input.value != "560" {
			t.Errorf("field value = %q, want %q", input.value, "560")
		}
	})

	t.Run("deletes one character per keystroke", func(t *testing.T) {
		t.Parallel()
		input := &fakeInput{value: "1234"}
		field := NewValueField(input)

		if err := field.SetExact("560"); err != nil {
			t.Fatal(err)
		}

		// Four backspaces, then the replacement in one send.
		if len(input.keyCalls) != 5 {
			t.Fatalf("expected 5 SendKeys calls, got %d: %v", len(input.keyCalls), input.keyCalls)
		}
		for i := 0; i < 4; i++ {
			if input.keyCalls[i] != selenium.BackspaceKey {
				t.Errorf("call %d: expected backspace, got %q", i, input.keyCalls[i])
			}
		}
		if input.keyCalls[4] != "560" {
			t.Errorf("final call = %q, want %q", input.keyCalls[4], "560")
		}
	})

	t.Run("empty field types without deleting", func(t *testing.T) {
		t.Parallel()
		input := &fakeInput{}
		field := NewValueField(input)

		if err := field.SetExact("560"); err != nil {
			t.Fatal(err)
		}
		if len(input.keyCalls) != 1 {
			t.Errorf("expected 1 SendKeys call, got %d", len(input.keyCalls))
		}
		if input.value != "560" {
			t.Errorf("field value = %q, want %q", input.value, "560")
		}
	})
}

func TestValueFieldAssertValue(t *testing.T) {
	t.Parallel()

	t.Run("set then assert round-trips", func(t *testing.T) {
		t.Parallel()
		input := &fakeInput{value: "20"}
		field := NewValueField(input)

		if err := field.SetExact("560"); err != nil {
			t.Fatal(err)
		}
		if err := field.AssertValue("560"); err != nil {
			t.Errorf("AssertValue after SetExact failed: %v", err)
		}
	})

	t.Run("comparison is exact string equality", func(t *testing.T) {
		t.Parallel()

		// Numerically equal renderings must not satisfy the assertion.
		for _, reading := range []string{"560.0", "0560", " 560"} {
			field := NewValueField(&fakeInput{value: reading})
			err := field.AssertValue("560")
			if !errors.Is(err, ErrValueMismatch) {
				t.Errorf("field reading %q: expected ErrValueMismatch, got %v", reading, err)
			}
		}
	})

	t.Run("mismatch reports both values", func(t *testing.T) {
		t.Parallel()
		field := NewValueField(&fakeInput{value: "999"})

		err := field.AssertValue("560")
		if err == nil {
			t.Fatal("expected error")
		}
		msg := err.Error()
		if !strings.Contains(msg, "560") || !strings.Contains(msg, "999") {
			t.Errorf("failure must name both values, got: %s", msg)
		}
	})
}
