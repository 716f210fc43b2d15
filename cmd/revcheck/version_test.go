package main

import (
	"bytes"
	"strings"
	"testing"
)

// TestGetVersion tests version string resolution.
func TestGetVersion(t *testing.T) {
	t.Run("returns ldflags version when set", func(t *testing.T) {
		orig := version
		defer func() { version = orig }()

		version = "v1.2.3"
		if got := getVersion(); got != "v1.2.3" {
			t.Errorf("expected 'v1.2.3', got %q", got)
		}
	})

	t.Run("falls back when ldflags unset", func(t *testing.T) {
		orig := version
		defer func() { version = orig }()

		version = ""
		if got := getVersion(); got == "" {
			t.Error("expected non-empty version")
		}
	})
}

// TestGetCommit tests commit hash resolution.
func TestGetCommit(t *testing.T) {
	t.Run("returns ldflags commit when set", func(t *testing.T) {
		orig := commit
		defer func() { commit = orig }()

		commit = "abc1234"
		if got := getCommit(); got != "abc1234" {
			t.Errorf("expected 'abc1234', got %q", got)
		}
	})

	t.Run("falls back when ldflags unset", func(t *testing.T) {
		orig := commit
		defer func() { commit = orig }()

		commit = ""
		if got := getCommit(); got == "" {
			t.Error("expected non-empty commit")
		}
	})
}

// TestGetDate tests build date resolution.
func TestGetDate(t *testing.T) {
	t.Run("returns ldflags date when set", func(t *testing.T) {
		orig := date
		defer func() { date = orig }()

		date = "2025-11-03"
		if got := getDate(); got != "2025-11-03" {
			t.Errorf("expected '2025-11-03', got %q", got)
		}
	})
}

// TestVersionCmd tests the version command output.
func TestVersionCmd(t *testing.T) {
	cmd := NewVersionCmd()

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.Run(cmd, nil)

	output := buf.String()
	if !strings.Contains(output, "revcheck version") {
		t.Errorf("expected output to contain 'revcheck version', got %q", output)
	}
	if !strings.Contains(output, "commit:") {
		t.Errorf("expected output to contain commit line, got %q", output)
	}
	if !strings.Contains(output, "built:") {
		t.Errorf("expected output to contain build date line, got %q", output)
	}
}
