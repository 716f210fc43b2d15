package log

import (
	"context"
	"io"
	"log/slog"
)

// MaxAttrLen is the longest string attribute TrimHandler lets through
// unmodified. 256 characters covers every legitimate locator and scraped
// value this tool logs; anything longer is page fallout.
const MaxAttrLen = 256

// trimMarker is appended to truncated values so a trimmed attribute is
// recognizable in the output.
const trimMarker = "...(trimmed)"

// TrimHandler wraps an slog.Handler and bounds the length of string
// attribute values before passing records on.
//
// Design decision: We use a handler wrapper rather than trimming at each
// call site because:
//  1. It integrates seamlessly with standard slog APIs
//  2. It works with any underlying handler (text, JSON, etc.)
//  3. Call sites cannot forget it; every attribute passes through
type TrimHandler struct {
	handler slog.Handler
}

// NewTrimHandler creates a TrimHandler wrapping the given handler.
// If handler is nil, the returned TrimHandler uses slog.Default().Handler().
func NewTrimHandler(handler slog.Handler) *TrimHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	return &TrimHandler{handler: handler}
}

// NewLogger builds revcheck's standard logger: a text handler on w at
// LevelWarn (LevelDebug when verbose), wrapped in a TrimHandler.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(NewTrimHandler(handler))
}

// Enabled reports whether the handler handles records at the given level.
// It delegates to the underlying handler.
func (h *TrimHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle trims the record's attributes and passes it to the underlying
// handler.
func (h *TrimHandler) Handle(ctx context.Context, r slog.Record) error {
	trimmed := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)
	r.Attrs(func(a slog.Attr) bool {
		trimmed.AddAttrs(h.trimAttr(a))
		return true
	})
	return h.handler.Handle(ctx, trimmed)
}

// WithAttrs returns a new handler with the given attributes added,
// trimmed first.
func (h *TrimHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	trimmedAttrs := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		trimmedAttrs[i] = h.trimAttr(a)
	}
	return &TrimHandler{handler: h.handler.WithAttrs(trimmedAttrs)}
}

// WithGroup returns a new handler with the given group name.
func (h *TrimHandler) WithGroup(name string) slog.Handler {
	return &TrimHandler{handler: h.handler.WithGroup(name)}
}

// trimAttr bounds a single attribute, recursively handling groups.
func (h *TrimHandler) trimAttr(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		trimmedAttrs := make([]slog.Attr, len(attrs))
		for i, groupAttr := range attrs {
			trimmedAttrs[i] = h.trimAttr(groupAttr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(trimmedAttrs...)}
	}

	if a.Value.Kind() == slog.KindString {
		s := a.Value.String()
		if len(s) > MaxAttrLen {
			return slog.String(a.Key, s[:MaxAttrLen]+trimMarker)
		}
	}
	return a
}
