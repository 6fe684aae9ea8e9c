package log

import (
	"context"
	"io"
	"log/slog"
)

// DefaultMaxValueLen bounds logged string attribute values.
// Crawler and renderer logs carry page text, extracted titles, and long
// URLs; unbounded values make logs unreadable and expensive to ship.
const DefaultMaxValueLen = 512

// TruncationMarker is appended to values that were cut.
const TruncationMarker = "...(truncated)"

// TruncatingHandler wraps an slog.Handler to bound string attribute
// values. It intercepts log records and truncates oversized values
// before passing them to the underlying handler.
//
// Design decision: We use a handler wrapper rather than truncating at
// call sites because:
//  1. It integrates seamlessly with standard slog APIs
//  2. It works with any underlying handler (text, JSON, etc.)
//  3. Call sites stay free of formatting concerns
type TruncatingHandler struct {
	// handler is the underlying slog handler that receives bounded records.
	handler slog.Handler

	// maxValueLen is the longest string attribute value passed through.
	maxValueLen int
}

// TruncatingHandlerOption configures a TruncatingHandler.
type TruncatingHandlerOption func(*TruncatingHandler)

// WithMaxValueLen sets the string value bound.
func WithMaxValueLen(n int) TruncatingHandlerOption {
	return func(h *TruncatingHandler) {
		if n > 0 {
			h.maxValueLen = n
		}
	}
}

// NewTruncatingHandler creates a new TruncatingHandler wrapping the given
// handler. If handler is nil, the returned TruncatingHandler will use
// slog.Default().Handler().
func NewTruncatingHandler(handler slog.Handler, opts ...TruncatingHandlerOption) *TruncatingHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	h := &TruncatingHandler{
		handler:     handler,
		maxValueLen: DefaultMaxValueLen,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Enabled reports whether the handler handles records at the given level.
// It delegates to the underlying handler.
func (h *TruncatingHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle bounds the record's attributes and passes it to the underlying
// handler.
func (h *TruncatingHandler) Handle(ctx context.Context, r slog.Record) error {
	bounded := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)

	r.Attrs(func(a slog.Attr) bool {
		bounded.AddAttrs(h.truncateAttr(a))
		return true
	})

	return h.handler.Handle(ctx, bounded)
}

// WithAttrs returns a new handler with the given attributes added.
// Attributes are bounded before being added.
func (h *TruncatingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	boundedAttrs := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		boundedAttrs[i] = h.truncateAttr(a)
	}
	return &TruncatingHandler{handler: h.handler.WithAttrs(boundedAttrs), maxValueLen: h.maxValueLen}
}

// WithGroup returns a new handler with the given group name.
func (h *TruncatingHandler) WithGroup(name string) slog.Handler {
	return &TruncatingHandler{handler: h.handler.WithGroup(name), maxValueLen: h.maxValueLen}
}

// truncateAttr bounds a single attribute, recursively handling groups.
func (h *TruncatingHandler) truncateAttr(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		boundedAttrs := make([]slog.Attr, len(attrs))
		for i, groupAttr := range attrs {
			boundedAttrs[i] = h.truncateAttr(groupAttr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(boundedAttrs...)}
	}

	if a.Value.Kind() == slog.KindString {
		strVal := a.Value.String()
		if len(strVal) > h.maxValueLen {
			return slog.String(a.Key, strVal[:h.maxValueLen]+TruncationMarker)
		}
	}

	return a
}

// NewLogger creates a new slog.Logger with value truncation that outputs
// human-readable text.
//
// Parameters:
//   - w: The io.Writer to write log output to
//   - verbose: If true, sets log level to Debug; otherwise Warn
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	textHandler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(NewTruncatingHandler(textHandler))
}

// NewJSONLogger creates a new slog.Logger with value truncation that
// outputs JSON format. Useful for structured log aggregation.
//
// Parameters:
//   - w: The io.Writer to write log output to
//   - verbose: If true, sets log level to Debug; otherwise Warn
func NewJSONLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	jsonHandler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(NewTruncatingHandler(jsonHandler))
}
