package clui

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// The Enabled method returns false so the caller skips message formatting
// entirely, making disabled logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called while another goroutine logs.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for clui and its sub-packages.
// By default, clui produces no log output. Pass nil to restore the silent
// default.
//
// Messages emitted:
//   - Debug "clui: layer created" / "clui: layer removed" with the layer
//     handle and its viewport or window count
//   - Debug "clui: layer compiled" with draw, vertex and index counts
//   - Warn "clui: window parent cycle, using viewport origin" naming the
//     window and parent handles; the frame still renders
//   - Debug "pipeline: descriptor built", "render: set rasterized" and
//     "scenefile: scene applied" from the sub-packages
//
// Example:
//
//	clui.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by clui.
// Sub-packages (render/, pipeline/, scenefile/) call this to share the
// same logger configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
