package ruler

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip attribute formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called while a host thread is rendering.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for ruler and its sub-packages.
// By default, ruler produces no log output.
//
// Pass nil to restore the default silent behavior.
//
// Log levels used by ruler:
//   - [slog.LevelDebug]: a calibration that keeps failing frame after frame,
//     config files loaded or absent, recordings exported by the record package
//   - [slog.LevelInfo]: calibration restored after a failure, preference
//     files reloaded by config.Watch
//   - [slog.LevelWarn]: the first frame without usable display density
//     (no display attached, or a zero, negative or non-finite dpi), and
//     config reloads that fail to decode
//
// Example:
//
//	ruler.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by ruler.
// Sub-packages (config, integration/rulercanvas) share it through this call.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
