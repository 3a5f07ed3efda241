package gridview

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards every record and reports itself disabled so callers
// skip formatting.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger configures the logger used by gridview. By default the package
// produces no log output. Pass nil to restore the silent default.
//
// Levels used:
//   - [slog.LevelDebug]: metrics recomputation and dispatched cell clicks
//   - [slog.LevelWarn]: rejected configuration changes
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the current gridview logger. It is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
