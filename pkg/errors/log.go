package errors

import (
	"log/slog"
)

// LogHandler is an ErrorHandler that writes reports through slog.
type LogHandler struct {
	// Logger receives the records. Nil means slog.Default().
	Logger *slog.Logger
	// Verbose attaches stack traces to each record.
	Verbose bool
}

func (h *LogHandler) logger() *slog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// HandleError logs a GridError at error level.
func (h *LogHandler) HandleError(err *GridError) {
	if err == nil {
		return
	}
	attrs := []any{
		slog.String("op", err.Op),
		slog.String("kind", err.Kind.String()),
		slog.Any("err", err.Err),
	}
	if h.Verbose && err.StackTrace != "" {
		attrs = append(attrs, slog.String("stack", err.StackTrace))
	}
	h.logger().Error("gridview error", attrs...)
}

// HandlePanic logs a PanicError at error level.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	attrs := []any{slog.Any("value", err.Value)}
	if err.Op != "" {
		attrs = append(attrs, slog.String("op", err.Op))
	}
	if h.Verbose && err.StackTrace != "" {
		attrs = append(attrs, slog.String("stack", err.StackTrace))
	}
	h.logger().Error("gridview panic", attrs...)
}
