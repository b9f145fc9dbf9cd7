package periphery

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with periphery-specific fields.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithDevice adds the device path to the logger.
func (l *Logger) WithDevice(path string) *Logger {
	return &Logger{
		Logger: l.Logger.With("device", path),
	}
}

// WithRegion adds the requested physical window to the logger.
func (l *Logger) WithRegion(base, size uintptr) *Logger {
	return &Logger{
		Logger: l.Logger.With(
			slog.Group("region",
				slog.String("base", hex(base)),
				slog.String("size", hex(size)),
			),
		),
	}
}

// LogOpen logs the acquisition of a device or mapping.
func (l *Logger) LogOpen(what string, err error) {
	if err != nil {
		l.Error(what+" open failed",
			"error", err,
		)
	} else {
		l.Debug(what + " opened")
	}
}

// LogClose logs a successful release of a device or mapping.
func (l *Logger) LogClose(what string) {
	l.Debug(what + " closed")
}

// LogTeardownFailure logs a release failure that is swallowed by Close.
// Resources may leak when this fires.
func (l *Logger) LogTeardownFailure(what string, err error) {
	l.Warn(what+" teardown failed",
		"error", err,
	)
}

// LogTimeout logs a deadline that expired before the target was filled.
func (l *Logger) LogTimeout(requested, received int) {
	l.Debug("read deadline expired",
		"requested", requested,
		"received", received,
	)
}

func hex(v uintptr) string {
	return fmt.Sprintf("%#x", v)
}
