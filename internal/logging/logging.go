// Package logging builds the process-wide structured logger.
package logging

import (
	"io"
	"log/slog"
)

// New returns a text slog.Logger writing to w at level. The source location is added at debug level.
func New(w io.Writer, level slog.Level) *slog.Logger {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: level <= slog.LevelDebug,
	})
	return slog.New(h)
}

// Install makes logger the slog default and returns it.
func Install(logger *slog.Logger) *slog.Logger {
	slog.SetDefault(logger)
	return logger
}
