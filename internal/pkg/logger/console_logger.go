package logger

import (
	"log/slog"
	"os"

	"github.com/MGTheTrain/rms/internal/pkg/config"
)

// NewConsoleLogger creates a logger writing to stdout, as text or JSON.
func NewConsoleLogger(level, format string) Logger {
	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}

	var handler slog.Handler
	if format == config.LogFormatJSON {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return NewSlogLogger(handler)
}
