package logger

import (
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

// NewFileLogger creates a JSON file logger with size based rotation.
func NewFileLogger(level string, filePath string, maxSize int, maxBackups int, maxAge int) Logger {
	writer := &lumberjack.Logger{
		Filename:   filePath,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
		Compress:   true,
	}

	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}

	return NewSlogLogger(slog.NewJSONHandler(writer, opts))
}
