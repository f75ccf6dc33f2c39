//go:build unit
// +build unit

package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/MGTheTrain/rms/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlogLogger_LogsToOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	output := buf.String()
	assert.NotContains(t, output, "debug message")
	assert.Contains(t, output, "info message")
	assert.Contains(t, output, "warn message")
	assert.Contains(t, output, "error message")
}

func TestSlogLogger_With(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogLogger(slog.NewJSONHandler(&buf, nil))

	logger.With("trace_id", "abcd1234", "domain", "employee").Info("START")

	output := buf.String()
	assert.Contains(t, output, `"trace_id":"abcd1234"`)
	assert.Contains(t, output, `"domain":"employee"`)
	assert.Contains(t, output, `"msg":"START"`)
}

func TestSlogLogger_Panic(t *testing.T) {
	logger := NewSlogLogger(slog.NewTextHandler(&bytes.Buffer{}, nil))
	assert.PanicsWithValue(t, "boom", func() {
		logger.Panic("boom")
	})
}

func TestNewConsoleLogger(t *testing.T) {
	for _, format := range []string{config.LogFormatText, config.LogFormatJSON, ""} {
		logger := NewConsoleLogger(config.LogLevelInfo, format)
		require.NotNil(t, logger)

		require.NotPanics(t, func() {
			logger.Info("test")
			logger.Warn("test")
			logger.Error("test")
		})
	}
}

func TestContext(t *testing.T) {
	fallback := Discard()
	scoped := Discard().With("trace_id", "x")

	assert.Same(t, fallback, FromContext(context.Background(), fallback))

	ctx := NewContext(context.Background(), scoped)
	assert.Same(t, scoped, FromContext(ctx, fallback))
}
