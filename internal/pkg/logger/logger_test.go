package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	// Logger functions must not panic before or after initialization
	ctx := context.Background()
	Initialize()

	Info("Test info message", "component", "test")
	InfoContext(ctx, "Test info message", "key", "value", "number", 42)
	Warn("Test warning message", "component", "test")
	Error("Test error message", "error", "sample error")
	Debug("Test debug message", "debug", true)
	DebugContext(ctx, "Test debug message", "debug", true)
}

func TestLoggerInitialization(t *testing.T) {
	l := Get()
	require.NotNil(t, l)
	assert.Same(t, l, Get(), "expected same logger instance on multiple calls")
	assert.NotNil(t, With("service", "test"))
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{" Warning ", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLevel(tt.input))
		})
	}
}

func TestSetDefault(t *testing.T) {
	prev := Get()
	t.Cleanup(func() { SetDefault(prev) })

	var buf bytes.Buffer
	SetDefault(New(&buf, slog.LevelWarn))

	Info("dropped")
	Warn("kept", "number", "6505551212")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "6505551212", entry["number"])
}
