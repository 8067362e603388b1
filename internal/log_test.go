package internal

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"ERROR", LogLevelError},
		{"warn", LogLevelWarn},
		{" Debug ", LogLevelDebug},
		{"TRACE", LogLevelTrace},
		{"", LogLevelInfo},
		{"verbose", LogLevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLogLevel(tt.in), "input %q", tt.in)
	}
}

func TestLogger_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerTo(LogLevelWarn, &buf)

	logger.Info("hidden %d", 1)
	logger.Debug("hidden too")
	logger.Warn("shown %s", "warning")
	logger.Error("shown error")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "[WARN] shown warning")
	assert.Contains(t, out, "[ERROR] shown error")
	assert.Equal(t, LogLevelWarn, logger.GetLevel())
}

func TestLogger_NilIsSilent(t *testing.T) {
	var logger *Logger
	assert.NotPanics(t, func() { logger.Error("nothing") })
}
