package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected LogLevel
	}{
		{"off", LogLevelOff},
		{"none", LogLevelOff},
		{"error", LogLevelError},
		{"ERROR", LogLevelError},
		{"info", LogLevelInfo},
		{"debug", LogLevelDebug},
		{" Debug ", LogLevelDebug},
		{"trace", LogLevelDebug},
		{"bogus", LogLevelError},
		{"", LogLevelError},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, ParseLogLevel(tt.input))
		})
	}
}

func TestLogLevel_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "off", LogLevelOff.String())
	assert.Equal(t, "error", LogLevelError.String())
	assert.Equal(t, "info", LogLevelInfo.String())
	assert.Equal(t, "debug", LogLevelDebug.String())
	assert.Equal(t, "error", LogLevel(42).String())
}

func TestLogger_FiltersByLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewWriterLogger(LogLevelInfo, &buf)
	logger.now = func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) }

	logger.Debug("hidden %d", 1)
	logger.Info("sync started")
	logger.Error("engine failed: %s", "timeout")

	assert.Equal(t,
		"2024-03-01 12:00:00.000 [INFO] sync started\n"+
			"2024-03-01 12:00:00.000 [ERROR] engine failed: timeout\n",
		buf.String())
}

func TestLogger_LevelFilters(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewWriterLogger(LogLevelError, &buf)

	logger.Debug("first")
	logger.Info("second")
	assert.Empty(t, buf.String())
	assert.Equal(t, LogLevelError, logger.Level())

	logger.Error("third")
	assert.Contains(t, buf.String(), "[ERROR] third")
}

func TestNewLogger_StderrUsesWriterLogger(t *testing.T) {
	t.Parallel()

	logger, err := NewLogger(LogLevelInfo, StderrLogFile)
	require.NoError(t, err)
	assert.Equal(t, LogLevelInfo, logger.Level())
	assert.NotNil(t, logger.out)
	assert.Nil(t, logger.closer)
	require.NoError(t, logger.Close())
}

func TestNewLogger_LevelOff(t *testing.T) {
	t.Parallel()

	logger, err := NewLogger(LogLevelOff, "")
	require.NoError(t, err)
	logger.Error("dropped")
	require.NoError(t, logger.Close())
}

func TestNewLogger_File(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "logs", "bdk.log")
	logger, err := NewLogger(LogLevelDebug, path)
	require.NoError(t, err)

	logger.Debug("derived %s", "address")
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(path) //nolint:gosec // test path
	require.NoError(t, err)
	assert.Contains(t, string(data), "[DEBUG] derived address")

	// Writes after close are dropped.
	logger.Error("late")
	require.NoError(t, logger.Close())
}

func TestNullLogger(t *testing.T) {
	t.Parallel()

	logger := NullLogger()
	logger.Error("ignored")
	logger.Info("ignored")
	assert.Equal(t, LogLevelOff, logger.Level())
}
