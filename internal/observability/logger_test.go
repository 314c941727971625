package observability

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		level   string
		enabled zapcore.Level
		blocked zapcore.Level
	}{
		{"debug", zapcore.DebugLevel, zapcore.DebugLevel - 1},
		{"info", zapcore.InfoLevel, zapcore.DebugLevel},
		{"", zapcore.WarnLevel, zapcore.InfoLevel},
		{"ERROR", zapcore.ErrorLevel, zapcore.WarnLevel},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger, err := NewLogger(io.Discard, tt.level)
			require.NoError(t, err)
			assert.True(t, logger.Core().Enabled(tt.enabled))
			assert.False(t, logger.Core().Enabled(tt.blocked))
		})
	}
}

func TestNewLogger_Off(t *testing.T) {
	logger, err := NewLogger(io.Discard, "off")
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.ErrorLevel))
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	_, err := NewLogger(io.Discard, "chatty")
	assert.ErrorContains(t, err, `invalid log level "chatty"`)
}

func TestNewLogger_WritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, "info")
	require.NoError(t, err)

	logger.Sugar().Infof("analysis complete: net=%s", "500.00")
	logger.Sugar().Debugf("hidden")
	require.NoError(t, logger.Sync())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "analysis complete: net=500.00", entry["msg"])
}

func TestNewLogger_DebugUsesConsoleEncoding(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, "debug")
	require.NoError(t, err)

	logger.Debug("capital gains computed")
	require.NoError(t, logger.Sync())

	assert.Contains(t, buf.String(), "capital gains computed")
	assert.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}
