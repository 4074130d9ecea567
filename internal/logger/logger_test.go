package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLogUsableBeforeInit(t *testing.T) {
	require.NotNil(t, Log)
	// Must not panic when nothing initialized the singleton.
	Log.Debugf("pre-init message: %d", 42)
	Log.Warn("pre-init warn")
}

func TestInitLoggerIdempotent(t *testing.T) {
	first, err := InitLogger()
	require.NoError(t, err)
	second, err := InitLogger()
	require.NoError(t, err)
	assert.Same(t, first.Desugar().Core(), second.Desugar().Core())
}

func TestGetZapLevelFromEnv(t *testing.T) {
	tests := []struct {
		value string
		want  zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"", zapcore.WarnLevel},
		{"verbose", zapcore.WarnLevel},
	}
	for _, tc := range tests {
		t.Setenv("LOG_LEVEL", tc.value)
		assert.Equal(t, tc.want, GetZapLevelFromEnv())
	}
}
