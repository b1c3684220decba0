package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLoggerDefaults(t *testing.T) {
	l, err := NewLogger(LogConfig{})
	require.NoError(t, err)
	require.NotNil(t, l)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("WARN"))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel(""))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("bogus"))
}

func TestFieldsReachZap(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewLoggerFromCore(core)

	l.Info("scored entity",
		String("entity_id", "E-1"),
		Float64("total_score", 87.5),
		Int("event_count", 4),
		Bool("is_pep", true),
	)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "scored entity", entries[0].Message)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "E-1", ctx["entity_id"])
	assert.Equal(t, 87.5, ctx["total_score"])
	assert.Equal(t, true, ctx["is_pep"])
}

func TestWithAndNamed(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewLoggerFromCore(core).Named("screening").With(String("request_id", "r1"))

	l.Warn("cache miss")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "screening", entries[0].LoggerName)
	assert.Equal(t, "r1", entries[0].ContextMap()["request_id"])
}

func TestErrField(t *testing.T) {
	assert.Equal(t, "<nil>", Err(nil).Value)
	assert.Equal(t, "error", Err(nil).Key)
}

func TestDefaultLogger(t *testing.T) {
	orig := Default()
	defer SetDefault(orig)

	nop := NewNopLogger()
	SetDefault(nop)
	assert.Equal(t, nop, Default())

	// A nil argument must not clobber the current default.
	SetDefault(nil)
	assert.Equal(t, nop, Default())
}
