package logger

import (
	"testing"

	"github.com/arloliu/teamdraw/types"
	"github.com/stretchr/testify/require"
)

func TestNopLogger(t *testing.T) {
	var logger types.Logger = NewNop()

	// Fatal must not exit.
	require.NotPanics(t, func() {
		logger.Debug("test message", "key", "value")
		logger.Info("", nil)
		logger.Warn("message")
		logger.Error("message", "single")
		logger.Fatal("message", "k1", "v1", "k2", "v2")
	})
}

func TestTestLogger(t *testing.T) {
	var logger types.Logger = NewTest(t)

	require.NotPanics(t, func() {
		logger.Debug("debug", "k", 1)
		logger.Info("info")
		logger.Warn("warn", "dangling")
		logger.Error("error", "err", "boom")
	})
}

func TestFormatKeyValues(t *testing.T) {
	require.Equal(t, "", formatKeyValues(nil))
	require.Equal(t, " a=1 b=two", formatKeyValues([]any{"a", 1, "b", "two"}))
	require.Equal(t, " a=1 b=<missing>", formatKeyValues([]any{"a", 1, "b"}))
}

func BenchmarkNopLogger(b *testing.B) {
	logger := NewNop()

	for b.Loop() {
		logger.Debug("benchmark message", "key1", "value1", "key2", 42)
	}
}
