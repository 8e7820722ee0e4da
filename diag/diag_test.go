package diag_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/katalvlaran/lina/diag"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// TestLoggerDefaultIsNop verifies that the package logger is usable before any SetLogger call.
func TestLoggerDefaultIsNop(t *testing.T) {
	l := diag.Logger()
	require.NotNil(t, l)
	require.False(t, l.Core().Enabled(zapcore.DebugLevel)) // no-op core is disabled at every level
}

// TestSetLogger checks install and nil-reset semantics.
func TestSetLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	diag.SetLogger(zap.New(core))
	t.Cleanup(func() { diag.SetLogger(nil) })

	diag.Logger().Debug("hello")
	require.Equal(t, 1, logs.Len())
	require.Equal(t, "hello", logs.All()[0].Message)

	diag.SetLogger(nil)
	require.False(t, diag.Logger().Core().Enabled(zapcore.ErrorLevel))
}

// TestNew covers known and unknown level names.
func TestNew(t *testing.T) {
	for _, lvl := range []string{"debug", "info", "WARN", " error ", ""} {
		l, err := diag.New(lvl)
		require.NoError(t, err, lvl)
		require.NotNil(t, l)
	}

	_, err := diag.New("verbose")
	require.ErrorIs(t, err, diag.ErrUnknownLevel)
}

// TestNewWriter checks level filtering and the JSON record shape.
func TestNewWriter(t *testing.T) {
	var buf bytes.Buffer
	l, err := diag.NewWriter(diag.LevelWarn, &buf)
	require.NoError(t, err)

	l.Info("dropped")
	l.Warn("kept", zap.Int("n", 3))
	require.NoError(t, l.Sync())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	require.Equal(t, "warn", rec["level"])
	require.Equal(t, "kept", rec["msg"])
	require.EqualValues(t, 3, rec["n"])

	_, err = diag.NewWriter("loud", &buf)
	require.ErrorIs(t, err, diag.ErrUnknownLevel)
}
