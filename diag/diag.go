// SPDX-License-Identifier: MIT

// Package diag holds the process-wide debug logger used by lina.
//
// Library packages never log on their hot paths. They only emit Debug
// records from optional assertion sites (e.g. normalizing a zero-length
// vector) and from configuration loading. The default logger is a no-op,
// so those sites cost a single level check until a program installs a
// real logger with SetLogger.
package diag

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level names accepted by New.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

var current atomic.Pointer[zap.Logger]

func init() {
	current.Store(zap.NewNop())
}

// Logger returns the installed logger (never nil).
func Logger() *zap.Logger {
	return current.Load()
}

// SetLogger installs l as the package logger. A nil l restores the no-op logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	current.Store(l)
}

// New builds a JSON logger writing to stderr at the given level.
// An unknown level name returns ErrUnknownLevel.
func New(level string) (*zap.Logger, error) {
	return NewWriter(level, os.Stderr)
}

// NewWriter is New with an explicit destination. Writes to w are
// serialized, so w need not be safe for concurrent use.
func NewWriter(level string, w io.Writer) (*zap.Logger, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, err
	}
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.Lock(zapcore.AddSync(w)),
		lvl,
	)
	core = zapcore.NewSamplerWithOptions(core, time.Second, 100, 100)

	return zap.New(core, zap.ErrorOutput(zapcore.Lock(zapcore.AddSync(w)))), nil
}

func parseLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case LevelDebug:
		return zap.DebugLevel, nil
	case LevelInfo, "":
		return zap.InfoLevel, nil
	case LevelWarn:
		return zap.WarnLevel, nil
	case LevelError:
		return zap.ErrorLevel, nil
	default:
		return zap.InfoLevel, fmt.Errorf("diag: %q: %w", level, ErrUnknownLevel)
	}
}
