package logging

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ErrUnknownLevel is returned by ParseLevel for names it does not recognise.
var ErrUnknownLevel = errors.New("unknown log level")

// levels maps LOG_LEVEL names, including the Python logging names the
// deployment tooling emits, onto zap levels.
var levels = map[string]zapcore.Level{
	"DEBUG":    zapcore.DebugLevel,
	"INFO":     zapcore.InfoLevel,
	"WARN":     zapcore.WarnLevel,
	"WARNING":  zapcore.WarnLevel,
	"ERROR":    zapcore.ErrorLevel,
	"CRITICAL": zapcore.FatalLevel,
	"FATAL":    zapcore.FatalLevel,
}

// ParseLevel resolves a level name case-insensitively.
func ParseLevel(name string) (zapcore.Level, error) {
	level, ok := levels[strings.ToUpper(strings.TrimSpace(name))]
	if !ok {
		return zapcore.InfoLevel, fmt.Errorf("%w: %q", ErrUnknownLevel, name)
	}
	return level, nil
}

// LevelNames returns the accepted level names in sorted order.
func LevelNames() []string {
	names := make([]string, 0, len(levels))
	for name := range levels {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New creates a structured logger. Production output is JSON; debug mode
// switches to the human readable console encoder.
func New(level string, debug bool) (*zap.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	cfg := zap.NewProductionConfig()
	cfg.Encoding = "json"
	if debug {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.StacktraceKey = "stacktrace"
	cfg.DisableStacktrace = false

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}
