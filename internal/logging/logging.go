// Package logging builds the zerolog loggers used across sortviz.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ComponentField names the subsystem that emitted a log line.
const ComponentField = "component"

// New returns a logger writing to w at the given level ("debug", "info", ...).
// An empty level means info.
func New(w io.Writer, level string) (zerolog.Logger, error) {
	lvl := zerolog.InfoLevel
	if level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(level))
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("logging: %w", err)
		}
		lvl = parsed
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}

// Console returns a human readable logger for stderr.
func Console(level string) (zerolog.Logger, error) {
	return New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}, level)
}

// Open returns a JSON logger appending to path. An empty path gives a logger
// that discards everything, which is what the full-screen UI wants.
func Open(path, level string) (zerolog.Logger, io.Closer, error) {
	if path == "" {
		return zerolog.Nop(), io.NopCloser(nil), nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return zerolog.Nop(), nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return zerolog.Nop(), nil, err
	}
	l, err := New(f, level)
	if err != nil {
		f.Close()
		return zerolog.Nop(), nil, err
	}
	return l, f, nil
}

// Component tags a logger with a subsystem name.
func Component(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str(ComponentField, name).Logger()
}
