// Package applog configures the process-wide structured logger.
package applog

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Init installs a text handler writing to w at the given level as the
// slog default and returns the root logger. Level is one of "debug",
// "info", "warn", "error" (case-insensitive; empty means info).
func Init(w io.Writer, level string) (*slog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	log := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(log)
	return log, nil
}

// ParseLevel maps a config string onto a slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", s)
	}
}

// WithComponent returns the default logger tagged with a component
// name. Call after Init.
func WithComponent(name string) *slog.Logger {
	return slog.Default().With("component", name)
}
