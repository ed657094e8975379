// Package logger sets up structured logging on top of the pterm logger.
package logger

import (
	"io"
	"log/slog"
	"strings"

	"github.com/pterm/pterm"
)

// ParseLevel maps a configured level name (case-insensitive) to a pterm log
// level. It reports false for unknown names.
func ParseLevel(level string) (pterm.LogLevel, bool) {
	switch strings.ToLower(level) {
	case "debug":
		return pterm.LogLevelDebug, true
	case "info":
		return pterm.LogLevelInfo, true
	case "warn":
		return pterm.LogLevelWarn, true
	case "error":
		return pterm.LogLevelError, true
	default:
		return pterm.LogLevelInfo, false
	}
}

// Setup creates a slog logger backed by the pterm logger writing to w and sets
// it as the default logger. An unknown level falls back to info with a warning.
func Setup(level string, w io.Writer) *slog.Logger {
	lvl, ok := ParseLevel(level)
	plogger := pterm.DefaultLogger.WithLevel(lvl).WithWriter(w)

	logger := slog.New(pterm.NewSlogHandler(plogger))
	slog.SetDefault(logger)

	if !ok {
		logger.Warn("invalid log level configured, using default level",
			"configured_level", level,
			"default_level", "info")
	}
	return logger
}
