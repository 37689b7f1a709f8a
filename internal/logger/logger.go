// Package logger provides the diagnostics logger and crash recovery for todo.
package logger

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/josephgoksu/todo/types"
)

// Prefix is shown in front of every diagnostics line.
const Prefix = "todo"

// New builds a leveled logger for diagnostics. User-facing messages are
// printed by the commands themselves; this logger only carries details
// that help when something looks off (dropped lines, resolved paths).
func New(w io.Writer, cfg types.LogConfig, verbose bool) *log.Logger {
	level := ParseLevel(cfg.Level)
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       ParseFormatter(cfg.Format),
		ReportTimestamp: false,
		Prefix:          Prefix,
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

// ParseLevel parses a string log level to a charmbracelet/log Level.
func ParseLevel(level string) log.Level {
	switch level {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.WarnLevel
	}
}

// ParseFormatter parses a string formatter name to a charmbracelet/log Formatter.
func ParseFormatter(format string) log.Formatter {
	switch format {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}
