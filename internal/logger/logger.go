package logger

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// Logger is the structured logging surface shared by every component.
// The component argument names the subsystem emitting the entry.
type Logger interface {
	Debug(component, message string, fields map[string]interface{})
	Info(component, message string, fields map[string]interface{})
	Warning(component, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
}

// Format selects the output encoding of the zerolog adapter
type Format string

const (
	FormatConsole Format = "console"
	FormatJSON    Format = "json"
)

// ParseLevel maps a textual level (trace, debug, info, warn, error) to zerolog
func ParseLevel(level string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel, nil
	case "debug":
		return zerolog.DebugLevel, nil
	case "", "info":
		return zerolog.InfoLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	}
	return zerolog.InfoLevel, fmt.Errorf("unknown log level %q", level)
}

// ParseFormat validates a textual output format
func ParseFormat(format string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(format))) {
	case "", FormatConsole:
		return FormatConsole, nil
	case FormatJSON:
		return FormatJSON, nil
	}
	return FormatConsole, fmt.Errorf("unknown log format %q", format)
}

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{})   {}
func (nopLogger) Info(string, string, map[string]interface{})    {}
func (nopLogger) Warning(string, string, map[string]interface{}) {}
func (nopLogger) Error(string, error, map[string]interface{})    {}

// Nop returns a Logger that discards everything
func Nop() Logger {
	return nopLogger{}
}
