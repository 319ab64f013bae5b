package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

type ZerologAdapter struct {
	logger zerolog.Logger
}

func NewZerolog(writer io.Writer, level zerolog.Level) *ZerologAdapter {
	logger := zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Logger()

	return &ZerologAdapter{logger: logger}
}

func NewConsoleLogger(level zerolog.Level) *ZerologAdapter {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stderr}
	return NewZerolog(consoleWriter, level)
}

// New builds the adapter for the requested format, writing to stderr
func New(format Format, level zerolog.Level) *ZerologAdapter {
	if format == FormatJSON {
		return NewZerolog(os.Stderr, level)
	}
	return NewConsoleLogger(level)
}

func (z *ZerologAdapter) Info(component, message string, fields map[string]interface{}) {
	z.emit(z.logger.Info(), component, fields).Msg(message)
}

func (z *ZerologAdapter) Error(component string, err error, fields map[string]interface{}) {
	z.emit(z.logger.Error().Err(err), component, fields).Msg("operation failed")
}

func (z *ZerologAdapter) Warning(component, message string, fields map[string]interface{}) {
	z.emit(z.logger.Warn(), component, fields).Msg(message)
}

func (z *ZerologAdapter) Debug(component, message string, fields map[string]interface{}) {
	z.emit(z.logger.Debug(), component, fields).Msg(message)
}

func (z *ZerologAdapter) emit(event *zerolog.Event, component string, fields map[string]interface{}) *zerolog.Event {
	event = event.Str("component", component)
	for k, v := range fields {
		if err, ok := v.(error); ok {
			event = event.AnErr(k, err)
			continue
		}
		event = event.Interface(k, v)
	}
	return event
}
