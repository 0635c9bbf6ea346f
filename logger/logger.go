package logger

import (
	"io"

	"github.com/rs/zerolog"
)

// Logger wraps a zerolog logger that writes human-readable status lines.
type Logger struct {
	logger *zerolog.Logger
}

// NewConsole returns a console logger writing to w. Debug events are dropped
// unless isDebug is set.
func NewConsole(w io.Writer, isDebug bool, noColor bool) *Logger {
	level := zerolog.InfoLevel
	if isDebug {
		level = zerolog.DebugLevel
	}
	output := zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05", NoColor: noColor}
	logger := zerolog.New(output).Level(level).With().Timestamp().Logger()
	return &Logger{logger: &logger}
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	logger := zerolog.Nop()
	return &Logger{logger: &logger}
}

// Debug starts a new message with debug level.
// You must call Msg on the returned event in order to send the event.
func (l *Logger) Debug() *zerolog.Event { return l.logger.Debug() }

// Info starts a new message with info level.
// You must call Msg on the returned event in order to send the event.
func (l *Logger) Info() *zerolog.Event { return l.logger.Info() }

// Error starts a new message with error level.
func (l *Logger) Error() *zerolog.Event { return l.logger.Error() }

// With creates a child logger with the field added to its context.
func (l *Logger) With() zerolog.Context { return l.logger.With() }

// Extend adds some additional context to the existing logger.
func (l *Logger) Extend(ctx zerolog.Context) *Logger {
	logger := ctx.Logger()
	return &Logger{logger: &logger}
}
