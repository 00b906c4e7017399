// Package wlog wraps zerolog into the small logging surface this
// module's library and CLI code use: New/SetLevel/Debug/Info/...
// rooted in a per-component sub-logger instead of a single global.
package wlog

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger is the logging surface used throughout this module.
type Logger struct {
	zl zerolog.Logger
}

var base = zerolog.New(defaultWriter()).With().Timestamp().Logger()

func defaultWriter() io.Writer {
	return zerolog.ConsoleWriter{Out: os.Stderr, NoColor: false}
}

// New returns the default logger.
func New() Logger { return Logger{zl: base} }

// Component returns a sub-logger tagged with name, e.g. "conn" or
// "wlgen".
func (l Logger) Component(name string) Logger {
	return Logger{zl: l.zl.With().Str("component", name).Logger()}
}

// SetLevel adjusts the global minimum log level.
func SetLevel(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}

func (l Logger) Debug(msg string, fields map[string]any) { l.event(l.zl.Debug(), msg, fields) }
func (l Logger) Info(msg string, fields map[string]any)  { l.event(l.zl.Info(), msg, fields) }
func (l Logger) Warn(msg string, fields map[string]any)  { l.event(l.zl.Warn(), msg, fields) }
func (l Logger) Error(err error, msg string, fields map[string]any) {
	l.event(l.zl.Error().Err(err), msg, fields)
}

func (l Logger) event(ev *zerolog.Event, msg string, fields map[string]any) {
	for k, v := range fields {
		ev = ev.Interface(k, v)
	}
	ev.Msg(msg)
}
