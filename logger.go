package prefsxml

import (
	"io"
	"log/slog"
	"os"
)

// LogLevel is a logging threshold; the values are slog levels.
type LogLevel int

const (
	LogLevelDebug LogLevel = LogLevel(slog.LevelDebug)
	LogLevelInfo  LogLevel = LogLevel(slog.LevelInfo)
	LogLevelWarn  LogLevel = LogLevel(slog.LevelWarn)
	LogLevelError LogLevel = LogLevel(slog.LevelError)
)

// Logger receives the editor's diagnostic records. Args alternate keys and values.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	SetLevel(level LogLevel)
}

type defaultSlogLogger struct {
	slogger  *slog.Logger
	levelVar *slog.LevelVar
}

// NewDefaultLogger logs to stderr at warn level, which hides the editor's debug
// records about loading and recovery.
func NewDefaultLogger() Logger {
	return NewLogger(os.Stderr, LogLevelWarn)
}

// NewLogger writes logfmt-style records to w, dropping anything below level.
func NewLogger(w io.Writer, level LogLevel) Logger {
	levelVar := new(slog.LevelVar)
	levelVar.Set(slog.Level(level))

	return &defaultSlogLogger{
		slogger:  slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: levelVar})),
		levelVar: levelVar,
	}
}

func (l *defaultSlogLogger) Debug(msg string, args ...any) { l.slogger.Debug(msg, args...) }
func (l *defaultSlogLogger) Info(msg string, args ...any)  { l.slogger.Info(msg, args...) }
func (l *defaultSlogLogger) Warn(msg string, args ...any)  { l.slogger.Warn(msg, args...) }
func (l *defaultSlogLogger) Error(msg string, args ...any) { l.slogger.Error(msg, args...) }

// SetLevel moves the threshold; records already written are unaffected.
func (l *defaultSlogLogger) SetLevel(level LogLevel) {
	if l.levelVar != nil {
		l.levelVar.Set(slog.Level(level))
	}
}
