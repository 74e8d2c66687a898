package logger

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

const (
	LogLevelInfo  = "info"
	LogLevelDebug = "debug"
	LogLevelTrace = "trace"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// Logger defines a abstract logger that can be used to log to the output
type Logger interface {
	// Set the logger level
	SetLevel(level string)

	// Info logs to info level
	Info(message string, keyvals ...interface{})
	// Debug logs to debug level
	Debug(message string, keyvals ...interface{})
	// Error logs to error level
	Error(message string, keyvals ...interface{})
	// Warn logs to warn level
	Warn(message string, keyvals ...interface{})
	// Trace logs to trace level
	Trace(message string, keyvals ...interface{})

	IsTrace() bool
}

type CharmLogger struct {
	internal *log.Logger
	level    string
}

// NewLogger creates a Logger writing to w at the given level, unknown
// levels fall back to info
func NewLogger(w io.Writer, level string) Logger {
	cl := &CharmLogger{log.New(w), LogLevelInfo}
	cl.SetLevel(level)

	return cl
}

func (l *CharmLogger) IsTrace() bool {
	return l.level == LogLevelTrace
}

func (l *CharmLogger) SetLevel(level string) {
	level = strings.ToLower(strings.TrimSpace(level))

	switch level {
	case LogLevelInfo, LogLevelDebug, LogLevelWarn, LogLevelError:
		lvl, _ := log.ParseLevel(level)
		l.internal.SetLevel(lvl)
	case LogLevelTrace:
		// charm has no trace level, trace messages are written at debug
		l.internal.SetLevel(log.DebugLevel)
	default:
		level = LogLevelInfo
		l.internal.SetLevel(log.InfoLevel)
	}

	l.level = level
}

func (l *CharmLogger) Info(message string, keyvals ...interface{}) {
	l.internal.Info(message, keyvals...)
}

func (l *CharmLogger) Debug(message string, keyvals ...interface{}) {
	l.internal.Debug(message, keyvals...)
}

func (l *CharmLogger) Error(message string, keyvals ...interface{}) {
	l.internal.Error(message, keyvals...)
}

func (l *CharmLogger) Warn(message string, keyvals ...interface{}) {
	l.internal.Warn(message, keyvals...)
}

func (l *CharmLogger) Trace(message string, keyvals ...interface{}) {
	if l.level != LogLevelTrace {
		return
	}

	l.internal.Debug(message, keyvals...)
}

type testWriter struct {
	t *testing.T
}

func (w *testWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(strings.TrimRight(string(p), "\n"))

	return len(p), nil
}

// NewTestLogger returns a Logger at trace level that writes to the test log
func NewTestLogger(t *testing.T) Logger {
	return NewLogger(&testWriter{t}, LogLevelTrace)
}
