// Package logger provides the process wide logger used by every layer.
package logger

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// EnvLogLevel is the environment variable read by ConfigureFromEnv.
const EnvLogLevel = "DEVFILE_LOG_LEVEL"

// Logger is a wrapper around charmbracelet/log.Logger
type Logger struct {
	*log.Logger
}

var (
	instance *Logger
	once     sync.Once
)

// GetLogger returns the singleton logger instance
func GetLogger() *Logger {
	once.Do(func() {
		instance = &Logger{
			Logger: log.NewWithOptions(os.Stderr, log.Options{
				Level:           log.InfoLevel,
				ReportTimestamp: true,
				TimeFormat:      "15:04:05",
			}),
		}
	})
	return instance
}

// ParseLevel converts a level name to a log.Level. Unknown names map to info.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	case "fatal":
		return log.FatalLevel
	default:
		return log.InfoLevel
	}
}

// SetLogLevel sets the log level from a string
func (l *Logger) SetLogLevel(level string) {
	l.SetLevel(ParseLevel(level))
	l.Debug("Log level set", "level", level)
}

// ConfigureFromEnv applies DEVFILE_LOG_LEVEL when it is set.
func (l *Logger) ConfigureFromEnv() {
	if level := os.Getenv(EnvLogLevel); level != "" {
		l.SetLogLevel(level)
	}
}

// SetOutput redirects log output, mostly for tests.
func SetOutput(w io.Writer) {
	GetLogger().SetOutput(w)
}

// Debug logs a debug message
func Debug(msg string, keyvals ...interface{}) {
	GetLogger().Debug(msg, keyvals...)
}

// Info logs an info message
func Info(msg string, keyvals ...interface{}) {
	GetLogger().Info(msg, keyvals...)
}

// Warn logs a warning message
func Warn(msg string, keyvals ...interface{}) {
	GetLogger().Warn(msg, keyvals...)
}

// Error logs an error message
func Error(msg string, keyvals ...interface{}) {
	GetLogger().Error(msg, keyvals...)
}

// Fatal logs a fatal message and exits
func Fatal(msg string, keyvals ...interface{}) {
	GetLogger().Fatal(msg, keyvals...)
}
