// Package logger configures the shared structured logger for the extractor.
//
// Log output goes to stderr so it never interferes with shell pipelines that
// consume the tool's stdout. The level is controlled by the LOG_LEVEL
// environment variable (debug, warn, error); the default is info.
package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

var Logger *logrus.Logger

func init() {
	Logger = logrus.New()
	Logger.SetOutput(os.Stderr)

	switch os.Getenv("LOG_LEVEL") {
	case "debug":
		Logger.SetLevel(logrus.DebugLevel)
	case "warn":
		Logger.SetLevel(logrus.WarnLevel)
	case "error":
		Logger.SetLevel(logrus.ErrorLevel)
	default:
		Logger.SetLevel(logrus.InfoLevel)
	}

	Logger.SetFormatter(&logrus.TextFormatter{
		TimestampFormat: "15:04:05",
		FullTimestamp:   true,
	})
}

// WithFields creates a new entry with the given fields.
func WithFields(fields logrus.Fields) *logrus.Entry {
	return Logger.WithFields(fields)
}

// WithError creates a new entry with an error field.
func WithError(err error) *logrus.Entry {
	return Logger.WithError(err)
}

// Debug logs a debug message.
func Debug(msg string) {
	Logger.Debug(msg)
}

// Info logs an info message.
func Info(msg string) {
	Logger.Info(msg)
}

// Warn logs a warning message.
func Warn(msg string) {
	Logger.Warn(msg)
}
