// Package logger sets up the logrus loggers used across sitekeys.
package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// DebugEnabled reports whether SITEKEYS_DEBUG or DEBUG is "true".
func DebugEnabled() bool {
	return os.Getenv("SITEKEYS_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}

// NewLogger returns a text logger on stderr, at debug level when DebugEnabled.
func NewLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	if DebugEnabled() {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

// New returns an entry tagged with component.
func New(component string) *logrus.Entry {
	return NewLogger().WithField("component", component)
}

// Discard returns a logger that drops everything, for tests and quiet runs.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
