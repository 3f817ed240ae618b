/*
Package log holds the logger shared by the altcmp packages. Until Setup is called every message is discarded,
so library code can log freely without the caller wiring anything.
*/
package log

import (
	"io"

	"github.com/sirupsen/logrus"
)

var log = newDiscard()

func newDiscard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Set replaces the package logger.
func Set(l *logrus.Logger) {
	log = l
}

// Get returns the package logger.
func Get() *logrus.Logger {
	return log
}

// Errorf takes a formatted template string and template arguments for the error logging level.
func Errorf(format string, args ...interface{}) {
	log.Errorf(format, args...)
}

// Warnf takes a formatted template string and template arguments for the warning logging level.
func Warnf(format string, args ...interface{}) {
	log.Warnf(format, args...)
}

// Infof takes a formatted template string and template arguments for the info logging level.
func Infof(format string, args ...interface{}) {
	log.Infof(format, args...)
}

// Debugf takes a formatted template string and template arguments for the debug logging level.
func Debugf(format string, args ...interface{}) {
	log.Debugf(format, args...)
}

// Tracef takes a formatted template string and template arguments for the trace logging level.
func Tracef(format string, args ...interface{}) {
	log.Tracef(format, args...)
}

// WithFields returns an entry carrying the given key-value pairs.
func WithFields(fields logrus.Fields) *logrus.Entry {
	return log.WithFields(fields)
}
