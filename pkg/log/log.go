// Package log provides the logging facade used throughout the emulator.
// The default implementation is backed by logrus.
package log

import (
	"github.com/sirupsen/logrus"
)

// Logger is the set of logging methods the emulator depends on.
// *logrus.Logger satisfies it directly.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// Level is the severity threshold of a Logger created by New.
type Level = logrus.Level

const (
	DebugLevel = logrus.DebugLevel
	InfoLevel  = logrus.InfoLevel
	WarnLevel  = logrus.WarnLevel
	ErrorLevel = logrus.ErrorLevel
)

// New returns a Logger that writes plain, uncoloured
// text to stderr at the given level.
func New(level Level) Logger {
	l := logrus.New()
	l.SetLevel(level)
	l.Formatter = &logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
		DisableSorting:   true,
		DisableQuote:     true,
	}
	return l
}

// ParseLevel converts a level name such as "debug" or "warn" into a Level.
func ParseLevel(name string) (Level, error) {
	return logrus.ParseLevel(name)
}
