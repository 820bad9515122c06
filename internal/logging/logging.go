// Package logging provides the single leveled logger used across
// fshunter, replacing the teacher's undifferentiated stdlib log calls
// with logrus so the warn/debug/fatal taxonomy from spec §7 has a home.
package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Logger is the process-wide logger. Verbose mode (set via SetVerbose)
// lowers the level to Debug; the default level is Info so per-file
// debug-level discards stay quiet unless asked for.
var Logger = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	l.SetLevel(logrus.InfoLevel)
	return l
}

// SetVerbose switches the logger to debug level when verbose is true.
func SetVerbose(verbose bool) {
	if verbose {
		Logger.SetLevel(logrus.DebugLevel)
	} else {
		Logger.SetLevel(logrus.InfoLevel)
	}
}

// Warn logs a root-level or external-tool error (spec §7): never fatal.
func Warn(format string, args ...interface{}) {
	Logger.Warnf(format, args...)
}

// Debugf logs a per-file error that is silently discarded (spec §7).
func Debugf(format string, args ...interface{}) {
	Logger.Debugf(format, args...)
}

// Fatalf logs an input error and exits the process (spec §7's only
// fatal category, enforced at the invocation boundary).
func Fatalf(format string, args ...interface{}) {
	Logger.Fatalf(format, args...)
}
