// Package ic3log is the structured-logging seam for the frame-advance
// driver and invariant checker, grounded on the teacher's logrus.FieldLogger
// fields (pkg/controller/registry/resolver/cache.go's
// "logger logrus.FieldLogger") rather than calling fmt.Println directly.
package ic3log

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Logger is the logging capability the engine depends on. logrus.Logger
// satisfies it directly.
type Logger = logrus.FieldLogger

// Default returns a logrus-backed Logger at InfoLevel, or DebugLevel when
// verbose is true.
func Default(verbose bool) Logger {
	l := logrus.New()
	if verbose {
		l.SetLevel(logrus.DebugLevel)
	} else {
		l.SetLevel(logrus.InfoLevel)
	}
	return l
}

// Discard returns a Logger that drops everything, used by default in
// tests so table-driven runs stay quiet.
func Discard() Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
