// Package logger provides the small logging surface used by the codec and
// its commands.
package logger

import (
	"io"
	"log"
)

// Logger receives progress and diagnostic messages.
type Logger interface {
	Infof(format string, v ...interface{})
	Debugf(format string, v ...interface{})
}

type stdLogger struct {
	l     *log.Logger
	debug bool
}

// New returns a Logger that writes to w through the standard library's log
// package.  Debug messages are dropped unless debug is true.
func New(w io.Writer, debug bool) Logger {
	return &stdLogger{l: log.New(w, "", log.LstdFlags), debug: debug}
}

func (s *stdLogger) Infof(format string, v ...interface{}) { s.l.Printf("[INFO] "+format, v...) }

func (s *stdLogger) Debugf(format string, v ...interface{}) {
	if s.debug {
		s.l.Printf("[DEBUG] "+format, v...)
	}
}

type nopLogger struct{}

// Nop returns a Logger that discards everything.
func Nop() Logger { return nopLogger{} }

func (nopLogger) Infof(string, ...interface{})  {}
func (nopLogger) Debugf(string, ...interface{}) {}
