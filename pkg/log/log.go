// Package log provides the leveled logger used across the emulator.
package log

import (
	"fmt"
	"io"
	"os"
	"sync"
)

type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

type logger struct {
	mu    sync.Mutex
	out   io.Writer
	debug bool
}

// New returns a logger writing to stdout with debug output enabled.
func New() Logger {
	return NewWriter(os.Stdout, true)
}

// NewWriter returns a logger writing to w. Debugf is dropped unless
// debug is set.
func NewWriter(w io.Writer, debug bool) Logger {
	return &logger{out: w, debug: debug}
}

func (l *logger) printf(level, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.out, "["+level+"]\t"+format+"\n", args...)
}

func (l *logger) Infof(format string, args ...interface{}) {
	l.printf("INFO", format, args...)
}

func (l *logger) Errorf(format string, args ...interface{}) {
	l.printf("ERROR", format, args...)
}

func (l *logger) Debugf(format string, args ...interface{}) {
	if !l.debug {
		return
	}
	l.printf("DEBUG", format, args...)
}
