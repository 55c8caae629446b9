/*
Package log routes the diagnostic output of weaklist to a pluggable backend.

The default backend discards everything. Applications wire their own logger
with SetBackend.
*/
package log

import (
	"fmt"
	"sync"
)

// Backend is a set of leveled logging functions.
// Nil fields fall back to the default (discarding) implementation.
type Backend struct {
	Trace     func(string, ...any)
	Debug     func(string, ...any)
	Info      func(string, ...any)
	Warn      func(string, ...any)
	Errorf    func(string, ...any) error
	Criticalf func(string, ...any) error
}

var (
	mu      sync.RWMutex
	backend = defaultBackend()
)

func defaultBackend() Backend {
	return Backend{
		Trace:     discard,
		Debug:     discard,
		Info:      discard,
		Warn:      discard,
		Errorf:    fmt.Errorf,
		Criticalf: fmt.Errorf,
	}
}

func discard(string, ...any) {}

// SetBackend replaces the current backend.
func SetBackend(b Backend) {
	def := defaultBackend()
	if b.Trace == nil {
		b.Trace = def.Trace
	}
	if b.Debug == nil {
		b.Debug = def.Debug
	}
	if b.Info == nil {
		b.Info = def.Info
	}
	if b.Warn == nil {
		b.Warn = def.Warn
	}
	if b.Errorf == nil {
		b.Errorf = def.Errorf
	}
	if b.Criticalf == nil {
		b.Criticalf = def.Criticalf
	}

	mu.Lock()
	defer mu.Unlock()

	backend = b
}

// Reset restores the default backend.
func Reset() {
	SetBackend(Backend{})
}

func current() Backend {
	mu.RLock()
	defer mu.RUnlock()

	return backend
}

// Trace logs at the trace level.
func Trace(format string, args ...any) {
	current().Trace(format, args...)
}

// Debug logs at the debug level.
func Debug(format string, args ...any) {
	current().Debug(format, args...)
}

// Info logs at the info level.
func Info(format string, args ...any) {
	current().Info(format, args...)
}

// Warn logs at the warning level.
func Warn(format string, args ...any) {
	current().Warn(format, args...)
}

// Errorf logs at the error level and returns the formatted message as an error.
// The %w verb is supported.
func Errorf(format string, args ...any) error {
	return current().Errorf(format, args...)
}

// Criticalf logs at the critical level and returns the formatted message as an error.
func Criticalf(format string, args ...any) error {
	return current().Criticalf(format, args...)
}
