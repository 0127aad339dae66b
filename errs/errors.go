// Package errs gives components in this module (currently the client
// engine) a uniform error shape: a package tag, a numeric code, a
// severity level, and a formatted detail message.
package errs

import (
	"fmt"

	"github.com/chainlab/go-chainlab/log"
)

// Level is the severity an Errors registry assigns to one of its codes.
type Level int

const (
	LevelWarn Level = iota
	LevelError
)

func (l Level) String() string {
	if l == LevelError {
		return "ERROR"
	}
	return "WARN"
}

// Errors is a registry of known error codes for one package: a human
// name for the code and the severity it should be logged/treated at.
type Errors struct {
	Package string
	Errors  map[int]string
	Level   func(code int) Level
}

// Error is a single occurrence of one of the registry's codes, carrying
// a caller-supplied formatted detail.
type Error struct {
	Pkg    string
	Code   int
	Name   string
	Level  Level
	Detail string
}

// New builds an Error for code, formatting detail with args the way
// fmt.Sprintf does.
func (e *Errors) New(code int, format string, args ...any) *Error {
	name, ok := e.Errors[code]
	if !ok {
		name = "unknown error"
	}
	level := LevelError
	if e.Level != nil {
		level = e.Level(code)
	}
	return &Error{
		Pkg:    e.Package,
		Code:   code,
		Name:   name,
		Level:  level,
		Detail: fmt.Sprintf(format, args...),
	}
}

func (e *Error) Error() string {
	return e.String()
}

func (e *Error) String() string {
	return fmt.Sprintf("[%s] %s: %s: %s", e.Pkg, e.Level, e.Name, e.Detail)
}

// Fatal reports whether this error's severity should abort the calling
// operation rather than merely being logged and ignored.
func (e *Error) Fatal() bool {
	return e.Level == LevelError
}

// Log writes the error to l at the severity-appropriate level.
func (e *Error) Log(l log.Logger) {
	if l == nil {
		l = log.Root()
	}
	ctx := []any{"pkg", e.Pkg, "code", e.Code, "name", e.Name}
	if e.Fatal() {
		l.Error(e.Detail, ctx...)
	} else {
		l.Warn(e.Detail, ctx...)
	}
}
