package log

import (
	"context"
	"log/slog"
)

// Logger is the interface every part of this module logs through. It is
// satisfied by *logger but kept abstract so embedders can plug in their
// own implementation as the default logger.
type Logger interface {
	With(ctx ...any) Logger
	New(ctx ...any) Logger

	Trace(msg string, ctx ...any)
	Debug(msg string, ctx ...any)
	Info(msg string, ctx ...any)
	Warn(msg string, ctx ...any)
	Error(msg string, ctx ...any)
	Crit(msg string, ctx ...any)

	Handler() slog.Handler
}

type logger struct {
	inner *slog.Logger
}

// NewLogger wraps an slog.Handler as a Logger.
func NewLogger(h slog.Handler) Logger {
	return &logger{inner: slog.New(h)}
}

func (l *logger) With(ctx ...any) Logger {
	return &logger{inner: l.inner.With(ctx...)}
}

func (l *logger) New(ctx ...any) Logger {
	return l.With(ctx...)
}

func (l *logger) Handler() slog.Handler {
	return l.inner.Handler()
}

func (l *logger) write(level slog.Level, msg string, ctx []any) {
	l.inner.Log(context.Background(), level, msg, ctx...)
}

func (l *logger) Trace(msg string, ctx ...any) { l.write(slog.Level(LevelTrace), msg, ctx) }
func (l *logger) Debug(msg string, ctx ...any) { l.write(slog.Level(LevelDebug), msg, ctx) }
func (l *logger) Info(msg string, ctx ...any)  { l.write(slog.Level(LevelInfo), msg, ctx) }
func (l *logger) Warn(msg string, ctx ...any)  { l.write(slog.Level(LevelWarn), msg, ctx) }
func (l *logger) Error(msg string, ctx ...any) { l.write(slog.Level(LevelError), msg, ctx) }
func (l *logger) Crit(msg string, ctx ...any)  { l.write(slog.Level(LevelCrit), msg, ctx) }
