// Package logging provides the structured logger used by the factoring
// algorithms. It wraps log/slog with per-module child loggers.
package logging

import (
	"context"
	"log/slog"
)

// Logger wraps slog.Logger.
type Logger struct {
	inner *slog.Logger
}

// FromSlog adopts an existing slog.Logger; nil yields a discarding logger.
func FromSlog(l *slog.Logger) *Logger {
	if l == nil {
		return Discard()
	}
	return &Logger{inner: l}
}

// Discard returns a Logger that drops every record.
func Discard() *Logger {
	return &Logger{inner: slog.New(discardHandler{})}
}

// Module returns a child logger with an additional "module" attribute.
func (l *Logger) Module(name string) *Logger {
	return &Logger{inner: l.inner.With("module", name)}
}

// With returns a child logger with additional key-value context.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{inner: l.inner.With(args...)}
}

// Enabled reports whether debug records are kept, so callers can skip
// formatting polynomials nobody will read.
func (l *Logger) Enabled() bool {
	return l.inner.Enabled(context.Background(), slog.LevelDebug)
}

func (l *Logger) Debug(msg string, args ...any) { l.inner.Debug(msg, args...) }
func (l *Logger) Warn(msg string, args ...any)  { l.inner.Warn(msg, args...) }

type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }
