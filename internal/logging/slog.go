package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// SlogLogger adapts a *slog.Logger to the Logger interface.
type SlogLogger struct {
	l *slog.Logger
}

func NewSlogLogger(l *slog.Logger) *SlogLogger {
	return &SlogLogger{l: l}
}

// Nop returns a logger that discards every record. Tests use it, and
// NewFileLogger falls back to it when the sink cannot be opened.
func Nop() Logger {
	return NewSlogLogger(slog.New(slog.NewJSONHandler(io.Discard, nil)))
}

// NewFileLogger appends JSON records at or above level to the file at
// path, creating parent directories as needed. The interactive screens
// own stdout, so a sink that cannot be opened degrades to Nop instead
// of scribbling over the UI.
func NewFileLogger(path string, level slog.Level) Logger {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return Nop()
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return Nop()
	}
	return NewSlogLogger(slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level})))
}

func (s *SlogLogger) Debug(ctx context.Context, msg string, args ...any) {
	s.l.DebugContext(ctx, msg, args...)
}

func (s *SlogLogger) Info(ctx context.Context, msg string, args ...any) {
	s.l.InfoContext(ctx, msg, args...)
}

func (s *SlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	s.l.WarnContext(ctx, msg, args...)
}

func (s *SlogLogger) Error(ctx context.Context, msg string, args ...any) {
	s.l.ErrorContext(ctx, msg, args...)
}

func (s *SlogLogger) With(args ...any) Logger {
	return &SlogLogger{l: s.l.With(args...)}
}
