// Package logging keeps structured logging behind a small interface so the
// services never depend on a concrete backend. The CLI points it at a JSON
// file under the data directory; tests swap in Nop.
package logging

import "context"

// Logger is a context-aware, structured logger.
//
// Args are alternating key–value pairs, e.g.:
//
//	log.Info(ctx, "login successful", "user", name)
type Logger interface {
	// Debug logs a verbose diagnostic message.
	Debug(ctx context.Context, msg string, args ...any)

	// Info records normal application events.
	Info(ctx context.Context, msg string, args ...any)

	// Warn records unusual but non-fatal conditions.
	Warn(ctx context.Context, msg string, args ...any)

	// Error records failures.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger whose records always carry the given pairs.
	With(args ...any) Logger
}
