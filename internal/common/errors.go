// Package common defines shared constants and sentinel errors used across
// TaskKeeper layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Task-selection errors.
	ErrorInvalidTaskNumber = errors.New("invalid task number")
	ErrorTaskCompleted     = errors.New("task is already completed")

	// Interactive-input errors. ErrCancelled is returned when the user
	// aborts a prompt (Esc during password entry).
	ErrCancelled = errors.New("cancelled")
)
