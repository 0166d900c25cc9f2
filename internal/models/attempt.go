package models

import "github.com/dmitrijs2005/taskkeeper/internal/timex"

// AttemptRecord tracks consecutive failed logins for one user, as persisted
// in the security log. BlockedUntil is nil unless the failure limit was
// reached; the zero value is the clean state.
type AttemptRecord struct {
	Attempts     int         `json:"attempts"`
	BlockedUntil *timex.Time `json:"blocked_until"`
}
