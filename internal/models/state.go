package models

import (
	"sort"
	"strings"
)

// State is the in-memory view of the user database and the security log.
// It is loaded once at startup and passed to the flows that read and mutate
// it; nothing in the program keeps package-level mutable state.
type State struct {
	Users    map[string]UserRecord
	Attempts map[string]AttemptRecord
}

// NewState returns an empty State with both maps allocated.
func NewState() *State {
	return &State{
		Users:    make(map[string]UserRecord),
		Attempts: make(map[string]AttemptRecord),
	}
}

// ResolveUser finds the stored username matching name case-insensitively and
// returns the canonical spelling. When several stored spellings collide, the
// lexicographically smallest one wins so resolution is deterministic.
func (s *State) ResolveUser(name string) (string, bool) {
	keys := make([]string, 0, len(s.Users))
	for k := range s.Users {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if strings.EqualFold(k, name) {
			return k, true
		}
	}
	return "", false
}
