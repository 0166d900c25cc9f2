// Package models defines the record shapes persisted in the data directory
// and the in-memory state the interactive flows operate on.
package models

// UserRecord is the per-user entry stored in users.json. Only the admin flag
// is meaningful today; the password field exists in files written by early
// releases that kept hashes inline and is carried through rewrites untouched.
type UserRecord struct {
	Admin    bool   `json:"admin"`
	Password string `json:"password,omitempty"`
}
