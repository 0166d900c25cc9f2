package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
)

// adminSecretKey is the users.env entry holding the digest the admin
// creation gate checks against.
const adminSecretKey = "ADMIN_PASSWORD"

// UserPasswordHash returns the stored password entry for username. The
// lookup key is the lowercased username; common.ErrorNotFound is returned
// when no entry exists.
func (s *Store) UserPasswordHash(username string) (string, error) {
	env := s.loadEnv()
	hash, ok := env[userPasswordKey(username)]
	if !ok {
		return "", common.ErrorNotFound
	}
	return hash, nil
}

// SetUserPasswordHash inserts or replaces the password entry for username,
// preserving every other key in the file.
func (s *Store) SetUserPasswordHash(username, hash string) error {
	env := s.loadEnv()
	env[userPasswordKey(username)] = hash
	return s.saveEnv(env)
}

// AdminSecretHash returns the admin gate digest, or common.ErrorNotFound
// when none is configured.
func (s *Store) AdminSecretHash() (string, error) {
	env := s.loadEnv()
	hash, ok := env[adminSecretKey]
	if !ok {
		return "", common.ErrorNotFound
	}
	return hash, nil
}

func userPasswordKey(username string) string {
	return strings.ToLower(username) + "_password"
}

// loadEnv parses users.env. Blank lines and #-comments are skipped, values
// keep everything after the first '='. A missing or unreadable file yields
// an empty map.
func (s *Store) loadEnv() map[string]string {
	env := make(map[string]string)

	data, err := os.ReadFile(filepath.Join(s.dir, envFile))
	if err != nil {
		return env
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" || strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		env[key] = value
	}
	return env
}

// saveEnv rewrites users.env: header comments first, then the admin entry
// when present, then the user entries in sorted order.
func (s *Store) saveEnv(env map[string]string) error {
	var b strings.Builder
	b.WriteString("# User passwords (SHA256 hashes)\n")
	b.WriteString("# Format: username_password=hash_value\n\n")

	if admin, ok := env[adminSecretKey]; ok {
		b.WriteString("# Admin password for creating admin users\n")
		fmt.Fprintf(&b, "%s=%s\n\n", adminSecretKey, admin)
	}

	b.WriteString("# User passwords\n")
	keys := make([]string, 0, len(env))
	for k := range env {
		if k != adminSecretKey {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, "%s=%s\n", k, env[k])
	}

	return writeFileAtomic(filepath.Join(s.dir, envFile), []byte(b.String()))
}
