// Package storage persists users, credentials, login attempts and tasks as
// flat files under a single data directory:
//
//	users.json             user accounts and admin flags
//	users.env              password hashes, one key=value per line
//	security.log           failed-login counters (JSON body)
//	tasks/<user>_tasks.json one task list per user
//
// Loads are total: a missing or unreadable file yields the empty value so a
// fresh or damaged data directory behaves like an empty one. Saves go through
// a temp file and rename, and their errors always propagate.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/taskkeeper/internal/models"
)

const (
	usersFile    = "users.json"
	attemptsFile = "security.log"
	envFile      = "users.env"
	tasksDir     = "tasks"
)

// Store reads and writes the flat files under one data directory.
type Store struct {
	dir string
}

// New returns a Store rooted at dir. The directory is created lazily on the
// first save.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// LoadUsers reads users.json. Missing or corrupt files yield an empty map.
func (s *Store) LoadUsers() map[string]models.UserRecord {
	var users map[string]models.UserRecord
	if err := loadJSON(filepath.Join(s.dir, usersFile), &users); err != nil || users == nil {
		return make(map[string]models.UserRecord)
	}
	return users
}

// SaveUsers writes users.json.
func (s *Store) SaveUsers(users map[string]models.UserRecord) error {
	return s.saveJSON(filepath.Join(s.dir, usersFile), users)
}

// LoadAttempts reads the security log. Missing or corrupt files yield an
// empty map.
func (s *Store) LoadAttempts() map[string]models.AttemptRecord {
	var attempts map[string]models.AttemptRecord
	if err := loadJSON(filepath.Join(s.dir, attemptsFile), &attempts); err != nil || attempts == nil {
		return make(map[string]models.AttemptRecord)
	}
	return attempts
}

// SaveAttempts writes the security log.
func (s *Store) SaveAttempts(attempts map[string]models.AttemptRecord) error {
	return s.saveJSON(filepath.Join(s.dir, attemptsFile), attempts)
}

// LoadTasks reads the task list for username. Missing or corrupt files yield
// an empty list.
func (s *Store) LoadTasks(username string) []models.Task {
	var tasks []models.Task
	if err := loadJSON(s.tasksPath(username), &tasks); err != nil {
		return nil
	}
	return tasks
}

// SaveTasks writes the task list for username.
func (s *Store) SaveTasks(username string, tasks []models.Task) error {
	if tasks == nil {
		tasks = []models.Task{}
	}
	return s.saveJSON(s.tasksPath(username), tasks)
}

func (s *Store) tasksPath(username string) string {
	return filepath.Join(s.dir, tasksDir, username+"_tasks.json")
}

func loadJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

func (s *Store) saveJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("error encoding %s: %w", filepath.Base(path), err)
	}
	return writeFileAtomic(path, append(data, '\n'))
}

// writeFileAtomic writes data to a temp file in the target directory and
// renames it into place, so a crash mid-write never leaves a truncated file.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("error creating data directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("error creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("error writing %s: %w", filepath.Base(path), err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("error writing %s: %w", filepath.Base(path), err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("error replacing %s: %w", filepath.Base(path), err)
	}
	return nil
}
