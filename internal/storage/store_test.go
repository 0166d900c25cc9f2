package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/taskkeeper/internal/models"
	"github.com/dmitrijs2005/taskkeeper/internal/timex"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(t.TempDir())
}

func TestLoadUsers_MissingFile(t *testing.T) {
	s := newTestStore(t)
	users := s.LoadUsers()
	if users == nil || len(users) != 0 {
		t.Fatalf("expected empty map, got %#v", users)
	}
}

func TestLoadUsers_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "users.json"), []byte("{not json"), 0o644))

	s := New(dir)
	users := s.LoadUsers()
	require.Empty(t, users)
}

func TestUsers_RoundTrip(t *testing.T) {
	s := newTestStore(t)

	in := map[string]models.UserRecord{
		"Alice": {Admin: true},
		"bob":   {},
	}
	require.NoError(t, s.SaveUsers(in))

	out := s.LoadUsers()
	require.Equal(t, in, out)
}

func TestUsers_LegacyPasswordFieldSurvivesRewrite(t *testing.T) {
	dir := t.TempDir()
	body := `{"old": {"admin": false, "password": "deadbeef"}}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "users.json"), []byte(body), 0o644))

	s := New(dir)
	users := s.LoadUsers()
	require.Equal(t, "deadbeef", users["old"].Password)

	users["fresh"] = models.UserRecord{}
	require.NoError(t, s.SaveUsers(users))

	again := New(dir).LoadUsers()
	require.Equal(t, "deadbeef", again["old"].Password)
	require.Empty(t, again["fresh"].Password)
}

func TestAttempts_RoundTrip(t *testing.T) {
	s := newTestStore(t)

	until := timex.New(time.Date(2026, 8, 22, 12, 0, 0, 0, time.UTC))
	in := map[string]models.AttemptRecord{
		"carol": {Attempts: 4},
		"dave":  {Attempts: 5, BlockedUntil: &until},
	}
	require.NoError(t, s.SaveAttempts(in))

	out := s.LoadAttempts()
	require.Equal(t, 4, out["carol"].Attempts)
	require.Nil(t, out["carol"].BlockedUntil)
	require.Equal(t, 5, out["dave"].Attempts)
	require.NotNil(t, out["dave"].BlockedUntil)
	require.True(t, out["dave"].BlockedUntil.Equal(until.Time))
}

func TestAttempts_ZonelessTimestampLoads(t *testing.T) {
	dir := t.TempDir()
	body := `{"eve": {"attempts": 5, "blocked_until": "2026-08-22T12:30:00.123456"}}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "security.log"), []byte(body), 0o644))

	out := New(dir).LoadAttempts()
	require.NotNil(t, out["eve"].BlockedUntil)
	want := time.Date(2026, 8, 22, 12, 30, 0, 123456000, time.Local)
	require.True(t, out["eve"].BlockedUntil.Equal(want))
}

func TestAttempts_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "security.log"), []byte("]["), 0o644))

	out := New(dir).LoadAttempts()
	require.Empty(t, out)
}

func TestTasks_RoundTrip(t *testing.T) {
	s := newTestStore(t)

	in := []models.Task{
		{Title: "a", Priority: models.PriorityHigh, Deadline: "2026-01-01", Category: "Work"},
		{Title: "b", Priority: models.PriorityLow, Deadline: "2026-02-01", Category: "Home", Completed: true},
	}
	require.NoError(t, s.SaveTasks("alice", in))

	out := s.LoadTasks("alice")
	require.Equal(t, in, out)
}

func TestTasks_MissingAndCorrupt(t *testing.T) {
	s := newTestStore(t)
	require.Empty(t, s.LoadTasks("nobody"))

	dir := t.TempDir()
	tasksDir := filepath.Join(dir, "tasks")
	require.NoError(t, os.MkdirAll(tasksDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(tasksDir, "x_tasks.json"), []byte("oops"), 0o644))
	require.Empty(t, New(dir).LoadTasks("x"))
}

func TestTasks_BadPriorityRejectsWholeFile(t *testing.T) {
	dir := t.TempDir()
	tasksDir := filepath.Join(dir, "tasks")
	require.NoError(t, os.MkdirAll(tasksDir, 0o755))
	body := `[{"title": "t", "priority": "9", "deadline": "2026-01-01", "category": "c", "completed": false}]`
	require.NoError(t, os.WriteFile(filepath.Join(tasksDir, "x_tasks.json"), []byte(body), 0o644))

	require.Empty(t, New(dir).LoadTasks("x"))
}

func TestSaveTasks_NilBecomesEmptyList(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	require.NoError(t, s.SaveTasks("alice", nil))

	data, err := os.ReadFile(filepath.Join(dir, "tasks", "alice_tasks.json"))
	require.NoError(t, err)
	require.Equal(t, "[]", string(data[:2]))
}
