package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPriority_JSON(t *testing.T) {
	data, err := json.Marshal(PriorityHigh)
	require.NoError(t, err)
	require.Equal(t, `"1"`, string(data))

	var p Priority
	require.NoError(t, json.Unmarshal([]byte(`"3"`), &p))
	require.Equal(t, PriorityLow, p)
}

func TestPriority_MarshalInvalid(t *testing.T) {
	if _, err := json.Marshal(Priority(7)); err == nil {
		t.Fatal("expected error for out-of-range priority")
	}
}

func TestPriority_UnmarshalEmptyDefaultsToLow(t *testing.T) {
	var p Priority
	require.NoError(t, json.Unmarshal([]byte(`""`), &p))
	require.Equal(t, PriorityLow, p)
}

func TestPriority_UnmarshalRejectsUnknown(t *testing.T) {
	var p Priority
	if err := json.Unmarshal([]byte(`"5"`), &p); err == nil {
		t.Fatal("expected error for unknown priority")
	}
	if err := json.Unmarshal([]byte(`1`), &p); err == nil {
		t.Fatal("expected error for non-string priority")
	}
}

func TestParsePriority(t *testing.T) {
	tests := []struct {
		in      string
		want    Priority
		wantErr bool
	}{
		{"1", PriorityHigh, false},
		{"2", PriorityMedium, false},
		{"3", PriorityLow, false},
		{"0", 0, true},
		{"high", 0, true},
		{"", 0, true},
	}
	for _, tc := range tests {
		got, err := ParsePriority(tc.in)
		if tc.wantErr {
			require.Error(t, err, "input %q", tc.in)
			continue
		}
		require.NoError(t, err, "input %q", tc.in)
		require.Equal(t, tc.want, got)
	}
}

func TestTask_JSONShape(t *testing.T) {
	task := Task{
		Title:     "Pay rent",
		Priority:  PriorityHigh,
		Deadline:  "2026-09-01",
		Category:  "Home",
		Completed: false,
	}

	data, err := json.Marshal(task)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Equal(t, "1", raw["priority"])
	require.Equal(t, "Pay rent", raw["title"])
	require.Equal(t, false, raw["completed"])
	require.Contains(t, raw, "description")
}

func TestResolveUser(t *testing.T) {
	s := NewState()
	s.Users["Alice"] = UserRecord{}
	s.Users["bob"] = UserRecord{Admin: true}

	name, ok := s.ResolveUser("ALICE")
	require.True(t, ok)
	require.Equal(t, "Alice", name)

	name, ok = s.ResolveUser("Bob")
	require.True(t, ok)
	require.Equal(t, "bob", name)

	_, ok = s.ResolveUser("carol")
	require.False(t, ok)
}

func TestResolveUser_CollisionIsDeterministic(t *testing.T) {
	s := NewState()
	s.Users["Dave"] = UserRecord{}
	s.Users["dave"] = UserRecord{}

	for i := 0; i < 10; i++ {
		name, ok := s.ResolveUser("DAVE")
		require.True(t, ok)
		require.Equal(t, "Dave", name, "uppercase sorts first")
	}
}
