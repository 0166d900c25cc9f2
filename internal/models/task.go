package models

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Priority is the closed set of task priorities. The JSON form is the
// digit string "1", "2" or "3" used by the task files.
type Priority int

const (
	PriorityHigh Priority = iota + 1
	PriorityMedium
	PriorityLow
)

// ParsePriority converts the digit-string form into a Priority.
func ParsePriority(s string) (Priority, error) {
	switch s {
	case "1":
		return PriorityHigh, nil
	case "2":
		return PriorityMedium, nil
	case "3":
		return PriorityLow, nil
	}
	return 0, fmt.Errorf("priority must be 1, 2, or 3, got %q", s)
}

// Valid reports whether p is one of the three defined priorities.
func (p Priority) Valid() bool {
	return p >= PriorityHigh && p <= PriorityLow
}

func (p Priority) String() string {
	switch p {
	case PriorityHigh:
		return "High"
	case PriorityMedium:
		return "Medium"
	case PriorityLow:
		return "Low"
	}
	return fmt.Sprintf("Priority(%d)", int(p))
}

func (p Priority) MarshalJSON() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("cannot marshal invalid priority %d", int(p))
	}
	return json.Marshal(strconv.Itoa(int(p)))
}

// UnmarshalJSON accepts "1", "2" and "3". An empty string decodes as low
// priority, matching how hand-edited files with the field blanked are read.
func (p *Priority) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*p = PriorityLow
		return nil
	}
	parsed, err := ParsePriority(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// DeadlineLayout is the Go time layout for task deadlines.
const DeadlineLayout = "2006-01-02"

// Task is one entry in a user's task file. Deadline stays a YYYY-MM-DD
// string: the fixed-width form compares correctly as text and is written
// to disk verbatim.
type Task struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Priority    Priority `json:"priority" validate:"min=1,max=3"`
	Deadline    string   `json:"deadline" validate:"required,datetime=2006-01-02"`
	Category    string   `json:"category" validate:"required"`
	Completed   bool     `json:"completed"`
}
