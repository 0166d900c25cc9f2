// Package timex provides a JSON-friendly timestamp type for the flat-file
// formats. Values marshal as ISO 8601 strings and parse tolerantly, so
// security logs written by older releases (zone-less timestamps) keep
// loading.
package timex

import (
	"encoding/json"
	"fmt"
	"time"
)

// layoutNaive matches zone-less ISO 8601 timestamps. Such values are
// interpreted in local time.
const layoutNaive = "2006-01-02T15:04:05.999999999"

// Time wraps time.Time with the marshalling rules above.
type Time struct {
	time.Time
}

// New wraps t.
func New(t time.Time) Time {
	return Time{Time: t}
}

// Parse accepts RFC 3339 timestamps as well as zone-less ISO 8601 strings.
func Parse(s string) (Time, error) {
	if ts, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return Time{Time: ts}, nil
	}
	ts, err := time.ParseInLocation(layoutNaive, s, time.Local)
	if err != nil {
		return Time{}, fmt.Errorf("unsupported timestamp %q: %w", s, err)
	}
	return Time{Time: ts}, nil
}

func (t Time) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Format(time.RFC3339Nano))
}

func (t *Time) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	t.Time = parsed.Time
	return nil
}
