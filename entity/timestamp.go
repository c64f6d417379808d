package entity

import (
	"encoding/json"
	"time"
)

// TimestampLayout is the wire format of Gogs timestamps.
const TimestampLayout = "2006-01-02T15:04:05-07:00"

var timestampLayouts = []string{TimestampLayout, time.RFC3339Nano, "2006-01-02T15:04:05"}

// Timestamp is a point in time as Gogs writes it, with the offset kept as sent.
// Values that cannot be parsed decode to the zero Timestamp rather than failing
// the surrounding entity, and the zero Timestamp encodes as null.
type Timestamp struct {
	time.Time
}

// NewTimestamp wraps t.
func NewTimestamp(t time.Time) Timestamp { return Timestamp{Time: t} }

// MarshalJSON implements json.Marshaler.
func (ts Timestamp) MarshalJSON() ([]byte, error) {
	if ts.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(ts.Format(TimestampLayout))
}

// UnmarshalJSON implements json.Unmarshaler.
func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	ts.Time = time.Time{}
	var s string
	if err := json.Unmarshal(data, &s); err != nil || s == "" {
		return nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			ts.Time = t
			return nil
		}
	}
	return nil
}

// String formats the timestamp in the wire layout, or "" when zero.
func (ts Timestamp) String() string {
	if ts.IsZero() {
		return ""
	}
	return ts.Format(TimestampLayout)
}
