package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// LocalDateTimeLayout is the zone-less wire format for date-times.
const LocalDateTimeLayout = "2006-01-02T15:04:05"

// layouts accepted when decoding, tried in order
var localDateTimeLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
}

// LocalDateTime is a date-time without a zone offset on the wire,
// e.g. "2024-12-25T10:00:00".
type LocalDateTime struct {
	time.Time
}

// NewLocalDateTime wraps t.
func NewLocalDateTime(t time.Time) LocalDateTime {
	return LocalDateTime{Time: t}
}

// ParseLocalDateTime parses s using the accepted layouts.
func ParseLocalDateTime(s string) (LocalDateTime, error) {
	for _, layout := range localDateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return LocalDateTime{Time: t}, nil
		}
	}
	return LocalDateTime{}, fmt.Errorf("invalid date-time %q: expected format %s", s, LocalDateTimeLayout)
}

// String formats the value with fractional seconds only when present.
func (d LocalDateTime) String() string {
	return d.Format("2006-01-02T15:04:05.999999999")
}

// MarshalJSON implements json.Marshaler.
func (d LocalDateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON implements json.Unmarshaler. A JSON null leaves the value
// untouched so that pointer fields stay nil.
func (d *LocalDateTime) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date-time must be a string: %w", err)
	}

	parsed, err := ParseLocalDateTime(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
