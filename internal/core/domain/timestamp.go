package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout is the calendar-date form accepted wherever a timestamp is.
const DateLayout = time.DateOnly

// ParseTimestamp accepts RFC 3339 timestamps and plain calendar dates. A
// date is read as midnight UTC.
func ParseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("timestamp %q: want RFC 3339 or %s", s, DateLayout)
	}
	return t, nil
}

// unmarshalTimestamp decodes a JSON string through ParseTimestamp. null and
// an empty string leave dst untouched.
func unmarshalTimestamp(raw json.RawMessage, dst *time.Time) error {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return err
	}
	if s == "" {
		return nil
	}
	t, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	*dst = t
	return nil
}

// UnmarshalJSON accepts calendar dates as well as RFC 3339 for both bounds.
func (r *DateRange) UnmarshalJSON(data []byte) error {
	var aux struct {
		From json.RawMessage `json:"from"`
		To   json.RawMessage `json:"to"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if err := unmarshalTimestamp(aux.From, &r.From); err != nil {
		return fmt.Errorf("dateRange.from: %w", err)
	}
	if err := unmarshalTimestamp(aux.To, &r.To); err != nil {
		return fmt.Errorf("dateRange.to: %w", err)
	}
	return nil
}

// UnmarshalJSON decodes a creative, accepting calendar dates for
// createdAt and updatedAt.
func (c *Creative) UnmarshalJSON(data []byte) error {
	type plain Creative
	aux := struct {
		*plain
		CreatedAt json.RawMessage `json:"createdAt"`
		UpdatedAt json.RawMessage `json:"updatedAt"`
	}{plain: (*plain)(c)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if err := unmarshalTimestamp(aux.CreatedAt, &c.CreatedAt); err != nil {
		return fmt.Errorf("createdAt: %w", err)
	}
	if err := unmarshalTimestamp(aux.UpdatedAt, &c.UpdatedAt); err != nil {
		return fmt.Errorf("updatedAt: %w", err)
	}
	return nil
}
