package types

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// dateLayout is the wire format for posting dates.
const dateLayout = "2006-01-02"

// Date is a calendar date without a time component.
// It marshals as "YYYY-MM-DD" and accepts RFC 3339 timestamps on decode
// because some API responses echo full timestamps for date fields.
type Date struct {
	time.Time
}

// NewDate builds a Date for the given year, month, and day in UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// MarshalJSON encodes the date as "YYYY-MM-DD".
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(dateLayout))
}

// UnmarshalJSON decodes either a bare date or an RFC 3339 timestamp.
func (d *Date) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}

	// Truncate timestamps to their date portion.
	if idx := strings.Index(raw, "T"); idx > 0 {
		raw = raw[:idx]
	}

	parsed, err := time.Parse(dateLayout, raw)
	if err != nil {
		return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", raw)
	}

	d.Time = parsed
	return nil
}

// After reports whether d falls strictly after other.
func (d Date) After(other Date) bool {
	return d.Time.After(other.Time)
}
