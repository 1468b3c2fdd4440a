package dto

import (
	"fmt"
	"time"
)

// ParseDate accepts either an RFC3339 timestamp or a plain calendar date.
// Plain dates are interpreted as midnight UTC.
func ParseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}

	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("invalid date %q: expected RFC3339 or YYYY-MM-DD", value)
}
