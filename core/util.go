package core

import (
	"strings"
	"time"
)

// CleanString trims all leading and trailing whitespace in `s` and optionally lowers it.
func CleanString(s string, lower ...bool) string {
	s = strings.TrimSpace(s)
	if len(lower) > 0 && lower[0] {
		return strings.ToLower(s)
	}
	return s
}

// Now returns the current UTC time truncated to the precision of a TIMESTAMPTZ column.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// NextTimestamp returns Now(), or `prev` plus one microsecond when the clock has not moved past it.
func NextTimestamp(prev time.Time) time.Time {
	now := Now()
	if !now.After(prev) {
		return prev.Add(time.Microsecond).UTC()
	}
	return now
}
