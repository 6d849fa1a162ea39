package util

import "time"

// FormatDateTime formats an RFC3339 timestamp string to date-time format (2006-01-02 15:04).
// Returns the original string if parsing fails.
func FormatDateTime(s string) string {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return s
	}
	return t.UTC().Format("2006-01-02 15:04")
}

// ParseTimeSQLite parses a SQLite datetime or RFC3339 string to time.Time.
// Returns zero time if parsing fails.
func ParseTimeSQLite(s string) time.Time {
	if t, err := time.Parse("2006-01-02 15:04:05", s); err == nil {
		return t
	}
	t, _ := time.Parse(time.RFC3339, s)
	return t
}
