package event

import (
	"strings"
	"time"
)

// Stored date layouts. Dates are kept as strings in the record; only these
// forms participate in date-based filtering.
const (
	LayoutDay  = "2006-01-02"
	LayoutTime = "2006-01-02T15:04"
)

// ParseDate parses a stored date string in either supported layout. The
// boolean reports success; filters treat unparseable dates as non-matching
// rather than failing.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if strings.Contains(s, "T") {
		if t, err := time.Parse(LayoutTime, s); err == nil {
			return t, true
		}
		return time.Time{}, false
	}
	t, err := time.Parse(LayoutDay, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// When parses the event's date.
func (e Event) When() (time.Time, bool) {
	return ParseDate(e.Date)
}

// HasTime reports whether the stored date carries a time component.
func (e Event) HasTime() bool {
	return strings.Contains(e.Date, "T")
}

// Day truncates t to midnight for date-only comparison.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
