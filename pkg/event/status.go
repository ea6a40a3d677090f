package event

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Status identifies the lifecycle state of an event.
type Status string

const (
	// Upcoming is the default state for new events.
	Upcoming Status = "Upcoming"
	// Completed marks an event that already took place.
	Completed Status = "Completed"
	// Cancelled marks an event that will not take place.
	Cancelled Status = "Cancelled"
	// Postponed marks an event waiting for a new date.
	Postponed Status = "Postponed"
)

// AllStatuses returns the supported statuses in display order.
func AllStatuses() []Status {
	return []Status{
		Upcoming,
		Completed,
		Cancelled,
		Postponed,
	}
}

// ParseStatus converts a string to a Status, case-insensitively. An empty
// input yields Upcoming; unknown values are an error.
func ParseStatus(raw string) (Status, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Upcoming, nil
	}
	for _, candidate := range AllStatuses() {
		if strings.EqualFold(string(candidate), trimmed) {
			return candidate, nil
		}
	}
	return Upcoming, fmt.Errorf("event: unknown status %q", raw)
}

// Known reports whether the status is one of the four enumerated values.
// Directly-written records may carry anything; readers tolerate it.
func (s Status) Known() bool {
	for _, candidate := range AllStatuses() {
		if s == candidate {
			return true
		}
	}
	return false
}

// Color returns the display color for the status. The mapping is total:
// unknown statuses get the informational fallback.
func (s Status) Color() *color.Color {
	switch s {
	case Upcoming:
		return color.New(color.FgGreen)
	case Completed:
		return color.New(color.FgWhite, color.Faint)
	case Cancelled:
		return color.New(color.FgRed)
	case Postponed:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgCyan)
	}
}

func (s Status) String() string {
	return string(s)
}
