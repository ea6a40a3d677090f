// Package query provides pure, read-only computations over a snapshot of the
// event collection. Nothing here mutates the store; callers pass the slice
// returned by GetAll and the reference day explicitly so results are
// deterministic. Events whose date string does not parse are excluded from
// every date-based filter rather than raising.
package query

import (
	"sort"
	"time"

	"tableflip.dev/eventdash/pkg/event"
)

// ByStatus filters events by exact status equality.
func ByStatus(events []event.Event, status event.Status) []event.Event {
	out := make([]event.Event, 0, len(events))
	for _, e := range events {
		if e.Status == status {
			out = append(out, e)
		}
	}
	return out
}

// Upcoming returns events dated on or after today, compared at calendar-day
// precision on parsed dates.
func Upcoming(events []event.Event, today time.Time) []event.Event {
	day := event.Day(today)
	out := make([]event.Event, 0, len(events))
	for _, e := range events {
		when, ok := e.When()
		if !ok {
			continue
		}
		if !event.Day(when).Before(day) {
			out = append(out, e)
		}
	}
	return out
}

// Completed returns events dated before today or explicitly marked
// Completed. The OR is intentional policy: a future-dated event marked
// Completed counts, and a past-dated event of any status counts. The result
// may overlap with Upcoming.
func Completed(events []event.Event, today time.Time) []event.Event {
	day := event.Day(today)
	out := make([]event.Event, 0, len(events))
	for _, e := range events {
		if e.Status == event.Completed {
			out = append(out, e)
			continue
		}
		when, ok := e.When()
		if !ok {
			continue
		}
		if event.Day(when).Before(day) {
			out = append(out, e)
		}
	}
	return out
}

// Counts aggregates collection cardinalities for the dashboard. Upcoming and
// Completed are computed independently and may overlap, so they need not sum
// to Total.
type Counts struct {
	Total     int
	Upcoming  int
	Completed int
}

// Count computes the dashboard counts for the given reference day.
func Count(events []event.Event, today time.Time) Counts {
	return Counts{
		Total:     len(events),
		Upcoming:  len(Upcoming(events, today)),
		Completed: len(Completed(events, today)),
	}
}

// StatusCounts tallies events per enumerated status. Every known status is
// present in the result, zero-valued when empty; records carrying a value
// outside the enumeration are not counted.
func StatusCounts(events []event.Event) map[event.Status]int {
	counts := make(map[event.Status]int, 4)
	for _, s := range event.AllStatuses() {
		counts[s] = 0
	}
	for _, e := range events {
		if e.Status.Known() {
			counts[e.Status]++
		}
	}
	return counts
}

// ByMonth filters events falling in the given calendar year and month,
// ignoring the day.
func ByMonth(events []event.Event, year int, month time.Month) []event.Event {
	out := make([]event.Event, 0, len(events))
	for _, e := range events {
		when, ok := e.When()
		if !ok {
			continue
		}
		if when.Year() == year && when.Month() == month {
			out = append(out, e)
		}
	}
	return out
}

// Indexed pairs an event with its position in the original collection so a
// consumer can navigate back to the full record.
type Indexed struct {
	event.Event
	Index int
}

// ByDay returns the events on the given calendar day, sorted ascending by
// full date/time. Each result carries its index in the input collection.
func ByDay(events []event.Event, year int, month time.Month, day int) []Indexed {
	out := make([]Indexed, 0, len(events))
	for i, e := range events {
		when, ok := e.When()
		if !ok {
			continue
		}
		if when.Year() == year && when.Month() == month && when.Day() == day {
			out = append(out, Indexed{Event: e, Index: i})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		left, _ := out[i].When()
		right, _ := out[j].When()
		return left.Before(right)
	})
	return out
}

// SortByDateDesc returns a copy of events ordered newest-dated first, the
// ordering the list and dashboard tables impose. Events with unparseable
// dates sort last, keeping their relative order.
func SortByDateDesc(events []event.Event) []event.Event {
	out := make([]event.Event, len(events))
	copy(out, events)
	sort.SliceStable(out, func(i, j int) bool {
		left, lok := out[i].When()
		right, rok := out[j].When()
		switch {
		case lok && rok:
			return right.Before(left)
		case lok:
			return true
		default:
			return false
		}
	})
	return out
}
