package stats

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/eventdash/pkg/event"
	"tableflip.dev/eventdash/pkg/printers"
	"tableflip.dev/eventdash/pkg/query"
	"tableflip.dev/eventdash/pkg/store"
)

// Stats renders the dashboard: totals, the per-status breakdown, and
// optionally one category's event table.
type Stats struct {
	Show        string
	Persistence store.Persistence
}

func (s *Stats) Do(ctx context.Context) error {
	if s.Persistence == nil {
		return errors.New("can not show stats, no persistence")
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")

	all := s.Persistence.GetAll(ctx)
	if s.Persistence.Degraded() {
		pp.Degraded()
	}

	now := time.Now()
	pp.Title("Dashboard")
	pp.Stats(query.Count(all, now), query.StatusCounts(all))

	if s.Show == "" {
		return nil
	}

	var title string
	var section []event.Event
	switch s.Show {
	case "all":
		title = "All Events"
		section = all
	case "upcoming":
		title = "Upcoming Events"
		section = query.Upcoming(all, now)
	case "completed":
		title = "Completed Events"
		section = query.Completed(all, now)
	case "cancelled":
		title = "Cancelled Events"
		section = query.ByStatus(all, event.Cancelled)
	case "postponed":
		title = "Postponed Events"
		section = query.ByStatus(all, event.Postponed)
	default:
		return fmt.Errorf("unknown category %q", s.Show)
	}

	pp.TitleWithCount(title, len(section))
	pp.Events(query.SortByDateDesc(section)...)
	return nil
}
