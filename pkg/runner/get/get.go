package get

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

// Get lists events, optionally filtered to one category, newest first.
type Get struct {
	ShowID      bool
	Status      event.Status
	Upcoming    bool
	Completed   bool
	Persistence store.Persistence
}

func (g *Get) Do(ctx context.Context) error {
	if g.Persistence == nil {
		return errors.New("can not get, no persistence")
	}

	pp := printers.PrettyPrint{ShowID: g.ShowID}
	fmt.Println("")

	all := g.Persistence.GetAll(ctx)
	if g.Persistence.Degraded() {
		pp.Degraded()
	}

	title := "All Events"
	filtered := all
	switch {
	case g.Upcoming:
		title = "Upcoming Events"
		filtered = query.Upcoming(all, time.Now())
	case g.Completed:
		title = "Completed Events"
		filtered = query.Completed(all, time.Now())
	case g.Status != "":
		title = fmt.Sprintf("%s Events", g.Status)
		filtered = query.ByStatus(all, g.Status)
	}

	pp.TitleWithCount(title, len(filtered))
	pp.Events(query.SortByDateDesc(filtered)...)
	return nil
}
