package edit

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/eventdash/pkg/event"
	"tableflip.dev/eventdash/pkg/printers"
	"tableflip.dev/eventdash/pkg/store"
)

// Edit updates an event in place. Unset fields keep their current value.
// With no explicit ID, it consumes a pending edit request left by the
// dashboard (the editEventId handoff key).
type Edit struct {
	ID          int
	Name        string
	Date        string
	Location    string
	Status      event.Status
	Persistence store.Persistence
}

func (e *Edit) Do(ctx context.Context) error {
	if e.Persistence == nil {
		return errors.New("can not edit, no persistence")
	}

	id := e.ID
	if id == 0 {
		pending, ok := e.Persistence.TakeEditEventID()
		if !ok {
			return errors.New("no event id given and no pending edit request")
		}
		id = pending
	}

	current, ok := e.Persistence.GetByID(ctx, id)
	if !ok {
		return fmt.Errorf("event %d not found", id)
	}

	draft := event.Draft{
		Name:     current.Name,
		Date:     current.Date,
		Location: current.Location,
		Status:   current.Status,
	}
	if e.Name != "" {
		draft.Name = e.Name
	}
	if e.Date != "" {
		draft.Date = e.Date
	}
	if e.Location != "" {
		draft.Location = e.Location
	}
	if e.Status != "" {
		draft.Status = e.Status
	}

	updated, err := e.Persistence.Update(ctx, id, draft)
	if err != nil {
		return err
	}
	if updated == nil {
		return fmt.Errorf("event %d not found", id)
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Details(*updated)
	return nil
}
