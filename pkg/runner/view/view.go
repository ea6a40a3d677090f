package view

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/eventdash/pkg/printers"
	"tableflip.dev/eventdash/pkg/store"
)

// View shows one event in full. An explicit ID is remembered as the
// details-view target (the currentEventId key); without one, the remembered
// target is shown.
type View struct {
	ID          int
	Persistence store.Persistence
}

func (v *View) Do(ctx context.Context) error {
	if v.Persistence == nil {
		return errors.New("can not view, no persistence")
	}

	id := v.ID
	if id == 0 {
		remembered, ok := v.Persistence.CurrentEventID()
		if !ok {
			return errors.New("no event id given and none remembered")
		}
		id = remembered
	} else if err := v.Persistence.SetCurrentEventID(id); err != nil {
		return err
	}

	e, ok := v.Persistence.GetByID(ctx, id)
	if !ok {
		return fmt.Errorf("event %d not found", id)
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Details(e)
	return nil
}
