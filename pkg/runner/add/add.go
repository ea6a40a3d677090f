package add

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/eventdash/pkg/event"
	"tableflip.dev/eventdash/pkg/printers"
	"tableflip.dev/eventdash/pkg/store"
)

type Add struct {
	Name        string
	Date        string
	Location    string
	Status      event.Status
	Persistence store.Persistence
}

func (a *Add) Do(ctx context.Context) error {
	if a.Persistence == nil {
		return errors.New("can not add, no persistence")
	}

	created, err := a.Persistence.Create(ctx, event.Draft{
		Name:     a.Name,
		Date:     a.Date,
		Location: a.Location,
		Status:   a.Status,
	})
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Details(created)
	return nil
}
