package calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/eventdash/pkg/printers"
	"tableflip.dev/eventdash/pkg/store"
)

// Calendar renders the month view. Zero Year/Month defaults to the current
// month.
type Calendar struct {
	Year        int
	Month       time.Month
	Persistence store.Persistence
}

func (c *Calendar) Do(ctx context.Context) error {
	if c.Persistence == nil {
		return errors.New("can not render calendar, no persistence")
	}

	on := time.Now()
	if c.Year != 0 && c.Month != 0 {
		on = time.Date(c.Year, c.Month, 1, 1, 0, 0, 0, time.Local)
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")

	all := c.Persistence.GetAll(ctx)
	if c.Persistence.Degraded() {
		pp.Degraded()
	}

	pp.Calendar(on, all)
	return nil
}
