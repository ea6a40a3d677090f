package watch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/eventdash/pkg/query"
	"tableflip.dev/eventdash/pkg/store"
)

// Watch follows the collection, printing refreshed counts whenever a change
// signal arrives on either channel: the in-process bus for this process's
// own mutations, the storage watch for everyone else's. Runs until ctx is
// cancelled.
type Watch struct {
	Persistence store.Persistence
}

func (w *Watch) Do(ctx context.Context) error {
	if w.Persistence == nil {
		return errors.New("can not watch, no persistence")
	}

	local := w.Persistence.Subscribe(ctx)
	external, err := w.Persistence.Watch(ctx)
	if err != nil {
		return err
	}

	// No replay on subscribe; report current state once up front.
	w.report(ctx, time.Now())

	for {
		select {
		case <-ctx.Done():
			return nil
		case c, ok := <-local:
			if !ok {
				return nil
			}
			w.report(ctx, c.Timestamp)
		case c, ok := <-external:
			if !ok {
				return nil
			}
			w.report(ctx, c.Timestamp)
		}
	}
}

func (w *Watch) report(ctx context.Context, at time.Time) {
	counts := query.Count(w.Persistence.GetAll(ctx), time.Now())
	fmt.Printf("%s  total=%d upcoming=%d completed=%d\n",
		at.Format(time.RFC3339), counts.Total, counts.Upcoming, counts.Completed)
}
