package remove

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/eventdash/pkg/store"
)

type Remove struct {
	ID          int
	Persistence store.Persistence
}

func (r *Remove) Do(ctx context.Context) error {
	if r.Persistence == nil {
		return errors.New("can not delete, no persistence")
	}

	removed, err := r.Persistence.Delete(ctx, r.ID)
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("event %d not found", r.ID)
	}

	fmt.Printf("Deleted event %d.\n", r.ID)
	return nil
}
