package theme

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/eventdash/pkg/store"
)

// Theme toggles or reports the dark-mode preference.
type Theme struct {
	Enable      bool
	Disable     bool
	Persistence store.Persistence
}

func (t *Theme) Do(_ context.Context) error {
	if t.Persistence == nil {
		return errors.New("can not set theme, no persistence")
	}

	switch {
	case t.Enable:
		if err := t.Persistence.SetDarkMode(true); err != nil {
			return err
		}
	case t.Disable:
		if err := t.Persistence.SetDarkMode(false); err != nil {
			return err
		}
	}

	if t.Persistence.DarkMode() {
		fmt.Println("Dark mode: enabled")
	} else {
		fmt.Println("Dark mode: disabled")
	}
	return nil
}
