package login

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/eventdash/pkg/store"
)

// Login stores the placeholder session flag.
type Login struct {
	Email       string
	Password    string
	Persistence store.Persistence
}

func (l *Login) Do(_ context.Context) error {
	if l.Persistence == nil {
		return errors.New("can not login, no persistence")
	}
	if err := l.Persistence.Login(l.Email, l.Password); err != nil {
		return err
	}
	fmt.Printf("Logged in as %s.\n", l.Email)
	return nil
}

// Logout clears the session flag.
type Logout struct {
	Persistence store.Persistence
}

func (l *Logout) Do(_ context.Context) error {
	if l.Persistence == nil {
		return errors.New("can not logout, no persistence")
	}
	if err := l.Persistence.Logout(); err != nil {
		return err
	}
	fmt.Println("Logged out.")
	return nil
}
