package store

import (
	"fmt"
	"os"
	"strconv"
)

// Placeholder gate credentials. The login flow has no security value; it
// exists so the stored session keys behave like the rest of the contract.
const (
	validEmail    = "admin@example.com"
	validPassword = "admin123"
)

// Session exposes the per-session storage keys that consumers hand state
// through: the details-view target, the one-shot edit request, the login
// flag, and the theme preference.
type Session interface {
	// SetCurrentEventID records which event the details view should show.
	SetCurrentEventID(id int) error
	// CurrentEventID reads the recorded details-view target.
	CurrentEventID() (int, bool)

	// SetEditEventID requests that the list view auto-open edit mode.
	SetEditEventID(id int) error
	// TakeEditEventID consumes the edit request: read once, then deleted.
	TakeEditEventID() (int, bool)

	// Login stores the session flag after checking the placeholder
	// credentials. ErrBadCredentials on mismatch.
	Login(email, password string) error
	// Logout clears the session flag and stored email.
	Logout() error
	// CurrentUser returns the logged-in email, if any.
	CurrentUser() (string, bool)

	// SetDarkMode stores the theme preference.
	SetDarkMode(enabled bool) error
	// DarkMode reads the theme preference.
	DarkMode() bool
}

func (p *persistence) readKey(key string) (string, bool) {
	if !p.d.Has(key) {
		return "", false
	}
	val, err := p.d.Read(key)
	if err != nil {
		fmt.Fprintf(os.Stderr, "store: read %s: %v\n", key, err)
		return "", false
	}
	return string(val), true
}

func (p *persistence) writeKey(key, value string) error {
	if err := p.d.Write(key, []byte(value)); err != nil {
		return &StorageError{Op: "write " + key, Err: err}
	}
	return nil
}

func (p *persistence) eraseKey(key string) error {
	if !p.d.Has(key) {
		return nil
	}
	if err := p.d.Erase(key); err != nil {
		return &StorageError{Op: "erase " + key, Err: err}
	}
	return nil
}

// Ids are stored string-encoded, matching the persisted state layout.
func (p *persistence) readID(key string) (int, bool) {
	raw, ok := p.readKey(key)
	if !ok {
		return 0, false
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return id, true
}

func (p *persistence) SetCurrentEventID(id int) error {
	return p.writeKey(currentEventKey, strconv.Itoa(id))
}

func (p *persistence) CurrentEventID() (int, bool) {
	return p.readID(currentEventKey)
}

func (p *persistence) SetEditEventID(id int) error {
	return p.writeKey(editEventKey, strconv.Itoa(id))
}

func (p *persistence) TakeEditEventID() (int, bool) {
	id, ok := p.readID(editEventKey)
	if !ok {
		return 0, false
	}
	if err := p.eraseKey(editEventKey); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
	}
	return id, true
}

func (p *persistence) Login(email, password string) error {
	if email != validEmail || password != validPassword {
		return ErrBadCredentials
	}
	if err := p.writeKey(loggedInKey, "true"); err != nil {
		return err
	}
	return p.writeKey(userEmailKey, email)
}

func (p *persistence) Logout() error {
	if err := p.eraseKey(loggedInKey); err != nil {
		return err
	}
	return p.eraseKey(userEmailKey)
}

func (p *persistence) CurrentUser() (string, bool) {
	if flag, ok := p.readKey(loggedInKey); !ok || flag != "true" {
		return "", false
	}
	email, ok := p.readKey(userEmailKey)
	return email, ok
}

func (p *persistence) SetDarkMode(enabled bool) error {
	value := "disabled"
	if enabled {
		value = "enabled"
	}
	return p.writeKey(darkModeKey, value)
}

func (p *persistence) DarkMode() bool {
	value, ok := p.readKey(darkModeKey)
	return ok && value == "enabled"
}
