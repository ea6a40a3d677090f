package store

import (
	"errors"
	"testing"
)

func TestCurrentEventID(t *testing.T) {
	p := load(t)

	if _, ok := p.CurrentEventID(); ok {
		t.Fatal("current event id present before being set")
	}

	if err := p.SetCurrentEventID(3); err != nil {
		t.Fatalf("set current event id: %v", err)
	}

	// Read many times; the key is not consumed.
	for i := 0; i < 2; i++ {
		id, ok := p.CurrentEventID()
		if !ok || id != 3 {
			t.Fatalf("current event id = %d, %v; want 3, true", id, ok)
		}
	}
}

func TestTakeEditEventIDConsumesOnce(t *testing.T) {
	p := load(t)

	if _, ok := p.TakeEditEventID(); ok {
		t.Fatal("edit request present before being set")
	}

	if err := p.SetEditEventID(4); err != nil {
		t.Fatalf("set edit event id: %v", err)
	}

	id, ok := p.TakeEditEventID()
	if !ok || id != 4 {
		t.Fatalf("take edit event id = %d, %v; want 4, true", id, ok)
	}

	if _, ok := p.TakeEditEventID(); ok {
		t.Fatal("edit request survived being taken")
	}
}

func TestLoginGate(t *testing.T) {
	p := load(t)

	if err := p.Login("admin@example.com", "wrong"); !errors.Is(err, ErrBadCredentials) {
		t.Fatalf("bad password: err = %v, want ErrBadCredentials", err)
	}
	if _, ok := p.CurrentUser(); ok {
		t.Fatal("user logged in after failed login")
	}

	if err := p.Login("admin@example.com", "admin123"); err != nil {
		t.Fatalf("login: %v", err)
	}
	email, ok := p.CurrentUser()
	if !ok || email != "admin@example.com" {
		t.Fatalf("current user = %q, %v", email, ok)
	}

	if err := p.Logout(); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, ok := p.CurrentUser(); ok {
		t.Fatal("user still logged in after logout")
	}
}

func TestDarkMode(t *testing.T) {
	p := load(t)

	if p.DarkMode() {
		t.Fatal("dark mode enabled by default")
	}
	if err := p.SetDarkMode(true); err != nil {
		t.Fatalf("enable dark mode: %v", err)
	}
	if !p.DarkMode() {
		t.Fatal("dark mode not enabled")
	}
	if err := p.SetDarkMode(false); err != nil {
		t.Fatalf("disable dark mode: %v", err)
	}
	if p.DarkMode() {
		t.Fatal("dark mode still enabled")
	}
}
