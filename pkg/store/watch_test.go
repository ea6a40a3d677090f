package store

import (
	"context"
	"testing"
	"time"

	"tableflip.dev/eventdash/pkg/event"
)

func TestWatchEmitsOnCollectionWrite(t *testing.T) {
	base := t.TempDir()
	p, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow the watcher goroutine to subscribe before writing.
	time.Sleep(50 * time.Millisecond)

	if _, err := p.Create(ctx, event.Draft{Name: "hello", Date: "2026-01-01", Location: "world"}); err != nil {
		t.Fatalf("create event: %v", err)
	}

	select {
	case c := <-ch:
		if c.Timestamp.IsZero() {
			t.Fatal("change carried no timestamp")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for change signal")
	}
}

func TestWatchIgnoresSessionKeys(t *testing.T) {
	base := t.TempDir()
	p, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	time.Sleep(50 * time.Millisecond)

	if err := p.SetCurrentEventID(1); err != nil {
		t.Fatalf("set current event id: %v", err)
	}
	if err := p.SetDarkMode(true); err != nil {
		t.Fatalf("set dark mode: %v", err)
	}

	select {
	case c := <-ch:
		t.Fatalf("session key write produced a change signal: %+v", c)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatchStopsWhenCancelled(t *testing.T) {
	p := load(t)

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	cancel()

	select {
	case _, ok := <-ch:
		if ok {
			// A buffered change may still drain; the channel must close after.
			for range ch {
			}
		}
	case <-time.After(2 * time.Second):
		t.Fatal("channel not closed after cancel")
	}
}
