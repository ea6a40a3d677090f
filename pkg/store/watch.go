package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch streams a change signal whenever another process writes the event
// collection, until ctx is cancelled. It is the cross-process counterpart of
// Subscribe: the writing process hears its own mutations in-process, every
// other process hears them through the filesystem. The channel is closed
// once ctx is done or the watcher encounters an unrecoverable error.
func (p *persistence) Watch(ctx context.Context) (<-chan Change, error) {
	if p.basePath == "" {
		return nil, errors.New("store: base path unknown")
	}

	if err := os.MkdirAll(p.basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "store: watcher close: %v\n", err)
			}
		})
	}

	if err := watcher.Add(p.basePath); err != nil {
		closeWatcher()
		return nil, fmt.Errorf("store: watch %s: %w", p.basePath, err)
	}

	changes := make(chan Change, 64)

	go func() {
		defer close(changes)
		defer closeWatcher()

		send := func(c Change) {
			select {
			case changes <- c:
			default:
				// Drop if the consumer is not ready; the next signal or an
				// explicit re-read picks the change up. Keeps filesystem
				// storms from blocking the watcher goroutine.
			}
		}

		throttle := newChangeThrottle(100 * time.Millisecond)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				// An unclassifiable watcher error still means storage may
				// have moved under us, so signal a refresh.
				fmt.Fprintf(os.Stderr, "store: watcher: %v\n", err)
				throttle.Enqueue(send)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(evt.Name) != eventsKey {
					continue
				}
				if evt.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
					continue
				}
				throttle.Enqueue(send)
			}
		}
	}()

	return changes, nil
}

// changeThrottle coalesces rapid filesystem notifications so consumers
// re-render once per burst of write activity instead of once per syscall.
type changeThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending bool
	delay   time.Duration
}

func newChangeThrottle(delay time.Duration) *changeThrottle {
	return &changeThrottle{delay: delay}
}

func (t *changeThrottle) Enqueue(send func(Change)) {
	t.mu.Lock()
	t.pending = true
	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
	t.mu.Unlock()
}

func (t *changeThrottle) flush(send func(Change)) {
	t.mu.Lock()
	fire := t.pending
	t.pending = false
	t.timer = nil
	t.mu.Unlock()

	if fire {
		send(Change{Timestamp: time.Now()})
	}
}

func (t *changeThrottle) Stop() {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
