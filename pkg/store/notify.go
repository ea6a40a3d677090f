package store

import (
	"context"
	"sync"
	"time"
)

// Change is broadcast after every successful mutation. It carries only a
// timestamp; subscribers re-read current state rather than diffing payloads.
type Change struct {
	Timestamp time.Time
}

// notifier fans a change signal out to in-process subscribers. Sends never
// block: a subscriber that has fallen behind misses intermediate signals and
// catches up on its next read, which is fine because renders are idempotent.
type notifier struct {
	mu   sync.Mutex
	next int
	subs map[int]chan Change
}

func (n *notifier) subscribe(ctx context.Context) <-chan Change {
	ch := make(chan Change, 8)

	n.mu.Lock()
	if n.subs == nil {
		n.subs = make(map[int]chan Change)
	}
	id := n.next
	n.next++
	n.subs[id] = ch
	n.mu.Unlock()

	go func() {
		<-ctx.Done()
		n.mu.Lock()
		delete(n.subs, id)
		n.mu.Unlock()
		close(ch)
	}()

	return ch
}

func (n *notifier) broadcast() {
	change := Change{Timestamp: time.Now()}

	n.mu.Lock()
	defer n.mu.Unlock()
	for _, ch := range n.subs {
		select {
		case ch <- change:
		default:
		}
	}
}
