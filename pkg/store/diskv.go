package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/eventdash/pkg/event"
)

// Storage keys shared with every consumer. The event collection lives under
// a single key as one JSON array; the remaining keys carry per-session state.
const (
	eventsKey       = "eventDashboardEvents"
	currentEventKey = "currentEventId"
	editEventKey    = "editEventId"
	loggedInKey     = "isLoggedIn"
	userEmailKey    = "userEmail"
	darkModeKey     = "darkMode"
)

// Persistence is the single owner of the persisted event collection.
//
// Every read re-fetches and re-parses the full collection; there is no cache
// between calls, which bounds the design to small collections. Concurrent
// writers in separate processes are last-writer-wins at the granularity of a
// full-collection write; there is no version check or merge.
type Persistence interface {
	// Initialize seeds the collection with sample data when no collection
	// exists yet. It never overwrites an existing collection.
	Initialize(ctx context.Context) error

	// GetAll returns every record. A missing or corrupt collection yields an
	// empty slice, never an error; Degraded reports the corrupt case.
	GetAll(ctx context.Context) []event.Event

	// GetByID scans the collection for the record with the given id.
	GetByID(ctx context.Context, id int) (event.Event, bool)

	// Create validates the draft, assigns the next id, stamps createdAt, and
	// persists the record.
	Create(ctx context.Context, d event.Draft) (event.Event, error)

	// Update replaces name/date/location/status on the record with the given
	// id and stamps updatedAt. A nil record with nil error means not found.
	Update(ctx context.Context, id int, d event.Draft) (*event.Event, error)

	// Delete removes the record with the given id, reporting whether a record
	// was actually removed. Nothing is written on a miss.
	Delete(ctx context.Context, id int) (bool, error)

	// SaveAll persists an entire replacement collection in one write.
	SaveAll(ctx context.Context, events []event.Event) error

	// Degraded reports whether the last read found stored data it could not
	// parse and fell back to an empty collection.
	Degraded() bool

	// Subscribe delivers an in-process signal after every successful
	// mutation. There is no replay; read current state once on startup.
	Subscribe(ctx context.Context) <-chan Change

	// Watch delivers signals for writes made by other processes.
	Watch(ctx context.Context) (<-chan Change, error)

	Session
}

// Load creates a Persistence backed by diskv using the provided config. A
// nil config falls back to LoadConfig.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string

	notifier notifier

	mu       sync.Mutex
	degraded bool
}

// readEvents deserializes the full collection. Parse failures are absorbed
// into "no data" so every view stays renderable; the degraded flag lets
// consumers warn instead of silently showing zero events.
func (p *persistence) readEvents() []event.Event {
	if !p.d.Has(eventsKey) {
		p.setDegraded(false)
		return []event.Event{}
	}
	val, err := p.d.Read(eventsKey)
	if err != nil {
		fmt.Fprintf(os.Stderr, "store: read %s: %v\n", eventsKey, err)
		p.setDegraded(true)
		return []event.Event{}
	}
	var events []event.Event
	if err := json.Unmarshal(val, &events); err != nil {
		fmt.Fprintf(os.Stderr, "store: parse %s: %v\n", eventsKey, err)
		p.setDegraded(true)
		return []event.Event{}
	}
	p.setDegraded(false)
	if events == nil {
		events = []event.Event{}
	}
	return events
}

// writeEvents persists the full collection as a single key write and emits
// exactly one change notification on success.
func (p *persistence) writeEvents(events []event.Event) error {
	data, err := json.Marshal(events)
	if err != nil {
		return &StorageError{Op: "encode events", Err: err}
	}
	if err := p.d.Write(eventsKey, data); err != nil {
		return &StorageError{Op: "write events", Err: err}
	}
	p.setDegraded(false)
	p.notifier.broadcast()
	return nil
}

func (p *persistence) Initialize(_ context.Context) error {
	if p.d.Has(eventsKey) {
		return nil
	}
	return p.writeEvents(seedEvents())
}

func (p *persistence) GetAll(_ context.Context) []event.Event {
	return p.readEvents()
}

func (p *persistence) GetByID(_ context.Context, id int) (event.Event, bool) {
	for _, e := range p.readEvents() {
		if e.ID == id {
			return e, true
		}
	}
	return event.Event{}, false
}

func (p *persistence) Create(_ context.Context, d event.Draft) (event.Event, error) {
	if missing := d.MissingFields(); len(missing) > 0 {
		return event.Event{}, &ValidationError{Missing: missing}
	}

	events := p.readEvents()

	newID := 1
	for _, e := range events {
		if e.ID >= newID {
			newID = e.ID + 1
		}
	}

	status := d.Status
	if status == "" {
		status = event.Upcoming
	}

	created := event.Event{
		ID:        newID,
		Name:      trim(d.Name),
		Date:      d.Date,
		Location:  trim(d.Location),
		Status:    status,
		CreatedAt: event.Now(),
	}

	events = append(events, created)
	if err := p.writeEvents(events); err != nil {
		return event.Event{}, err
	}
	return created, nil
}

func (p *persistence) Update(_ context.Context, id int, d event.Draft) (*event.Event, error) {
	if missing := d.MissingFields(); len(missing) > 0 {
		return nil, &ValidationError{Missing: missing}
	}

	events := p.readEvents()
	for i := range events {
		if events[i].ID != id {
			continue
		}
		now := event.Now()
		events[i].Name = trim(d.Name)
		events[i].Date = d.Date
		events[i].Location = trim(d.Location)
		events[i].Status = d.Status
		events[i].UpdatedAt = &now
		if err := p.writeEvents(events); err != nil {
			return nil, err
		}
		updated := events[i]
		return &updated, nil
	}
	return nil, nil
}

func (p *persistence) Delete(_ context.Context, id int) (bool, error) {
	events := p.readEvents()
	kept := make([]event.Event, 0, len(events))
	for _, e := range events {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(events) {
		return false, nil
	}
	if err := p.writeEvents(kept); err != nil {
		return false, err
	}
	return true, nil
}

func (p *persistence) SaveAll(_ context.Context, events []event.Event) error {
	if events == nil {
		events = []event.Event{}
	}
	return p.writeEvents(events)
}

func (p *persistence) Degraded() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.degraded
}

func (p *persistence) setDegraded(v bool) {
	p.mu.Lock()
	p.degraded = v
	p.mu.Unlock()
}

func (p *persistence) Subscribe(ctx context.Context) <-chan Change {
	return p.notifier.subscribe(ctx)
}

func trim(s string) string {
	return strings.TrimSpace(s)
}

func keyToPathTransform(s string) *diskv.PathKey {
	return &diskv.PathKey{
		Path:     []string{},
		FileName: s,
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return pathKey.FileName
}
