package tracker

import (
	"sync"
	"time"

	"quicklip/internal/domain"
	"quicklip/internal/eventbus"
)

// Tracker is an in-memory frequency ledger of observed clipboard copies.
// Entries live for the process lifetime only: no eviction, no cap, no
// persistence. The ledger is a deliberately volatile heuristic signal, not
// a durable store. Upstream filtering (length cap, duplicate suppression)
// happens in the clipboard monitor before Record is called.
type Tracker struct {
	mu     sync.Mutex
	usages map[string][]time.Time
	order  []string // first-seen order of values
	bus    eventbus.EventBus
	now    func() time.Time
}

// New creates an empty tracker. The bus may be nil in tests.
func New(bus eventbus.EventBus) *Tracker {
	return &Tracker{
		usages: make(map[string][]time.Time),
		bus:    bus,
		now:    time.Now,
	}
}

// Record appends a usage timestamp to the entry for value, creating the
// entry on first sight, and notifies subscribers.
func (t *Tracker) Record(value string) {
	t.mu.Lock()
	if _, ok := t.usages[value]; !ok {
		t.order = append(t.order, value)
	}
	t.usages[value] = append(t.usages[value], t.now())
	count := len(t.usages[value])
	t.mu.Unlock()

	if t.bus != nil {
		t.bus.Publish(eventbus.ClipRecordedEvent{Value: value, Usages: count})
	}
}

// Snapshot returns the ledger in first-seen order. The returned clips own
// copies of the usage lists and are safe to hold across further records.
func (t *Tracker) Snapshot() []domain.TrackedClip {
	t.mu.Lock()
	defer t.mu.Unlock()

	clips := make([]domain.TrackedClip, 0, len(t.order))
	for _, value := range t.order {
		usages := make([]time.Time, len(t.usages[value]))
		copy(usages, t.usages[value])
		clips = append(clips, domain.TrackedClip{Value: value, Usages: usages})
	}
	return clips
}
