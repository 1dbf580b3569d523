package content

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// draft is one pending autosave, keyed by idea.
type draft struct {
	ideaID  uuid.UUID
	userID  uuid.UUID
	content string
}

// debouncer coalesces rapid writes per idea: each queue call resets the
// idea's timer, and only the latest content survives to the flush.
type debouncer struct {
	mu      sync.Mutex
	quiet   time.Duration
	flush   func(draft)
	timers  map[uuid.UUID]*time.Timer
	pending map[uuid.UUID]draft
	closed  bool
}

func newDebouncer(quiet time.Duration, flush func(draft)) *debouncer {
	return &debouncer{
		quiet:   quiet,
		flush:   flush,
		timers:  make(map[uuid.UUID]*time.Timer),
		pending: make(map[uuid.UUID]draft),
	}
}

func (d *debouncer) queue(ideaID uuid.UUID, dr draft) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}

	dr.ideaID = ideaID
	d.pending[ideaID] = dr

	if t, ok := d.timers[ideaID]; ok {
		t.Reset(d.quiet)
		return
	}
	d.timers[ideaID] = time.AfterFunc(d.quiet, func() {
		d.fire(ideaID)
	})
}

func (d *debouncer) fire(ideaID uuid.UUID) {
	d.mu.Lock()
	dr, ok := d.pending[ideaID]
	delete(d.pending, ideaID)
	delete(d.timers, ideaID)
	d.mu.Unlock()

	if ok {
		d.flush(dr)
	}
}

// Close stops all timers and flushes whatever is still pending.
func (d *debouncer) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	for id, t := range d.timers {
		t.Stop()
		delete(d.timers, id)
	}
	remaining := make([]draft, 0, len(d.pending))
	for id, dr := range d.pending {
		remaining = append(remaining, dr)
		delete(d.pending, id)
	}
	d.mu.Unlock()

	for _, dr := range remaining {
		d.flush(dr)
	}
}
