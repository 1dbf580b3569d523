// Package bus is a small in-process pub/sub hub. Services publish domain
// events on it and transports or other services subscribe; delivery is
// synchronous and a panicking handler never takes down the publisher.
package bus

import (
	"log/slog"
	"sync"
)

// Handler receives an event payload. The payload type is fixed per event,
// see events.go.
type Handler func(payload any)

type Bus struct {
	log *slog.Logger

	mu     sync.RWMutex
	nextID int
	subs   map[Event]map[int]Handler
}

func New(logger *slog.Logger) *Bus {
	return &Bus{
		log:  logger.With("component", "bus"),
		subs: make(map[Event]map[int]Handler),
	}
}

// Subscribe registers h for event and returns an unsubscribe func. The
// returned func is idempotent and safe to call from inside a handler.
func (b *Bus) Subscribe(event Event, h Handler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.subs[event] == nil {
		b.subs[event] = make(map[int]Handler)
	}
	id := b.nextID
	b.nextID++
	b.subs[event][id] = h

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs[event], id)
	}
}

// Publish delivers payload to every handler subscribed to event at the time
// of the call. Handlers run synchronously; subscribing or unsubscribing from
// inside a handler affects later publishes only.
func (b *Bus) Publish(event Event, payload any) {
	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.subs[event]))
	for _, h := range b.subs[event] {
		handlers = append(handlers, h)
	}
	b.mu.RUnlock()

	for _, h := range handlers {
		b.deliver(event, h, payload)
	}
}

func (b *Bus) deliver(event Event, h Handler, payload any) {
	defer func() {
		if r := recover(); r != nil {
			b.log.Error("event handler panicked", "event", string(event), "panic", r)
		}
	}()
	h(payload)
}
