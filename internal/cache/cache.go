// Package cache is an in-process TTL cache for assembled content views.
// Concurrent fetches of the same key are collapsed into one load, and writes
// to the underlying data invalidate every key whose value they affect.
package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

type entry struct {
	value     any
	expiresAt time.Time
}

// Store holds cached values keyed by string with a per-entry TTL. Expired
// entries are dropped lazily on access. The zero value is not usable; use
// NewStore.
type Store struct {
	mu      sync.RWMutex
	entries map[string]entry
	// epochs counts invalidations per key. A load records the epoch before it
	// starts and is discarded on completion if an Invalidate bumped it since,
	// so a racing invalidation can never be overwritten by pre-invalidation
	// data.
	epochs map[string]uint64
	group  singleflight.Group

	now func() time.Time
}

func NewStore() *Store {
	return &Store{
		entries: make(map[string]entry),
		epochs:  make(map[string]uint64),
		now:     time.Now,
	}
}

func (s *Store) lookup(key string) (any, bool) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if s.now().After(e.expiresAt) {
		s.mu.Lock()
		if cur, ok := s.entries[key]; ok && cur.expiresAt.Equal(e.expiresAt) {
			delete(s.entries, key)
		}
		s.mu.Unlock()
		return nil, false
	}
	return e.value, true
}

func (s *Store) epoch(key string) uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.epochs[key]
}

func (s *Store) store(key string, value any, ttl time.Duration) {
	s.mu.Lock()
	s.entries[key] = entry{value: value, expiresAt: s.now().Add(ttl)}
	s.mu.Unlock()
}

// storeAt writes the entry only when no Invalidate landed since the load
// began at then-current epoch.
func (s *Store) storeAt(key string, value any, ttl time.Duration, epoch uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.epochs[key] != epoch {
		return
	}
	s.entries[key] = entry{value: value, expiresAt: s.now().Add(ttl)}
}

// Invalidate removes the given keys and forgets any in-flight loads for them,
// so the next fetch observes post-invalidation data. Bumping the key's epoch
// also discards the result of any load already running, which would otherwise
// re-cache pre-invalidation data with a fresh TTL.
func (s *Store) Invalidate(keys ...string) {
	s.mu.Lock()
	for _, key := range keys {
		delete(s.entries, key)
		s.epochs[key]++
	}
	s.mu.Unlock()
	for _, key := range keys {
		s.group.Forget(key)
	}
}

// Fetch returns the cached value for key, or runs load and caches its result
// for ttl. Concurrent callers for the same key share a single load; a load
// error is returned to every waiter and nothing is cached.
func Fetch[T any](ctx context.Context, s *Store, key string, ttl time.Duration, load func(ctx context.Context) (T, error)) (T, error) {
	if v, ok := s.lookup(key); ok {
		typed, ok := v.(T)
		if !ok {
			var zero T
			return zero, fmt.Errorf("cache: key %q holds %T", key, v)
		}
		return typed, nil
	}

	v, err, _ := s.group.Do(key, func() (any, error) {
		if v, ok := s.lookup(key); ok {
			return v, nil
		}
		epoch := s.epoch(key)
		value, err := load(ctx)
		if err != nil {
			return nil, err
		}
		s.storeAt(key, value, ttl, epoch)
		return value, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}

	typed, ok := v.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("cache: key %q holds %T", key, v)
	}
	return typed, nil
}
