// Package store holds generated documents in memory for a bounded retention
// window. It is a short-lived download cache, not a persistent store: all
// state is lost on process restart, and in a multi-instance deployment it
// must be replaced by a shared backing cache or documents generated on one
// instance are unretrievable from another.
package store

import (
	"sync"
	"time"

	"github.com/mvesperini/abntdoc/internal/document"
)

// Scheduler runs fn once after d has elapsed. The default implementation is
// time.AfterFunc; tests inject a fake clock so eviction is deterministic.
type Scheduler func(d time.Duration, fn func())

// Store is a thread-safe in-memory document cache with per-entry TTL
// eviction. Eviction timers are fire-and-forget; there is no way to extend
// an entry's lifetime short of re-putting it.
type Store struct {
	mu       sync.Mutex
	ttl      time.Duration
	seq      uint64
	entries  map[string]entry
	schedule Scheduler
}

type entry struct {
	doc document.Document
	seq uint64
}

// Option configures a Store.
type Option func(*Store)

// WithScheduler replaces the eviction scheduler. Tests use this to drive
// eviction from a fake clock instead of waiting on real timers.
func WithScheduler(s Scheduler) Option {
	return func(st *Store) { st.schedule = s }
}

// New creates a store whose entries live for ttl after each Put.
func New(ttl time.Duration, opts ...Option) *Store {
	s := &Store{
		ttl:     ttl,
		entries: make(map[string]entry),
		schedule: func(d time.Duration, fn func()) {
			time.AfterFunc(d, fn)
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Put inserts or overwrites the mapping for id and schedules its eviction
// one full TTL from now. Overwriting supersedes the previous entry: the
// older pending timer still fires but only removes the entry it scheduled,
// so the newer entry survives until its own deadline.
func (s *Store) Put(id string, doc document.Document) {
	s.mu.Lock()
	s.seq++
	seq := s.seq
	s.entries[id] = entry{doc: doc, seq: seq}
	s.mu.Unlock()

	s.schedule(s.ttl, func() { s.evict(id, seq) })
}

// Get looks up the document stored under id. Reads do not extend the
// retention window and do not remove the entry.
func (s *Store) Get(id string) (document.Document, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[id]
	if !ok {
		return document.Document{}, false
	}
	return e.doc, true
}

// Len reports the number of live entries.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// evict removes the entry scheduled under seq. A no-op when the entry was
// already removed or overwritten by a later Put.
func (s *Store) evict(id string, seq uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.entries[id]; ok && e.seq == seq {
		delete(s.entries, id)
	}
}
