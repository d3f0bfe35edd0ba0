package store

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvesperini/abntdoc/internal/document"
)

// fakeClock collects scheduled evictions and runs them when advanced past
// their deadlines, replacing real timers in tests.
type fakeClock struct {
	mu    sync.Mutex
	now   time.Duration
	tasks []fakeTask
}

type fakeTask struct {
	deadline time.Duration
	fn       func()
}

func (c *fakeClock) AfterFunc(d time.Duration, fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tasks = append(c.tasks, fakeTask{deadline: c.now + d, fn: fn})
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now += d
	var due, pending []fakeTask
	for _, t := range c.tasks {
		if t.deadline <= c.now {
			due = append(due, t)
		} else {
			pending = append(pending, t)
		}
	}
	c.tasks = pending
	c.mu.Unlock()

	for _, t := range due {
		t.fn()
	}
}

func newTestStore(t *testing.T) (*Store, *fakeClock) {
	t.Helper()
	clock := &fakeClock{}
	return New(24*time.Hour, WithScheduler(clock.AfterFunc)), clock
}

func doc(title string) document.Document {
	return document.Document{
		Title:    title,
		Author:   "A",
		Sections: []document.Section{{Title: "S", Content: "x"}},
	}
}

func TestPutThenGet(t *testing.T) {
	s, _ := newTestStore(t)

	s.Put("abc123", doc("Estudo X"))

	got, ok := s.Get("abc123")
	require.True(t, ok)
	assert.Equal(t, "Estudo X", got.Title)
}

func TestGetUnknownID(t *testing.T) {
	s, _ := newTestStore(t)

	_, ok := s.Get("missing")
	assert.False(t, ok)
}

func TestEntryEvictedAfterTTL(t *testing.T) {
	s, clock := newTestStore(t)
	s.Put("abc123", doc("Estudo X"))

	// Still retrievable at any point strictly before the window elapses.
	clock.Advance(24*time.Hour - time.Second)
	_, ok := s.Get("abc123")
	require.True(t, ok, "entry evicted before the retention window elapsed")

	clock.Advance(time.Second)
	_, ok = s.Get("abc123")
	assert.False(t, ok, "entry still live after the retention window elapsed")
}

func TestGetDoesNotExtendWindow(t *testing.T) {
	s, clock := newTestStore(t)
	s.Put("abc123", doc("Estudo X"))

	clock.Advance(23 * time.Hour)
	_, ok := s.Get("abc123")
	require.True(t, ok)

	// The read above must not have reset the 24h window.
	clock.Advance(time.Hour)
	_, ok = s.Get("abc123")
	assert.False(t, ok)
}

func TestOverwriteSurvivesOlderTimer(t *testing.T) {
	s, clock := newTestStore(t)

	s.Put("abc123", doc("primeira"))
	clock.Advance(1 * time.Hour)
	s.Put("abc123", doc("segunda"))

	// The first entry's timer fires at the 24h mark; the overwritten entry
	// must survive it.
	clock.Advance(23 * time.Hour)
	got, ok := s.Get("abc123")
	require.True(t, ok, "overwritten entry removed by the superseded timer")
	assert.Equal(t, "segunda", got.Title)

	// It dies at its own 25h deadline.
	clock.Advance(1 * time.Hour)
	_, ok = s.Get("abc123")
	assert.False(t, ok)
}

func TestEvictIsNoOpForRemovedEntry(t *testing.T) {
	s, clock := newTestStore(t)

	s.Put("a", doc("um"))
	s.Put("b", doc("dois"))
	clock.Advance(25 * time.Hour)

	// Both timers fired against an already-empty map without panicking.
	assert.Equal(t, 0, s.Len())
	clock.Advance(25 * time.Hour)
	assert.Equal(t, 0, s.Len())
}

func TestConcurrentAccess(t *testing.T) {
	s := New(24 * time.Hour)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := string(rune('a' + n%8))
			for j := 0; j < 100; j++ {
				s.Put(id, doc("t"))
				s.Get(id)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 8, s.Len())
}
