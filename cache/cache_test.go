package cache

import (
	"fmt"
	"testing"
	"time"
)

// fakeClock is a manually advanced clock so expiry is deterministic.
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestCache(clock *fakeClock, ttl time.Duration, sweepEvery int) *Cache {
	return New(Options{TTL: ttl, SweepEvery: sweepEvery, Now: clock.now})
}

func TestGetFreshEntry(t *testing.T) {
	clock := newFakeClock()
	c := newTestCache(clock, 30*time.Second, 100)

	c.Put("k", 42.5)
	clock.advance(29 * time.Second)
	got, ok := c.Get("k")
	if !ok || got != 42.5 {
		t.Fatalf("Get = %g, %v; want 42.5, true", got, ok)
	}
}

func TestGetMissingKey(t *testing.T) {
	c := newTestCache(newFakeClock(), 30*time.Second, 100)
	if _, ok := c.Get("absent"); ok {
		t.Fatalf("Get on empty cache should miss")
	}
}

func TestExpiredEntryReadsAsAbsent(t *testing.T) {
	clock := newFakeClock()
	c := newTestCache(clock, 30*time.Second, 100)

	c.Put("k", 42.5)
	clock.advance(30 * time.Second)
	if _, ok := c.Get("k"); ok {
		t.Fatalf("entry at exactly TTL age should read as absent")
	}
	// Lookup never deletes; only the sweep does.
	if c.Len() != 1 {
		t.Fatalf("expired lookup deleted the entry, Len = %d", c.Len())
	}
}

func TestPutResetsLifetime(t *testing.T) {
	clock := newFakeClock()
	c := newTestCache(clock, 30*time.Second, 100)

	c.Put("k", 1)
	clock.advance(20 * time.Second)
	c.Put("k", 2)
	clock.advance(20 * time.Second)

	got, ok := c.Get("k")
	if !ok || got != 2 {
		t.Fatalf("rewritten entry should still be fresh: got %g, %v", got, ok)
	}
}

func TestSweepOnEveryNthPut(t *testing.T) {
	clock := newFakeClock()
	c := newTestCache(clock, 30*time.Second, 3)

	c.Put("a", 1)
	c.Put("b", 2)
	clock.advance(31 * time.Second)
	if c.Len() != 2 {
		t.Fatalf("no sweep expected yet, Len = %d", c.Len())
	}

	// The third put triggers the sweep and removes both stale entries.
	c.Put("c", 3)
	if c.Len() != 1 {
		t.Fatalf("sweep should leave only the fresh entry, Len = %d", c.Len())
	}
	if _, ok := c.Get("c"); !ok {
		t.Fatalf("fresh entry lost in sweep")
	}
}

func TestSweepCounterResets(t *testing.T) {
	clock := newFakeClock()
	c := newTestCache(clock, 30*time.Second, 2)

	c.Put("a", 1)
	c.Put("b", 2) // sweep #1 (nothing stale)
	clock.advance(31 * time.Second)
	c.Put("c", 3)
	if c.Len() != 3 {
		t.Fatalf("sweep should not run after one post-reset put, Len = %d", c.Len())
	}
	c.Put("d", 4) // sweep #2 removes a and b
	if c.Len() != 2 {
		t.Fatalf("second sweep should drop the stale pair, Len = %d", c.Len())
	}
}

func TestFlush(t *testing.T) {
	c := newTestCache(newFakeClock(), 30*time.Second, 100)
	for i := 0; i < 5; i++ {
		c.Put(fmt.Sprintf("k%d", i), float64(i))
	}
	c.Flush()
	if c.Len() != 0 {
		t.Fatalf("Flush left %d entries", c.Len())
	}
	if _, ok := c.Get("k0"); ok {
		t.Fatalf("Get after Flush should miss")
	}
}

func TestZeroValueOptionsDefaults(t *testing.T) {
	c := New(Options{})
	c.Put("k", 7)
	if got, ok := c.Get("k"); !ok || got != 7 {
		t.Fatalf("default-configured cache unusable: got %g, %v", got, ok)
	}
}
