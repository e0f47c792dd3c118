// Reelrank - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelrank

package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestLRUBasicOperations(t *testing.T) {
	c := NewLRU(3, time.Minute)

	c.Add("a", 1)
	c.Add("b", 2)
	c.Add("c", 3)

	v, found := c.Get("b")
	if !found {
		t.Fatal("expected to find key 'b'")
	}
	if v.(int) != 2 {
		t.Errorf("expected value 2 for 'b', got %v", v)
	}

	if c.Len() != 3 {
		t.Errorf("expected len 3, got %d", c.Len())
	}

	if _, found := c.Get("missing"); found {
		t.Error("did not expect to find key 'missing'")
	}
}

func TestLRUEvictsLeastRecentlyUsed(t *testing.T) {
	c := NewLRU(3, time.Minute)

	c.Add("a", 1)
	c.Add("b", 2)
	c.Add("c", 3)

	// Touch 'a' so 'b' becomes the eviction candidate.
	c.Get("a")

	c.Add("d", 4)

	if _, found := c.Get("b"); found {
		t.Error("expected 'b' to be evicted")
	}
	for _, key := range []string{"a", "c", "d"} {
		if _, found := c.Get(key); !found {
			t.Errorf("expected %q to be present", key)
		}
	}
}

func TestLRUUpdateMovesToFront(t *testing.T) {
	c := NewLRU(2, time.Minute)

	c.Add("a", 1)
	c.Add("b", 2)
	c.Add("a", 10)
	c.Add("c", 3)

	if _, found := c.Get("b"); found {
		t.Error("expected 'b' to be evicted after 'a' was updated")
	}
	v, found := c.Get("a")
	if !found {
		t.Fatal("expected 'a' to be present")
	}
	if v.(int) != 10 {
		t.Errorf("expected updated value 10, got %v", v)
	}
}

func TestLRUTTLExpiration(t *testing.T) {
	c := NewLRU(10, 50*time.Millisecond)

	c.Add("a", 1)
	if _, found := c.Get("a"); !found {
		t.Fatal("expected to find 'a' immediately")
	}

	time.Sleep(60 * time.Millisecond)

	if _, found := c.Get("a"); found {
		t.Error("expected 'a' to expire")
	}
	if c.Len() != 0 {
		t.Errorf("expected expired entry to be removed, len %d", c.Len())
	}
}

func TestLRURemove(t *testing.T) {
	c := NewLRU(10, time.Minute)

	c.Add("a", 1)
	if !c.Remove("a") {
		t.Error("expected Remove to report the entry present")
	}
	if c.Remove("a") {
		t.Error("expected second Remove to report absence")
	}
	if _, found := c.Get("a"); found {
		t.Error("expected 'a' to be gone")
	}
}

func TestLRUClear(t *testing.T) {
	c := NewLRU(10, time.Minute)

	c.Add("a", 1)
	c.Add("b", 2)
	c.Clear()

	if c.Len() != 0 {
		t.Errorf("expected empty cache after Clear, len %d", c.Len())
	}
	if _, found := c.Get("a"); found {
		t.Error("expected 'a' to be gone after Clear")
	}

	// The cache remains usable.
	c.Add("c", 3)
	if _, found := c.Get("c"); !found {
		t.Error("expected 'c' to be present after Clear")
	}
}

func TestLRUStats(t *testing.T) {
	c := NewLRU(10, time.Minute)

	c.Add("a", 1)
	c.Get("a")
	c.Get("a")
	c.Get("missing")

	hits, misses, size := c.Stats()
	if hits != 2 {
		t.Errorf("expected 2 hits, got %d", hits)
	}
	if misses != 1 {
		t.Errorf("expected 1 miss, got %d", misses)
	}
	if size != 1 {
		t.Errorf("expected size 1, got %d", size)
	}
}

func TestLRUDefaults(t *testing.T) {
	c := NewLRU(0, 0)

	if c.capacity != 1024 {
		t.Errorf("expected default capacity 1024, got %d", c.capacity)
	}
	if c.ttl != 5*time.Minute {
		t.Errorf("expected default ttl 5m, got %v", c.ttl)
	}
}

func TestLRUConcurrentAccess(t *testing.T) {
	c := NewLRU(100, time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				key := fmt.Sprintf("key-%d", j%20)
				c.Add(key, n*100+j)
				c.Get(key)
			}
		}(i)
	}
	wg.Wait()

	if c.Len() > 100 {
		t.Errorf("cache exceeded capacity: %d", c.Len())
	}
}
