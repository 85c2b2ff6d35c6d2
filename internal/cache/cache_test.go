package cache

import (
	"testing"
	"time"
)

func TestGetSet(t *testing.T) {
	c := NewLRUCache[string](10, time.Minute)

	if _, found := c.Get("missing"); found {
		t.Fatal("empty cache should miss")
	}

	c.Set("a", "1")
	v, found := c.Get("a")
	if !found || v != "1" {
		t.Fatalf("got %q found=%v", v, found)
	}

	c.Set("a", "2")
	if v, _ := c.Get("a"); v != "2" {
		t.Fatalf("overwrite lost: %q", v)
	}
	if c.Size() != 1 {
		t.Fatalf("size = %d, want 1", c.Size())
	}
}

func TestTTLExpiry(t *testing.T) {
	c := NewLRUCache[int](10, 10*time.Millisecond)
	c.Set("a", 1)
	time.Sleep(20 * time.Millisecond)
	if _, found := c.Get("a"); found {
		t.Fatal("expired entry should miss")
	}
}

func TestLRUEviction(t *testing.T) {
	c := NewLRUCache[int](2, time.Minute)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Get("a") // refresh a
	c.Set("c", 3)

	if _, found := c.Get("b"); found {
		t.Fatal("least recently used entry should be evicted")
	}
	for _, key := range []string{"a", "c"} {
		if _, found := c.Get(key); !found {
			t.Fatalf("%s should survive eviction", key)
		}
	}
}

func TestDelete(t *testing.T) {
	c := NewLRUCache[int](10, time.Minute)
	c.Set("heatmap:1670", 1)
	c.Set("chart:years", 3)

	c.Delete("heatmap:1670")
	if _, found := c.Get("heatmap:1670"); found {
		t.Fatal("deleted entry survived")
	}
	if _, found := c.Get("chart:years"); !found {
		t.Fatal("unrelated entry dropped")
	}
}

func TestCleanExpired(t *testing.T) {
	c := NewLRUCache[int](10, 10*time.Millisecond)
	c.Set("a", 1)
	c.Set("b", 2)
	time.Sleep(20 * time.Millisecond)
	if n := c.CleanExpired(); n != 2 {
		t.Fatalf("cleaned %d entries, want 2", n)
	}
	if c.Size() != 0 {
		t.Fatalf("size = %d after cleanup", c.Size())
	}
}

func TestManagerStop(t *testing.T) {
	m := NewManager()
	m.Register(NewLRUCache[int](10, time.Minute))
	m.StartCleanup(time.Millisecond)
	time.Sleep(5 * time.Millisecond)
	m.Stop() // must not hang or panic
}
