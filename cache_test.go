package bpe

import "testing"

func TestCacheGetMiss(t *testing.T) {
	c := NewCache(4)
	if _, ok := c.Get("nope"); ok {
		t.Fatal("expected miss on empty cache")
	}
}

func TestCacheSetAndGet(t *testing.T) {
	c := NewCache(4)
	w := NewWord(1)
	w.Add(7, 1)

	c.Set("x", w)
	got, ok := c.Get("x")
	if !ok {
		t.Fatal("expected hit after Set")
	}
	if got != w {
		t.Fatal("Get returned a different *Word than was Set")
	}
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := NewCache(2)
	a, b, z := NewWord(0), NewWord(0), NewWord(0)

	c.Set("a", a)
	c.Set("b", b)
	c.Get("a") // touch a, making b the least recently used
	c.Set("z", z)

	if _, ok := c.Get("b"); ok {
		t.Fatal("expected b to be evicted as least recently used")
	}
	if _, ok := c.Get("a"); !ok {
		t.Fatal("expected a to survive eviction")
	}
	if _, ok := c.Get("z"); !ok {
		t.Fatal("expected z to be present")
	}
}

func TestCacheClear(t *testing.T) {
	c := NewCache(4)
	c.Set("a", NewWord(0))
	c.Clear()
	if _, ok := c.Get("a"); ok {
		t.Fatal("expected cache to be empty after Clear")
	}
}

func TestCacheResizeShrinksImmediately(t *testing.T) {
	c := NewCache(4)
	c.Set("a", NewWord(0))
	c.Set("b", NewWord(0))
	c.Set("c", NewWord(0))

	c.Resize(1)
	if _, ok := c.Get("a"); ok {
		t.Fatal("expected a to be evicted after shrinking capacity to 1")
	}
	if _, ok := c.Get("c"); !ok {
		t.Fatal("expected most recently set entry c to survive")
	}
}

func TestCacheNonPositiveCapacityDefaults(t *testing.T) {
	c := NewCache(0)
	if c.capacity != DefaultCacheCapacity {
		t.Fatalf("capacity = %d, want %d", c.capacity, DefaultCacheCapacity)
	}
}

func TestCacheFreshIsIndependentAndEmpty(t *testing.T) {
	c := NewCache(4)
	c.Set("a", NewWord(0))

	fresh := c.Fresh()
	if _, ok := fresh.Get("a"); ok {
		t.Fatal("expected Fresh cache to start empty")
	}
	fresh.Set("b", NewWord(0))
	if _, ok := c.Get("b"); ok {
		t.Fatal("expected Fresh cache to be independent of its source")
	}
}

func TestCacheConcurrentAccess(t *testing.T) {
	c := NewCache(16)
	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func(n int) {
			defer func() { done <- struct{}{} }()
			key := string(rune('a' + n%8))
			c.Set(key, NewWord(0))
			c.Get(key)
		}(i)
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
