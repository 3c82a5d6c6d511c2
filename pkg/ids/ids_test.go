package ids

import (
	"sync"
	"testing"

	"github.com/google/uuid"
)

func TestCounter(t *testing.T) {
	c := NewCounter("")
	for _, want := range []string{"tile-1", "tile-2", "tile-3"} {
		if got := c.Next(); got != want {
			t.Errorf("Next() = %q, want %q", got, want)
		}
	}

	g := NewCounter("g")
	if got := g.Next(); got != "g1" {
		t.Errorf("Next() = %q, want g1", got)
	}
}

func TestCounterConcurrent(t *testing.T) {
	c := NewCounter("")
	const n = 100

	var (
		mu   sync.Mutex
		seen = make(map[string]bool, n)
		wg   sync.WaitGroup
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := c.Next()
			mu.Lock()
			seen[id] = true
			mu.Unlock()
		}()
	}
	wg.Wait()

	if len(seen) != n {
		t.Errorf("got %d unique ids, want %d", len(seen), n)
	}
}

func TestUUID(t *testing.T) {
	g := NewUUID()
	a, b := g.Next(), g.Next()
	if a == b {
		t.Error("two UUIDs are equal")
	}
	if _, err := uuid.Parse(a); err != nil {
		t.Errorf("uuid.Parse(%q) error = %v", a, err)
	}
}

func TestFunc(t *testing.T) {
	var g Generator = Func(func() string { return "fixed" })
	if got := g.Next(); got != "fixed" {
		t.Errorf("Next() = %q, want fixed", got)
	}
}
