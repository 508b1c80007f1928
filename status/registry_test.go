package status

import (
	"sync"
	"testing"
)

func TestRegistryLines(t *testing.T) {
	r := NewRegistry()
	r.Add("cache.hits", 3)
	r.Add("cache.hits", 2)
	r.Add("cache.misses", 1)
	r.SetGauge("cache.hit_ratio", 0.5)
	r.SetLabel("projection.mode", "top_down")

	expected := []string{
		"cache.hits=5",
		"cache.misses=1",
		"cache.hit_ratio=0.500",
		"projection.mode=top_down",
	}
	lines := r.Lines()
	if len(lines) != len(expected) {
		t.Fatalf("Expected %d lines, got %d: %v", len(expected), len(lines), lines)
	}
	for i := range expected {
		if lines[i] != expected[i] {
			t.Errorf("Line %d: expected %q, got %q", i, expected[i], lines[i])
		}
	}
	if r.TotalCount() != 4 {
		t.Errorf("Expected 4 metrics, got %d", r.TotalCount())
	}
}

func TestMetricMapReturnsStablePointer(t *testing.T) {
	m := NewMetricMap[AtomicFloat]()
	a := m.Get("x")
	b := m.Get("x")
	if a != b {
		t.Error("Expected same pointer for repeated Get")
	}
	if !m.Has("x") || m.Has("y") {
		t.Error("Expected Has to reflect registered keys")
	}
}

func TestLabelTruncation(t *testing.T) {
	var s AtomicString
	long := "abcdefghijklmnopqrstuvwxyz0123456789"
	s.Store(long)
	if got := s.Load(); got != long[:MaxLabelLen] {
		t.Errorf("Expected truncated label, got %q", got)
	}
}

func TestConcurrentCounters(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				r.Add("n", 1)
			}
		}()
	}
	wg.Wait()
	if got := r.Counters.Get("n").Load(); got != 8000 {
		t.Errorf("Expected 8000, got %d", got)
	}
}
