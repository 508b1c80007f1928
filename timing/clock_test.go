package timing

import (
	"testing"
	"time"
)

func TestManualClock(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := NewManualClock(start)

	if !clock.Now().Equal(start) {
		t.Errorf("Expected initial time %v, got %v", start, clock.Now())
	}

	if got := clock.Advance(90 * time.Second); !got.Equal(start.Add(90 * time.Second)) {
		t.Errorf("Expected Advance to return new reading, got %v", got)
	}
	if elapsed := Since(clock, start); elapsed != 90*time.Second {
		t.Errorf("Expected 90s elapsed, got %v", elapsed)
	}

	later := start.Add(time.Hour)
	clock.Set(later)
	if !clock.Now().Equal(later) {
		t.Errorf("Expected %v after Set, got %v", later, clock.Now())
	}
}

func TestSystemClockNonDecreasing(t *testing.T) {
	var c Clock = SystemClock{}
	t1 := c.Now()
	t2 := c.Now()
	if t2.Before(t1) {
		t.Errorf("Expected t2 not before t1, got t1=%v, t2=%v", t1, t2)
	}
}
