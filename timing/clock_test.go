package timing

import (
	"testing"
	"time"
)

func TestMonotonicClock(t *testing.T) {
	c := NewMonotonicClock()

	t1 := c.Now()
	time.Sleep(5 * time.Millisecond)
	t2 := c.Now()

	if !t2.After(t1) {
		t.Errorf("Expected t2 to be after t1, got t1=%v t2=%v", t1, t2)
	}
}

func TestManualClock(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewManualClock(start)

	if !c.Now().Equal(start) {
		t.Fatalf("Now() = %v, want %v", c.Now(), start)
	}

	c.Advance(time.Second / 60)
	c.Advance(2 * time.Second)
	want := start.Add(time.Second/60 + 2*time.Second)
	if !c.Now().Equal(want) {
		t.Fatalf("Now() after Advance = %v, want %v", c.Now(), want)
	}

	later := start.Add(time.Hour)
	c.Set(later)
	if !c.Now().Equal(later) {
		t.Fatalf("Now() after Set = %v, want %v", c.Now(), later)
	}
}
