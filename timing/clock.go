package timing

import (
	"sync"
	"time"
)

// Clock supplies the frame time. Systems sample it once per frame and share
// the result, so cooldown comparisons within a frame never drift.
type Clock interface {
	Now() time.Time
}

// MonotonicClock reads the wall clock. time.Now carries a monotonic reading,
// so differences between samples are immune to clock adjustments.
type MonotonicClock struct{}

// NewMonotonicClock creates a wall-clock time source.
func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{}
}

func (c *MonotonicClock) Now() time.Time {
	return time.Now()
}

// ManualClock only moves when told to. Used by tests and replays.
type ManualClock struct {
	mu  sync.RWMutex
	now time.Time
}

// NewManualClock creates a clock frozen at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

func (c *ManualClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Set jumps the clock to t.
func (c *ManualClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}
