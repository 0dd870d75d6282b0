// Package clock supplies the millisecond clocks the rain reads once per frame.
package clock

import (
	"sync"
	"time"
)

// Monotonic reports milliseconds elapsed since it was created.
// time.Since uses the monotonic reading, so wall clock jumps do not leak in.
type Monotonic struct {
	start time.Time
}

// NewMonotonic creates a clock starting at zero now.
func NewMonotonic() *Monotonic {
	return &Monotonic{start: time.Now()}
}

// NowMs returns milliseconds since creation.
func (c *Monotonic) NowMs() int64 {
	return time.Since(c.start).Milliseconds()
}

// Manual is a controllable clock for tests and offline replays.
type Manual struct {
	mu  sync.RWMutex
	now int64
}

// NewManual creates a manual clock reading start.
func NewManual(start int64) *Manual {
	return &Manual{now: start}
}

// NowMs returns the current manual reading.
func (c *Manual) NowMs() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now
}

// Advance moves the clock forward by d. Negative durations are ignored so
// readings never go backwards.
func (c *Manual) Advance(d time.Duration) {
	if d <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now += d.Milliseconds()
}
