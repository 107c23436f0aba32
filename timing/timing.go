// Package timing provides the clocks that stamp action lifecycle records.
package timing

import (
	"sync"
	"time"
)

// A TimeTeller can tell the current time.
type TimeTeller interface {
	CurrentTime() time.Time
}

// WallClock tells the system time.
type WallClock struct{}

// CurrentTime returns time.Now.
func (WallClock) CurrentTime() time.Time {
	return time.Now()
}

// ManualClock is a TimeTeller whose time only moves when told to.
type ManualClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewManualClock creates a ManualClock starting at the given time.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// CurrentTime returns the time last set on the clock.
func (c *ManualClock) CurrentTime() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

// Set moves the clock to t.
func (c *ManualClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = t
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

// Millis converts a time to unix milliseconds, the unit used in records.
func Millis(t time.Time) int64 {
	return t.UnixMilli()
}
