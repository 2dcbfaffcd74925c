// Package clock abstracts time so build reports can be tested deterministically.
package clock

import (
	"sync"
	"time"
)

// Clock supplies timestamps and elapsed durations for build reports.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// Since returns the time elapsed since start.
	Since(start time.Time) time.Duration
}

// RealClock implements Clock using the system time.
type RealClock struct{}

// Now returns the current system time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// Since returns the wall time elapsed since start.
func (RealClock) Since(start time.Time) time.Duration {
	return time.Since(start)
}

// FakeClock is a manually driven Clock. With a non-zero step every call to
// Now moves time forward by step, so each timed operation takes exactly
// step.
type FakeClock struct {
	mu      sync.Mutex
	current time.Time
	step    time.Duration
}

// NewFakeClock creates a FakeClock frozen at t.
func NewFakeClock(t time.Time) *FakeClock {
	return &FakeClock{current: t}
}

// NewSteppingClock creates a FakeClock starting at t that advances by step
// after every reading.
func NewSteppingClock(t time.Time, step time.Duration) *FakeClock {
	return &FakeClock{current: t, step: step}
}

// Now returns the current fake time and then applies the step.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.current
	c.current = c.current.Add(c.step)
	return now
}

// Since returns the fake time elapsed since start.
func (c *FakeClock) Since(start time.Time) time.Duration {
	return c.Now().Sub(start)
}

// Advance moves the fake time forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = c.current.Add(d)
}
