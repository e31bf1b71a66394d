package core

import "time"

// Clock supplies timestamps to the simulation. Injected so cooldown logic
// can be tested without real delays.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns the current wall-clock time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// TickClock is a manual clock that advances only when told to.
// Used by headless runs and tests to map ticks to time deterministically.
type TickClock struct {
	now  time.Time
	step time.Duration
}

// NewTickClock creates a clock starting at start that moves step per Advance.
func NewTickClock(start time.Time, step time.Duration) *TickClock {
	return &TickClock{now: start, step: step}
}

// NewTickClockForRate creates a clock starting at the Unix epoch that advances
// one frame of the given tick rate per Advance.
func NewTickClockForRate(tickRate int) *TickClock {
	if tickRate <= 0 {
		tickRate = 60
	}
	return NewTickClock(time.Unix(0, 0), time.Second/time.Duration(tickRate))
}

// Now returns the current manual time.
func (c *TickClock) Now() time.Time {
	return c.now
}

// Advance moves the clock forward by one step.
func (c *TickClock) Advance() {
	c.now = c.now.Add(c.step)
}

// AdvanceBy moves the clock forward by d.
func (c *TickClock) AdvanceBy(d time.Duration) {
	c.now = c.now.Add(d)
}
