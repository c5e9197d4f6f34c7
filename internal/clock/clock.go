// Package clock schedules fixed-timestep simulation ticks against wall-clock
// frames.
package clock

import "time"

const (
	DefaultIntervalMs = 500
	DefaultMaxCatchUp = 10
)

// Clock decides how many simulation ticks are due on each rendered frame. It
// holds no reference to the simulation; callers apply the returned count.
type Clock struct {
	next       int64
	interval   int64
	maxCatchUp int
	saturated  int64
}

// New returns a clock whose first tick becomes due after startMs.
func New(startMs, intervalMs int64, maxCatchUp int) *Clock {
	if intervalMs <= 0 {
		intervalMs = DefaultIntervalMs
	}
	if maxCatchUp < 1 {
		maxCatchUp = DefaultMaxCatchUp
	}
	return &Clock{next: startMs, interval: intervalMs, maxCatchUp: maxCatchUp}
}

func Default(startMs int64) *Clock {
	return New(startMs, DefaultIntervalMs, DefaultMaxCatchUp)
}

// Advance returns the number of ticks due at nowMs, at most maxCatchUp. Time
// owed beyond the cap is left unpaid rather than replayed in a burst.
func (c *Clock) Advance(nowMs int64) int {
	ticks := 0
	for nowMs > c.next && ticks < c.maxCatchUp {
		ticks++
		c.next += c.interval
	}
	if ticks == c.maxCatchUp && nowMs > c.next {
		c.saturated++
	}
	return ticks
}

func (c *Clock) AdvanceTime(t time.Time) int { return c.Advance(t.UnixMilli()) }

// Reset makes the next tick due at nowMs, discarding any backlog.
func (c *Clock) Reset(nowMs int64) { c.next = nowMs }

func (c *Clock) Next() int64     { return c.next }
func (c *Clock) Interval() int64 { return c.interval }
func (c *Clock) MaxCatchUp() int { return c.maxCatchUp }

// Saturated counts the calls to Advance that hit the catch-up cap with time
// still owed.
func (c *Clock) Saturated() int64 { return c.saturated }

// Rate returns the logical tick rate in ticks per second.
func (c *Clock) Rate() float64 { return 1000 / float64(c.interval) }
