package utils

import (
	"sync"
	"time"
)

// Clock supplies the current time to the store.
type Clock interface {
	Now() time.Time
}

// MonotonicClock returns UTC wall-clock time truncated to microseconds that
// never goes backwards within the process: if the system clock steps back,
// the last returned instant is repeated until real time catches up.
//
// Microsecond precision matches what both SQLite and Postgres round-trip.
type MonotonicClock struct {
	mu   sync.Mutex
	last time.Time
	now  func() time.Time
}

func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{now: time.Now}
}

func (c *MonotonicClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := c.now().UTC().Truncate(time.Microsecond)
	if t.Before(c.last) {
		return c.last
	}
	c.last = t
	return t
}
