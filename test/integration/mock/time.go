package mock

import (
	"sync"
	"time"
)

// Clock is the planner clock used by scenarios. Pinned to an instant it stays
// there, so "the current month" cannot roll over mid-scenario; unpinned it
// follows the wall clock.
type Clock struct {
	mu     sync.RWMutex
	pinned *time.Time
}

func NewClock() *Clock {
	return &Clock{}
}

// Pin freezes the clock at at.
func (c *Clock) Pin(at time.Time) {
	at = at.UTC()
	c.mu.Lock()
	c.pinned = &at
	c.mu.Unlock()
}

// Unpin returns the clock to wall time.
func (c *Clock) Unpin() {
	c.mu.Lock()
	c.pinned = nil
	c.mu.Unlock()
}

func (c *Clock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.pinned != nil {
		return *c.pinned
	}
	return time.Now().UTC()
}
