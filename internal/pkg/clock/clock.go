package clock

import (
	"sync"
	"time"
)

// Clock is the only source of "now" for reconciliation, so passes can be replayed at any instant.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

// Now is in UTC; schedule windows and stored timestamps are compared in UTC.
func (c *RealClock) Now() time.Time {
	return time.Now().UTC()
}

// MockClock is safe for use from the scheduler goroutine while a test moves it.
type MockClock struct {
	mu  sync.RWMutex
	now time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{now: t}
}

func (c *MockClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now
}

func (c *MockClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

func (c *MockClock) Add(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
