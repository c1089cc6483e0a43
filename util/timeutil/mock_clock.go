package timeutil

import (
	"sync"
	"time"
)

// MockClock is a Time that only moves when told to, so operation durations
// can be asserted exactly in tests.
type MockClock struct {
	now time.Time
	mu  sync.RWMutex
}

var (
	_ Time = &MockClock{}
	_ Time = RealTime{}
)

// NewMockClockAt creates a MockClock stopped at now.
func NewMockClockAt(now time.Time) *MockClock {
	return &MockClock{now: now}
}

// Advance moves the clock forward by d.
func (mc *MockClock) Advance(d time.Duration) {
	mc.mu.Lock()
	mc.now = mc.now.Add(d)
	mc.mu.Unlock()
}

func (mc *MockClock) Now() time.Time {
	mc.mu.RLock()
	defer mc.mu.RUnlock()

	return mc.now
}
