package engine

import (
	"sync"
	"time"
)

// TimeProvider supplies the current time
type TimeProvider interface {
	Now() time.Time
}

// SystemClock reads the monotonic wall clock
type SystemClock struct{}

// Now returns time.Now
func (SystemClock) Now() time.Time {
	return time.Now()
}

// FrameTimer turns successive clock readings into per-tick elapsed durations
type FrameTimer struct {
	clock TimeProvider
	last  time.Time
}

// NewFrameTimer starts timing from the clock's current reading
func NewFrameTimer(clock TimeProvider) *FrameTimer {
	return &FrameTimer{clock: clock, last: clock.Now()}
}

// Elapsed returns the time since the previous call and restarts the interval
// A clock that moves backwards yields zero rather than a negative duration
func (f *FrameTimer) Elapsed() time.Duration {
	now := f.clock.Now()
	d := now.Sub(f.last)
	f.last = now
	if d < 0 {
		return 0
	}
	return d
}

// MockClock is a manually advanced TimeProvider for tests and replays
type MockClock struct {
	mu  sync.RWMutex
	now time.Time
}

// NewMockClock creates a mock clock reading start
func NewMockClock(start time.Time) *MockClock {
	return &MockClock{now: start}
}

// Now returns the mocked time
func (m *MockClock) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

// Set jumps the clock to t
func (m *MockClock) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = t
}

// Advance moves the clock forward by d
func (m *MockClock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}
