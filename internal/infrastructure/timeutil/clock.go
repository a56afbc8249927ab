// Package timeutil provides clock and calendar-key helpers.
package timeutil

import (
	"sync"
	"time"
)

// Clock abstracts time.Now so operation timestamps are testable.
type Clock interface {
	Now() time.Time
}

// RealClock uses the system time.
type RealClock struct{}

// NewRealClock creates a RealClock.
func NewRealClock() *RealClock {
	return &RealClock{}
}

// Now returns the current system time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// MockClock is a manually advanced clock. It is safe for concurrent use
// because operations read it from their own goroutines.
type MockClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewMockClock creates a mock clock fixed at t.
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{now: t}
}

// NewMockClockFromString creates a mock clock from an RFC3339 string.
// It panics on malformed input and is meant for tests.
func NewMockClockFromString(value string) *MockClock {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic("invalid time string: " + err.Error())
	}
	return NewMockClock(t)
}

// Now returns the current mock time.
func (m *MockClock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Set moves the clock to t.
func (m *MockClock) Set(t time.Time) {
	m.mu.Lock()
	m.now = t
	m.mu.Unlock()
}

// Advance moves the clock forward by d.
func (m *MockClock) Advance(d time.Duration) {
	m.mu.Lock()
	m.now = m.now.Add(d)
	m.mu.Unlock()
}

var (
	_ Clock = (*RealClock)(nil)
	_ Clock = (*MockClock)(nil)
)
