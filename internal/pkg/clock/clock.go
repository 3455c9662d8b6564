package clock

import "time"

// Clock abstracts time access so lifecycle timestamps can be controlled
// in tests. The restore proximity window makes timestamp arithmetic part
// of the business rules, so no component reads time.Now directly.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system clock.
type RealClock struct{}

// NewRealClock creates the production Clock.
func NewRealClock() Clock {
	return &RealClock{}
}

// Now returns the current system time in UTC.
func (c *RealClock) Now() time.Time {
	return time.Now().UTC()
}

// MockClock is a controllable Clock for tests.
type MockClock struct {
	current time.Time
}

// NewMockClock creates a MockClock frozen at startTime.
func NewMockClock(startTime time.Time) *MockClock {
	return &MockClock{current: startTime}
}

// Now returns the frozen time.
func (m *MockClock) Now() time.Time {
	return m.current
}

// Set moves the clock to t.
func (m *MockClock) Set(t time.Time) {
	m.current = t
}

// Advance moves the clock forward by d. Negative durations move it back.
func (m *MockClock) Advance(d time.Duration) {
	m.current = m.current.Add(d)
}
