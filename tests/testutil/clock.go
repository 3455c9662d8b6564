package testutil

import (
	"time"

	"github.com/light-bringer/catalog-lifecycle/internal/pkg/clock"
)

// NewFixedClock creates a mock clock frozen at the given time.
func NewFixedClock(t time.Time) clock.Clock {
	return clock.NewMockClock(t)
}

// NewMockClock creates a controllable mock clock starting at the current
// time.
func NewMockClock() *clock.MockClock {
	return clock.NewMockClock(time.Now().UTC())
}
