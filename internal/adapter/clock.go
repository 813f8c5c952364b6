package adapter

import "time"

// Clock defines an interface for time operations to enable mocking
//
//go:generate mockgen -source=clock.go -destination=../mocks/clock.go -package=mocks -mock_names=Clock=MockClock
type Clock interface {
	// Now returns the current wall-clock time
	Now() time.Time

	// After waits for the duration to elapse and then sends the current time on the returned channel
	After(d time.Duration) <-chan time.Time

	// NewTicker returns a ticker firing every d
	NewTicker(d time.Duration) *time.Ticker
}

// RealClock implements Clock using the standard time package
type RealClock struct{}

// NewClock creates a new real clock implementation
func NewClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}

func (c *RealClock) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}

func (c *RealClock) NewTicker(d time.Duration) *time.Ticker {
	return time.NewTicker(d)
}
