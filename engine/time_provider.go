package engine

import "time"

// TimeProvider is the monotonic clock hosts stamp frame callbacks with
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider provides the real system time with monotonic clock readings
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a new monotonic time provider
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time; time.Now carries a monotonic reading
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}
