package engine

import "time"

// TimeProvider abstracts the clock used by the loop.
// Sleep blocks the calling goroutine; the win pause is not cancellable.
type TimeProvider interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// MonotonicTimeProvider provides the real system time with monotonic clock readings
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a new monotonic time provider
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// Sleep pauses the current goroutine
func (p *MonotonicTimeProvider) Sleep(d time.Duration) {
	time.Sleep(d)
}
