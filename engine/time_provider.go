package engine

import "time"

// TimeProvider is a source of wall time
// The loop reads real time through it so tests can drive frames deterministically
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider returns time.Now, which carries a monotonic clock reading
// Used for real-time concerns (frame cap, input hold, effects) that keep running during pause
type MonotonicTimeProvider struct{}

func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}
