package engine

import (
	"sync"
	"time"
)

// PausableClock provides game time that stands still while paused
// Boost and invulnerability deadlines are measured on it, so a pause never burns a window
type PausableClock struct {
	mu sync.RWMutex

	real TimeProvider

	start           time.Time     // Real time at creation; game time starts here too
	paused          bool          // Current pause state
	pauseStart      time.Time     // Real time the current pause began
	totalPausedTime time.Duration // Cumulative completed pauses
}

// NewPausableClock creates a running clock over real; nil uses the monotonic provider
func NewPausableClock(real TimeProvider) *PausableClock {
	if real == nil {
		real = NewMonotonicTimeProvider()
	}
	return &PausableClock{
		real:  real,
		start: real.Now(),
	}
}

// Now returns current game time: real elapsed minus paused time
func (pc *PausableClock) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	at := pc.real.Now()
	if pc.paused {
		// Frozen at the pause point
		at = pc.pauseStart
	}
	return pc.start.Add(at.Sub(pc.start) - pc.totalPausedTime)
}

// RealTime returns the underlying provider's time, unaffected by pause
func (pc *PausableClock) RealTime() time.Time {
	return pc.real.Now()
}

// Pause stops game time; no-op when already paused
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.paused {
		return
	}
	pc.paused = true
	pc.pauseStart = pc.real.Now()
}

// Resume continues game time; no-op when running
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if !pc.paused {
		return
	}
	pc.totalPausedTime += pc.real.Now().Sub(pc.pauseStart)
	pc.paused = false
	pc.pauseStart = time.Time{}
}

func (pc *PausableClock) IsPaused() bool {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.paused
}

// TotalPauseDuration returns cumulative pause time including the current pause
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPausedTime
	if pc.paused {
		total += pc.real.Now().Sub(pc.pauseStart)
	}
	return total
}
