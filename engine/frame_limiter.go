package engine

import "time"

// FrameLimiter caps the simulation step rate
// Frames arriving sooner than Interval after the last accepted one are discarded;
// the step delta is measured between accepted frames and clamped to MaxDelta
type FrameLimiter struct {
	Interval time.Duration
	MaxDelta float64 // Seconds

	phase    time.Time // Last accepted frame, snapped back to the interval grid
	lastTick time.Time // Last accepted frame, exact
}

func NewFrameLimiter(interval time.Duration, maxDelta float64) *FrameLimiter {
	return &FrameLimiter{Interval: interval, MaxDelta: maxDelta}
}

// Accept reports whether a frame at now should tick and with which delta in seconds
// The first frame is accepted with delta 0
func (f *FrameLimiter) Accept(now time.Time) (float64, bool) {
	if f.lastTick.IsZero() {
		f.phase, f.lastTick = now, now
		return 0, true
	}

	elapsed := now.Sub(f.phase)
	if elapsed < f.Interval {
		return 0, false
	}

	// Keep the grid so a driver slightly faster than the cap doesn't drop every other frame
	if f.Interval > 0 {
		f.phase = now.Add(-(elapsed % f.Interval))
	} else {
		f.phase = now
	}

	delta := now.Sub(f.lastTick).Seconds()
	f.lastTick = now

	if delta < 0 {
		delta = 0
	}
	if delta > f.MaxDelta {
		delta = f.MaxDelta
	}
	return delta, true
}

// Reset forgets the last frame; the next Accept starts fresh with delta 0
func (f *FrameLimiter) Reset() {
	f.phase = time.Time{}
	f.lastTick = time.Time{}
}
