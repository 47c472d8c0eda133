package engine

import (
	"math"
	"testing"
	"time"
)

func TestFrameLimiterDiscardsEarlyFrames(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	fl := NewFrameLimiter(16*time.Millisecond, 0.1)

	if d, ok := fl.Accept(start); !ok || d != 0 {
		t.Fatalf("Expected first frame accepted with delta 0, got %v %v", d, ok)
	}

	if _, ok := fl.Accept(start.Add(8 * time.Millisecond)); ok {
		t.Errorf("Expected frame at 8ms discarded")
	}

	d, ok := fl.Accept(start.Add(16 * time.Millisecond))
	if !ok {
		t.Fatalf("Expected frame at 16ms accepted")
	}
	if math.Abs(d-0.016) > 1e-9 {
		t.Errorf("Expected delta 0.016, got %v", d)
	}
}

func TestFrameLimiterClampsDelta(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	fl := NewFrameLimiter(16*time.Millisecond, 0.1)
	fl.Accept(start)

	d, ok := fl.Accept(start.Add(3 * time.Second))
	if !ok || d != 0.1 {
		t.Errorf("Expected stall clamped to 0.1, got %v %v", d, ok)
	}
}

func TestFrameLimiterBoundsRate(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	fl := NewFrameLimiter(time.Second/60, 0.1)

	// A 240 Hz driver for one second
	accepted := 0
	for i := 0; i <= 240; i++ {
		if _, ok := fl.Accept(start.Add(time.Duration(i) * time.Second / 240)); ok {
			accepted++
		}
	}
	if accepted < 59 || accepted > 61 {
		t.Errorf("Expected ~60 accepted frames, got %d", accepted)
	}
}

func TestFrameLimiterReset(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	fl := NewFrameLimiter(16*time.Millisecond, 0.1)
	fl.Accept(start)
	fl.Reset()

	if d, ok := fl.Accept(start.Add(time.Millisecond)); !ok || d != 0 {
		t.Errorf("Expected fresh first frame after Reset, got %v %v", d, ok)
	}
}
