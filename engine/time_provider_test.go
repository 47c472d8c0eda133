package engine

import (
	"sync"
	"testing"
	"time"
)

var (
	_ TimeProvider = (*MonotonicTimeProvider)(nil)
	_ TimeProvider = (*MockTimeProvider)(nil)
)

func TestMonotonicTimeProviderAdvances(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	before := provider.Now()
	time.Sleep(5 * time.Millisecond)
	if elapsed := provider.Now().Sub(before); elapsed < 5*time.Millisecond {
		t.Errorf("Expected at least 5ms elapsed, got %v", elapsed)
	}
}

func TestMockTimeProviderSteps(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)

	if !mock.Now().Equal(start) {
		t.Errorf("Expected %v, got %v", start, mock.Now())
	}

	// Advance reports the new time so driver tests can feed it straight to Frame
	frame := mock.Advance(16 * time.Millisecond)
	if want := start.Add(16 * time.Millisecond); !frame.Equal(want) || !mock.Now().Equal(want) {
		t.Errorf("Expected %v after one frame, got %v", want, frame)
	}

	jump := start.Add(time.Hour)
	mock.SetTime(jump)
	if !mock.Now().Equal(jump) {
		t.Errorf("Expected %v after SetTime, got %v", jump, mock.Now())
	}
}

func TestMockTimeProviderConcurrentAdvance(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				mock.Advance(time.Millisecond)
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				_ = mock.Now()
			}
		}()
	}
	wg.Wait()

	if got := mock.Now().Sub(start); got != 100*time.Millisecond {
		t.Errorf("Expected 100ms total advance, got %v", got)
	}
}
