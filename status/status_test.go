package status

import (
	"strings"
	"sync"
	"testing"
)

func TestMetricMapGetReturnsCachedPointer(t *testing.T) {
	m := NewMetricMap[AtomicFloat]()
	a := m.Get("x")
	b := m.Get("x")
	if a != b {
		t.Errorf("Expected same pointer for repeated Get")
	}
	if !m.Has("x") || m.Has("y") {
		t.Errorf("Expected Has to reflect registered keys")
	}
}

func TestMetricMapRangeSorted(t *testing.T) {
	m := NewMetricMap[AtomicFloat]()
	for _, k := range []string{"loop.ticks", "events.dropped", "spectate.viewers", "a"} {
		m.Get(k)
	}

	var keys []string
	m.Range(func(key string, _ *AtomicFloat) { keys = append(keys, key) })

	want := []string{"a", "events.dropped", "loop.ticks", "spectate.viewers"}
	if strings.Join(keys, ",") != strings.Join(want, ",") {
		t.Errorf("Expected %v, got %v", want, keys)
	}
}

func TestAtomicFloatConcurrentAdd(t *testing.T) {
	var f AtomicFloat
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				f.Add(0.5)
			}
		}()
	}
	wg.Wait()

	if f.Get() != 4000 {
		t.Errorf("Expected 4000, got %v", f.Get())
	}
}

func TestAtomicStringTruncates(t *testing.T) {
	var s AtomicString
	if s.Load() != "" {
		t.Errorf("Expected empty zero value")
	}
	long := strings.Repeat("x", MaxStringLen+10)
	s.Store(long)
	if len(s.Load()) != MaxStringLen {
		t.Errorf("Expected truncation to %d, got %d", MaxStringLen, len(s.Load()))
	}
}

func TestRegistryLines(t *testing.T) {
	reg := NewRegistry()
	reg.Ints.Get(LoopTicks).Store(12)
	reg.Floats.Get(LoopDeltaMs).Set(16.5)
	reg.Strings.Get(GameBoostPhase).Store("ready")

	lines := reg.Lines()
	want := []string{"loop.ticks=12", "loop.delta_ms=16.50", "game.boost=ready"}
	if strings.Join(lines, "|") != strings.Join(want, "|") {
		t.Errorf("Expected %v, got %v", want, lines)
	}
	if reg.TotalCount() != 3 {
		t.Errorf("Expected 3 metrics, got %d", reg.TotalCount())
	}
}
