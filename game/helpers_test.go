package game

import (
	"testing"
	"time"

	"github.com/lixenwraith/hyperspace/config"
	"github.com/lixenwraith/hyperspace/events"
	"github.com/lixenwraith/hyperspace/vmath"
)

// straightPath runs along +Z; waves land far ahead of the player so only placed entities collide
type straightPath struct{}

func (straightPath) SampleAt(p float64) vmath.Vec3F {
	return vmath.Vec3F{Z: vmath.Wrap01(p) * 1000}
}

var t0 = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestSession(t *testing.T) (*Session, *events.EventQueue) {
	t.Helper()
	q := events.NewEventQueue()
	s := NewSession(config.Default(), straightPath{}, q, 42)
	s.Start(t0)
	return s, q
}

func drain(q *events.EventQueue) []events.GameEvent {
	return q.Consume(nil)
}

func countType(evs []events.GameEvent, t events.EventType) int {
	n := 0
	for _, ev := range evs {
		if ev.Type == t {
			n++
		}
	}
	return n
}

// ms returns t0 plus n milliseconds
func ms(n int) time.Time {
	return t0.Add(time.Duration(n) * time.Millisecond)
}
