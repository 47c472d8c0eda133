// Package status is a small registry of runtime metrics written by the loop and read by the HUD.
package status

import (
	"fmt"
	"sync/atomic"
)

// Metric keys written by the engine and the spectator hub
const (
	LoopTicks         = "loop.ticks"
	LoopFramesSkipped = "loop.frames_skipped"
	LoopDeltaMs       = "loop.delta_ms"
	EventsDropped     = "events.dropped"
	EventsDispatched  = "events.dispatched"
	SpectateViewers   = "spectate.viewers"
	SpectateDropped   = "spectate.dropped"
	GameBoostPhase    = "game.boost"
	GameRunID         = "game.run_id"
)

// Registry is the central metrics facade
// Writers cache pointers once; per-frame writes go straight to the atomics
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Lines renders every metric as "key=value", ints first, then floats, then strings
func (r *Registry) Lines() []string {
	lines := make([]string, 0, r.TotalCount())
	r.Ints.Range(func(key string, v *atomic.Int64) {
		lines = append(lines, fmt.Sprintf("%s=%d", key, v.Load()))
	})
	r.Floats.Range(func(key string, v *AtomicFloat) {
		lines = append(lines, fmt.Sprintf("%s=%.2f", key, v.Get()))
	})
	r.Strings.Range(func(key string, v *AtomicString) {
		lines = append(lines, fmt.Sprintf("%s=%s", key, v.Load()))
	})
	return lines
}
