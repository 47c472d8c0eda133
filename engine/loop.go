// Package engine drives the session: frame cap, clocks, input sampling, event dispatch and sinks.
package engine

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/hyperspace/events"
	"github.com/lixenwraith/hyperspace/game"
	"github.com/lixenwraith/hyperspace/input"
	"github.com/lixenwraith/hyperspace/status"
)

// Sink consumes the post-tick snapshot once per accepted frame
// Sinks read only; the snapshot is reused and must not be retained
type Sink interface {
	Present(snap *game.Snapshot)
}

// Loop runs one session tick per accepted frame on the caller's goroutine
type Loop struct {
	session *game.Session
	source  *input.Source
	clock   *PausableClock
	limiter *FrameLimiter
	queue   *events.EventQueue
	router  *events.Router[*game.Snapshot]
	sinks   []Sink

	snap game.Snapshot

	// Cached metric pointers
	statTicks      *atomic.Int64
	statSkipped    *atomic.Int64
	statDropped    *atomic.Int64
	statDispatched *atomic.Int64
	statDelta      *status.AtomicFloat
	statBoost      *status.AtomicString
	statRunID      *status.AtomicString
}

// NewLoop wires the loop; queue must be the one the session emits into
func NewLoop(
	session *game.Session,
	source *input.Source,
	clock *PausableClock,
	limiter *FrameLimiter,
	queue *events.EventQueue,
	reg *status.Registry,
) *Loop {
	if reg == nil {
		reg = status.NewRegistry()
	}
	l := &Loop{
		session:        session,
		source:         source,
		clock:          clock,
		limiter:        limiter,
		queue:          queue,
		router:         events.NewRouter[*game.Snapshot](queue),
		statTicks:      reg.Ints.Get(status.LoopTicks),
		statSkipped:    reg.Ints.Get(status.LoopFramesSkipped),
		statDropped:    reg.Ints.Get(status.EventsDropped),
		statDispatched: reg.Ints.Get(status.EventsDispatched),
		statDelta:      reg.Floats.Get(status.LoopDeltaMs),
		statBoost:      reg.Strings.Get(status.GameBoostPhase),
		statRunID:      reg.Strings.Get(status.GameRunID),
	}
	session.Snapshot(&l.snap)
	return l
}

// RegisterHandler adds an event handler, must be called before the first Frame
func (l *Loop) RegisterHandler(h events.Handler[*game.Snapshot]) {
	l.router.Register(h)
}

// AddSink appends a snapshot consumer; sinks are presented in insertion order
func (l *Loop) AddSink(s Sink) {
	l.sinks = append(l.sinks, s)
}

// Frame processes one driver callback at real time now
// Returns false when the frame cap discarded it
func (l *Loop) Frame(now time.Time) bool {
	delta, ok := l.limiter.Accept(now)
	if !ok {
		l.statSkipped.Add(1)
		return false
	}

	// Pause gate: nothing advances, nothing re-arms
	if l.session.Playing() && !l.session.Paused() {
		l.session.Tick(l.clock.Now(), delta, l.source.State(now))
		l.statTicks.Add(1)
		l.statDelta.Set(delta * 1000)
	}

	l.session.Snapshot(&l.snap)
	n := l.router.DispatchAll(&l.snap)
	for _, s := range l.sinks {
		s.Present(&l.snap)
	}

	l.statDispatched.Add(int64(n))
	l.statDropped.Store(int64(l.queue.Dropped()))
	l.statBoost.Store(l.snap.Run.Boost.String())
	l.statRunID.Store(l.snap.Run.RunID)
	return true
}

// HandleAction applies a driver-level command; returns true when the program should exit
func (l *Loop) HandleAction(a input.Action) bool {
	s := l.session
	switch a {
	case input.ActionQuit:
		return true

	case input.ActionPause:
		if !s.Playing() {
			return false
		}
		if s.Paused() {
			l.clock.Resume()
			s.SetPaused(false, l.clock.Now())
		} else {
			s.SetPaused(true, l.clock.Now())
			l.clock.Pause()
		}
		l.source.Release()

	case input.ActionStart:
		if !s.Playing() {
			l.start()
		}

	case input.ActionRestart:
		if s.Ended() || s.Paused() {
			l.start()
		}

	case input.ActionMenu:
		if s.Ended() {
			s.Menu()
		}
	}
	return false
}

func (l *Loop) start() {
	l.clock.Resume()
	l.source.Release()
	l.session.Start(l.clock.Now())
	log.Printf("[loop] run started at tick %d", l.session.TickCount())
}

// Snapshot returns the most recent snapshot; valid until the next Frame
func (l *Loop) Snapshot() *game.Snapshot {
	return &l.snap
}
