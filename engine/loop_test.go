package engine

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/hyperspace/config"
	"github.com/lixenwraith/hyperspace/events"
	"github.com/lixenwraith/hyperspace/game"
	"github.com/lixenwraith/hyperspace/input"
	"github.com/lixenwraith/hyperspace/status"
	"github.com/lixenwraith/hyperspace/vmath"
)

type linePath struct{}

func (linePath) SampleAt(p float64) vmath.Vec3F {
	return vmath.Vec3F{Z: vmath.Wrap01(p) * 1000}
}

type countingSink struct {
	frames int
	last   game.Snapshot
}

func (c *countingSink) Present(snap *game.Snapshot) {
	c.frames++
	c.last = *snap
}

type eventLog struct {
	seen []events.EventType
}

func (e *eventLog) HandleEvent(_ *game.Snapshot, ev events.GameEvent) {
	e.seen = append(e.seen, ev.Type)
}

func (e *eventLog) EventTypes() []events.EventType {
	return []events.EventType{events.EventRunStarted, events.EventPauseChanged, events.EventBoostActivated}
}

type loopFixture struct {
	real    *MockTimeProvider
	loop    *Loop
	session *game.Session
	source  *input.Source
	clock   *PausableClock
	sink    *countingSink
	log     *eventLog
	reg     *status.Registry
}

func newLoopFixture() *loopFixture {
	real := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	clock := NewPausableClock(real)
	queue := events.NewEventQueue()
	session := game.NewSession(config.Default(), linePath{}, queue, 1)
	source := input.NewSource(nil, 180*time.Millisecond)
	reg := status.NewRegistry()

	loop := NewLoop(session, source, clock, NewFrameLimiter(16*time.Millisecond, 0.1), queue, reg)
	sink := &countingSink{}
	log := &eventLog{}
	loop.AddSink(sink)
	loop.RegisterHandler(log)

	return &loopFixture{real: real, loop: loop, session: session, source: source, clock: clock, sink: sink, log: log, reg: reg}
}

// step advances real time by one frame and runs it
func (f *loopFixture) step() bool {
	return f.loop.Frame(f.real.Advance(16 * time.Millisecond))
}

func TestLoopIdleUntilStart(t *testing.T) {
	f := newLoopFixture()

	f.step()
	f.step()
	if f.session.TickCount() != 0 {
		t.Errorf("Expected no ticks before start, got %d", f.session.TickCount())
	}
	if f.sink.frames != 2 {
		t.Errorf("Expected sinks presented every accepted frame, got %d", f.sink.frames)
	}

	f.loop.HandleAction(input.ActionStart)
	f.step()
	f.step()

	if f.session.TickCount() != 2 {
		t.Errorf("Expected 2 ticks after start, got %d", f.session.TickCount())
	}
	if !f.sink.last.Run.IsPlaying || f.sink.last.Run.Score <= 0 {
		t.Errorf("Expected playing snapshot with score, got %+v", f.sink.last.Run)
	}
	if len(f.log.seen) != 1 || f.log.seen[0] != events.EventRunStarted {
		t.Errorf("Expected run started dispatched, got %v", f.log.seen)
	}
	if f.reg.Ints.Get(status.LoopTicks).Load() != 2 {
		t.Errorf("Expected tick metric 2, got %d", f.reg.Ints.Get(status.LoopTicks).Load())
	}
}

func TestLoopSkipsEarlyFrames(t *testing.T) {
	f := newLoopFixture()
	f.loop.HandleAction(input.ActionStart)
	f.step()

	if f.loop.Frame(f.real.Advance(5 * time.Millisecond)) {
		t.Errorf("Expected early frame skipped")
	}
	if f.reg.Ints.Get(status.LoopFramesSkipped).Load() != 1 {
		t.Errorf("Expected skipped metric 1")
	}
}

func TestLoopPauseGate(t *testing.T) {
	f := newLoopFixture()
	f.loop.HandleAction(input.ActionStart)
	f.step()
	f.step()

	f.loop.HandleAction(input.ActionPause)
	if !f.session.Paused() || !f.clock.IsPaused() {
		t.Fatalf("Expected session and clock paused")
	}
	ticks := f.session.TickCount()
	score := f.session.Run().Score
	for i := 0; i < 10; i++ {
		f.step()
	}
	if f.session.TickCount() != ticks || f.session.Run().Score != score {
		t.Errorf("Expected nothing to advance while paused")
	}
	if !f.sink.last.Run.Paused {
		t.Errorf("Expected sinks to see the paused state")
	}

	f.loop.HandleAction(input.ActionPause)
	f.step()
	if f.session.TickCount() != ticks+1 {
		t.Errorf("Expected ticking to resume")
	}
}

func TestLoopPauseKeepsBoostWindow(t *testing.T) {
	f := newLoopFixture()
	f.loop.HandleAction(input.ActionStart)
	f.step()

	// Boost via input on a rising edge
	f.step()
	f.source.HandleKey(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), f.real.Now())
	f.step()
	if f.session.Run().Boost != game.BoostActive {
		t.Fatalf("Expected boost active, got %v", f.session.Run().Boost)
	}

	// A long pause does not consume the 1.5s window
	f.loop.HandleAction(input.ActionPause)
	f.real.Advance(10 * time.Second)
	f.loop.HandleAction(input.ActionPause)
	f.step()
	if f.session.Run().Boost != game.BoostActive {
		t.Errorf("Expected boost still active after pause, got %v", f.session.Run().Boost)
	}
}

func TestLoopActions(t *testing.T) {
	f := newLoopFixture()

	if f.loop.HandleAction(input.ActionPause) {
		t.Errorf("Expected pause on title not to quit")
	}
	if f.session.Paused() {
		t.Errorf("Expected pause ignored when not playing")
	}

	f.loop.HandleAction(input.ActionStart)
	first := f.session.Run().RunID

	// Start while playing is ignored (Space doubles as boost)
	f.loop.HandleAction(input.ActionStart)
	if f.session.Run().RunID != first {
		t.Errorf("Expected start ignored while playing")
	}

	// Restart from pause begins a new run and resumes the clock
	f.loop.HandleAction(input.ActionPause)
	f.loop.HandleAction(input.ActionRestart)
	if f.session.Run().RunID == first || f.session.Paused() || f.clock.IsPaused() {
		t.Errorf("Expected restart from pause to start a fresh running game")
	}

	// Lose the run, then return to the menu
	for f.session.Playing() {
		f.session.ApplyDamage(f.clock.Now())
		f.real.Advance(2 * time.Second)
	}
	if !f.session.Ended() {
		t.Fatalf("Expected ended run")
	}
	f.loop.HandleAction(input.ActionMenu)
	if f.session.Ended() || f.session.Playing() {
		t.Errorf("Expected title state after menu")
	}

	if !f.loop.HandleAction(input.ActionQuit) {
		t.Errorf("Expected quit action to report exit")
	}
}
