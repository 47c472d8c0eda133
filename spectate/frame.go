package spectate

import (
	"github.com/lixenwraith/hyperspace/events"
	"github.com/lixenwraith/hyperspace/game"
)

// Message kinds on the wire
const (
	KindFrame = "frame"
	KindEvent = "event"
)

// EntityFrame is one active entity in world space
type EntityFrame struct {
	Kind     string  `msgpack:"k"`
	X        float64 `msgpack:"x"`
	Y        float64 `msgpack:"y"`
	Z        float64 `msgpack:"z"`
	Rotation float64 `msgpack:"r"`
}

// PlayerFrame is the player's pose
type PlayerFrame struct {
	X             float64 `msgpack:"x"`
	Y             float64 `msgpack:"y"`
	Z             float64 `msgpack:"z"`
	OffsetX       float64 `msgpack:"ox"`
	OffsetY       float64 `msgpack:"oy"`
	PathParameter float64 `msgpack:"p"`
}

// Frame is a published snapshot
type Frame struct {
	Kind        string        `msgpack:"kind"`
	RunID       string        `msgpack:"runId"`
	Tick        uint64        `msgpack:"tick"`
	Score       float64       `msgpack:"score"`
	Level       int           `msgpack:"level"`
	Health      int           `msgpack:"health"`
	BoostCharge float64       `msgpack:"boostCharge"`
	Boost       string        `msgpack:"boost"`
	Playing     bool          `msgpack:"playing"`
	Paused      bool          `msgpack:"paused"`
	Ended       bool          `msgpack:"ended"`
	Player      PlayerFrame   `msgpack:"player"`
	Entities    []EntityFrame `msgpack:"entities"`
}

// EventFrame carries one core event
type EventFrame struct {
	Kind    string `msgpack:"kind"`
	Event   string `msgpack:"event"`
	Tick    uint64 `msgpack:"tick"`
	Payload any    `msgpack:"payload,omitempty"`
}

// fill copies snap into f, reusing the entity slice
func (f *Frame) fill(snap *game.Snapshot) {
	run := snap.Run
	p := snap.Player

	f.Kind = KindFrame
	f.RunID = run.RunID
	f.Tick = snap.Tick
	f.Score = run.Score
	f.Level = run.Level
	f.Health = run.Health
	f.BoostCharge = run.BoostCharge
	f.Boost = run.Boost.String()
	f.Playing = run.IsPlaying
	f.Paused = run.Paused
	f.Ended = run.Ended
	f.Player = PlayerFrame{
		X: p.Position.X, Y: p.Position.Y, Z: p.Position.Z,
		OffsetX: p.Offset.X, OffsetY: p.Offset.Y,
		PathParameter: p.PathParameter,
	}

	f.Entities = f.Entities[:0]
	for _, e := range snap.Obstacles {
		f.Entities = append(f.Entities, EntityFrame{Kind: "obstacle", X: e.World.X, Y: e.World.Y, Z: e.World.Z, Rotation: e.Rotation})
	}
	for _, e := range snap.Collectibles {
		f.Entities = append(f.Entities, EntityFrame{Kind: "collectible", X: e.World.X, Y: e.World.Y, Z: e.World.Z, Rotation: e.Rotation})
	}
}

func newEventFrame(ev events.GameEvent) EventFrame {
	return EventFrame{
		Kind:    KindEvent,
		Event:   ev.Type.String(),
		Tick:    ev.Tick,
		Payload: ev.Payload,
	}
}
