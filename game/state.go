package game

import (
	"time"

	"github.com/lixenwraith/hyperspace/vmath"
)

// BoostPhase is the boost machine: Ready -> Active (timed) -> Cooldown (timed) -> Ready
type BoostPhase uint8

const (
	BoostReady BoostPhase = iota
	BoostActive
	BoostCooldown
)

func (b BoostPhase) String() string {
	switch b {
	case BoostReady:
		return "ready"
	case BoostActive:
		return "active"
	case BoostCooldown:
		return "cooldown"
	default:
		return "unknown"
	}
}

// PlayerState is the player's place in the tunnel
type PlayerState struct {
	Offset        vmath.Vec2F // Lateral displacement from the centerline, |Offset| <= MaxOffset
	Velocity      vmath.Vec2F
	PathParameter float64 // p in [0,1)

	// Derived each tick from the path frame at PathParameter
	Position vmath.Vec3F
	Forward  vmath.Vec3F
	Right    vmath.Vec3F
	Up       vmath.Vec3F
}

// RunState is the scoring, health and boost state of one run
// Reset on Start, mutated per tick while playing, frozen when the run ends
type RunState struct {
	RunID     string
	StartedAt time.Time

	Score float64 // Never decreases within a run
	Level int     // floor(Score/threshold)+1, never decreases

	SpeedMultiplier float64
	MoveSpeed       float64

	Health            int
	Invulnerable      bool
	InvulnerableUntil time.Time

	BoostCharge   float64 // [0, 100]
	Boost         BoostPhase
	BoostActive   bool // Mirrors Boost == BoostActive
	BoostCooldown bool // Mirrors Boost == BoostCooldown
	BoostUntil    time.Time

	ElapsedTime float64 // Simulated milliseconds scaled by effective speed

	ObstacleCount    int
	CollectibleCount int

	IsPlaying bool
	Paused    bool
	Ended     bool

	Collected int // Pickups collected this run
	Hits      int // Accepted hits this run
}
