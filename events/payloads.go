package events

import "github.com/lixenwraith/hyperspace/vmath"

// RunStartedPayload identifies the new run
type RunStartedPayload struct {
	RunID string
}

// RunEndedPayload carries the frozen result of the run
type RunEndedPayload struct {
	RunID string
	Score float64
	Level int
}

// DamagePayload carries remaining health and where the hit happened
type DamagePayload struct {
	Health   int
	Position vmath.Vec3F
}

// CollectPayload describes a single collected pickup
type CollectPayload struct {
	Index    int
	Value    float64
	Score    float64 // Score after this pickup was credited
	Position vmath.Vec3F
}

// LevelUpPayload carries the new level and the wave sizes spawned for it
type LevelUpPayload struct {
	Level        int
	Obstacles    int
	Collectibles int
	Speed        float64
}

// PausePayload carries the new pause state
type PausePayload struct {
	Paused bool
}
