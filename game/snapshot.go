package game

import (
	"github.com/lixenwraith/hyperspace/pool"
	"github.com/lixenwraith/hyperspace/vmath"
)

// EntityView is the read-only part of an active pooled entity
type EntityView struct {
	Index    int
	World    vmath.Vec3F
	Rotation float64
	Seed     uint64
}

// Snapshot is everything the presentation reads after a tick
// Value copies only; sinks never reach back into the session
type Snapshot struct {
	Tick           uint64
	Player         PlayerState
	Run            RunState
	EffectiveSpeed float64
	HealthMax      int
	Obstacles      []EntityView
	Collectibles   []EntityView
}

// Snapshot fills dst, reusing its entity slices
func (s *Session) Snapshot(dst *Snapshot) {
	dst.Tick = s.tick
	dst.Player = s.player
	dst.Run = s.run
	dst.EffectiveSpeed = s.EffectiveSpeed()
	dst.HealthMax = s.cfg.Health.Max
	dst.Obstacles = appendViews(dst.Obstacles[:0], s.obstacles)
	dst.Collectibles = appendViews(dst.Collectibles[:0], s.collectibles)
}

func appendViews(dst []EntityView, p *pool.Pool) []EntityView {
	p.Each(func(i int, e *pool.Entity) {
		dst = append(dst, EntityView{
			Index:    i,
			World:    e.World,
			Rotation: e.Rotation,
			Seed:     e.Seed,
		})
	})
	return dst
}
