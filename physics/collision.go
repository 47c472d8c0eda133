package physics

import (
	"math"

	"github.com/lixenwraith/hyperspace/pool"
	"github.com/lixenwraith/hyperspace/vmath"
)

// Params defines the collision radii and the broad-phase window
// Profiles are built once from config and passed by value each tick
type Params struct {
	PlayerRadius      float64
	ObstacleRadius    float64
	CollectibleRadius float64
	ViewDistance      float64 // Max |depth| along the forward axis; <= 0 disables the prefilter
}

// Result holds the hits of one tick; reused between ticks
type Result struct {
	Obstacle  int   // Index of the first obstacle hit, -1 when none
	Collected []int // Indices of every collectible hit, in index order
}

// NewResult allocates a result with room for capacity collectibles
func NewResult(capacity int) *Result {
	return &Result{Obstacle: -1, Collected: make([]int, 0, capacity)}
}

// Reset clears the result without releasing the backing array
func (r *Result) Reset() {
	r.Obstacle = -1
	r.Collected = r.Collected[:0]
}

// Hit reports whether anything was hit
func (r *Result) Hit() bool {
	return r.Obstacle >= 0 || len(r.Collected) > 0
}

// Detect tests the player against every active entity of both pools
// Obstacles stop at the first hit; collectibles are all recorded
// Pools are only read; the caller deactivates
func Detect(player, forward vmath.Vec3F, obstacles, collectibles *pool.Pool, params Params, out *Result) {
	out.Reset()

	if obstacles != nil {
		limit := params.PlayerRadius + params.ObstacleRadius
		limitSq := limit * limit
		for i := 0; i < obstacles.Capacity(); i++ {
			e := obstacles.At(i)
			if !e.Active || !inWindow(player, forward, e.World, params.ViewDistance) {
				continue
			}
			if vmath.V3FDistSq(player, e.World) < limitSq {
				out.Obstacle = i
				break
			}
		}
	}

	if collectibles != nil {
		limit := params.PlayerRadius + params.CollectibleRadius
		limitSq := limit * limit
		for i := 0; i < collectibles.Capacity(); i++ {
			e := collectibles.At(i)
			if !e.Active || !inWindow(player, forward, e.World, params.ViewDistance) {
				continue
			}
			if vmath.V3FDistSq(player, e.World) < limitSq {
				out.Collected = append(out.Collected, i)
			}
		}
	}
}

// inWindow is the broad phase: depth of target along forward, relative to player
func inWindow(player, forward, target vmath.Vec3F, viewDistance float64) bool {
	if viewDistance <= 0 {
		return true
	}
	depth := vmath.V3FDot(vmath.V3FSub(target, player), forward)
	return math.Abs(depth) <= viewDistance
}
