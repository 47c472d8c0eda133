// Package pool holds fixed-capacity obstacle and collectible sets addressed by index.
// Entities are allocated once; spawning only toggles Active and rewrites placement fields.
package pool

import (
	"math"

	"github.com/lixenwraith/hyperspace/constants"
	"github.com/lixenwraith/hyperspace/track"
	"github.com/lixenwraith/hyperspace/vmath"
)

// Kind distinguishes the two pooled entity variants
type Kind uint8

const (
	KindObstacle Kind = iota
	KindCollectible
)

func (k Kind) String() string {
	switch k {
	case KindObstacle:
		return "obstacle"
	case KindCollectible:
		return "collectible"
	default:
		return "unknown"
	}
}

// Entity is one pooled slot
type Entity struct {
	PathPosition  float64
	World         vmath.Vec3F
	Active        bool
	RotationSpeed float64 // rad/s, fixed at allocation
	Rotation      float64 // Visual only
	Seed          uint64  // Per-slot value for glyph and color variation
}

// Placement describes where a wave is spread
// From/To is the path sub-range; MinRadius/MaxRadius is the annulus in world units
type Placement struct {
	From, To             float64
	MinRadius, MaxRadius float64
}

// Pool is a fixed-capacity entity set
type Pool struct {
	Kind     Kind
	entities []Entity
	active   int
}

// New pre-allocates capacity inert entities
func New(kind Kind, capacity int, rng *vmath.FastRand) *Pool {
	if capacity < 0 {
		capacity = 0
	}
	p := &Pool{
		Kind:     kind,
		entities: make([]Entity, capacity),
	}
	for i := range p.entities {
		p.entities[i].RotationSpeed = rng.RangeF(-constants.RotationSpeedMax, constants.RotationSpeedMax)
		p.entities[i].Seed = rng.Next()
	}
	return p
}

// SpawnWave deactivates every entity, then activates the first min(n, capacity)
// Returns the number activated; requests above capacity saturate
func (p *Pool) SpawnWave(n int, place Placement, path track.Sampler, rng *vmath.FastRand) int {
	for i := range p.entities {
		p.entities[i].Active = false
	}
	p.active = 0

	if n < 0 {
		n = 0
	}
	if n > len(p.entities) {
		n = len(p.entities)
	}

	for i := 0; i < n; i++ {
		e := &p.entities[i]
		e.PathPosition = place.From + (float64(i)/float64(n))*(place.To-place.From)

		radius := rng.RangeF(place.MinRadius, place.MaxRadius)
		angle := rng.Float64() * 2 * math.Pi
		center := path.SampleAt(e.PathPosition)
		e.World = vmath.Vec3F{
			X: center.X + math.Cos(angle)*radius,
			Y: center.Y + math.Sin(angle)*radius,
			Z: center.Z,
		}
		e.Rotation = 0
		e.Active = true
	}
	p.active = n
	return n
}

// ActiveCount returns the number of live entities
func (p *Pool) ActiveCount() int {
	return p.active
}

// Capacity returns the fixed slot count
func (p *Pool) Capacity() int {
	return len(p.entities)
}

// At returns the entity at index i, nil when out of range
func (p *Pool) At(i int) *Entity {
	if i < 0 || i >= len(p.entities) {
		return nil
	}
	return &p.entities[i]
}

// Deactivate retires entity i; false when out of range or already inactive
func (p *Pool) Deactivate(i int) bool {
	e := p.At(i)
	if e == nil || !e.Active {
		return false
	}
	e.Active = false
	p.active--
	return true
}

// Each calls fn for every active entity in index order
func (p *Pool) Each(fn func(i int, e *Entity)) {
	for i := range p.entities {
		if p.entities[i].Active {
			fn(i, &p.entities[i])
		}
	}
}

// Rotate advances the visual rotation of active entities by dt seconds
func (p *Pool) Rotate(dt float64) {
	for i := range p.entities {
		e := &p.entities[i]
		if !e.Active {
			continue
		}
		e.Rotation = math.Mod(e.Rotation+e.RotationSpeed*dt, 2*math.Pi)
	}
}
