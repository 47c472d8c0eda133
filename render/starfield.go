package render

import (
	"github.com/lixenwraith/hyperspace/vmath"
)

const (
	starCount    = 160
	starSpread   = 4.0  // Half-width of the spawn box across the view
	starDepthMax = 30.0 // Far edge of the spawn box
	starSpeedMin = 1.0
	starSpeedMax = 3.0
)

type star struct {
	x, y, z float64
	speed   float64
}

// Starfield is a set of particles in camera space that stream toward the viewer
// Their velocity scales with the effective speed of the run
type Starfield struct {
	stars []star
	rng   *vmath.FastRand
}

func NewStarfield(seed uint64) *Starfield {
	sf := &Starfield{
		stars: make([]star, starCount),
		rng:   vmath.NewFastRand(seed),
	}
	for i := range sf.stars {
		sf.respawn(&sf.stars[i], sf.rng.RangeF(nearPlane, starDepthMax))
	}
	return sf
}

func (sf *Starfield) respawn(s *star, z float64) {
	s.x = sf.rng.RangeF(-starSpread, starSpread)
	s.y = sf.rng.RangeF(-starSpread, starSpread)
	s.z = z
	s.speed = sf.rng.RangeF(starSpeedMin, starSpeedMax)
}

// Advance moves every star dt seconds closer at the given speed multiplier
func (sf *Starfield) Advance(dt, speed float64) {
	for i := range sf.stars {
		s := &sf.stars[i]
		s.z -= s.speed * speed * dt
		if s.z < nearPlane {
			sf.respawn(s, starDepthMax)
		}
	}
}

// Each visits stars as camera-space offsets (right, up, depth)
func (sf *Starfield) Each(fn func(right, up, depth float64)) {
	for _, s := range sf.stars {
		fn(s.x, s.y, s.z)
	}
}
