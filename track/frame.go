package track

import "github.com/lixenwraith/hyperspace/vmath"

// Frame is the local basis at a point on the path
type Frame struct {
	Position vmath.Vec3F
	Forward  vmath.Vec3F
	Right    vmath.Vec3F
	Up       vmath.Vec3F
}

// Forward returns the unit tangent from p toward p+eps (wrapped)
func Forward(s Sampler, p, eps float64) vmath.Vec3F {
	pos := s.SampleAt(p)
	ahead := s.SampleAt(vmath.Wrap01(p + eps))
	return vmath.V3FNormalize(vmath.V3FSub(ahead, pos))
}

// FrameAt derives right = normalize(forward × up) and up = normalize(worldUp)
// When forward is parallel to worldUp the right axis falls back to +X
func FrameAt(s Sampler, p, eps float64, worldUp vmath.Vec3F) Frame {
	pos := s.SampleAt(p)
	ahead := s.SampleAt(vmath.Wrap01(p + eps))
	forward := vmath.V3FNormalize(vmath.V3FSub(ahead, pos))

	right := vmath.V3FNormalize(vmath.V3FCross(forward, worldUp))
	if right == (vmath.Vec3F{}) {
		right = vmath.Vec3F{X: 1}
	}

	return Frame{
		Position: pos,
		Forward:  forward,
		Right:    right,
		Up:       vmath.V3FNormalize(worldUp),
	}
}
