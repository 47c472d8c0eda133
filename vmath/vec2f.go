package vmath

import "math"

// Vec2F is a float64 2D vector for lateral offset and velocity in the tunnel cross-section
type Vec2F struct {
	X, Y float64
}

func V2FAdd(a, b Vec2F) Vec2F {
	return Vec2F{a.X + b.X, a.Y + b.Y}
}

func V2FScale(v Vec2F, s float64) Vec2F {
	return Vec2F{v.X * s, v.Y * s}
}

func V2FMagSq(v Vec2F) float64 {
	return v.X*v.X + v.Y*v.Y
}

func V2FMag(v Vec2F) float64 {
	return math.Sqrt(V2FMagSq(v))
}

// V2FClampMagnitude scales v uniformly so its magnitude does not exceed maxMag
// Direction is preserved; vectors already inside the radius are returned unchanged
func V2FClampMagnitude(v Vec2F, maxMag float64) Vec2F {
	if maxMag <= 0 {
		return Vec2F{}
	}
	mag := V2FMag(v)
	if mag <= maxMag {
		return v
	}
	factor := maxMag / mag
	return Vec2F{v.X * factor, v.Y * factor}
}
