package render

import (
	"math"

	"github.com/lixenwraith/hyperspace/vmath"
)

const (
	// Vertical field of view in degrees
	fieldOfView = 75.0

	// Near plane; points closer are not drawn
	nearPlane = 0.1

	// Terminal cells are roughly twice as tall as wide
	cellAspect = 2.0

	fogDensity = 0.08
)

// Camera is a pinhole camera sitting on the player, looking down the path
type Camera struct {
	Position vmath.Vec3F
	Forward  vmath.Vec3F
	Right    vmath.Vec3F
	Up       vmath.Vec3F

	width, height int
	focal         float64
	shakeX        int
	shakeY        int
}

// NewCamera sizes the projection to a width x height cell viewport
func NewCamera(pos, forward, right, up vmath.Vec3F, width, height int) Camera {
	half := math.Tan(fieldOfView * math.Pi / 360)
	return Camera{
		Position: pos,
		Forward:  forward,
		Right:    right,
		Up:       up,
		width:    width,
		height:   height,
		focal:    float64(height) / 2 / half,
	}
}

// Project maps a world point to a cell and its depth along Forward
// ok is false behind the near plane or off screen
func (c Camera) Project(world vmath.Vec3F) (x, y int, depth float64, ok bool) {
	d := vmath.V3FSub(world, c.Position)
	depth = vmath.V3FDot(d, c.Forward)
	if depth < nearPlane {
		return 0, 0, depth, false
	}

	cx := vmath.V3FDot(d, c.Right)
	cy := vmath.V3FDot(d, c.Up)

	fx := float64(c.width)/2 + cx/depth*c.focal*cellAspect
	fy := float64(c.height)/2 - cy/depth*c.focal

	x = int(math.Floor(fx)) + c.shakeX
	y = int(math.Floor(fy)) + c.shakeY
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return x, y, depth, false
	}
	return x, y, depth, true
}
