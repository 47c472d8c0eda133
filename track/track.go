// Package track provides the closed 3D curve the tunnel follows.
//
// The curve is a uniform Catmull-Rom spline through a closed loop of control points.
// Sampling is by normalised arc length so that equal steps of p cover equal distance,
// which keeps the player's speed constant through tight and loose sections alike.
package track

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/lixenwraith/hyperspace/vmath"
)

// ArcLengthDivisions is the resolution of the arc-length lookup table
const ArcLengthDivisions = 200

// DefaultTension matches a moderate Catmull-Rom: smooth, flowing corners
const DefaultTension = 0.5

var ErrTooFewPoints = errors.New("track: need at least 4 control points")

// Sampler is the path provider contract consumed by pools, the session and the renderer
// SampleAt must be periodic in p with period 1 and continuous
type Sampler interface {
	SampleAt(p float64) vmath.Vec3F
}

// Track is a closed Catmull-Rom curve with arc-length parameterisation
type Track struct {
	points  []vmath.Vec3F
	tension float64

	// lengths[i] is the cumulative arc length at raw parameter i/ArcLengthDivisions
	lengths []float64
	total   float64
}

// New builds a closed track through points
func New(points []vmath.Vec3F, tension float64) (*Track, error) {
	if len(points) < 4 {
		return nil, ErrTooFewPoints
	}
	if tension <= 0 || math.IsNaN(tension) {
		return nil, fmt.Errorf("track: tension must be positive, got %v", tension)
	}

	t := &Track{
		points:  append([]vmath.Vec3F(nil), points...),
		tension: tension,
		lengths: make([]float64, ArcLengthDivisions+1),
	}
	t.buildLengths()
	return t, nil
}

// Default returns the built-in circuit
func Default() *Track {
	t, err := New(defaultPoints, DefaultTension)
	if err != nil {
		// Built-in data is static; failure here is a programming error
		panic(err)
	}
	return t
}

// Length returns the total arc length of the loop
func (t *Track) Length() float64 {
	return t.total
}

// SampleAt returns the position at normalised arc length p, wrapped into [0, 1)
func (t *Track) SampleAt(p float64) vmath.Vec3F {
	return t.pointAt(t.arcToRaw(vmath.Wrap01(p)))
}

func (t *Track) buildLengths() {
	prev := t.pointAt(0)
	sum := 0.0
	for d := 1; d <= ArcLengthDivisions; d++ {
		cur := t.pointAt(float64(d) / ArcLengthDivisions)
		sum += vmath.V3FMag(vmath.V3FSub(cur, prev))
		t.lengths[d] = sum
		prev = cur
	}
	t.total = sum
}

// arcToRaw maps normalised arc length u to the raw spline parameter
func (t *Track) arcToRaw(u float64) float64 {
	target := u * t.total
	n := len(t.lengths)

	i := sort.SearchFloat64s(t.lengths, target)
	if i < n && t.lengths[i] == target {
		return float64(i) / float64(n-1)
	}
	i--
	if i < 0 {
		return 0
	}
	if i >= n-1 {
		return 1
	}

	before := t.lengths[i]
	segment := t.lengths[i+1] - before
	if segment <= 0 {
		return float64(i) / float64(n-1)
	}
	return (float64(i) + (target-before)/segment) / float64(n-1)
}

// pointAt evaluates the closed spline at raw parameter r in [0, 1]
func (t *Track) pointAt(r float64) vmath.Vec3F {
	l := len(t.points)
	p := float64(l) * r
	seg := int(math.Floor(p))
	w := p - float64(seg)
	seg = ((seg % l) + l) % l

	p0 := t.points[(seg-1+l)%l]
	p1 := t.points[seg]
	p2 := t.points[(seg+1)%l]
	p3 := t.points[(seg+2)%l]

	return vmath.Vec3F{
		X: catmullRom(p0.X, p1.X, p2.X, p3.X, t.tension, w),
		Y: catmullRom(p0.Y, p1.Y, p2.Y, p3.Y, t.tension, w),
		Z: catmullRom(p0.Z, p1.Z, p2.Z, p3.Z, t.tension, w),
	}
}

// catmullRom evaluates the cubic Hermite segment between x1 and x2 with tangents
// tension*(x2-x0) and tension*(x3-x1)
func catmullRom(x0, x1, x2, x3, tension, w float64) float64 {
	t0 := tension * (x2 - x0)
	t1 := tension * (x3 - x1)

	c0 := x1
	c1 := t0
	c2 := -3*x1 + 3*x2 - 2*t0 - t1
	c3 := 2*x1 - 2*x2 + t0 + t1

	w2 := w * w
	return c0 + c1*w + c2*w2 + c3*w2*w
}
