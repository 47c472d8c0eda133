package track

import "github.com/lixenwraith/hyperspace/vmath"

// defaultPoints is the built-in race circuit: a start straight, a hairpin, S-curves,
// an uphill crest with a fast downhill, and a final corner complex back onto the straight
var defaultPoints = []vmath.Vec3F{
	{X: 15.0, Y: 0.0, Z: 0.0},
	{X: 12.0, Y: 0.0, Z: 0.0},
	{X: 9.0, Y: 0.0, Z: 0.0},
	{X: 6.0, Y: 0.0, Z: -1.5},
	{X: 3.5, Y: 0.0, Z: -3.5},
	{X: 1.5, Y: 0.0, Z: -6.0},
	{X: 0.0, Y: 0.0, Z: -9.0},
	{X: 0.0, Y: 0.1, Z: -12.0},
	{X: -1.5, Y: 0.3, Z: -14.0},
	{X: -3.5, Y: 0.5, Z: -15.5},
	{X: -6.0, Y: 0.6, Z: -16.0},
	{X: -8.5, Y: 0.5, Z: -15.5},
	{X: -11.0, Y: 0.4, Z: -14.0},
	{X: -13.0, Y: 0.2, Z: -12.0},
	{X: -14.5, Y: 0.0, Z: -9.5},
	{X: -15.0, Y: -0.3, Z: -7.0},
	{X: -14.8, Y: -0.5, Z: -4.5},
	{X: -13.5, Y: -0.5, Z: -2.5},
	{X: -11.5, Y: -0.4, Z: -1.0},
	{X: -9.0, Y: -0.2, Z: -0.5},
	{X: -6.5, Y: 0.0, Z: -0.2},
	{X: -4.0, Y: 0.1, Z: 0.0},
	{X: -1.5, Y: 0.2, Z: 0.5},
	{X: 1.0, Y: 0.3, Z: 1.5},
	{X: 3.0, Y: 0.4, Z: 3.0},
	{X: 4.5, Y: 0.5, Z: 5.0},
	{X: 5.0, Y: 0.6, Z: 7.0},
	{X: 4.5, Y: 0.7, Z: 9.0},
	{X: 3.0, Y: 0.8, Z: 10.5},
	{X: 1.0, Y: 1.0, Z: 11.5},
	{X: -1.5, Y: 1.3, Z: 12.0},
	{X: -4.0, Y: 1.6, Z: 11.8},
	{X: -6.5, Y: 1.8, Z: 11.0},
	{X: -8.5, Y: 1.7, Z: 9.5},
	{X: -10.0, Y: 1.4, Z: 7.5},
	{X: -11.0, Y: 1.0, Z: 5.5},
	{X: -11.5, Y: 0.6, Z: 3.5},
	{X: -11.3, Y: 0.3, Z: 1.5},
	{X: -10.5, Y: 0.1, Z: -0.5},
	{X: -9.0, Y: 0.0, Z: -2.0},
	{X: -7.0, Y: 0.0, Z: -3.0},
	{X: -5.0, Y: 0.0, Z: -3.5},
	{X: -3.0, Y: 0.1, Z: -3.8},
	{X: -1.0, Y: 0.2, Z: -3.5},
	{X: 1.0, Y: 0.2, Z: -3.0},
	{X: 3.0, Y: 0.1, Z: -2.0},
	{X: 5.0, Y: 0.0, Z: -0.8},
	{X: 7.0, Y: 0.0, Z: 0.5},
	{X: 9.0, Y: 0.1, Z: 2.0},
	{X: 11.0, Y: 0.2, Z: 3.8},
	{X: 12.5, Y: 0.4, Z: 5.5},
	{X: 13.5, Y: 0.6, Z: 7.5},
	{X: 14.0, Y: 0.7, Z: 9.5},
	{X: 14.2, Y: 0.6, Z: 11.5},
	{X: 14.0, Y: 0.4, Z: 13.5},
	{X: 13.5, Y: 0.2, Z: 15.0},
	{X: 12.5, Y: 0.1, Z: 16.0},
	{X: 11.0, Y: 0.0, Z: 16.5},
	{X: 9.0, Y: 0.0, Z: 16.3},
	{X: 7.0, Y: 0.0, Z: 15.5},
	{X: 5.5, Y: 0.0, Z: 14.0},
	{X: 4.5, Y: 0.0, Z: 12.0},
	{X: 4.0, Y: 0.0, Z: 10.0},
	{X: 4.5, Y: 0.0, Z: 8.0},
	{X: 5.5, Y: 0.0, Z: 6.0},
	{X: 7.0, Y: 0.0, Z: 4.5},
	{X: 9.0, Y: 0.0, Z: 3.5},
	{X: 11.5, Y: 0.0, Z: 2.8},
	{X: 13.5, Y: 0.0, Z: 2.0},
	{X: 15.0, Y: 0.0, Z: 1.0},
	{X: 15.0, Y: 0.0, Z: 0.0},
}
