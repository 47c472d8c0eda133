package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
)

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(0, 0, 0)

	RgbTunnelNear = tcell.NewRGBColor(90, 110, 200) // Ring closest to the camera
	RgbStar       = tcell.NewRGBColor(0, 255, 255)  // Cyan particles

	RgbObstacle     = tcell.NewRGBColor(255, 60, 90)  // Hot pink-red
	RgbObstacleAlt  = tcell.NewRGBColor(255, 130, 40) // Orange variant
	RgbCollectible  = tcell.NewRGBColor(255, 230, 60) // Gold
	RgbCollectPopup = tcell.NewRGBColor(255, 255, 150)

	RgbHudText    = tcell.NewRGBColor(220, 220, 230)
	RgbHudLabel   = tcell.NewRGBColor(130, 130, 150)
	RgbHealthOn   = tcell.NewRGBColor(255, 70, 90)
	RgbHealthOff  = tcell.NewRGBColor(70, 40, 45)
	RgbBoostReady = tcell.NewRGBColor(0, 220, 255)
	RgbBoostLive  = tcell.NewRGBColor(255, 255, 255)
	RgbBoostCool  = tcell.NewRGBColor(120, 120, 140)
	RgbBoostEmpty = tcell.NewRGBColor(40, 40, 55)

	RgbDamageFlash = tcell.NewRGBColor(120, 0, 20)
	RgbBoostGlow   = tcell.NewRGBColor(0, 90, 110)
	RgbBanner      = tcell.NewRGBColor(180, 120, 255)
	RgbTitle       = tcell.NewRGBColor(0, 255, 255)
	RgbGameOver    = tcell.NewRGBColor(255, 60, 90)
	RgbNewRecord   = tcell.NewRGBColor(255, 230, 60)
	RgbDebug       = tcell.NewRGBColor(100, 100, 100)
)

// fogFactor is exp2 fog: 1 at the camera, falling off with depth
func fogFactor(depth float64) float64 {
	d := fogDensity * depth
	return math.Exp(-d * d)
}

// Dim scales a color toward black by f in [0,1]
func Dim(c tcell.Color, f float64) tcell.Color {
	if f >= 1 {
		return c
	}
	if f < 0 {
		f = 0
	}
	r, g, b := c.RGB()
	return tcell.NewRGBColor(int32(float64(r)*f), int32(float64(g)*f), int32(float64(b)*f))
}
