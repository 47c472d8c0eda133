// Package render draws the run on a tcell screen: tunnel, entities, starfield, HUD and menus.
package render

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/hyperspace/game"
	"github.com/lixenwraith/hyperspace/record"
	"github.com/lixenwraith/hyperspace/status"
	"github.com/lixenwraith/hyperspace/track"
	"github.com/lixenwraith/hyperspace/vmath"
)

const (
	ringSegments  = 24
	nearGlyphDist = 1.5
	maxFrameDelta = 0.1
)

var spinGlyphs = [...]rune{'|', '/', '-', '\\'}

// RecordSource exposes the persisted best result to the menus
type RecordSource interface {
	Record() record.Record
	LastRunWasBest() bool
}

// Options configures the tunnel wireframe
type Options struct {
	Path           track.Sampler
	TubeRadius     float64
	ForwardEpsilon float64
	RingStep       float64 // Path parameter between rings
	RingCount      int
	Debug          bool // Show the metrics line
}

type projected struct {
	x, y  int
	depth float64
	glyph rune
	color tcell.Color
}

// Terminal is the presentation sink
type Terminal struct {
	screen  tcell.Screen
	opts    Options
	clock   Clock
	records RecordSource
	metrics *status.Registry

	effects *Effects
	stars   *Starfield

	lastFrame time.Time
	drawList  []projected
}

// NewTerminal creates a renderer over an initialized screen
// records and metrics may be nil
func NewTerminal(screen tcell.Screen, opts Options, clock Clock, records RecordSource, metrics *status.Registry) *Terminal {
	if opts.RingCount <= 0 {
		opts.RingCount = 16
	}
	return &Terminal{
		screen:   screen,
		opts:     opts,
		clock:    clock,
		records:  records,
		metrics:  metrics,
		effects:  NewEffects(clock, 0x5eed),
		stars:    NewStarfield(0xbeef),
		drawList: make([]projected, 0, 128),
	}
}

// Effects returns the event handler driving one-shot visuals; register it with the loop
func (t *Terminal) Effects() *Effects {
	return t.effects
}

// Present draws one frame from snap
func (t *Terminal) Present(snap *game.Snapshot) {
	now := t.clock.Now()
	dt := 0.0
	if !t.lastFrame.IsZero() {
		dt = math.Min(now.Sub(t.lastFrame).Seconds(), maxFrameDelta)
	}
	t.lastFrame = now
	t.effects.expire(now)

	bg := RgbBackground
	if t.effects.Flashing(now) {
		bg = RgbDamageFlash
	}
	base := tcell.StyleDefault.Background(bg).Foreground(RgbHudText)
	t.screen.Fill(' ', base)

	w, h := t.screen.Size()
	run := snap.Run

	switch {
	case !run.IsPlaying && !run.Ended:
		t.stars.Advance(dt, 1)
		cam := t.camera(snap, w, h, now)
		t.drawStars(cam, bg)
		t.drawTitle(w, h, bg)

	case run.Ended:
		cam := t.camera(snap, w, h, now)
		t.drawScene(snap, cam, bg)
		t.drawHUD(snap, w, bg)
		t.drawGameOver(snap, w, h, bg)

	default:
		if !run.Paused {
			t.stars.Advance(dt, snap.EffectiveSpeed)
		}
		cam := t.camera(snap, w, h, now)
		t.drawScene(snap, cam, bg)
		t.drawPopups(cam, w, bg)
		t.drawHUD(snap, w, bg)
		if banner := t.effects.Banner(now); banner != "" {
			t.drawCentered(w, h/4, banner, tcell.StyleDefault.Background(bg).Foreground(RgbBanner).Bold(true))
		}
		if run.Paused {
			t.drawPaused(w, h, bg)
		}
	}

	if t.opts.Debug && t.metrics != nil && h > 0 {
		t.drawText(0, h-1, strings.Join(t.metrics.Lines(), "  "), tcell.StyleDefault.Background(bg).Foreground(RgbDebug))
	}

	t.screen.Show()
}

// camera sits on the player with an orthonormal basis built from the path frame
func (t *Terminal) camera(snap *game.Snapshot, w, h int, now time.Time) Camera {
	p := snap.Player
	forward := p.Forward
	if forward == (vmath.Vec3F{}) {
		forward = vmath.Vec3F{Z: -1}
	}
	right := p.Right
	if right == (vmath.Vec3F{}) {
		right = vmath.Vec3F{X: 1}
	}
	up := vmath.V3FNormalize(vmath.V3FCross(right, forward))

	cam := NewCamera(p.Position, forward, right, up, w, h)
	cam.shakeX, cam.shakeY = t.effects.Shake(now)
	return cam
}

func (t *Terminal) drawScene(snap *game.Snapshot, cam Camera, bg tcell.Color) {
	t.drawStars(cam, bg)
	t.drawTunnel(snap, cam, bg)
	t.drawEntities(snap, cam, bg)
}

func (t *Terminal) drawStars(cam Camera, bg tcell.Color) {
	t.stars.Each(func(right, up, depth float64) {
		world := vmath.V3FAddScaled(cam.Position, cam.Right, right)
		world = vmath.V3FAddScaled(world, cam.Up, up)
		world = vmath.V3FAddScaled(world, cam.Forward, depth)
		x, y, d, ok := cam.Project(world)
		if !ok {
			return
		}
		glyph := '.'
		if d < 5 {
			glyph = '+'
		}
		style := tcell.StyleDefault.Background(bg).Foreground(Dim(RgbStar, 0.35+0.65*fogFactor(d)))
		t.screen.SetContent(x, y, glyph, nil, style)
	})
}

func (t *Terminal) drawTunnel(snap *game.Snapshot, cam Camera, bg tcell.Color) {
	if t.opts.Path == nil || t.opts.RingStep <= 0 {
		return
	}
	r := t.opts.TubeRadius
	for k := 1; k <= t.opts.RingCount; k++ {
		p := snap.Player.PathParameter + float64(k)*t.opts.RingStep
		frame := track.FrameAt(t.opts.Path, p, t.opts.ForwardEpsilon, vmath.WorldUp)
		for j := 0; j < ringSegments; j++ {
			a := 2 * math.Pi * float64(j) / ringSegments
			pt := vmath.V3FAddScaled(frame.Position, frame.Right, r*math.Cos(a))
			pt = vmath.V3FAddScaled(pt, frame.Up, r*math.Sin(a))
			x, y, d, ok := cam.Project(pt)
			if !ok {
				continue
			}
			glyph := '.'
			if d < 2 {
				glyph = ':'
			}
			style := tcell.StyleDefault.Background(bg).Foreground(Dim(RgbTunnelNear, fogFactor(d)))
			t.screen.SetContent(x, y, glyph, nil, style)
		}
	}
}

// drawEntities paints active entities back to front
func (t *Terminal) drawEntities(snap *game.Snapshot, cam Camera, bg tcell.Color) {
	t.drawList = t.drawList[:0]

	for _, e := range snap.Obstacles {
		x, y, d, ok := cam.Project(e.World)
		if !ok {
			continue
		}
		color := RgbObstacle
		if e.Seed&1 == 1 {
			color = RgbObstacleAlt
		}
		t.drawList = append(t.drawList, projected{x: x, y: y, depth: d, glyph: obstacleGlyph(e.Rotation, d), color: color})
	}
	for _, e := range snap.Collectibles {
		x, y, d, ok := cam.Project(e.World)
		if !ok {
			continue
		}
		glyph := '*'
		if d < nearGlyphDist {
			glyph = '@'
		}
		t.drawList = append(t.drawList, projected{x: x, y: y, depth: d, glyph: glyph, color: RgbCollectible})
	}

	sort.Slice(t.drawList, func(i, j int) bool { return t.drawList[i].depth > t.drawList[j].depth })
	for _, p := range t.drawList {
		style := tcell.StyleDefault.Background(bg).Foreground(Dim(p.color, 0.25+0.75*fogFactor(p.depth)))
		if p.depth < nearGlyphDist {
			style = style.Bold(true)
		}
		t.screen.SetContent(p.x, p.y, p.glyph, nil, style)
	}
}

// obstacleGlyph picks a spin frame from the rotation; close obstacles read as solid blocks
func obstacleGlyph(rotation, depth float64) rune {
	if depth < nearGlyphDist {
		return '#'
	}
	a := math.Mod(rotation, math.Pi)
	if a < 0 {
		a += math.Pi
	}
	return spinGlyphs[int(a/(math.Pi/4))%len(spinGlyphs)]
}

func (t *Terminal) drawPopups(cam Camera, w int, bg tcell.Color) {
	now := t.clock.Now()
	style := tcell.StyleDefault.Background(bg).Foreground(RgbCollectPopup).Bold(true)
	for i, p := range t.effects.popups {
		// Drift upward over the popup lifetime
		rise := int((popupDuration - p.until.Sub(now)) / (200 * time.Millisecond))
		x, y, _, ok := cam.Project(p.world)
		if !ok {
			x, y = w/2-len(p.text)/2, 3+i
		}
		t.drawText(x, y-rise, p.text, style)
	}
}
