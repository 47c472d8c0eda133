package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/hyperspace/constants"
	"github.com/lixenwraith/hyperspace/game"
)

const boostBarWidth = 20

// drawHUD draws score, level and health on row 0 and the boost bar on row 1
func (t *Terminal) drawHUD(snap *game.Snapshot, w int, bg tcell.Color) {
	run := snap.Run
	label := tcell.StyleDefault.Background(bg).Foreground(RgbHudLabel)
	value := tcell.StyleDefault.Background(bg).Foreground(RgbHudText).Bold(true)

	x := t.drawText(1, 0, "SCORE ", label)
	t.drawText(x, 0, fmt.Sprintf("%d", int(math.Floor(run.Score))), value)

	level := fmt.Sprintf("LEVEL %d", run.Level)
	t.drawText(w/2-len(level)/2, 0, level, value)

	// Health pips, right aligned
	hx := w - 2*snap.HealthMax
	for i := 0; i < snap.HealthMax; i++ {
		glyph, color := '♥', RgbHealthOn
		if i >= run.Health {
			glyph, color = '♡', RgbHealthOff
		}
		t.screen.SetContent(hx+2*i, 0, glyph, nil, tcell.StyleDefault.Background(bg).Foreground(color))
	}

	t.drawBoostBar(run, 1, bg)
}

func (t *Terminal) drawBoostBar(run game.RunState, y int, bg tcell.Color) {
	label := tcell.StyleDefault.Background(bg).Foreground(RgbHudLabel)
	x := t.drawText(1, y, "BOOST ", label)

	fill := RgbBoostReady
	switch run.Boost {
	case game.BoostActive:
		fill = RgbBoostLive
	case game.BoostCooldown:
		fill = RgbBoostCool
	}
	if t.effects.BoostGlow() {
		bg = RgbBoostGlow
	}

	filled := int(math.Round(run.BoostCharge / constants.BoostMaxCharge * boostBarWidth))
	for i := 0; i < boostBarWidth; i++ {
		color := RgbBoostEmpty
		if i < filled {
			color = fill
		}
		t.screen.SetContent(x+i, y, '█', nil, tcell.StyleDefault.Background(bg).Foreground(color))
	}
	t.drawText(x+boostBarWidth+1, y, run.Boost.String(), tcell.StyleDefault.Background(bg).Foreground(fill))
}

func (t *Terminal) drawTitle(w, h int, bg tcell.Color) {
	title := tcell.StyleDefault.Background(bg).Foreground(RgbTitle).Bold(true)
	text := tcell.StyleDefault.Background(bg).Foreground(RgbHudText)
	dim := tcell.StyleDefault.Background(bg).Foreground(RgbHudLabel)

	y := h/2 - 4
	t.drawCentered(w, y, "H Y P E R S P A C E", title)
	if t.records != nil {
		rec := t.records.Record()
		t.drawCentered(w, y+2, fmt.Sprintf("HIGH SCORE %d   BEST LEVEL %d", int(math.Floor(rec.HighScore)), rec.BestLevel), text)
	}
	t.drawCentered(w, y+4, "ENTER or SPACE to launch", text)
	t.drawCentered(w, y+6, "WASD / arrows steer   SPACE boost   P pause   Q quit", dim)
}

func (t *Terminal) drawPaused(w, h int, bg tcell.Color) {
	t.drawCentered(w, h/2, "PAUSED", tcell.StyleDefault.Background(bg).Foreground(RgbHudText).Bold(true))
	t.drawCentered(w, h/2+2, "P / ESC resume   R restart   Q quit", tcell.StyleDefault.Background(bg).Foreground(RgbHudLabel))
}

func (t *Terminal) drawGameOver(snap *game.Snapshot, w, h int, bg tcell.Color) {
	run := snap.Run
	head := tcell.StyleDefault.Background(bg).Foreground(RgbGameOver).Bold(true)
	text := tcell.StyleDefault.Background(bg).Foreground(RgbHudText)
	dim := tcell.StyleDefault.Background(bg).Foreground(RgbHudLabel)

	y := h/2 - 4
	t.drawCentered(w, y, "GAME OVER", head)
	t.drawCentered(w, y+2, fmt.Sprintf("SCORE %d   LEVEL %d", int(math.Floor(run.Score)), run.Level), text)
	if t.records != nil {
		rec := t.records.Record()
		t.drawCentered(w, y+3, fmt.Sprintf("HIGH SCORE %d   BEST LEVEL %d", int(math.Floor(rec.HighScore)), rec.BestLevel), text)
		if t.records.LastRunWasBest() {
			t.drawCentered(w, y+5, "NEW RECORD!", tcell.StyleDefault.Background(bg).Foreground(RgbNewRecord).Bold(true))
		}
	}
	t.drawCentered(w, y+7, "ENTER / R restart   M menu   Q quit", dim)
}

// drawText writes s from (x, y) and returns the column after it; clipped at the screen edge
func (t *Terminal) drawText(x, y int, s string, style tcell.Style) int {
	w, h := t.screen.Size()
	if y < 0 || y >= h {
		return x + len([]rune(s))
	}
	for _, r := range s {
		if x >= 0 && x < w {
			t.screen.SetContent(x, y, r, nil, style)
		}
		x++
	}
	return x
}

func (t *Terminal) drawCentered(w, y int, s string, style tcell.Style) {
	t.drawText(w/2-len([]rune(s))/2, y, s, style)
}
