package intruder

import (
	"fmt"
	"math"

	"github.com/vovakirdan/space-intruder/internal/core"
)

// Visual characters for terminal rendering
const (
	PlayerNoseChar = '▲'
	PlayerBodyChar = '█'
	EnemyBodyChar  = '▓'
	EnemyTipChar   = '▼'
	BulletChar     = '|'
	SparkChar      = '*'
	EmberChar      = '·'
)

const controlsHint = "WASD/Arrows: Move | SPACE: Shoot | P: Pause"

// viewport maps world units onto the terminal cell grid.
type viewport struct {
	sx, sy float64
}

func newViewport(dst *core.Screen, worldW, worldH int) viewport {
	return viewport{
		sx: float64(dst.Width()) / float64(worldW),
		sy: float64(dst.Height()) / float64(worldH),
	}
}

// cells converts a world rectangle to cells. Anything visible covers at least one cell.
func (v viewport) cells(r core.RectF) core.Rect {
	x := int(math.Floor(r.X * v.sx))
	y := int(math.Floor(r.Y * v.sy))
	w := max(1, int(math.Round(r.W*v.sx)))
	h := max(1, int(math.Round(r.H*v.sy)))
	return core.NewRect(x, y, w, h)
}

func (v viewport) point(x, y float64) (int, int) {
	return int(math.Floor(x * v.sx)), int(math.Floor(y * v.sy))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	snap := g.Snapshot()
	vp := newViewport(dst, snap.WorldW, snap.WorldH)

	for _, fx := range snap.Explosions {
		drawExplosion(dst, vp, fx)
	}
	for _, e := range snap.Enemies {
		drawEnemy(dst, vp.cells(e.Rect()))
	}
	for _, b := range snap.Bullets {
		dst.DrawRect(vp.cells(b.Rect()), BulletChar, core.ColorBrightYellow)
	}
	drawPlayer(dst, vp.cells(snap.Player.Rect()))

	// HUD
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", snap.Score), core.ColorBrightWhite)
	dst.DrawTextColored(1, 1, fmt.Sprintf("Health: %d%%", snap.Health), core.ColorWhite)

	if snap.ShowHint && snap.Phase == PhasePlaying {
		dst.DrawTextCentered(dst.Height()-1, controlsHint, core.ColorGray)
	}

	switch snap.Phase {
	case PhasePaused:
		drawCenteredMessage(dst, core.ColorBrightCyan, "PAUSED", "Press P to resume")
	case PhaseGameOver:
		drawCenteredMessage(dst, core.ColorBrightRed, "GAME OVER",
			fmt.Sprintf("Final Score: %d", snap.Score), "Press R to Restart")
	}
}

// drawPlayer draws the craft as a solid body with the nose on the top row.
func drawPlayer(dst *core.Screen, r core.Rect) {
	if r.H > 1 {
		dst.DrawRect(core.NewRect(r.X, r.Y+1, r.W, r.H-1), PlayerBodyChar, core.ColorBlue)
	}
	cx, _ := r.Center()
	if r.H == 1 {
		dst.DrawRect(r, PlayerBodyChar, core.ColorBlue)
	}
	dst.SetColored(cx, r.Y, PlayerNoseChar, core.ColorBrightBlue)
}

// drawEnemy draws an inverted craft: wide on top, pointed at the bottom.
func drawEnemy(dst *core.Screen, r core.Rect) {
	if r.H > 1 {
		dst.DrawRect(core.NewRect(r.X, r.Y, r.W, r.H-1), EnemyBodyChar, core.ColorRed)
	} else {
		dst.DrawRect(r, EnemyBodyChar, core.ColorRed)
	}
	cx, _ := r.Center()
	dst.SetColored(cx, r.Bottom()-1, EnemyTipChar, core.ColorBrightRed)
}

func drawExplosion(dst *core.Screen, vp viewport, fx Explosion) {
	fade := fx.Fade()
	if fade <= 0 {
		return
	}
	ch := SparkChar
	if fade < 0.5 {
		ch = EmberChar
	}
	for _, p := range fx.Particles {
		x, y := vp.point(p.X, p.Y)
		color := core.ColorRed
		if p.Hot {
			color = core.ColorYellow
		}
		dst.SetColored(x, y, ch, color)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
// The first line is the title; the rest are separated from it by a blank row.
func drawCenteredMessage(dst *core.Screen, color core.Color, title string, lines ...string) {
	w := dst.Width()
	h := dst.Height()

	boxW := len([]rune(title))
	for _, l := range lines {
		boxW = max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := 4 + len(lines)
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, color)

	dst.DrawTextColored(boxX+(boxW-len([]rune(title)))/2, boxY+1, title, color)
	for i, l := range lines {
		dst.DrawText(boxX+(boxW-len([]rune(l)))/2, boxY+3+i, l)
	}
}
