package window

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/space-intruder/internal/core"
	"github.com/vovakirdan/space-intruder/internal/games/intruder"
)

const (
	skyBands  = 60
	starCount = 100
)

var (
	skyTop    = color.RGBA{0x00, 0x00, 0x11, 0xff}
	skyMiddle = color.RGBA{0x00, 0x00, 0x22, 0xff}
	skyBottom = color.RGBA{0x11, 0x00, 0x22, 0xff}

	hudGreen    = color.RGBA{0x00, 0xff, 0x00, 0xff}
	barBack     = color.RGBA{0x33, 0x33, 0x33, 0xff}
	hullColor   = color.RGBA{0xa5, 0xac, 0xb4, 0xff}
	wingColor   = color.RGBA{0x6a, 0x72, 0x79, 0xff}
	canopyColor = color.RGBA{100, 200, 255, 0xff}
	enemyColor  = color.RGBA{0xcc, 0x22, 0x22, 0xff}
	enemyDark   = color.RGBA{0x66, 0x11, 0x11, 0xff}
	bulletColor = color.RGBA{0xff, 0xff, 0x00, 0xff}
	ember       = color.RGBA{0xff, 0x66, 0x00, 0xff}
	spark       = color.RGBA{0xff, 0xdd, 0x33, 0xff}
	shade       = color.RGBA{0, 0, 0, 0xb3}
)

var hudFace font.Face = basicfont.Face7x13

// whiteSubImage is the source texture for filled paths, created on first draw.
var whiteSubImage *ebiten.Image

func whiteTexture() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// star is one point of the static background.
type star struct {
	x, y float32
	size float32
}

// newStarField scatters stars over the world. The layout only depends on the seed.
func newStarField(seed int64, w, h int) []star {
	rng := rand.New(rand.NewSource(seed))
	stars := make([]star, starCount)
	for i := range stars {
		stars[i] = star{
			x:    float32(rng.Float64() * float64(w)),
			y:    float32(rng.Float64() * float64(h)),
			size: float32(rng.Float64()*2 + 1),
		}
	}
	return stars
}

// twinkle returns the brightness of star i at the given frame, in [0.4, 1].
func twinkle(frame, i int) float64 {
	return math.Sin(float64(frame)*0.05+float64(i))*0.3 + 0.7
}

// lerpColor blends a into b by t in [0, 1].
func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	t = core.ClampF(t, 0, 1)
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), mix(a.A, b.A)}
}

// skyColor returns the background gradient at height fraction t (0 top, 1 bottom).
func skyColor(t float64) color.RGBA {
	if t < 0.5 {
		return lerpColor(skyTop, skyMiddle, t*2)
	}
	return lerpColor(skyMiddle, skyBottom, (t-0.5)*2)
}

// withAlpha scales a color's alpha by f in [0, 1].
func withAlpha(c color.RGBA, f float64) color.RGBA {
	f = core.ClampF(f, 0, 1)
	// color.RGBA is premultiplied
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: uint8(float64(c.A) * f),
	}
}

// healthColor picks the bar color: green above half, yellow above a quarter, red below.
func healthColor(health int) color.RGBA {
	pct := float64(max(health, 0)) / 100
	switch {
	case pct > 0.5:
		return hudGreen
	case pct > 0.25:
		return color.RGBA{0xff, 0xff, 0x00, 0xff}
	default:
		return color.RGBA{0xff, 0x00, 0x00, 0xff}
	}
}

// trianglePoints returns the corners of an isosceles triangle inscribed in r.
// With up set the apex is on the top edge, otherwise on the bottom edge.
func trianglePoints(r core.RectF, up bool) [3][2]float32 {
	apexY, baseY := r.Y, r.Bottom()
	if !up {
		apexY, baseY = baseY, apexY
	}
	cx := r.X + r.W/2
	return [3][2]float32{
		{float32(cx), float32(apexY)},
		{float32(r.Right()), float32(baseY)},
		{float32(r.X), float32(baseY)},
	}
}

func fillTriangle(dst *ebiten.Image, pts [3][2]float32, clr color.RGBA) {
	var path vector.Path
	path.MoveTo(pts[0][0], pts[0][1])
	path.LineTo(pts[1][0], pts[1][1])
	path.LineTo(pts[2][0], pts[2][1])
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(clr.R) / 0xff
		vs[i].ColorG = float32(clr.G) / 0xff
		vs[i].ColorB = float32(clr.B) / 0xff
		vs[i].ColorA = float32(clr.A) / 0xff
	}

	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	dst.DrawTriangles(vs, is, whiteTexture(), op)
}

func drawBackground(dst *ebiten.Image, w, h int, stars []star, frame int) {
	bandH := float32(h) / skyBands
	for i := 0; i < skyBands; i++ {
		t := float64(i) / float64(skyBands-1)
		vector.DrawFilledRect(dst, 0, float32(i)*bandH, float32(w), bandH+1, skyColor(t), false)
	}
	for i, s := range stars {
		vector.DrawFilledCircle(dst, s.x, s.y, s.size, withAlpha(color.RGBA{0xff, 0xff, 0xff, 0xff}, twinkle(frame, i)), true)
	}
}

func drawPlayer(dst *ebiten.Image, p intruder.Player) {
	r := p.Rect()
	fillTriangle(dst, trianglePoints(r, true), wingColor)

	// Hull and canopy
	hull := core.NewRectF(r.X+r.W*0.35, r.Y+r.H*0.2, r.W*0.3, r.H*0.75)
	vector.DrawFilledRect(dst, float32(hull.X), float32(hull.Y), float32(hull.W), float32(hull.H), hullColor, true)
	cx, _ := r.Center()
	vector.DrawFilledCircle(dst, float32(cx), float32(r.Y+r.H*0.45), float32(r.W*0.1), canopyColor, true)
}

func drawEnemy(dst *ebiten.Image, e intruder.Enemy) {
	r := e.Rect()
	fillTriangle(dst, trianglePoints(r, false), enemyColor)
	inner := core.NewRectF(r.X+r.W*0.25, r.Y, r.W*0.5, r.H*0.6)
	fillTriangle(dst, trianglePoints(inner, false), enemyDark)
}

func drawBullet(dst *ebiten.Image, b intruder.Bullet) {
	r := b.Rect()
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), bulletColor, false)
}

func drawExplosion(dst *ebiten.Image, fx intruder.Explosion) {
	fade := fx.Fade()
	if fade <= 0 {
		return
	}
	for _, p := range fx.Particles {
		c := ember
		if p.Hot {
			c = spark
		}
		vector.DrawFilledCircle(dst, float32(p.X), float32(p.Y), float32(p.Size*fade), withAlpha(c, fade), true)
	}
}

func drawHUD(dst *ebiten.Image, snap intruder.Snapshot) {
	text.Draw(dst, fmt.Sprintf("Score: %d", snap.Score), hudFace, 10, 20, hudGreen)

	const barX, barY, barW, barH = 40, 30, 200, 14
	text.Draw(dst, "HP", hudFace, 10, barY+barH-2, hudGreen)
	vector.DrawFilledRect(dst, barX, barY, barW, barH, barBack, false)
	fill := float32(barW) * float32(core.Clamp(snap.Health, 0, 100)) / 100
	vector.DrawFilledRect(dst, barX, barY, fill, barH, healthColor(snap.Health), false)
	vector.StrokeRect(dst, barX, barY, barW, barH, 2, color.White, false)
}

func drawHint(dst *ebiten.Image, w, h int) {
	const boxW, boxH = 400, 30
	x := float32(w)/2 - boxW/2
	y := float32(h) - 50
	vector.DrawFilledRect(dst, x, y, boxW, boxH, color.Black, false)
	drawCentered(dst, "WASD/Arrows: Move | SPACE: Shoot | P: Pause", w, int(y)+20, color.White)
}

// drawOverlay darkens the playfield and prints a title with lines below it.
func drawOverlay(dst *ebiten.Image, w, h int, titleColor color.Color, title string, lines ...string) {
	vector.DrawFilledRect(dst, 0, 0, float32(w), float32(h), shade, false)

	y := h/2 - 40
	drawCentered(dst, title, w, y, titleColor)
	for i, l := range lines {
		drawCentered(dst, l, w, y+30+i*20, color.White)
	}
}

func drawCentered(dst *ebiten.Image, s string, w, y int, clr color.Color) {
	x := (w - font.MeasureString(hudFace, s).Ceil()) / 2
	text.Draw(dst, s, hudFace, x, y, clr)
}

// drawSnapshot paints one full frame.
func drawSnapshot(dst *ebiten.Image, snap intruder.Snapshot, stars []star) {
	w, h := snap.WorldW, snap.WorldH
	drawBackground(dst, w, h, stars, snap.Frame)

	drawPlayer(dst, snap.Player)
	for _, b := range snap.Bullets {
		drawBullet(dst, b)
	}
	for _, e := range snap.Enemies {
		drawEnemy(dst, e)
	}
	for _, fx := range snap.Explosions {
		drawExplosion(dst, fx)
	}

	drawHUD(dst, snap)
	if snap.ShowHint && snap.Phase == intruder.PhasePlaying {
		drawHint(dst, w, h)
	}

	switch snap.Phase {
	case intruder.PhasePaused:
		drawOverlay(dst, w, h, hudGreen, "PAUSED", "Press P to resume")
	case intruder.PhaseGameOver:
		drawOverlay(dst, w, h, color.RGBA{0xff, 0x00, 0x00, 0xff}, "GAME OVER",
			fmt.Sprintf("Final Score: %d", snap.Score), "Press R to Restart")
	}
}
