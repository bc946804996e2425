package window

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/space-intruder/internal/config"
	"github.com/vovakirdan/space-intruder/internal/core"
	"github.com/vovakirdan/space-intruder/internal/games/intruder"
)

// fakeKeys is a scripted keyboard.
type fakeKeys struct {
	held map[ebiten.Key]bool
	just map[ebiten.Key]bool
}

func newFakeKeys() *fakeKeys {
	return &fakeKeys{held: map[ebiten.Key]bool{}, just: map[ebiten.Key]bool{}}
}

func (k *fakeKeys) IsPressed(key ebiten.Key) bool   { return k.held[key] }
func (k *fakeKeys) JustPressed(key ebiten.Key) bool { return k.just[key] }

func TestReadInputBindings(t *testing.T) {
	tests := []struct {
		name string
		held []ebiten.Key
		just []ebiten.Key
		want []core.Action
	}{
		{"arrows", []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyArrowUp}, nil, []core.Action{core.ActionLeft, core.ActionUp}},
		{"wasd", []ebiten.Key{ebiten.KeyD, ebiten.KeyS}, nil, []core.Action{core.ActionRight, core.ActionDown}},
		{"fire", []ebiten.Key{ebiten.KeySpace}, nil, []core.Action{core.ActionFire}},
		{"pause", nil, []ebiten.Key{ebiten.KeyP}, []core.Action{core.ActionPause}},
		{"restart", nil, []ebiten.Key{ebiten.KeyR}, []core.Action{core.ActionRestart}},
		{"quit", nil, []ebiten.Key{ebiten.KeyQ}, []core.Action{core.ActionQuit}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keys := newFakeKeys()
			for _, k := range tt.held {
				keys.held[k] = true
			}
			for _, k := range tt.just {
				keys.just[k] = true
			}

			in := readInput(keys)
			for _, a := range tt.want {
				assert.True(t, in.Has(a), "expected %v", a)
			}
			assert.Len(t, in.Actions, len(tt.want))
		})
	}
}

func TestHeldPauseKeyDoesNotRepeat(t *testing.T) {
	keys := newFakeKeys()
	keys.held[ebiten.KeyP] = true

	assert.False(t, readInput(keys).Has(core.ActionPause))
}

func TestGameUpdate(t *testing.T) {
	g := intruder.New(config.DefaultIntruderConfig())
	g.Reset(core.RuntimeConfig{Seed: 3})
	keys := newFakeKeys()
	w := newGame(g, keys, nil, 3)

	keys.held[ebiten.KeyArrowLeft] = true
	require.NoError(t, w.Update())
	assert.Equal(t, 375.0, g.World().Player().X)
	assert.Equal(t, 1, g.World().Frame())

	keys.held = map[ebiten.Key]bool{}
	keys.just[ebiten.KeyQ] = true
	assert.ErrorIs(t, w.Update(), ebiten.Termination)
}

func TestLayoutIsWorldSize(t *testing.T) {
	g := intruder.New(config.DefaultIntruderConfig())
	w := newGame(g, newFakeKeys(), nil, 1)

	lw, lh := w.Layout(1920, 1080)
	assert.Equal(t, 800, lw)
	assert.Equal(t, 600, lh)
}

func TestStarField(t *testing.T) {
	a := newStarField(7, 800, 600)
	b := newStarField(7, 800, 600)
	require.Len(t, a, starCount)
	assert.Equal(t, a, b)

	for _, s := range a {
		assert.GreaterOrEqual(t, s.x, float32(0))
		assert.Less(t, s.x, float32(800))
		assert.GreaterOrEqual(t, s.y, float32(0))
		assert.Less(t, s.y, float32(600))
		assert.GreaterOrEqual(t, s.size, float32(1))
		assert.LessOrEqual(t, s.size, float32(3))
	}
}

func TestTwinkleRange(t *testing.T) {
	for frame := 0; frame < 500; frame += 7 {
		for i := 0; i < 10; i++ {
			v := twinkle(frame, i)
			assert.GreaterOrEqual(t, v, 0.4-1e-9)
			assert.LessOrEqual(t, v, 1.0+1e-9)
		}
	}
}

func TestSkyGradient(t *testing.T) {
	assert.Equal(t, skyTop, skyColor(0))
	assert.Equal(t, skyMiddle, skyColor(0.5))
	assert.Equal(t, skyBottom, skyColor(1))
}

func TestHealthColor(t *testing.T) {
	assert.Equal(t, hudGreen, healthColor(100))
	assert.Equal(t, uint8(0xff), healthColor(40).G, "yellow between a quarter and half")
	assert.Equal(t, uint8(0x00), healthColor(10).G, "red below a quarter")
	assert.Equal(t, healthColor(0), healthColor(-20))
}

func TestTrianglePoints(t *testing.T) {
	r := core.NewRectF(380, 540, 40, 40)

	up := trianglePoints(r, true)
	assert.Equal(t, [2]float32{400, 540}, up[0])
	assert.Equal(t, float32(580), up[1][1])
	assert.Equal(t, float32(580), up[2][1])

	down := trianglePoints(r, false)
	assert.Equal(t, [2]float32{400, 580}, down[0])
	assert.Equal(t, float32(540), down[1][1])
}

func TestWithAlpha(t *testing.T) {
	c := withAlpha(spark, 0.5)
	assert.Equal(t, uint8(0x7f), c.A)
	assert.Equal(t, spark, withAlpha(spark, 2))
}
