package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/space-intruder/internal/core"
)

// keyReader reports keyboard state for the current tick.
type keyReader interface {
	IsPressed(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
}

// ebitenKeys reads the real keyboard.
type ebitenKeys struct{}

func (ebitenKeys) IsPressed(k ebiten.Key) bool   { return ebiten.IsKeyPressed(k) }
func (ebitenKeys) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

// heldBindings are active on every tick the key is down.
var heldBindings = map[core.Action][]ebiten.Key{
	core.ActionLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	core.ActionRight: {ebiten.KeyArrowRight, ebiten.KeyD},
	core.ActionUp:    {ebiten.KeyArrowUp, ebiten.KeyW},
	core.ActionDown:  {ebiten.KeyArrowDown, ebiten.KeyS},
	core.ActionFire:  {ebiten.KeySpace},
}

// pressBindings trigger once per key press.
var pressBindings = map[core.Action][]ebiten.Key{
	core.ActionPause:   {ebiten.KeyP, ebiten.KeyEscape},
	core.ActionRestart: {ebiten.KeyR},
	core.ActionQuit:    {ebiten.KeyQ},
}

// readInput builds the input frame for one tick.
func readInput(keys keyReader) core.InputFrame {
	in := core.NewInputFrame()
	for action, ks := range heldBindings {
		for _, k := range ks {
			if keys.IsPressed(k) {
				in.Set(action)
				break
			}
		}
	}
	for action, ks := range pressBindings {
		for _, k := range ks {
			if keys.JustPressed(k) {
				in.Set(action)
				break
			}
		}
	}
	return in
}
