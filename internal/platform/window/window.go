// Package window runs Space Intruder in a desktop window with Ebitengine.
// The window shows the world at its native resolution, optionally scaled.
package window

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/space-intruder/internal/core"
	"github.com/vovakirdan/space-intruder/internal/games/intruder"
)

// Options configures the window frontend.
type Options struct {
	Scale    float64 // Window size relative to the world; values <= 0 mean 1
	TickRate int     // Simulation ticks per second; values <= 0 mean 60
	Seed     int64   // 0 means time based
	Logger   *log.Logger
}

// Game adapts an intruder game to ebiten.Game.
type Game struct {
	game   *intruder.Game
	keys   keyReader
	logger *log.Logger
	stars  []star
	worldW int
	worldH int
}

func newGame(g *intruder.Game, keys keyReader, logger *log.Logger, seed int64) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	cfg := g.World().Config()
	return &Game{
		game:   g,
		keys:   keys,
		logger: logger,
		stars:  newStarField(seed, cfg.Screen.Width, cfg.Screen.Height),
		worldW: cfg.Screen.Width,
		worldH: cfg.Screen.Height,
	}
}

// Update advances the simulation by one tick.
func (w *Game) Update() error {
	in := readInput(w.keys)
	if in.Has(core.ActionQuit) {
		w.logger.Info("quit", "score", w.game.State().Score)
		return ebiten.Termination
	}

	res := w.game.Step(in)
	for _, ev := range res.Events {
		switch ev.Kind {
		case core.EventGameOver, core.EventRestarted:
			w.logger.Info(ev.Kind.String(), "score", ev.Score, "frame", ev.Frame)
		default:
			w.logger.Debug(ev.Kind.String(), "frame", ev.Frame)
		}
	}
	return nil
}

// Draw renders the current snapshot.
func (w *Game) Draw(screen *ebiten.Image) {
	drawSnapshot(screen, w.game.Snapshot(), w.stars)
}

// Layout keeps the logical screen at world size; ebiten scales it to the window.
func (w *Game) Layout(_, _ int) (int, int) {
	return w.worldW, w.worldH
}

// Run opens the window and blocks until it is closed or the player quits.
func Run(g *intruder.Game, opts Options) error {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.TickRate <= 0 {
		opts.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	cfg := g.World().Config()
	g.Reset(core.RuntimeConfig{
		ScreenW:  cfg.Screen.Width,
		ScreenH:  cfg.Screen.Height,
		TickRate: opts.TickRate,
		Seed:     opts.Seed,
	})

	w := newGame(g, ebitenKeys{}, opts.Logger, opts.Seed)
	ebiten.SetWindowSize(int(float64(w.worldW)*opts.Scale), int(float64(w.worldH)*opts.Scale))
	ebiten.SetWindowTitle(g.Title())
	ebiten.SetTPS(opts.TickRate)

	w.logger.Info("game started", "game", g.ID(), "seed", opts.Seed, "fps", opts.TickRate, "scale", opts.Scale)
	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
