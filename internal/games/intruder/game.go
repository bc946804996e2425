// Package intruder implements Space Intruder, a single-screen shooter.
// The player flies a craft at the bottom of the screen and shoots down enemies
// that descend from the top. Touching an enemy ends the game.
//
// The simulation runs in world units (800x600 by default) and knows nothing
// about terminals or windows; frontends scale it to their own surface.
package intruder

import (
	"github.com/vovakirdan/space-intruder/internal/config"
	"github.com/vovakirdan/space-intruder/internal/core"
)

// Game adapts State to the platform: it maps input frames to controls and
// handles pause and restart.
type Game struct {
	cfg    config.IntruderConfig
	state  *State
	paused bool
}

// New creates a Space Intruder game with the given configuration.
// Call Reset before the first Step.
func New(cfg config.IntruderConfig) *Game {
	g := &Game{cfg: cfg}
	g.state = NewState(cfg, 0)
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "intruder"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Space Intruder"
}

// Reset starts a fresh game seeded from the runtime config.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.state = NewState(g.cfg, cfg.Seed)
	g.paused = false
}

// Step advances the game by one tick.
//
// Order within a tick: restart (only after game over), pause toggle, input, update.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var events []core.Event

	if g.state.GameOver() {
		if in.Has(core.ActionRestart) {
			g.state.ResetGame()
			g.paused = false
			events = append(events, g.event(core.EventRestarted))
		}
		return core.StepResult{State: g.State(), Events: events}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
		if g.paused {
			events = append(events, g.event(core.EventPaused))
		} else {
			events = append(events, g.event(core.EventResumed))
		}
	}

	if g.paused {
		return core.StepResult{State: g.State(), Events: events}
	}

	g.state.HandleInput(ControlsFromInput(in))
	g.state.Update()

	if g.state.GameOver() {
		events = append(events, g.event(core.EventGameOver))
	}

	return core.StepResult{State: g.State(), Events: events}
}

func (g *Game) event(kind core.EventKind) core.Event {
	return core.Event{Kind: kind, Frame: g.state.Frame(), Score: g.state.Score()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score(),
		GameOver: g.state.GameOver(),
		Paused:   g.paused,
	}
}

// World exposes the underlying simulation, mainly for tests and tools.
func (g *Game) World() *State {
	return g.state
}
