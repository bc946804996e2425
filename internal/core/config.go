package core

// RuntimeConfig contains configuration passed to games at initialization.
// Screen dimensions describe the render target, not the simulated world.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current status of a game as seen by the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Step after each simulation tick.
type StepResult struct {
	State GameState
	// Events lists what happened during the tick, in order.
	Events []Event
}

// EventKind identifies a notable transition during a tick.
type EventKind int

const (
	EventGameOver EventKind = iota + 1
	EventRestarted
	EventPaused
	EventResumed
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventGameOver:
		return "game_over"
	case EventRestarted:
		return "restarted"
	case EventPaused:
		return "paused"
	case EventResumed:
		return "resumed"
	default:
		return "unknown"
	}
}

// Event is a transition reported by a game so the platform can log it.
type Event struct {
	Kind  EventKind
	Frame int
	Score int
}
