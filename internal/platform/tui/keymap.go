package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/space-intruder/internal/core"
)

// keyHoldDuration is how long a movement or fire key counts as held after its last key event.
// Terminals send no key-up events; auto-repeat refreshes the hold while the key is down.
const keyHoldDuration = 150 * time.Millisecond

// KeyMap defines the terminal key bindings.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Up      key.Binding
	Down    key.Binding
	Fire    key.Binding
	Pause   key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns arrows/WASD for movement, space to fire, P, R and Q.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "down"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "shoot"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Fire, k.Pause, k.Restart, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Fire, k.Pause, k.Restart, k.Quit},
	}
}

// MapKey translates a key message to a game action.
// Returns ActionNone for unbound keys.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Fire):
		return core.ActionFire
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}

// isHoldable reports whether an action stays active for the hold window.
// Pause and restart are edge-triggered: one key event, one action.
func isHoldable(a core.Action) bool {
	switch a {
	case core.ActionLeft, core.ActionRight, core.ActionUp, core.ActionDown, core.ActionFire:
		return true
	}
	return false
}

// holdTracker turns discrete key events into per-tick held state.
// It counts in ticks rather than wall time so a frame's input does not depend on scheduling jitter.
type holdTracker struct {
	holdTicks int
	remaining map[core.Action]int
	pressed   core.InputFrame
}

func newHoldTracker(tickRate int) *holdTracker {
	return &holdTracker{
		holdTicks: holdTicksFor(tickRate),
		remaining: make(map[core.Action]int),
		pressed:   core.NewInputFrame(),
	}
}

// holdTicksFor converts keyHoldDuration into whole ticks, at least one.
func holdTicksFor(tickRate int) int {
	if tickRate <= 0 {
		return 1
	}
	tick := time.Second / time.Duration(tickRate)
	return max(1, int((keyHoldDuration+tick-1)/tick))
}

// Press records a key event for the action.
func (h *holdTracker) Press(a core.Action) {
	if a == core.ActionNone {
		return
	}
	if isHoldable(a) {
		h.remaining[a] = h.holdTicks
		return
	}
	h.pressed.Set(a)
}

// Frame returns the input for the next tick and ages the holds by one tick.
func (h *holdTracker) Frame() core.InputFrame {
	in := h.pressed.Clone()
	h.pressed.Clear()

	for a, n := range h.remaining {
		in.Set(a)
		if n <= 1 {
			delete(h.remaining, a)
		} else {
			h.remaining[a] = n - 1
		}
	}
	return in
}

// Release drops every held action.
func (h *holdTracker) Release() {
	clear(h.remaining)
	h.pressed.Clear()
}
