package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/space-intruder/internal/core"
)

// fakeGame records the input frames it is stepped with.
type fakeGame struct {
	resets int
	frames []core.InputFrame
	state  core.GameState
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(core.RuntimeConfig) { g.resets++ }

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	return core.StepResult{State: g.state}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "FAKE")
}

func (g *fakeGame) State() core.GameState { return g.state }

func newTestModel(g *fakeGame) Model {
	return NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 10, TickRate: 10, Seed: 1}, nil)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm, cmd
}

func TestModelInitResetsGame(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	if cmd := m.Init(); cmd == nil {
		t.Error("Init should start the tick loop")
	}
	if g.resets != 1 {
		t.Errorf("resets = %d, want 1", g.resets)
	}
}

func TestModelTickStepsWithHeldKeys(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	m, _ = update(t, m, runeKey('a'))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})

	var cmd tea.Cmd
	for i := 0; i < 3; i++ {
		m, cmd = update(t, m, TickMsg{})
		if cmd == nil {
			t.Fatal("tick should schedule the next tick")
		}
	}

	if len(g.frames) != 3 {
		t.Fatalf("steps = %d, want 3", len(g.frames))
	}
	for i := 0; i < 2; i++ {
		if !g.frames[i].Has(core.ActionLeft) || !g.frames[i].Has(core.ActionFire) {
			t.Errorf("frame %d should hold left and fire", i)
		}
	}
	if g.frames[2].Has(core.ActionLeft) {
		t.Error("left should be released after the hold window")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)
	m.Init()

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if g.resets != 1 {
		t.Errorf("resize must not reset the game, resets = %d", g.resets)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30-footerRows {
		t.Errorf("screen = %dx%d, want 100x%d", m.screen.Width(), m.screen.Height(), 30-footerRows)
	}
}

func TestModelQuit(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if !m.quitting {
		t.Error("model should be quitting")
	}
	if m.View() != "" {
		t.Error("View should be empty after quit")
	}
}

func TestModelView(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	view := m.View()
	if !strings.Contains(view, "FAKE") {
		t.Error("View should contain the game render")
	}
	if !strings.Contains(view, "shoot") {
		t.Error("View should contain the help footer")
	}
}

func TestModelDefaults(t *testing.T) {
	m := NewModel(&fakeGame{}, core.RuntimeConfig{ScreenW: 80, ScreenH: 24}, nil)

	if m.config.Seed == 0 {
		t.Error("zero seed should be replaced with a time-based one")
	}
	if m.config.TickRate != 60 {
		t.Errorf("TickRate = %d, want 60", m.config.TickRate)
	}
	if m.logger == nil {
		t.Error("logger should default to a discarding logger")
	}
}

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorRed)
	s.DrawText(2, 0, "c")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(lines))
	}
	for _, want := range []string{"ab", "c"} {
		if !strings.Contains(lines[0], want) {
			t.Errorf("row 0 %q should contain %q", lines[0], want)
		}
	}
}
