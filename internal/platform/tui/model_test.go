package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/starfall/internal/core"
)

// recordingGame counts lifecycle calls so platform behavior can be
// asserted without a real simulation.
type recordingGame struct {
	resets int
	steps  int
}

func (g *recordingGame) ID() string               { return "recording" }
func (g *recordingGame) Title() string            { return "Recording" }
func (g *recordingGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *recordingGame) Render(dst *core.Screen)  {}
func (g *recordingGame) State() core.GameState    { return core.GameState{} }
func (g *recordingGame) Step(core.InputFrame) core.StepResult {
	g.steps++
	return core.StepResult{}
}

func TestResizeDoesNotResetRun(t *testing.T) {
	game := &recordingGame{}
	m := NewModel(game, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	m.Init()
	if game.resets != 1 {
		t.Fatalf("resets = %d after init, expected 1", game.resets)
	}

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(Model)

	if game.resets != 1 {
		t.Errorf("resets = %d after resize, expected the run to carry on", game.resets)
	}
	if m.screen.Width() != 120 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d after resize, expected 120x40",
			m.screen.Width(), m.screen.Height())
	}
	if m.config.ScreenW != 120 || m.config.ScreenH != 40 {
		t.Errorf("config = %dx%d after resize, expected 120x40",
			m.config.ScreenW, m.config.ScreenH)
	}
}
