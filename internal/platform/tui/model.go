package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/starfall/internal/core"
	"github.com/vovakirdan/starfall/internal/events"
	"github.com/vovakirdan/starfall/internal/registry"
	"github.com/vovakirdan/starfall/internal/storage"
)

// cueAware is implemented by games that publish gameplay cues.
type cueAware interface {
	SetCueBus(*events.Bus)
}

// laserAware is implemented by games with a selectable laser color.
// The platform restores and persists the preference across sessions.
type laserAware interface {
	SetLaserColor(idx int)
	LaserColorIndex() int
}

// Model is the Bubble Tea model that runs a single game.
// It owns the tick loop, translates keyboard and mouse input into input
// frames, and persists scores.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState

	// Pointer state: a press that never moves is a click, a press that
	// moves drags the view.
	mouseDown  bool
	mouseMoved bool
	lastMouseX int
	lastMouseY int

	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)

	// Seed the persisted best score so the HUD shows it from tick one.
	if aware, ok := m.game.(registry.HighScoreAware); ok && m.store != nil {
		if best, err := m.store.HighScore(m.game.ID()); err == nil {
			aware.SetHighScore(best)
		}
	}

	// Restore the laser color preference.
	if aware, ok := m.game.(laserAware); ok && m.store != nil {
		if v, found, err := m.store.Pref(storage.PrefLaserColor); err == nil && found {
			if idx, convErr := strconv.Atoi(v); convErr == nil {
				aware.SetLaserColor(idx)
			}
		}
	}

	return tickCmd(m.config.TickRate)
}

// AttachCueBus subscribes the game's cue stream, if the game publishes one.
func (m *Model) AttachCueBus(bus *events.Bus) {
	if aware, ok := m.game.(cueAware); ok {
		aware.SetCueBus(bus)
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	// Escape leaves a finished or paused game.
	if action := m.keyMapper.MapKeyToMenuAction(msg); action == MenuActionBack {
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
			return m, nil
		}
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleMouse processes pointer input: wheel zoom, clicks, and drags.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.inputFrame.Set(core.ActionZoomIn)
		return m, nil
	case tea.MouseButtonWheelDown:
		m.inputFrame.Set(core.ActionZoomOut)
		return m, nil
	}

	if msg.Button != tea.MouseButtonLeft && msg.Action != tea.MouseActionRelease {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		m.mouseDown = true
		m.mouseMoved = false
		m.lastMouseX = msg.X
		m.lastMouseY = msg.Y

	case tea.MouseActionMotion:
		if !m.mouseDown {
			return m, nil
		}
		dx := msg.X - m.lastMouseX
		dy := msg.Y - m.lastMouseY
		if dx != 0 || dy != 0 {
			m.inputFrame.AddDrag(dx, dy)
			m.mouseMoved = true
		}
		m.lastMouseX = msg.X
		m.lastMouseY = msg.Y

	case tea.MouseActionRelease:
		if m.mouseDown && !m.mouseMoved {
			m.inputFrame.SetClick(msg.X, msg.Y)
		}
		m.mouseDown = false
	}

	return m, nil
}

// handleResize processes window resize events. The game projects through a
// fixed virtual plane, so a resize only needs a bigger cell buffer; the run
// itself carries on untouched.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	return m, nil
}

// handleTick processes simulation ticks. Restart is a game-level command:
// the game keeps its session state (best score, entity counters) across it.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.gameState.GameOver

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if wasOver && !m.gameState.GameOver {
		// The game restarted itself
		m.scoreSaved = false
	}

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved && m.gameState.Score > 0 {
		if m.store != nil {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveScore(m.game.ID(), m.gameState.Score)
			if aware, ok := m.game.(laserAware); ok {
				//nolint:errcheck // Cosmetic preference, best-effort
				m.store.SetPref(storage.PrefLaserColor, strconv.Itoa(aware.LaserColorIndex()))
			}
		}
		m.scoreSaved = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".starfall", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested to return to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Click to fire, drag to rotate
	)

	_, err := p.Run()
	return err
}
