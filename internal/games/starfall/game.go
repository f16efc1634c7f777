package starfall

import (
	"math/rand"

	"github.com/vovakirdan/starfall/internal/config"
	"github.com/vovakirdan/starfall/internal/core"
	"github.com/vovakirdan/starfall/internal/events"
	"github.com/vovakirdan/starfall/internal/narrative"
	"github.com/vovakirdan/starfall/internal/registry"
)

func init() {
	registry.Register("starfall", func() registry.Game {
		return New()
	})
	registry.Register("starfall_zen", func() registry.Game {
		return NewZen()
	})
}

// View control tuning, degrees.
const (
	keyRotateDeg  = 1.5 // Per rotate action
	dragRotateDeg = 1.2 // Per dragged cell
)

var (
	configPath string
	difficulty config.DifficultyPreset
)

// SetConfigPath sets a custom gameplay config path used by the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficulty selects a difficulty preset applied on the next Reset.
func SetDifficulty(p config.DifficultyPreset) {
	difficulty = p
}

// Game implements the Starfall simulation behind registry.Game.
// All state changes happen inside Step; the platform only feeds input
// frames and renders snapshots.
type Game struct {
	cfg    core.RuntimeConfig
	params config.StarfallConfig
	rng    *rand.Rand
	gen    *Generator
	proj   *Projection
	zen    bool // Zen mode: no return fire

	phase   Phase
	tick    uint64
	pending []scheduledEvent

	player  Player
	objects []Object

	galaxy       narrative.GalaxyInfo
	galaxyLoaded bool
	src          narrative.Source

	leapLevelUp   bool
	enemyCooldown uint64
	aimCooldown   uint64
	autoAim       bool

	effects effectSet
	bus     *events.Bus
}

// New creates the campaign game.
func New() *Game {
	return &Game{}
}

// NewZen creates the zen variant: identical galaxies, but hostiles never
// return fire, so runs only end by quitting.
func NewZen() *Game {
	return &Game{zen: true}
}

// ID implements registry.Game.
func (g *Game) ID() string {
	if g.zen {
		return "starfall_zen"
	}
	return "starfall"
}

// Title implements registry.Game.
func (g *Game) Title() string {
	if g.zen {
		return "Starfall (Zen)"
	}
	return "Starfall"
}

// SetCueBus attaches a cue bus. Optional; a nil bus drops all cues.
func (g *Game) SetCueBus(bus *events.Bus) {
	g.bus = bus
}

// SetNarrativeSource overrides the galaxy flavor-text source.
// Defaults to the seeded procedural source.
func (g *Game) SetNarrativeSource(src narrative.Source) {
	g.src = src
}

// SetHighScore implements registry.HighScoreAware. Called by the platform
// before the first tick with the persisted best score.
func (g *Game) SetHighScore(score int) {
	if score > g.player.HighScore {
		g.player.HighScore = score
	}
}

// SetLaserColor selects the cosmetic laser color by palette index.
// Used by the platform to restore the persisted preference.
func (g *Game) SetLaserColor(idx int) {
	if idx < 0 {
		idx = 0
	}
	g.player.ColorIdx = idx % len(core.LaserPalette)
}

// LaserColorIndex returns the current laser palette index.
func (g *Game) LaserColorIndex() int {
	return g.player.ColorIdx
}

// Reset implements registry.Game. It loads gameplay parameters, seeds the
// RNG and enters the first galaxy.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = cfg

	params, err := config.LoadStarfall(configPath)
	if err != nil {
		params = config.DefaultStarfallConfig()
	}
	config.ApplyStarfallPreset(&params, difficulty)
	g.params = params

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.gen = NewGenerator(g.rng)
	if g.src == nil {
		g.src = narrative.NewProcedural(cfg.Seed)
	}
	g.proj = NewProjection(
		g.params.Projection.InitialScale,
		g.params.Projection.MinScale,
		g.params.Projection.MaxScale,
	)

	g.player.HighScore = 0
	g.restart()
}

// restart begins a fresh run. Unlike Reset it survives the session: the
// high score and the entity ID counters carry over.
func (g *Game) restart() {
	g.tick = 0
	g.clearPending()
	g.effects.clear()

	high := g.player.HighScore
	g.player = Player{
		Health:    g.params.Player.MaxHealth,
		Boost:     g.params.Player.InitialBoost,
		Level:     1,
		HighScore: high,
	}

	g.objects = nil
	g.galaxyLoaded = false
	g.leapLevelUp = false
	g.enemyCooldown = 0
	g.aimCooldown = 0

	g.enterGenerating()
}

// Step implements registry.Game: one fixed simulation tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.phase == PhaseGameOver {
		// Every command except restart is ignored.
		if in.Has(core.ActionRestart) {
			g.restart()
		}
		g.runDue()
		g.effects.prune(g.tick)
		return g.result()
	}

	if in.Has(core.ActionPause) {
		g.togglePause()
	}
	if in.Has(core.ActionCycleColor) {
		g.player.ColorIdx = (g.player.ColorIdx + 1) % len(core.LaserPalette)
	}
	if in.Has(core.ActionAutoAim) {
		g.autoAim = !g.autoAim
	}

	if g.phase != PhasePaused {
		g.stepView(in)
	}

	if g.phase == PhaseIdle {
		switch {
		case in.Has(core.ActionLeap):
			g.enterLeaping(false)
		case in.Has(core.ActionBoost):
			g.fireUltraBoost()
		case in.Clicked:
			g.handleClick(in.ClickX, in.ClickY)
		}
	}

	// Commands above may have left Idle; everything below re-checks.
	if g.phase == PhaseIdle {
		for i := range g.objects {
			MoveShip(&g.objects[i])
		}
		if !g.zen {
			g.stepEnemyFire()
		}
		g.stepAutoAim()
	}

	g.runDue()
	g.effects.prune(g.tick)
	return g.result()
}

// stepView applies rotation and zoom. Ambient drift runs whenever the
// player is not actively dragging.
func (g *Game) stepView(in core.InputFrame) {
	if in.DragDX != 0 || in.DragDY != 0 {
		g.proj.RotateBy(-float64(in.DragDX)*dragRotateDeg, float64(in.DragDY)*dragRotateDeg)
	} else {
		g.proj.RotateBy(g.params.Projection.DriftPerTick, 0)
	}

	if in.Has(core.ActionRotateLeft) {
		g.proj.RotateBy(-keyRotateDeg, 0)
	}
	if in.Has(core.ActionRotateRight) {
		g.proj.RotateBy(keyRotateDeg, 0)
	}
	if in.Has(core.ActionRotateUp) {
		g.proj.RotateBy(0, keyRotateDeg)
	}
	if in.Has(core.ActionRotateDown) {
		g.proj.RotateBy(0, -keyRotateDeg)
	}
	if in.Has(core.ActionZoomIn) {
		g.proj.SetScale(g.proj.Scale() + g.params.Projection.ZoomStep)
	}
	if in.Has(core.ActionZoomOut) {
		g.proj.SetScale(g.proj.Scale() - g.params.Projection.ZoomStep)
	}
}

// togglePause freezes or resumes the simulation. Only Idle can be paused;
// shots in flight and leaps run to completion first.
func (g *Game) togglePause() {
	switch g.phase {
	case PhaseIdle:
		g.phase = PhasePaused
	case PhasePaused:
		g.phase = PhaseIdle
	}
}

// enterLeaping starts travel to the next galaxy. Only an automatic leap
// after a full clear advances the level; a manual leap re-rolls the current
// one.
func (g *Game) enterLeaping(levelUp bool) {
	g.phase = PhaseLeaping
	g.leapLevelUp = levelUp

	span := g.params.Phases.LeapMaxMs - g.params.Phases.LeapMinMs
	delay := g.params.Phases.LeapMinMs
	if span > 0 {
		delay += g.rng.Intn(span + 1)
	}
	g.schedule(delay, evLeapDone, "")
	g.bus.Publish(events.LeapStarted{LevelUp: levelUp})
}

// finishLeap lands the leap and regenerates.
func (g *Game) finishLeap() {
	if g.phase != PhaseLeaping {
		return
	}
	if g.leapLevelUp {
		g.player.Level++
	}
	g.enterGenerating()
}

// enterGenerating rolls the next galaxy population and fetches its flavor
// text, then holds briefly before play resumes.
func (g *Game) enterGenerating() {
	g.phase = PhaseGenerating
	g.objects = g.gen.Generate(g.player.Level)
	g.galaxy = narrative.Fetch(g.src)
	g.galaxyLoaded = true
	g.enemyCooldown = 0
	g.schedule(g.params.Phases.GenerateMs, evGenerateDone, "")
	g.bus.Publish(events.GalaxyEntered{Name: g.galaxy.Name, Level: g.player.Level})
}

// finishGenerating opens the galaxy for play.
func (g *Game) finishGenerating() {
	if g.phase != PhaseGenerating {
		return
	}
	g.phase = PhaseIdle
	g.checkAutoLeap()
}

// checkAutoLeap leaps onward with a level-up once every hostile in a
// populated, fully loaded galaxy is gone.
func (g *Game) checkAutoLeap() {
	if g.phase != PhaseIdle {
		return
	}
	if !g.galaxyLoaded || len(g.objects) == 0 {
		return
	}
	if g.shipCount() == 0 {
		g.enterLeaping(true)
	}
}

// enterGameOver ends the run.
func (g *Game) enterGameOver() {
	g.phase = PhaseGameOver
	g.bus.Publish(events.GameOver{Score: g.player.Score})
}

// State implements registry.Game.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.player.Score,
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.phase == PhasePaused,
	}
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State()}
}

// playerPos is the cannon position in virtual pixels: bottom center of the
// viewport.
func (g *Game) playerPos() core.Vec2 {
	return core.V2(VirtualW/2, VirtualH-60)
}

func (g *Game) laserColor() core.Color {
	return core.LaserPalette[g.player.ColorIdx%len(core.LaserPalette)]
}

// find returns the live object with the given ID, or nil.
func (g *Game) find(id string) *Object {
	for i := range g.objects {
		if g.objects[i].ID == id {
			return &g.objects[i]
		}
	}
	return nil
}

// removeObject deletes an object by ID, preserving encounter order.
func (g *Game) removeObject(id string) {
	for i := range g.objects {
		if g.objects[i].ID == id {
			g.objects = append(g.objects[:i], g.objects[i+1:]...)
			return
		}
	}
}

// shipCount returns the number of hostiles still alive.
func (g *Game) shipCount() int {
	n := 0
	for i := range g.objects {
		if g.objects[i].Hostile() {
			n++
		}
	}
	return n
}
