package starfall

// Snapshot is a structural view of the simulation state, used by tests and
// debug tooling. It deliberately excludes cosmetic effects.
type Snapshot struct {
	Tick       uint64
	Phase      Phase
	Level      int
	Score      int
	HighScore  int
	Health     int
	Boost      int
	Population int
	Ships      int
	Pending    int
	RotLon     float64
	RotLat     float64
	Scale      float64
	GalaxyName string
	AutoAim    bool
}

// Snapshot captures the current simulation state.
func (g *Game) Snapshot() Snapshot {
	lon, lat := g.proj.Rotation()
	return Snapshot{
		Tick:       g.tick,
		Phase:      g.phase,
		Level:      g.player.Level,
		Score:      g.player.Score,
		HighScore:  g.player.HighScore,
		Health:     g.player.Health,
		Boost:      g.player.Boost,
		Population: len(g.objects),
		Ships:      g.shipCount(),
		Pending:    len(g.pending),
		RotLon:     lon,
		RotLat:     lat,
		Scale:      g.proj.Scale(),
		GalaxyName: g.galaxy.Name,
		AutoAim:    g.autoAim,
	}
}

// Objects returns a copy of the live population, in encounter order.
func (g *Game) Objects() []Object {
	out := make([]Object, len(g.objects))
	copy(out, g.objects)
	return out
}

// Galaxy returns the current galaxy's flavor text.
func (g *Game) Galaxy() (name, description string) {
	return g.galaxy.Name, g.galaxy.Description
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}
