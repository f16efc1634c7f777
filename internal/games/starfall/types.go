// Package starfall implements the Starfall game: a rotating starfield of
// destructible targets viewed through an orthographic projection. The player
// clears hostile ships, leaps between procedurally generated galaxies, and
// survives return fire for as long as possible.
package starfall

// Phase is the top-level game state. Exactly one phase is active at a time
// and every transition goes through the simulation core.
type Phase int

const (
	PhaseGenerating Phase = iota // New galaxy being populated
	PhaseIdle                    // Accepting player commands
	PhaseFiring                  // Shot in flight, input locked
	PhaseLeaping                 // Traveling to the next galaxy
	PhasePaused                  // Simulation frozen
	PhaseGameOver                // Health depleted, restart only
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseGenerating:
		return "Generating"
	case PhaseIdle:
		return "Idle"
	case PhaseFiring:
		return "Firing"
	case PhaseLeaping:
		return "Leaping"
	case PhasePaused:
		return "Paused"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Kind classifies an entity on the starfield.
type Kind int

const (
	KindStar Kind = iota
	KindAsteroid
	KindShip
	KindHeart
	KindBoost

	kindCount
)

// String returns the kind name used in cues and score logs.
func (k Kind) String() string {
	switch k {
	case KindStar:
		return "star"
	case KindAsteroid:
		return "asteroid"
	case KindShip:
		return "ship"
	case KindHeart:
		return "heart_star"
	case KindBoost:
		return "boost_star"
	default:
		return "unknown"
	}
}

// idPrefix returns the namespace prefix for generated entity IDs.
func (k Kind) idPrefix() string {
	switch k {
	case KindStar:
		return "star"
	case KindAsteroid:
		return "ast"
	case KindShip:
		return "ship"
	case KindHeart:
		return "heart"
	case KindBoost:
		return "boost"
	default:
		return "obj"
	}
}

// ShipClass determines a hostile's size, score value and movement pattern.
type ShipClass int

const (
	ClassFighter ShipClass = iota
	ClassInterceptor
	ClassCruiser
	ClassBomber
	ClassDreadnought

	classCount
)

// String returns the class name.
func (c ShipClass) String() string {
	switch c {
	case ClassFighter:
		return "fighter"
	case ClassInterceptor:
		return "interceptor"
	case ClassCruiser:
		return "cruiser"
	case ClassBomber:
		return "bomber"
	case ClassDreadnought:
		return "dreadnought"
	default:
		return "unknown"
	}
}

// Tier is the ship generation. Mk2 ships appear from level 2 on and are
// worth double points.
type Tier int

const (
	TierBase Tier = iota
	TierMk2
)

// Pattern is a ship's movement behavior.
type Pattern int

const (
	PatternStatic Pattern = iota
	PatternStrafe         // Horizontal sweep along a latitude band
	PatternFlank          // Circular orbit around a fixed pivot
)

// classStats holds the per-class tuning table: movement pattern, size range
// in virtual pixels, base score and explosion blast multiplier.
var classStats = [classCount]struct {
	pattern          Pattern
	minSize, maxSize float64
	basePoints       int
	blast            float64
}{
	ClassFighter:     {PatternStrafe, 8, 12, 10, 1.6},
	ClassInterceptor: {PatternFlank, 9, 13, 15, 1.8},
	ClassCruiser:     {PatternStatic, 12, 18, 25, 2.0},
	ClassBomber:      {PatternStatic, 14, 20, 50, 2.2},
	ClassDreadnought: {PatternStatic, 18, 26, 100, 2.6},
}

// Object is a single entity on the starfield. Ships carry the full set of
// fields; passive entities leave the ship-only fields zero.
type Object struct {
	ID   string
	Kind Kind

	// Position in spherical coordinates, degrees.
	Lon float64 // (-180, 180]
	Lat float64 // [-90, 90]

	Size  float64 // Visual radius, virtual pixels
	Color uint8   // Palette index (stars only)

	// Ship-only fields.
	Class ShipClass
	Tier  Tier

	// Strafe: angular velocity, degrees per tick. VelLat is zero for
	// generated ships; the bounce clamp still honors it if set.
	VelLon float64
	VelLat float64

	// Flank: orbit direction around the field origin.
	CW bool
}

// Points returns the score value for destroying this object.
// Non-ship targets are worth nothing.
func (o *Object) Points() int {
	if o.Kind != KindShip {
		return 0
	}
	pts := classStats[o.Class].basePoints
	if o.Tier == TierMk2 {
		pts *= 2
	}
	return pts
}

// BlastRadius returns the explosion radius for this object in virtual
// pixels.
func (o *Object) BlastRadius() float64 {
	mult := 1.0
	switch o.Kind {
	case KindShip:
		mult = classStats[o.Class].blast
		if o.Tier == TierMk2 {
			mult *= 1.25
		}
	case KindAsteroid:
		mult = 1.2
	case KindHeart, KindBoost:
		mult = 1.4
	}
	return o.Size * mult
}

// Hostile reports whether this object counts toward the level-clear check.
func (o *Object) Hostile() bool {
	return o.Kind == KindShip
}

// Player holds the player's resources for the current run.
type Player struct {
	Health    int
	Boost     int // Ultra boost charges
	Score     int
	HighScore int
	Level     int
	ColorIdx  int // Index into the laser palette
}
