package starfall

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/starfall/internal/core"
)

// PopulationSize is the number of entity slots rolled per galaxy.
const PopulationSize = 500

// Kind thresholds for a single uniform roll in [0, 1). Evaluated in order;
// the ship band falls through to asteroid once the hostile cap is reached.
const (
	heartCut    = 0.01
	boostCut    = 0.02
	shipCut     = 0.26
	asteroidCut = 0.51
)

// Hostile cap per galaxy: 4 + Intn(20), so at most 23 ships.
const (
	shipCapFloor = 4
	shipCapSpan  = 20
)

// Cumulative ship class weights: 40/20/20/15/5.
var classCuts = [classCount]float64{
	ClassFighter:     0.40,
	ClassInterceptor: 0.60,
	ClassCruiser:     0.80,
	ClassBomber:      0.95,
	ClassDreadnought: 1.0,
}

// Generator rolls galaxy populations. ID counters persist across galaxies
// so every entity ID stays unique for the whole session.
type Generator struct {
	rng      *rand.Rand
	counters [kindCount]int
}

// NewGenerator creates a generator drawing from the given RNG.
func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Generate rolls a full galaxy population for the given level.
// Mk2 ships appear only from level 2 on; at level 2+ every ship is mk2.
func (g *Generator) Generate(level int) []Object {
	objects := make([]Object, 0, PopulationSize)

	shipCap := shipCapFloor + g.rng.Intn(shipCapSpan)
	ships := 0

	for i := 0; i < PopulationSize; i++ {
		roll := g.rng.Float64()
		var kind Kind
		switch {
		case roll < heartCut:
			kind = KindHeart
		case roll < boostCut:
			kind = KindBoost
		case roll < shipCut && ships < shipCap:
			kind = KindShip
		case roll < asteroidCut:
			kind = KindAsteroid
		default:
			kind = KindStar
		}

		o := Object{
			ID:   g.nextID(kind),
			Kind: kind,
			Lon:  core.WrapDeg(g.rng.Float64()*360 - 180),
			Lat:  g.rng.Float64()*180 - 90,
		}

		switch kind {
		case KindStar:
			o.Size = 1 + g.rng.Float64()*2
			o.Color = uint8(g.rng.Intn(len(core.StarPalette)))
		case KindAsteroid:
			o.Size = 3 + g.rng.Float64()*4
		case KindHeart, KindBoost:
			o.Size = 6
		case KindShip:
			ships++
			g.rollShip(&o, level)
		}

		objects = append(objects, o)
	}

	return objects
}

// rollShip fills the ship-only fields: class, tier, size and movement.
func (g *Generator) rollShip(o *Object, level int) {
	roll := g.rng.Float64()
	for c := ClassFighter; c < classCount; c++ {
		if roll < classCuts[c] {
			o.Class = c
			break
		}
	}

	if level > 1 {
		o.Tier = TierMk2
	}

	stats := classStats[o.Class]
	o.Size = stats.minSize + g.rng.Float64()*(stats.maxSize-stats.minSize)

	switch stats.pattern {
	case PatternStrafe:
		// Horizontal sweep only. The latitude channel stays zero so
		// fighters hold their band.
		v := 0.05 + g.rng.Float64()*0.25
		if g.rng.Intn(2) == 0 {
			v = -v
		}
		o.VelLon = v
	case PatternFlank:
		// Flankers orbit the field origin from wherever they spawned;
		// only the direction is rolled here.
		o.CW = g.rng.Intn(2) == 0
	}
}

// nextID assigns the next session-unique ID for a kind.
func (g *Generator) nextID(kind Kind) string {
	id := fmt.Sprintf("%s-%d", kind.idPrefix(), g.counters[kind])
	g.counters[kind]++
	return id
}
