package starfall

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/starfall/internal/core"
)

// Effect lifetimes in wall-clock milliseconds.
const (
	laserLifeMs     = 250
	explosionLifeMs = 800
)

// Fragment count per explosion: 15 + Intn(11), so 15..25.
const (
	fragmentFloor = 15
	fragmentSpan  = 11
)

// Laser is a transient beam drawn between two virtual points.
type Laser struct {
	From, To core.Vec2
	Color    core.Color
	Enemy    bool
	Expires  uint64 // Tick after which the beam disappears
}

// Fragment is one debris particle of an explosion, expressed as an offset
// from the blast center that it reaches over the explosion lifetime.
type Fragment struct {
	DX, DY float64
	Delay  uint64 // Ticks after the blast before the fragment shows
}

// Explosion is a transient blast at a destroyed target's position.
type Explosion struct {
	At        core.Vec2
	Radius    float64
	Born      uint64
	Expires   uint64
	Fragments []Fragment
}

// effectSet owns all transient visuals. It is purely cosmetic: nothing in
// the simulation reads back from it.
type effectSet struct {
	lasers     []Laser
	explosions []Explosion
}

func (e *effectSet) addLaser(from, to core.Vec2, c core.Color, enemy bool, expires uint64) {
	e.lasers = append(e.lasers, Laser{From: from, To: to, Color: c, Enemy: enemy, Expires: expires})
}

// addExplosion spawns a blast with randomized debris. Fragment offsets are
// spread over the full circle at up to the blast radius.
func (e *effectSet) addExplosion(rng *rand.Rand, at core.Vec2, radius float64, now, life uint64) {
	n := fragmentFloor + rng.Intn(fragmentSpan)
	frags := make([]Fragment, n)
	for i := range frags {
		angle := rng.Float64() * 2 * math.Pi
		dist := radius * (0.4 + rng.Float64()*0.6)
		frags[i] = Fragment{
			DX:    dist * math.Cos(angle),
			DY:    dist * math.Sin(angle),
			Delay: uint64(rng.Intn(int(life/4) + 1)),
		}
	}
	e.explosions = append(e.explosions, Explosion{
		At:        at,
		Radius:    radius,
		Born:      now,
		Expires:   now + life,
		Fragments: frags,
	})
}

// prune drops expired effects.
func (e *effectSet) prune(now uint64) {
	lasers := e.lasers[:0]
	for _, l := range e.lasers {
		if l.Expires > now {
			lasers = append(lasers, l)
		}
	}
	e.lasers = lasers

	explosions := e.explosions[:0]
	for _, x := range e.explosions {
		if x.Expires > now {
			explosions = append(explosions, x)
		}
	}
	e.explosions = explosions
}

func (e *effectSet) clear() {
	e.lasers = nil
	e.explosions = nil
}
