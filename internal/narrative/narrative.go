// Package narrative supplies flavor text for each generated galaxy.
// The simulation core treats it as an unreliable external collaborator:
// any failure resolves to a fixed fallback, never an error.
package narrative

import (
	"errors"
	"math/rand"
)

// GalaxyInfo is the display name and description for a galaxy.
type GalaxyInfo struct {
	Name        string
	Description string
}

// Fallback is returned whenever a source fails or produces an incomplete
// result. The simulation never blocks or crashes on this dependency.
var Fallback = GalaxyInfo{
	Name:        "Andromeda Anomaly",
	Description: "A familiar galaxy, twisted by an unknown cosmic event.",
}

// Source generates galaxy flavor text. Implementations may call out to
// remote services; callers go through Fetch, which absorbs failures.
type Source interface {
	Generate() (GalaxyInfo, error)
}

// Fetch resolves galaxy info from a source, substituting Fallback on a nil
// source, an error, or a result with missing required fields.
func Fetch(src Source) GalaxyInfo {
	if src == nil {
		return Fallback
	}
	info, err := src.Generate()
	if err != nil || info.Name == "" || info.Description == "" {
		return Fallback
	}
	return info
}

var namePrefixes = []string{
	"Vela", "Cygnus", "Lyra", "Orion", "Draco", "Pavo",
	"Carina", "Hydra", "Perseus", "Phoenix", "Aquila", "Corvus",
}

var nameSuffixes = []string{
	"Reach", "Expanse", "Drift", "Verge", "Cascade", "Maw",
	"Spiral", "Cluster", "Veil", "Rift", "Halo", "Shoal",
}

var descriptions = []string{
	"A dense spiral teeming with hostile patrol wings.",
	"An old barred galaxy, its arms littered with derelict hulls.",
	"A young starburst region where raiders hide in the glare.",
	"A quiet-looking cluster with an unusually loud distress band.",
	"A collapsing dwarf galaxy held together by stubbornness alone.",
	"A lensed field of stars that bends every targeting solution.",
}

// Procedural is the default offline source: it composes names and
// descriptions from fixed word lists using a seeded RNG.
type Procedural struct {
	rng *rand.Rand
}

// NewProcedural creates a procedural source with the given seed.
func NewProcedural(seed int64) *Procedural {
	return &Procedural{rng: rand.New(rand.NewSource(seed))}
}

// Generate composes a random galaxy name and description.
func (p *Procedural) Generate() (GalaxyInfo, error) {
	if p == nil || p.rng == nil {
		return GalaxyInfo{}, errors.New("narrative: source not initialized")
	}
	return GalaxyInfo{
		Name:        namePrefixes[p.rng.Intn(len(namePrefixes))] + " " + nameSuffixes[p.rng.Intn(len(nameSuffixes))],
		Description: descriptions[p.rng.Intn(len(descriptions))],
	}, nil
}
