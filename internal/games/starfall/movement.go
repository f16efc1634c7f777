package starfall

import (
	"math"

	"github.com/vovakirdan/starfall/internal/core"
)

// FlankStepRad is the orbit angle advanced per tick by flanking ships.
const FlankStepRad = 0.005

// strafeLatLimit keeps strafing ships away from the poles, where longitude
// sweeps degenerate.
const strafeLatLimit = 85.0

// MoveShip advances one ship by one tick according to its pattern.
// Non-ship objects and static ships do not move.
func MoveShip(o *Object) {
	if o.Kind != KindShip {
		return
	}
	switch classStats[o.Class].pattern {
	case PatternStrafe:
		moveStrafe(o)
	case PatternFlank:
		moveFlank(o)
	}
}

// moveStrafe sweeps along the longitude with wraparound. If a vertical
// component is ever set, it bounces off the latitude limits.
func moveStrafe(o *Object) {
	o.Lon = core.WrapDeg(o.Lon + o.VelLon)

	if o.VelLat == 0 {
		return
	}
	o.Lat += o.VelLat
	if o.Lat > strafeLatLimit {
		o.Lat = strafeLatLimit
		o.VelLat = -o.VelLat
	} else if o.Lat < -strafeLatLimit {
		o.Lat = -strafeLatLimit
		o.VelLat = -o.VelLat
	}
}

// moveFlank treats (lon, lat) as a Cartesian point and rotates it about
// the field origin at a fixed angular rate. Clockwise means a decreasing
// polar angle. A spawn exactly on the origin gets a small longitude nudge
// so it has a radius to orbit.
func moveFlank(o *Object) {
	if o.Lon == 0 && o.Lat == 0 {
		o.Lon = 1
	}

	r := math.Hypot(o.Lon, o.Lat)
	th := math.Atan2(o.Lat, o.Lon)
	if o.CW {
		th -= FlankStepRad
	} else {
		th += FlankStepRad
	}

	o.Lon = core.WrapDeg(r * math.Cos(th))
	o.Lat = core.ClampF(r*math.Sin(th), -90, 90)
}
