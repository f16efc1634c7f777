package starfall

import (
	"math"

	"github.com/vovakirdan/starfall/internal/core"
)

// Virtual rendering space. All projection math happens in these fixed
// coordinates; the render layer maps them to whatever terminal size the
// platform provides, and maps pointer input back.
const (
	VirtualW = 1600.0
	VirtualH = 1200.0
)

// Projection converts spherical entity coordinates into virtual screen
// points using an orthographic projection: the starfield is a sphere seen
// from infinitely far away, so the back hemisphere is never drawn.
type Projection struct {
	rotLon float64 // View center longitude, degrees
	rotLat float64 // View center latitude, degrees

	scale    float64 // Sphere radius, virtual pixels
	minScale float64
	maxScale float64

	cx, cy float64 // Projection center, virtual pixels
}

// NewProjection creates a projection centered on the virtual viewport.
func NewProjection(scale, minScale, maxScale float64) *Projection {
	p := &Projection{
		minScale: minScale,
		maxScale: maxScale,
		cx:       VirtualW / 2,
		cy:       VirtualH / 2,
	}
	p.SetScale(scale)
	return p
}

// Project maps spherical coordinates (degrees) to a virtual screen point.
// The second return value is false when the point lies on the back
// hemisphere and has no defined projection.
func (p *Projection) Project(lon, lat float64) (core.Vec2, bool) {
	phi := lat * math.Pi / 180
	phi0 := p.rotLat * math.Pi / 180
	dLam := (lon - p.rotLon) * math.Pi / 180

	sinPhi, cosPhi := math.Sincos(phi)
	sinPhi0, cosPhi0 := math.Sincos(phi0)
	sinLam, cosLam := math.Sincos(dLam)

	// Angular distance check: behind the horizon means undefined.
	cosC := sinPhi0*sinPhi + cosPhi0*cosPhi*cosLam
	if cosC < 0 {
		return core.Vec2{}, false
	}

	x := p.cx + p.scale*cosPhi*sinLam
	y := p.cy - p.scale*(cosPhi0*sinPhi-sinPhi0*cosPhi*cosLam)
	return core.V2(x, y), true
}

// Visible reports whether a projected point falls inside the starfield
// disc. Both rendering and hit resolution use this same predicate.
func (p *Projection) Visible(pt core.Vec2) bool {
	return pt.Dist(core.V2(p.cx, p.cy)) <= p.scale
}

// RotateBy adjusts the view center. Longitude wraps, latitude clamps to the
// poles.
func (p *Projection) RotateBy(dLon, dLat float64) {
	p.rotLon = core.WrapDeg(p.rotLon + dLon)
	p.rotLat = core.ClampF(p.rotLat+dLat, -90, 90)
}

// Rotation returns the current view center in degrees.
func (p *Projection) Rotation() (lon, lat float64) {
	return p.rotLon, p.rotLat
}

// SetScale sets the sphere radius, clamped to the configured range.
func (p *Projection) SetScale(s float64) {
	p.scale = core.ClampF(s, p.minScale, p.maxScale)
}

// Scale returns the current sphere radius.
func (p *Projection) Scale() float64 {
	return p.scale
}

// SetTranslate moves the projection center.
func (p *Projection) SetTranslate(cx, cy float64) {
	p.cx = cx
	p.cy = cy
}

// Center returns the projection center in virtual pixels.
func (p *Projection) Center() core.Vec2 {
	return core.V2(p.cx, p.cy)
}
