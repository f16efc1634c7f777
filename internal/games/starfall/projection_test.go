package starfall

import (
	"math"
	"testing"

	"github.com/vovakirdan/starfall/internal/core"
)

func newTestProjection() *Projection {
	return NewProjection(600, 100, 2000)
}

func TestProjectCenter(t *testing.T) {
	p := newTestProjection()

	pt, ok := p.Project(0, 0)
	if !ok {
		t.Fatal("view center should project")
	}
	if math.Abs(pt.X-VirtualW/2) > 1e-9 || math.Abs(pt.Y-VirtualH/2) > 1e-9 {
		t.Errorf("view center projected to (%v, %v), expected viewport center", pt.X, pt.Y)
	}
}

func TestProjectBackHemisphere(t *testing.T) {
	p := newTestProjection()

	if _, ok := p.Project(180, 0); ok {
		t.Error("antipode should have no projection")
	}
	if _, ok := p.Project(-120, 0); ok {
		t.Error("point 120 degrees away should be behind the horizon")
	}
}

func TestProjectBoundary(t *testing.T) {
	p := newTestProjection()

	// 90 degrees east sits exactly on the horizon: still projected, at
	// the disc edge, and still visible (the predicate is inclusive).
	pt, ok := p.Project(90, 0)
	if !ok {
		t.Fatal("horizon point should project")
	}
	if math.Abs(pt.X-(VirtualW/2+600)) > 1e-6 {
		t.Errorf("horizon point X = %v, expected disc edge", pt.X)
	}
	if !p.Visible(pt) {
		t.Error("point exactly on the disc edge should be visible")
	}
}

func TestProjectPole(t *testing.T) {
	p := newTestProjection()

	pt, ok := p.Project(0, 90)
	if !ok {
		t.Fatal("north pole should project from an equatorial view")
	}
	if math.Abs(pt.Y-(VirtualH/2-600)) > 1e-6 {
		t.Errorf("north pole Y = %v, expected top of disc", pt.Y)
	}
}

func TestVisibleRadius(t *testing.T) {
	p := newTestProjection()

	if !p.Visible(core.V2(VirtualW/2, VirtualH/2)) {
		t.Error("disc center should be visible")
	}
	if p.Visible(core.V2(VirtualW/2+601, VirtualH/2)) {
		t.Error("point outside the disc should not be visible")
	}
}

func TestScaleClamp(t *testing.T) {
	p := newTestProjection()

	p.SetScale(9999)
	if p.Scale() != 2000 {
		t.Errorf("Scale() = %v after zooming past max, expected 2000", p.Scale())
	}
	p.SetScale(1)
	if p.Scale() != 100 {
		t.Errorf("Scale() = %v after zooming past min, expected 100", p.Scale())
	}
}

func TestRotateWrapsAndClamps(t *testing.T) {
	p := newTestProjection()

	p.RotateBy(400, 0)
	lon, _ := p.Rotation()
	if math.Abs(lon-40) > 1e-9 {
		t.Errorf("longitude after +400 rotation = %v, expected wrap to 40", lon)
	}

	p.RotateBy(0, 200)
	_, lat := p.Rotation()
	if lat != 90 {
		t.Errorf("latitude after +200 tilt = %v, expected clamp to 90", lat)
	}
}

func TestRotationChangesVisibility(t *testing.T) {
	p := newTestProjection()

	p.RotateBy(180, 0)
	if _, ok := p.Project(0, 0); ok {
		t.Error("old view center should be behind the horizon after a half turn")
	}
	if _, ok := p.Project(180, 0); !ok {
		t.Error("antipode should be front and center after a half turn")
	}
}
