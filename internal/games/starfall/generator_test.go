package starfall

import (
	"math/rand"
	"reflect"
	"testing"
)

func newTestGenerator(seed int64) *Generator {
	return NewGenerator(rand.New(rand.NewSource(seed)))
}

func TestGeneratePopulationSize(t *testing.T) {
	objs := newTestGenerator(1).Generate(1)
	if len(objs) != PopulationSize {
		t.Fatalf("Generate produced %d objects, expected %d", len(objs), PopulationSize)
	}
}

func TestGenerateCoordinateRanges(t *testing.T) {
	objs := newTestGenerator(2).Generate(1)
	for _, o := range objs {
		if o.Lon <= -180 || o.Lon > 180 {
			t.Fatalf("object %s longitude %v out of range", o.ID, o.Lon)
		}
		if o.Lat < -90 || o.Lat > 90 {
			t.Fatalf("object %s latitude %v out of range", o.ID, o.Lat)
		}
		if o.Size <= 0 {
			t.Fatalf("object %s has non-positive size %v", o.ID, o.Size)
		}
	}
}

func TestGenerateUniqueIDsAcrossGalaxies(t *testing.T) {
	gen := newTestGenerator(3)
	seen := make(map[string]bool)

	for galaxy := 0; galaxy < 3; galaxy++ {
		for _, o := range gen.Generate(1) {
			if seen[o.ID] {
				t.Fatalf("duplicate ID %q in galaxy %d", o.ID, galaxy)
			}
			seen[o.ID] = true
		}
	}
}

func TestGenerateHostileCap(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		objs := newTestGenerator(seed).Generate(1)
		ships := 0
		for _, o := range objs {
			if o.Kind == KindShip {
				ships++
			}
		}
		// The ship band rolls far more often than the cap allows, so
		// the count always lands on the cap itself: 4..23.
		if ships < shipCapFloor || ships > shipCapFloor+shipCapSpan-1 {
			t.Errorf("seed %d: %d hostiles, expected between %d and %d",
				seed, ships, shipCapFloor, shipCapFloor+shipCapSpan-1)
		}
	}
}

func TestGenerateTierByLevel(t *testing.T) {
	for _, o := range newTestGenerator(4).Generate(1) {
		if o.Kind == KindShip && o.Tier != TierBase {
			t.Fatalf("level 1 ship %s has tier %v, expected base", o.ID, o.Tier)
		}
	}
	for _, o := range newTestGenerator(4).Generate(2) {
		if o.Kind == KindShip && o.Tier != TierMk2 {
			t.Fatalf("level 2 ship %s has tier %v, expected mk2", o.ID, o.Tier)
		}
	}
}

func TestGenerateMovementAssignment(t *testing.T) {
	objs := newTestGenerator(5).Generate(1)
	for _, o := range objs {
		if o.Kind != KindShip {
			continue
		}
		switch o.Class {
		case ClassFighter:
			if o.VelLon == 0 {
				t.Errorf("fighter %s has no horizontal sweep", o.ID)
			}
			if o.VelLat != 0 {
				t.Errorf("fighter %s has vertical velocity %v, expected none", o.ID, o.VelLat)
			}
		case ClassInterceptor:
			// Flankers orbit the origin; they carry no linear velocity.
			if o.VelLon != 0 || o.VelLat != 0 {
				t.Errorf("interceptor %s has linear velocity (%v, %v), expected none",
					o.ID, o.VelLon, o.VelLat)
			}
		default:
			if o.VelLon != 0 || o.VelLat != 0 {
				t.Errorf("%s %s should be static", o.Class, o.ID)
			}
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := newTestGenerator(77).Generate(1)
	b := newTestGenerator(77).Generate(1)
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed should produce identical populations")
	}
}
