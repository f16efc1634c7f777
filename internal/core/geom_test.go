package core

import (
	"math"
	"testing"
)

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"left of rect", 5, 15, false},
		{"above rect", 15, 5, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestVec2Dist(t *testing.T) {
	a := V2(0, 0)
	b := V2(3, 4)

	if d := a.Dist(b); math.Abs(d-5) > 1e-9 {
		t.Errorf("Dist() = %f, expected 5", d)
	}
	if d := b.Sub(a).Len(); math.Abs(d-5) > 1e-9 {
		t.Errorf("Sub().Len() = %f, expected 5", d)
	}
}

func TestWrapDeg(t *testing.T) {
	tests := []struct {
		in, out float64
	}{
		{0, 0},
		{180, 180},
		{181, -179},
		{-180, 180},
		{-181, 179},
		{360, 0},
		{540, 180},
		{-540, 180},
	}

	for _, tc := range tests {
		if got := WrapDeg(tc.in); math.Abs(got-tc.out) > 1e-9 {
			t.Errorf("WrapDeg(%f) = %f, expected %f", tc.in, got, tc.out)
		}
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 10) != 5 {
		t.Error("Clamp should not change in-range values")
	}
	if Clamp(-5, 0, 10) != 0 {
		t.Error("Clamp should raise below-range values to min")
	}
	if Clamp(15, 0, 10) != 10 {
		t.Error("Clamp should lower above-range values to max")
	}
	if ClampF(2000.5, 100, 2000) != 2000 {
		t.Error("ClampF should lower above-range values to max")
	}
}
