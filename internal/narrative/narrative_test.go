package narrative

import (
	"errors"
	"testing"
)

type failingSource struct{}

func (failingSource) Generate() (GalaxyInfo, error) {
	return GalaxyInfo{}, errors.New("network unreachable")
}

type partialSource struct{}

func (partialSource) Generate() (GalaxyInfo, error) {
	return GalaxyInfo{Name: "Nameless"}, nil // Missing description
}

func TestFetchFallsBack(t *testing.T) {
	if got := Fetch(nil); got != Fallback {
		t.Errorf("Fetch(nil) = %v, expected fallback", got)
	}
	if got := Fetch(failingSource{}); got != Fallback {
		t.Errorf("Fetch(failing) = %v, expected fallback", got)
	}
	if got := Fetch(partialSource{}); got != Fallback {
		t.Errorf("Fetch(partial) = %v, expected fallback", got)
	}
}

func TestFetchPassesThroughCompleteInfo(t *testing.T) {
	src := NewProcedural(42)
	got := Fetch(src)

	if got.Name == "" || got.Description == "" {
		t.Errorf("Procedural source returned incomplete info: %v", got)
	}
	if got == Fallback {
		t.Error("Procedural source should not produce the fallback")
	}
}

func TestProceduralDeterminism(t *testing.T) {
	a := Fetch(NewProcedural(7))
	b := Fetch(NewProcedural(7))
	if a != b {
		t.Errorf("same seed produced different info: %v vs %v", a, b)
	}
}
