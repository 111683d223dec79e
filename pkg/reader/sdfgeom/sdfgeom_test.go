package sdfgeom_test

import (
	"math"
	"testing"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/foamgen/pkg/geometry"
	"github.com/chazu/foamgen/pkg/reader/sdfgeom"
)

// box returns a solid box with the given dimensions centered at the origin.
func box(t *testing.T, x, y, z float64) sdf.SDF3 {
	t.Helper()
	s, err := sdf.Box3D(v3.Vec{X: x, Y: y, Z: z}, 0)
	if err != nil {
		t.Fatalf("Box3D: %v", err)
	}
	return s
}

func TestBoundingBox(t *testing.T) {
	s := sdfgeom.New(box(t, 4, 2, 2))

	got := s.BoundingBox()
	want := geometry.NewBoundingBox(-2, 2, -1, 1, -1, 1)
	if got != want {
		t.Errorf("BoundingBox() = %+v, want %+v", got, want)
	}
}

func TestCenterOfMassCenteredBox(t *testing.T) {
	s := sdfgeom.New(box(t, 2, 2, 2))

	c := s.CenterOfMass()
	if math.Abs(c.X) > 0.1 || math.Abs(c.Y) > 0.1 || math.Abs(c.Z) > 0.1 {
		t.Errorf("CenterOfMass() = %v, want near the origin", c)
	}
}

func TestLocateInsidePoint(t *testing.T) {
	solid := box(t, 2, 2, 2)
	s := sdfgeom.New(solid)

	// Seed already inside: returned unchanged.
	seed := geometry.Vector{X: 0.1, Y: 0, Z: 0}
	got, err := s.LocateInsidePoint(seed)
	if err != nil {
		t.Fatalf("LocateInsidePoint: %v", err)
	}
	if got != seed {
		t.Errorf("inside seed moved: %v", got)
	}

	// Probe result is actually inside the solid.
	p, err := s.LocateInsidePoint(geometry.Vector{X: 0, Y: 0, Z: 0})
	if err != nil {
		t.Fatalf("LocateInsidePoint: %v", err)
	}
	if d := solid.Evaluate(v3.Vec{X: p.X, Y: p.Y, Z: p.Z}); d >= 0 {
		t.Errorf("probe point %v has signed distance %g, want negative", p, d)
	}
}

func TestLocateOutsidePoint(t *testing.T) {
	solid := box(t, 2, 2, 2)
	s := sdfgeom.New(solid)

	p := s.LocateOutsidePoint()
	if d := solid.Evaluate(v3.Vec{X: p.X, Y: p.Y, Z: p.Z}); d <= 0 {
		t.Errorf("outside point %v has signed distance %g, want positive", p, d)
	}
	// Past the max-x face: maxx + 0.05*dx = 1.1.
	if math.Abs(p.X-1.1) > 1e-9 {
		t.Errorf("outside point x = %g, want 1.1", p.X)
	}
}
