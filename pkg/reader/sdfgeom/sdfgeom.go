// Package sdfgeom implements the reader.Surface interface on top of the
// github.com/deadsy/sdfx SDF-based CAD library. The signed distance field
// answers the inside/outside probes directly; the centroid comes from a
// marching-cubes tessellation of the surface.
package sdfgeom

import (
	"fmt"
	"math"
	"sync"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/foamgen/pkg/geometry"
	"github.com/chazu/foamgen/pkg/reader"
)

// Compile-time interface check.
var _ reader.Surface = (*Surface)(nil)

// meshCells controls the marching cubes resolution used for the centroid.
// The centroid feeds a probe seed, not the mesh itself, so a moderate
// resolution is plenty.
const meshCells = 64

// probeSamples is the number of points sampled along each axis when
// searching for an interior point.
const probeSamples = 50

// Surface adapts an sdf.SDF3 solid to the reader.Surface interface.
type Surface struct {
	s sdf.SDF3

	once     sync.Once
	centroid geometry.Vector
}

// New wraps a solid.
func New(s sdf.SDF3) *Surface {
	return &Surface{s: s}
}

// BoundingBox returns the solid's axis-aligned bounding box.
func (s *Surface) BoundingBox() geometry.BoundingBox {
	bb := s.s.BoundingBox()
	return geometry.NewBoundingBox(bb.Min.X, bb.Max.X, bb.Min.Y, bb.Max.Y, bb.Min.Z, bb.Max.Z)
}

// CenterOfMass returns the area-weighted centroid of the tessellated
// surface, computed once and cached. Falls back to the bounding box
// center for an empty tessellation.
func (s *Surface) CenterOfMass() geometry.Vector {
	s.once.Do(func() {
		renderer := render.NewMarchingCubesUniform(meshCells)
		triangles := render.ToTriangles(s.s, renderer)

		var cx, cy, cz, totalArea float64
		for _, tri := range triangles {
			a, b, c := tri[0], tri[1], tri[2]

			// Triangle area from the cross product of two edges.
			ux, uy, uz := b.X-a.X, b.Y-a.Y, b.Z-a.Z
			vx, vy, vz := c.X-a.X, c.Y-a.Y, c.Z-a.Z
			nx := uy*vz - uz*vy
			ny := uz*vx - ux*vz
			nz := ux*vy - uy*vx
			area := 0.5 * math.Sqrt(nx*nx+ny*ny+nz*nz)

			cx += area * (a.X + b.X + c.X) / 3
			cy += area * (a.Y + b.Y + c.Y) / 3
			cz += area * (a.Z + b.Z + c.Z) / 3
			totalArea += area
		}

		if totalArea == 0 {
			s.centroid = s.BoundingBox().Center()
			return
		}
		s.centroid = geometry.Vector{X: cx / totalArea, Y: cy / totalArea, Z: cz / totalArea}
	})
	return s.centroid
}

// LocateInsidePoint returns a point with negative signed distance,
// starting from seed and scanning along each axis through it when the
// seed itself is not enclosed.
func (s *Surface) LocateInsidePoint(seed geometry.Vector) (geometry.Vector, error) {
	p := v3.Vec{X: seed.X, Y: seed.Y, Z: seed.Z}
	if s.s.Evaluate(p) < 0 {
		return seed, nil
	}

	bb := s.s.BoundingBox()
	axes := []struct {
		lo, hi float64
		set    func(v3.Vec, float64) v3.Vec
	}{
		{bb.Min.X, bb.Max.X, func(v v3.Vec, t float64) v3.Vec { v.X = t; return v }},
		{bb.Min.Y, bb.Max.Y, func(v v3.Vec, t float64) v3.Vec { v.Y = t; return v }},
		{bb.Min.Z, bb.Max.Z, func(v v3.Vec, t float64) v3.Vec { v.Z = t; return v }},
	}

	for _, axis := range axes {
		step := (axis.hi - axis.lo) / probeSamples
		for i := 1; i < probeSamples; i++ {
			candidate := axis.set(p, axis.lo+float64(i)*step)
			if s.s.Evaluate(candidate) < 0 {
				return geometry.Vector{X: candidate.X, Y: candidate.Y, Z: candidate.Z}, nil
			}
		}
	}
	return geometry.Vector{}, fmt.Errorf("no interior point found near seed %v", seed)
}

// LocateOutsidePoint returns a point just past the max-x face of the
// bounding box, below its min-y corner, at half the surface height.
func (s *Surface) LocateOutsidePoint() geometry.Vector {
	box := s.BoundingBox()
	dx, _, dz := box.Size()
	return geometry.Vector{
		X: box.MaxX + 0.05*dx,
		Y: box.MinY * 0.95,
		Z: dz / 2,
	}
}
