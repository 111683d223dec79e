// Package settings owns the mesh configuration aggregate: the computational
// domain, the named geometry entries, and the regime flags. It is the only
// package with write access to the aggregate; the derivation engines in
// pkg/mesh stay pure.
package settings

import (
	"fmt"

	"github.com/chazu/foamgen/pkg/geometry"
)

// Purpose classifies what a surface is used for in the case.
type Purpose int

const (
	Wall Purpose = iota
	Inlet
	Outlet
	Symmetry
	RefinementRegion
	RefinementSurface
	CellZone
	Baffle
	MovingWall
)

func (p Purpose) String() string {
	switch p {
	case Wall:
		return "wall"
	case Inlet:
		return "inlet"
	case Outlet:
		return "outlet"
	case Symmetry:
		return "symmetry"
	case RefinementRegion:
		return "refinementRegion"
	case RefinementSurface:
		return "refinementSurface"
	case CellZone:
		return "cellZone"
	case Baffle:
		return "baffle"
	case MovingWall:
		return "movingWall"
	default:
		return fmt.Sprintf("Purpose(%d)", int(p))
	}
}

// ParsePurpose converts the user-facing patch type name.
func ParsePurpose(s string) (Purpose, error) {
	for p := Wall; p <= MovingWall; p++ {
		if p.String() == s {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown surface purpose %q", s)
}

// PropertyKind tags the optional patch property payload.
type PropertyKind int

const (
	NoProperty PropertyKind = iota
	ScalarProperty
	VectorProperty
)

// Property is the optional scalar or vector attached to a surface, such as
// an inlet velocity or a refinement distance.
type Property struct {
	Kind   PropertyKind
	Scalar float64
	Vector geometry.Vector
}

// Scalar builds a scalar property.
func Scalar(v float64) Property {
	return Property{Kind: ScalarProperty, Scalar: v}
}

// Velocity builds a vector property.
func Velocity(x, y, z float64) Property {
	return Property{Kind: VectorProperty, Vector: geometry.Vector{X: x, Y: y, Z: z}}
}

// Geometry is the closed variant of entries in the geometry map: either a
// triangulated surface or a refinement box. The unexported method keeps
// the set of variants fixed so consumers can switch exhaustively.
type Geometry interface {
	geometryEntry()
}

// SurfaceGeometry is a named triangulated surface with its refinement
// range, feature edge extraction flag, prism layer count and optional
// property.
type SurfaceGeometry struct {
	Purpose      Purpose
	RefineMin    int
	RefineMax    int
	FeatureEdges bool
	FeatureLevel int
	Layers       int
	Property     Property
	Bounds       geometry.BoundingBox
}

func (*SurfaceGeometry) geometryEntry() {}

// BoxGeometry is a box-shaped refinement region with a single maximum
// refinement level.
type BoxGeometry struct {
	Box       geometry.BoundingBox
	RefineMax int
}

func (*BoxGeometry) geometryEntry() {}
