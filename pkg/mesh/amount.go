// Package mesh derives every numeric parameter a boundary-layer-resolving
// volumetric mesher needs from a surface bounding box, a flow regime, and a
// qualitative refinement amount: domain extents and cell counts, nested
// refinement regions, and the near-wall prism layer schedule.
package mesh

import "fmt"

// RefinementAmount is the qualitative mesh resolution requested by the
// user. It is only ever used as a key into the constant tables below,
// never as a numeric scale.
type RefinementAmount int

const (
	Coarse RefinementAmount = iota
	Medium
	Fine
)

func (a RefinementAmount) String() string {
	switch a {
	case Coarse:
		return "coarse"
	case Medium:
		return "medium"
	case Fine:
		return "fine"
	default:
		return fmt.Sprintf("RefinementAmount(%d)", int(a))
	}
}

// ParseRefinementAmount converts the user-facing name to an amount.
func ParseRefinementAmount(s string) (RefinementAmount, error) {
	switch s {
	case "coarse":
		return Coarse, nil
	case "medium":
		return Medium, nil
	case "fine":
		return Fine, nil
	}
	return 0, fmt.Errorf("invalid refinement amount %q, expected coarse, medium or fine", s)
}

func (a RefinementAmount) valid() bool {
	return a >= Coarse && a <= Fine
}

// Per-amount constant tables, indexed by RefinementAmount.
var (
	// targetYPlus is the dimensionless wall distance the first cell center
	// should land on. Coarser meshes tolerate a larger y+.
	targetYPlus = [...]float64{Coarse: 70, Medium: 50, Fine: 30}

	// surfaceRefLevels is the octree refinement level applied at wall
	// surfaces.
	surfaceRefLevels = [...]int{Coarse: 2, Medium: 4, Fine: 6}

	// defaultSurfaceLayers is the prism layer count given to non-wall
	// surfaces, which do not drive the detailed schedule.
	defaultSurfaceLayers = [...]int{Coarse: 2, Medium: 4, Fine: 6}

	// Background cell size divisors. Slender internal geometries divide
	// the max extent, everything else divides the min extent.
	internalSlenderDivisor = [...]float64{Coarse: 50, Medium: 70, Fine: 90}
	internalDivisor        = [...]float64{Coarse: 8, Medium: 12, Fine: 16}
	externalDivisor        = [...]float64{Coarse: 3, Medium: 5, Fine: 7}
)

// TargetYPlus returns the target dimensionless wall distance for the amount.
func (a RefinementAmount) TargetYPlus() float64 {
	return targetYPlus[a]
}

// SurfaceRefinementLevel returns the wall surface refinement level.
func (a RefinementAmount) SurfaceRefinementLevel() int {
	return surfaceRefLevels[a]
}

// DefaultSurfaceLayers returns the layer count for non-wall surfaces.
func (a RefinementAmount) DefaultSurfaceLayers() int {
	return defaultSurfaceLayers[a]
}
