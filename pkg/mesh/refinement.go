package mesh

import "github.com/chazu/foamgen/pkg/geometry"

// RefinementRegion is a named box inside which the mesher refines cells up
// to Level halvings of the background cell size.
type RefinementRegion struct {
	Name  string
	Box   geometry.BoundingBox
	Level int
}

// Ground-box horizontal extent. The slab is effectively infinite in x and
// y; only its vertical placement matters.
const groundBoxReach = 1000.0

// BoxRefinementLevel maps the wall surface refinement level to the level
// used inside auto-generated refinement boxes, floored at 2.
func BoxRefinementLevel(surfaceLevel int) int {
	return max(2, surfaceLevel-3)
}

// wakeBox is the outer refinement box: it trails far downstream to cover
// the wake of an external body.
func wakeBox(surface geometry.BoundingBox) geometry.BoundingBox {
	dx, dy, dz := surface.Size()
	return surface.ScaleDimensions(-0.7*dx, 15.0*dx, -1.0*dy, 1.0*dy, -1.0*dz, 1.0*dz)
}

// nearBox is the inner refinement box wrapped tightly around the body.
func nearBox(surface geometry.BoundingBox) geometry.BoundingBox {
	dx, dy, dz := surface.Size()
	return surface.ScaleDimensions(-0.2*dx, 3.0*dx, -0.45*dy, 0.45*dy, -0.45*dz, 0.45*dz)
}

// RefinementRegions derives the auto-generated refinement boxes for a wall
// surface. Internal flow gets none: the domain already wraps the geometry.
// External flow gets two nested boxes, the near box one level finer than
// the wake box.
func RefinementRegions(surface geometry.BoundingBox, level int, internal bool) []RefinementRegion {
	if internal {
		return nil
	}
	return []RefinementRegion{
		{Name: "refinementBox", Box: wakeBox(surface), Level: level - 1},
		{Name: "fineBox", Box: nearBox(surface), Level: level},
	}
}

// GroundRegion is the thin horizontal slab refined around the domain floor
// for on-ground external cases. Its half-thickness is a fifth of the
// surface height.
func GroundRegion(domainFloor float64, surface geometry.BoundingBox, level int) RefinementRegion {
	_, _, dz := surface.Size()
	delta := 0.2 * dz
	return RefinementRegion{
		Name: "groundBox",
		Box: geometry.NewBoundingBox(
			-groundBoxReach, groundBoxReach,
			-groundBoxReach, groundBoxReach,
			domainFloor-delta, domainFloor+delta,
		),
		Level: level,
	}
}
