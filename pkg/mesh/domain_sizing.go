package mesh

import "github.com/chazu/foamgen/pkg/geometry"

// FlowRegime describes how the surface sits inside the flow.
type FlowRegime struct {
	Internal  bool // enclosed duct/pipe flow rather than an open domain
	OnGround  bool // body touches a ground plane; domain must not extend below it
	HalfModel bool // symmetry plane at the y midplane halves the domain
}

// DomainBox expands a surface bounding box into the computational domain.
//
// Internal flow wraps the surface closely with a small uniform margin.
// External flow follows the wake-dominated convention: three characteristic
// lengths upstream, nine downstream, two on the remaining faces. On-ground
// cases pin the domain floor to the surface floor and cap the ceiling at
// four lengths above the body. Half models collapse the max-y face onto the
// y midplane.
func DomainBox(surface geometry.BoundingBox, regime FlowRegime, sizeFactor float64) geometry.BoundingBox {
	factor := surface.MaxLength() * sizeFactor

	var domain geometry.BoundingBox
	if regime.Internal {
		m := 0.1 * sizeFactor
		domain = surface.ScaleDimensions(-m, m, -m, m, -m, m)
	} else {
		domain = surface.ScaleDimensions(-3*factor, 9*factor, -2*factor, 2*factor, -2*factor, 2*factor)
	}

	if regime.OnGround {
		domain.MinZ = surface.MinZ
		domain.MaxZ = surface.MaxZ + 4*factor
	}

	if regime.HalfModel {
		domain.MaxY = (domain.MaxY + domain.MinY) / 2
	}
	return domain
}
