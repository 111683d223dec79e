// Package reader defines the abstract geometry reader interface.
// Implementations (sdfgeom, STL readers) expose the handful of queries the
// derivation pipeline needs from a surface mesh. The abstraction keeps the
// engines free of any triangle-level or file-format concern.
package reader

import "github.com/chazu/foamgen/pkg/geometry"

// Surface is a read-only handle to one surface mesh.
type Surface interface {
	// BoundingBox returns the axis-aligned bounding box of the surface.
	BoundingBox() geometry.BoundingBox

	// CenterOfMass returns the area-weighted centroid of the surface.
	CenterOfMass() geometry.Vector

	// LocateInsidePoint returns a point inside the enclosed volume,
	// starting the search from seed. Used for internal flow, where the
	// mesh seed must sit inside the duct.
	LocateInsidePoint(seed geometry.Vector) (geometry.Vector, error)

	// LocateOutsidePoint returns a point outside the surface but inside
	// any reasonable computational domain. Used for external flow.
	LocateOutsidePoint() geometry.Vector
}
