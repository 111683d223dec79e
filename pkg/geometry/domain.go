package geometry

import "fmt"

// Domain is the computational domain: a bounding box plus the background
// cell counts per axis. Cell counts are kept even so that symmetry and
// mid-plane splits land on a cell boundary.
type Domain struct {
	BoundingBox
	NX, NY, NZ int
}

// DomainFromBox attaches cell counts to a box.
func DomainFromBox(box BoundingBox, nx, ny, nz int) Domain {
	return Domain{BoundingBox: box, NX: nx, NY: ny, NZ: nz}
}

func (d Domain) String() string {
	return d.BoundingBox.String() +
		fmt.Sprintf("\nBackground mesh size: %dx%dx%d cells", d.NX, d.NY, d.NZ)
}

// Box returns the domain extents without the cell counts.
func (d Domain) Box() BoundingBox {
	return d.BoundingBox
}

// MergeDomains returns the envelope of the two domains with the larger
// cell count per axis. Re-deriving a domain over an existing project must
// never shrink it, so recomputed domains are merged into the current one.
func MergeDomains(current, next Domain) Domain {
	return Domain{
		BoundingBox: Union(current.BoundingBox, next.BoundingBox),
		NX:          max(current.NX, next.NX),
		NY:          max(current.NY, next.NY),
		NZ:          max(current.NZ, next.NZ),
	}
}
