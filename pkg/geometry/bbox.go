// Package geometry defines the axis-aligned bounding box and domain value
// types the mesh derivation engines operate on. All operations return new
// values; boxes are never mutated in place.
package geometry

import "fmt"

// BoundingBox is an axis-aligned box given by its six bounds.
// A well-formed box satisfies min <= max on every axis.
type BoundingBox struct {
	MinX, MaxX float64
	MinY, MaxY float64
	MinZ, MaxZ float64
}

// NewBoundingBox builds a box from explicit bounds.
func NewBoundingBox(minx, maxx, miny, maxy, minz, maxz float64) BoundingBox {
	return BoundingBox{MinX: minx, MaxX: maxx, MinY: miny, MaxY: maxy, MinZ: minz, MaxZ: maxz}
}

func (b BoundingBox) String() string {
	return fmt.Sprintf(
		"Domain size:%10s%10s%10s\n"+
			"Min         %10.3f%10.3f%10.3f\n"+
			"Max         %10.3f%10.3f%10.3f",
		"X", "Y", "Z", b.MinX, b.MinY, b.MinZ, b.MaxX, b.MaxY, b.MaxZ)
}

// Size returns the edge lengths (dx, dy, dz).
func (b BoundingBox) Size() (dx, dy, dz float64) {
	return b.MaxX - b.MinX, b.MaxY - b.MinY, b.MaxZ - b.MinZ
}

// MaxLength returns the longest edge of the box.
func (b BoundingBox) MaxLength() float64 {
	dx, dy, dz := b.Size()
	return max(dx, dy, dz)
}

// MinLength returns the shortest edge of the box.
func (b BoundingBox) MinLength() float64 {
	dx, dy, dz := b.Size()
	return min(dx, dy, dz)
}

// Center returns the geometric center of the box.
func (b BoundingBox) Center() Vector {
	return Vector{
		X: (b.MinX + b.MaxX) / 2,
		Y: (b.MinY + b.MaxY) / 2,
		Z: (b.MinZ + b.MaxZ) / 2,
	}
}

// ScaleDimensions returns a new box with each bound shifted by its own
// additive offset. Offsets may be negative; a negative min offset grows
// the box downward, a positive max offset grows it upward.
func (b BoundingBox) ScaleDimensions(minxOff, maxxOff, minyOff, maxyOff, minzOff, maxzOff float64) BoundingBox {
	return BoundingBox{
		MinX: b.MinX + minxOff,
		MaxX: b.MaxX + maxxOff,
		MinY: b.MinY + minyOff,
		MaxY: b.MaxY + maxyOff,
		MinZ: b.MinZ + minzOff,
		MaxZ: b.MaxZ + maxzOff,
	}
}

// Union returns the componentwise min/max envelope of a and b.
// Union is commutative and associative, so folding it over any number of
// boxes yields the same envelope regardless of order.
func Union(a, b BoundingBox) BoundingBox {
	return BoundingBox{
		MinX: min(a.MinX, b.MinX),
		MaxX: max(a.MaxX, b.MaxX),
		MinY: min(a.MinY, b.MinY),
		MaxY: max(a.MaxY, b.MaxY),
		MinZ: min(a.MinZ, b.MinZ),
		MaxZ: max(a.MaxZ, b.MaxZ),
	}
}

// Contains reports whether b fully encloses inner.
func (b BoundingBox) Contains(inner BoundingBox) bool {
	return b.MinX <= inner.MinX && b.MaxX >= inner.MaxX &&
		b.MinY <= inner.MinY && b.MaxY >= inner.MaxY &&
		b.MinZ <= inner.MinZ && b.MaxZ >= inner.MaxZ
}

// IsDegenerate reports whether any edge of the box has non-positive length.
// Degenerate boxes cannot drive cell-size or layer derivation.
func (b BoundingBox) IsDegenerate() bool {
	dx, dy, dz := b.Size()
	return dx <= 0 || dy <= 0 || dz <= 0
}
