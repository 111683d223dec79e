package mesh

import (
	"math"

	"github.com/chazu/foamgen/pkg/geometry"
)

// slendernessLimit is the aspect ratio above which a geometry counts as
// slender and the background cell size follows its max extent instead of
// its min extent.
const slendernessLimit = 10.0

// BackgroundCellSize derives the edge length of the background mesh cells
// from the surface extents and the refinement amount, capped at
// maxCellSize.
func BackgroundCellSize(amount RefinementAmount, surface geometry.BoundingBox, maxCellSize float64, internal bool) float64 {
	maxLen := surface.MaxLength()
	minLen := surface.MinLength()

	if internal {
		if maxLen/minLen > slendernessLimit {
			return min(maxLen/internalSlenderDivisor[amount], maxCellSize)
		}
		return min(minLen/internalDivisor[amount], maxCellSize)
	}
	return min(minLen/externalDivisor[amount], maxCellSize)
}

// CellCounts divides the domain extents by the cell size, rounding each
// axis up to the nearest even integer. Even counts keep mid-plane splits
// on a cell boundary; the rounding is applied per axis after the ceiling.
func CellCounts(domain geometry.BoundingBox, cellSize float64) (nx, ny, nz int) {
	dx, dy, dz := domain.Size()
	nx = roundUpEven(math.Ceil(dx / cellSize))
	ny = roundUpEven(math.Ceil(dy / cellSize))
	nz = roundUpEven(math.Ceil(dz / cellSize))
	return nx, ny, nz
}

func roundUpEven(n float64) int {
	c := int(n)
	if c%2 != 0 {
		c++
	}
	return c
}

// RefinementLevels returns the number of octree halvings needed to reach
// targetCellSize starting from maxCellSize.
func RefinementLevels(maxCellSize, targetCellSize float64) int {
	ratio := maxCellSize / targetCellSize
	return int(math.Ceil(math.Log(ratio) / math.Ln2))
}

// TargetCellSize is the finest cell size after level octree halvings.
func TargetCellSize(backgroundCellSize float64, level int) float64 {
	return backgroundCellSize / math.Pow(2, float64(level))
}
