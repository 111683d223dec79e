package mesh

import (
	"fmt"

	"github.com/chazu/foamgen/pkg/geometry"
)

// CaseSetup collects every input the derivation needs. Zero values for
// SizeFactor and MaxCellSize select the conventional defaults; the
// physical properties never default and are validated instead.
type CaseSetup struct {
	Regime         FlowRegime
	Amount         RefinementAmount
	SizeFactor     float64 // domain expansion scale, 1.0 when unset
	MaxCellSize    float64 // background cell size cap, maxLength/4 when unset
	Fluid          Fluid
	InletSpeed     float64 // inlet velocity magnitude [m/s]
	ExpansionRatio float64 // prism layer growth ratio, must exceed 1
}

// SizedCase is the output of the first derivation stage: the computational
// domain with its cell counts and the cell sizes everything downstream
// consumes. Refinement regions and the layer schedule can only be built
// from a SizedCase, which makes the ordering dependency explicit.
type SizedCase struct {
	Surface            geometry.BoundingBox
	Setup              CaseSetup
	Domain             geometry.Domain
	BackgroundCellSize float64 // effective cell size after even-count snapping
	RefinementLevel    int
	TargetCellSize     float64 // finest cell size at the surface
}

// SizeCase runs the domain and cell-size stages. It rejects degenerate
// surface geometry before any arithmetic happens.
func SizeCase(surface geometry.BoundingBox, setup CaseSetup) (SizedCase, error) {
	if surface.IsDegenerate() {
		return SizedCase{}, GeometryError{
			Reason: fmt.Sprintf("degenerate surface bounding box %+v", surface),
		}
	}
	if !setup.Amount.valid() {
		return SizedCase{}, fmt.Errorf("invalid refinement amount %d", int(setup.Amount))
	}

	if setup.SizeFactor <= 0 {
		setup.SizeFactor = 1.0
	}
	if setup.MaxCellSize < 0.001 {
		setup.MaxCellSize = surface.MaxLength() / 4
	}

	box := DomainBox(surface, setup.Regime, setup.SizeFactor)
	cellSize := BackgroundCellSize(setup.Amount, surface, setup.MaxCellSize, setup.Regime.Internal)
	nx, ny, nz := CellCounts(box, cellSize)
	domain := geometry.DomainFromBox(box, nx, ny, nz)

	// Rounding the counts up shrinks the cells slightly; downstream sizes
	// follow the effective cell size, not the requested one.
	effective := (domain.MaxX - domain.MinX) / float64(nx)

	level := setup.Amount.SurfaceRefinementLevel()
	return SizedCase{
		Surface:            surface,
		Setup:              setup,
		Domain:             domain,
		BackgroundCellSize: effective,
		RefinementLevel:    level,
		TargetCellSize:     TargetCellSize(effective, level),
	}, nil
}

// Refinements derives the auto-generated refinement regions for the sized
// case: none for internal flow, the nested wake and near boxes for
// external flow, plus the ground slab when the body sits on the ground.
func (c SizedCase) Refinements() []RefinementRegion {
	boxLevel := BoxRefinementLevel(c.RefinementLevel)
	regions := RefinementRegions(c.Surface, boxLevel, c.Setup.Regime.Internal)
	if !c.Setup.Regime.Internal && c.Setup.Regime.OnGround {
		regions = append(regions, GroundRegion(c.Domain.MinZ, c.Surface, boxLevel))
	}
	return regions
}

// Layers derives the prism layer schedule for the sized case's wall
// surface, using the surface's max extent as the characteristic length.
func (c SizedCase) Layers() (BoundaryLayer, error) {
	if c.Setup.ExpansionRatio <= 1 {
		return BoundaryLayer{}, PhysicalParameterError{Name: "expansionRatio", Value: c.Setup.ExpansionRatio}
	}
	return LayerSchedule(
		c.Setup.Amount,
		c.Setup.Fluid,
		c.Surface.MaxLength(),
		c.Setup.InletSpeed,
		c.TargetCellSize,
		c.Setup.ExpansionRatio,
	)
}

// Derivation bundles the outputs of all stages.
type Derivation struct {
	SizedCase
	Regions  []RefinementRegion
	Boundary BoundaryLayer
}

// Derive runs the full pipeline: domain sizing, cell sizing, refinement
// regions and the boundary layer schedule.
func Derive(surface geometry.BoundingBox, setup CaseSetup) (Derivation, error) {
	sized, err := SizeCase(surface, setup)
	if err != nil {
		return Derivation{}, err
	}
	boundary, err := sized.Layers()
	if err != nil {
		return Derivation{}, err
	}
	return Derivation{
		SizedCase: sized,
		Regions:   sized.Refinements(),
		Boundary:  boundary,
	}, nil
}
