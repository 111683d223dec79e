package settings

import (
	"fmt"

	"github.com/chazu/foamgen/pkg/geometry"
	"github.com/chazu/foamgen/pkg/mesh"
	"github.com/chazu/foamgen/pkg/reader"
)

// ConfigurationError reports a request that would violate an aggregate
// invariant. The aggregate is left untouched.
type ConfigurationError struct {
	Reason string
}

func (e ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s", e.Reason)
}

// AddSurface registers a surface under the given patch name and, for a
// wall surface, runs the full derivation pipeline: domain sizing, cell
// counts, refinement boxes, the prism layer schedule, and the refinement
// stamping of every registered surface.
//
// At most one wall surface may exist; multiple physical walls must be
// fused into one surface file upstream. A second wall is rejected with a
// ConfigurationError and no partial mutation: every fallible computation
// runs before the first write to the aggregate.
func (s *MeshSettings) AddSurface(name string, purpose Purpose, property Property, src reader.Surface) error {
	// Refinement regions are meshed as plain boxes; extracting feature
	// edges from them only slows the mesher down.
	featureEdges := purpose != RefinementRegion && purpose != RefinementSurface

	bounds := src.BoundingBox()

	if purpose != Wall {
		s.put(name, &SurfaceGeometry{
			Purpose:      purpose,
			RefineMin:    0,
			RefineMax:    0,
			FeatureEdges: featureEdges,
			FeatureLevel: 1,
			Layers:       s.Amount.DefaultSurfaceLayers(),
			Property:     property,
			Bounds:       bounds,
		})
		return nil
	}

	if existing, ok := s.wallName(); ok {
		return ConfigurationError{
			Reason: fmt.Sprintf("wall surface %q already registered; fuse multiple walls into one surface file", existing),
		}
	}

	sized, err := mesh.SizeCase(bounds, s.caseSetup())
	if err != nil {
		return err
	}
	boundary, err := sized.Layers()
	if err != nil {
		return err
	}

	var location geometry.Vector
	if s.Regime.Internal {
		location, err = src.LocateInsidePoint(src.CenterOfMass())
		if err != nil {
			return fmt.Errorf("locating mesh seed point: %w", err)
		}
	} else {
		location = src.LocateOutsidePoint()
	}

	// Everything fallible has succeeded; mutate the aggregate.
	if s.hasDomain {
		s.Domain = geometry.MergeDomains(s.Domain, sized.Domain)
	} else {
		s.Domain = sized.Domain
		s.hasDomain = true
	}
	s.MaxCellSize = sized.BackgroundCellSize
	s.Boundary = boundary
	s.LocationInMesh = location

	for _, region := range sized.Refinements() {
		s.put(region.Name, &BoxGeometry{Box: region.Box, RefineMax: region.Level})
	}

	level := sized.RefinementLevel
	refMin := max(1, level)
	refMax := max(2, level)
	featureLevel := max(1, level)
	s.Surfaces(func(_ string, sg *SurfaceGeometry) {
		sg.RefineMin = refMin
		sg.RefineMax = refMax
		sg.FeatureLevel = featureLevel
		sg.Layers = boundary.Layers
	})

	// Relative layer sizing handed to the mesher: final layer at half the
	// local cell size, min thickness two orders below that.
	s.FinalLayerThickness = 0.5
	s.MinThickness = max(0.0001, s.FinalLayerThickness/100)

	s.put(name, &SurfaceGeometry{
		Purpose:      Wall,
		RefineMin:    refMin,
		RefineMax:    refMax,
		FeatureEdges: featureEdges,
		FeatureLevel: featureLevel,
		Layers:       boundary.Layers,
		Property:     property,
		Bounds:       bounds,
	})
	return nil
}
