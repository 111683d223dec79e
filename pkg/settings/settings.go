package settings

import (
	"github.com/chazu/foamgen/pkg/geometry"
	"github.com/chazu/foamgen/pkg/mesh"
)

// MeshSettings is the mutable aggregate the derivation pipeline populates
// and the dictionary writer consumes. It is created once per project with
// defaults, mutated through AddSurface, and only ever replaced wholesale
// when a project is reloaded. It is not safe for concurrent mutation;
// callers serialize access.
type MeshSettings struct {
	Domain geometry.Domain

	Scale          float64
	MaxCellSize    float64
	Amount         mesh.RefinementAmount
	Regime         mesh.FlowRegime
	Fluid          mesh.Fluid
	InletSpeed     float64
	ExpansionRatio float64

	// Derived during AddSurface for the wall surface.
	Boundary       mesh.BoundaryLayer
	LocationInMesh geometry.Vector

	// Relative layer controls handed to the mesher.
	FinalLayerThickness float64
	MinThickness        float64

	// Geometry entries in insertion order. Iteration order feeds straight
	// into generated files, so it must be stable across runs.
	names     []string
	entries   map[string]Geometry
	hasDomain bool
}

// New returns an empty aggregate with the conventional defaults. Physical
// properties default to water; they are validated, never silently
// substituted, when a wall surface is added.
func New() *MeshSettings {
	return &MeshSettings{
		Scale:               1.0,
		MaxCellSize:         0.5,
		Amount:              mesh.Coarse,
		Fluid:               mesh.Fluid{Rho: 1000, Nu: 1e-6},
		InletSpeed:          1.0,
		ExpansionRatio:      1.4,
		FinalLayerThickness: 0.3,
		MinThickness:        1e-7,
		entries:             make(map[string]Geometry),
	}
}

// Geometry looks up an entry by patch name.
func (s *MeshSettings) Geometry(name string) (Geometry, bool) {
	g, ok := s.entries[name]
	return g, ok
}

// Names returns the patch names in insertion order.
func (s *MeshSettings) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Each calls fn for every geometry entry in insertion order.
func (s *MeshSettings) Each(fn func(name string, g Geometry)) {
	for _, name := range s.names {
		fn(name, s.entries[name])
	}
}

// Surfaces calls fn for every triangulated surface entry in insertion
// order.
func (s *MeshSettings) Surfaces(fn func(name string, g *SurfaceGeometry)) {
	for _, name := range s.names {
		if sg, ok := s.entries[name].(*SurfaceGeometry); ok {
			fn(name, sg)
		}
	}
}

// put inserts or replaces an entry. Replacing keeps the original position
// so regenerated files diff cleanly.
func (s *MeshSettings) put(name string, g Geometry) {
	if _, exists := s.entries[name]; !exists {
		s.names = append(s.names, name)
	}
	s.entries[name] = g
}

// wallName returns the patch name of the wall surface, if one exists.
func (s *MeshSettings) wallName() (string, bool) {
	for _, name := range s.names {
		if sg, ok := s.entries[name].(*SurfaceGeometry); ok && sg.Purpose == Wall {
			return name, true
		}
	}
	return "", false
}

// caseSetup assembles the derivation inputs from the aggregate's fields.
func (s *MeshSettings) caseSetup() mesh.CaseSetup {
	return mesh.CaseSetup{
		Regime:         s.Regime,
		Amount:         s.Amount,
		SizeFactor:     s.Scale,
		MaxCellSize:    s.MaxCellSize,
		Fluid:          s.Fluid,
		InletSpeed:     s.InletSpeed,
		ExpansionRatio: s.ExpansionRatio,
	}
}
