package config_test

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/chazu/foamgen/pkg/config"
	"github.com/chazu/foamgen/pkg/mesh"
)

const caseYAML = `
refinement: medium
internalFlow: false
onGround: true
maxCellSize: 0.25
fluid:
  rho: 1.225
  nu: 1.5e-5
inletVelocity: [30, 0, 0]
expansionRatio: 1.3
`

func TestParseCase(t *testing.T) {
	c, err := config.Parse([]byte(caseYAML))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if c.Refinement != "medium" || !c.OnGround || c.InternalFlow {
		t.Errorf("flags = %+v", c)
	}
	if c.Fluid.Nu != 1.5e-5 || c.Fluid.Rho != 1.225 {
		t.Errorf("fluid = %+v", c.Fluid)
	}
	if got := c.InletSpeed(); math.Abs(got-30) > 1e-12 {
		t.Errorf("InletSpeed() = %g, want 30", got)
	}
	// Unset fields keep their defaults.
	if c.Scale != 1.0 || c.ExpansionRatio != 1.3 {
		t.Errorf("scale = %g, expansionRatio = %g", c.Scale, c.ExpansionRatio)
	}
}

func TestParseRejectsUnknownRefinement(t *testing.T) {
	if _, err := config.Parse([]byte("refinement: extreme\n")); err == nil {
		t.Fatal("expected error for unknown refinement amount")
	}
}

func TestCaseSettings(t *testing.T) {
	c, err := config.Parse([]byte(caseYAML))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	s, err := c.Settings()
	if err != nil {
		t.Fatalf("Settings: %v", err)
	}

	if s.Amount != mesh.Medium {
		t.Errorf("amount = %v, want medium", s.Amount)
	}
	if !s.Regime.OnGround || s.Regime.Internal || s.Regime.HalfModel {
		t.Errorf("regime = %+v", s.Regime)
	}
	if s.MaxCellSize != 0.25 || s.ExpansionRatio != 1.3 {
		t.Errorf("maxCellSize = %g, expansionRatio = %g", s.MaxCellSize, s.ExpansionRatio)
	}
	if s.InletSpeed != 30 {
		t.Errorf("inlet speed = %g, want 30", s.InletSpeed)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "case.yaml")

	c := config.Default()
	c.Refinement = "fine"
	c.HalfModel = true
	c.InletVelocity = [3]float64{0, 0, -5}

	if err := c.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != c {
		t.Errorf("round trip changed the case:\n got %+v\nwant %+v", got, c)
	}
}
