// Package config loads and saves case setup files. A case file is the
// YAML description of everything the derivation needs besides the
// surface meshes: fluid properties, inlet velocity, regime flags and the
// qualitative refinement amount.
package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/chazu/foamgen/pkg/mesh"
	"github.com/chazu/foamgen/pkg/settings"
)

// FluidSpec holds the physical fluid properties.
type FluidSpec struct {
	Rho float64 `yaml:"rho"`
	Nu  float64 `yaml:"nu"`
}

// Case is the on-disk case description.
type Case struct {
	Refinement     string     `yaml:"refinement"`
	InternalFlow   bool       `yaml:"internalFlow"`
	OnGround       bool       `yaml:"onGround"`
	HalfModel      bool       `yaml:"halfModel"`
	Transient      bool       `yaml:"transient"`
	Scale          float64    `yaml:"scale"`
	MaxCellSize    float64    `yaml:"maxCellSize"`
	Fluid          FluidSpec  `yaml:"fluid"`
	InletVelocity  [3]float64 `yaml:"inletVelocity"`
	ExpansionRatio float64    `yaml:"expansionRatio"`
}

// Default returns the case description matching settings.New().
func Default() Case {
	return Case{
		Refinement:     "coarse",
		Scale:          1.0,
		MaxCellSize:    0.5,
		Fluid:          FluidSpec{Rho: 1000, Nu: 1e-6},
		InletVelocity:  [3]float64{1, 0, 0},
		ExpansionRatio: 1.4,
	}
}

// Load reads a case file.
func Load(path string) (Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Case{}, fmt.Errorf("reading case file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a case description from YAML.
func Parse(data []byte) (Case, error) {
	c := Default()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Case{}, fmt.Errorf("parsing case file: %w", err)
	}
	if _, err := mesh.ParseRefinementAmount(c.Refinement); err != nil {
		return Case{}, err
	}
	return c, nil
}

// Save writes the case description to path.
func (c Case) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding case file: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing case file: %w", err)
	}
	return nil
}

// InletSpeed returns the inlet velocity magnitude.
func (c Case) InletSpeed() float64 {
	v := c.InletVelocity
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// Settings builds a fresh aggregate from the case description.
func (c Case) Settings() (*settings.MeshSettings, error) {
	amount, err := mesh.ParseRefinementAmount(c.Refinement)
	if err != nil {
		return nil, err
	}

	s := settings.New()
	s.Amount = amount
	s.Regime = mesh.FlowRegime{
		Internal:  c.InternalFlow,
		OnGround:  c.OnGround,
		HalfModel: c.HalfModel,
	}
	if c.Scale > 0 {
		s.Scale = c.Scale
	}
	if c.MaxCellSize > 0 {
		s.MaxCellSize = c.MaxCellSize
	}
	s.Fluid = mesh.Fluid{Rho: c.Fluid.Rho, Nu: c.Fluid.Nu}
	s.InletSpeed = c.InletSpeed()
	if c.ExpansionRatio > 0 {
		s.ExpansionRatio = c.ExpansionRatio
	}
	return s, nil
}
