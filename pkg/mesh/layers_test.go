package mesh_test

import (
	"errors"
	"math"
	"testing"

	"github.com/chazu/foamgen/pkg/mesh"
)

func approx(t *testing.T, name string, got, want, relTol float64) {
	t.Helper()
	if math.Abs(got-want) > relTol*math.Abs(want) {
		t.Errorf("%s = %g, want %g", name, got, want)
	}
}

// ---------------------------------------------------------------------------
// Near-wall spacing
// ---------------------------------------------------------------------------

func TestNearWallSpacingWater(t *testing.T) {
	// Water at 1 m/s over a 1 m body, y+ 200:
	// Re = 1e6, Cf = 0.0592*Re^-0.2 ~ 0.003735, tau ~ 1.8676,
	// u* ~ 0.043216, y = 200*1e-6/u* ~ 4.6279e-3.
	fluid := mesh.Fluid{Rho: 1000, Nu: 1e-6}
	y, err := mesh.NearWallSpacing(fluid, 1.0, 1.0, 200)
	if err != nil {
		t.Fatalf("NearWallSpacing: %v", err)
	}
	approx(t, "y", y, 4.6279018543827e-3, 1e-9)
}

func TestNearWallSpacingAir(t *testing.T) {
	fluid := mesh.Fluid{Rho: 1.225, Nu: 1.5e-5}
	y, err := mesh.NearWallSpacing(fluid, 10.0, 10.0, 70)
	if err != nil {
		t.Fatalf("NearWallSpacing: %v", err)
	}
	approx(t, "y", y, 2.9372053976714e-3, 1e-9)
}

func TestNearWallSpacingRejectsNonPhysical(t *testing.T) {
	good := mesh.Fluid{Rho: 1000, Nu: 1e-6}
	tests := []struct {
		name  string
		fluid mesh.Fluid
		L, U  float64
		param string
	}{
		{"zero viscosity", mesh.Fluid{Rho: 1000, Nu: 0}, 1, 1, "nu"},
		{"negative viscosity", mesh.Fluid{Rho: 1000, Nu: -1e-6}, 1, 1, "nu"},
		{"zero density", mesh.Fluid{Rho: 0, Nu: 1e-6}, 1, 1, "rho"},
		{"zero length", good, 0, 1, "L"},
		{"negative speed", good, 1, -2, "U"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := mesh.NearWallSpacing(tt.fluid, tt.L, tt.U, 70)
			var perr mesh.PhysicalParameterError
			if !errors.As(err, &perr) {
				t.Fatalf("err = %v, want PhysicalParameterError", err)
			}
			if perr.Name != tt.param {
				t.Errorf("rejected parameter %q, want %q", perr.Name, tt.param)
			}
		})
	}
}

func TestYPlusRoundTrip(t *testing.T) {
	// YPlusFor inverts NearWallSpacing at the same conditions.
	fluid := mesh.Fluid{Rho: 1000, Nu: 1e-6}
	y, err := mesh.NearWallSpacing(fluid, 1.0, 2.5, 50)
	if err != nil {
		t.Fatalf("NearWallSpacing: %v", err)
	}
	approx(t, "y+", mesh.YPlusFor(fluid.Nu, 1.0, 2.5, y), 50, 1e-9)
}

// ---------------------------------------------------------------------------
// Layer schedule
// ---------------------------------------------------------------------------

func TestLayerSchedule(t *testing.T) {
	fluid := mesh.Fluid{Rho: 1.225, Nu: 1.5e-5}

	// Coarse amount: y+ 70, y ~ 2.9372e-3, first = 2y ~ 5.8744e-3,
	// final = 0.125*0.35 = 0.04375, N = floor(ln(final/first)/ln(1.4)) = 5.
	bl, err := mesh.LayerSchedule(mesh.Coarse, fluid, 10.0, 10.0, 0.125, 1.4)
	if err != nil {
		t.Fatalf("LayerSchedule: %v", err)
	}
	if bl.YPlus != 70 {
		t.Errorf("YPlus = %g, want 70", bl.YPlus)
	}
	approx(t, "FirstLayerThickness", bl.FirstLayerThickness, 5.8744107953428e-3, 1e-9)
	approx(t, "FinalLayerThickness", bl.FinalLayerThickness, 0.04375, 1e-12)
	if bl.Layers != 5 {
		t.Errorf("Layers = %d, want 5", bl.Layers)
	}
}

func TestLayerScheduleFirstBelowFinal(t *testing.T) {
	fluid := mesh.Fluid{Rho: 1000, Nu: 1e-6}
	for _, amount := range []mesh.RefinementAmount{mesh.Coarse, mesh.Medium, mesh.Fine} {
		bl, err := mesh.LayerSchedule(amount, fluid, 1.0, 1.0, 0.05, 1.3)
		if err != nil {
			t.Fatalf("%s: %v", amount, err)
		}
		if bl.FirstLayerThickness >= bl.FinalLayerThickness {
			t.Errorf("%s: first %g >= final %g", amount, bl.FirstLayerThickness, bl.FinalLayerThickness)
		}
		if bl.Layers < 1 {
			t.Errorf("%s: layer count %d < 1", amount, bl.Layers)
		}
	}
}

func TestLayerScheduleCountFloorsAtOne(t *testing.T) {
	// A tiny target cell size drives final below first; the count still
	// comes back as one usable layer.
	fluid := mesh.Fluid{Rho: 1000, Nu: 1e-6}
	bl, err := mesh.LayerSchedule(mesh.Fine, fluid, 1.0, 1.0, 1e-6, 1.4)
	if err != nil {
		t.Fatalf("LayerSchedule: %v", err)
	}
	if bl.Layers != 1 {
		t.Errorf("Layers = %d, want 1", bl.Layers)
	}
}

// ---------------------------------------------------------------------------
// Iterative growth
// ---------------------------------------------------------------------------

func TestGrowLayersAgreesWithClosedForm(t *testing.T) {
	// Feed the iterative variant a target depth equal to the geometric
	// series the closed form assumes; the step counts agree within one.
	const y = 2.94e-4
	first := 2 * y

	tests := []struct {
		ratio float64
		n     int
	}{
		{1.2, 3},
		{1.2, 5},
		{1.3, 3},
		{1.3, 4},
	}
	for _, tt := range tests {
		delta := first * (math.Pow(tt.ratio, float64(tt.n)) - 1) / (tt.ratio - 1)
		got, final, err := mesh.GrowLayers(y, delta, tt.ratio)
		if err != nil {
			t.Fatalf("GrowLayers(ratio=%g, n=%d): %v", tt.ratio, tt.n, err)
		}
		if d := got - tt.n; d > 1 || d < -1 {
			t.Errorf("ratio %g: iterative %d vs closed form %d differ by more than 1", tt.ratio, got, tt.n)
		}
		if final <= first {
			t.Errorf("ratio %g: final thickness %g not above first %g", tt.ratio, final, first)
		}
	}
}

func TestGrowLayersConvergenceError(t *testing.T) {
	// Unit ratio never compounds, so a deep target cannot be reached
	// within the iteration cap.
	_, _, err := mesh.GrowLayers(1e-6, 1.0, 1.0)
	var cerr mesh.ConvergenceError
	if !errors.As(err, &cerr) {
		t.Fatalf("err = %v, want ConvergenceError", err)
	}
}

// ---------------------------------------------------------------------------
// Reference correlations
// ---------------------------------------------------------------------------

func TestBoundaryLayerDepth(t *testing.T) {
	re := mesh.ReynoldsNumber(1.0, 1.0, 1e-6)
	approx(t, "Re", re, 1e6, 1e-12)

	// delta = 0.37*L/Re^0.2 = 0.37/10^(6/5)
	approx(t, "delta", mesh.BoundaryLayerDepth(re, 1.0), 0.37/math.Pow(10, 1.2), 1e-12)
}

func TestTurbulenceIntensity(t *testing.T) {
	// I = 0.16*Re^-1/8; Re = 1e5 here.
	i := mesh.TurbulenceIntensity(1.0, 1e-6, 0.1)
	approx(t, "I", i, 0.16*math.Pow(1e5, -0.125), 1e-12)
}

func TestChannelLengthScale(t *testing.T) {
	// Square channel: hydraulic diameter equals the side.
	approx(t, "l", mesh.ChannelLengthScale(2, 2), 0.07*2, 1e-12)
	approx(t, "duct l", mesh.LengthScale(2), 0.07*2, 1e-12)
}

func TestKEpsilon(t *testing.T) {
	k, epsilon, omega := mesh.KEpsilon(10, 1.5e-5, 0.05)

	// k = 1.5*(U*I)^2
	approx(t, "k", k, 1.5*0.25, 1e-12)
	// epsilon = 1.5*k^1.5/(0.09*nu)
	approx(t, "epsilon", epsilon, 1.5*math.Pow(k, 1.5)/(0.09*1.5e-5), 1e-12)
	// omega = 0.09*k/epsilon
	approx(t, "omega", omega, 0.09*k/epsilon, 1e-12)
}
