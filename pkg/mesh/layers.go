package mesh

import "math"

// Fluid holds the physical properties the layer schedule depends on.
type Fluid struct {
	Rho float64 // density [kg/m3]
	Nu  float64 // kinematic viscosity [m2/s]
}

func (f Fluid) validate() error {
	if f.Nu <= 0 {
		return PhysicalParameterError{Name: "nu", Value: f.Nu}
	}
	if f.Rho <= 0 {
		return PhysicalParameterError{Name: "rho", Value: f.Rho}
	}
	return nil
}

// BoundaryLayer is the near-wall prism layer schedule.
type BoundaryLayer struct {
	YPlus               float64 // target dimensionless wall distance
	Y                   float64 // near-wall distance matching YPlus
	FirstLayerThickness float64 // first prism cell thickness (2*Y)
	FinalLayerThickness float64 // outermost prism cell thickness
	Layers              int     // number of prism layers
}

// finalThicknessRatio scales the target cell size down to the outermost
// prism layer so the layer stack blends into the surrounding mesh.
const finalThicknessRatio = 0.35

// maxLayerIterations caps the iterative layer growth.
const maxLayerIterations = 50

// NearWallSpacing returns the wall distance y at which the first cell
// center meets the target y+, using the flat-plate skin-friction
// correlation Cf = 0.0592 Re^-1/5.
func NearWallSpacing(fluid Fluid, length, speed, targetYPlus float64) (float64, error) {
	if err := fluid.validate(); err != nil {
		return 0, err
	}
	if length <= 0 {
		return 0, PhysicalParameterError{Name: "L", Value: length}
	}
	if speed <= 0 {
		return 0, PhysicalParameterError{Name: "U", Value: speed}
	}

	re := speed * length / fluid.Nu
	if re <= 0 {
		return 0, PhysicalParameterError{Name: "Re", Value: re}
	}
	cf := 0.0592 * math.Pow(re, -1.0/5.0)
	tau := 0.5 * fluid.Rho * cf * speed * speed
	uStar := math.Sqrt(tau / fluid.Rho)
	return targetYPlus * fluid.Nu / uStar, nil
}

// YPlusFor is the inverse correlation: the y+ a given wall distance
// achieves at the given flow conditions.
func YPlusFor(nu, length, speed, y float64) float64 {
	re := speed * length / nu
	cf := 0.0592 * math.Pow(re, -1.0/5.0)
	tau := 0.5 * cf * speed * speed
	uStar := math.Sqrt(tau)
	return uStar * y / nu
}

// LayerSchedule derives the full prism layer schedule for a wall surface.
// The first layer is twice the near-wall spacing (the first cell center,
// not its face, lands at the target y+), the final layer is a fraction of
// the target cell size, and the count assumes pure geometric growth
// between the two.
func LayerSchedule(amount RefinementAmount, fluid Fluid, length, speed, targetCellSize, expansionRatio float64) (BoundaryLayer, error) {
	yPlus := amount.TargetYPlus()
	y, err := NearWallSpacing(fluid, length, speed, yPlus)
	if err != nil {
		return BoundaryLayer{}, err
	}

	first := 2 * y
	final := targetCellSize * finalThicknessRatio
	layers := max(1, int(math.Log(final/first)/math.Log(expansionRatio)))

	return BoundaryLayer{
		YPlus:               yPlus,
		Y:                   y,
		FirstLayerThickness: first,
		FinalLayerThickness: final,
		Layers:              layers,
	}, nil
}

// GrowLayers is the iterative companion to LayerSchedule: starting from a
// first layer of 2*y it compounds the thickness step by step, accumulating
// until the stack depth exceeds delta. It returns the step count and the
// thickness at that step. For consistent inputs it agrees with the closed
// form within one layer; exceeding the iteration cap is a computation
// failure, not an infinite loop.
func GrowLayers(y, delta, expansionRatio float64) (int, float64, error) {
	thickness := y * 2
	depth := 0.0
	for i := 1; i < maxLayerIterations; i++ {
		thickness *= math.Pow(expansionRatio, float64(i))
		depth += thickness
		if depth > delta {
			return i, thickness, nil
		}
	}
	return 0, 0, ConvergenceError{Iterations: maxLayerIterations}
}
