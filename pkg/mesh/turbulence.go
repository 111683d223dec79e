package mesh

import "math"

// Turbulent-flow reference correlations. These feed initialization and
// reporting; the layer schedule itself only needs ReynoldsNumber and
// BoundaryLayerDepth.

// ReynoldsNumber is U*L/nu.
func ReynoldsNumber(speed, length, nu float64) float64 {
	return speed * length / nu
}

// BoundaryLayerDepth is the 1/7-power-law turbulent boundary layer
// thickness delta = 0.37 L / Re^0.2.
func BoundaryLayerDepth(re, length float64) float64 {
	return 0.37 * length / math.Pow(re, 0.2)
}

// KEpsilon returns initial k, epsilon and omega values from the inlet
// velocity magnitude and turbulence intensity, using C_mu = 0.09.
func KEpsilon(speed, nu, intensity float64) (k, epsilon, omega float64) {
	k = 1.5 * math.Pow(speed*intensity, 2)
	epsilon = 1.5 * math.Pow(k, 1.5) / (0.09 * nu)
	omega = 0.09 * k / epsilon
	return k, epsilon, omega
}

// TurbulenceIntensity estimates the inlet intensity from the Reynolds
// number of a duct of hydraulic diameter d.
func TurbulenceIntensity(speed, nu, d float64) float64 {
	re := speed * d / nu
	return 0.16 * math.Pow(re, -1.0/8.0)
}

// LengthScale is the mixing length for a duct of hydraulic diameter d.
func LengthScale(d float64) float64 {
	return 0.07 * d
}

// ChannelLengthScale is the mixing length for a rectangular channel of
// width w and height h, via its hydraulic diameter.
func ChannelLengthScale(w, h float64) float64 {
	area := w * h
	perimeter := 2 * (w + h)
	return 0.07 * 4 * area / perimeter
}
