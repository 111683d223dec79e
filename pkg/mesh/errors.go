package mesh

import "fmt"

// GeometryError reports a surface geometry that cannot drive the
// derivation, such as a degenerate bounding box.
type GeometryError struct {
	Reason string
}

func (e GeometryError) Error() string {
	return fmt.Sprintf("invalid geometry: %s", e.Reason)
}

// PhysicalParameterError reports a non-physical scalar input. Defaults are
// never substituted; the caller must supply a positive value.
type PhysicalParameterError struct {
	Name  string
	Value float64
}

func (e PhysicalParameterError) Error() string {
	return fmt.Sprintf("physical parameter %s = %g, must be positive", e.Name, e.Value)
}

// ConvergenceError reports that the iterative layer growth failed to reach
// its target depth within the iteration cap.
type ConvergenceError struct {
	Iterations int
}

func (e ConvergenceError) Error() string {
	return fmt.Sprintf("layer growth did not reach target depth within %d iterations", e.Iterations)
}
