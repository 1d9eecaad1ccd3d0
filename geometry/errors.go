package geometry

import "fmt"

// GeometryError reports vessel or fill parameters that violate a geometric
// invariant. Fatal to the request; surfaced verbatim.
type GeometryError struct {
	Field  string
	Reason string
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("geometry: %s: %s", e.Field, e.Reason)
}

// ConvergenceError reports a height solve that ran out of iterations. It
// must never happen for valid inputs; seeing one means a defect.
type ConvergenceError struct {
	Target     float64 // volume being inverted, m³
	Low, High  float64 // last height bracket, m
	Iterations int
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("geometry: height solve did not converge after %d iterations (target %g m³, bracket [%g, %g])",
		e.Iterations, e.Target, e.Low, e.High)
}
