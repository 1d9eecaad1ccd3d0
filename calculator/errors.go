package calculator

import "fmt"

// InvalidFluidPropertyError reports a non-physical fluid property or relief
// configuration value. Fatal; attributable to the input snapshot.
type InvalidFluidPropertyError struct {
	Name   string
	Value  float64
	Reason string
}

func (e *InvalidFluidPropertyError) Error() string {
	return fmt.Sprintf("invalid property %s = %g: %s", e.Name, e.Value, e.Reason)
}

// NoSuitableOrificeError reports a required area beyond the largest standard
// orifice. Non-fatal: the pipeline completes and returns an unsized result.
type NoSuitableOrificeError struct {
	RequiredArea float64 // in²
	LargestArea  float64 // in²
}

func (e *NoSuitableOrificeError) Error() string {
	return fmt.Sprintf("no standard orifice fits the required area %.3f in² (largest is %.3f in²)",
		e.RequiredArea, e.LargestArea)
}
