package calculator

import (
	"math"

	"psv/model"
)

// API 526 standard orifices, ascending by effective area: letter, effective
// area in², effective diameter in, minimum inlet size in.
var orifices = []model.Orifice{
	{Letter: "D", Area: 0.110, Diameter: 0.374, InletSize: 1.0},
	{Letter: "E", Area: 0.196, Diameter: 0.500, InletSize: 1.0},
	{Letter: "F", Area: 0.307, Diameter: 0.625, InletSize: 1.5},
	{Letter: "G", Area: 0.503, Diameter: 0.800, InletSize: 1.5},
	{Letter: "H", Area: 0.785, Diameter: 1.000, InletSize: 2.0},
	{Letter: "J", Area: 1.287, Diameter: 1.280, InletSize: 3.0},
	{Letter: "K", Area: 1.838, Diameter: 1.530, InletSize: 3.0},
	{Letter: "L", Area: 2.853, Diameter: 1.906, InletSize: 4.0},
	{Letter: "M", Area: 3.600, Diameter: 2.141, InletSize: 4.0},
	{Letter: "N", Area: 4.454, Diameter: 2.381, InletSize: 4.0},
	{Letter: "P", Area: 6.380, Diameter: 2.850, InletSize: 6.0},
	{Letter: "Q", Area: 11.050, Diameter: 3.751, InletSize: 6.0},
	{Letter: "R", Area: 16.000, Diameter: 4.514, InletSize: 8.0},
	{Letter: "T", Area: 26.000, Diameter: 5.753, InletSize: 8.0},
}

// SelectOrifice returns the smallest standard orifice whose effective area
// covers the requirement, or NoSuitableOrificeError when even the largest
// one falls short.
func SelectOrifice(requiredAreaIn2 float64) (*model.Orifice, error) {
	for i := range orifices {
		if orifices[i].Area >= requiredAreaIn2 {
			o := orifices[i]
			return &o, nil
		}
	}
	return nil, &NoSuitableOrificeError{RequiredArea: requiredAreaIn2, LargestArea: orifices[len(orifices)-1].Area}
}

// cGas is the API 520 gas coefficient as a function of k, US units.
func cGas(k float64) float64 {
	return 520 * math.Sqrt(k*math.Pow(2/(k+1), (k+1)/(k-1)))
}

// f2Subcritical is the API 520 subcritical flow coefficient for the
// pressure ratio r = P2/P1, 0 < r < 1.
func f2Subcritical(k, r float64) float64 {
	return math.Sqrt(k / (k - 1) * math.Pow(r, k) * (1 - math.Pow(r, (k-1)/k)) / (1 - r))
}

const subcriticalUnitsConstant = 735.0

// RequiredAreaCritical is the critical-flow orifice area in in². W in lb/hr,
// T in °R, pressures in psia. Inputs are validated by the pipeline.
func RequiredAreaCritical(wLbHr, k, tRankine, z, molWeight, p1Psia, kd, kb, kc float64) float64 {
	return wLbHr * math.Sqrt(tRankine*z/molWeight) / (cGas(k) * kd * p1Psia * kb * kc)
}

// RequiredAreaSubcritical is the subcritical-flow orifice area in in².
// Requires P2 < P1.
func RequiredAreaSubcritical(wLbHr, k, tRankine, z, molWeight, p1Psia, p2Psia, kd, ke float64) float64 {
	f2 := f2Subcritical(k, p2Psia/p1Psia)
	return wLbHr * math.Sqrt(z*tRankine/(molWeight*p1Psia*(p1Psia-p2Psia))) /
		(subcriticalUnitsConstant * f2 * kd * ke)
}
