package calculator

import (
	"math"

	"psv/model"
)

// RelievingPressure is P1 in psia: MAWP plus the allowed accumulation plus
// atmospheric pressure, summed on the absolute basis.
func RelievingPressure(mawpPsig, accumulationPercent, atmPsia float64) float64 {
	return mawpPsig + mawpPsig*accumulationPercent/100 + atmPsia
}

// CriticalPressure is the downstream pressure in psia at which flow through
// the orifice throat turns sonic.
func CriticalPressure(p1Psia, k float64) (float64, error) {
	if k <= 1 {
		return 0, &InvalidFluidPropertyError{Name: "k", Value: k, Reason: "specific heat ratio must exceed 1"}
	}
	return p1Psia * math.Pow(2/(k+1), k/(k-1)), nil
}

// ClassifyFlow compares the absolute backpressure against the critical
// pressure and returns the regime together with P2 in psia.
func ClassifyFlow(p1Psia, backpressurePsig, atmPsia, k float64) (model.FlowRegime, float64, error) {
	pcrit, err := CriticalPressure(p1Psia, k)
	if err != nil {
		return "", 0, err
	}
	p2 := backpressurePsig + atmPsia
	if p2 < pcrit {
		return model.FlowCritical, p2, nil
	}
	return model.FlowSubcritical, p2, nil
}
