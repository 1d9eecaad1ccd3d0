package calculator

import (
	"errors"

	log "github.com/sirupsen/logrus"

	"psv/geometry"
	"psv/model"
)

// Size runs the full fire-case sizing pipeline on one input snapshot:
// standard selection, fire exposure geometry, heat load, evaporation,
// relieving conditions, required area, orifice selection. Each stage feeds
// the next; nothing is retried or defaulted. Pure apart from logging, so
// concurrent calls are safe.
func Size(in model.SizingInput) (model.SizingResult, error) {
	if err := validateFluid(in.Fluid); err != nil {
		return model.SizingResult{}, err
	}
	if err := validateRelief(in.Relief); err != nil {
		return model.SizingResult{}, err
	}

	method, fireLimit := SelectMethod(in.Relief.MAWP)

	vessel, err := geometry.NewVessel(in.Vessel)
	if err != nil {
		return model.SizingResult{}, err
	}
	exposure, err := vessel.Exposure(in.Fill, fireLimit)
	if err != nil {
		return model.SizingResult{}, err
	}

	heatLoad := HeatLoad(method, exposure.WettedArea, psigToBarg(in.Relief.MAWP), in.Relief.Firefighting)
	evap, err := EvaporationRate(heatLoad, in.Fluid.Hvap)
	if err != nil {
		return model.SizingResult{}, err
	}

	p1 := RelievingPressure(in.Relief.MAWP, in.Relief.AccumulationPercent, in.Relief.Atmosphere)
	regime, p2, err := ClassifyFlow(p1, in.Relief.Backpressure, in.Relief.Atmosphere, in.Fluid.K)
	if err != nil {
		return model.SizingResult{}, err
	}

	w := kgPerSecToLbPerHr(evap)
	tr := kelvinToRankine(in.Fluid.Temperature)
	var area float64
	if regime == model.FlowCritical {
		area = RequiredAreaCritical(w, in.Fluid.K, tr, in.Fluid.Z, in.Fluid.MolecularWeight,
			p1, in.Relief.Kd, in.Relief.Kb, in.Relief.Kc)
	} else {
		if p2 >= p1 {
			return model.SizingResult{}, &InvalidFluidPropertyError{Name: "backpressure_psig", Value: in.Relief.Backpressure,
				Reason: "absolute backpressure must stay below the relieving pressure"}
		}
		area = RequiredAreaSubcritical(w, in.Fluid.K, tr, in.Fluid.Z, in.Fluid.MolecularWeight,
			p1, p2, in.Relief.Kd, in.Relief.Ke)
	}

	result := model.SizingResult{
		Method:            method,
		FireHeightLimit:   fireLimit,
		Exposure:          exposure,
		HeatLoad:          heatLoad,
		EvaporationRate:   evap,
		EvaporationRateHr: evap * secondsPerHour,
		RelievingPressure: p1,
		FlowRegime:        regime,
		RequiredArea:      area,
	}

	orifice, err := SelectOrifice(area)
	if err != nil {
		var noFit *NoSuitableOrificeError
		if !errors.As(err, &noFit) {
			return model.SizingResult{}, err
		}
		log.WithFields(log.Fields{
			"required_area_in2": area,
			"largest_area_in2":  noFit.LargestArea,
		}).Warn("no standard orifice fits, returning unsized result")
	}
	result.SelectedOrifice = orifice

	fields := log.Fields{
		"method":            method,
		"wetted_area_m2":    exposure.WettedArea,
		"heat_load_w":       heatLoad,
		"flow_regime":       regime,
		"required_area_in2": area,
	}
	if orifice != nil {
		fields["orifice"] = orifice.Letter
	}
	log.WithFields(fields).Info("sizing run complete")

	return result, nil
}

func validateFluid(f model.FluidProperties) error {
	if f.K <= 1 {
		return &InvalidFluidPropertyError{Name: "k", Value: f.K, Reason: "specific heat ratio must exceed 1"}
	}
	if f.Hvap <= 0 {
		return &InvalidFluidPropertyError{Name: "hvap_j_per_kg", Value: f.Hvap, Reason: "enthalpy of vaporization must be positive"}
	}
	if f.MolecularWeight <= 0 {
		return &InvalidFluidPropertyError{Name: "molecular_weight", Value: f.MolecularWeight, Reason: "molecular weight must be positive"}
	}
	if f.Z <= 0 {
		return &InvalidFluidPropertyError{Name: "z", Value: f.Z, Reason: "compressibility factor must be positive"}
	}
	if f.Temperature <= 0 {
		return &InvalidFluidPropertyError{Name: "temperature_k", Value: f.Temperature, Reason: "relieving temperature must be positive"}
	}
	return nil
}

func validateRelief(r model.ReliefLineConfig) error {
	if r.MAWP <= 0 {
		return &InvalidFluidPropertyError{Name: "mawp_psig", Value: r.MAWP, Reason: "MAWP must be positive"}
	}
	if r.Atmosphere <= 0 {
		return &InvalidFluidPropertyError{Name: "atmosphere_psia", Value: r.Atmosphere, Reason: "atmospheric pressure must be positive"}
	}
	if r.Backpressure < 0 {
		return &InvalidFluidPropertyError{Name: "backpressure_psig", Value: r.Backpressure, Reason: "backpressure must be non-negative"}
	}
	if r.AccumulationPercent <= 0 || r.AccumulationPercent > 100 {
		return &InvalidFluidPropertyError{Name: "accumulation_percent", Value: r.AccumulationPercent, Reason: "accumulation must be in (0, 100]"}
	}
	if err := validateFactor("kd", r.Kd, 1); err != nil {
		return err
	}
	if err := validateFactor("kb", r.Kb, 1); err != nil {
		return err
	}
	if err := validateFactor("kc", r.Kc, 1); err != nil {
		return err
	}
	// Ke may exceed 1 for uninsulated installations.
	return validateFactor("ke", r.Ke, 2)
}

func validateFactor(name string, v, max float64) error {
	if v <= 0 || v > max {
		return &InvalidFluidPropertyError{Name: name, Value: v, Reason: "correction factor out of range"}
	}
	return nil
}
