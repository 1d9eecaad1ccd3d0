package model

// Shared value types of the sizing engine. Every struct here is passed by
// value and never mutated after construction; one snapshot in, one result out.

type HeadType string

const (
	HeadASMEFD        HeadType = "ASME_FD"
	HeadEllipsoidal   HeadType = "Ellipsoidal"
	HeadHemispherical HeadType = "Hemispherical"
)

func (h HeadType) Valid() bool {
	switch h {
	case HeadASMEFD, HeadEllipsoidal, HeadHemispherical:
		return true
	}
	return false
}

// Method is the governing fire sizing standard.
type Method string

const (
	MethodAPI2000 Method = "API2000"
	MethodAPI520  Method = "API520"
)

type FlowRegime string

const (
	FlowCritical    FlowRegime = "critical"
	FlowSubcritical FlowRegime = "subcritical"
)

// VesselGeometry describes a vertical liquid-containing vessel.
// Lengths in meters.
type VesselGeometry struct {
	HeadType        HeadType `json:"head_type"`
	OuterDiameter   float64  `json:"outer_diameter_m"`
	ShellHeight     float64  `json:"shell_height_m"` // tangent to tangent
	ShellThickness  float64  `json:"shell_thickness_m"`
	BottomElevation float64  `json:"bottom_elevation_m"` // vessel bottom above grade
}

// FillState is the liquid inventory at rest.
type FillState struct {
	Volume float64 `json:"fill_volume_m3"`
}

// FireExposureResult is the geometry stage output: how much of the wetted
// shell a pool fire can reach.
type FireExposureResult struct {
	LiquidHeight  float64 `json:"liquid_height_m"`
	ExposedHeight float64 `json:"exposed_height_m"`
	WettedArea    float64 `json:"wetted_area_m2"`
}

// FluidProperties of the stored liquid at relieving conditions.
type FluidProperties struct {
	K               float64 `json:"k"`                // specific heat ratio, > 1
	Hvap            float64 `json:"hvap_j_per_kg"`    // enthalpy of vaporization
	MolecularWeight float64 `json:"molecular_weight"` // g/mol == lb/lbmol
	Z               float64 `json:"z"`                // compressibility factor
	Temperature     float64 `json:"temperature_k"`    // relieving temperature
}

// ReliefLineConfig carries the pressure envelope and the device correction
// factors. OperatingPressure is informational only and feeds no sizing math.
type ReliefLineConfig struct {
	MAWP                float64 `json:"mawp_psig"`
	OperatingPressure   float64 `json:"operating_pressure_psig"`
	Firefighting        bool    `json:"firefighting"`
	AccumulationPercent float64 `json:"accumulation_percent"`
	Backpressure        float64 `json:"backpressure_psig"`
	Atmosphere          float64 `json:"atmosphere_psia"`
	Kd                  float64 `json:"kd"` // discharge coefficient
	Kb                  float64 `json:"kb"` // backpressure correction
	Kc                  float64 `json:"kc"` // combination factor
	Ke                  float64 `json:"ke"` // environmental factor
}

// SizingInput is the full calculation snapshot.
type SizingInput struct {
	Vessel VesselGeometry   `json:"vessel"`
	Fill   FillState        `json:"fill"`
	Fluid  FluidProperties  `json:"fluid"`
	Relief ReliefLineConfig `json:"relief"`
}

// Orifice is one row of the API 526 standard orifice table.
type Orifice struct {
	Letter    string  `json:"letter"`
	Area      float64 `json:"area_in2"`
	Diameter  float64 `json:"diameter_in"`
	InletSize float64 `json:"inlet_size_in"`
}

// SizingResult is the terminal artifact of one sizing run. SelectedOrifice
// is nil when no standard orifice is large enough; RequiredArea still holds
// so the caller can report the oversized-relief condition.
type SizingResult struct {
	Method            Method             `json:"method"`
	FireHeightLimit   float64            `json:"fire_height_limit_m"`
	Exposure          FireExposureResult `json:"exposure"`
	HeatLoad          float64            `json:"heat_load_w"`
	EvaporationRate   float64            `json:"evaporation_rate_kg_s"`
	EvaporationRateHr float64            `json:"evaporation_rate_kg_h"`
	RelievingPressure float64            `json:"relieving_pressure_psia"`
	FlowRegime        FlowRegime         `json:"flow_regime"`
	RequiredArea      float64            `json:"required_area_in2"`
	SelectedOrifice   *Orifice           `json:"selected_orifice"`
}

// Msg is the websocket envelope exchanged with the front end.
type Msg struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}
