package geometry

import (
	"fmt"
	"math"

	"psv/model"
)

// Height solve settings. The volume-in-head function is strictly increasing
// and continuous, so bisection over the head depth always converges well
// inside the cap; the cap exists to turn a defect into a diagnosable error.
const (
	solveMaxIterations = 200
	solveTolerance     = 1e-9 // relative volume error
)

// capacitySlack absorbs rounding when a fill volume is computed from the
// reported total volume and fed back in.
const capacitySlack = 1e-9

// Vessel is a vertical vessel with two identical heads and a cylindrical
// shell between the tangent lines. All methods are pure; a Vessel is safe
// for concurrent use.
type Vessel struct {
	head        Head
	shellHeight float64
	bottom      float64
}

// NewVessel validates the geometry invariants and builds the solver.
func NewVessel(g model.VesselGeometry) (*Vessel, error) {
	if !g.HeadType.Valid() {
		return nil, &GeometryError{Field: "head_type", Reason: "unknown head type " + string(g.HeadType)}
	}
	if g.OuterDiameter <= 0 {
		return nil, &GeometryError{Field: "outer_diameter_m", Reason: fmt.Sprintf("must be positive, got %g", g.OuterDiameter)}
	}
	if g.ShellHeight < 0 {
		return nil, &GeometryError{Field: "shell_height_m", Reason: fmt.Sprintf("must be non-negative, got %g", g.ShellHeight)}
	}
	if g.ShellThickness < 0 {
		return nil, &GeometryError{Field: "shell_thickness_m", Reason: fmt.Sprintf("must be non-negative, got %g", g.ShellThickness)}
	}
	if g.ShellThickness >= g.OuterDiameter/2 {
		return nil, &GeometryError{Field: "shell_thickness_m", Reason: fmt.Sprintf("thickness %g m must be less than the vessel radius %g m", g.ShellThickness, g.OuterDiameter/2)}
	}
	if g.BottomElevation < 0 {
		return nil, &GeometryError{Field: "bottom_elevation_m", Reason: fmt.Sprintf("must be non-negative, got %g", g.BottomElevation)}
	}
	head, err := NewHead(g.HeadType, g.OuterDiameter, g.ShellThickness)
	if err != nil {
		return nil, err
	}
	return &Vessel{head: head, shellHeight: g.ShellHeight, bottom: g.BottomElevation}, nil
}

// TotalHeight is the internal height from the bottom head pole to the top
// head pole.
func (v *Vessel) TotalHeight() float64 {
	return 2*v.head.Depth() + v.shellHeight
}

// TotalVolume is the full internal capacity: both heads plus the shell.
func (v *Vessel) TotalVolume() float64 {
	return 2*v.head.Volume() + v.shellArea()*v.shellHeight
}

func (v *Vessel) shellArea() float64 {
	r := v.head.Radius()
	return math.Pi * r * r
}

// VolumeAt is the liquid volume below height h from the vessel bottom.
func (v *Vessel) VolumeAt(h float64) float64 {
	h = clamp(h, 0, v.TotalHeight())
	depth := v.head.Depth()
	vol := v.head.VolumeTo(math.Min(h, depth))
	if h > depth {
		vol += v.shellArea() * math.Min(h-depth, v.shellHeight)
	}
	if h > depth+v.shellHeight {
		vol += v.head.VolumeTo(h - depth - v.shellHeight)
	}
	return vol
}

// WettedArea is the internal surface in contact with liquid up to height h
// from the vessel bottom.
func (v *Vessel) WettedArea(h float64) float64 {
	h = clamp(h, 0, v.TotalHeight())
	depth := v.head.Depth()
	area := v.head.WettedAreaTo(math.Min(h, depth))
	if h > depth {
		area += 2 * math.Pi * v.head.Radius() * math.Min(h-depth, v.shellHeight)
	}
	if h > depth+v.shellHeight {
		area += v.head.WettedAreaTo(h - depth - v.shellHeight)
	}
	return area
}

// LiquidHeight inverts VolumeAt: the liquid height from the vessel bottom
// holding exactly the given volume. The shell section is inverted in closed
// form; the heads by bisection.
func (v *Vessel) LiquidHeight(volume float64) (float64, error) {
	if volume < 0 {
		return 0, &GeometryError{Field: "fill_volume_m3", Reason: fmt.Sprintf("must be non-negative, got %g", volume)}
	}
	total := v.TotalVolume()
	if volume > total*(1+capacitySlack) {
		return 0, &GeometryError{Field: "fill_volume_m3", Reason: fmt.Sprintf("volume %g m³ exceeds the vessel capacity %g m³", volume, total)}
	}
	volume = math.Min(volume, total)

	headVol := v.head.Volume()
	depth := v.head.Depth()
	if volume <= headVol {
		return v.solveHeadHeight(volume)
	}
	rest := volume - headVol
	shellVol := v.shellArea() * v.shellHeight
	if rest <= shellVol {
		return depth + rest/v.shellArea(), nil
	}
	top, err := v.solveHeadHeight(rest - shellVol)
	if err != nil {
		return 0, err
	}
	return depth + v.shellHeight + top, nil
}

// solveHeadHeight bisects the head fill height whose cumulative volume
// matches target.
func (v *Vessel) solveHeadHeight(target float64) (float64, error) {
	depth := v.head.Depth()
	if target <= 0 {
		return 0, nil
	}
	if target >= v.head.Volume() {
		return depth, nil
	}
	lo, hi := 0.0, depth
	for i := 0; i < solveMaxIterations; i++ {
		mid := (lo + hi) / 2
		got := v.head.VolumeTo(mid)
		if math.Abs(got-target) <= solveTolerance*target || hi-lo <= solveTolerance*depth {
			return mid, nil
		}
		if got < target {
			lo = mid
		} else {
			hi = mid
		}
	}
	return 0, &ConvergenceError{Target: target, Low: lo, High: hi, Iterations: solveMaxIterations}
}

// Exposure maps a fill state to the fire-exposed wetted surface. The fire
// height limit is decided by the governing standard, which depends only on
// MAWP, so the caller selects it before the geometry runs.
func (v *Vessel) Exposure(fill model.FillState, fireHeightLimit float64) (model.FireExposureResult, error) {
	height, err := v.LiquidHeight(fill.Volume)
	if err != nil {
		return model.FireExposureResult{}, err
	}
	exposed := math.Min(height, fireHeightLimit-v.bottom)
	if exposed < 0 {
		exposed = 0
	}
	return model.FireExposureResult{
		LiquidHeight:  height,
		ExposedHeight: exposed,
		WettedArea:    v.WettedArea(exposed),
	}, nil
}
