package geometry

import (
	"math"

	"psv/model"
)

// Head is the internal profile of one vessel head, measured from the lowest
// point of the head upward. VolumeTo and WettedAreaTo are cumulative from
// height zero and clamp their argument to [0, Depth].
type Head interface {
	// Depth is the head height from its lowest point to the tangent line.
	Depth() float64
	// Radius is the internal cylinder radius at the tangent line.
	Radius() float64
	// Volume is the full internal head volume.
	Volume() float64
	// VolumeTo is the internal volume below height h.
	VolumeTo(h float64) float64
	// WettedAreaTo is the internal lateral surface below height h.
	WettedAreaTo(h float64) float64
}

// Crown and knuckle radii as fractions of the external diameter. The 2:1
// ellipsoidal head uses the standard two-arc approximation of the ellipse.
const (
	asmeFDCrownFraction        = 1.00
	asmeFDKnuckleFraction      = 0.06
	ellipsoidalCrownFraction   = 0.90
	ellipsoidalKnuckleFraction = 0.17
)

// NewHead builds the internal head profile from the external diameter and
// wall thickness, both in meters (thin-wall approximation: internal arc
// radii are the external ones minus the thickness).
func NewHead(t model.HeadType, outerDiameter, thickness float64) (Head, error) {
	switch t {
	case model.HeadASMEFD:
		return newCrownKnuckleHead(outerDiameter, thickness, asmeFDCrownFraction, asmeFDKnuckleFraction)
	case model.HeadEllipsoidal:
		return newCrownKnuckleHead(outerDiameter, thickness, ellipsoidalCrownFraction, ellipsoidalKnuckleFraction)
	case model.HeadHemispherical:
		return &hemisphericalHead{radius: outerDiameter/2 - thickness}, nil
	}
	return nil, &GeometryError{Field: "head_type", Reason: "unknown head type " + string(t)}
}

// crownKnuckleHead is a torispherical profile: a crown arc centered on the
// vessel axis meeting a knuckle arc offset from it. Both the ASME F&D and
// the approximated 2:1 ellipsoidal heads share this shape and differ only
// in the arc fractions.
type crownKnuckleHead struct {
	radius        float64 // internal cylinder radius
	crownRadius   float64 // internal crown arc radius
	crownCenter   float64 // crown arc center height (on the axis)
	crownBase     float64 // height of the crown pole, crownCenter - crownRadius
	knuckleRadius float64 // internal knuckle arc radius
	knuckleOffset float64 // knuckle arc center distance from the axis
	knuckleCenter float64 // knuckle arc center height
	transition    float64 // crown to knuckle transition height
	depth         float64 // head depth at the tangent line
}

func newCrownKnuckleHead(d, t, crownFraction, knuckleFraction float64) (*crownKnuckleHead, error) {
	crownExt := crownFraction * d
	knuckleExt := knuckleFraction * d
	if t >= knuckleExt {
		return nil, &GeometryError{Field: "shell_thickness_m", Reason: "thickness swallows the knuckle radius"}
	}

	// External arc construction; the internal profile keeps the external
	// centers and shrinks the radii by the wall thickness.
	a := crownExt - knuckleExt
	b := d/2 - knuckleExt
	knuckleCenter := crownExt - math.Sqrt(a*a-b*b)
	alpha := math.Asin(b / a)
	transition := crownExt - math.Cos(alpha)*crownExt

	h := &crownKnuckleHead{
		radius:        d/2 - t,
		crownRadius:   crownExt - t,
		crownCenter:   crownExt,
		knuckleRadius: knuckleExt - t,
		knuckleOffset: b,
		knuckleCenter: knuckleCenter,
		transition:    transition,
		depth:         knuckleCenter,
	}
	h.crownBase = h.crownCenter - h.crownRadius
	return h, nil
}

func (h *crownKnuckleHead) Depth() float64  { return h.depth }
func (h *crownKnuckleHead) Radius() float64 { return h.radius }
func (h *crownKnuckleHead) Volume() float64 { return h.VolumeTo(h.depth) }

// radiusAt is the internal profile radius at height z, used by the
// cross-check tests.
func (h *crownKnuckleHead) radiusAt(z float64) float64 {
	if z <= h.transition {
		v := h.crownRadius*h.crownRadius - (z-h.crownCenter)*(z-h.crownCenter)
		return math.Sqrt(math.Max(v, 0))
	}
	if z <= h.depth {
		v := h.knuckleRadius*h.knuckleRadius - (z-h.knuckleCenter)*(z-h.knuckleCenter)
		return h.knuckleOffset + math.Sqrt(math.Max(v, 0))
	}
	return h.radius
}

func (h *crownKnuckleHead) VolumeTo(z float64) float64 {
	z = clamp(z, 0, h.depth)
	vol := h.crownVolume(z)
	if z > h.transition {
		vol += h.knuckleVolume(h.transition-h.knuckleCenter, z-h.knuckleCenter)
	}
	return vol
}

func (h *crownKnuckleHead) WettedAreaTo(z float64) float64 {
	z = clamp(z, 0, h.depth)
	area := h.crownArea(z)
	if z > h.transition {
		area += h.knuckleArea(h.transition-h.knuckleCenter, z-h.knuckleCenter)
	}
	return area
}

// crownVolume integrates π·r² over the spherical crown from its pole up to
// min(z, transition).
func (h *crownKnuckleHead) crownVolume(z float64) float64 {
	z = math.Min(z, h.transition)
	if z <= h.crownBase {
		return 0
	}
	c, r := h.crownCenter, h.crownRadius
	return math.Pi * (r*r*(z-h.crownBase) - ((z-c)*(z-c)*(z-c)+r*r*r)/3)
}

// crownArea is the spherical zone area from the pole up to min(z, transition).
func (h *crownKnuckleHead) crownArea(z float64) float64 {
	z = math.Min(z, h.transition)
	if z <= h.crownBase {
		return 0
	}
	return 2 * math.Pi * h.crownRadius * (z - h.crownBase)
}

// knuckleVolume integrates π·r² over the knuckle arc between the center
// offsets u1 and u2 (u = z - knuckleCenter, both non-positive). Where the
// internal arc does not reach, the profile degenerates to the arc center
// offset.
func (h *crownKnuckleHead) knuckleVolume(u1, u2 float64) float64 {
	rk, rp := h.knuckleRadius, h.knuckleOffset
	vol := 0.0
	lo := u1
	if lo < -rk {
		cut := math.Min(u2, -rk)
		vol += math.Pi * rp * rp * (cut - lo)
		lo = cut
	}
	if u2 > lo {
		vol += math.Pi * ((rp*rp+rk*rk)*(u2-lo) - (u2*u2*u2-lo*lo*lo)/3 +
			2*rp*(circleSegmentIntegral(u2, rk)-circleSegmentIntegral(lo, rk)))
	}
	return vol
}

// knuckleArea is the surface of revolution of the knuckle arc between the
// center offsets u1 and u2.
func (h *crownKnuckleHead) knuckleArea(u1, u2 float64) float64 {
	rk, rp := h.knuckleRadius, h.knuckleOffset
	area := 0.0
	lo := u1
	if lo < -rk {
		cut := math.Min(u2, -rk)
		area += 2 * math.Pi * rp * (cut - lo)
		lo = cut
	}
	if u2 > lo {
		area += 2 * math.Pi * rk * (rp*(math.Asin(clamp(u2, -rk, rk)/rk)-math.Asin(clamp(lo, -rk, rk)/rk)) + (u2 - lo))
	}
	return area
}

// circleSegmentIntegral is ∫ sqrt(r²−u²) du evaluated at u.
func circleSegmentIntegral(u, r float64) float64 {
	u = clamp(u, -r, r)
	return (u*math.Sqrt(math.Max(r*r-u*u, 0)) + r*r*math.Asin(u/r)) / 2
}

// hemisphericalHead is a half sphere of the internal radius; its depth
// equals its radius.
type hemisphericalHead struct {
	radius float64
}

func (h *hemisphericalHead) Depth() float64  { return h.radius }
func (h *hemisphericalHead) Radius() float64 { return h.radius }
func (h *hemisphericalHead) Volume() float64 {
	return 2 * math.Pi * h.radius * h.radius * h.radius / 3
}

func (h *hemisphericalHead) VolumeTo(z float64) float64 {
	z = clamp(z, 0, h.radius)
	return math.Pi * (h.radius*z*z - z*z*z/3)
}

func (h *hemisphericalHead) WettedAreaTo(z float64) float64 {
	z = clamp(z, 0, h.radius)
	return 2 * math.Pi * h.radius * z
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
