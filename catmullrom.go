package mathfs

import "github.com/go-gl/mathgl/mgl64"

var _ Segment[mgl64.Vec2] = (*CatmullRom2)(nil)

// CatmullRom is a uniform Catmull-Rom segment over four control points. The
// curve runs from p1 to p2; p0 and p3 only shape the velocities there and are
// themselves not on the curve. Chaining segments over a sliding window of
// points yields a C¹ spline through all of them.
type CatmullRom[V Vector[V]] struct {
	cubicCore[V]
}

// Common instantiations.
type (
	CatmullRom2 = CatmullRom[mgl64.Vec2]
	CatmullRom3 = CatmullRom[mgl64.Vec3]
)

// NewCatmullRom returns the Catmull-Rom segment over the given control
// points.
func NewCatmullRom[V Vector[V]](p0, p1, p2, p3 V) CatmullRom[V] {
	return CatmullRom[V]{cubicCore[V]{pts: [4]V{p0, p1, p2, p3}}}
}

// Family reports [FamilyCatmullRom].
func (c CatmullRom[V]) Family() Family {
	return FamilyCatmullRom
}

// Curve returns the polynomial form of the segment, recomputing it only if a
// control point changed since the last call.
func (c *CatmullRom[V]) Curve() Polynomial[V] {
	return c.polynomial(CatmullRomMatrix)
}

func (c CatmullRom[V]) Start() V {
	return c.pts[1]
}

func (c CatmullRom[V]) End() V {
	return c.pts[2]
}

// Bezier returns the Bézier form of the same curve. Its inner control points
// sit a sixth of the surrounding chords away from the endpoints.
func (c CatmullRom[V]) Bezier() CubicBez[V] {
	return NewCubicBez(
		c.pts[1],
		c.pts[1].Add(c.pts[2].Sub(c.pts[0]).Mul(1.0/6.0)),
		c.pts[2].Add(c.pts[1].Sub(c.pts[3]).Mul(1.0/6.0)),
		c.pts[2],
	)
}

// Hermite returns the Hermite form of the same curve, with the velocity at
// each endpoint half the chord between its neighbors.
func (c CatmullRom[V]) Hermite() Hermite[V] {
	return NewHermite(
		c.pts[1],
		c.pts[2].Sub(c.pts[0]).Mul(0.5),
		c.pts[2],
		c.pts[3].Sub(c.pts[1]).Mul(0.5),
	)
}

// BSpline returns the uniform B-spline form of the same curve.
func (c CatmullRom[V]) BSpline() BSpline[V] {
	return NewBSpline(
		combine([4]float64{7.0 / 6, -4.0 / 6, 5.0 / 6, -2.0 / 6}, c.pts),
		combine([4]float64{-2.0 / 6, 11.0 / 6, -4.0 / 6, 1.0 / 6}, c.pts),
		combine([4]float64{1.0 / 6, -4.0 / 6, 11.0 / 6, -2.0 / 6}, c.pts),
		combine([4]float64{-2.0 / 6, 5.0 / 6, -4.0 / 6, 7.0 / 6}, c.pts),
	)
}

// Lerp linearly interpolates between the control points of c and o,
// returning the blended segment. Like [Lerp] it is unclamped.
func (c CatmullRom[V]) Lerp(o CatmullRom[V], t float64) CatmullRom[V] {
	return NewCatmullRom(
		Lerp(c.pts[0], o.pts[0], t),
		Lerp(c.pts[1], o.pts[1], t),
		Lerp(c.pts[2], o.pts[2], t),
		Lerp(c.pts[3], o.pts[3], t),
	)
}

// Equal reports whether c and o have identical control points.
func (c CatmullRom[V]) Equal(o CatmullRom[V]) bool {
	return c.pts == o.pts
}

func (c CatmullRom[V]) String() string {
	return segmentString(FamilyCatmullRom, c.pts[:])
}
