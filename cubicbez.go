package mathfs

import "github.com/go-gl/mathgl/mgl64"

var _ Segment[mgl64.Vec2] = (*CubicBez2)(nil)

// CubicBez is a single cubic Bézier segment over four control points. The
// curve starts at p0, ends at p3, and leaves and enters them along p1−p0 and
// p3−p2.
type CubicBez[V Vector[V]] struct {
	cubicCore[V]
}

// Common instantiations.
type (
	CubicBez2 = CubicBez[mgl64.Vec2]
	CubicBez3 = CubicBez[mgl64.Vec3]
)

// NewCubicBez returns the cubic Bézier segment over the given control points.
func NewCubicBez[V Vector[V]](p0, p1, p2, p3 V) CubicBez[V] {
	return CubicBez[V]{cubicCore[V]{pts: [4]V{p0, p1, p2, p3}}}
}

// Family reports [FamilyCubicBez].
func (c CubicBez[V]) Family() Family {
	return FamilyCubicBez
}

// Curve returns the polynomial form of the segment, recomputing it only if a
// control point changed since the last call.
func (c *CubicBez[V]) Curve() Polynomial[V] {
	return c.polynomial(CubicBezMatrix)
}

func (c CubicBez[V]) Start() V {
	return c.pts[0]
}

func (c CubicBez[V]) End() V {
	return c.pts[3]
}

// Split subdivides the segment at parameter t, using de Casteljau. The two
// halves together trace exactly the curve of c, with pre covering [0, t] and
// post covering [t, 1]. t is not clamped; splitting outside [0, 1]
// extrapolates the curve.
func (c CubicBez[V]) Split(t float64) (pre, post CubicBez[V]) {
	q0 := Lerp(c.pts[0], c.pts[1], t)
	q1 := Lerp(c.pts[1], c.pts[2], t)
	q2 := Lerp(c.pts[2], c.pts[3], t)
	r0 := Lerp(q0, q1, t)
	r1 := Lerp(q1, q2, t)
	s := Lerp(r0, r1, t)
	return NewCubicBez(c.pts[0], q0, r0, s), NewCubicBez(s, r1, q2, c.pts[3])
}

// Subdivide subdivides the segment into halves, using de Casteljau.
func (c CubicBez[V]) Subdivide() (CubicBez[V], CubicBez[V]) {
	return c.Split(0.5)
}

// Hermite returns the Hermite form of the same curve, with end velocities
// 3(p1−p0) and 3(p3−p2).
func (c CubicBez[V]) Hermite() Hermite[V] {
	return NewHermite(
		c.pts[0],
		c.pts[1].Sub(c.pts[0]).Mul(3),
		c.pts[3],
		c.pts[3].Sub(c.pts[2]).Mul(3),
	)
}

// Lerp linearly interpolates between the control points of c and o,
// returning the blended segment. Like [Lerp] it is unclamped.
func (c CubicBez[V]) Lerp(o CubicBez[V], t float64) CubicBez[V] {
	return NewCubicBez(
		Lerp(c.pts[0], o.pts[0], t),
		Lerp(c.pts[1], o.pts[1], t),
		Lerp(c.pts[2], o.pts[2], t),
		Lerp(c.pts[3], o.pts[3], t),
	)
}

// Slerp interpolates between c and o with linearly blended endpoints and
// spherically blended end tangents: the tangents p1−p0 and p2−p3 of the
// result are the [Slerp] of the corresponding tangents of c and o. Compared
// to [CubicBez.Lerp] this keeps the blend's shape steady when c and o mostly
// differ by a rotation. Degenerate tangents fall back per [Slerp].
func (c CubicBez[V]) Slerp(o CubicBez[V], t float64) CubicBez[V] {
	p0 := Lerp(c.pts[0], o.pts[0], t)
	p3 := Lerp(c.pts[3], o.pts[3], t)
	return NewCubicBez(
		p0,
		p0.Add(Slerp(c.pts[1].Sub(c.pts[0]), o.pts[1].Sub(o.pts[0]), t)),
		p3.Add(Slerp(c.pts[2].Sub(c.pts[3]), o.pts[2].Sub(o.pts[3]), t)),
		p3,
	)
}

// Equal reports whether c and o have identical control points.
func (c CubicBez[V]) Equal(o CubicBez[V]) bool {
	return c.pts == o.pts
}

func (c CubicBez[V]) String() string {
	return segmentString(FamilyCubicBez, c.pts[:])
}
