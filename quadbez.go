package mathfs

import "github.com/go-gl/mathgl/mgl64"

var _ Segment[mgl64.Vec2] = (*QuadBez2)(nil)

// QuadBez is a single quadratic Bézier segment over three control points.
type QuadBez[V Vector[V]] struct {
	quadCore[V]
}

// Common instantiations.
type (
	QuadBez2 = QuadBez[mgl64.Vec2]
	QuadBez3 = QuadBez[mgl64.Vec3]
)

// NewQuadBez returns the quadratic Bézier segment over the given control
// points.
func NewQuadBez[V Vector[V]](p0, p1, p2 V) QuadBez[V] {
	return QuadBez[V]{quadCore[V]{pts: [3]V{p0, p1, p2}}}
}

// Family reports [FamilyQuadBez].
func (q QuadBez[V]) Family() Family {
	return FamilyQuadBez
}

// Curve returns the polynomial form of the segment, recomputing it only if a
// control point changed since the last call. Its cubic coefficient is zero.
func (q *QuadBez[V]) Curve() Polynomial[V] {
	return q.polynomial(QuadBezMatrix)
}

func (q QuadBez[V]) Start() V {
	return q.pts[0]
}

func (q QuadBez[V]) End() V {
	return q.pts[2]
}

// Split subdivides the segment at parameter t, using de Casteljau. The two
// halves together trace exactly the curve of q, with pre covering [0, t] and
// post covering [t, 1]. t is not clamped; splitting outside [0, 1]
// extrapolates the curve.
func (q QuadBez[V]) Split(t float64) (pre, post QuadBez[V]) {
	q0 := Lerp(q.pts[0], q.pts[1], t)
	q1 := Lerp(q.pts[1], q.pts[2], t)
	s := Lerp(q0, q1, t)
	return NewQuadBez(q.pts[0], q0, s), NewQuadBez(s, q1, q.pts[2])
}

// Subdivide subdivides the segment into halves, using de Casteljau.
func (q QuadBez[V]) Subdivide() (QuadBez[V], QuadBez[V]) {
	return q.Split(0.5)
}

// Raise raises the segment's degree, returning the cubic Bézier segment that
// traces the identical curve.
func (q QuadBez[V]) Raise() CubicBez[V] {
	return NewCubicBez(
		q.pts[0],
		q.pts[0].Add(q.pts[1].Sub(q.pts[0]).Mul(2.0/3.0)),
		q.pts[2].Add(q.pts[1].Sub(q.pts[2]).Mul(2.0/3.0)),
		q.pts[2],
	)
}

// Lerp linearly interpolates between the control points of q and o,
// returning the blended segment. Like [Lerp] it is unclamped.
func (q QuadBez[V]) Lerp(o QuadBez[V], t float64) QuadBez[V] {
	return NewQuadBez(
		Lerp(q.pts[0], o.pts[0], t),
		Lerp(q.pts[1], o.pts[1], t),
		Lerp(q.pts[2], o.pts[2], t),
	)
}

// Equal reports whether q and o have identical control points.
func (q QuadBez[V]) Equal(o QuadBez[V]) bool {
	return q.pts == o.pts
}

func (q QuadBez[V]) String() string {
	return segmentString(FamilyQuadBez, q.pts[:])
}
