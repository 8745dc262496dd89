package mathfs

import "github.com/go-gl/mathgl/mgl64"

var _ Segment[mgl64.Vec2] = (*BSpline2)(nil)

// BSpline is a single uniform cubic B-spline segment over four control
// points. The curve in general passes through none of them: it starts at
// (p0+4p1+p2)/6 and ends at (p1+4p2+p3)/6. In exchange, chaining segments
// over a sliding window of points yields a C² spline.
type BSpline[V Vector[V]] struct {
	cubicCore[V]
}

// Common instantiations.
type (
	BSpline2 = BSpline[mgl64.Vec2]
	BSpline3 = BSpline[mgl64.Vec3]
)

// NewBSpline returns the uniform cubic B-spline segment over the given
// control points.
func NewBSpline[V Vector[V]](p0, p1, p2, p3 V) BSpline[V] {
	return BSpline[V]{cubicCore[V]{pts: [4]V{p0, p1, p2, p3}}}
}

// Family reports [FamilyBSpline].
func (b BSpline[V]) Family() Family {
	return FamilyBSpline
}

// Curve returns the polynomial form of the segment, recomputing it only if a
// control point changed since the last call.
func (b *BSpline[V]) Curve() Polynomial[V] {
	return b.polynomial(BSplineMatrix)
}

func (b BSpline[V]) Start() V {
	return combine(BSplineMatrix[0], b.pts)
}

func (b BSpline[V]) End() V {
	return combine([4]float64{0, 1.0 / 6, 4.0 / 6, 1.0 / 6}, b.pts)
}

// Bezier returns the Bézier form of the same curve.
func (b BSpline[V]) Bezier() CubicBez[V] {
	return NewCubicBez(
		b.Start(),
		combine([4]float64{0, 2.0 / 3, 1.0 / 3, 0}, b.pts),
		combine([4]float64{0, 1.0 / 3, 2.0 / 3, 0}, b.pts),
		b.End(),
	)
}

// Lerp linearly interpolates between the control points of b and o,
// returning the blended segment. Like [Lerp] it is unclamped.
func (b BSpline[V]) Lerp(o BSpline[V], t float64) BSpline[V] {
	return NewBSpline(
		Lerp(b.pts[0], o.pts[0], t),
		Lerp(b.pts[1], o.pts[1], t),
		Lerp(b.pts[2], o.pts[2], t),
		Lerp(b.pts[3], o.pts[3], t),
	)
}

// Equal reports whether b and o have identical control points.
func (b BSpline[V]) Equal(o BSpline[V]) bool {
	return b.pts == o.pts
}

func (b BSpline[V]) String() string {
	return segmentString(FamilyBSpline, b.pts[:])
}
