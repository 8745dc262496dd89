package mathfs

import "github.com/go-gl/mathgl/mgl64"

var _ Segment[mgl64.Vec2] = (*Hermite2)(nil)

// Hermite is a cubic Hermite segment: a start and an end position, each with
// a velocity. The four vectors are the segment's control points, indexed in
// the order p0, v0, p1, v1.
type Hermite[V Vector[V]] struct {
	cubicCore[V]
}

// Common instantiations.
type (
	Hermite2 = Hermite[mgl64.Vec2]
	Hermite3 = Hermite[mgl64.Vec3]
)

// NewHermite returns the Hermite segment starting at p0 with velocity v0 and
// ending at p1 with velocity v1.
func NewHermite[V Vector[V]](p0, v0, p1, v1 V) Hermite[V] {
	return Hermite[V]{cubicCore[V]{pts: [4]V{p0, v0, p1, v1}}}
}

// Family reports [FamilyHermite].
func (h Hermite[V]) Family() Family {
	return FamilyHermite
}

// Curve returns the polynomial form of the segment, recomputing it only if a
// control point changed since the last call.
func (h *Hermite[V]) Curve() Polynomial[V] {
	return h.polynomial(HermiteMatrix)
}

func (h Hermite[V]) Start() V {
	return h.pts[0]
}

func (h Hermite[V]) End() V {
	return h.pts[2]
}

// StartVelocity returns the curve's velocity at t=0, the control point v0.
func (h Hermite[V]) StartVelocity() V {
	return h.pts[1]
}

// EndVelocity returns the curve's velocity at t=1, the control point v1.
func (h Hermite[V]) EndVelocity() V {
	return h.pts[3]
}

// Bezier returns the Bézier form of the same curve. Its inner control points
// sit a third of the respective velocity away from the endpoints.
func (h Hermite[V]) Bezier() CubicBez[V] {
	return NewCubicBez(
		h.pts[0],
		h.pts[0].Add(h.pts[1].Mul(1.0/3.0)),
		h.pts[2].Sub(h.pts[3].Mul(1.0/3.0)),
		h.pts[2],
	)
}

// CatmullRom returns the Catmull-Rom form of the same curve, reconstructing
// the outer control points from the velocities.
func (h Hermite[V]) CatmullRom() CatmullRom[V] {
	return NewCatmullRom(
		h.pts[2].Sub(h.pts[1].Mul(2)),
		h.pts[0],
		h.pts[2],
		h.pts[0].Add(h.pts[3].Mul(2)),
	)
}

// Lerp linearly interpolates between the control points of h and o,
// positions and velocities alike, returning the blended segment. Like [Lerp]
// it is unclamped.
func (h Hermite[V]) Lerp(o Hermite[V], t float64) Hermite[V] {
	return NewHermite(
		Lerp(h.pts[0], o.pts[0], t),
		Lerp(h.pts[1], o.pts[1], t),
		Lerp(h.pts[2], o.pts[2], t),
		Lerp(h.pts[3], o.pts[3], t),
	)
}

// Equal reports whether h and o have identical control points.
func (h Hermite[V]) Equal(o Hermite[V]) bool {
	return h.pts == o.pts
}

func (h Hermite[V]) String() string {
	return segmentString(FamilyHermite, h.pts[:])
}
