package mathfs

import "math"

// Polynomial is a parametric curve in power-basis form, evaluating to
//
//	C0 + C1·t + C2·t² + C3·t³
//
// for a parameter t. Quadratic curves are represented with a zero C3.
//
// A Polynomial is normally obtained from a segment's Curve method, which
// derives it from the segment's control points, but it can also be built
// directly from coefficient vectors.
type Polynomial[V Vector[V]] struct {
	C0, C1, C2, C3 V
}

// NewPolynomial returns the cubic polynomial c0 + c1·t + c2·t² + c3·t³.
func NewPolynomial[V Vector[V]](c0, c1, c2, c3 V) Polynomial[V] {
	return Polynomial[V]{c0, c1, c2, c3}
}

// NewQuadPolynomial returns the quadratic polynomial c0 + c1·t + c2·t².
func NewQuadPolynomial[V Vector[V]](c0, c1, c2 V) Polynomial[V] {
	var zero V
	return Polynomial[V]{c0, c1, c2, zero}
}

// Eval evaluates the curve at parameter t, by Horner's rule.
func (p Polynomial[V]) Eval(t float64) V {
	return p.C0.Add(p.C1.Add(p.C2.Add(p.C3.Mul(t)).Mul(t)).Mul(t))
}

// Differentiate returns the derivative polynomial, whose evaluation at t is
// the velocity of p at t.
func (p Polynomial[V]) Differentiate() Polynomial[V] {
	var zero V
	return Polynomial[V]{p.C1, p.C2.Mul(2), p.C3.Mul(3), zero}
}

// Velocity evaluates the first derivative of the curve at parameter t.
func (p Polynomial[V]) Velocity(t float64) V {
	return p.C1.Add(p.C2.Mul(2).Add(p.C3.Mul(3 * t)).Mul(t))
}

// Acceleration evaluates the second derivative of the curve at parameter t.
func (p Polynomial[V]) Acceleration(t float64) V {
	return p.C2.Mul(2).Add(p.C3.Mul(6 * t))
}

// Curvature evaluates the unsigned curvature of the curve at parameter t.
// The result is NaN where the velocity is zero, as the curve has no defined
// direction there.
func (p Polynomial[V]) Curvature(t float64) float64 {
	v := p.Velocity(t)
	a := p.Acceleration(t)
	// Lagrange's identity: |v×a|² = |v|²|a|² − (v·a)², which unlike the
	// cross product itself is available in any dimension.
	vv := v.Dot(v)
	va := v.Dot(a)
	return math.Sqrt(max(vv*a.Dot(a)-va*va, 0)) / (vv * math.Sqrt(vv))
}
