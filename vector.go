package mathfs

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vector is the constraint satisfied by control point types. It matches the
// value types of [github.com/go-gl/mathgl/mgl64], such as [mgl64.Vec2] and
// [mgl64.Vec3], and any comparable vector type with componentwise arithmetic.
type Vector[V any] interface {
	comparable
	Add(V) V
	Sub(V) V
	Mul(float64) V
	Dot(V) float64
	Len() float64
}

// Lerp linearly interpolates between two vectors.
//
// The interpolation is unclamped; t outside [0, 1] extrapolates beyond the
// two inputs.
func Lerp[V Vector[V]](a, b V, t float64) V {
	return a.Add(b.Sub(a).Mul(t))
}

// Slerp spherically interpolates between two vectors: the direction travels
// along the great-circle arc between the directions of a and b, while the
// magnitude interpolates linearly. Like [Lerp] it is unclamped.
//
// Where the arc is undefined, because either vector has zero length or the
// two directions are parallel or opposite, Slerp falls back to [Lerp].
func Slerp[V Vector[V]](a, b V, t float64) V {
	const epsilon = 1e-12

	la := a.Len()
	lb := b.Len()
	if la == 0 || lb == 0 {
		return Lerp(a, b, t)
	}
	ua := a.Mul(1 / la)
	ub := b.Mul(1 / lb)
	theta := math.Acos(mgl64.Clamp(ua.Dot(ub), -1, 1))
	sin := math.Sin(theta)
	if sin < epsilon {
		return Lerp(a, b, t)
	}
	dir := ua.Mul(math.Sin((1 - t) * theta)).Add(ub.Mul(math.Sin(t * theta))).Mul(1 / sin)
	return dir.Mul(la + (lb-la)*t)
}
