package mathfs

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidIndex is the error that Point and SetPoint panics wrap when the
// control point index is outside [0, arity).
var ErrInvalidIndex = errors.New("mathfs: control point index out of range")

// Segment is the interface shared by all curve segment types, implemented by
// pointers to them. It provides uniform, index-based access to the control
// points and the conversion to the evaluable polynomial form.
//
// Code that knows the concrete family at hand is usually better served by the
// concrete types, whose conversion and subdivision methods have no interface
// equivalent.
type Segment[V Vector[V]] interface {
	// Family reports the curve family of the segment.
	Family() Family
	// Point returns control point i. It panics with an error wrapping
	// [ErrInvalidIndex] if i is not in [0, Family().Arity()).
	Point(i int) V
	// SetPoint replaces control point i, invalidating the cached
	// polynomial. Like Point, it panics for an out-of-range index.
	SetPoint(i int, p V)
	// Curve returns the polynomial form of the segment. The polynomial is
	// cached; calling Curve repeatedly recomputes it only after a control
	// point changed.
	Curve() Polynomial[V]
	// Start returns the point the curve starts at, i.e. its position at
	// t=0.
	Start() V
	// End returns the point the curve ends at, i.e. its position at t=1.
	End() V
}

// cubicCore holds the control points and the lazily derived polynomial of
// the four-point segment types. The cache is invalidated by SetPoint and
// refreshed by the owning segment's Curve. Copying the core copies the cache
// state, leaving the copy independent of the original.
type cubicCore[V Vector[V]] struct {
	pts   [4]V
	curve Polynomial[V]
	fresh bool
}

func (c *cubicCore[V]) check(i int) {
	if i < 0 || i >= len(c.pts) {
		panic(fmt.Errorf("%w: index %d, arity %d", ErrInvalidIndex, i, len(c.pts)))
	}
}

// Point returns control point i. It panics with an error wrapping
// [ErrInvalidIndex] if i is not in [0, 4).
func (c *cubicCore[V]) Point(i int) V {
	c.check(i)
	return c.pts[i]
}

// SetPoint replaces control point i and invalidates the cached polynomial.
// It panics with an error wrapping [ErrInvalidIndex] if i is not in [0, 4).
func (c *cubicCore[V]) SetPoint(i int, p V) {
	c.check(i)
	c.pts[i] = p
	c.fresh = false
}

func (c *cubicCore[V]) polynomial(m CharMatrix) Polynomial[V] {
	if !c.fresh {
		c.curve = curveOf(m, c.pts)
		c.fresh = true
	}
	return c.curve
}

// quadCore is the three-point counterpart of cubicCore.
type quadCore[V Vector[V]] struct {
	pts   [3]V
	curve Polynomial[V]
	fresh bool
}

func (c *quadCore[V]) check(i int) {
	if i < 0 || i >= len(c.pts) {
		panic(fmt.Errorf("%w: index %d, arity %d", ErrInvalidIndex, i, len(c.pts)))
	}
}

// Point returns control point i. It panics with an error wrapping
// [ErrInvalidIndex] if i is not in [0, 3).
func (c *quadCore[V]) Point(i int) V {
	c.check(i)
	return c.pts[i]
}

// SetPoint replaces control point i and invalidates the cached polynomial.
// It panics with an error wrapping [ErrInvalidIndex] if i is not in [0, 3).
func (c *quadCore[V]) SetPoint(i int, p V) {
	c.check(i)
	c.pts[i] = p
	c.fresh = false
}

func (c *quadCore[V]) polynomial(m QuadCharMatrix) Polynomial[V] {
	if !c.fresh {
		c.curve = quadCurveOf(m, c.pts)
		c.fresh = true
	}
	return c.curve
}

func segmentString[V Vector[V]](f Family, pts []V) string {
	var sb strings.Builder
	sb.WriteString(f.String())
	sb.WriteByte('(')
	for i, p := range pts {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", p)
	}
	sb.WriteByte(')')
	return sb.String()
}
