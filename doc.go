// Package mathfs provides parametric curve segments in the bases commonly
// used for spline interpolation and animation: cubic Bézier, cubic Hermite,
// uniform Catmull-Rom, uniform cubic B-spline, and quadratic Bézier. It was
// designed to serve the needs of games and procedural geometry, but it is
// intended to be general enough to be useful for other applications.
//
// # Segments and polynomials
//
// The two core primitives of this package are segments and polynomials.
//
// A segment is a value type holding the raw control points of one curve
// family: [CubicBez], [Hermite], [CatmullRom], [BSpline], or [QuadBez]. All
// segment types implement [Segment], which provides indexed access to the
// control points and the conversion to polynomial form.
//
// [Polynomial] is the power-basis form c0 + c1·t + c2·t² + c3·t³ of a curve.
// It is what gets evaluated: position, velocity, acceleration, and curvature
// at any parameter t. Each family has a fixed characteristic matrix (see
// [CharMatrix]) whose product with the control points yields the polynomial
// coefficients. Segments compute this product lazily and cache it until a
// control point changes, so repeated evaluation of an unchanged segment costs
// no more than reading four vectors.
//
// # Conversions
//
// The cubic families all span the same space of curves, and converting a
// segment between them does not go through the polynomial: closed-form
// control-point combinations are cheaper and exact.
//
//   - [CatmullRom.Bezier], [CatmullRom.Hermite], [CatmullRom.BSpline]
//   - [Hermite.Bezier], [Hermite.CatmullRom]
//   - [CubicBez.Hermite]
//   - [BSpline.Bezier]
//   - [QuadBez.Raise], elevating a quadratic to the identical cubic
//
// Converted segments trace the same curve as their source, up to floating
// point rounding.
//
// # Geometry on control points
//
// [CubicBez.Split] and [QuadBez.Split] subdivide a Bézier at an arbitrary
// parameter using de Casteljau's algorithm; segments of other families
// convert to Bézier form first. Every family supports Lerp, the
// componentwise linear blend of two segments' control points, and
// [CubicBez.Slerp] additionally blends two cubic Béziers by rotating their
// end tangents along great-circle arcs, which keeps the blend's shape steady
// when the inputs mostly differ by rotation.
//
// # Coordinates
//
// Control points are vectors from [github.com/go-gl/mathgl/mgl64]: Vec2 for
// planar curves, Vec3 for spatial ones. The segment and polynomial types are
// generic over [Vector], so any comparable value type with the same method
// set works, should you need custom coordinates. Aliases such as [CubicBez2]
// and [CubicBez3] name the common instantiations.
//
// Segments are plain values. Copying one yields an independent segment with
// an independent polynomial cache. A single segment must not be mutated
// concurrently with other accesses.
//
// # Literature
//
// This package makes use of the following ideas:
//   - [A Primer on Bézier Curves]
//   - [Catmull-Rom splines] by Christopher Twigg
//   - An Introduction to B-Spline Curves, by Thomas W. Sederberg
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
// [Catmull-Rom splines]: https://www.cs.cmu.edu/~462/projects/assn2/assn2/catmullRom.pdf
package mathfs
