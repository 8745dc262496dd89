package mathfs

// A CharMatrix is the characteristic matrix of a cubic curve family: the
// fixed linear map taking the family's four control points to the four
// power-basis coefficients of the curve. Row i holds the control point
// weights of the tⁱ coefficient, so for control points p and matrix m,
//
//	cᵢ = m[i][0]·p0 + m[i][1]·p1 + m[i][2]·p2 + m[i][3]·p3
//
// A QuadCharMatrix is the same for a quadratic family and its three control
// points.
type CharMatrix [4][4]float64

type QuadCharMatrix [3][3]float64

// The characteristic matrices of the supported families. Entries are exact,
// which the closed-form conversions between families rely on.
var (
	// CubicBezMatrix weighs Bézier control points (p0, p1, p2, p3).
	CubicBezMatrix = CharMatrix{
		{1, 0, 0, 0},
		{-3, 3, 0, 0},
		{3, -6, 3, 0},
		{-1, 3, -3, 1},
	}

	// HermiteMatrix weighs (p0, v0, p1, v1): the start point and velocity
	// followed by the end point and velocity.
	HermiteMatrix = CharMatrix{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{-3, -2, 3, -1},
		{2, 1, -2, 1},
	}

	// CatmullRomMatrix weighs (p0, p1, p2, p3) of a uniform Catmull-Rom
	// segment, whose curve runs from p1 to p2.
	CatmullRomMatrix = CharMatrix{
		{0, 1, 0, 0},
		{-1.0 / 2, 0, 1.0 / 2, 0},
		{1, -5.0 / 2, 2, -1.0 / 2},
		{-1.0 / 2, 3.0 / 2, -3.0 / 2, 1.0 / 2},
	}

	// BSplineMatrix weighs (p0, p1, p2, p3) of a uniform cubic B-spline
	// segment, whose curve in general passes through none of them.
	BSplineMatrix = CharMatrix{
		{1.0 / 6, 4.0 / 6, 1.0 / 6, 0},
		{-1.0 / 2, 0, 1.0 / 2, 0},
		{1.0 / 2, -1, 1.0 / 2, 0},
		{-1.0 / 6, 1.0 / 2, -1.0 / 2, 1.0 / 6},
	}

	// QuadBezMatrix weighs quadratic Bézier control points (p0, p1, p2).
	QuadBezMatrix = QuadCharMatrix{
		{1, 0, 0},
		{-2, 2, 0},
		{1, -2, 1},
	}
)

// combine returns the weighted sum of four control points.
func combine[V Vector[V]](w [4]float64, pts [4]V) V {
	return pts[0].Mul(w[0]).Add(pts[1].Mul(w[1])).Add(pts[2].Mul(w[2])).Add(pts[3].Mul(w[3]))
}

func combine3[V Vector[V]](w [3]float64, pts [3]V) V {
	return pts[0].Mul(w[0]).Add(pts[1].Mul(w[1])).Add(pts[2].Mul(w[2]))
}

// curveOf applies a cubic characteristic matrix to control points, yielding
// the power-basis form of the curve.
func curveOf[V Vector[V]](m CharMatrix, pts [4]V) Polynomial[V] {
	return Polynomial[V]{
		C0: combine(m[0], pts),
		C1: combine(m[1], pts),
		C2: combine(m[2], pts),
		C3: combine(m[3], pts),
	}
}

func quadCurveOf[V Vector[V]](m QuadCharMatrix, pts [3]V) Polynomial[V] {
	var zero V
	return Polynomial[V]{
		C0: combine3(m[0], pts),
		C1: combine3(m[1], pts),
		C2: combine3(m[2], pts),
		C3: zero,
	}
}
