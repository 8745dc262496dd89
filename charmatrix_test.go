package mathfs

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestCharMatrixRowSums(t *testing.T) {
	// Weights of point-based families partition unity: the constant row sums
	// to 1 and the others to 0, making the curve translation invariant.
	// Hermite is exempt, as two of its control points are velocities.
	check := func(name string, i int, row []float64) {
		t.Helper()
		var sum float64
		for _, w := range row {
			sum += w
		}
		want := 0.0
		if i == 0 {
			want = 1.0
		}
		if math.Abs(sum-want) > 1e-15 {
			t.Errorf("%s: row %d sums to %g, want %g", name, i, sum, want)
		}
	}
	for name, m := range map[string]CharMatrix{
		"CubicBez":   CubicBezMatrix,
		"CatmullRom": CatmullRomMatrix,
		"BSpline":    BSplineMatrix,
	} {
		for i, row := range m {
			check(name, i, row[:])
		}
	}
	for i, row := range QuadBezMatrix {
		check("QuadBez", i, row[:])
	}
}

func TestCubicBezAgainstMathgl(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-9)

	c := NewCubicBez(
		mgl64.Vec2{0.5, -2},
		mgl64.Vec2{3, 4},
		mgl64.Vec2{-1, 0.25},
		mgl64.Vec2{2, -3},
	)
	curve := c.Curve()
	for i := 0; i < 11; i++ {
		ts := float64(i) / 10
		want := mgl64.CubicBezierCurve2D(ts, c.Point(0), c.Point(1), c.Point(2), c.Point(3))
		diff(t, want, curve.Eval(ts), approx)
	}

	c3 := NewCubicBez(
		mgl64.Vec3{0, 0, 1},
		mgl64.Vec3{1, 2, -1},
		mgl64.Vec3{-2, 1, 3},
		mgl64.Vec3{4, 0, 0},
	)
	curve3 := c3.Curve()
	for i := 0; i < 11; i++ {
		ts := float64(i) / 10
		want := mgl64.CubicBezierCurve3D(ts, c3.Point(0), c3.Point(1), c3.Point(2), c3.Point(3))
		diff(t, want, curve3.Eval(ts), approx)
	}
}

func TestQuadBezAgainstMathgl(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-9)

	q := NewQuadBez(
		mgl64.Vec2{-1, 0},
		mgl64.Vec2{2, 3},
		mgl64.Vec2{4, -2},
	)
	curve := q.Curve()
	for i := 0; i < 11; i++ {
		ts := float64(i) / 10
		want := mgl64.QuadraticBezierCurve2D(ts, q.Point(0), q.Point(1), q.Point(2))
		diff(t, want, curve.Eval(ts), approx)
	}

	q3 := NewQuadBez(
		mgl64.Vec3{0, 1, 2},
		mgl64.Vec3{2, -1, 0},
		mgl64.Vec3{3, 3, 1},
	)
	curve3 := q3.Curve()
	for i := 0; i < 11; i++ {
		ts := float64(i) / 10
		want := mgl64.QuadraticBezierCurve3D(ts, q3.Point(0), q3.Point(1), q3.Point(2))
		diff(t, want, curve3.Eval(ts), approx)
	}
}

func TestHermiteBasis(t *testing.T) {
	// against the textbook Hermite basis functions
	approx := cmpopts.EquateApprox(0, 1e-9)
	h := NewHermite(
		mgl64.Vec2{0, 1},
		mgl64.Vec2{2, 0},
		mgl64.Vec2{3, -1},
		mgl64.Vec2{-1, 4},
	)
	curve := h.Curve()
	for i := 0; i < 11; i++ {
		ts := float64(i) / 10
		h00 := 2*ts*ts*ts - 3*ts*ts + 1
		h10 := ts*ts*ts - 2*ts*ts + ts
		h01 := -2*ts*ts*ts + 3*ts*ts
		h11 := ts*ts*ts - ts*ts
		want := h.Start().Mul(h00).
			Add(h.StartVelocity().Mul(h10)).
			Add(h.End().Mul(h01)).
			Add(h.EndVelocity().Mul(h11))
		diff(t, want, curve.Eval(ts), approx)
	}
}

func TestCatmullRomBasis(t *testing.T) {
	// against the expanded form
	// 0.5·(2p1 + (p2−p0)t + (2p0−5p1+4p2−p3)t² + (3p1−p0−3p2+p3)t³)
	approx := cmpopts.EquateApprox(0, 1e-9)
	pts := [4]mgl64.Vec2{{-1, 2}, {0, 0}, {2, 1}, {3, -2}}
	c := NewCatmullRom(pts[0], pts[1], pts[2], pts[3])
	curve := c.Curve()
	for i := 0; i < 11; i++ {
		ts := float64(i) / 10
		want := pts[1].Mul(2).
			Add(pts[2].Sub(pts[0]).Mul(ts)).
			Add(pts[0].Mul(2).Sub(pts[1].Mul(5)).Add(pts[2].Mul(4)).Sub(pts[3]).Mul(ts * ts)).
			Add(pts[1].Mul(3).Sub(pts[0]).Sub(pts[2].Mul(3)).Add(pts[3]).Mul(ts * ts * ts)).
			Mul(0.5)
		diff(t, want, curve.Eval(ts), approx)
	}
}

func TestBSplineBasis(t *testing.T) {
	// against the uniform B-spline basis
	// (1/6)·((1−t)³, 3t³−6t²+4, −3t³+3t²+3t+1, t³)
	approx := cmpopts.EquateApprox(0, 1e-9)
	pts := [4]mgl64.Vec2{{0, 0}, {1, 3}, {4, 2}, {5, -1}}
	b := NewBSpline(pts[0], pts[1], pts[2], pts[3])
	curve := b.Curve()
	for i := 0; i < 11; i++ {
		ts := float64(i) / 10
		mt := 1 - ts
		want := pts[0].Mul(mt * mt * mt).
			Add(pts[1].Mul(3*ts*ts*ts - 6*ts*ts + 4)).
			Add(pts[2].Mul(-3*ts*ts*ts + 3*ts*ts + 3*ts + 1)).
			Add(pts[3].Mul(ts * ts * ts)).
			Mul(1.0 / 6)
		diff(t, want, curve.Eval(ts), approx)
	}
}
