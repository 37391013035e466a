package circlefit

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/ringcheck/shape"
)

// Circle is a fitted circle in cell-index coordinates.
type Circle struct {
	// X, Y is the fitted centre.
	X, Y float64
	// Radius is the RMS distance from the centre to the fitted points.
	Radius float64
}

// Distance returns the Euclidean distance from the centre to p.
// Complexity: O(1).
func (c Circle) Distance(p shape.Point) float64 {
	return math.Hypot(float64(p.X)-c.X, float64(p.Y)-c.Y)
}

// Angle returns the angle of p around the centre in radians, in (-π, π].
// Complexity: O(1).
func (c Circle) Angle(p shape.Point) float64 {
	return math.Atan2(float64(p.Y)-c.Y, float64(p.X)-c.X)
}

// Fit computes the Kåsa algebraic least-squares circle through pts and the
// per-point signed residuals (Distance(p) − Radius), index-aligned with pts.
//
// The Kåsa formulation rewrites (x−cx)² + (y−cy)² = r² as the linear model
//
//	a·x + b·y + c = x² + y²,   cx = a/2, cy = b/2,
//
// and solves the n×3 system in the least-squares sense via QR. The radius
// is then recomputed as the RMS centre-to-point distance rather than taken
// from the algebraic term, which is noticeably biased on thick rings.
//
// Returns ErrTooFewPoints for n < 3 and ErrDegenerate when the system is
// singular or ill-conditioned (all points collinear).
//
// Time: O(n). Memory: O(n).
func Fit(pts []shape.Point) (Circle, []float64, error) {
	n := len(pts)
	if n < 3 {
		return Circle{}, nil, ErrTooFewPoints
	}

	a := mat.NewDense(n, 3, nil)
	rhs := mat.NewVecDense(n, nil)
	for i, p := range pts {
		x, y := float64(p.X), float64(p.Y)
		a.Set(i, 0, x)
		a.Set(i, 1, y)
		a.Set(i, 2, 1)
		rhs.SetVec(i, x*x+y*y)
	}

	var sol mat.VecDense
	if err := sol.SolveVec(a, rhs); err != nil {
		return Circle{}, nil, fmt.Errorf("%w: %v", ErrDegenerate, err)
	}

	c := Circle{X: sol.AtVec(0) / 2, Y: sol.AtVec(1) / 2}

	// RMS radius and signed residuals.
	sq := make([]float64, n)
	dist := make([]float64, n)
	for i, p := range pts {
		dist[i] = c.Distance(p)
		sq[i] = dist[i] * dist[i]
	}
	c.Radius = math.Sqrt(floats.Sum(sq) / float64(n))
	if math.IsNaN(c.Radius) || math.IsInf(c.Radius, 0) {
		return Circle{}, nil, ErrDegenerate
	}

	residuals := make([]float64, n)
	for i := range dist {
		residuals[i] = dist[i] - c.Radius
	}

	return c, residuals, nil
}
