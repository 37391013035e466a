// Package circlefit computes a best-fit circle for a set of grid points
// using the Kåsa algebraic least-squares method.
//
// What:
//
//   - Fit solves the linear system  [x y 1]·[a b c]ᵀ = x²+y²  in the
//     least-squares sense; the fitted centre is (a/2, b/2).
//   - The radius is the root-mean-square distance from the fitted centre
//     to the points — more robust than the algebraic radius term and the
//     natural reference for residuals.
//   - Fit also returns per-point signed residuals (distance − radius),
//     negative inside the circumference, positive outside.
//
// Why:
//
//   - The algebraic fit is a closed-form O(n) computation with no
//     iteration, no starting guess, and no convergence failure modes —
//     determinism is worth more here than the last fraction of a percent
//     of geometric accuracy.
//
// Complexity:
//
//   - Fit: O(n) to assemble, O(n) QR solve on an n×3 system. Memory: O(n).
//
// Errors:
//
//   - ErrTooFewPoints: fewer than 3 points.
//   - ErrDegenerate: the system is singular or ill-conditioned
//     (collinear points).
package circlefit
