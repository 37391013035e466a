// File: circlefit/example_test.go
package circlefit_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ringcheck/circlefit"
	"github.com/katalvlaran/ringcheck/shape"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Fit
////////////////////////////////////////////////////////////////////////////////

// ExampleFit fits the four cells of a unit diamond; the Kåsa system is
// exact here, so centre and radius come out as whole numbers.
func ExampleFit() {
	pts := []shape.Point{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 2}}

	c, residuals, _ := circlefit.Fit(pts)
	fmt.Printf("centre: (%.1f, %.1f)\n", c.X, c.Y)
	fmt.Printf("radius: %.1f\n", c.Radius)
	fmt.Printf("worst residual: %.1f\n", math.Abs(residuals[0]))

	// Output:
	// centre: (1.0, 1.0)
	// radius: 1.0
	// worst residual: 0.0
}
