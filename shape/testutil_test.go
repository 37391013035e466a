package shape_test

import (
	"math"
	"strings"
)

// ringText renders a (2r+1)×(2r+1) canvas with '#' at every cell whose
// Euclidean distance from the centre lies within halfWidth of r — a clean
// digital ring of thickness ≈ 2·halfWidth.
func ringText(r int, halfWidth float64) string {
	side := 2*r + 1
	var b strings.Builder
	for y := 0; y < side; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < side; x++ {
			dx, dy := float64(x-r), float64(y-r)
			d := math.Hypot(dx, dy)
			if math.Abs(d-float64(r)) <= halfWidth {
				b.WriteByte('#')
			} else {
				b.WriteByte(' ')
			}
		}
	}

	return b.String()
}
