// File: shape/example_test.go
package shape_test

import (
	"fmt"

	"github.com/katalvlaran/ringcheck/shape"
	"github.com/katalvlaran/ringcheck/textgrid"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Extract
////////////////////////////////////////////////////////////////////////////////

// ExampleExtract demonstrates component analysis of a small drawing.
// Scenario:
//
//   - A 3×3 diamond ring plus one stray mark in the corner
//   - Conn8: the diamond is one component, the stray another
//
// Complexity: O(W·H·8)
func ExampleExtract() {
	raw := " #   \n# #  \n #   \n    #"
	g, _ := textgrid.Parse(raw, textgrid.DefaultMarkerSpec())

	s, _ := shape.Extract(g, shape.Conn8)
	fmt.Println("points:", len(s.Points))
	fmt.Println("components:", len(s.Components))
	fmt.Println("largest:", len(s.LargestComponent()))

	// Output:
	// points: 5
	// components: 2
	// largest: 4
}

////////////////////////////////////////////////////////////////////////////////
// Example: EscapePath
////////////////////////////////////////////////////////////////////////////////

// ExampleEscapePath shows the enclosure probe escaping through a gap and
// the diagram that renders the offending route.
func ExampleEscapePath() {
	raw := "###\n#  \n###"
	g, _ := textgrid.Parse(raw, textgrid.DefaultMarkerSpec())

	path := shape.EscapePath(g, shape.Point{X: 1, Y: 1})
	fmt.Println("escaped:", path != nil)
	fmt.Println(shape.RenderPath(g, path))

	// Output:
	// escaped: true
	// ###
	// #++
	// ###
}
