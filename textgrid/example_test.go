// File: textgrid/example_test.go
package textgrid_test

import (
	"fmt"

	"github.com/katalvlaran/ringcheck/textgrid"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Parse
////////////////////////////////////////////////////////////////////////////////

// ExampleParse demonstrates parsing a tiny drawing where '.' is a visible
// background glyph and '#' is the pen character.
// Scenario:
//
//   - 3×3 canvas, ring of '#' around a '.' centre
//   - MarkerSpec declares '.' as background
//
// Complexity: O(W·H)
func ExampleParse() {
	raw := "###\n#.#\n###"
	spec := textgrid.MarkerSpec{BlankRunes: "."}

	g, _ := textgrid.Parse(raw, spec)
	fmt.Println("size:", g.Width, "x", g.Height)
	fmt.Println("marks:", g.MarkCount())
	fmt.Println("centre is mark:", g.Mark(1, 1))

	// Output:
	// size: 3 x 3
	// marks: 8
	// centre is mark: false
}
