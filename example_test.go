// File: example_test.go
package ringcheck_test

import (
	"fmt"

	"github.com/katalvlaran/ringcheck"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Validate
////////////////////////////////////////////////////////////////////////////////

// ExampleValidate accepts a hand-drawn ring and rejects a filled disk.
// Scenario:
//
//   - 7×7 midpoint circle of radius 3 → valid
//   - 7×7 solid blob → invalid, tagged "filled"
func ExampleValidate() {
	ring := "  ###  \n" +
		" #   # \n" +
		"#     #\n" +
		"#     #\n" +
		"#     #\n" +
		" #   # \n" +
		"  ###  "

	rec := ringcheck.Validate(ring, nil)
	fmt.Println("ring:", rec.Status)
	fmt.Printf("radius: %.1f\n", rec.Circle.Radius)

	disk := "#######\n#######\n#######\n#######\n#######\n#######\n#######"
	rec = ringcheck.Validate(disk, nil)
	fmt.Println("disk:", rec.Status, rec.Reason)

	// Output:
	// ring: valid
	// radius: 3.0
	// disk: invalid filled
}
