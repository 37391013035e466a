// Package shape defines core types for geometry extraction: points,
// connectivity modes, and the extracted Shape.
package shape

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or
// including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Offsets returns the neighbor offsets for the connectivity mode.
// Complexity: O(1).
func (c Connectivity) Offsets() [][2]int {
	if c == Conn8 {
		return [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	}

	return [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
}

// Point is a mark coordinate with x = column, y = row, origin top-left.
type Point struct {
	X, Y int
}

// Shape is the extracted geometry of a drawing: every mark coordinate and
// the partition of those marks into connected components. It is immutable
// once built by Extract.
type Shape struct {
	// Points holds all mark coordinates in row-major order.
	Points []Point
	// Components partitions Points into connected components, in discovery
	// order; each component's points are in BFS order.
	Components [][]Point
	// Conn is the connectivity mode the components were built under.
	Conn Connectivity
}

// LargestComponent returns the component with the most points, or nil if
// the shape is empty. Ties resolve to the earliest-discovered component.
// Complexity: O(number of components).
func (s *Shape) LargestComponent() []Point {
	var best []Point
	for _, comp := range s.Components {
		if len(comp) > len(best) {
			best = comp
		}
	}

	return best
}
