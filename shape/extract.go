package shape

import "github.com/katalvlaran/ringcheck/textgrid"

// Extract collects all mark coordinates from g and partitions them into
// connected components under conn adjacency.
//
// Returns ErrNoMarks if the grid has no foreground cells.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func Extract(g *textgrid.Grid, conn Connectivity) (*Shape, error) {
	total := g.Width * g.Height
	seen := make([]bool, total)
	offsets := conn.Offsets()

	var points []Point
	var comps [][]Point

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if !g.Mark(x, y) {
				continue // background
			}
			points = append(points, Point{X: x, Y: y})

			i0 := y*g.Width + x
			if seen[i0] {
				continue
			}
			// BFS to collect the component containing (x, y).
			queue := []Point{{X: x, Y: y}}
			seen[i0] = true
			var comp []Point

			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				comp = append(comp, u)
				for _, d := range offsets {
					vx, vy := u.X+d[0], u.Y+d[1]
					if !g.InBounds(vx, vy) || !g.Mark(vx, vy) {
						continue
					}
					vi := vy*g.Width + vx
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, Point{X: vx, Y: vy})
					}
				}
			}
			comps = append(comps, comp)
		}
	}

	if len(points) == 0 {
		return nil, ErrNoMarks
	}

	return &Shape{Points: points, Components: comps, Conn: conn}, nil
}
