package shape

import (
	"strings"

	"github.com/katalvlaran/ringcheck/textgrid"
)

// EscapePath flood-fills background cells from the interior cell `from`
// and reports whether the flood reaches the grid border.
//
// The flood always uses orthogonal (Conn4) steps: an 8-connected chain of
// marks blocks every orthogonal background path through it, so a non-nil
// result proves the mark ring has a genuine gap, never a mere diagonal
// seam. Returns the shortest escape path from `from` to a border cell
// (inclusive on both ends), or nil if the interior is fully enclosed.
//
// `from` must be an in-bounds background cell; otherwise the result is nil.
//
// Time: O(W·H). Memory: O(W·H).
func EscapePath(g *textgrid.Grid, from Point) []Point {
	if !g.InBounds(from.X, from.Y) || g.Mark(from.X, from.Y) {
		return nil
	}

	total := g.Width * g.Height
	parent := make([]int, total)
	for i := range parent {
		parent[i] = -1
	}
	idx := func(p Point) int { return p.Y*g.Width + p.X }
	onBorder := func(p Point) bool {
		return p.X == 0 || p.Y == 0 || p.X == g.Width-1 || p.Y == g.Height-1
	}

	start := idx(from)
	parent[start] = start
	queue := []Point{from}

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		if onBorder(u) {
			// Reconstruct the path border → start, then reverse.
			var rev []Point
			for i := idx(u); ; i = parent[i] {
				rev = append(rev, Point{X: i % g.Width, Y: i / g.Width})
				if i == start {
					break
				}
			}
			path := make([]Point, len(rev))
			for j, p := range rev {
				path[len(rev)-1-j] = p
			}

			return path
		}
		for _, d := range Conn4.Offsets() {
			v := Point{X: u.X + d[0], Y: u.Y + d[1]}
			if !g.InBounds(v.X, v.Y) || g.Mark(v.X, v.Y) {
				continue
			}
			vi := idx(v)
			if parent[vi] == -1 {
				parent[vi] = idx(u)
				queue = append(queue, v)
			}
		}
	}

	return nil
}

// NearestBlank returns the background cell closest (Euclidean) to the real
// coordinates (cx, cy), typically a fitted circle centre. Ties resolve in
// row-major order. The second result is false if the grid has no
// background cells at all.
// Complexity: O(W·H).
func NearestBlank(g *textgrid.Grid, cx, cy float64) (Point, bool) {
	best := Point{}
	bestD := -1.0
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.Mark(x, y) {
				continue
			}
			dx, dy := float64(x)-cx, float64(y)-cy
			d := dx*dx + dy*dy
			if bestD < 0 || d < bestD {
				bestD = d
				best = Point{X: x, Y: y}
			}
		}
	}

	return best, bestD >= 0
}

// pavingCandidates are tried in order when choosing a glyph to draw an
// escape path; the first one not already used by the submission wins.
const pavingCandidates = "+X*o%@"

// RenderPath redraws the original submission with every cell on path
// replaced by a paving glyph not otherwise present in the drawing, so the
// offending route is visible in diagnostics. Rows are joined with '\n'.
// Complexity: O(W·H).
func RenderPath(g *textgrid.Grid, path []Point) string {
	used := make(map[rune]bool)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			used[g.Rune(x, y)] = true
		}
	}
	paving := '+'
	for _, r := range pavingCandidates {
		if !used[r] {
			paving = r
			break
		}
	}

	onPath := make(map[Point]bool, len(path))
	for _, p := range path {
		onPath[p] = true
	}

	var b strings.Builder
	for y := 0; y < g.Height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < g.Width; x++ {
			if onPath[Point{X: x, Y: y}] {
				b.WriteRune(paving)
			} else {
				b.WriteRune(g.Rune(x, y))
			}
		}
	}

	return b.String()
}
