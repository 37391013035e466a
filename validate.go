package ringcheck

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/ringcheck/circlefit"
	"github.com/katalvlaran/ringcheck/shape"
	"github.com/katalvlaran/ringcheck/textgrid"
)

// Validate is the engine's single entry point: it parses text into a grid,
// extracts the mark geometry, fits a circle, and applies the acceptance
// checks. A nil opts selects DefaultOptions.
//
// Validate never returns an error: malformed input, empty canvases, and
// degenerate geometry all collapse into invalid verdicts carrying the
// specific Reason. Identical input and options always produce an identical
// Record — the engine keeps no state between calls.
//
// Time: near-linear in the number of cells. Memory: O(W×H).
func Validate(text string, opts *Options) Record {
	o := normalized(opts)

	g, err := textgrid.Parse(text, o.markerSpec())
	if err != nil {
		return reject(err)
	}
	s, err := shape.Extract(g, o.connectivity())
	if err != nil {
		return reject(err)
	}
	c, residuals, err := circlefit.Fit(s.Points)
	if err != nil {
		return reject(err)
	}

	return evaluate(g, s, c, residuals, o)
}

// reject collapses a stage error into an invalid Record per the taxonomy.
func reject(err error) Record {
	return Record{Status: StatusInvalid, Reason: reasonFor(err), Message: err.Error()}
}

// reasonFor maps stage sentinels onto verdict reasons.
func reasonFor(err error) Reason {
	switch {
	case errors.Is(err, textgrid.ErrEmptyInput):
		return ReasonEmptyInput
	case errors.Is(err, textgrid.ErrRaggedRows):
		return ReasonRaggedRows
	case errors.Is(err, shape.ErrNoMarks):
		return ReasonNoMarks
	case errors.Is(err, circlefit.ErrTooFewPoints):
		return ReasonTooFewPoints
	case errors.Is(err, circlefit.ErrDegenerate):
		return ReasonDegenerate
	default:
		return ReasonDegenerate
	}
}

// evaluate applies the acceptance checks in order, short-circuiting at the
// first failure. The interior-fill check runs before the roundness band so
// a filled disk reports the specific "filled" cause rather than the generic
// roundness violation it also triggers.
func evaluate(g *textgrid.Grid, s *shape.Shape, c circlefit.Circle, residuals []float64, o Options) Record {
	// 1. Connectivity: one coherent ring, not scattered dots.
	largest := s.LargestComponent()
	if frac := float64(len(largest)) / float64(len(s.Points)); frac < o.MinCoverageFraction {
		return Record{
			Status: StatusInvalid,
			Reason: ReasonFragmented,
			Circle: &c,
			Message: fmt.Sprintf(
				"drawing is fragmented: %d components, the largest holds %.1f%% of %d marks (need %.1f%%)",
				len(s.Components), frac*100, len(s.Points), o.MinCoverageFraction*100),
			Offending: strays(s.Points, largest),
		}
	}

	// 2. Size floor: degenerate blobs are not circles.
	if c.Radius <= o.MinRadius {
		return Record{
			Status: StatusInvalid,
			Reason: ReasonTooSmall,
			Circle: &c,
			Message: fmt.Sprintf("fitted radius %.2f does not exceed the minimum %.2f cells",
				c.Radius, o.MinRadius),
		}
	}

	// 3. Interior fill: a ring, not a disk.
	var fill []shape.Point
	for i, r := range residuals {
		if r < -o.ThicknessAllowance {
			fill = append(fill, s.Points[i])
		}
	}
	if len(fill) > 0 {
		return Record{
			Status: StatusInvalid,
			Reason: ReasonFilled,
			Circle: &c,
			Message: fmt.Sprintf("%d marks lie more than %.1f cells inside the fitted circumference",
				len(fill), o.ThicknessAllowance),
			Offending: fill,
		}
	}

	// 4. Roundness: every residual inside the tolerance band.
	band := o.RoundnessTolerance * c.Radius
	worst, worstAbs := 0, 0.0
	for i, r := range residuals {
		if math.Abs(r) > worstAbs {
			worst, worstAbs = i, math.Abs(r)
		}
	}
	if worstAbs > band {
		p := s.Points[worst]
		return Record{
			Status: StatusInvalid,
			Reason: ReasonNotRound,
			Circle: &c,
			Message: fmt.Sprintf("mark at (%d, %d) deviates %.2f cells from the circumference (allowed %.2f)",
				p.X, p.Y, worstAbs, band),
			Offending: []shape.Point{p},
		}
	}

	// 5. Ring coverage: no partial arcs masquerading as circles.
	k := effectiveSectors(o.AngularSectors, c.Radius)
	seen := make([]bool, k)
	covered := 0
	for _, p := range s.Points {
		idx := int((c.Angle(p) + math.Pi) / (2 * math.Pi) * float64(k))
		if idx >= k { // angle exactly +π lands one past the last bin
			idx = k - 1
		}
		if idx < 0 {
			idx = 0
		}
		if !seen[idx] {
			seen[idx] = true
			covered++
		}
	}
	if float64(covered) < o.MinSectorFraction*float64(k) {
		return Record{
			Status: StatusInvalid,
			Reason: ReasonIncomplete,
			Circle: &c,
			Message: fmt.Sprintf("marks cover %d of %d angular sectors (need %.0f%%)",
				covered, k, o.MinSectorFraction*100),
		}
	}

	// 6. Enclosure: a closed ring traps its interior.
	if !o.SkipEnclosure {
		if start, ok := shape.NearestBlank(g, c.X, c.Y); ok && c.Distance(start) < c.Radius {
			if path := shape.EscapePath(g, start); path != nil {
				return Record{
					Status: StatusInvalid,
					Reason: ReasonNotClosed,
					Circle: &c,
					Message: fmt.Sprintf(
						"background leaks from the interior to the border in %d steps; the ring is not closed",
						len(path)-1),
					Offending: path,
					Diagram:   shape.RenderPath(g, path),
				}
			}
		}
	}

	return Record{
		Status: StatusValid,
		Circle: &c,
		Message: fmt.Sprintf("valid circle of radius %.2f centred at (%.2f, %.2f)",
			c.Radius, c.X, c.Y),
	}
}

// effectiveSectors clamps the requested sector count so each sector's arc
// spans at least one diagonal cell step (√2); judging a small circle at a
// finer angular resolution than its own circumference can express would
// reject every drawing below a radius the configuration never named.
func effectiveSectors(requested int, radius float64) int {
	resolvable := int(2 * math.Pi * radius / math.Sqrt2)
	if resolvable < 4 {
		resolvable = 4
	}
	if requested < resolvable {
		return requested
	}

	return resolvable
}

// strays returns the points not belonging to the given component.
func strays(all []shape.Point, component []shape.Point) []shape.Point {
	in := make(map[shape.Point]bool, len(component))
	for _, p := range component {
		in[p] = true
	}
	var out []shape.Point
	for _, p := range all {
		if !in[p] {
			out = append(out, p)
		}
	}

	return out
}
