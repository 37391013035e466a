// Package ringcheck decides whether a block of text characters forms a
// recognizable circle outline, as required by "draw a circle in text"
// golf challenges.
//
// 🚀 What is ringcheck?
//
//	A small, pure validation engine that takes a submission as raw text and
//	answers pass/fail with a diagnostic reason:
//		• textgrid/     — raw text → rectangular mark/blank grid
//		• shape/        — mark coordinates, 4/8-connectivity, components,
//		                  enclosure (leak-path) probe
//		• circlefit/    — Kåsa algebraic least-squares circle fit (gonum)
//		• ringcheck     — acceptance checks and the Validate entry point
//		• cmd/ringcheck — CLI wrapper: file/stdin in, JSON verdict out
//
// ✨ Why ringcheck?
//
//   - Deterministic – closed-form fitting, no iterative convergence
//   - Pure – no global state, no I/O; safe under concurrent calls
//   - Tunable – every acceptance threshold lives in one Options struct
//   - Diagnostic – verdicts carry the reason, offending cells, and, for
//     leaking rings, a rendered escape-path diagram
//
// Quick ASCII example:
//
//	  ###
//	 #   #
//	#     #
//	#     #
//	#     #
//	 #   #
//	  ###
//
//	validates as a circle of radius ≈ 3.
//
// The one entry point is Validate(text, opts); it never returns an error —
// malformed input is itself a rejection, reported in the verdict record.
package ringcheck
