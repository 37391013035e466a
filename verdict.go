package ringcheck

import (
	"github.com/katalvlaran/ringcheck/circlefit"
	"github.com/katalvlaran/ringcheck/shape"
)

// Status is the top-level pass/fail outcome.
type Status string

const (
	// StatusValid marks an accepted circle drawing.
	StatusValid Status = "valid"
	// StatusInvalid marks a rejected submission; Record.Reason says why.
	StatusInvalid Status = "invalid"
)

// Reason is the tagged rejection cause. Parse, shape, and fit failures are
// collapsed into reasons too: from the challenge's point of view, "cannot
// even be analyzed as a circle" is itself a rejection.
type Reason string

const (
	// ReasonEmptyInput — no drawing content at all.
	ReasonEmptyInput Reason = "empty_input"
	// ReasonRaggedRows — rows of differing lengths, not a rectangular canvas.
	ReasonRaggedRows Reason = "ragged_rows"
	// ReasonNoMarks — the canvas is entirely background.
	ReasonNoMarks Reason = "no_marks"
	// ReasonTooFewPoints — fewer than 3 marks, no circle determinable.
	ReasonTooFewPoints Reason = "too_few_points"
	// ReasonDegenerate — all marks collinear, the fit is singular.
	ReasonDegenerate Reason = "degenerate"
	// ReasonFragmented — marks split into disconnected pieces.
	ReasonFragmented Reason = "fragmented"
	// ReasonTooSmall — fitted radius at or below the minimum.
	ReasonTooSmall Reason = "too_small"
	// ReasonNotRound — a mark strays too far from the fitted circumference.
	ReasonNotRound Reason = "not_round"
	// ReasonIncomplete — too few angular sectors contain marks (partial arc).
	ReasonIncomplete Reason = "incomplete"
	// ReasonFilled — marks well inside the ring (a disk, not an outline).
	ReasonFilled Reason = "filled"
	// ReasonNotClosed — background leaks from the interior to the border.
	ReasonNotClosed Reason = "not_closed"
)

// Record is the serializable verdict returned by Validate. Exactly one of
// the two statuses is set; invalid records carry a Reason, a human-readable
// Message, and, where meaningful, the offending cells and a diagram.
type Record struct {
	Status Status `json:"status" yaml:"status"`
	// Reason tags the rejection cause; empty for valid verdicts.
	Reason Reason `json:"reason,omitempty" yaml:"reason,omitempty"`
	// Message is a human-readable explanation of the verdict.
	Message string `json:"message" yaml:"message"`
	// Circle is the fitted circle, present whenever fitting succeeded.
	Circle *circlefit.Circle `json:"circle,omitempty" yaml:"circle,omitempty"`
	// Offending lists the cells that caused a rejection (stray marks, the
	// worst roundness offender, interior fill, or an escape path).
	Offending []shape.Point `json:"offending,omitempty" yaml:"offending,omitempty"`
	// Diagram renders the submission with the escape path paved, for
	// not_closed rejections.
	Diagram string `json:"diagram,omitempty" yaml:"diagram,omitempty"`
}

// Valid reports whether the submission was accepted.
func (r Record) Valid() bool {
	return r.Status == StatusValid
}
