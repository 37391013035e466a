package circlefit

import "errors"

// Sentinel errors for circle fitting.
var (
	// ErrTooFewPoints indicates fewer than 3 input points.
	ErrTooFewPoints = errors.New("circlefit: a circle needs at least 3 points")
	// ErrDegenerate indicates a singular fit system (collinear points).
	ErrDegenerate = errors.New("circlefit: points are collinear or the fit system is singular")
)
