package spline

import "errors"

var (
	// ErrTooFewPoints is returned when a spline is constructed from fewer
	// than degree+1 control points.
	ErrTooFewPoints = errors.New("spline: too few control points for degree")

	// ErrInvalidDegree is returned for degrees less than 1.
	ErrInvalidDegree = errors.New("spline: degree must be at least 1")

	// ErrInvalidAlpha is returned when the knot parameterization exponent is
	// NaN or outside [0, 1].
	ErrInvalidAlpha = errors.New("spline: alpha must be in [0, 1]")
)
