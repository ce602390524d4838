package spline

import "slices"

// NewLooping returns a closed B-spline of the given degree through points.
// The curve continues from its last point back to its first, so it has
// len(points) segments, and evaluating it at [BSpline.MaxT] is the same as
// evaluating it at 0. Parameters outside [0, MaxT] wrap around.
//
// NewLooping returns the same errors as [New].
func NewLooping[V Vector[V]](points []V, degree int, opts ...Option) (*BSpline[V], error) {
	o, err := prepare(len(points), degree, opts)
	if err != nil {
		return nil, err
	}
	points = slices.Clone(points)
	n := len(points)
	padding := degree - 1

	// The recursion walks a contiguous slice of positions, so the points
	// around the wrap are duplicated. For degree 2 and up, starting with the
	// last point aligns parameter 0 with the knot of the first point. Linear
	// segments interpolate their two points, so they start at the first
	// point and segment i spans the edge from points[i] to points[i+1].
	lead := min(padding, 1)
	positions := make([]V, 0, n+degree)
	positions = append(positions, points[n-lead:]...)
	positions = append(positions, points...)
	positions = append(positions, points[:degree-lead]...)

	s := &BSpline[V]{
		points:    points,
		positions: positions,
		knots:     LoopingKnots(points, o.alpha, padding).dropLast(),
		degree:    degree,
		looping:   true,
	}
	s.logConstruction(o.logger)
	return s, nil
}

// MustNewLooping is like [NewLooping] but panics on error.
func MustNewLooping[V Vector[V]](points []V, degree int, opts ...Option) *BSpline[V] {
	s, err := NewLooping(points, degree, opts...)
	if err != nil {
		panic(err)
	}
	return s
}
