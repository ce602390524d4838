package spline

import (
	"fmt"
	"log/slog"
	"math"
	"slices"
)

var (
	_ Curve[Vec2]  = (*BSpline[Vec2])(nil)
	_ Arclener     = (*BSpline[Vec2])(nil)
	_ ArclenSolver = (*BSpline[Vec2])(nil)
)

// BSpline is a B-spline of arbitrary degree through a sequence of control
// points.
//
// A BSpline is immutable and safe for concurrent use.
type BSpline[V Vector[V]] struct {
	// points are the control points as given by the user.
	points []V
	// positions are the control points as used by the de Boor recursion. For
	// open curves, this is the same slice as points. Looping curves rotate and
	// extend it; see NewLooping.
	positions []V
	knots     Knots
	degree    int
	looping   bool
}

// New returns an open B-spline of the given degree through points.
//
// The curve is parametrized from 0 to [BSpline.MaxT]. Its segment count is
// len(points)-degree. New returns an error wrapping [ErrTooFewPoints] if there
// are no more points than the degree, [ErrInvalidDegree] if degree is less than
// one and [ErrInvalidAlpha] if [WithAlpha] is out of range.
func New[V Vector[V]](points []V, degree int, opts ...Option) (*BSpline[V], error) {
	o, err := prepare(len(points), degree, opts)
	if err != nil {
		return nil, err
	}
	points = slices.Clone(points)
	s := &BSpline[V]{
		points:    points,
		positions: points,
		knots:     OpenKnots(points, o.alpha, degree-1),
		degree:    degree,
	}
	s.logConstruction(o.logger)
	return s, nil
}

// MustNew is like [New] but panics on error.
func MustNew[V Vector[V]](points []V, degree int, opts ...Option) *BSpline[V] {
	s, err := New(points, degree, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

func prepare(n, degree int, opts []Option) (options, error) {
	if degree < 1 {
		return options{}, fmt.Errorf("%w: got %d", ErrInvalidDegree, degree)
	}
	if n <= degree {
		return options{}, fmt.Errorf("%w: got %d points for degree %d, need at least %d",
			ErrTooFewPoints, n, degree, degree+1)
	}
	return buildOptions(opts)
}

func (s *BSpline[V]) logConstruction(l *slog.Logger) {
	l.Debug("constructed B-spline",
		slog.Int("degree", s.degree),
		slog.Int("points", len(s.points)),
		slog.Int("segments", s.SegmentCount()),
		slog.Bool("looping", s.looping),
		slog.Float64("maxT", s.MaxT()),
		slog.Int("zeroLengthSegments", s.knots.zeroLength(0, s.SegmentCount())),
	)
}

// Degree returns the degree of the spline.
func (s *BSpline[V]) Degree() int { return s.degree }

// IsLooping reports whether the curve is closed.
func (s *BSpline[V]) IsLooping() bool { return s.looping }

// SegmentCount returns the number of segments.
func (s *BSpline[V]) SegmentCount() int {
	return len(s.positions) - s.degree
}

// Points returns a copy of the control points the curve was constructed from.
func (s *BSpline[V]) Points() []V {
	return slices.Clone(s.points)
}

// Knots returns the curve's knots.
func (s *BSpline[V]) Knots() Knots {
	return Knots{values: s.knots.Values(), offset: s.knots.offset}
}

// T returns the knot of the control point of the given index. Negative
// indices and indices past the last point refer to padding knots.
func (s *BSpline[V]) T(index int) float64 {
	return s.knots.At(index)
}

// SegmentT returns the parameter at which the given segment starts. A segment
// of SegmentCount() returns [BSpline.MaxT].
func (s *BSpline[V]) SegmentT(segment int) float64 {
	if segment < 0 || segment > s.SegmentCount() {
		panic(fmt.Sprintf("segment %d out of range [0, %d]", segment, s.SegmentCount()))
	}
	return s.knots.At(segment)
}

// MinT returns the smallest parameter of the curve, which is always 0.
func (s *BSpline[V]) MinT() float64 {
	return s.knots.At(0)
}

// MaxT returns the largest parameter of the curve.
func (s *BSpline[V]) MaxT() float64 {
	return s.knots.At(s.SegmentCount())
}

// Eval evaluates the curve at t.
//
// For open curves, t is clamped to [MinT, MaxT]. Looping curves wrap t into
// that range instead, and evaluate infinite t at MinT. NaN evaluates at MinT.
func (s *BSpline[V]) Eval(t float64) V {
	t = s.normalizeT(t)
	return s.deBoor(s.segmentForEval(t)+s.degree, s.degree, t)
}

// Derivative returns the derivative of the given order at t. An order of 0
// returns the position. Orders higher than the spline's degree return the zero
// vector. Derivative panics if order is negative.
func (s *BSpline[V]) Derivative(t float64, order int) V {
	if order < 0 {
		panic(fmt.Sprintf("negative derivative order %d", order))
	}
	t = s.normalizeT(t)
	k := s.segmentForEval(t) + s.degree
	if order == 0 {
		return s.deBoor(k, s.degree, t)
	}
	return s.deBoorDerivative(k, s.degree, t, order)
}

// Tangent evaluates the curve and its first derivative at t.
func (s *BSpline[V]) Tangent(t float64) Tangent[V] {
	t = s.normalizeT(t)
	k := s.segmentForEval(t) + s.degree
	return Tangent[V]{
		Position: s.deBoor(k, s.degree, t),
		Tangent:  s.deBoorDerivative(k, s.degree, t, 1),
	}
}

// Curvature evaluates the curve and its first two derivatives at t.
func (s *BSpline[V]) Curvature(t float64) Curvature[V] {
	t = s.normalizeT(t)
	k := s.segmentForEval(t) + s.degree
	return Curvature[V]{
		Position:  s.deBoor(k, s.degree, t),
		Tangent:   s.deBoorDerivative(k, s.degree, t, 1),
		Curvature: s.deBoorDerivative(k, s.degree, t, 2),
	}
}

// Wiggle evaluates the curve and its first three derivatives at t.
func (s *BSpline[V]) Wiggle(t float64) Wiggle[V] {
	t = s.normalizeT(t)
	k := s.segmentForEval(t) + s.degree
	return Wiggle[V]{
		Position:  s.deBoor(k, s.degree, t),
		Tangent:   s.deBoorDerivative(k, s.degree, t, 1),
		Curvature: s.deBoorDerivative(k, s.degree, t, 2),
		Wiggle:    s.deBoorDerivative(k, s.degree, t, 3),
	}
}

// normalizeT maps t into [MinT, MaxT], by clamping for open curves and by
// wrapping for looping ones. NaN maps to MinT, as do infinities on looping
// curves, which have no defined position within the period.
func (s *BSpline[V]) normalizeT(t float64) float64 {
	lo, hi := s.MinT(), s.MaxT()
	if math.IsNaN(t) {
		return lo
	}
	if !s.looping {
		return min(max(t, lo), hi)
	}
	period := hi - lo
	if period <= 0 || math.IsInf(t, 0) {
		return lo
	}
	t = math.Mod(t-lo, period)
	if t < 0 {
		t += period
	}
	return lo + t
}

// clampT clamps t to [MinT, MaxT].
func (s *BSpline[V]) clampT(t float64) float64 {
	return min(max(t, s.MinT()), s.MaxT())
}
