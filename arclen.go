package spline

import (
	"fmt"
	"math"
)

// maxArclenDepth bounds the subdivision of adaptive arc length computations.
const maxArclenDepth = 20

// SegmentLength returns the arc length of the given segment between the
// parameters a and b, which should lie within the segment.
//
// The length is estimated with 16-point Legendre-Gauss quadrature of the
// curve's speed. This is exact for degree 1 splines; for others, callers who
// need tighter bounds should split [a, b] and sum the results, or use
// [BSpline.Arclen]. Zero-length segments have an arc length of 0.
func (s *BSpline[V]) SegmentLength(segment int, a, b float64) float64 {
	if segment < 0 || segment >= s.SegmentCount() {
		panic(fmt.Sprintf("segment %d out of range [0, %d)", segment, s.SegmentCount()))
	}
	if s.knots.At(segment+1)-s.knots.At(segment) <= 0 {
		return 0
	}
	return gaussLegendre(gaussLegendreCoeffs16[:], s.speed(segment), a, b)
}

// speed returns the magnitude of the first derivative within a segment.
func (s *BSpline[V]) speed(segment int) func(float64) float64 {
	k := segment + s.degree
	return func(t float64) float64 {
		return s.deBoorDerivative(k, s.degree, t, 1).Hypot()
	}
}

// ArcLength returns the arc length of the curve between the parameters a and
// b. The parameters are clamped to [MinT, MaxT] and the result is the same
// regardless of their order.
func (s *BSpline[V]) ArcLength(a, b float64) float64 {
	return s.measure(a, b, s.SegmentLength)
}

// TotalLength returns the arc length of the whole curve.
func (s *BSpline[V]) TotalLength() float64 {
	return s.ArcLength(s.MinT(), s.MaxT())
}

// CyclicArcLength returns the arc length of a looping curve from a to b. Both
// parameters wrap around, and if b comes before a, the length is measured
// across the end of the curve. The result never exceeds one loop: if a and b
// differ but wrap to the same parameter, it is the length of the whole curve.
//
// CyclicArcLength panics if the curve isn't looping.
func (s *BSpline[V]) CyclicArcLength(a, b float64) float64 {
	if !s.looping {
		panic("CyclicArcLength called on open spline")
	}
	distinct := a != b
	a, b = s.normalizeT(a), s.normalizeT(b)
	if a == b && distinct {
		return s.TotalLength()
	}
	if a <= b {
		return s.ArcLength(a, b)
	}
	return s.ArcLength(a, s.MaxT()) + s.ArcLength(s.MinT(), b)
}

// Arclen returns the length of the curve, accurate to the given accuracy.
//
// Unlike [BSpline.TotalLength], this adaptively subdivides segments until an
// 8-point and a 16-point Legendre-Gauss estimate agree. Arclen panics if
// accuracy isn't positive.
func (s *BSpline[V]) Arclen(accuracy float64) float64 {
	checkAccuracy(accuracy)
	return s.arclenRange(s.MinT(), s.MaxT(), accuracy)
}

// checkAccuracy panics unless accuracy is positive. A non-positive accuracy
// can never be met and would subdivide to maxArclenDepth everywhere.
func checkAccuracy(accuracy float64) {
	if !(accuracy > 0) {
		panic(fmt.Sprintf("invalid accuracy %g", accuracy))
	}
}

func (s *BSpline[V]) arclenRange(a, b, accuracy float64) float64 {
	// Spread the error budget evenly across segments.
	accuracy /= float64(s.SegmentCount())
	return s.measure(a, b, func(segment int, a, b float64) float64 {
		if s.knots.At(segment+1)-s.knots.At(segment) <= 0 {
			return 0
		}
		return adaptiveLength(s.speed(segment), a, b, accuracy, 0)
	})
}

func adaptiveLength(speed func(float64) float64, a, b, accuracy float64, depth int) float64 {
	coarse := gaussLegendre(gaussLegendreCoeffs8[:], speed, a, b)
	fine := gaussLegendre(gaussLegendreCoeffs16[:], speed, a, b)
	if math.Abs(fine-coarse) <= accuracy || depth >= maxArclenDepth {
		return fine
	}
	m := 0.5 * (a + b)
	return adaptiveLength(speed, a, m, accuracy*0.5, depth+1) +
		adaptiveLength(speed, m, b, accuracy*0.5, depth+1)
}

// measure sums segmentLength over the part of every segment that lies within
// [a, b].
func (s *BSpline[V]) measure(a, b float64, segmentLength func(segment int, a, b float64) float64) float64 {
	a, b = s.clampT(a), s.clampT(b)
	if a > b {
		a, b = b, a
	}
	first, last := s.SegmentForT(a), s.SegmentForT(b)
	if first == last {
		return segmentLength(first, a, b)
	}
	total := segmentLength(first, a, s.SegmentT(first+1))
	for i := first + 1; i < last; i++ {
		total += segmentLength(i, s.SegmentT(i), s.SegmentT(i+1))
	}
	return total + segmentLength(last, s.SegmentT(last), b)
}

// SolveForArclen solves for the parameter that has the given arc length from
// the start of the curve. Lengths beyond the curve's length return
// [BSpline.MaxT].
//
// This uses the [ITP method], as provided by [SolveITP]. It computes arc
// lengths of increasingly smaller parts of the curve, rather than repeatedly
// measuring from the start. SolveForArclen panics if accuracy isn't positive.
//
// [ITP method]: https://en.wikipedia.org/wiki/ITP_Method
func (s *BSpline[V]) SolveForArclen(arclen float64, accuracy float64) float64 {
	checkAccuracy(accuracy)
	t, ok := s.solveArclenFrom(s.MinT(), arclen, accuracy)
	if !ok {
		return s.MaxT()
	}
	return t
}

// solveArclenFrom solves for the parameter that has the given arc length from
// t0. It reports false if the rest of the curve is shorter than arclen.
func (s *BSpline[V]) solveArclenFrom(t0, arclen, accuracy float64) (float64, bool) {
	if arclen <= 0 {
		return t0, true
	}
	t1 := s.MaxT()
	remaining := s.arclenRange(t0, t1, accuracy)
	if arclen > remaining {
		return t1, false
	}
	if arclen == remaining {
		return t1, true
	}

	tLast := t0
	arclenLast := 0.0
	epsilon := accuracy / remaining * (t1 - t0)
	n := 1.0 - min(math.Ceil(math.Log2(accuracy/remaining)), 0.0)
	innerAccuracy := accuracy / n
	f := func(t float64) float64 {
		if t > tLast {
			arclenLast += s.arclenRange(tLast, t, innerAccuracy)
		} else {
			arclenLast -= s.arclenRange(t, tLast, innerAccuracy)
		}
		tLast = t
		return arclenLast - arclen
	}
	return SolveITP(f, t0, t1, epsilon, 1, 0.2/(t1-t0), -arclen, remaining-arclen), true
}

// Partition returns parameters that divide the curve into pieces of the given
// arc length, starting with [BSpline.MinT]. The remainder after the last full
// piece is not included. Partition panics if interval or accuracy isn't
// positive.
func (s *BSpline[V]) Partition(interval float64, accuracy float64) []float64 {
	if !(interval > 0) {
		panic(fmt.Sprintf("invalid partition interval %g", interval))
	}
	checkAccuracy(accuracy)
	ts := []float64{s.MinT()}
	t := s.MinT()
	for {
		next, ok := s.solveArclenFrom(t, interval, accuracy)
		if !ok || next <= t {
			break
		}
		ts = append(ts, next)
		t = next
	}
	return ts
}
