package spline

// SegmentForT returns the index of the segment containing the parameter t.
//
// Parameters before the start of the curve map to the first segment, and
// parameters past its end map to the last segment.
func (s *BSpline[V]) SegmentForT(t float64) int {
	if t < s.MinT() {
		return 0
	}
	// Segment i starts at the knot of index i.
	return min(s.knots.Span(t), s.SegmentCount()-1)
}

// segmentForEval is like SegmentForT, but backs off zero-length segments at
// the end of the curve, which SegmentForT returns when clamping t = MaxT.
func (s *BSpline[V]) segmentForEval(t float64) int {
	seg := s.SegmentForT(t)
	for seg > 0 && s.knots.At(seg+1) == s.knots.At(seg) {
		seg--
	}
	return seg
}
