package spline

// The de Boor recursion works on raw indices into s.positions and
// s.knots.values. For the segment i, evaluation starts at index i+degree and
// blends positions i through i+degree.
//
// At recursion level d, the blend between the two level d-1 values at index
// k-1 and k is weighted by the knots at k-1 and k+degree-d. Those two knots
// are the same at multiple knots; a zero span contributes only the left value
// to positions and nothing to derivatives, which is the usual 0/0 = 0
// convention of the Cox-de Boor formula.

// deBoor evaluates the level d blend at index k.
func (s *BSpline[V]) deBoor(k, d int, t float64) V {
	if d == 0 {
		return s.positions[k]
	}
	lo := s.knots.values[k-1]
	span := s.knots.values[k+s.degree-d] - lo
	if span == 0 {
		return s.deBoor(k-1, d-1, t)
	}
	alpha := (t - lo) / span

	left := s.deBoor(k-1, d-1, t)
	right := s.deBoor(k, d-1, t)
	return left.Mul(1 - alpha).Add(right.Mul(alpha))
}

// deBoorDerivative evaluates the order-th derivative of the level d blend at
// index k.
func (s *BSpline[V]) deBoorDerivative(k, d int, t float64, order int) V {
	if d == 0 {
		// The spline's degree is lower than the requested order.
		return *new(V)
	}
	span := s.knots.values[k+s.degree-d] - s.knots.values[k-1]
	if span == 0 {
		return *new(V)
	}
	mult := float64(d) / span

	if order <= 1 {
		// The remaining levels are ordinary blends.
		return s.deBoor(k, d-1, t).Sub(s.deBoor(k-1, d-1, t)).Mul(mult)
	}
	return s.deBoorDerivative(k, d-1, t, order-1).
		Sub(s.deBoorDerivative(k-1, d-1, t, order-1)).
		Mul(mult)
}
