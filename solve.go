package spline

import "math"

// SolveITP finds a root of f within [a, b] using the [ITP method], a variant
// of bisection that interpolates and projects to converge faster.
//
// The values ya and yb are f(a) and f(b). They must have opposite signs, with
// ya < 0 < yb; callers with a decreasing f can negate it.
//
// The n0 parameter trades off bisection and secant steps. With 0, the
// iteration count never exceeds that of bisection. With 1, smooth functions
// typically converge in fewer iterations, at the cost of at most one extra
// iteration in the worst case.
//
// k1 is the truncation factor; 0.2 / (b - a) is a good default. k2 is fixed
// at 2, which avoids an exponentiation per step.
//
// When f is monotonic, the result is within epsilon of the zero crossing.
// epsilon must be positive.
//
// [ITP method]: https://en.wikipedia.org/wiki/ITP_Method
func SolveITP(
	f func(float64) float64,
	a float64,
	b float64,
	epsilon float64,
	n0 int,
	k1 float64,
	ya float64,
	yb float64,
) float64 {
	n1_2 := int(max(math.Ceil(math.Log2((b-a)/epsilon))-1.0, 0.0))
	nmax := n0 + n1_2
	scaledEpsilon := epsilon * float64(uint64(1)<<nmax)
	for b-a > 2.0*epsilon {
		x1_2 := 0.5 * (a + b)
		r := scaledEpsilon - 0.5*(b-a)
		xf := (yb*a - ya*b) / (yb - ya)
		sigma := x1_2 - xf
		delta := k1 * ((b - a) * (b - a))
		var xt float64
		if delta <= math.Abs(x1_2-xf) {
			xt = xf + math.Copysign(delta, sigma)
		} else {
			xt = x1_2
		}
		var xitp float64
		if math.Abs(xt-x1_2) <= r {
			xitp = xt
		} else {
			xitp = x1_2 - math.Copysign(r, sigma)
		}
		yitp := f(xitp)
		switch {
		case yitp > 0.0:
			b = xitp
			yb = yitp
		case yitp < 0.0:
			a = xitp
			ya = yitp
		default:
			return xitp
		}
		scaledEpsilon *= 0.5
	}
	return 0.5 * (a + b)
}
