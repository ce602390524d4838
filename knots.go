package spline

import (
	"fmt"
	"math"
	"slices"
	"sort"
)

// Knots is a non-decreasing sequence of parameter values, one per control
// point index. Indices are signed: padding knots before the first control
// point have negative indices, and padding knots after the last control point
// have indices of len(points) and above.
//
// Equal adjacent knots describe a zero-length segment, which is legal. The
// zero value has no knots.
type Knots struct {
	values []float64
	// values[i+offset] is the knot of index i.
	offset int
}

// OpenKnots computes knots for an open curve through points, with padding
// extra knots before the first and after the last point.
//
// The parameter distance between two consecutive knots is the distance between
// the corresponding points raised to alpha; an alpha of 0 spaces knots
// uniformly. Padding knots behave as if the curve was extended by points
// linearly extrapolated from the two nearest real points. The knot of index 0
// is 0.
//
// OpenKnots panics if there are fewer than two points.
func OpenKnots[V Vector[V]](points []V, alpha float64, padding int) Knots {
	n := len(points)
	if n < 2 {
		panic(fmt.Sprintf("need at least 2 points to compute knots, got %d", n))
	}
	k := Knots{
		values: make([]float64, n+2*padding),
		offset: padding,
	}
	for i := 1; i < n; i++ {
		k.set(i, k.At(i-1)+knotDistance(points[i-1], points[i], alpha))
	}

	// The extrapolated points are evenly spaced, so every padding knot uses
	// the distance between the two outermost real points.
	tail := knotDistance(points[n-2], points[n-1], alpha)
	for i := n; i < n+padding; i++ {
		k.set(i, k.At(i-1)+tail)
	}
	head := knotDistance(points[0], points[1], alpha)
	for i := -1; i >= -padding; i-- {
		k.set(i, k.At(i+1)-head)
	}
	return k
}

// LoopingKnots computes knots for a closed curve through points. The point
// after the last one is the first one, and the point before the first one is
// the last one.
//
// The result has indices from -padding to len(points)+padding+1. The last
// knot is one more than a looping spline of the same padding needs; see
// [NewLooping].
//
// LoopingKnots panics if there are fewer than two points.
func LoopingKnots[V Vector[V]](points []V, alpha float64, padding int) Knots {
	n := len(points)
	if n < 2 {
		panic(fmt.Sprintf("need at least 2 points to compute knots, got %d", n))
	}
	at := func(i int) V {
		return points[wrapIndex(i, n)]
	}
	k := Knots{
		values: make([]float64, n+2*padding+2),
		offset: padding,
	}
	for i := 1; i <= n+padding+1; i++ {
		k.set(i, k.At(i-1)+knotDistance(at(i-1), at(i), alpha))
	}
	for i := -1; i >= -padding; i-- {
		k.set(i, k.At(i+1)-knotDistance(at(i), at(i+1), alpha))
	}
	return k
}

func knotDistance[V Vector[V]](a, b V, alpha float64) float64 {
	if alpha == 0 {
		return 1
	}
	return math.Pow(b.Sub(a).Hypot(), alpha)
}

func wrapIndex(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

func (k Knots) set(i int, v float64) {
	k.values[i+k.offset] = v
}

// At returns the knot of index i. It panics if i is out of range.
func (k Knots) At(i int) float64 {
	j := i + k.offset
	if j < 0 || j >= len(k.values) {
		panic(fmt.Sprintf("knot index %d out of range [%d, %d]", i, k.First(), k.Last()))
	}
	return k.values[j]
}

// First returns the smallest valid knot index.
func (k Knots) First() int { return -k.offset }

// Last returns the largest valid knot index.
func (k Knots) Last() int { return len(k.values) - 1 - k.offset }

// Len returns the number of knots.
func (k Knots) Len() int { return len(k.values) }

// Min returns the value of the first knot, or 0 if there are no knots.
func (k Knots) Min() float64 {
	if len(k.values) == 0 {
		return 0
	}
	return k.values[0]
}

// Max returns the value of the last knot, or 0 if there are no knots.
func (k Knots) Max() float64 {
	if len(k.values) == 0 {
		return 0
	}
	return k.values[len(k.values)-1]
}

// Values returns a copy of the knot values, ordered by index.
func (k Knots) Values() []float64 {
	return slices.Clone(k.values)
}

// IsNonDecreasing reports whether no knot is smaller than its predecessor.
func (k Knots) IsNonDecreasing() bool {
	for i := 1; i < len(k.values); i++ {
		if k.values[i] < k.values[i-1] {
			return false
		}
	}
	return true
}

// Span returns the greatest knot index whose value is not greater than t. If t
// is smaller than the first knot, it returns First()-1.
func (k Knots) Span(t float64) int {
	j := sort.Search(len(k.values), func(i int) bool {
		return k.values[i] > t
	})
	return j - 1 - k.offset
}

// zeroLength counts the zero-length intervals between knot indices first and
// last.
func (k Knots) zeroLength(first, last int) int {
	var n int
	for i := first; i < last; i++ {
		if k.At(i+1) == k.At(i) {
			n++
		}
	}
	return n
}

// dropLast returns the knots without the last one.
func (k Knots) dropLast() Knots {
	return Knots{
		values: k.values[:len(k.values)-1],
		offset: k.offset,
	}
}
