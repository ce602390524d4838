// Package spline evaluates B-splines of arbitrary degree through sequences of
// points of arbitrary dimension. It was designed to serve animation and path
// planning, where a curve is built once from a handful of points and then
// queried many times for positions, derivatives and lengths.
//
// # Curves
//
// [New] builds an open curve and [NewLooping] a closed one. Both return a
// [BSpline], which implements [Curve], [Arclener] and [ArclenSolver].
//
// A spline of degree d through n points has n-d segments if it is open and n
// segments if it is looping. Each segment is a polynomial of degree d; adjacent
// segments join with d-1 continuous derivatives, fewer at repeated knots.
//
// Splines are generic over the type of their points. Any type satisfying
// [Vector] can be used. This package provides [Vec2], [Vec3], the single
// precision [Vec3f] and [VecN], which has arbitrary dimension.
//
// # Parameterization
//
// Every control point has a parameter value, called its knot. By default,
// knots are spaced uniformly, one unit apart. [WithAlpha] spaces them by the
// distance between points instead, raised to a power: 0.5 gives centripetal
// and 1 gives chord-length parameterization. Repeated points then produce
// zero-length segments, which are legal and contribute no length.
//
// The curve's parameter ranges from 0 to [BSpline.MaxT]. Evaluating an open
// curve outside that range clamps the parameter; a looping curve wraps it.
//
// # Evaluation
//
// Positions and derivatives are computed with the de Boor algorithm.
// [BSpline.Eval] returns the position, [BSpline.Tangent],
// [BSpline.Curvature] and [BSpline.Wiggle] additionally return the first,
// second and third derivatives, and [BSpline.Derivative] returns a derivative
// of any order. Derivatives of higher order than the spline's degree are zero.
//
// # Arc length
//
// [BSpline.ArcLength] integrates the curve's speed with fixed-order
// Legendre-Gauss quadrature, per segment. [BSpline.Arclen] subdivides
// adaptively to meet an accuracy, [BSpline.SolveForArclen] inverts arc
// length, and [BSpline.Partition] splits a curve into pieces of equal length.
//
// # Logging
//
// Construction is logged at debug level to the logger set with [SetLogger] or
// [WithLogger]. No output is produced by default.
package spline
