package spline

import (
	"fmt"
	"math"
	"strings"

	"github.com/chewxy/math32"
)

// Vector describes the values a spline interpolates between.
//
// The zero value of V must be the zero vector. It is returned for derivatives
// of higher order than the spline's degree supports.
type Vector[V any] interface {
	Add(o V) V
	Sub(o V) V
	Mul(f float64) V
	// Hypot returns the magnitude of the vector.
	Hypot() float64
}

var (
	_ Vector[Vec2]  = Vec2{}
	_ Vector[Vec3]  = Vec3{}
	_ Vector[Vec3f] = Vec3f{}
	_ Vector[VecN]  = VecN{}
)

type Vec2 struct {
	X float64
	Y float64
}

// Vec returns the vector ⟨x, y⟩.
func Vec(x, y float64) Vec2 {
	return Vec2{
		X: x,
		Y: y,
	}
}

// Splat returns the vector's x and y coordinates.
func (v Vec2) Splat() (float64, float64) {
	return v.X, v.Y
}

func (v Vec2) String() string {
	return fmt.Sprintf("⟨%g, %g⟩", v.X, v.Y)
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the cross product of v and o.
func (v Vec2) Cross(o Vec2) float64 {
	return v.X*o.Y - v.Y*o.X
}

// Hypot returns the magnitude of the vector.
func (v Vec2) Hypot() float64 {
	return math.Hypot(v.X, v.Y)
}

// Hypot2 returns the squared magnitude of the vector.
//
// This function is more efficient than squaring the result of [Vec2.Hypot].
func (v Vec2) Hypot2() float64 {
	return v.Dot(v)
}

// Lerp linearly interpolates between two vectors.
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	// v + t * (o-v)
	return v.Add(o.Sub(v).Mul(t))
}

// Normalize returns a vector of magnitude 1.0 with the same angle as v.
// This produces a NaN vector if the magnitude is 0.
func (v Vec2) Normalize() Vec2 {
	return v.Mul(1.0 / v.Hypot())
}

// IsNaN reports whether at least one of x and y is NaN.
func (v Vec2) IsNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y)
}

// Add adds two vectors and returns the resulting vector.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{
		X: v.X + o.X,
		Y: v.Y + o.Y,
	}
}

// Sub subtracts two vectors and returns the resulting vector.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{
		X: v.X - o.X,
		Y: v.Y - o.Y,
	}
}

func (v Vec2) Mul(f float64) Vec2 {
	return Vec2{
		X: v.X * f,
		Y: v.Y * f,
	}
}

func (v Vec2) Div(f float64) Vec2 {
	return Vec2{
		X: v.X / f,
		Y: v.Y / f,
	}
}

// Vec3 is a three-dimensional vector.
type Vec3 struct {
	X float64
	Y float64
	Z float64
}

// V3 returns the vector ⟨x, y, z⟩.
func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

func (v Vec3) String() string {
	return fmt.Sprintf("⟨%g, %g, %g⟩", v.X, v.Y, v.Z)
}

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product of v and o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Hypot returns the magnitude of the vector.
func (v Vec3) Hypot() float64 {
	return math.Sqrt(v.Dot(v))
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

func (v Vec3) Mul(f float64) Vec3 {
	return Vec3{X: v.X * f, Y: v.Y * f, Z: v.Z * f}
}

// Vec3f is a single precision three-dimensional vector, as used by most
// graphics APIs. Arithmetic is carried out in float32; scalar factors are
// narrowed before multiplication.
type Vec3f struct {
	X float32
	Y float32
	Z float32
}

func (v Vec3f) String() string {
	return fmt.Sprintf("⟨%g, %g, %g⟩", v.X, v.Y, v.Z)
}

// Hypot returns the magnitude of the vector.
func (v Vec3f) Hypot() float64 {
	return float64(math32.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z))
}

func (v Vec3f) Add(o Vec3f) Vec3f {
	return Vec3f{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

func (v Vec3f) Sub(o Vec3f) Vec3f {
	return Vec3f{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

func (v Vec3f) Mul(f float64) Vec3f {
	g := float32(f)
	return Vec3f{X: v.X * g, Y: v.Y * g, Z: v.Z * g}
}

// IsNaN reports whether at least one component is NaN.
func (v Vec3f) IsNaN() bool {
	return math32.IsNaN(v.X) || math32.IsNaN(v.Y) || math32.IsNaN(v.Z)
}

// VecN is a vector of arbitrary dimension.
//
// A nil VecN is the zero vector of any dimension. Otherwise, both operands of
// Add and Sub must have the same length.
type VecN []float64

func (v VecN) String() string {
	var sb strings.Builder
	sb.WriteString("⟨")
	for i, x := range v {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%g", x)
	}
	sb.WriteString("⟩")
	return sb.String()
}

// Hypot returns the magnitude of the vector.
func (v VecN) Hypot() float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}

func (v VecN) Add(o VecN) VecN {
	return v.combine(o, 1)
}

func (v VecN) Sub(o VecN) VecN {
	return v.combine(o, -1)
}

func (v VecN) Mul(f float64) VecN {
	if v == nil {
		return nil
	}
	out := make(VecN, len(v))
	for i, x := range v {
		out[i] = x * f
	}
	return out
}

// combine computes v + sign*o, treating nil as zero.
func (v VecN) combine(o VecN, sign float64) VecN {
	switch {
	case o == nil:
		return v.Mul(1)
	case v == nil:
		return o.Mul(sign)
	}
	if len(v) != len(o) {
		panic(fmt.Sprintf("mismatched vector dimensions %d and %d", len(v), len(o)))
	}
	out := make(VecN, len(v))
	for i := range v {
		out[i] = v[i] + sign*o[i]
	}
	return out
}
