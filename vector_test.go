package spline

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVec2(t *testing.T) {
	v := Vec(3, 4)
	assert.Equal(t, 5.0, v.Hypot())
	assert.Equal(t, 25.0, v.Hypot2())
	assert.Equal(t, Vec(4, 6), v.Add(Vec(1, 2)))
	assert.Equal(t, Vec(2, 2), v.Sub(Vec(1, 2)))
	assert.Equal(t, Vec(6, 8), v.Mul(2))
	assert.Equal(t, Vec(1.5, 2), v.Div(2))
	assert.Equal(t, 11.0, v.Dot(Vec(1, 2)))
	assert.Equal(t, 2.0, v.Cross(Vec(1, 2)))
	assert.Equal(t, Vec(2, 3), Vec(0, 0).Lerp(Vec(4, 6), 0.5))
	assert.InDelta(t, 1.0, v.Normalize().Hypot(), 1e-15)
	assert.True(t, Vec2{}.Normalize().IsNaN())
	assert.Equal(t, "⟨3, 4⟩", v.String())

	x, y := v.Splat()
	assert.Equal(t, 3.0, x)
	assert.Equal(t, 4.0, y)
}

func TestVec3(t *testing.T) {
	v := V3(1, 2, 2)
	assert.Equal(t, 3.0, v.Hypot())
	assert.Equal(t, V3(2, 4, 4), v.Mul(2))
	assert.Equal(t, V3(0, 0, 1), V3(1, 0, 0).Cross(V3(0, 1, 0)))
	assert.Equal(t, V3(2, 3, 4), v.Add(V3(1, 1, 2)))
	assert.Equal(t, V3(0, 1, 0), v.Sub(V3(1, 1, 2)))
	assert.Equal(t, "⟨1, 2, 2⟩", v.String())
}

func TestVec3f(t *testing.T) {
	v := Vec3f{1, 2, 2}
	assert.InDelta(t, 3.0, v.Hypot(), 1e-6)
	assert.Equal(t, Vec3f{0.5, 1, 1}, v.Mul(0.5))
	assert.Equal(t, Vec3f{2, 4, 4}, v.Add(v))
	assert.Equal(t, Vec3f{}, v.Sub(v))
	assert.False(t, v.IsNaN())
	assert.True(t, Vec3f{X: float32(math.NaN())}.IsNaN())
}

func TestVecN(t *testing.T) {
	v := VecN{1, 2, 2, 4}
	assert.Equal(t, 5.0, v.Hypot())
	assert.Equal(t, VecN{2, 4, 4, 8}, v.Mul(2))
	assert.Equal(t, VecN{0, 0, 0, 0}, v.Sub(v))
	assert.Equal(t, "⟨1, 2, 2, 4⟩", v.String())

	// nil is the zero vector of any dimension.
	var zero VecN
	assert.Equal(t, v, v.Add(zero))
	assert.Equal(t, v, zero.Add(v))
	assert.Equal(t, VecN{-1, -2, -2, -4}, zero.Sub(v))
	assert.Nil(t, zero.Mul(3))
	assert.Nil(t, zero.Sub(zero))
	assert.Equal(t, 0.0, zero.Hypot())

	// Results never alias their operands.
	w := v.Add(zero)
	w[0] = 100
	require.Equal(t, 1.0, v[0])

	require.Panics(t, func() { v.Add(VecN{1, 2}) })
}
