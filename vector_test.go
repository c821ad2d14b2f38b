package mathkit_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mathcodelab/mathkit"
)

func TestVec2_Arithmetic(t *testing.T) {
	v, w := mathkit.V2(1, 2), mathkit.V2(3, -1)
	assert.Equal(t, mathkit.V2(4, 1), v.Add(w))
	assert.Equal(t, mathkit.V2(-2, 3), v.Sub(w))
	assert.Equal(t, mathkit.V2(2, 4), v.Scale(2))
}

func TestVec2_DotPerpendicular(t *testing.T) {
	assert.Equal(t, 0.0, mathkit.V2(1, 0).Dot(mathkit.V2(0, 1)))
	assert.True(t, mathkit.V2(1, 0).IsPerpendicular(mathkit.V2(0, 1)))
}

func TestVec2_Magnitude(t *testing.T) {
	assert.Equal(t, 5.0, mathkit.V2(3, 4).Norm())
}

func TestVec2_Normalize(t *testing.T) {
	unit, ok := mathkit.V2(3, 4).Normalize()
	require.True(t, ok)
	assert.InDelta(t, 1.0, unit.Norm(), 1e-12)
	assert.InDelta(t, 0.6, unit.X, 1e-12)

	_, ok = mathkit.V2(0, 0).Normalize()
	assert.False(t, ok, "zero vector has no direction")

	_, ok = mathkit.V2(1e-12, 0).Normalize()
	assert.False(t, ok, "near-zero magnitude is guarded")
}

func TestVec2_AngleBetween(t *testing.T) {
	theta, ok := mathkit.V2(1, 0).AngleBetween(mathkit.V2(0, 1))
	require.True(t, ok)
	assert.InDelta(t, math.Pi/2, theta, 1e-12)

	// Same direction: the cosine clamp must keep acos defined even when
	// rounding pushes dot/(|a||b|) past 1.
	v := mathkit.V2(0.1+0.2, 0.3)
	theta, ok = v.AngleBetween(v)
	require.True(t, ok)
	assert.InDelta(t, 0.0, theta, 1e-7)

	// acos amplifies rounding near cos = −1, so π is only hit to ~√ε.
	theta, ok = mathkit.V2(1, 1).AngleBetween(mathkit.V2(-1, -1))
	require.True(t, ok)
	assert.InDelta(t, math.Pi, theta, 1e-7)

	_, ok = mathkit.V2(0, 0).AngleBetween(mathkit.V2(1, 0))
	assert.False(t, ok)
}

func TestVec2_Parallel(t *testing.T) {
	assert.True(t, mathkit.V2(2, 4).IsParallel(mathkit.V2(1, 2)))
	assert.True(t, mathkit.V2(2, 4).IsParallel(mathkit.V2(-1, -2)))
	assert.False(t, mathkit.V2(2, 4).IsParallel(mathkit.V2(1, 3)))
}

func TestVec3_Cross(t *testing.T) {
	assert.Equal(t, mathkit.V3(0, 0, 1), mathkit.V3(1, 0, 0).Cross(mathkit.V3(0, 1, 0)))
	assert.Equal(t, mathkit.V3(0, 0, -1), mathkit.V3(0, 1, 0).Cross(mathkit.V3(1, 0, 0)))
}

func TestVec3_CrossPerpendicularProperty(t *testing.T) {
	pairs := [][2]mathkit.Vec3{
		{mathkit.V3(1, 2, 3), mathkit.V3(4, 5, 6)},
		{mathkit.V3(-1, 0.5, 2), mathkit.V3(3, -2, 1)},
		{mathkit.V3(0.1, 0.2, 0.3), mathkit.V3(10, -7, 2)},
	}
	for _, p := range pairs {
		cross := p[0].Cross(p[1])
		assert.InDelta(t, 0.0, cross.Dot(p[0]), 1e-9)
		assert.InDelta(t, 0.0, cross.Dot(p[1]), 1e-9)
	}
}

func TestVec3_ParallelCrossZero(t *testing.T) {
	assert.True(t, mathkit.V3(1, 2, 3).IsParallel(mathkit.V3(2, 4, 6)))
	assert.False(t, mathkit.V3(1, 2, 3).IsParallel(mathkit.V3(2, 4, 7)))
}

func TestVec3_NormAndNormalize(t *testing.T) {
	assert.Equal(t, 3.0, mathkit.V3(1, 2, 2).Norm())

	unit, ok := mathkit.V3(1, 2, 2).Normalize()
	require.True(t, ok)
	assert.InDelta(t, 1.0, unit.Norm(), 1e-12)

	_, ok = mathkit.V3(0, 0, 0).Normalize()
	assert.False(t, ok)
}

func TestVec3_AngleBetween(t *testing.T) {
	theta, ok := mathkit.V3(1, 0, 0).AngleBetween(mathkit.V3(0, 0, 1))
	require.True(t, ok)
	assert.InDelta(t, math.Pi/2, theta, 1e-12)
}
