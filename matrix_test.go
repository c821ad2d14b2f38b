package mathkit_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mathcodelab/mathkit"
)

func TestMat2_IdentityDeterminant(t *testing.T) {
	assert.Equal(t, 1.0, mathkit.Identity2().Det())
	assert.True(t, mathkit.Identity2().IsOrthogonal())
}

func TestMat2_RotationOrthogonal(t *testing.T) {
	for deg := 0; deg < 360; deg += 7 {
		theta := float64(deg) * math.Pi / 180
		r := mathkit.Rotation2(theta)
		assert.True(t, r.IsOrthogonal(), "rotation by %d°", deg)
		assert.InDelta(t, 1.0, r.Det(), 1e-12, "rotation by %d°", deg)
	}
}

func TestMat2_RotationRoundTrip(t *testing.T) {
	theta := 0.7
	composed := mathkit.Rotation2(theta).Mul(mathkit.Rotation2(-theta))
	id := mathkit.Identity2()
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			assert.InDelta(t, id[i][j], composed[i][j], 1e-12)
		}
	}
}

func TestMat2_RotationApply(t *testing.T) {
	quarter := mathkit.Rotation2(math.Pi / 2)
	got := quarter.Apply(mathkit.V2(1, 0))
	assert.InDelta(t, 0.0, got.X, 1e-12)
	assert.InDelta(t, 1.0, got.Y, 1e-12)
}

func TestMat2_Presets(t *testing.T) {
	assert.Equal(t, 6.0, mathkit.Scale2(2, 3).Det())
	assert.Equal(t, 4.0, mathkit.UniformScale2(2).Det())
	assert.Equal(t, 1.0, mathkit.ShearX2(5).Det(), "shear preserves area")
	assert.Equal(t, 1.0, mathkit.ShearY2(-2).Det())
	assert.Equal(t, -1.0, mathkit.ReflectX2().Det())
	assert.Equal(t, -1.0, mathkit.ReflectY2().Det())
	assert.Equal(t, 1.0, mathkit.ReflectOrigin2().Det())

	assert.Equal(t, mathkit.V2(1, -1), mathkit.ReflectX2().Apply(mathkit.V2(1, 1)))
	assert.Equal(t, mathkit.V2(-1, -1), mathkit.ReflectOrigin2().Apply(mathkit.V2(1, 1)))
}

func TestMat2_TransformUnitSquare(t *testing.T) {
	img := mathkit.TransformUnitSquare(mathkit.Scale2(2, 3))
	assert.Equal(t, mathkit.V2(0, 0), img.Corners[0])
	assert.Equal(t, mathkit.V2(2, 0), img.Corners[1])
	assert.Equal(t, mathkit.V2(2, 3), img.Corners[2])
	assert.Equal(t, mathkit.V2(0, 3), img.Corners[3])
	assert.Equal(t, mathkit.V2(2, 0), img.BasisI)
	assert.Equal(t, mathkit.V2(0, 3), img.BasisJ)
}

func TestMat2_Transpose(t *testing.T) {
	m := mathkit.Mat2{{1, 2}, {3, 4}}
	assert.Equal(t, mathkit.Mat2{{1, 3}, {2, 4}}, m.Transpose())
}

func TestMat3_Determinant(t *testing.T) {
	assert.Equal(t, 1.0, mathkit.Identity3().Det())
	assert.Equal(t, 24.0, mathkit.Scale3(2, 3, 4).Det())

	m := mathkit.Mat3{{1, 2, 3}, {4, 5, 6}, {7, 8, 10}}
	assert.InDelta(t, -3.0, m.Det(), 1e-12)

	singular := mathkit.Mat3{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	assert.InDelta(t, 0.0, singular.Det(), 1e-12)
}

func TestMat3_RotationsOrthogonal(t *testing.T) {
	angles := []float64{0, 0.3, 1.1, math.Pi / 2, 2.5, math.Pi}
	for _, a := range angles {
		assert.True(t, mathkit.RotationX3(a).IsOrthogonal(), "Rx(%v)", a)
		assert.True(t, mathkit.RotationY3(a).IsOrthogonal(), "Ry(%v)", a)
		assert.True(t, mathkit.RotationZ3(a).IsOrthogonal(), "Rz(%v)", a)
	}
	assert.True(t, mathkit.CombinedRotation3(0.2, 0.4, 0.6).IsOrthogonal())
	assert.InDelta(t, 1.0, mathkit.CombinedRotation3(0.2, 0.4, 0.6).Det(), 1e-12)
}

func TestMat3_RotationZApply(t *testing.T) {
	got := mathkit.RotationZ3(math.Pi / 2).Apply(mathkit.V3(1, 0, 0))
	assert.InDelta(t, 0.0, got.X, 1e-12)
	assert.InDelta(t, 1.0, got.Y, 1e-12)
	assert.InDelta(t, 0.0, got.Z, 1e-12)
}

func TestInterpretDeterminant(t *testing.T) {
	singular := mathkit.InterpretDeterminant(0)
	assert.True(t, singular.Singular)

	reflect := mathkit.InterpretDeterminant(-1)
	assert.True(t, reflect.ReversesOrient)
	assert.True(t, reflect.PreservesMeasure)

	rotation := mathkit.InterpretDeterminant(1)
	assert.False(t, rotation.ReversesOrient)
	assert.True(t, rotation.PreservesMeasure)

	stretch := mathkit.InterpretDeterminant(3.5)
	assert.False(t, stretch.Singular)
	assert.False(t, stretch.PreservesMeasure)
	assert.NotEmpty(t, stretch.Description)
}
