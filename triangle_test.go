package mathkit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mathcodelab/mathkit"
)

func TestSolveRightTriangle_TwoLegs(t *testing.T) {
	sol, err := mathkit.SolveRightTriangle(mathkit.TriangleInput{
		A: mathkit.Ptr(3), B: mathkit.Ptr(4),
	})
	require.NoError(t, err)
	assert.InDelta(t, 5.0, sol.Triangle.C, 1e-9)
	assert.InDelta(t, 36.8699, sol.Triangle.AngleA, 1e-3)
	assert.InDelta(t, 53.1301, sol.Triangle.AngleB, 1e-3)
	assert.Equal(t, mathkit.Special345, sol.Special)
	assert.NotEmpty(t, sol.Steps)
}

func TestSolveRightTriangle_StepsDocumentDerivations(t *testing.T) {
	sol, err := mathkit.SolveRightTriangle(mathkit.TriangleInput{
		A: mathkit.Ptr(3), B: mathkit.Ptr(4),
	})
	require.NoError(t, err)

	names := make([]string, len(sol.Steps))
	for i, s := range sol.Steps {
		names[i] = s.FormulaName
		assert.NotEmpty(t, s.Finding)
		assert.NotEmpty(t, s.Formula)
		assert.NotEmpty(t, s.Calculation)
	}
	assert.Contains(t, names, "Pythagorean theorem")
	assert.Contains(t, names, "tangent ratio")
}

func TestSolveRightTriangle_HypotenuseAndAngle(t *testing.T) {
	sol, err := mathkit.SolveRightTriangle(mathkit.TriangleInput{
		C: mathkit.Ptr(10), AngleA: mathkit.Ptr(30),
	})
	require.NoError(t, err)
	assert.InDelta(t, 5.0, sol.Triangle.A, 1e-9)
	assert.InDelta(t, 8.6603, sol.Triangle.B, 1e-4)
	assert.InDelta(t, 60.0, sol.Triangle.AngleB, 1e-9)
	assert.Equal(t, mathkit.Special306090, sol.Special)
}

func TestSolveRightTriangle_LegAndHypotenuse(t *testing.T) {
	sol, err := mathkit.SolveRightTriangle(mathkit.TriangleInput{
		A: mathkit.Ptr(5), C: mathkit.Ptr(13),
	})
	require.NoError(t, err)
	assert.InDelta(t, 12.0, sol.Triangle.B, 1e-9)
}

func TestSolveRightTriangle_Isosceles(t *testing.T) {
	sol, err := mathkit.SolveRightTriangle(mathkit.TriangleInput{
		A: mathkit.Ptr(7), AngleA: mathkit.Ptr(45),
	})
	require.NoError(t, err)
	assert.InDelta(t, 7.0, sol.Triangle.B, 1e-9)
	assert.Equal(t, mathkit.Special454590, sol.Special)
}

func TestSolveRightTriangle_OverDeterminedConsistent(t *testing.T) {
	sol, err := mathkit.SolveRightTriangle(mathkit.TriangleInput{
		A: mathkit.Ptr(3), B: mathkit.Ptr(4), C: mathkit.Ptr(5),
	})
	require.NoError(t, err)
	assert.InDelta(t, 5.0, sol.Triangle.C, 1e-9)
}

func TestSolveRightTriangle_InsufficientData(t *testing.T) {
	_, err := mathkit.SolveRightTriangle(mathkit.TriangleInput{A: mathkit.Ptr(3)})
	assert.ErrorIs(t, err, mathkit.ErrInsufficientData)
}

func TestSolveRightTriangle_AnglesOnly(t *testing.T) {
	_, err := mathkit.SolveRightTriangle(mathkit.TriangleInput{
		AngleA: mathkit.Ptr(45), AngleB: mathkit.Ptr(45),
	})
	assert.ErrorIs(t, err, mathkit.ErrAnglesOnly)
}

func TestSolveRightTriangle_SingleAngleNoSide(t *testing.T) {
	_, err := mathkit.SolveRightTriangle(mathkit.TriangleInput{AngleA: mathkit.Ptr(45)})
	// One known value is insufficient before the angles-only check applies.
	assert.Error(t, err)
}

func TestSolveRightTriangle_AnglesDontSum(t *testing.T) {
	_, err := mathkit.SolveRightTriangle(mathkit.TriangleInput{
		A: mathkit.Ptr(3), AngleA: mathkit.Ptr(30), AngleB: mathkit.Ptr(50),
	})
	assert.ErrorIs(t, err, mathkit.ErrInconsistentTriangle)
}

func TestSolveRightTriangle_HypotenuseShorterThanLeg(t *testing.T) {
	_, err := mathkit.SolveRightTriangle(mathkit.TriangleInput{
		A: mathkit.Ptr(5), C: mathkit.Ptr(3),
	})
	assert.ErrorIs(t, err, mathkit.ErrInconsistentTriangle)
}

func TestSolveRightTriangle_OverDeterminedInconsistent(t *testing.T) {
	_, err := mathkit.SolveRightTriangle(mathkit.TriangleInput{
		A: mathkit.Ptr(3), B: mathkit.Ptr(4), C: mathkit.Ptr(10),
	})
	assert.ErrorIs(t, err, mathkit.ErrInconsistentTriangle)
}

func TestSolveRightTriangle_AngleConflictsWithSides(t *testing.T) {
	// tan(40°) ≠ 3/4: two legs and an angle that cannot coexist.
	_, err := mathkit.SolveRightTriangle(mathkit.TriangleInput{
		A: mathkit.Ptr(3), B: mathkit.Ptr(4), AngleA: mathkit.Ptr(40),
	})
	assert.ErrorIs(t, err, mathkit.ErrInconsistentTriangle)
}

func TestSolveRightTriangle_RoundedAngleAccepted(t *testing.T) {
	// 36.87° is the display-rounded angle of a 3-4-5 triangle.
	sol, err := mathkit.SolveRightTriangle(mathkit.TriangleInput{
		A: mathkit.Ptr(3), B: mathkit.Ptr(4), AngleA: mathkit.Ptr(36.87),
	})
	require.NoError(t, err)
	assert.InDelta(t, 5.0, sol.Triangle.C, 1e-9)
}

func TestSolveRightTriangle_NegativeSide(t *testing.T) {
	_, err := mathkit.SolveRightTriangle(mathkit.TriangleInput{
		A: mathkit.Ptr(-3), B: mathkit.Ptr(4),
	})
	assert.ErrorIs(t, err, mathkit.ErrInconsistentTriangle)
}

func TestSolveRightTriangle_AngleOutOfRange(t *testing.T) {
	_, err := mathkit.SolveRightTriangle(mathkit.TriangleInput{
		A: mathkit.Ptr(3), AngleA: mathkit.Ptr(90),
	})
	assert.ErrorIs(t, err, mathkit.ErrInconsistentTriangle)
}

func TestClassifySpecial_ScaledFamily(t *testing.T) {
	sol, err := mathkit.SolveRightTriangle(mathkit.TriangleInput{
		A: mathkit.Ptr(6), B: mathkit.Ptr(8),
	})
	require.NoError(t, err)
	assert.Equal(t, mathkit.Special345, sol.Special)
}

func TestClassifySpecial_None(t *testing.T) {
	sol, err := mathkit.SolveRightTriangle(mathkit.TriangleInput{
		A: mathkit.Ptr(2), B: mathkit.Ptr(9),
	})
	require.NoError(t, err)
	assert.Equal(t, mathkit.SpecialNone, sol.Special)
}

func TestSolveRightTriangle_PythagoreanInvariant(t *testing.T) {
	inputs := []mathkit.TriangleInput{
		{A: mathkit.Ptr(3), B: mathkit.Ptr(4)},
		{A: mathkit.Ptr(1), C: mathkit.Ptr(2)},
		{B: mathkit.Ptr(5), AngleB: mathkit.Ptr(70)},
		{C: mathkit.Ptr(8), AngleA: mathkit.Ptr(25)},
	}
	for _, in := range inputs {
		sol, err := mathkit.SolveRightTriangle(in)
		require.NoError(t, err)
		tri := sol.Triangle
		assert.InDelta(t, tri.C*tri.C, tri.A*tri.A+tri.B*tri.B, 1e-6)
		assert.InDelta(t, 90.0, tri.AngleA+tri.AngleB, 1e-9)
	}
}
