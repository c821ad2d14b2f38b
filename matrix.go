package mathkit

import "math"

// Mat2 is a 2×2 linear transformation in row-major order:
//
//	| M[0][0] M[0][1] |
//	| M[1][0] M[1][1] |
type Mat2 [2][2]float64

// Identity2 returns the 2×2 identity.
func Identity2() Mat2 { return Mat2{{1, 0}, {0, 1}} }

// Rotation2 returns a counterclockwise rotation by theta radians.
func Rotation2(theta float64) Mat2 {
	c, s := math.Cos(theta), math.Sin(theta)
	return Mat2{{c, -s}, {s, c}}
}

// Scale2 scales by sx along x and sy along y.
func Scale2(sx, sy float64) Mat2 { return Mat2{{sx, 0}, {0, sy}} }

// UniformScale2 scales both axes by s.
func UniformScale2(s float64) Mat2 { return Scale2(s, s) }

// ShearX2 shears parallel to the x axis by factor k.
func ShearX2(k float64) Mat2 { return Mat2{{1, k}, {0, 1}} }

// ShearY2 shears parallel to the y axis by factor k.
func ShearY2(k float64) Mat2 { return Mat2{{1, 0}, {k, 1}} }

// ReflectX2 reflects across the x axis.
func ReflectX2() Mat2 { return Mat2{{1, 0}, {0, -1}} }

// ReflectY2 reflects across the y axis.
func ReflectY2() Mat2 { return Mat2{{-1, 0}, {0, 1}} }

// ReflectOrigin2 reflects through the origin.
func ReflectOrigin2() Mat2 { return Mat2{{-1, 0}, {0, -1}} }

// Apply transforms a vector: M·v.
func (m Mat2) Apply(v Vec2) Vec2 {
	return Vec2{
		X: m[0][0]*v.X + m[0][1]*v.Y,
		Y: m[1][0]*v.X + m[1][1]*v.Y,
	}
}

// Mul composes transformations: (m·n)·v = m·(n·v).
func (m Mat2) Mul(n Mat2) Mat2 {
	var out Mat2
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			out[i][j] = m[i][0]*n[0][j] + m[i][1]*n[1][j]
		}
	}
	return out
}

// Det returns ad − bc, the signed area scale factor.
func (m Mat2) Det() float64 {
	return m[0][0]*m[1][1] - m[0][1]*m[1][0]
}

// Transpose returns Mᵀ.
func (m Mat2) Transpose() Mat2 {
	return Mat2{{m[0][0], m[1][0]}, {m[0][1], m[1][1]}}
}

// IsOrthogonal reports whether MᵀM ≈ I, i.e. the transform preserves
// lengths and angles.
func (m Mat2) IsOrthogonal() bool {
	p := m.Transpose().Mul(m)
	i2 := Identity2()
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			if math.Abs(p[r][c]-i2[r][c]) > EpsAbs {
				return false
			}
		}
	}
	return true
}

// UnitSquareImage is the image of the unit square and the basis vectors
// under a 2D transform, the picture the matrix explorer draws.
type UnitSquareImage struct {
	Corners [4]Vec2 `json:"corners"`
	BasisI  Vec2    `json:"basisI"`
	BasisJ  Vec2    `json:"basisJ"`
}

// TransformUnitSquare maps (0,0), (1,0), (1,1), (0,1) and the basis
// vectors through m.
func TransformUnitSquare(m Mat2) UnitSquareImage {
	return UnitSquareImage{
		Corners: [4]Vec2{
			m.Apply(V2(0, 0)),
			m.Apply(V2(1, 0)),
			m.Apply(V2(1, 1)),
			m.Apply(V2(0, 1)),
		},
		BasisI: m.Apply(V2(1, 0)),
		BasisJ: m.Apply(V2(0, 1)),
	}
}

// Mat3 is a 3×3 linear transformation in row-major order.
type Mat3 [3][3]float64

// Identity3 returns the 3×3 identity.
func Identity3() Mat3 {
	return Mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// RotationX3 rotates about the x axis by theta radians.
func RotationX3(theta float64) Mat3 {
	c, s := math.Cos(theta), math.Sin(theta)
	return Mat3{{1, 0, 0}, {0, c, -s}, {0, s, c}}
}

// RotationY3 rotates about the y axis by theta radians.
func RotationY3(theta float64) Mat3 {
	c, s := math.Cos(theta), math.Sin(theta)
	return Mat3{{c, 0, s}, {0, 1, 0}, {-s, 0, c}}
}

// RotationZ3 rotates about the z axis by theta radians.
func RotationZ3(theta float64) Mat3 {
	c, s := math.Cos(theta), math.Sin(theta)
	return Mat3{{c, -s, 0}, {s, c, 0}, {0, 0, 1}}
}

// Scale3 scales each axis independently.
func Scale3(sx, sy, sz float64) Mat3 {
	return Mat3{{sx, 0, 0}, {0, sy, 0}, {0, 0, sz}}
}

// CombinedRotation3 composes the axis rotations as Rz·Ry·Rx, the order the
// 3D explorer applies its sliders.
func CombinedRotation3(rx, ry, rz float64) Mat3 {
	return RotationZ3(rz).Mul(RotationY3(ry)).Mul(RotationX3(rx))
}

// Apply transforms a vector: M·v.
func (m Mat3) Apply(v Vec3) Vec3 {
	return Vec3{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// Mul composes transformations.
func (m Mat3) Mul(n Mat3) Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				out[i][j] += m[i][k] * n[k][j]
			}
		}
	}
	return out
}

// Det returns the determinant by cofactor expansion along the first row.
func (m Mat3) Det() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Transpose returns Mᵀ.
func (m Mat3) Transpose() Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = m[j][i]
		}
	}
	return out
}

// IsOrthogonal reports whether MᵀM ≈ I.
func (m Mat3) IsOrthogonal() bool {
	p := m.Transpose().Mul(m)
	i3 := Identity3()
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if math.Abs(p[r][c]-i3[r][c]) > EpsAbs {
				return false
			}
		}
	}
	return true
}

// DeterminantInterpretation is the explorer's plain-language reading of a
// determinant value.
type DeterminantInterpretation struct {
	Singular         bool   `json:"singular"`
	ReversesOrient   bool   `json:"reversesOrientation"`
	PreservesMeasure bool   `json:"preservesMeasure"`
	Description      string `json:"description"`
}

// InterpretDeterminant classifies det: ≈0 collapses space, negative flips
// orientation, |det| ≈ 1 preserves area/volume.
func InterpretDeterminant(det float64) DeterminantInterpretation {
	out := DeterminantInterpretation{
		Singular:         nearZero(det),
		ReversesOrient:   det < -EpsSingular,
		PreservesMeasure: approxEqual(math.Abs(det), 1),
	}
	switch {
	case out.Singular:
		out.Description = "collapses space onto a line or point (singular)"
	case out.ReversesOrient && out.PreservesMeasure:
		out.Description = "preserves area/volume but reverses orientation"
	case out.ReversesOrient:
		out.Description = "reverses orientation"
	case out.PreservesMeasure:
		out.Description = "preserves area/volume"
	default:
		out.Description = "scales area/volume by |det|"
	}
	return out
}
