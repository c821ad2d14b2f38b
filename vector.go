package mathkit

import "math"

// Vec2 is a 2D vector.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// V2 is a convenience constructor.
func V2(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

// Add returns v + w.
func (v Vec2) Add(w Vec2) Vec2 { return Vec2{v.X + w.X, v.Y + w.Y} }

// Sub returns v − w.
func (v Vec2) Sub(w Vec2) Vec2 { return Vec2{v.X - w.X, v.Y - w.Y} }

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Dot returns the dot product v · w.
func (v Vec2) Dot(w Vec2) float64 { return v.X*w.X + v.Y*w.Y }

// Cross returns the z-component of the 3D cross product with z = 0.
// Its sign gives the orientation of w relative to v; zero means parallel.
func (v Vec2) Cross(w Vec2) float64 { return v.X*w.Y - v.Y*w.X }

// Norm returns the magnitude |v|.
func (v Vec2) Norm() float64 { return math.Hypot(v.X, v.Y) }

// Normalize returns the unit vector in the direction of v. ok is false for
// a near-zero vector, where the direction is undefined; the zero vector is
// returned in that case.
func (v Vec2) Normalize() (unit Vec2, ok bool) {
	n := v.Norm()
	if nearZero(n) {
		return Vec2{}, false
	}
	return Vec2{v.X / n, v.Y / n}, true
}

// AngleBetween returns the angle between v and w in radians, in [0, π].
// ok is false when either vector is near zero. The cosine is clamped to
// [-1, 1] before acos; floating-point overshoot must not produce NaN.
func (v Vec2) AngleBetween(w Vec2) (theta float64, ok bool) {
	nv, nw := v.Norm(), w.Norm()
	if nearZero(nv) || nearZero(nw) {
		return 0, false
	}
	return math.Acos(clamp(v.Dot(w)/(nv*nw), -1, 1)), true
}

// IsParallel reports whether v and w span the same line, within tolerance.
func (v Vec2) IsParallel(w Vec2) bool {
	return math.Abs(v.Cross(w)) <= EpsAbs
}

// IsPerpendicular reports whether v · w ≈ 0.
func (v Vec2) IsPerpendicular(w Vec2) bool {
	return math.Abs(v.Dot(w)) <= EpsAbs
}

// Vec3 is a 3D vector.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// V3 is a convenience constructor.
func V3(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }

// Add returns v + w.
func (v Vec3) Add(w Vec3) Vec3 { return Vec3{v.X + w.X, v.Y + w.Y, v.Z + w.Z} }

// Sub returns v − w.
func (v Vec3) Sub(w Vec3) Vec3 { return Vec3{v.X - w.X, v.Y - w.Y, v.Z - w.Z} }

// Scale returns v scaled by s.
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Dot returns the dot product v · w.
func (v Vec3) Dot(w Vec3) float64 { return v.X*w.X + v.Y*w.Y + v.Z*w.Z }

// Cross returns v × w, a vector perpendicular to both inputs.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// Norm returns the magnitude |v|.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns the unit vector in the direction of v; ok is false for
// a near-zero vector.
func (v Vec3) Normalize() (unit Vec3, ok bool) {
	n := v.Norm()
	if nearZero(n) {
		return Vec3{}, false
	}
	return Vec3{v.X / n, v.Y / n, v.Z / n}, true
}

// AngleBetween returns the angle between v and w in radians, in [0, π];
// ok is false when either vector is near zero.
func (v Vec3) AngleBetween(w Vec3) (theta float64, ok bool) {
	nv, nw := v.Norm(), w.Norm()
	if nearZero(nv) || nearZero(nw) {
		return 0, false
	}
	return math.Acos(clamp(v.Dot(w)/(nv*nw), -1, 1)), true
}

// IsParallel reports whether v × w ≈ 0.
func (v Vec3) IsParallel(w Vec3) bool {
	return v.Cross(w).Norm() <= EpsAbs
}

// IsPerpendicular reports whether v · w ≈ 0.
func (v Vec3) IsPerpendicular(w Vec3) bool {
	return math.Abs(v.Dot(w)) <= EpsAbs
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
