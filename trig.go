package mathkit

import "math"

// TrigValues are the decimal sin/cos/tan of an angle. Tan is nil at odd
// multiples of 90°, where the function has an asymptote; the engine never
// returns ±Inf or a huge finite stand-in.
type TrigValues struct {
	Sin float64  `json:"sin"`
	Cos float64  `json:"cos"`
	Tan *float64 `json:"tan"`
}

// ComputeTrigValues evaluates sin, cos and tan at an angle given in
// degrees. cos within EpsSingular of zero marks tan undefined.
func ComputeTrigValues(angleDeg float64) TrigValues {
	r := rad(angleDeg)
	sin, cos := math.Sincos(r)
	tv := TrigValues{Sin: sin, Cos: cos}
	if !nearZero(cos) {
		t := sin / cos
		tv.Tan = &t
	}
	return tv
}

// ExactTrigValues are the symbolic forms shown beside decimal values for
// the special angles. Tan is "undefined" at asymptotes.
type ExactTrigValues struct {
	Sin string `json:"sin"`
	Cos string `json:"cos"`
	Tan string `json:"tan"`
}

// exactTable holds symbolic values for every multiple of 30° and 45° in
// [0°, 360°). Static lookup data; do not mutate.
var exactTable = map[int]ExactTrigValues{
	0:   {"0", "1", "0"},
	30:  {"1/2", "√3/2", "√3/3"},
	45:  {"√2/2", "√2/2", "1"},
	60:  {"√3/2", "1/2", "√3"},
	90:  {"1", "0", "undefined"},
	120: {"√3/2", "-1/2", "-√3"},
	135: {"√2/2", "-√2/2", "-1"},
	150: {"1/2", "-√3/2", "-√3/3"},
	180: {"0", "-1", "0"},
	210: {"-1/2", "-√3/2", "√3/3"},
	225: {"-√2/2", "-√2/2", "1"},
	240: {"-√3/2", "-1/2", "√3"},
	270: {"-1", "0", "undefined"},
	300: {"-√3/2", "1/2", "-√3"},
	315: {"-√2/2", "√2/2", "-1"},
	330: {"-1/2", "√3/2", "-√3/3"},
}

// ExactValuesFor returns the symbolic trig values when the angle is (within
// tolerance) one of the special angles, and ok=false otherwise.
func ExactValuesFor(angleDeg float64) (ExactTrigValues, bool) {
	n := NormalizeDegrees(angleDeg)
	k := int(math.Round(n))
	if math.Abs(n-float64(k)) > EpsAbs {
		return ExactTrigValues{}, false
	}
	v, ok := exactTable[k%360]
	return v, ok
}

// NormalizeDegrees maps an angle to [0°, 360°).
func NormalizeDegrees(angleDeg float64) float64 {
	n := math.Mod(angleDeg, 360)
	if n < 0 {
		n += 360
	}
	return n
}

// Quadrant numbers the plane 1-4 counterclockwise from the positive x axis.
// QuadrantOnAxis (0) marks angles lying on an axis, which belong to no
// quadrant; the boundary convention is explicit rather than inherited from
// rounding.
type Quadrant int

const QuadrantOnAxis Quadrant = 0

// QuadrantOf classifies an angle in degrees. Exact multiples of 90°
// (within tolerance) are on-axis.
func QuadrantOf(angleDeg float64) Quadrant {
	n := NormalizeDegrees(angleDeg)
	if math.Abs(math.Remainder(n, 90)) <= EpsAbs {
		return QuadrantOnAxis
	}
	return Quadrant(int(n/90) + 1)
}

// QuadrantSigns are the signs of sin, cos and tan in a quadrant.
type QuadrantSigns struct {
	Sin int `json:"sin"`
	Cos int `json:"cos"`
	Tan int `json:"tan"`
}

// SignsFor returns the sign pattern of a quadrant ("All Students Take
// Calculus"); ok is false for on-axis input, where one of the functions is
// zero or undefined.
func SignsFor(q Quadrant) (QuadrantSigns, bool) {
	switch q {
	case 1:
		return QuadrantSigns{1, 1, 1}, true
	case 2:
		return QuadrantSigns{1, -1, -1}, true
	case 3:
		return QuadrantSigns{-1, -1, 1}, true
	case 4:
		return QuadrantSigns{-1, 1, -1}, true
	default:
		return QuadrantSigns{}, false
	}
}

// ReferenceAngle returns the acute angle between the terminal side and the
// x axis, in degrees.
func ReferenceAngle(angleDeg float64) float64 {
	n := NormalizeDegrees(angleDeg)
	switch {
	case n <= 90:
		return n
	case n <= 180:
		return 180 - n
	case n <= 270:
		return n - 180
	default:
		return 360 - n
	}
}
