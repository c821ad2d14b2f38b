package mathkit

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Errors returned by the right-triangle solver. All are expected outcomes
// of user input, surfaced as values rather than panics.
var (
	ErrInsufficientData     = errors.New("insufficient data: at least two known values are required")
	ErrAnglesOnly           = errors.New("angles alone cannot determine a triangle: at least one side is required")
	ErrInconsistentTriangle = errors.New("inconsistent triangle")
)

// TriangleInput is a partially known right triangle: legs a and b, hypotenuse
// c, and the acute angles A (opposite a) and B (opposite b), in degrees.
// The right angle is implicit. nil marks an unknown.
type TriangleInput struct {
	A *float64 `json:"a"`
	B *float64 `json:"b"`
	C *float64 `json:"c"`
	// AngleA and AngleB are in degrees.
	AngleA *float64 `json:"angleA"`
	AngleB *float64 `json:"angleB"`
}

// Ptr wraps a value for use in TriangleInput.
func Ptr(v float64) *float64 { return &v }

// RightTriangle is a fully solved right triangle. Invariants: a² + b² = c²
// and A + B = 90° (within tolerance).
type RightTriangle struct {
	A      float64 `json:"a"`
	B      float64 `json:"b"`
	C      float64 `json:"c"`
	AngleA float64 `json:"angleA"`
	AngleB float64 `json:"angleB"`
}

// SolutionStep records one derivation in the solve trace: which unknown was
// found, the rule used, the rule in display form, and the substituted
// numeric calculation. The trace is a first-class output of the solver.
type SolutionStep struct {
	Finding     string `json:"finding"`
	FormulaName string `json:"formulaName"`
	Formula     string `json:"formula"`
	Calculation string `json:"calculation"`
}

// SpecialTriangle classifies a solved triangle against the well-known shapes.
type SpecialTriangle string

const (
	SpecialNone   SpecialTriangle = ""
	Special345    SpecialTriangle = "3-4-5"
	Special306090 SpecialTriangle = "30-60-90"
	Special454590 SpecialTriangle = "45-45-90"
)

// TriangleSolution is the solver output: the solved triangle, the ordered
// derivation trace, and any special-shape classification.
type TriangleSolution struct {
	Triangle RightTriangle   `json:"triangle"`
	Steps    []SolutionStep  `json:"steps"`
	Special  SpecialTriangle `json:"special,omitempty"`
}

// angleSideTol is the tolerance in degrees for checking a given angle
// against the angle the solved sides imply.
const angleSideTol = 1e-2

// fmtNum renders a value for step traces: rounded to four decimal places
// with float noise stripped.
func fmtNum(v float64) string {
	return decimal.NewFromFloat(v).Round(4).String()
}

// SolveRightTriangle fills in the unknowns of a partially specified right
// triangle, recording every derivation. It needs at least two known values,
// one of which must be a side; angles alone fix shape but not scale.
func SolveRightTriangle(in TriangleInput) (*TriangleSolution, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	s := &solveState{}
	s.set(&s.a, in.A)
	s.set(&s.b, in.B)
	s.set(&s.c, in.C)
	s.set(&s.angA, in.AngleA)
	s.set(&s.angB, in.AngleB)

	// Apply rules until nothing remains unknown. Each pass derives at
	// least one field, so five passes always suffice.
	for i := 0; i < 5 && !s.complete(); i++ {
		if !s.applyRule() {
			break
		}
	}
	if !s.complete() {
		return nil, ErrInsufficientData
	}

	tri := RightTriangle{A: s.a.v, B: s.b.v, C: s.c.v, AngleA: s.angA.v, AngleB: s.angB.v}
	if err := checkConsistency(tri, in); err != nil {
		return nil, err
	}

	return &TriangleSolution{
		Triangle: tri,
		Steps:    s.steps,
		Special:  ClassifySpecial(tri),
	}, nil
}

func validateInput(in TriangleInput) error {
	known := 0
	sides := 0
	for _, p := range []*float64{in.A, in.B, in.C} {
		if p != nil {
			known++
			sides++
			if *p <= 0 {
				return fmt.Errorf("%w: sides must be positive, got %s", ErrInconsistentTriangle, fmtNum(*p))
			}
		}
	}
	for _, p := range []*float64{in.AngleA, in.AngleB} {
		if p != nil {
			known++
			if *p <= 0 || *p >= 90 {
				return fmt.Errorf("%w: acute angles must lie in (0°, 90°), got %s°", ErrInconsistentTriangle, fmtNum(*p))
			}
		}
	}
	if known < 2 {
		return ErrInsufficientData
	}
	if sides == 0 {
		return ErrAnglesOnly
	}
	if in.AngleA != nil && in.AngleB != nil && math.Abs(*in.AngleA+*in.AngleB-90) > EpsAbs {
		return fmt.Errorf("%w: angles must sum to 90°, got %s° + %s°",
			ErrInconsistentTriangle, fmtNum(*in.AngleA), fmtNum(*in.AngleB))
	}
	if in.C != nil {
		for _, leg := range []*float64{in.A, in.B} {
			if leg != nil && *leg >= *in.C {
				return fmt.Errorf("%w: hypotenuse %s must exceed leg %s",
					ErrInconsistentTriangle, fmtNum(*in.C), fmtNum(*leg))
			}
		}
	}
	return nil
}

type field struct {
	v     float64
	known bool
}

type solveState struct {
	a, b, c    field
	angA, angB field
	steps      []SolutionStep
}

func (s *solveState) set(f *field, p *float64) {
	if p != nil {
		f.v, f.known = *p, true
	}
}

func (s *solveState) complete() bool {
	return s.a.known && s.b.known && s.c.known && s.angA.known && s.angB.known
}

func (s *solveState) found(f *field, v float64, finding, name, formula, calc string) {
	f.v, f.known = v, true
	s.steps = append(s.steps, SolutionStep{
		Finding:     finding,
		FormulaName: name,
		Formula:     formula,
		Calculation: calc,
	})
}

// applyRule derives one unknown from the current knowns. Returns false when
// no rule fires, which with valid input only happens on incomplete data.
func (s *solveState) applyRule() bool {
	switch {
	// Complementary angles.
	case s.angA.known && !s.angB.known:
		v := 90 - s.angA.v
		s.found(&s.angB, v, "angle B", "complementary angles", "B = 90° − A",
			fmt.Sprintf("B = 90° − %s° = %s°", fmtNum(s.angA.v), fmtNum(v)))
	case s.angB.known && !s.angA.known:
		v := 90 - s.angB.v
		s.found(&s.angA, v, "angle A", "complementary angles", "A = 90° − B",
			fmt.Sprintf("A = 90° − %s° = %s°", fmtNum(s.angB.v), fmtNum(v)))

	// Pythagorean theorem.
	case s.a.known && s.b.known && !s.c.known:
		v := math.Hypot(s.a.v, s.b.v)
		s.found(&s.c, v, "side c", "Pythagorean theorem", "c = √(a² + b²)",
			fmt.Sprintf("c = √(%s² + %s²) = %s", fmtNum(s.a.v), fmtNum(s.b.v), fmtNum(v)))
	case s.a.known && s.c.known && !s.b.known:
		v := math.Sqrt(s.c.v*s.c.v - s.a.v*s.a.v)
		s.found(&s.b, v, "side b", "Pythagorean theorem", "b = √(c² − a²)",
			fmt.Sprintf("b = √(%s² − %s²) = %s", fmtNum(s.c.v), fmtNum(s.a.v), fmtNum(v)))
	case s.b.known && s.c.known && !s.a.known:
		v := math.Sqrt(s.c.v*s.c.v - s.b.v*s.b.v)
		s.found(&s.a, v, "side a", "Pythagorean theorem", "a = √(c² − b²)",
			fmt.Sprintf("a = √(%s² − %s²) = %s", fmtNum(s.c.v), fmtNum(s.b.v), fmtNum(v)))

	// Angle from two sides.
	case s.a.known && s.b.known && !s.angA.known:
		v := deg(math.Atan2(s.a.v, s.b.v))
		s.found(&s.angA, v, "angle A", "tangent ratio", "A = atan(a / b)",
			fmt.Sprintf("A = atan(%s / %s) = %s°", fmtNum(s.a.v), fmtNum(s.b.v), fmtNum(v)))
	case s.a.known && s.c.known && !s.angA.known:
		v := deg(math.Asin(s.a.v / s.c.v))
		s.found(&s.angA, v, "angle A", "sine ratio", "A = asin(a / c)",
			fmt.Sprintf("A = asin(%s / %s) = %s°", fmtNum(s.a.v), fmtNum(s.c.v), fmtNum(v)))
	case s.b.known && s.c.known && !s.angA.known:
		v := deg(math.Acos(s.b.v / s.c.v))
		s.found(&s.angA, v, "angle A", "cosine ratio", "A = acos(b / c)",
			fmt.Sprintf("A = acos(%s / %s) = %s°", fmtNum(s.b.v), fmtNum(s.c.v), fmtNum(v)))

	// Side from side + angle (SOH-CAH-TOA).
	case s.a.known && s.angA.known && !s.c.known:
		v := s.a.v / math.Sin(rad(s.angA.v))
		s.found(&s.c, v, "side c", "sine ratio", "c = a / sin(A)",
			fmt.Sprintf("c = %s / sin(%s°) = %s", fmtNum(s.a.v), fmtNum(s.angA.v), fmtNum(v)))
	case s.a.known && s.angA.known && !s.b.known:
		v := s.a.v / math.Tan(rad(s.angA.v))
		s.found(&s.b, v, "side b", "tangent ratio", "b = a / tan(A)",
			fmt.Sprintf("b = %s / tan(%s°) = %s", fmtNum(s.a.v), fmtNum(s.angA.v), fmtNum(v)))
	case s.b.known && s.angA.known && !s.a.known:
		v := s.b.v * math.Tan(rad(s.angA.v))
		s.found(&s.a, v, "side a", "tangent ratio", "a = b · tan(A)",
			fmt.Sprintf("a = %s · tan(%s°) = %s", fmtNum(s.b.v), fmtNum(s.angA.v), fmtNum(v)))
	case s.b.known && s.angA.known && !s.c.known:
		v := s.b.v / math.Cos(rad(s.angA.v))
		s.found(&s.c, v, "side c", "cosine ratio", "c = b / cos(A)",
			fmt.Sprintf("c = %s / cos(%s°) = %s", fmtNum(s.b.v), fmtNum(s.angA.v), fmtNum(v)))
	case s.c.known && s.angA.known && !s.a.known:
		v := s.c.v * math.Sin(rad(s.angA.v))
		s.found(&s.a, v, "side a", "sine ratio", "a = c · sin(A)",
			fmt.Sprintf("a = %s · sin(%s°) = %s", fmtNum(s.c.v), fmtNum(s.angA.v), fmtNum(v)))
	case s.c.known && s.angA.known && !s.b.known:
		v := s.c.v * math.Cos(rad(s.angA.v))
		s.found(&s.b, v, "side b", "cosine ratio", "b = c · cos(A)",
			fmt.Sprintf("b = %s · cos(%s°) = %s", fmtNum(s.c.v), fmtNum(s.angA.v), fmtNum(v)))

	default:
		return false
	}
	return true
}

// checkConsistency verifies the solved triangle against its invariants and
// against every originally given value. Over-determined inputs that
// disagree with the derived values are rejected here.
func checkConsistency(t RightTriangle, in TriangleInput) error {
	if !approxEqual(t.A*t.A+t.B*t.B, t.C*t.C) {
		return fmt.Errorf("%w: a² + b² = %s but c² = %s",
			ErrInconsistentTriangle, fmtNum(t.A*t.A+t.B*t.B), fmtNum(t.C*t.C))
	}
	if math.Abs(t.AngleA+t.AngleB-90) > EpsAbs {
		return fmt.Errorf("%w: angles sum to %s°, expected 90°",
			ErrInconsistentTriangle, fmtNum(t.AngleA+t.AngleB))
	}
	// The angles must agree with the sides, not just with each other.
	// Display-grade tolerance: users type angles rounded to a few places
	// (A = 36.87 with legs 3 and 4 must still pass).
	derivedA := deg(math.Atan2(t.A, t.B))
	if math.Abs(derivedA-t.AngleA) > angleSideTol {
		return fmt.Errorf("%w: sides give angle A = %s° but angle A is %s°",
			ErrInconsistentTriangle, fmtNum(derivedA), fmtNum(t.AngleA))
	}
	givens := []struct {
		name   string
		given  *float64
		solved float64
	}{
		{"a", in.A, t.A}, {"b", in.B, t.B}, {"c", in.C, t.C},
		{"A", in.AngleA, t.AngleA}, {"B", in.AngleB, t.AngleB},
	}
	for _, g := range givens {
		if g.given != nil && !approxEqual(*g.given, g.solved) {
			return fmt.Errorf("%w: given %s = %s conflicts with derived %s",
				ErrInconsistentTriangle, g.name, fmtNum(*g.given), fmtNum(g.solved))
		}
	}
	return nil
}

// ClassifySpecial reports whether a solved triangle matches one of the
// classic shapes, within display tolerance. Side-ratio families (3-4-5)
// are detected up to uniform scale.
func ClassifySpecial(t RightTriangle) SpecialTriangle {
	angleNear := func(x, target float64) bool { return math.Abs(x-target) <= 1e-4 }
	switch {
	case angleNear(t.AngleA, 45) && angleNear(t.AngleB, 45):
		return Special454590
	case (angleNear(t.AngleA, 30) && angleNear(t.AngleB, 60)) ||
		(angleNear(t.AngleA, 60) && angleNear(t.AngleB, 30)):
		return Special306090
	}
	lo, hi := math.Min(t.A, t.B), math.Max(t.A, t.B)
	scale := t.C / 5
	if approxEqual(lo, 3*scale) && approxEqual(hi, 4*scale) {
		return Special345
	}
	return SpecialNone
}

func rad(degrees float64) float64 { return degrees * math.Pi / 180 }
func deg(radians float64) float64 { return radians * 180 / math.Pi }
