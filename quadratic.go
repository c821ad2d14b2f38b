package mathkit

import "math"

// Coefficients are the a, b, c of y = ax² + bx + c.
type Coefficients struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
	C float64 `json:"c"`
}

// IsValidQuadratic reports whether the coefficients describe a true
// quadratic. a == 0 degrades to a linear equation, which this analyzer
// does not handle; callers fall back to SolveLinear.
func (c Coefficients) IsValidQuadratic() bool {
	return c.A != 0
}

// RootType classifies a quadratic by the sign of its discriminant.
type RootType string

const (
	TwoReal    RootType = "two-real"
	OneReal    RootType = "one-real"
	TwoComplex RootType = "two-complex"
)

// DiscriminantResult carries b²-4ac and the root classification it implies.
// A discriminant within EpsAbs of zero counts as zero.
type DiscriminantResult struct {
	Value    float64  `json:"value"`
	RootType RootType `json:"rootType"`
}

// Discriminant computes b²-4ac and classifies the roots.
func Discriminant(c Coefficients) DiscriminantResult {
	d := c.B*c.B - 4*c.A*c.C
	switch {
	case math.Abs(d) <= EpsAbs:
		return DiscriminantResult{Value: d, RootType: OneReal}
	case d > 0:
		return DiscriminantResult{Value: d, RootType: TwoReal}
	default:
		return DiscriminantResult{Value: d, RootType: TwoComplex}
	}
}

// Roots holds the real roots of a quadratic. Complex-root quadratics are
// tagged TwoComplex with an empty Real slice.
type Roots struct {
	Type RootType  `json:"type"`
	Real []float64 `json:"roots"`
}

// SolveQuadratic finds the real roots of ax² + bx + c = 0, a ≠ 0.
//
// The two-root branch avoids catastrophic cancellation: the root whose
// numerator adds in the direction of b is computed first via copysign,
// and the companion root follows from the product r1·r2 = c/a.
func SolveQuadratic(c Coefficients) Roots {
	d := Discriminant(c)
	switch d.RootType {
	case OneReal:
		return Roots{Type: OneReal, Real: []float64{-c.B / (2 * c.A)}}
	case TwoComplex:
		return Roots{Type: TwoComplex, Real: []float64{}}
	}

	q := -0.5 * (c.B + math.Copysign(math.Sqrt(d.Value), c.B))
	r1 := q / c.A
	r2 := c.C / q
	if r1 > r2 {
		r1, r2 = r2, r1
	}
	return Roots{Type: TwoReal, Real: []float64{r1, r2}}
}

// SolveLinear solves bx + c = 0, the caller-level fallback when a == 0.
// Returns ok=false for the degenerate b == 0.
func SolveLinear(b, c float64) (root float64, ok bool) {
	if b == 0 {
		return 0, false
	}
	return -c / b, true
}

// Evaluate computes y = ax² + bx + c at x.
func Evaluate(c Coefficients, x float64) float64 {
	return c.A*x*x + c.B*x + c.C
}

// Vertex is the turning point of a parabola: x = -b/2a, y = f(x).
type Vertex struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// VertexOf computes the vertex of a valid quadratic.
func VertexOf(c Coefficients) Vertex {
	x := -c.B / (2 * c.A)
	return Vertex{X: x, Y: Evaluate(c, x)}
}

// VertexForm expresses the quadratic as y = a(x-h)² + k.
type VertexForm struct {
	A float64 `json:"a"`
	H float64 `json:"h"`
	K float64 `json:"k"`
}

// ToVertexForm rewrites standard form into vertex form.
func ToVertexForm(c Coefficients) VertexForm {
	v := VertexOf(c)
	return VertexForm{A: c.A, H: v.X, K: v.Y}
}

// Evaluate computes y = a(x-h)² + k at x.
func (f VertexForm) Evaluate(x float64) float64 {
	dx := x - f.H
	return f.A*dx*dx + f.K
}

// FactoredForm expresses the quadratic as y = a(x-r1)(x-r2); it exists only
// when real roots do.
type FactoredForm struct {
	A  float64 `json:"a"`
	R1 float64 `json:"r1"`
	R2 float64 `json:"r2"`
}

// ToFactoredForm rewrites standard form into factored form, or nil when the
// roots are complex. A repeated root yields r1 == r2.
func ToFactoredForm(c Coefficients) *FactoredForm {
	roots := SolveQuadratic(c)
	switch roots.Type {
	case TwoReal:
		return &FactoredForm{A: c.A, R1: roots.Real[0], R2: roots.Real[1]}
	case OneReal:
		return &FactoredForm{A: c.A, R1: roots.Real[0], R2: roots.Real[0]}
	default:
		return nil
	}
}

// Evaluate computes y = a(x-r1)(x-r2) at x.
func (f FactoredForm) Evaluate(x float64) float64 {
	return f.A * (x - f.R1) * (x - f.R2)
}

// ParabolaPoints samples the curve at n+1 evenly spaced x values across
// [xMin, xMax], for plotting.
func ParabolaPoints(c Coefficients, xMin, xMax float64, n int) []Vertex {
	if n < 1 || xMax <= xMin {
		return nil
	}
	pts := make([]Vertex, 0, n+1)
	step := (xMax - xMin) / float64(n)
	for i := 0; i <= n; i++ {
		x := xMin + float64(i)*step
		pts = append(pts, Vertex{X: x, Y: Evaluate(c, x)})
	}
	return pts
}
