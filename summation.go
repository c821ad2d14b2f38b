package mathkit

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// TermFunc produces the i-th term of a summation.
type TermFunc func(i int) float64

// SummationResult is the outcome of iterating a Σ expression.
// Total always equals the sum of Terms; an empty range (start > end)
// yields the empty sum {0, nil-length, 0}.
type SummationResult struct {
	Total     float64   `json:"total"`
	Terms     []float64 `json:"terms"`
	TermCount int       `json:"termCount"`
}

// EvaluateSummation iterates term(i) for i in [start, end] inclusive.
// start > end is the empty sum, a defined result rather than an error.
func EvaluateSummation(term TermFunc, start, end int) SummationResult {
	if start > end {
		return SummationResult{Total: 0, Terms: []float64{}, TermCount: 0}
	}
	terms := make([]float64, 0, end-start+1)
	for i := start; i <= end; i++ {
		terms = append(terms, term(i))
	}
	return SummationResult{
		Total:     floats.Sum(terms),
		Terms:     terms,
		TermCount: len(terms),
	}
}

// SumArithmetic returns Σ_{i=1}^{n} i = n(n+1)/2.
func SumArithmetic(n int) float64 {
	fn := float64(n)
	return fn * (fn + 1) / 2
}

// SumSquares returns Σ_{i=1}^{n} i² = n(n+1)(2n+1)/6.
func SumSquares(n int) float64 {
	fn := float64(n)
	return fn * (fn + 1) * (2*fn + 1) / 6
}

// SumCubes returns Σ_{i=1}^{n} i³ = [n(n+1)/2]².
func SumCubes(n int) float64 {
	s := SumArithmetic(n)
	return s * s
}

// SumGeometric returns Σ_{i=0}^{n-1} a·rⁱ. The ratio-one series degenerates
// to a·n; the closed form a(1-rⁿ)/(1-r) would divide by zero there.
func SumGeometric(a, r float64, n int) float64 {
	if n <= 0 {
		return 0
	}
	if approxEqual(r, 1) {
		return a * float64(n)
	}
	return a * (1 - math.Pow(r, float64(n))) / (1 - r)
}

// FormulaFunc is a closed-form companion to a summation: an O(1)
// expression for the total of the first n terms.
type FormulaFunc func(n int) float64

// Comparison holds a loop total and a closed-form total for the same n,
// with equality decided under the shared tolerance so floating-point
// accumulation differences are not misread as mismatches.
type Comparison struct {
	LoopTotal    float64 `json:"loopTotal"`
	FormulaTotal float64 `json:"formulaTotal"`
	Match        bool    `json:"match"`
}

// CompareLoopVsFormula evaluates term over [1, n] iteratively and via the
// closed form, reporting both totals and whether they agree.
func CompareLoopVsFormula(term TermFunc, n int, formula FormulaFunc) Comparison {
	loop := EvaluateSummation(term, 1, n).Total
	closed := formula(n)
	return Comparison{
		LoopTotal:    loop,
		FormulaTotal: closed,
		Match:        approxEqual(loop, closed),
	}
}

// SummationPreset pairs a term function with its closed-form companion and
// the display strings the teaching widgets show next to it.
type SummationPreset struct {
	Name    string
	Sigma   string
	Formula string
	Term    TermFunc
	Closed  FormulaFunc
}

// SummationPresets is the fixed set of Σ expressions offered by the
// summation explorer. Static lookup data; do not mutate.
var SummationPresets = []SummationPreset{
	{
		Name:    "identity",
		Sigma:   "Σ i",
		Formula: "n(n+1)/2",
		Term:    func(i int) float64 { return float64(i) },
		Closed:  SumArithmetic,
	},
	{
		Name:    "squares",
		Sigma:   "Σ i²",
		Formula: "n(n+1)(2n+1)/6",
		Term:    func(i int) float64 { return float64(i) * float64(i) },
		Closed:  SumSquares,
	},
	{
		Name:    "cubes",
		Sigma:   "Σ i³",
		Formula: "[n(n+1)/2]²",
		Term:    func(i int) float64 { return float64(i) * float64(i) * float64(i) },
		Closed:  SumCubes,
	},
	{
		Name:    "constant",
		Sigma:   "Σ 1",
		Formula: "n",
		Term:    func(i int) float64 { return 1 },
		Closed:  func(n int) float64 { return float64(n) },
	},
	{
		Name:    "halves",
		Sigma:   "Σ (1/2)ⁱ",
		Formula: "a(1-rⁿ)/(1-r)",
		Term:    func(i int) float64 { return math.Pow(0.5, float64(i)) },
		Closed:  func(n int) float64 { return SumGeometric(0.5, 0.5, n) },
	},
}

// PresetByName returns the named summation preset, or nil when unknown.
func PresetByName(name string) *SummationPreset {
	for i := range SummationPresets {
		if SummationPresets[i].Name == name {
			return &SummationPresets[i]
		}
	}
	return nil
}
