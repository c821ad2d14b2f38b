package mathkit

import (
	"math"

	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/floats/scalar"
)

// ProofStep is one line of an identity's derivation, for display alongside
// the numeric check.
type ProofStep struct {
	Expression    string `json:"expression"`
	Justification string `json:"justification"`
}

// sideFunc evaluates one side of an identity at angles θ and φ (degrees).
// ok is false when the evaluation hits an asymptote.
type sideFunc func(theta, phi float64) (float64, bool)

// TrigIdentity is a named identity with its display forms and a numeric
// evaluator for each side. Single-angle identities ignore the second angle.
type TrigIdentity struct {
	ID         string      `json:"id"`
	Category   string      `json:"category"`
	LatexLeft  string      `json:"latexLeft"`
	LatexRight string      `json:"latexRight"`
	TwoAngle   bool        `json:"twoAngle"`
	ProofSteps []ProofStep `json:"proofSteps"`

	left  sideFunc
	right sideFunc
}

// VerificationResult is the outcome of evaluating both sides of an identity
// at concrete angles. A Note flags singular inputs, where inequality does
// not disprove the identity.
type VerificationResult struct {
	LeftFormatted  string `json:"leftSideFormatted"`
	RightFormatted string `json:"rightSideFormatted"`
	IsEqual        bool   `json:"isEqual"`
	Note           string `json:"note,omitempty"`
}

func sinD(d float64) float64 { return math.Sin(rad(d)) }
func cosD(d float64) float64 { return math.Cos(rad(d)) }

// tanD returns tan of an angle in degrees, ok=false at asymptotes.
func tanD(d float64) (float64, bool) {
	c := cosD(d)
	if nearZero(c) {
		return 0, false
	}
	return sinD(d) / c, true
}

func fin(v float64) (float64, bool) { return v, true }

// identities is the registry behind the identity explorer. Static lookup
// data; do not mutate.
var identities = []TrigIdentity{
	{
		ID:         "pythagorean",
		Category:   "pythagorean",
		LatexLeft:  `\sin^2\theta + \cos^2\theta`,
		LatexRight: `1`,
		ProofSteps: []ProofStep{
			{`x^2 + y^2 = r^2`, "point on the terminal side, distance r from origin"},
			{`(x/r)^2 + (y/r)^2 = 1`, "divide both sides by r²"},
			{`\cos^2\theta + \sin^2\theta = 1`, "definitions of sine and cosine"},
		},
		left:  func(t, _ float64) (float64, bool) { s, c := sinD(t), cosD(t); return fin(s*s + c*c) },
		right: func(_, _ float64) (float64, bool) { return fin(1) },
	},
	{
		ID:         "pythagorean-tan",
		Category:   "pythagorean",
		LatexLeft:  `1 + \tan^2\theta`,
		LatexRight: `\sec^2\theta`,
		ProofSteps: []ProofStep{
			{`\sin^2\theta + \cos^2\theta = 1`, "Pythagorean identity"},
			{`\tan^2\theta + 1 = \sec^2\theta`, "divide through by cos²θ"},
		},
		left: func(t, _ float64) (float64, bool) {
			tn, ok := tanD(t)
			if !ok {
				return 0, false
			}
			return fin(1 + tn*tn)
		},
		right: func(t, _ float64) (float64, bool) {
			c := cosD(t)
			if nearZero(c) {
				return 0, false
			}
			return fin(1 / (c * c))
		},
	},
	{
		ID:         "pythagorean-cot",
		Category:   "pythagorean",
		LatexLeft:  `1 + \cot^2\theta`,
		LatexRight: `\csc^2\theta`,
		ProofSteps: []ProofStep{
			{`\sin^2\theta + \cos^2\theta = 1`, "Pythagorean identity"},
			{`1 + \cot^2\theta = \csc^2\theta`, "divide through by sin²θ"},
		},
		left: func(t, _ float64) (float64, bool) {
			s := sinD(t)
			if nearZero(s) {
				return 0, false
			}
			c := cosD(t)
			return fin(1 + (c*c)/(s*s))
		},
		right: func(t, _ float64) (float64, bool) {
			s := sinD(t)
			if nearZero(s) {
				return 0, false
			}
			return fin(1 / (s * s))
		},
	},
	{
		ID:         "sin-sum",
		Category:   "sum-difference",
		LatexLeft:  `\sin(A + B)`,
		LatexRight: `\sin A \cos B + \cos A \sin B`,
		TwoAngle:   true,
		ProofSteps: []ProofStep{
			{`\sin(A+B)`, "angle addition on the unit circle"},
			{`\sin A \cos B + \cos A \sin B`, "project the rotated coordinates"},
		},
		left:  func(a, b float64) (float64, bool) { return fin(sinD(a + b)) },
		right: func(a, b float64) (float64, bool) { return fin(sinD(a)*cosD(b) + cosD(a)*sinD(b)) },
	},
	{
		ID:         "sin-difference",
		Category:   "sum-difference",
		LatexLeft:  `\sin(A - B)`,
		LatexRight: `\sin A \cos B - \cos A \sin B`,
		TwoAngle:   true,
		ProofSteps: []ProofStep{
			{`\sin(A-B) = \sin(A+(-B))`, "rewrite as a sum"},
			{`\sin A \cos B - \cos A \sin B`, "sine is odd, cosine is even"},
		},
		left:  func(a, b float64) (float64, bool) { return fin(sinD(a - b)) },
		right: func(a, b float64) (float64, bool) { return fin(sinD(a)*cosD(b) - cosD(a)*sinD(b)) },
	},
	{
		ID:         "cos-sum",
		Category:   "sum-difference",
		LatexLeft:  `\cos(A + B)`,
		LatexRight: `\cos A \cos B - \sin A \sin B`,
		TwoAngle:   true,
		ProofSteps: []ProofStep{
			{`\cos(A+B)`, "angle addition on the unit circle"},
			{`\cos A \cos B - \sin A \sin B`, "project the rotated coordinates"},
		},
		left:  func(a, b float64) (float64, bool) { return fin(cosD(a + b)) },
		right: func(a, b float64) (float64, bool) { return fin(cosD(a)*cosD(b) - sinD(a)*sinD(b)) },
	},
	{
		ID:         "cos-difference",
		Category:   "sum-difference",
		LatexLeft:  `\cos(A - B)`,
		LatexRight: `\cos A \cos B + \sin A \sin B`,
		TwoAngle:   true,
		ProofSteps: []ProofStep{
			{`\cos(A-B) = \cos(A+(-B))`, "rewrite as a sum"},
			{`\cos A \cos B + \sin A \sin B`, "sine is odd, cosine is even"},
		},
		left:  func(a, b float64) (float64, bool) { return fin(cosD(a - b)) },
		right: func(a, b float64) (float64, bool) { return fin(cosD(a)*cosD(b) + sinD(a)*sinD(b)) },
	},
	{
		ID:         "tan-sum",
		Category:   "sum-difference",
		LatexLeft:  `\tan(A + B)`,
		LatexRight: `\frac{\tan A + \tan B}{1 - \tan A \tan B}`,
		TwoAngle:   true,
		ProofSteps: []ProofStep{
			{`\tan(A+B) = \frac{\sin(A+B)}{\cos(A+B)}`, "definition of tangent"},
			{`\frac{\tan A + \tan B}{1 - \tan A \tan B}`, "expand and divide by cos A cos B"},
		},
		left: func(a, b float64) (float64, bool) {
			return tanD(a + b)
		},
		right: func(a, b float64) (float64, bool) {
			ta, okA := tanD(a)
			tb, okB := tanD(b)
			if !okA || !okB {
				return 0, false
			}
			den := 1 - ta*tb
			if nearZero(den) {
				return 0, false
			}
			return fin((ta + tb) / den)
		},
	},
	{
		ID:         "sin-double",
		Category:   "double-angle",
		LatexLeft:  `\sin(2\theta)`,
		LatexRight: `2 \sin\theta \cos\theta`,
		ProofSteps: []ProofStep{
			{`\sin(2\theta) = \sin(\theta + \theta)`, "double angle as a sum"},
			{`2\sin\theta\cos\theta`, "sine sum identity with A = B = θ"},
		},
		left:  func(t, _ float64) (float64, bool) { return fin(sinD(2 * t)) },
		right: func(t, _ float64) (float64, bool) { return fin(2 * sinD(t) * cosD(t)) },
	},
	{
		ID:         "cos-double",
		Category:   "double-angle",
		LatexLeft:  `\cos(2\theta)`,
		LatexRight: `\cos^2\theta - \sin^2\theta`,
		ProofSteps: []ProofStep{
			{`\cos(2\theta) = \cos(\theta + \theta)`, "double angle as a sum"},
			{`\cos^2\theta - \sin^2\theta`, "cosine sum identity with A = B = θ"},
		},
		left:  func(t, _ float64) (float64, bool) { return fin(cosD(2 * t)) },
		right: func(t, _ float64) (float64, bool) { s, c := sinD(t), cosD(t); return fin(c*c - s*s) },
	},
	{
		ID:         "cos-double-sin",
		Category:   "double-angle",
		LatexLeft:  `\cos(2\theta)`,
		LatexRight: `1 - 2\sin^2\theta`,
		ProofSteps: []ProofStep{
			{`\cos(2\theta) = \cos^2\theta - \sin^2\theta`, "double angle identity"},
			{`1 - 2\sin^2\theta`, "substitute cos²θ = 1 − sin²θ"},
		},
		left:  func(t, _ float64) (float64, bool) { return fin(cosD(2 * t)) },
		right: func(t, _ float64) (float64, bool) { s := sinD(t); return fin(1 - 2*s*s) },
	},
	{
		ID:         "tan-double",
		Category:   "double-angle",
		LatexLeft:  `\tan(2\theta)`,
		LatexRight: `\frac{2\tan\theta}{1 - \tan^2\theta}`,
		ProofSteps: []ProofStep{
			{`\tan(2\theta) = \tan(\theta + \theta)`, "double angle as a sum"},
			{`\frac{2\tan\theta}{1 - \tan^2\theta}`, "tangent sum identity with A = B = θ"},
		},
		left: func(t, _ float64) (float64, bool) {
			return tanD(2 * t)
		},
		right: func(t, _ float64) (float64, bool) {
			tn, ok := tanD(t)
			if !ok {
				return 0, false
			}
			den := 1 - tn*tn
			if nearZero(den) {
				return 0, false
			}
			return fin(2 * tn / den)
		},
	},
}

// Identities returns the identity registry in display order.
func Identities() []TrigIdentity {
	out := make([]TrigIdentity, len(identities))
	copy(out, identities)
	return out
}

// IdentityByID finds an identity by its id, or nil when unknown.
func IdentityByID(id string) *TrigIdentity {
	for i := range identities {
		if identities[i].ID == id {
			return &identities[i]
		}
	}
	return nil
}

// fmtVerify renders a side value for the verification display.
func fmtVerify(v float64) string {
	return decimal.NewFromFloat(v).Round(6).String()
}

// Verify evaluates both sides of the identity at θ (and φ for two-angle
// identities) and compares within EpsIdentity. When either side hits an
// asymptote, the result carries an explanatory note instead of being
// reported as a plain failure.
func (id *TrigIdentity) Verify(thetaDeg, phiDeg float64) VerificationResult {
	lv, lok := id.left(thetaDeg, phiDeg)
	rv, rok := id.right(thetaDeg, phiDeg)

	if !lok || !rok {
		res := VerificationResult{
			IsEqual: false,
			Note:    "not equal (possible singularity): a side is undefined at this angle",
		}
		res.LeftFormatted = "undefined"
		res.RightFormatted = "undefined"
		if lok {
			res.LeftFormatted = fmtVerify(lv)
		}
		if rok {
			res.RightFormatted = fmtVerify(rv)
		}
		return res
	}

	return VerificationResult{
		LeftFormatted:  fmtVerify(lv),
		RightFormatted: fmtVerify(rv),
		IsEqual:        scalar.EqualWithinAbsOrRel(lv, rv, EpsIdentity, EpsIdentity),
	}
}
