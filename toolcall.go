package mathkit

import (
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var jsonx = jsoniter.ConfigCompatibleWithStandardLibrary

// ToolRequest is one JSON tool call: a tool name and its parameters.
type ToolRequest struct {
	Tool   string                 `json:"tool"`
	Params map[string]interface{} `json:"params"`
}

// ToolResponse carries a structured result, an optional display string, and
// an error message for expected failures. Exactly one of Result/Error is
// set on any given response.
type ToolResponse struct {
	Result interface{} `json:"result,omitempty"`
	String string      `json:"string,omitempty"`
	Error  string      `json:"error,omitempty"`
}

func errResp(err error) ToolResponse { return ToolResponse{Error: err.Error()} }

// HandleToolCall dispatches a tool request to the numeric core. Unknown
// tools, missing parameters, and mathematical edge cases all come back as
// ToolResponse.Error, never as a panic.
func HandleToolCall(req ToolRequest) ToolResponse {
	getNumber := func(key string) (float64, error) {
		v, ok := req.Params[key]
		if !ok {
			return 0, fmt.Errorf("missing param: %s", key)
		}
		f, ok := v.(float64)
		if !ok {
			return 0, fmt.Errorf("invalid type for param %s: expected number", key)
		}
		return f, nil
	}
	getNumberDefault := func(key string, def float64) float64 {
		if f, ok := req.Params[key].(float64); ok {
			return f
		}
		return def
	}
	getOptNumber := func(key string) *float64 {
		if f, ok := req.Params[key].(float64); ok {
			return &f
		}
		return nil
	}
	getString := func(key string) (string, error) {
		v, ok := req.Params[key]
		if !ok {
			return "", fmt.Errorf("missing param: %s", key)
		}
		s, ok := v.(string)
		if !ok {
			return "", fmt.Errorf("invalid type for param %s: expected string", key)
		}
		return s, nil
	}
	getNumbers := func(key string) ([]float64, error) {
		v, ok := req.Params[key]
		if !ok {
			return nil, fmt.Errorf("missing param: %s", key)
		}
		raw, ok := v.([]interface{})
		if !ok {
			return nil, fmt.Errorf("invalid type for param %s: expected number array", key)
		}
		out := make([]float64, len(raw))
		for i, e := range raw {
			f, ok := e.(float64)
			if !ok {
				return nil, fmt.Errorf("invalid element in param %s: expected number", key)
			}
			out[i] = f
		}
		return out, nil
	}
	getCoeffs := func() (Coefficients, error) {
		a, err := getNumber("a")
		if err != nil {
			return Coefficients{}, err
		}
		b, err := getNumber("b")
		if err != nil {
			return Coefficients{}, err
		}
		c, err := getNumber("c")
		if err != nil {
			return Coefficients{}, err
		}
		return Coefficients{A: a, B: b, C: c}, nil
	}
	getVec2 := func(key string) (Vec2, error) {
		vals, err := getNumbers(key)
		if err != nil {
			return Vec2{}, err
		}
		if len(vals) != 2 {
			return Vec2{}, fmt.Errorf("param %s: expected 2 components, got %d", key, len(vals))
		}
		return V2(vals[0], vals[1]), nil
	}
	getVec3 := func(key string) (Vec3, error) {
		vals, err := getNumbers(key)
		if err != nil {
			return Vec3{}, err
		}
		if len(vals) != 3 {
			return Vec3{}, fmt.Errorf("param %s: expected 3 components, got %d", key, len(vals))
		}
		return V3(vals[0], vals[1], vals[2]), nil
	}
	getMat2 := func(key string) (Mat2, error) {
		vals, err := getNumbers(key)
		if err != nil {
			return Mat2{}, err
		}
		if len(vals) != 4 {
			return Mat2{}, fmt.Errorf("param %s: expected 4 row-major entries, got %d", key, len(vals))
		}
		return Mat2{{vals[0], vals[1]}, {vals[2], vals[3]}}, nil
	}
	getMat3 := func(key string) (Mat3, error) {
		vals, err := getNumbers(key)
		if err != nil {
			return Mat3{}, err
		}
		if len(vals) != 9 {
			return Mat3{}, fmt.Errorf("param %s: expected 9 row-major entries, got %d", key, len(vals))
		}
		return Mat3{
			{vals[0], vals[1], vals[2]},
			{vals[3], vals[4], vals[5]},
			{vals[6], vals[7], vals[8]},
		}, nil
	}

	switch req.Tool {
	case "sum_evaluate":
		name, err := getString("preset")
		if err != nil {
			return errResp(err)
		}
		p := PresetByName(name)
		if p == nil {
			return errResp(fmt.Errorf("unknown summation preset: %s", name))
		}
		start, err := getNumber("start")
		if err != nil {
			return errResp(err)
		}
		end, err := getNumber("end")
		if err != nil {
			return errResp(err)
		}
		res := EvaluateSummation(p.Term, int(start), int(end))
		return ToolResponse{
			Result: res,
			String: fmt.Sprintf("%s over [%d, %d] = %s", p.Sigma, int(start), int(end), fmtNum(res.Total)),
		}

	case "sum_compare":
		name, err := getString("preset")
		if err != nil {
			return errResp(err)
		}
		p := PresetByName(name)
		if p == nil {
			return errResp(fmt.Errorf("unknown summation preset: %s", name))
		}
		n, err := getNumber("n")
		if err != nil {
			return errResp(err)
		}
		cmp := CompareLoopVsFormula(p.Term, int(n), p.Closed)
		return ToolResponse{
			Result: cmp,
			String: fmt.Sprintf("loop %s vs %s %s", fmtNum(cmp.LoopTotal), p.Formula, fmtNum(cmp.FormulaTotal)),
		}

	case "quadratic_analyze":
		c, err := getCoeffs()
		if err != nil {
			return errResp(err)
		}
		if !c.IsValidQuadratic() {
			if root, ok := SolveLinear(c.B, c.C); ok {
				return ToolResponse{
					Result: map[string]interface{}{"linearRoot": root},
					String: fmt.Sprintf("a = 0: linear equation, x = %s", fmtNum(root)),
				}
			}
			return errResp(errors.New("not a quadratic: a = 0 and b = 0"))
		}
		result := map[string]interface{}{
			"discriminant": Discriminant(c),
			"roots":        SolveQuadratic(c),
			"vertex":       VertexOf(c),
			"vertexForm":   ToVertexForm(c),
		}
		if f := ToFactoredForm(c); f != nil {
			result["factoredForm"] = f
		}
		return ToolResponse{Result: result}

	case "triangle_solve":
		sol, err := SolveRightTriangle(TriangleInput{
			A:      getOptNumber("a"),
			B:      getOptNumber("b"),
			C:      getOptNumber("c"),
			AngleA: getOptNumber("angleA"),
			AngleB: getOptNumber("angleB"),
		})
		if err != nil {
			return errResp(err)
		}
		return ToolResponse{Result: sol}

	case "stats_describe":
		data, err := getNumbers("data")
		if err != nil {
			return errResp(err)
		}
		bins := int(getNumberDefault("bins", 0))
		report, err := ComputeStatistics(data, bins)
		if err != nil {
			return errResp(err)
		}
		return ToolResponse{Result: report}

	case "vector_ops":
		dim := int(getNumberDefault("dim", 2))
		switch dim {
		case 2:
			v, err := getVec2("v")
			if err != nil {
				return errResp(err)
			}
			w, err := getVec2("w")
			if err != nil {
				return errResp(err)
			}
			result := map[string]interface{}{
				"sum":           v.Add(w),
				"difference":    v.Sub(w),
				"dot":           v.Dot(w),
				"cross":         v.Cross(w),
				"magnitudeV":    v.Norm(),
				"magnitudeW":    w.Norm(),
				"parallel":      v.IsParallel(w),
				"perpendicular": v.IsPerpendicular(w),
			}
			if theta, ok := v.AngleBetween(w); ok {
				result["angleDegrees"] = deg(theta)
			}
			if unit, ok := v.Normalize(); ok {
				result["unitV"] = unit
			}
			return ToolResponse{Result: result}
		case 3:
			v, err := getVec3("v")
			if err != nil {
				return errResp(err)
			}
			w, err := getVec3("w")
			if err != nil {
				return errResp(err)
			}
			result := map[string]interface{}{
				"sum":           v.Add(w),
				"difference":    v.Sub(w),
				"dot":           v.Dot(w),
				"cross":         v.Cross(w),
				"magnitudeV":    v.Norm(),
				"magnitudeW":    w.Norm(),
				"parallel":      v.IsParallel(w),
				"perpendicular": v.IsPerpendicular(w),
			}
			if theta, ok := v.AngleBetween(w); ok {
				result["angleDegrees"] = deg(theta)
			}
			if unit, ok := v.Normalize(); ok {
				result["unitV"] = unit
			}
			return ToolResponse{Result: result}
		default:
			return errResp(fmt.Errorf("unsupported dimension: %d", dim))
		}

	case "matrix_analyze":
		if _, ok := req.Params["matrix3"]; ok {
			m, err := getMat3("matrix3")
			if err != nil {
				return errResp(err)
			}
			det := m.Det()
			return ToolResponse{Result: map[string]interface{}{
				"determinant":    det,
				"orthogonal":     m.IsOrthogonal(),
				"interpretation": InterpretDeterminant(det),
			}}
		}
		m, err := getMat2("matrix")
		if err != nil {
			return errResp(err)
		}
		det := m.Det()
		return ToolResponse{Result: map[string]interface{}{
			"determinant":    det,
			"orthogonal":     m.IsOrthogonal(),
			"interpretation": InterpretDeterminant(det),
			"unitSquare":     TransformUnitSquare(m),
		}}

	case "trig_values":
		angle, err := getNumber("angle")
		if err != nil {
			return errResp(err)
		}
		result := map[string]interface{}{
			"values":         ComputeTrigValues(angle),
			"quadrant":       QuadrantOf(angle),
			"referenceAngle": ReferenceAngle(angle),
		}
		if signs, ok := SignsFor(QuadrantOf(angle)); ok {
			result["signs"] = signs
		}
		if exact, ok := ExactValuesFor(angle); ok {
			result["exact"] = exact
		}
		return ToolResponse{Result: result}

	case "identity_list":
		return ToolResponse{Result: Identities()}

	case "identity_verify":
		idName, err := getString("id")
		if err != nil {
			return errResp(err)
		}
		ident := IdentityByID(idName)
		if ident == nil {
			return errResp(fmt.Errorf("unknown identity: %s", idName))
		}
		theta, err := getNumber("theta")
		if err != nil {
			return errResp(err)
		}
		phi := getNumberDefault("phi", 0)
		if ident.TwoAngle {
			if _, err := getNumber("phi"); err != nil {
				return errResp(err)
			}
		}
		res := ident.Verify(theta, phi)
		return ToolResponse{
			Result: res,
			String: fmt.Sprintf("%s vs %s", res.LeftFormatted, res.RightFormatted),
		}

	case "tool_spec":
		return ToolResponse{Result: ToolSpec(), String: "tool specification"}
	}

	return ToolResponse{Error: fmt.Sprintf("unknown tool: %s", req.Tool)}
}

// ToolSpec returns the JSON schema for agent registration.
func ToolSpec() string {
	tools := []map[string]interface{}{
		ts("sum_evaluate", "Iterate a summation preset over [start, end]", []string{"preset", "start", "end"},
			map[string]string{"preset": "string", "start": "integer", "end": "integer"}),
		ts("sum_compare", "Compare loop total against the closed form for n terms", []string{"preset", "n"},
			map[string]string{"preset": "string", "n": "integer"}),
		ts("quadratic_analyze", "Discriminant, roots, vertex and alternate forms of ax²+bx+c", []string{"a", "b", "c"},
			map[string]string{"a": "number", "b": "number", "c": "number"}),
		ts("triangle_solve", "Solve a right triangle from any two knowns (at least one side)", []string{},
			map[string]string{"a": "number", "b": "number", "c": "number", "angleA": "number", "angleB": "number"}),
		ts("stats_describe", "Descriptive statistics, quartiles, outliers, skewness, histogram", []string{"data"},
			map[string]string{"data": "array", "bins": "integer"}),
		ts("vector_ops", "Vector arithmetic and classification. dim is 2 (default) or 3", []string{"v", "w"},
			map[string]string{"v": "array", "w": "array", "dim": "integer"}),
		ts("matrix_analyze", "Determinant, orthogonality and interpretation of a 2×2 or 3×3 matrix", []string{},
			map[string]string{"matrix": "array", "matrix3": "array"}),
		ts("trig_values", "sin/cos/tan, exact forms, quadrant and reference angle", []string{"angle"},
			map[string]string{"angle": "number"}),
		ts("identity_list", "List the trigonometric identity registry", []string{}, map[string]string{}),
		ts("identity_verify", "Numerically verify an identity at theta (and phi)", []string{"id", "theta"},
			map[string]string{"id": "string", "theta": "number", "phi": "number"}),
		ts("tool_spec", "Return this tool schema", []string{}, map[string]string{}),
	}
	spec := map[string]interface{}{"tools": tools}
	b, _ := jsonx.MarshalIndent(spec, "", "  ")
	return string(b)
}

func ts(name, description string, required []string, props map[string]string) map[string]interface{} {
	properties := map[string]interface{}{}
	for k, typ := range props {
		properties[k] = map[string]interface{}{"type": typ}
	}
	return map[string]interface{}{
		"name":        name,
		"description": description,
		"inputSchema": map[string]interface{}{
			"type":       "object",
			"properties": properties,
			"required":   required,
		},
	}
}
