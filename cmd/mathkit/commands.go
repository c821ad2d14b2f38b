package main

import (
	"errors"
	"fmt"
	"image"
	"os"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mathcodelab/mathkit"
	"github.com/mathcodelab/mathkit/render"
)

var jsonx = jsoniter.ConfigCompatibleWithStandardLibrary

// printResponse renders a tool response as indented JSON on stdout, turning
// tool-level errors into command errors.
func printResponse(resp mathkit.ToolResponse) error {
	if resp.Error != "" {
		return errors.New(resp.Error)
	}
	b, err := jsonx.MarshalIndent(resp, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}

// parseFloats splits a comma-separated list of numbers.
func parseFloats(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", p)
		}
		out = append(out, v)
	}
	return out, nil
}

func toIface(vals []float64) []interface{} {
	out := make([]interface{}, len(vals))
	for i, v := range vals {
		out[i] = v
	}
	return out
}

func newSumCmd() *cobra.Command {
	var preset string
	var start, end, compareN int
	cmd := &cobra.Command{
		Use:   "sum",
		Short: "Evaluate a summation preset over [start, end]",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("compare") {
				return printResponse(mathkit.HandleToolCall(mathkit.ToolRequest{
					Tool:   "sum_compare",
					Params: map[string]interface{}{"preset": preset, "n": float64(compareN)},
				}))
			}
			return printResponse(mathkit.HandleToolCall(mathkit.ToolRequest{
				Tool: "sum_evaluate",
				Params: map[string]interface{}{
					"preset": preset, "start": float64(start), "end": float64(end),
				},
			}))
		},
	}
	cmd.Flags().StringVar(&preset, "preset", "identity", "summation preset (identity, squares, cubes, constant, halves)")
	cmd.Flags().IntVar(&start, "start", 1, "first index")
	cmd.Flags().IntVar(&end, "end", 10, "last index (inclusive)")
	cmd.Flags().IntVar(&compareN, "compare", 0, "compare loop vs closed form for n terms")
	return cmd
}

func newQuadCmd() *cobra.Command {
	var a, b, c float64
	cmd := &cobra.Command{
		Use:   "quad",
		Short: "Analyze the quadratic ax² + bx + c",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printResponse(mathkit.HandleToolCall(mathkit.ToolRequest{
				Tool:   "quadratic_analyze",
				Params: map[string]interface{}{"a": a, "b": b, "c": c},
			}))
		},
	}
	cmd.Flags().Float64Var(&a, "a", 1, "quadratic coefficient")
	cmd.Flags().Float64Var(&b, "b", 0, "linear coefficient")
	cmd.Flags().Float64Var(&c, "c", 0, "constant term")
	return cmd
}

func newTriangleCmd() *cobra.Command {
	var a, b, c, angleA, angleB float64
	cmd := &cobra.Command{
		Use:   "triangle",
		Short: "Solve a right triangle from the given knowns",
		RunE: func(cmd *cobra.Command, args []string) error {
			params := map[string]interface{}{}
			set := func(flag string, v float64) {
				if cmd.Flags().Changed(flag) {
					key := flag
					if flag == "angle-a" {
						key = "angleA"
					}
					if flag == "angle-b" {
						key = "angleB"
					}
					params[key] = v
				}
			}
			set("a", a)
			set("b", b)
			set("c", c)
			set("angle-a", angleA)
			set("angle-b", angleB)
			return printResponse(mathkit.HandleToolCall(mathkit.ToolRequest{
				Tool: "triangle_solve", Params: params,
			}))
		},
	}
	cmd.Flags().Float64Var(&a, "a", 0, "leg a")
	cmd.Flags().Float64Var(&b, "b", 0, "leg b")
	cmd.Flags().Float64Var(&c, "c", 0, "hypotenuse")
	cmd.Flags().Float64Var(&angleA, "angle-a", 0, "angle A in degrees")
	cmd.Flags().Float64Var(&angleB, "angle-b", 0, "angle B in degrees")
	return cmd
}

func newStatsCmd() *cobra.Command {
	var data string
	var bins int
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Descriptive statistics for a comma-separated sample",
		RunE: func(cmd *cobra.Command, args []string) error {
			vals, err := parseFloats(data)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("bins") {
				bins = viper.GetInt("stats.bins")
			}
			return printResponse(mathkit.HandleToolCall(mathkit.ToolRequest{
				Tool: "stats_describe",
				Params: map[string]interface{}{
					"data": toIface(vals), "bins": float64(bins),
				},
			}))
		},
	}
	cmd.Flags().StringVar(&data, "data", "", "sample values, e.g. 1,2,3,4")
	cmd.Flags().IntVar(&bins, "bins", 0, "histogram bin count")
	_ = cmd.MarkFlagRequired("data")
	return cmd
}

func newVecCmd() *cobra.Command {
	var v, w string
	cmd := &cobra.Command{
		Use:   "vec",
		Short: "Vector arithmetic over two 2D or 3D vectors",
		RunE: func(cmd *cobra.Command, args []string) error {
			vv, err := parseFloats(v)
			if err != nil {
				return err
			}
			wv, err := parseFloats(w)
			if err != nil {
				return err
			}
			if len(vv) != len(wv) {
				return fmt.Errorf("vectors differ in dimension: %d vs %d", len(vv), len(wv))
			}
			return printResponse(mathkit.HandleToolCall(mathkit.ToolRequest{
				Tool: "vector_ops",
				Params: map[string]interface{}{
					"v": toIface(vv), "w": toIface(wv), "dim": float64(len(vv)),
				},
			}))
		},
	}
	cmd.Flags().StringVar(&v, "v", "", "first vector, e.g. 3,4 or 1,0,0")
	cmd.Flags().StringVar(&w, "w", "", "second vector")
	_ = cmd.MarkFlagRequired("v")
	_ = cmd.MarkFlagRequired("w")
	return cmd
}

func newMatCmd() *cobra.Command {
	var entries string
	cmd := &cobra.Command{
		Use:   "mat",
		Short: "Analyze a 2×2 (4 entries) or 3×3 (9 entries) matrix",
		RunE: func(cmd *cobra.Command, args []string) error {
			vals, err := parseFloats(entries)
			if err != nil {
				return err
			}
			params := map[string]interface{}{}
			switch len(vals) {
			case 4:
				params["matrix"] = toIface(vals)
			case 9:
				params["matrix3"] = toIface(vals)
			default:
				return fmt.Errorf("expected 4 or 9 row-major entries, got %d", len(vals))
			}
			return printResponse(mathkit.HandleToolCall(mathkit.ToolRequest{
				Tool: "matrix_analyze", Params: params,
			}))
		},
	}
	cmd.Flags().StringVar(&entries, "entries", "", "row-major entries, e.g. 0,-1,1,0")
	_ = cmd.MarkFlagRequired("entries")
	return cmd
}

func newTrigCmd() *cobra.Command {
	var angle float64
	cmd := &cobra.Command{
		Use:   "trig",
		Short: "Trig values, quadrant and reference angle for an angle in degrees",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printResponse(mathkit.HandleToolCall(mathkit.ToolRequest{
				Tool:   "trig_values",
				Params: map[string]interface{}{"angle": angle},
			}))
		},
	}
	cmd.Flags().Float64Var(&angle, "angle", 45, "angle in degrees")
	return cmd
}

func newVerifyCmd() *cobra.Command {
	var id string
	var theta, phi float64
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Numerically verify a trig identity at the given angles",
		RunE: func(cmd *cobra.Command, args []string) error {
			if id == "list" {
				return printResponse(mathkit.HandleToolCall(mathkit.ToolRequest{Tool: "identity_list"}))
			}
			return printResponse(mathkit.HandleToolCall(mathkit.ToolRequest{
				Tool: "identity_verify",
				Params: map[string]interface{}{
					"id": id, "theta": theta, "phi": phi,
				},
			}))
		},
	}
	cmd.Flags().StringVar(&id, "id", "pythagorean", "identity id, or 'list' to enumerate")
	cmd.Flags().Float64Var(&theta, "theta", 30, "first angle in degrees")
	cmd.Flags().Float64Var(&phi, "phi", 60, "second angle in degrees (two-angle identities)")
	return cmd
}

func newRenderCmd() *cobra.Command {
	var kind, out, data string
	var angle, a, b, c, xMin, xMax float64
	var bins int
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a chart (histogram, circle, parabola) to a WebP file",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := render.Options{
				Width:  viper.GetInt("render.width"),
				Height: viper.GetInt("render.height"),
			}
			img, err := buildChart(kind, data, bins, angle,
				mathkit.Coefficients{A: a, B: b, C: c}, xMin, xMax, opts)
			if err != nil {
				return err
			}
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			defer f.Close()
			if err := render.WriteWebP(f, img); err != nil {
				return err
			}
			fmt.Println("wrote", out)
			return nil
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "histogram", "chart kind: histogram, circle, parabola")
	cmd.Flags().StringVar(&out, "out", "chart.webp", "output file")
	cmd.Flags().StringVar(&data, "data", "", "sample values for histogram")
	cmd.Flags().IntVar(&bins, "bins", 0, "histogram bin count")
	cmd.Flags().Float64Var(&angle, "angle", 45, "angle for circle")
	cmd.Flags().Float64Var(&a, "a", 1, "parabola coefficient a")
	cmd.Flags().Float64Var(&b, "b", 0, "parabola coefficient b")
	cmd.Flags().Float64Var(&c, "c", 0, "parabola coefficient c")
	cmd.Flags().Float64Var(&xMin, "xmin", -5, "parabola domain start")
	cmd.Flags().Float64Var(&xMax, "xmax", 5, "parabola domain end")
	return cmd
}

func buildChart(kind, data string, bins int, angle float64,
	coeffs mathkit.Coefficients, xMin, xMax float64, opts render.Options) (image.Image, error) {
	switch kind {
	case "histogram":
		vals, err := parseFloats(data)
		if err != nil {
			return nil, err
		}
		report, err := mathkit.ComputeStatistics(vals, bins)
		if err != nil {
			return nil, err
		}
		return render.Histogram(report, opts)
	case "circle":
		return render.UnitCircle(angle, opts)
	case "parabola":
		return render.Parabola(coeffs, xMin, xMax, opts)
	default:
		return nil, fmt.Errorf("unknown chart kind: %s", kind)
	}
}

func newServeCmd() *cobra.Command {
	var listen string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the tool-call API over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("listen") {
				listen = viper.GetString("server.listen")
			}
			return serveHTTP(listen)
		},
	}
	cmd.Flags().StringVar(&listen, "listen", ":8080", "address to listen on")
	return cmd
}
