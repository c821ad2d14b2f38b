package mathkit

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// DefaultHistogramBins is used when the caller passes a non-positive bin
// count. The explorer UI offers 3-20 bins; the engine accepts any positive
// integer.
const DefaultHistogramBins = 8

// DescriptiveStats are the central-tendency measures of a sample.
// Mode lists every value tied for the highest frequency, and is empty when
// all values are distinct.
type DescriptiveStats struct {
	Count  int       `json:"count"`
	Sum    float64   `json:"sum"`
	Mean   float64   `json:"mean"`
	Median float64   `json:"median"`
	Mode   []float64 `json:"mode"`
	Min    float64   `json:"min"`
	Max    float64   `json:"max"`
	Range  float64   `json:"range"`
}

// SpreadStats are population variance and standard deviation.
type SpreadStats struct {
	Variance float64 `json:"variance"`
	StdDev   float64 `json:"stdDev"`
}

// Quartiles are computed by linear interpolation on the sorted sample
// (the R-7 method: position p·(n−1)); Q2 is the median.
type Quartiles struct {
	Q1  float64 `json:"q1"`
	Q2  float64 `json:"q2"`
	Q3  float64 `json:"q3"`
	IQR float64 `json:"iqr"`
}

// OutlierAnalysis applies the 1.5×IQR fence rule.
type OutlierAnalysis struct {
	LowerFence  float64   `json:"lowerFence"`
	UpperFence  float64   `json:"upperFence"`
	Outliers    []float64 `json:"outliers"`
	HasOutliers bool      `json:"hasOutliers"`
}

// SkewDirection buckets a skewness coefficient for display.
type SkewDirection string

const (
	LeftSkewed  SkewDirection = "left-skewed"
	RightSkewed SkewDirection = "right-skewed"
	Symmetric   SkewDirection = "symmetric"
)

// skewSymmetricBand is the |skewness| threshold below which a sample is
// called symmetric.
const skewSymmetricBand = 0.5

// SkewnessAnalysis pairs the adjusted Fisher-Pearson coefficient with its
// bucketed interpretation.
type SkewnessAnalysis struct {
	Skewness       float64       `json:"skewness"`
	Interpretation SkewDirection `json:"interpretation"`
}

// HistogramBin is one equal-width partition of [min, max]. The rightmost
// bin is closed on both ends so the maximum is never dropped.
type HistogramBin struct {
	BinStart  float64 `json:"binStart"`
	BinEnd    float64 `json:"binEnd"`
	Count     int     `json:"count"`
	Frequency float64 `json:"frequency"`
	Label     string  `json:"label"`
}

// HistogramData is the binned view of a sample.
type HistogramData struct {
	Bins []HistogramBin `json:"bins"`
}

// StatisticsReport bundles every analysis the statistics explorer shows.
type StatisticsReport struct {
	Descriptive DescriptiveStats `json:"descriptive"`
	Spread      SpreadStats      `json:"spread"`
	Quartiles   Quartiles        `json:"quartiles"`
	Outliers    OutlierAnalysis  `json:"outliers"`
	Skewness    SkewnessAnalysis `json:"skewness"`
	Histogram   HistogramData    `json:"histogram"`
}

// ComputeStatistics analyzes a sample of at least two values. Degenerate
// input yields ErrInsufficientData, not a panic; the input slice is not
// modified.
func ComputeStatistics(data []float64, bins int) (*StatisticsReport, error) {
	if len(data) < 2 {
		return nil, fmt.Errorf("%w: statistics need at least 2 values, got %d",
			ErrInsufficientData, len(data))
	}
	if bins <= 0 {
		bins = DefaultHistogramBins
	}

	sorted := make([]float64, len(data))
	copy(sorted, data)
	sort.Float64s(sorted)

	desc := describe(sorted)
	q := quartilesOf(sorted)

	return &StatisticsReport{
		Descriptive: desc,
		Spread: SpreadStats{
			Variance: stat.PopVariance(sorted, nil),
			StdDev:   stat.PopStdDev(sorted, nil),
		},
		Quartiles: q,
		Outliers:  outliersOf(sorted, q),
		Skewness:  skewnessOf(sorted),
		Histogram: histogramOf(sorted, bins),
	}, nil
}

func describe(sorted []float64) DescriptiveStats {
	min, max := sorted[0], sorted[len(sorted)-1]
	return DescriptiveStats{
		Count:  len(sorted),
		Sum:    floats.Sum(sorted),
		Mean:   stat.Mean(sorted, nil),
		Median: quantileR7(sorted, 0.5),
		Mode:   modesOf(sorted),
		Min:    min,
		Max:    max,
		Range:  max - min,
	}
}

// modesOf returns all values sharing the highest frequency, ascending.
// A sample with no repeats has no mode.
func modesOf(sorted []float64) []float64 {
	modes := []float64{}
	best := 1
	run := 1
	for i := 1; i <= len(sorted); i++ {
		if i < len(sorted) && sorted[i] == sorted[i-1] {
			run++
			continue
		}
		switch {
		case run > best:
			best = run
			modes = modes[:0]
			modes = append(modes, sorted[i-1])
		case run == best && best > 1:
			modes = append(modes, sorted[i-1])
		}
		run = 1
	}
	return modes
}

// quantileR7 evaluates the p-quantile of sorted data by linear
// interpolation at position p·(n−1), the "inclusive" method used by most
// spreadsheet tools.
func quantileR7(sorted []float64, p float64) float64 {
	pos := p * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}

func quartilesOf(sorted []float64) Quartiles {
	q1 := quantileR7(sorted, 0.25)
	q2 := quantileR7(sorted, 0.5)
	q3 := quantileR7(sorted, 0.75)
	return Quartiles{Q1: q1, Q2: q2, Q3: q3, IQR: q3 - q1}
}

func outliersOf(sorted []float64, q Quartiles) OutlierAnalysis {
	lower := q.Q1 - 1.5*q.IQR
	upper := q.Q3 + 1.5*q.IQR
	out := []float64{}
	for _, v := range sorted {
		if v < lower || v > upper {
			out = append(out, v)
		}
	}
	return OutlierAnalysis{
		LowerFence:  lower,
		UpperFence:  upper,
		Outliers:    out,
		HasOutliers: len(out) > 0,
	}
}

func skewnessOf(sorted []float64) SkewnessAnalysis {
	sk := stat.Skew(sorted, nil)
	// A constant sample has zero spread; call it symmetric rather than
	// propagating the 0/0.
	if math.IsNaN(sk) {
		sk = 0
	}
	dir := Symmetric
	switch {
	case sk < -skewSymmetricBand:
		dir = LeftSkewed
	case sk > skewSymmetricBand:
		dir = RightSkewed
	}
	return SkewnessAnalysis{Skewness: sk, Interpretation: dir}
}

func histogramOf(sorted []float64, bins int) HistogramData {
	min, max := sorted[0], sorted[len(sorted)-1]
	if min == max {
		// All values identical: a single bin holding everything.
		return HistogramData{Bins: []HistogramBin{{
			BinStart:  min,
			BinEnd:    max,
			Count:     len(sorted),
			Frequency: 1,
			Label:     fmt.Sprintf("[%g, %g]", min, max),
		}}}
	}

	edges := make([]float64, bins+1)
	floats.Span(edges, min, max)
	width := (max - min) / float64(bins)

	counts := make([]int, bins)
	for _, v := range sorted {
		idx := int((v - min) / width)
		if idx >= bins { // max lands in the last bin
			idx = bins - 1
		}
		counts[idx]++
	}

	total := float64(len(sorted))
	out := make([]HistogramBin, bins)
	for i := range out {
		label := fmt.Sprintf("[%g, %g)", edges[i], edges[i+1])
		if i == bins-1 {
			label = fmt.Sprintf("[%g, %g]", edges[i], edges[i+1])
		}
		out[i] = HistogramBin{
			BinStart:  edges[i],
			BinEnd:    edges[i+1],
			Count:     counts[i],
			Frequency: float64(counts[i]) / total,
			Label:     label,
		}
	}
	return HistogramData{Bins: out}
}
