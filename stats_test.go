package mathkit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mathcodelab/mathkit"
)

func TestComputeStatistics_Basic(t *testing.T) {
	report, err := mathkit.ComputeStatistics([]float64{1, 2, 3, 4, 5}, 5)
	require.NoError(t, err)

	d := report.Descriptive
	assert.Equal(t, 5, d.Count)
	assert.Equal(t, 15.0, d.Sum)
	assert.Equal(t, 3.0, d.Mean)
	assert.Equal(t, 3.0, d.Median)
	assert.Empty(t, d.Mode, "all values distinct: no mode")
	assert.Equal(t, 1.0, d.Min)
	assert.Equal(t, 5.0, d.Max)
	assert.Equal(t, 4.0, d.Range)
}

func TestComputeStatistics_Mode(t *testing.T) {
	report, err := mathkit.ComputeStatistics([]float64{1, 1, 2, 3, 3}, 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 3}, report.Descriptive.Mode)
}

func TestComputeStatistics_SingleMode(t *testing.T) {
	report, err := mathkit.ComputeStatistics([]float64{1, 2, 2, 3}, 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{2}, report.Descriptive.Mode)
}

func TestComputeStatistics_MedianEven(t *testing.T) {
	report, err := mathkit.ComputeStatistics([]float64{1, 2, 3, 4}, 4)
	require.NoError(t, err)
	assert.Equal(t, 2.5, report.Descriptive.Median)
}

func TestComputeStatistics_InsufficientData(t *testing.T) {
	_, err := mathkit.ComputeStatistics([]float64{42}, 5)
	assert.ErrorIs(t, err, mathkit.ErrInsufficientData)

	_, err = mathkit.ComputeStatistics(nil, 5)
	assert.ErrorIs(t, err, mathkit.ErrInsufficientData)
}

func TestComputeStatistics_InputNotMutated(t *testing.T) {
	data := []float64{5, 1, 4, 2, 3}
	_, err := mathkit.ComputeStatistics(data, 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 1, 4, 2, 3}, data)
}

func TestQuartiles_LinearInterpolation(t *testing.T) {
	// R-7 on [1,2,3,4]: positions 0.75 and 2.25.
	report, err := mathkit.ComputeStatistics([]float64{1, 2, 3, 4}, 4)
	require.NoError(t, err)
	q := report.Quartiles
	assert.InDelta(t, 1.75, q.Q1, 1e-12)
	assert.InDelta(t, 2.5, q.Q2, 1e-12)
	assert.InDelta(t, 3.25, q.Q3, 1e-12)
	assert.InDelta(t, 1.5, q.IQR, 1e-12)
}

func TestOutliers_FenceRule(t *testing.T) {
	report, err := mathkit.ComputeStatistics([]float64{1, 2, 3, 4, 100}, 5)
	require.NoError(t, err)
	o := report.Outliers
	assert.True(t, o.HasOutliers)
	assert.Equal(t, []float64{100}, o.Outliers)
	assert.Less(t, o.UpperFence, 100.0)
}

func TestOutliers_None(t *testing.T) {
	report, err := mathkit.ComputeStatistics([]float64{1, 2, 3, 4, 5}, 5)
	require.NoError(t, err)
	assert.False(t, report.Outliers.HasOutliers)
	assert.Empty(t, report.Outliers.Outliers)
}

func TestSpread_Population(t *testing.T) {
	// Population variance of [2,4,4,4,5,5,7,9] is exactly 4.
	report, err := mathkit.ComputeStatistics([]float64{2, 4, 4, 4, 5, 5, 7, 9}, 4)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, report.Spread.Variance, 1e-12)
	assert.InDelta(t, 2.0, report.Spread.StdDev, 1e-12)
}

func TestSkewness_Interpretation(t *testing.T) {
	right, err := mathkit.ComputeStatistics([]float64{1, 2, 3, 4, 100}, 5)
	require.NoError(t, err)
	assert.Equal(t, mathkit.RightSkewed, right.Skewness.Interpretation)

	left, err := mathkit.ComputeStatistics([]float64{-100, 1, 2, 3, 4}, 5)
	require.NoError(t, err)
	assert.Equal(t, mathkit.LeftSkewed, left.Skewness.Interpretation)

	sym, err := mathkit.ComputeStatistics([]float64{1, 2, 3, 4, 5}, 5)
	require.NoError(t, err)
	assert.Equal(t, mathkit.Symmetric, sym.Skewness.Interpretation)
}

func TestSkewness_ConstantSample(t *testing.T) {
	report, err := mathkit.ComputeStatistics([]float64{5, 5, 5}, 3)
	require.NoError(t, err)
	assert.Equal(t, mathkit.Symmetric, report.Skewness.Interpretation)
	assert.Equal(t, 0.0, report.Skewness.Skewness)
}

func TestHistogram_MaxIncluded(t *testing.T) {
	report, err := mathkit.ComputeStatistics([]float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 5)
	require.NoError(t, err)
	bins := report.Histogram.Bins
	require.Len(t, bins, 5)

	total := 0
	freq := 0.0
	for _, b := range bins {
		total += b.Count
		freq += b.Frequency
	}
	assert.Equal(t, 11, total, "every value lands in exactly one bin")
	assert.InDelta(t, 1.0, freq, 1e-12)
	assert.Equal(t, 3, bins[4].Count, "8, 9 and the max 10 fall in the last bin")
}

func TestHistogram_ConstantSample(t *testing.T) {
	report, err := mathkit.ComputeStatistics([]float64{7, 7, 7, 7}, 5)
	require.NoError(t, err)
	require.Len(t, report.Histogram.Bins, 1)
	assert.Equal(t, 4, report.Histogram.Bins[0].Count)
	assert.Equal(t, 1.0, report.Histogram.Bins[0].Frequency)
}

func TestHistogram_DefaultBins(t *testing.T) {
	report, err := mathkit.ComputeStatistics([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9}, 0)
	require.NoError(t, err)
	assert.Len(t, report.Histogram.Bins, mathkit.DefaultHistogramBins)
}
