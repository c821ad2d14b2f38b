package render_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mathcodelab/mathkit"
	"github.com/mathcodelab/mathkit/render"
)

func TestHistogram(t *testing.T) {
	report, err := mathkit.ComputeStatistics([]float64{1, 2, 2, 3, 3, 3, 4, 9}, 4)
	require.NoError(t, err)

	img, err := render.Histogram(report, render.Options{Width: 320, Height: 240})
	require.NoError(t, err)
	b := img.Bounds()
	assert.Equal(t, 320, b.Dx())
	assert.Equal(t, 240, b.Dy())
}

func TestHistogram_Empty(t *testing.T) {
	_, err := render.Histogram(nil, render.Options{})
	assert.ErrorIs(t, err, render.ErrEmptyChart)
}

func TestUnitCircle(t *testing.T) {
	img, err := render.UnitCircle(135, render.Options{Width: 200, Height: 200})
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, img.Bounds().Dx(), img.Bounds().Dy(), "unit circle renders square")
}

func TestParabola(t *testing.T) {
	img, err := render.Parabola(mathkit.Coefficients{A: 1, B: -2, C: -3}, -4, 6, render.Options{})
	require.NoError(t, err)
	assert.Equal(t, 640, img.Bounds().Dx())
	assert.Equal(t, 480, img.Bounds().Dy())
}

func TestParabola_BadDomain(t *testing.T) {
	_, err := render.Parabola(mathkit.Coefficients{A: 1}, 3, 3, render.Options{})
	assert.ErrorIs(t, err, render.ErrEmptyChart)
}

func TestWriteWebP(t *testing.T) {
	img, err := render.UnitCircle(60, render.Options{Width: 64, Height: 64})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.WriteWebP(&buf, img))
	assert.NotZero(t, buf.Len())
	assert.Equal(t, "RIFF", buf.String()[:4], "WebP files start with a RIFF header")
}
