package render

import (
	"errors"
	"image"
	"image/color"
	"io"
	"math"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/image/draw"

	"github.com/mathcodelab/mathkit"
)

// Options control chart geometry. Zero values take the defaults.
type Options struct {
	Width  int
	Height int
}

const (
	defaultWidth  = 640
	defaultHeight = 480

	// Charts are drawn at 2x and downscaled for cheap antialiasing.
	supersample = 2
)

var (
	colBackground = color.NRGBA{255, 255, 255, 255}
	colAxis       = color.NRGBA{120, 120, 120, 255}
	colBar        = color.NRGBA{66, 133, 244, 255}
	colBarOutline = color.NRGBA{25, 70, 150, 255}
	colCurve      = color.NRGBA{219, 68, 55, 255}
	colRadius     = color.NRGBA{15, 120, 80, 255}
)

func (o Options) normalized() Options {
	if o.Width <= 0 {
		o.Width = defaultWidth
	}
	if o.Height <= 0 {
		o.Height = defaultHeight
	}
	return o
}

// ErrEmptyChart is returned when there is nothing to draw.
var ErrEmptyChart = errors.New("render: nothing to draw")

// Histogram draws the binned frequencies of a statistics report as a bar
// chart.
func Histogram(report *mathkit.StatisticsReport, opts Options) (image.Image, error) {
	if report == nil || len(report.Histogram.Bins) == 0 {
		return nil, ErrEmptyChart
	}
	opts = opts.normalized()
	w, h := opts.Width*supersample, opts.Height*supersample
	c := newCanvas(w, h, colBackground)

	margin := h / 10
	plotW := w - 2*margin
	plotH := h - 2*margin

	maxFreq := 0.0
	for _, b := range report.Histogram.Bins {
		if b.Frequency > maxFreq {
			maxFreq = b.Frequency
		}
	}
	if maxFreq == 0 {
		return nil, ErrEmptyChart
	}

	bins := report.Histogram.Bins
	barW := plotW / len(bins)
	for i, b := range bins {
		barH := int(float64(plotH) * b.Frequency / maxFreq)
		x0 := margin + i*barW
		y0 := h - margin - barH
		c.fillRect(x0+1, y0, x0+barW-1, h-margin, colBar)
		c.line(x0+1, y0, x0+barW-2, y0, colBarOutline)
	}

	// Axes.
	c.line(margin, margin, margin, h-margin, colAxis)
	c.line(margin, h-margin, w-margin, h-margin, colAxis)

	return downscale(c.img, opts.Width, opts.Height), nil
}

// UnitCircle draws the unit circle with the terminal side of the angle and
// its sine/cosine projections.
func UnitCircle(angleDeg float64, opts Options) (image.Image, error) {
	opts = opts.normalized()
	side := opts.Width
	if opts.Height < side {
		side = opts.Height
	}
	s := side * supersample
	c := newCanvas(s, s, colBackground)

	cx, cy := s/2, s/2
	r := s * 2 / 5

	// Axes and circle.
	c.line(0, cy, s-1, cy, colAxis)
	c.line(cx, 0, cx, s-1, colAxis)
	c.circle(cx, cy, r, colBarOutline)

	// Terminal side. Screen y grows downward.
	theta := angleDeg * math.Pi / 180
	px := cx + int(math.Round(float64(r)*math.Cos(theta)))
	py := cy - int(math.Round(float64(r)*math.Sin(theta)))
	c.line(cx, cy, px, py, colRadius)

	// cos projection along x, sin projection vertical.
	c.line(cx, cy, px, cy, colBar)
	c.line(px, cy, px, py, colCurve)

	return downscale(c.img, side, side), nil
}

// Parabola plots y = ax² + bx + c over [xMin, xMax].
func Parabola(coeffs mathkit.Coefficients, xMin, xMax float64, opts Options) (image.Image, error) {
	pts := mathkit.ParabolaPoints(coeffs, xMin, xMax, 256)
	if len(pts) == 0 {
		return nil, ErrEmptyChart
	}
	opts = opts.normalized()
	w, h := opts.Width*supersample, opts.Height*supersample
	c := newCanvas(w, h, colBackground)

	yMin, yMax := pts[0].Y, pts[0].Y
	for _, p := range pts {
		yMin = math.Min(yMin, p.Y)
		yMax = math.Max(yMax, p.Y)
	}
	if yMax == yMin {
		yMax = yMin + 1
	}

	margin := h / 10
	toScreen := func(p mathkit.Vertex) (int, int) {
		sx := margin + int(float64(w-2*margin)*(p.X-xMin)/(xMax-xMin))
		sy := h - margin - int(float64(h-2*margin)*(p.Y-yMin)/(yMax-yMin))
		return sx, sy
	}

	// Axes where they fall inside the view.
	if xMin <= 0 && 0 <= xMax {
		zx, _ := toScreen(mathkit.Vertex{X: 0, Y: yMin})
		c.line(zx, margin, zx, h-margin, colAxis)
	}
	if yMin <= 0 && 0 <= yMax {
		_, zy := toScreen(mathkit.Vertex{X: xMin, Y: 0})
		c.line(margin, zy, w-margin, zy, colAxis)
	}

	for i := 1; i < len(pts); i++ {
		x0, y0 := toScreen(pts[i-1])
		x1, y1 := toScreen(pts[i])
		c.line(x0, y0, x1, y1, colCurve)
	}

	return downscale(c.img, opts.Width, opts.Height), nil
}

// downscale resizes the supersampled canvas with CatmullRom filtering.
func downscale(img *image.NRGBA, w, h int) image.Image {
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// WriteWebP encodes an image as lossless WebP.
func WriteWebP(w io.Writer, img image.Image) error {
	return nativewebp.Encode(w, img, nil)
}
