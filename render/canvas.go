// Package render draws headless chart images for the numeric core:
// histograms, the unit circle, and parabola curves. Output is a plain
// image.Image, optionally encoded as WebP.
package render

import (
	"image"
	"image/color"
	"math"
)

// canvas is a minimal raster target with the few primitives the charts
// need. Drawing happens at supersampled resolution; the public functions
// downscale afterwards.
type canvas struct {
	img *image.NRGBA
	w   int
	h   int
}

func newCanvas(w, h int, bg color.NRGBA) *canvas {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, bg)
		}
	}
	return &canvas{img: img, w: w, h: h}
}

func (c *canvas) set(x, y int, col color.NRGBA) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.img.SetNRGBA(x, y, col)
}

// fillRect fills the half-open rectangle [x0,x1) × [y0,y1).
func (c *canvas) fillRect(x0, y0, x1, y1 int, col color.NRGBA) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c.set(x, y, col)
		}
	}
}

// line draws a 1px segment with the integer Bresenham walk.
func (c *canvas) line(x0, y0, x1, y1 int, col color.NRGBA) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		c.set(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// circle draws a 1px outline centered at (cx, cy).
func (c *canvas) circle(cx, cy, r int, col color.NRGBA) {
	steps := int(2 * math.Pi * float64(r))
	if steps < 16 {
		steps = 16
	}
	for i := 0; i < steps; i++ {
		t := 2 * math.Pi * float64(i) / float64(steps)
		c.set(cx+int(math.Round(float64(r)*math.Cos(t))),
			cy+int(math.Round(float64(r)*math.Sin(t))), col)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
