// seehuhn.de/go/linedraw - raster algorithms for lines and circles
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package canvas renders raster samples produced by package linedraw.
//
// Every logical pixel is drawn as a square of Scale×Scale device pixels.
// The logical origin is at the centre of the canvas and the logical y
// axis points up.  Output is available as coverage rows, as an RGBA
// image with optional grid, axes and coordinate labels, and as PNG or PDF
// files.
package canvas

import (
	"image"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/linedraw"
)

// Canvas maps logical pixels to device pixels.
// Create one instance and reuse it for multiple renderings.  Internal
// buffers grow as needed but never shrink.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	// Width and Height give the device size in pixels.
	Width, Height int

	// Scale is the side length of one logical pixel in device pixels.
	// Must be positive.
	Scale float64

	// Clip bounds output to this device-coordinate rectangle.
	// Coordinates must be integer-aligned.
	Clip rect.Rect

	// Grid, Axes and Labels enable the overlays of [Canvas.Image].
	// Labels are omitted in PDF output.
	Grid, Axes, Labels bool

	cover []float32 // per-pixel coverage, reused across calls
}

// New returns a Canvas of the given size with all overlays enabled.
func New(width, height int, scale float64) *Canvas {
	return &Canvas{
		Width:  width,
		Height: height,
		Scale:  scale,
		Clip:   rect.Rect{URx: float64(width), URy: float64(height)},
		Grid:   true,
		Axes:   true,
		Labels: true,
	}
}

// center returns the device position of the logical origin.
func (c *Canvas) center() (cx, cy float64) {
	return float64(c.Width / 2), float64(c.Height / 2)
}

// CTM returns the transformation from logical to device coordinates.
func (c *Canvas) CTM() matrix.Matrix {
	cx, cy := c.center()
	return matrix.Matrix{c.Scale, 0, 0, -c.Scale, cx, cy}
}

// Device maps a logical point to device coordinates.
func (c *Canvas) Device(x, y float64) vec.Vec2 {
	m := c.CTM()
	return vec.Vec2{
		X: m[0]*x + m[2]*y + m[4],
		Y: m[1]*x + m[3]*y + m[5],
	}
}

// Logical returns the logical pixel nearest to the device position
// (px, py).  This is the inverse of [Canvas.Device], up to rounding.
func (c *Canvas) Logical(px, py float64) image.Point {
	cx, cy := c.center()
	return image.Pt(
		int(math.Round((px-cx)/c.Scale)),
		int(math.Round((cy-py)/c.Scale)),
	)
}

// square returns the device rectangle covered by the logical pixel p.
// The device position of p is the top-left corner of the square.
func (c *Canvas) square(p image.Point) rect.Rect {
	a := c.Device(float64(p.X), float64(p.Y))
	b := c.Device(float64(p.X+1), float64(p.Y-1))
	return rect.Rect{
		LLx: min(a.X, b.X), LLy: min(a.Y, b.Y),
		URx: max(a.X, b.X), URy: max(a.Y, b.Y),
	}
}

// Fill paints the samples and reports the resulting coverage row by row.
// Every sample is painted as a square with its coverage as opacity, later
// samples are composited over earlier ones.  The emit callback receives
// the non-zero part of each row; its slice argument is valid only during
// the call.
func (c *Canvas) Fill(samples []linedraw.Sample, emit func(y, xMin int, coverage []float32)) {
	xMin := max(int(c.Clip.LLx), 0)
	xMax := min(int(c.Clip.URx), c.Width)
	yMin := max(int(c.Clip.LLy), 0)
	yMax := min(int(c.Clip.URy), c.Height)
	if xMin >= xMax || yMin >= yMax {
		return
	}
	width := xMax - xMin
	height := yMax - yMin

	size := width * height
	c.cover = slices.Grow(c.cover[:0], size)[:size]
	clear(c.cover)

	clipped := 0
	for _, s := range samples {
		alpha := min(max(s.Coverage, 0), 1)
		if alpha == 0 {
			continue
		}

		sq := c.square(s.Point)
		x0 := max(sq.LLx, float64(xMin))
		x1 := min(sq.URx, float64(xMax))
		y0 := max(sq.LLy, float64(yMin))
		y1 := min(sq.URy, float64(yMax))
		if x0 >= x1 || y0 >= y1 {
			clipped++
			continue
		}

		// exact area of the square within each device pixel
		for py := int(math.Floor(y0)); py < int(math.Ceil(y1)); py++ {
			fy := min(y1, float64(py+1)) - max(y0, float64(py))
			row := c.cover[(py-yMin)*width : (py-yMin+1)*width]
			for px := int(math.Floor(x0)); px < int(math.Ceil(x1)); px++ {
				fx := min(x1, float64(px+1)) - max(x0, float64(px))
				a := float32(alpha * fx * fy)
				i := px - xMin
				row[i] = a + row[i]*(1-a)
			}
		}
	}
	if clipped > 0 {
		Logger().Debug("samples outside the canvas", "count", clipped)
	}

	for row := range height {
		coverage := c.cover[row*width : (row+1)*width]
		if trimmed, offset := trimZeros(coverage); trimmed != nil {
			emit(yMin+row, xMin+offset, trimmed)
		}
	}
}

// trimZeros returns the non-zero portion of coverage and its starting offset.
// Returns nil, 0 if coverage is entirely zero.
func trimZeros(coverage []float32) (trimmed []float32, offset int) {
	n := len(coverage)
	lo := 0
	for lo < n && coverage[lo] == 0 {
		lo++
	}
	if lo == n {
		return nil, 0
	}
	hi := n - 1
	for hi > lo && coverage[hi] == 0 {
		hi--
	}
	return coverage[lo : hi+1], lo
}
