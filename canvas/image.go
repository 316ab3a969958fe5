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

package canvas

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/linedraw"
)

// Colors used by [Canvas.Image].
var (
	BackgroundColor color.Color = color.White
	GridColor       color.Color = color.NRGBA{R: 204, G: 204, B: 204, A: 128}
	AxesColor       color.Color = color.Black
	LabelColor      color.Color = color.Black
	SampleColor     color.Color = color.NRGBA{R: 255, A: 255}
)

// Overlay geometry in device pixels.
const (
	gridWidth  = 0.5
	axesWidth  = 1.5
	arrowLen   = 10
	arrowHalf  = 5
	labelShift = 5
)

// vectorPath adapts a vector.Rasterizer to pathBuilder.
type vectorPath struct {
	r *vector.Rasterizer
}

func (v vectorPath) MoveTo(x, y float64) { v.r.MoveTo(float32(x), float32(y)) }
func (v vectorPath) LineTo(x, y float64) { v.r.LineTo(float32(x), float32(y)) }
func (v vectorPath) ClosePath()          { v.r.ClosePath() }

// Image renders the samples on a white background, together with the
// enabled overlays.  Sample coverage is used as opacity.
func (c *Canvas) Image(samples []linedraw.Sample) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(BackgroundColor), image.Point{}, draw.Src)

	if c.Grid {
		c.fillPaths(img, GridColor, c.gridPaths())
	}
	if c.Axes {
		c.fillPaths(img, AxesColor, c.axesPaths())
	}
	if c.Labels {
		c.drawLabels(img)
	}

	mask := image.NewAlpha(img.Bounds())
	c.Fill(samples, func(y, xMin int, coverage []float32) {
		row := mask.Pix[y*mask.Stride+xMin:]
		for i, v := range coverage {
			row[i] = uint8(max(0, min(255, int(v*255+0.5))))
		}
	})
	draw.DrawMask(img, img.Bounds(), image.NewUniform(SampleColor), image.Point{},
		mask, image.Point{}, draw.Over)

	return img
}

// WritePNG writes the output of [Canvas.Image] in PNG format.
func (c *Canvas) WritePNG(w io.Writer, samples []linedraw.Sample) error {
	err := png.Encode(w, c.Image(samples))
	if err != nil {
		return fmt.Errorf("encoding PNG: %w", err)
	}
	Logger().Debug("wrote PNG", "width", c.Width, "height", c.Height, "samples", len(samples))
	return nil
}

// fillPaths fills the union of the paths with a solid colour.
func (c *Canvas) fillPaths(dst draw.Image, col color.Color, paths []path.Path) {
	if len(paths) == 0 {
		return
	}
	r := vector.NewRasterizer(c.Width, c.Height)
	for _, p := range paths {
		appendPath(vectorPath{r}, p)
	}
	r.DrawOp = draw.Over
	r.Draw(dst, dst.Bounds(), image.NewUniform(col), image.Point{})
}

// gridLines returns the device positions of the grid lines, which are
// spaced Scale apart starting at the logical origin.
func (c *Canvas) gridLines() (xs, ys []float64) {
	if c.Scale <= 0 {
		return nil, nil
	}
	cx, cy := c.center()
	w, h := float64(c.Width), float64(c.Height)
	for x := cx; x < w; x += c.Scale {
		xs = append(xs, x)
	}
	for x := cx - c.Scale; x > 0; x -= c.Scale {
		xs = append(xs, x)
	}
	for y := cy; y < h; y += c.Scale {
		ys = append(ys, y)
	}
	for y := cy - c.Scale; y > 0; y -= c.Scale {
		ys = append(ys, y)
	}
	return xs, ys
}

func (c *Canvas) gridPaths() []path.Path {
	w, h := float64(c.Width), float64(c.Height)
	xs, ys := c.gridLines()
	var res []path.Path
	for _, x := range xs {
		res = append(res, box(vline(x, 0, h, gridWidth)))
	}
	for _, y := range ys {
		res = append(res, box(hline(0, w, y, gridWidth)))
	}
	return res
}

// axesPaths returns the two axes with arrow heads at the positive ends.
func (c *Canvas) axesPaths() []path.Path {
	cx, cy := c.center()
	w, h := float64(c.Width), float64(c.Height)
	return []path.Path{
		box(hline(0, w-arrowLen, cy, axesWidth)),
		box(vline(cx, arrowLen, h, axesWidth)),
		polygon(
			vec.Vec2{X: w, Y: cy},
			vec.Vec2{X: w - arrowLen, Y: cy + arrowHalf},
			vec.Vec2{X: w - arrowLen, Y: cy - arrowHalf},
		),
		polygon(
			vec.Vec2{X: cx, Y: 0},
			vec.Vec2{X: cx - arrowHalf, Y: arrowLen},
			vec.Vec2{X: cx + arrowHalf, Y: arrowLen},
		),
	}
}

// drawLabels writes the logical coordinate next to every grid line,
// and the names of the axes.
func (c *Canvas) drawLabels(dst draw.Image) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(LabelColor),
		Face: basicfont.Face7x13,
	}
	text := func(x, y float64, s string) {
		d.Dot = fixed.P(int(math.Round(x)), int(math.Round(y)))
		d.DrawString(s)
	}

	cx, cy := c.center()
	xs, ys := c.gridLines()
	for _, x := range xs {
		if x == cx {
			continue
		}
		k := int(math.Round((x - cx) / c.Scale))
		text(x-labelShift, cy+15, fmt.Sprint(k))
	}
	for _, y := range ys {
		if y == cy {
			continue
		}
		k := int(math.Round((cy - y) / c.Scale))
		text(cx+10, y+labelShift, fmt.Sprint(k))
	}

	text(float64(c.Width)-20, cy-10, "X")
	text(cx+10, 20, "Y")
	text(cx-10, cy+20, "O")
}
