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

// Package linedraw converts lines and circles with integer coordinates
// into sequences of raster samples.
//
// Six classical algorithms are provided: step-by-step, DDA, Bresenham
// (line and circle), Xiaolin Wu's antialiased line and Castle-Pitway.
// Every algorithm is a pure function which appends its output to a
// caller-provided slice. An optional [Trace] records the internal state
// of the algorithm at every iteration.
//
// Coordinates are logical coordinates with the y axis pointing up.
// Scaling to device space is left to the caller, see package
// seehuhn.de/go/linedraw/canvas.
package linedraw

import (
	"image"
	"math"
)

// Line is a line segment between two integer points.
// The endpoints may be given in any order.
type Line struct {
	P1, P2 image.Point
}

// L is shorthand for Line{image.Pt(x1, y1), image.Pt(x2, y2)}.
func L(x1, y1, x2, y2 int) Line {
	return Line{P1: image.Pt(x1, y1), P2: image.Pt(x2, y2)}
}

// IsPoint reports whether both endpoints coincide.
func (l Line) IsPoint() bool {
	return l.P1 == l.P2
}

// Radius returns the length of l, truncated towards zero.
// This is the radius of the circle centred at P1 which passes near P2.
func (l Line) Radius() int {
	d := l.P2.Sub(l.P1)
	return int(math.Sqrt(float64(d.X*d.X + d.Y*d.Y)))
}

// Reverse returns the line with its endpoints exchanged.
func (l Line) Reverse() Line {
	return Line{P1: l.P2, P2: l.P1}
}

// Circle is a circle with integer centre and radius.
// A radius of zero or less describes the centre point only.
type Circle struct {
	Center image.Point
	Radius int
}

// Sample is a pixel together with the fraction of the pixel covered by the
// idealised shape, in the range [0, 1].
type Sample struct {
	image.Point
	Coverage float64
}

// opaque converts pixels to samples with full coverage.
func opaque(dst []Sample, pixels []image.Point) []Sample {
	for _, p := range pixels {
		dst = append(dst, Sample{Point: p, Coverage: 1})
	}
	return dst
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns -1 for negative x and +1 otherwise.
// sign(0) is +1 so that a zero delta never produces a zero step.
func sign(x int) int {
	if x < 0 {
		return -1
	}
	return 1
}

// fpart returns the fractional part of x, in the range [0, 1).
func fpart(x float64) float64 {
	return x - math.Floor(x)
}
