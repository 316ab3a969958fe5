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

package linedraw

import (
	"image"
	"math"
)

// AppendStepByStep appends the pixels of l to dst, computed by stepping
// along the dominant axis and rounding the other coordinate.
//
// The x axis is dominant if |dx| > |dy|, otherwise (including the case
// |dx| == |dy|) the y axis is.  The minor coordinate is accumulated by
// repeated addition of the slope.
func AppendStepByStep(dst []image.Point, l Line, tr *Trace) []image.Point {
	tr.reset(StepByStep)
	x1, y1, x2, y2 := l.P1.X, l.P1.Y, l.P2.X, l.P2.Y
	tr.addf("points: (%d,%d) -> (%d,%d)", x1, y1, x2, y2)

	if l.IsPoint() {
		tr.addf("endpoints coincide")
		return append(dst, l.P1)
	}

	dx := float64(x2 - x1)
	dy := float64(y2 - y1)
	tr.addf("dx = %f, dy = %f", dx, dy)

	if math.Abs(dx) > math.Abs(dy) {
		tr.addf("|dx| > |dy|, stepping along x")
		if x1 > x2 {
			x1, x2 = x2, x1
			y1, y2 = y2, y1
			dx, dy = -dx, -dy
		}
		k := dy / dx
		tr.addf("k = dy/dx = %f", k)

		y := float64(y1)
		for x := x1; x <= x2; x++ {
			yr := math.Round(y)
			dst = append(dst, image.Pt(x, int(yr)))
			tr.addf("x=%d, y=%f -> rounded to %.0f", x, y, yr)
			y += k
		}
		return dst
	}

	tr.addf("|dy| >= |dx|, stepping along y")
	if y1 > y2 {
		x1, x2 = x2, x1
		y1, y2 = y2, y1
		dx, dy = -dx, -dy
	}
	k := dx / dy
	tr.addf("k = dx/dy = %f", k)

	x := float64(x1)
	for y := y1; y <= y2; y++ {
		xr := math.Round(x)
		dst = append(dst, image.Pt(int(xr), y))
		tr.addf("y=%d, x=%f -> rounded to %.0f", y, x, xr)
		x += k
	}
	return dst
}
