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

// AppendWu appends antialiased samples for l to dst, computed by Xiaolin
// Wu's line algorithm.
//
// Every column along the major axis receives two vertically adjacent
// samples whose coverages add up to the horizontal coverage of the column.
// The two endpoint columns are emitted first, then the columns in between
// from left to right.  Samples with zero coverage are not omitted.
//
// If both endpoints coincide, a single sample with coverage 1 is emitted.
func AppendWu(dst []Sample, l Line, tr *Trace) []Sample {
	tr.reset(Wu)
	x1, y1, x2, y2 := l.P1.X, l.P1.Y, l.P2.X, l.P2.Y
	tr.addf("points: (%d,%d) -> (%d,%d)", x1, y1, x2, y2)

	if l.IsPoint() {
		tr.addf("endpoints coincide")
		return append(dst, Sample{Point: l.P1, Coverage: 1})
	}

	// In steep mode x and y are exchanged internally, and exchanged back
	// when a sample is emitted.
	steep := abs(y2-y1) > abs(x2-x1)
	if steep {
		x1, y1 = y1, x1
		x2, y2 = y2, x2
		tr.addf("steep line (|dy| > |dx|), exchanging x and y")
	}
	if x1 > x2 {
		x1, x2 = x2, x1
		y1, y2 = y2, y1
		tr.addf("exchanging endpoints to draw left to right")
	}
	plot := func(x, y int, c float64) {
		if steep {
			x, y = y, x
		}
		dst = append(dst, Sample{Point: image.Pt(x, y), Coverage: c})
	}

	dx := float64(x2 - x1)
	dy := float64(y2 - y1)
	gradient := 1.0
	if dx != 0 {
		gradient = dy / dx
	}
	tr.addf("dx = %f, dy = %f", dx, dy)
	tr.addf("gradient = dy/dx = %f", gradient)

	// first endpoint
	xend := math.Round(float64(x1))
	yend := float64(y1) + gradient*(xend-float64(x1))
	xgap := 1 - fpart(float64(x1)+0.5)
	xpxl1 := int(xend)
	ypxl1 := int(math.Floor(yend))
	c1, c2 := (1-fpart(yend))*xgap, fpart(yend)*xgap
	plot(xpxl1, ypxl1, c1)
	plot(xpxl1, ypxl1+1, c2)
	tr.addf("first endpoint: x=%d, y=%d, alpha1=%f, alpha2=%f", xpxl1, ypxl1, c1, c2)

	intery := yend + gradient

	// second endpoint
	xend = math.Round(float64(x2))
	yend = float64(y2) + gradient*(xend-float64(x2))
	xgap = fpart(float64(x2) + 0.5)
	xpxl2 := int(xend)
	ypxl2 := int(math.Floor(yend))
	c1, c2 = (1-fpart(yend))*xgap, fpart(yend)*xgap
	plot(xpxl2, ypxl2, c1)
	plot(xpxl2, ypxl2+1, c2)
	tr.addf("last endpoint: x=%d, y=%d, alpha1=%f, alpha2=%f", xpxl2, ypxl2, c1, c2)

	tr.addf("main loop:")
	for x := xpxl1 + 1; x < xpxl2; x++ {
		y := int(math.Floor(intery))
		f := fpart(intery)
		plot(x, y, 1-f)
		plot(x, y+1, f)
		tr.addf("x=%d, y=%d, alpha1=%f, alpha2=%f", x, y, 1-f, f)
		intery += gradient
	}
	return dst
}
