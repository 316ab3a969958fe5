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

// AppendDDA appends the pixels of l to dst, computed by the digital
// differential analyzer.
//
// The number of steps is max(|dx|, |dy|).  Both coordinates are advanced
// by a constant float32 increment and rounded independently at every step,
// so the rounding drift of repeated float32 addition shows in the output.
func AppendDDA(dst []image.Point, l Line, tr *Trace) []image.Point {
	tr.reset(DDA)
	tr.addf("points: (%d,%d) -> (%d,%d)", l.P1.X, l.P1.Y, l.P2.X, l.P2.Y)

	dx := l.P2.X - l.P1.X
	dy := l.P2.Y - l.P1.Y
	steps := max(abs(dx), abs(dy))
	tr.addf("dx = %d, dy = %d", dx, dy)
	tr.addf("steps = max(|dx|, |dy|) = %d", steps)

	if steps == 0 {
		tr.addf("endpoints coincide")
		return append(dst, l.P1)
	}

	xInc := float32(dx) / float32(steps)
	yInc := float32(dy) / float32(steps)
	tr.addf("xInc = dx/steps = %f", xInc)
	tr.addf("yInc = dy/steps = %f", yInc)

	x := float32(l.P1.X)
	y := float32(l.P1.Y)
	for i := 0; i <= steps; i++ {
		p := image.Pt(round32(x), round32(y))
		dst = append(dst, p)
		tr.addf("step %d: x=%f, y=%f -> (%d,%d)", i, x, y, p.X, p.Y)
		x += xInc
		y += yInc
	}
	return dst
}

// round32 rounds half away from zero.
func round32(x float32) int {
	return int(math.Round(float64(x)))
}
