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

import "image"

// AppendBresenhamLine appends the pixels of l to dst, computed by
// Bresenham's integer line algorithm.
//
// This is the symmetric variant where the x and y steps are decided
// independently, so a single iteration may step diagonally.  The
// output always starts at l.P1 and ends at l.P2.
func AppendBresenhamLine(dst []image.Point, l Line, tr *Trace) []image.Point {
	tr.reset(BresenhamLine)
	x1, y1, x2, y2 := l.P1.X, l.P1.Y, l.P2.X, l.P2.Y
	tr.addf("points: (%d,%d) -> (%d,%d)", x1, y1, x2, y2)

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx := sign(x2 - x1)
	sy := sign(y2 - y1)
	err := dx - dy
	tr.addf("dx = %d, dy = %d", dx, dy)
	tr.addf("sx = %d, sy = %d", sx, sy)
	tr.addf("initial error err = dx - dy = %d", err)

	x, y := x1, y1
	step := 0
	dst = append(dst, image.Pt(x, y))
	tr.addf("step %d: (%d,%d), err = %d", step, x, y, err)

	for x != x2 || y != y2 {
		e2 := 2 * err
		tr.addf("  e2 = 2*err = %d", e2)
		if e2 > -dy {
			err -= dy
			x += sx
			tr.addf("  e2 > -dy: err -= dy -> %d, x += sx -> %d", err, x)
		}
		if e2 < dx {
			err += dx
			y += sy
			tr.addf("  e2 < dx: err += dx -> %d, y += sy -> %d", err, y)
		}
		step++
		dst = append(dst, image.Pt(x, y))
		tr.addf("step %d: (%d,%d), err = %d", step, x, y, err)
	}
	return dst
}

// AppendBresenhamCircle appends the pixels of the outline of c to dst,
// computed by Bresenham's circle algorithm.
//
// One octant is computed; every computed point is emitted eight times,
// reflected into all octants.  Points on the octant boundaries appear
// more than once.  If c.Radius <= 0, only the centre is emitted.
func AppendBresenhamCircle(dst []image.Point, c Circle, tr *Trace) []image.Point {
	tr.reset(BresenhamCircle)
	xc, yc, r := c.Center.X, c.Center.Y, c.Radius
	tr.addf("centre: (%d,%d), radius: %d", xc, yc, r)

	if r <= 0 {
		tr.addf("radius must be positive")
		return append(dst, c.Center)
	}

	x := 0
	y := r
	d := 3 - 2*r
	tr.addf("initial values: x=0, y=%d, d=3-2*r=%d", r, d)

	dst = appendOctants(dst, xc, yc, x, y)
	step := 0
	tr.addf("step %d: x=%d, y=%d, d=%d", step, x, y, d)

	for y >= x {
		x++
		if d > 0 {
			y--
			d += 4*(x-y) + 10
			tr.addf("  d > 0: y--, d += 4*(x-y) + 10 -> %d", d)
		} else {
			d += 4*x + 6
			tr.addf("  d <= 0: d += 4*x + 6 -> %d", d)
		}
		dst = appendOctants(dst, xc, yc, x, y)
		step++
		tr.addf("step %d: x=%d, y=%d, d=%d", step, x, y, d)
	}
	return dst
}

// appendOctants appends the eight reflections of (x, y) about (xc, yc).
func appendOctants(dst []image.Point, xc, yc, x, y int) []image.Point {
	return append(dst,
		image.Pt(xc+x, yc+y),
		image.Pt(xc-x, yc+y),
		image.Pt(xc+x, yc-y),
		image.Pt(xc-x, yc-y),
		image.Pt(xc+y, yc+x),
		image.Pt(xc-y, yc+x),
		image.Pt(xc+y, yc-x),
		image.Pt(xc-y, yc-x),
	)
}
