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

// octant describes one of the eight direction classes of a line and the
// coordinate transform which maps it into the first octant
// 0 <= dy <= dx.
type octant struct {
	name string

	// classification: |dx| >= |dy|, dx < 0, dy < 0
	xMajor, negX, negY bool

	forward, inverse func(image.Point) image.Point
}

// octants is indexed by octant number.  Every combination of the three
// classification flags occurs exactly once.
var octants = [8]octant{
	{
		name: "identity", xMajor: true,
		forward: func(p image.Point) image.Point { return p },
		inverse: func(p image.Point) image.Point { return p },
	},
	{
		name:    "swap",
		forward: func(p image.Point) image.Point { return image.Pt(p.Y, p.X) },
		inverse: func(p image.Point) image.Point { return image.Pt(p.Y, p.X) },
	},
	{
		name: "negate x, swap", negX: true,
		forward: func(p image.Point) image.Point { return image.Pt(p.Y, -p.X) },
		inverse: func(p image.Point) image.Point { return image.Pt(-p.Y, p.X) },
	},
	{
		name: "negate y", xMajor: true, negY: true,
		forward: func(p image.Point) image.Point { return image.Pt(p.X, -p.Y) },
		inverse: func(p image.Point) image.Point { return image.Pt(p.X, -p.Y) },
	},
	{
		name: "negate x", xMajor: true, negX: true,
		forward: func(p image.Point) image.Point { return image.Pt(-p.X, p.Y) },
		inverse: func(p image.Point) image.Point { return image.Pt(-p.X, p.Y) },
	},
	{
		name: "negate both, swap", negX: true, negY: true,
		forward: func(p image.Point) image.Point { return image.Pt(-p.Y, -p.X) },
		inverse: func(p image.Point) image.Point { return image.Pt(-p.Y, -p.X) },
	},
	{
		name: "negate y, swap", negY: true,
		forward: func(p image.Point) image.Point { return image.Pt(-p.Y, p.X) },
		inverse: func(p image.Point) image.Point { return image.Pt(p.Y, -p.X) },
	},
	{
		name: "negate both", xMajor: true, negX: true, negY: true,
		forward: func(p image.Point) image.Point { return image.Pt(-p.X, -p.Y) },
		inverse: func(p image.Point) image.Point { return image.Pt(-p.X, -p.Y) },
	},
}

// classify returns the octant number of the direction d.
// Ties |dx| == |dy| count as x-major.
func classify(d image.Point) int {
	xMajor := abs(d.X) >= abs(d.Y)
	negX := d.X < 0
	negY := d.Y < 0
	for i := range octants {
		o := &octants[i]
		if o.xMajor == xMajor && o.negX == negX && o.negY == negY {
			return i
		}
	}
	panic("unreachable")
}

// AppendCastlePitway appends the pixels of l to dst.  The line is mapped
// into the first octant, rasterized there with an integer decision
// variable, and every pixel is mapped back before it is emitted.
func AppendCastlePitway(dst []image.Point, l Line, tr *Trace) []image.Point {
	tr.reset(CastlePitway)
	tr.addf("points: (%d,%d) -> (%d,%d)", l.P1.X, l.P1.Y, l.P2.X, l.P2.Y)

	d := l.P2.Sub(l.P1)
	tr.addf("dx = %d, dy = %d", abs(d.X), abs(d.Y))
	if d.X == 0 && d.Y == 0 {
		tr.addf("endpoints coincide")
		return append(dst, l.P1)
	}

	oct := classify(d)
	o := &octants[oct]
	tr.addf("octant: %d (%s)", oct, o.name)

	a := o.forward(l.P1)
	b := o.forward(l.P2)
	tr.addf("mapped to the first octant: (%d,%d) -> (%d,%d)", a.X, a.Y, b.X, b.Y)

	dx := b.X - a.X
	dy := b.Y - a.Y
	e := 2*dy - dx
	tr.addf("dx' = %d, dy' = %d", dx, dy)
	tr.addf("initial error = 2*dy' - dx' = %d", e)

	x, y := a.X, a.Y
	step := 0
	p := o.inverse(image.Pt(x, y))
	dst = append(dst, p)
	tr.addf("step %d: (%d,%d), error=%d", step, p.X, p.Y, e)

	for x < b.X {
		x++
		if e > 0 {
			y++
			e += 2 * (dy - dx)
			tr.addf("  error > 0: y++, error += 2*(dy'-dx') -> %d", e)
		} else {
			e += 2 * dy
			tr.addf("  error <= 0: error += 2*dy' -> %d", e)
		}
		step++
		p = o.inverse(image.Pt(x, y))
		dst = append(dst, p)
		tr.addf("step %d: (%d,%d), error=%d", step, p.X, p.Y, e)
	}
	return dst
}
