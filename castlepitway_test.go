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
	"testing"
)

func TestOctantRoundTrip(t *testing.T) {
	for i := range octants {
		o := &octants[i]
		for x := -20; x <= 20; x++ {
			for y := -20; y <= 20; y++ {
				p := image.Pt(x, y)
				if q := o.inverse(o.forward(p)); q != p {
					t.Fatalf("octant %d: %v -> %v", i, p, q)
				}
				if q := o.forward(o.inverse(p)); q != p {
					t.Fatalf("octant %d: %v -> %v (inverse first)", i, p, q)
				}
			}
		}
	}
}

func TestOctantForwardIntoFirstOctant(t *testing.T) {
	for x := -20; x <= 20; x++ {
		for y := -20; y <= 20; y++ {
			d := image.Pt(x, y)
			if d == (image.Point{}) {
				continue
			}
			oct := classify(d)
			m := octants[oct].forward(d)
			if m.Y < 0 || m.Y > m.X {
				t.Errorf("%v in octant %d maps to %v", d, oct, m)
			}
		}
	}
}

func TestOctantFlagsUnique(t *testing.T) {
	seen := map[[3]bool]int{}
	for i, o := range octants {
		key := [3]bool{o.xMajor, o.negX, o.negY}
		if j, dup := seen[key]; dup {
			t.Errorf("octants %d and %d have the same flags", j, i)
		}
		seen[key] = i
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		d    image.Point
		want int
	}{
		{image.Pt(5, 2), 0},
		{image.Pt(2, 5), 1},
		{image.Pt(-2, 5), 2},
		{image.Pt(5, -2), 3},
		{image.Pt(-5, 2), 4},
		{image.Pt(-2, -5), 5},
		{image.Pt(2, -5), 6},
		{image.Pt(-5, -2), 7},
		{image.Pt(3, 3), 0},
		{image.Pt(-3, -3), 7},
		{image.Pt(0, 4), 1},
		{image.Pt(0, -4), 6},
	}
	for _, c := range cases {
		if got := classify(c.d); got != c.want {
			t.Errorf("classify(%v) = %d, want %d", c.d, got, c.want)
		}
	}
}
