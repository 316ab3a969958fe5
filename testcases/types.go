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

package testcases

import "image"

// TestCase defines a single rasterization scenario.
type TestCase struct {
	Name      string      // lowercase a-z, 0-9 and _ only
	Algorithm string      // accepted by linedraw.ParseAlgorithm
	From, To  image.Point // line endpoints; for circles From is the centre
	Width     int         // canvas width in pixels
	Height    int         // canvas height in pixels
	Scale     float64     // canvas pixels per logical unit

	// Want, if non-nil, is the exact expected pixel sequence.
	Want []image.Point
}

// Default canvas parameters.
const (
	defaultWidth  = 256
	defaultHeight = 256
	defaultScale  = 8
)

// pt is a helper to create an image.Point from x, y coordinates.
func pt(x, y int) image.Point {
	return image.Point{X: x, Y: y}
}

// pts builds a point list from alternating x, y coordinates.
func pts(xy ...int) []image.Point {
	res := make([]image.Point, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		res = append(res, pt(xy[i], xy[i+1]))
	}
	return res
}

// compass is a set of line directions, one from every octant, including
// the axis and diagonal directions which separate the octants.
var compass = []struct {
	name string
	d    image.Point
}{
	{"e", pt(9, 0)},
	{"ene", pt(9, 4)},
	{"ne", pt(7, 7)},
	{"nne", pt(3, 10)},
	{"n", pt(0, 8)},
	{"nnw", pt(-4, 11)},
	{"nw", pt(-6, 6)},
	{"wnw", pt(-10, 3)},
	{"w", pt(-9, 0)},
	{"wsw", pt(-12, -5)},
	{"sw", pt(-5, -5)},
	{"ssw", pt(-2, -9)},
	{"s", pt(0, -7)},
	{"sse", pt(5, -13)},
	{"se", pt(8, -8)},
	{"ese", pt(11, -1)},
}

// lineStar returns one test case per compass direction, all starting at
// from and using the given algorithm.
func lineStar(prefix, algorithm string, from image.Point) []TestCase {
	var res []TestCase
	for _, c := range compass {
		res = append(res, TestCase{
			Name:      prefix + "_" + c.name,
			Algorithm: algorithm,
			From:      from,
			To:        from.Add(c.d),
			Width:     defaultWidth,
			Height:    defaultHeight,
			Scale:     defaultScale,
		})
	}
	return res
}
