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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// polygon builds a closed path through the given vertices.
func polygon(vertices ...vec.Vec2) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if len(vertices) == 0 {
			return
		}
		if !yield(path.CmdMoveTo, vertices[:1]) {
			return
		}
		for i := 1; i < len(vertices); i++ {
			if !yield(path.CmdLineTo, vertices[i:i+1]) {
				return
			}
		}
		yield(path.CmdClose, nil)
	}
}

// box builds a rectangular path.
func box(r rect.Rect) path.Path {
	return polygon(
		vec.Vec2{X: r.LLx, Y: r.LLy},
		vec.Vec2{X: r.URx, Y: r.LLy},
		vec.Vec2{X: r.URx, Y: r.URy},
		vec.Vec2{X: r.LLx, Y: r.URy},
	)
}

// hline returns a horizontal bar of the given thickness centred on y.
func hline(x0, x1, y, width float64) rect.Rect {
	return rect.Rect{LLx: x0, LLy: y - width/2, URx: x1, URy: y + width/2}
}

// vline returns a vertical bar of the given thickness centred on x.
func vline(x, y0, y1, width float64) rect.Rect {
	return rect.Rect{LLx: x - width/2, LLy: y0, URx: x + width/2, URy: y1}
}

// pathBuilder receives the line segments of a path.  It is implemented by
// *vector.Rasterizer (through vectorPath) and by the PDF page writer.
type pathBuilder interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
}

// appendPath replays the commands of p on b.  Only straight segments
// occur in the paths of this package.
func appendPath(b pathBuilder, p path.Path) {
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			b.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			b.LineTo(pts[0].X, pts[0].Y)
		case path.CmdClose:
			b.ClosePath()
		}
	}
}
