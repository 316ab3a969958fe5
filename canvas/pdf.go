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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/linedraw"
)

// WritePDF writes the samples, the grid and the axes to a single-page PDF
// file.  One device pixel corresponds to one PDF point.  Coverage is shown
// as a grey level, from white (no coverage) to black (full coverage).
func (c *Canvas) WritePDF(fileName string, samples []linedraw.Sample) error {
	w, h := float64(c.Width), float64(c.Height)
	paper := &pdf.Rectangle{URx: w, URy: h}

	page, err := document.CreateSinglePage(fileName, paper, pdf.V1_7, nil)
	if err != nil {
		return fmt.Errorf("creating %s: %w", fileName, err)
	}

	page.SetFillColor(color.DeviceGray(1))
	page.Rectangle(0, 0, w, h)
	page.Fill()

	// PDF origin is bottom-left; device coordinates start top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, h})

	page.SetLineCap(graphics.LineCapButt)
	if c.Grid {
		xs, ys := c.gridLines()
		page.SetStrokeColor(color.DeviceGray(0.8))
		page.SetLineWidth(gridWidth)
		for _, x := range xs {
			page.MoveTo(x, 0)
			page.LineTo(x, h)
		}
		for _, y := range ys {
			page.MoveTo(0, y)
			page.LineTo(w, y)
		}
		page.Stroke()
	}
	if c.Axes {
		paths := c.axesPaths()
		page.SetFillColor(color.DeviceGray(0))
		for _, p := range paths {
			appendPath(page, p)
		}
		page.Fill()
	}

	drawn := 0
	for _, s := range samples {
		alpha := min(max(s.Coverage, 0), 1)
		if alpha == 0 {
			continue
		}
		sq := c.square(s.Point)
		if sq.URx <= c.Clip.LLx || sq.LLx >= c.Clip.URx || sq.URy <= c.Clip.LLy || sq.LLy >= c.Clip.URy {
			continue
		}
		page.SetFillColor(color.DeviceGray(1 - alpha))
		page.Rectangle(sq.LLx, sq.LLy, sq.URx-sq.LLx, sq.URy-sq.LLy)
		page.Fill()
		drawn++
	}

	err = page.Close()
	if err != nil {
		return fmt.Errorf("writing %s: %w", fileName, err)
	}
	Logger().Debug("wrote PDF", "file", fileName, "samples", drawn)
	return nil
}
