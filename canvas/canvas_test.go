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
	"bytes"
	"image"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/linedraw"
)

type row struct {
	y, xMin  int
	coverage []float32
}

func collect(c *Canvas, samples []linedraw.Sample) []row {
	var rows []row
	c.Fill(samples, func(y, xMin int, coverage []float32) {
		rows = append(rows, row{y, xMin, append([]float32(nil), coverage...)})
	})
	return rows
}

func sample(x, y int, coverage float64) linedraw.Sample {
	return linedraw.Sample{Point: image.Pt(x, y), Coverage: coverage}
}

func TestDeviceLogical(t *testing.T) {
	c := New(41, 30, 4)

	o := c.Device(0, 0)
	assert.Equal(t, 20.0, o.X)
	assert.Equal(t, 15.0, o.Y)

	p := c.Device(2, 1)
	assert.Equal(t, 28.0, p.X)
	assert.Equal(t, 11.0, p.Y, "logical y points up")

	for x := -5; x <= 5; x++ {
		for y := -3; y <= 3; y++ {
			d := c.Device(float64(x), float64(y))
			assert.Equal(t, image.Pt(x, y), c.Logical(d.X, d.Y))
		}
	}
}

func TestFillSquare(t *testing.T) {
	c := New(40, 40, 4)
	rows := collect(c, []linedraw.Sample{sample(0, 0, 1)})

	full := []float32{1, 1, 1, 1}
	want := []row{
		{20, 20, full}, {21, 20, full}, {22, 20, full}, {23, 20, full},
	}
	assert.Equal(t, want, rows)
}

func TestFillNegativeQuadrant(t *testing.T) {
	c := New(40, 40, 4)
	rows := collect(c, []linedraw.Sample{sample(-1, 1, 1)})
	require.Len(t, rows, 4)
	for i, r := range rows {
		assert.Equal(t, 16+i, r.y)
		assert.Equal(t, 16, r.xMin)
		assert.Equal(t, []float32{1, 1, 1, 1}, r.coverage)
	}
}

func TestFillFractionalScale(t *testing.T) {
	c := New(20, 20, 2.5)
	rows := collect(c, []linedraw.Sample{sample(0, 0, 1)})
	want := []row{
		{10, 10, []float32{1, 1, 0.5}},
		{11, 10, []float32{1, 1, 0.5}},
		{12, 10, []float32{0.5, 0.5, 0.25}},
	}
	assert.Equal(t, want, rows)
}

func TestFillCoverage(t *testing.T) {
	c := New(10, 10, 1)

	rows := collect(c, []linedraw.Sample{sample(0, 0, 0.25)})
	require.Len(t, rows, 1)
	assert.Equal(t, []float32{0.25}, rows[0].coverage)

	// later samples are composited over earlier ones
	rows = collect(c, []linedraw.Sample{sample(0, 0, 0.5), sample(0, 0, 0.5)})
	require.Len(t, rows, 1)
	assert.InDelta(t, 0.75, rows[0].coverage[0], 1e-6)

	// zero coverage draws nothing
	rows = collect(c, []linedraw.Sample{sample(1, 1, 0)})
	assert.Empty(t, rows)
}

func TestFillClip(t *testing.T) {
	c := New(40, 40, 4)
	c.Clip.LLx = 21
	c.Clip.LLy = 20
	c.Clip.URx = 23
	c.Clip.URy = 22
	rows := collect(c, []linedraw.Sample{sample(0, 0, 1), sample(3, 3, 1)})
	want := []row{
		{20, 21, []float32{1, 1}},
		{21, 21, []float32{1, 1}},
	}
	assert.Equal(t, want, rows)
}

func TestFillOutside(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	c := New(40, 40, 4)
	rows := collect(c, []linedraw.Sample{sample(100, 0, 1), sample(0, -100, 1)})
	assert.Empty(t, rows)
	assert.Contains(t, buf.String(), "samples outside the canvas")
	assert.Contains(t, buf.String(), "count=2")
}

func TestTrimZeros(t *testing.T) {
	trimmed, offset := trimZeros([]float32{0, 0, 0.5, 0, 1, 0})
	assert.Equal(t, []float32{0.5, 0, 1}, trimmed)
	assert.Equal(t, 2, offset)

	trimmed, offset = trimZeros([]float32{0, 0, 0})
	assert.Nil(t, trimmed)
	assert.Equal(t, 0, offset)

	trimmed, offset = trimZeros([]float32{1})
	assert.Equal(t, []float32{1}, trimmed)
	assert.Equal(t, 0, offset)
}

func TestFillReuse(t *testing.T) {
	c := New(40, 40, 4)
	a := collect(c, []linedraw.Sample{sample(0, 0, 1)})
	collect(c, []linedraw.Sample{sample(-3, 2, 1), sample(4, 4, 0.5)})
	b := collect(c, []linedraw.Sample{sample(0, 0, 1)})
	assert.Equal(t, a, b, "coverage must not leak between calls")
}
