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
	"fmt"
	"image"
	"strings"
)

// Algorithm selects one of the rasterization algorithms.
type Algorithm int

// These are the supported algorithms.
const (
	StepByStep Algorithm = iota
	DDA
	BresenhamLine
	BresenhamCircle
	Wu
	CastlePitway

	numAlgorithms int = iota
)

// Algorithms lists all supported algorithms in order.
var Algorithms = []Algorithm{
	StepByStep, DDA, BresenhamLine, BresenhamCircle, Wu, CastlePitway,
}

var algorithmNames = [...]string{
	StepByStep:      "step-by-step",
	DDA:             "DDA",
	BresenhamLine:   "Bresenham line",
	BresenhamCircle: "Bresenham circle",
	Wu:              "Wu",
	CastlePitway:    "Castle-Pitway",
}

// algorithmAliases maps normalized names to algorithms.
var algorithmAliases = map[string]Algorithm{
	"stepbystep":      StepByStep,
	"step":            StepByStep,
	"dda":             DDA,
	"bresenham":       BresenhamLine,
	"bresenhamline":   BresenhamLine,
	"line":            BresenhamLine,
	"bresenhamcircle": BresenhamCircle,
	"circle":          BresenhamCircle,
	"wu":              Wu,
	"xiaolinwu":       Wu,
	"castlepitway":    CastlePitway,
	"castle":          CastlePitway,
}

func (a Algorithm) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return algorithmNames[a]
}

// Valid reports whether a is one of the supported algorithms.
func (a Algorithm) Valid() bool {
	return a >= 0 && int(a) < numAlgorithms
}

// Antialiased reports whether a produces fractional coverage values.
func (a Algorithm) Antialiased() bool {
	return a == Wu
}

// ParseAlgorithm returns the algorithm with the given name.
// Case, spaces, hyphens and underscores are ignored, so that
// "Bresenham line", "bresenham-line" and "BRESENHAM_LINE" are equivalent.
// A few short aliases like "step", "circle" and "castle" are accepted.
func ParseAlgorithm(name string) (Algorithm, error) {
	key := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, strings.ToLower(name))
	if a, ok := algorithmAliases[key]; ok {
		return a, nil
	}
	return 0, fmt.Errorf("unknown algorithm %q", name)
}

// Result is the output of one call to [Rasterize].
type Result struct {
	Algorithm Algorithm

	// Pixels holds the output of the opaque algorithms.
	Pixels []image.Point

	// Coverage holds the output of the antialiased algorithm.
	Coverage []Sample

	Trace *Trace
}

// Len returns the number of samples in the result.
func (r *Result) Len() int {
	return len(r.Pixels) + len(r.Coverage)
}

// Samples returns the result as a sequence of samples.
// Opaque pixels have coverage 1.
func (r *Result) Samples() []Sample {
	if r.Algorithm.Antialiased() {
		return r.Coverage
	}
	return opaque(make([]Sample, 0, len(r.Pixels)), r.Pixels)
}

// Rasterize runs the algorithm alg on l and records a trace.
//
// For [BresenhamCircle], l.P1 is the centre and the radius is
// l.Radius(). Rasterize panics if alg is not valid.
func Rasterize(alg Algorithm, l Line) Result {
	res := Result{Algorithm: alg, Trace: &Trace{}}
	switch alg {
	case StepByStep:
		res.Pixels = AppendStepByStep(nil, l, res.Trace)
	case DDA:
		res.Pixels = AppendDDA(nil, l, res.Trace)
	case BresenhamLine:
		res.Pixels = AppendBresenhamLine(nil, l, res.Trace)
	case BresenhamCircle:
		c := Circle{Center: l.P1, Radius: l.Radius()}
		res.Pixels = AppendBresenhamCircle(nil, c, res.Trace)
	case Wu:
		res.Coverage = AppendWu(nil, l, res.Trace)
	case CastlePitway:
		res.Pixels = AppendCastlePitway(nil, l, res.Trace)
	default:
		panic(fmt.Sprintf("linedraw: invalid algorithm %d", int(alg)))
	}
	return res
}
