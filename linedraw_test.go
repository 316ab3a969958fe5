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
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// lineAlgorithms are the opaque line algorithms, which share the
// endpoint-inclusion contract.
var lineAlgorithms = []struct {
	name string
	fn   func([]image.Point, Line, *Trace) []image.Point
}{
	{"StepByStep", AppendStepByStep},
	{"DDA", AppendDDA},
	{"BresenhamLine", AppendBresenhamLine},
	{"CastlePitway", AppendCastlePitway},
}

func pts(xy ...int) []image.Point {
	res := make([]image.Point, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		res = append(res, image.Pt(xy[i], xy[i+1]))
	}
	return res
}

// randomLines returns reproducible test lines with coordinates in [-50, 50].
func randomLines(n int) []Line {
	rng := rand.New(rand.NewPCG(1, 2))
	c := func() int { return rng.IntN(101) - 50 }
	res := make([]Line, n)
	for i := range res {
		res[i] = L(c(), c(), c(), c())
	}
	return res
}

func pointSet(points []image.Point) []image.Point {
	res := slices.Clone(points)
	slices.SortFunc(res, func(a, b image.Point) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
	return slices.Compact(res)
}

func TestBresenhamLineExample(t *testing.T) {
	got := AppendBresenhamLine(nil, L(0, 0, 5, 2), nil)
	want := pts(0, 0, 1, 0, 2, 1, 3, 1, 4, 2, 5, 2)
	if d := cmp.Diff(want, got); d != "" {
		t.Error(d)
	}
}

func TestCastlePitwayMatchesBresenham(t *testing.T) {
	l := L(0, 0, 5, 2)
	a := AppendCastlePitway(nil, l, nil)
	b := AppendBresenhamLine(nil, l, nil)
	if d := cmp.Diff(pointSet(b), pointSet(a)); d != "" {
		t.Error(d)
	}
}

func TestDegenerateLines(t *testing.T) {
	for _, alg := range lineAlgorithms {
		t.Run(alg.name, func(t *testing.T) {
			for _, p := range pts(0, 0, 3, -7, -12, 4) {
				got := alg.fn(nil, Line{P1: p, P2: p}, nil)
				if d := cmp.Diff([]image.Point{p}, got); d != "" {
					t.Errorf("%v: %s", p, d)
				}
			}
		})
	}

	got := AppendWu(nil, L(2, 2, 2, 2), nil)
	want := []Sample{{Point: image.Pt(2, 2), Coverage: 1}}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("Wu: %s", d)
	}
}

func TestEndpointInclusion(t *testing.T) {
	for _, alg := range lineAlgorithms {
		t.Run(alg.name, func(t *testing.T) {
			for _, l := range randomLines(500) {
				got := alg.fn(nil, l, nil)
				if !slices.Contains(got, l.P1) || !slices.Contains(got, l.P2) {
					t.Fatalf("%v: endpoints missing from %v", l, got)
				}
				d := l.P2.Sub(l.P1)
				if want := max(abs(d.X), abs(d.Y)) + 1; len(got) != want && alg.name != "BresenhamLine" {
					t.Fatalf("%v: got %d points, want %d", l, len(got), want)
				}
			}
		})
	}
}

func TestBresenhamLineEndsAtTarget(t *testing.T) {
	for _, l := range randomLines(500) {
		got := AppendBresenhamLine(nil, l, nil)
		if got[0] != l.P1 || got[len(got)-1] != l.P2 {
			t.Fatalf("%v: runs from %v to %v", l, got[0], got[len(got)-1])
		}
		for i := 1; i < len(got); i++ {
			step := got[i].Sub(got[i-1])
			if abs(step.X) > 1 || abs(step.Y) > 1 || step == (image.Point{}) {
				t.Fatalf("%v: invalid step %v at %d", l, step, i)
			}
		}
	}
}

func TestDeterminism(t *testing.T) {
	for _, l := range randomLines(100) {
		for _, alg := range Algorithms {
			a := Rasterize(alg, l)
			b := Rasterize(alg, l)
			if d := cmp.Diff(a, b); d != "" {
				t.Fatalf("%s %v: %s", alg, l, d)
			}
		}
	}
}

func TestBresenhamLineSymmetry(t *testing.T) {
	// lines where the decision sequence reads the same in both directions
	lines := []Line{
		L(0, 0, 5, 2),
		L(0, 0, 2, 5),
		L(0, 0, -5, 2),
		L(3, 1, -2, -1),
		L(0, 0, 6, 0),
		L(0, 0, 0, 5),
		L(0, 0, 4, 4),
		L(1, 1, 8, -6),
	}
	for _, l := range lines {
		a := AppendBresenhamLine(nil, l, nil)
		b := AppendBresenhamLine(nil, l.Reverse(), nil)
		if d := cmp.Diff(pointSet(a), pointSet(b)); d != "" {
			t.Errorf("%v: %s", l, d)
		}
	}
}

// TestBresenhamLineTie pins down the behaviour when the error term hits an
// exact tie: the two directions then choose different pixels.
func TestBresenhamLineTie(t *testing.T) {
	fwd := AppendBresenhamLine(nil, L(0, 0, 2, 1), nil)
	rev := AppendBresenhamLine(nil, L(2, 1, 0, 0), nil)
	if d := cmp.Diff(pts(0, 0, 1, 0, 2, 1), fwd); d != "" {
		t.Error(d)
	}
	if d := cmp.Diff(pts(2, 1, 1, 1, 0, 0), rev); d != "" {
		t.Error(d)
	}
}

func TestDiagonalSteps(t *testing.T) {
	// The symmetric variant steps x and y in the same iteration.
	got := AppendBresenhamLine(nil, L(0, 0, 3, 3), nil)
	if d := cmp.Diff(pts(0, 0, 1, 1, 2, 2, 3, 3), got); d != "" {
		t.Error(d)
	}
}

func TestStepByStep(t *testing.T) {
	cases := []struct {
		l    Line
		want []image.Point
	}{
		{L(0, 0, 5, 2), pts(0, 0, 1, 0, 2, 1, 3, 1, 4, 2, 5, 2)},
		{L(5, 2, 0, 0), pts(0, 0, 1, 0, 2, 1, 3, 1, 4, 2, 5, 2)},
		// equal deltas step along y
		{L(0, 0, -3, 3), pts(0, 0, -1, 1, -2, 2, -3, 3)},
		{L(0, 0, 1, 4), pts(0, 0, 0, 1, 1, 2, 1, 3, 1, 4)},
	}
	for _, c := range cases {
		got := AppendStepByStep(nil, c.l, nil)
		if d := cmp.Diff(c.want, got); d != "" {
			t.Errorf("%v: %s", c.l, d)
		}
	}
}

func TestDDA(t *testing.T) {
	cases := []struct {
		l    Line
		want []image.Point
	}{
		{L(0, 0, 0, 0), pts(0, 0)},
		{L(0, 0, 4, 2), pts(0, 0, 1, 1, 2, 1, 3, 2, 4, 2)},
		{L(4, 2, 0, 0), pts(4, 2, 3, 2, 2, 1, 1, 1, 0, 0)},
		{L(0, 0, -2, -4), pts(0, 0, -1, -1, -1, -2, -2, -3, -2, -4)},
	}
	for _, c := range cases {
		got := AppendDDA(nil, c.l, nil)
		if d := cmp.Diff(c.want, got); d != "" {
			t.Errorf("%v: %s", c.l, d)
		}
	}
}

func TestAppendKeepsPrefix(t *testing.T) {
	prefix := pts(100, 100)
	got := AppendBresenhamLine(prefix, L(0, 0, 1, 0), nil)
	if d := cmp.Diff(pts(100, 100, 0, 0, 1, 0), got); d != "" {
		t.Error(d)
	}
}

func TestTraceReset(t *testing.T) {
	tr := &Trace{}
	AppendBresenhamLine(nil, L(0, 0, 9, 4), tr)
	first := tr.Len()
	if first < 10 {
		t.Fatalf("trace too short: %q", tr.Lines)
	}

	AppendDDA(nil, L(0, 0, 1, 1), tr)
	if tr.Algorithm != DDA {
		t.Errorf("trace algorithm is %s, want %s", tr.Algorithm, DDA)
	}
	if tr.Lines[0] != "=== DDA ===" {
		t.Errorf("first line is %q", tr.Lines[0])
	}
	for _, line := range tr.Lines {
		if strings.Contains(line, "err") {
			t.Errorf("stale line %q", line)
		}
	}
}

func TestTraceDoesNotChangeOutput(t *testing.T) {
	for _, l := range randomLines(50) {
		for _, alg := range lineAlgorithms {
			a := alg.fn(nil, l, nil)
			b := alg.fn(nil, l, &Trace{})
			if d := cmp.Diff(a, b); d != "" {
				t.Fatalf("%s %v: %s", alg.name, l, d)
			}
		}
	}
}

func TestTraceIterations(t *testing.T) {
	tr := &Trace{}
	got := AppendCastlePitway(nil, L(0, 0, -2, -7), tr)
	steps := 0
	for _, line := range tr.Lines {
		if strings.HasPrefix(line, "step ") {
			steps++
		}
	}
	if steps != len(got) {
		t.Errorf("%d step lines for %d points", steps, len(got))
	}
	if !strings.Contains(tr.String(), "octant: 5") {
		t.Errorf("octant missing from trace:\n%s", tr)
	}
}

func TestNilTrace(t *testing.T) {
	var tr *Trace
	if tr.Len() != 0 || tr.String() != "" {
		t.Error("nil trace is not empty")
	}
}

func TestLineRadius(t *testing.T) {
	cases := []struct {
		l    Line
		want int
	}{
		{L(0, 0, 0, 0), 0},
		{L(0, 0, 3, 4), 5},
		{L(-1, 1, 4, 6), 7},
		{L(2, 2, 1, 1), 1},
	}
	for _, c := range cases {
		if got := c.l.Radius(); got != c.want {
			t.Errorf("%v: radius %d, want %d", c.l, got, c.want)
		}
	}
}
