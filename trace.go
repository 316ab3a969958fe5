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
	"strings"
)

// Trace is a human-readable log of the state of a rasterization
// algorithm. The first line names the algorithm, the following lines show
// the derived initial quantities and then one line per iteration.
//
// A Trace is cleared at the start of every call it is passed to.
// All methods accept a nil receiver; a nil Trace records nothing.
type Trace struct {
	Algorithm Algorithm
	Lines     []string
}

// reset clears the trace and writes the title line for alg.
func (t *Trace) reset(alg Algorithm) {
	if t == nil {
		return
	}
	t.Algorithm = alg
	t.Lines = append(t.Lines[:0], "=== "+alg.String()+" ===")
}

// addf appends one formatted line.
func (t *Trace) addf(format string, args ...any) {
	if t == nil {
		return
	}
	t.Lines = append(t.Lines, fmt.Sprintf(format, args...))
}

// Len returns the number of lines in the trace.
func (t *Trace) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Lines)
}

// String returns the trace as a newline-separated string.
func (t *Trace) String() string {
	if t == nil {
		return ""
	}
	return strings.Join(t.Lines, "\n")
}
