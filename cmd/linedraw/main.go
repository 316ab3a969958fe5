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

// Command linedraw rasterizes a line or a circle and prints the algorithm
// trace.  Optionally the result is written as a PNG or PDF image.
//
// Usage:
//
//	linedraw [flags]
//
// Example:
//
//	linedraw -a wu --from -3,1 --to 12,5 --trace --png wu.png
//
// For the Bresenham circle algorithm, --from is the centre and the radius
// is the distance to --to, truncated to an integer.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/pflag"

	"seehuhn.de/go/linedraw"
	"seehuhn.de/go/linedraw/canvas"
)

func main() {
	cfg, err := parseArgs(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err == nil {
		err = run(cfg, os.Stdout, os.Stderr)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "linedraw:", err)
		os.Exit(1)
	}
}

func run(cfg Config, out, logOut io.Writer) error {
	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: level}))
	canvas.SetLogger(logger)

	if cfg.List {
		for _, alg := range linedraw.Algorithms {
			fmt.Fprintln(out, alg)
		}
		return nil
	}

	alg, err := linedraw.ParseAlgorithm(cfg.Algorithm)
	if err != nil {
		return err
	}
	l := cfg.Line()

	start := time.Now()
	res := linedraw.Rasterize(alg, l)
	elapsed := time.Since(start)
	logger.Debug("rasterized",
		"algorithm", alg.String(),
		"from", l.P1.String(),
		"to", l.P2.String(),
		"samples", res.Len(),
		"elapsed", elapsed)

	if cfg.Trace {
		for _, line := range res.Trace.Lines {
			fmt.Fprintln(out, line)
		}
	}
	fmt.Fprintf(out, "algorithm: %s\n", alg)
	fmt.Fprintf(out, "points: %d\n", res.Len())
	fmt.Fprintf(out, "time: %d µs\n", elapsed.Microseconds())

	if cfg.PNG == "" && cfg.PDF == "" {
		return nil
	}

	c := canvas.New(cfg.Width, cfg.Height, cfg.Scale)
	c.Grid = cfg.Grid
	c.Axes = cfg.Axes
	c.Labels = cfg.Labels
	samples := res.Samples()

	if cfg.PNG != "" {
		if err := writePNG(c, cfg.PNG, samples); err != nil {
			return err
		}
	}
	if cfg.PDF != "" {
		if err := c.WritePDF(cfg.PDF, samples); err != nil {
			return err
		}
	}
	return nil
}

func writePNG(c *canvas.Canvas, fileName string, samples []linedraw.Sample) (err error) {
	f, err := os.Create(fileName)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return c.WritePNG(f, samples)
}
