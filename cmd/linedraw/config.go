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

package main

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/pflag"

	"seehuhn.de/go/linedraw"
)

// Config holds the settings of one run.  Values are read from an optional
// TOML file first; flags given on the command line take precedence.
type Config struct {
	Algorithm string  `toml:"algorithm"`
	From      []int   `toml:"from"`
	To        []int   `toml:"to"`
	Width     int     `toml:"width"`
	Height    int     `toml:"height"`
	Scale     float64 `toml:"scale"`
	Grid      bool    `toml:"grid"`
	Axes      bool    `toml:"axes"`
	Labels    bool    `toml:"labels"`
	PNG       string  `toml:"png"`
	PDF       string  `toml:"pdf"`
	Trace     bool    `toml:"trace"`
	Verbose   bool    `toml:"verbose"`

	// List requests the list of algorithm names instead of a rendering.
	List bool `toml:"-"`
}

func defaultConfig() Config {
	return Config{
		Algorithm: linedraw.BresenhamLine.String(),
		From:      []int{0, 0},
		To:        []int{5, 2},
		Width:     1000,
		Height:    700,
		Scale:     20,
		Grid:      true,
		Axes:      true,
		Labels:    true,
	}
}

// parseArgs builds the configuration from the command line arguments
// (without the program name).
func parseArgs(args []string) (Config, error) {
	cfg := defaultConfig()

	fs := pflag.NewFlagSet("linedraw", pflag.ContinueOnError)
	fs.SortFlags = false
	configFile := fs.String("config", "", "read settings from a TOML `file`")
	fs.StringVarP(&cfg.Algorithm, "algorithm", "a", cfg.Algorithm, "rasterization algorithm")
	fs.IntSliceVar(&cfg.From, "from", cfg.From, "first endpoint, or the circle centre, as `x,y`")
	fs.IntSliceVar(&cfg.To, "to", cfg.To, "second endpoint, or a point on the circle, as `x,y`")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "image width in pixels")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "image height in pixels")
	fs.Float64Var(&cfg.Scale, "scale", cfg.Scale, "size of one logical pixel in image pixels")
	fs.BoolVar(&cfg.Grid, "grid", cfg.Grid, "draw the grid")
	fs.BoolVar(&cfg.Axes, "axes", cfg.Axes, "draw the coordinate axes")
	fs.BoolVar(&cfg.Labels, "labels", cfg.Labels, "draw coordinate labels")
	fs.StringVar(&cfg.PNG, "png", cfg.PNG, "write the image to `file` in PNG format")
	fs.StringVar(&cfg.PDF, "pdf", cfg.PDF, "write the image to `file` in PDF format")
	fs.BoolVar(&cfg.Trace, "trace", cfg.Trace, "print the algorithm trace")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "enable debug logging")
	fs.BoolVar(&cfg.List, "list", false, "list the available algorithms")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	if *configFile != "" {
		fromFile := defaultConfig()
		if err := readConfig(*configFile, &fromFile); err != nil {
			return Config{}, err
		}
		fs.Visit(func(f *pflag.Flag) {
			overrideFlag(&fromFile, &cfg, f.Name)
		})
		fromFile.List = cfg.List
		cfg = fromFile
	}

	return cfg, cfg.validate()
}

// readConfig decodes a TOML file into cfg.  Unknown keys are an error.
func readConfig(fileName string, cfg *Config) error {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return err
	}
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("%s: %w", fileName, err)
	}
	return nil
}

// overrideFlag copies the setting of the named flag from src to dst.
func overrideFlag(dst, src *Config, name string) {
	switch name {
	case "algorithm":
		dst.Algorithm = src.Algorithm
	case "from":
		dst.From = src.From
	case "to":
		dst.To = src.To
	case "width":
		dst.Width = src.Width
	case "height":
		dst.Height = src.Height
	case "scale":
		dst.Scale = src.Scale
	case "grid":
		dst.Grid = src.Grid
	case "axes":
		dst.Axes = src.Axes
	case "labels":
		dst.Labels = src.Labels
	case "png":
		dst.PNG = src.PNG
	case "pdf":
		dst.PDF = src.PDF
	case "trace":
		dst.Trace = src.Trace
	case "verbose":
		dst.Verbose = src.Verbose
	}
}

var errInvalidPoint = errors.New("a point needs exactly two coordinates")

func (cfg *Config) validate() error {
	if cfg.List {
		return nil
	}
	if _, err := linedraw.ParseAlgorithm(cfg.Algorithm); err != nil {
		return err
	}
	if len(cfg.From) != 2 {
		return fmt.Errorf("from %v: %w", cfg.From, errInvalidPoint)
	}
	if len(cfg.To) != 2 {
		return fmt.Errorf("to %v: %w", cfg.To, errInvalidPoint)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("invalid image size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Scale <= 0 {
		return fmt.Errorf("invalid scale %g", cfg.Scale)
	}
	return nil
}

// Line returns the configured endpoints.  The configuration must be valid.
func (cfg *Config) Line() linedraw.Line {
	return linedraw.Line{
		P1: image.Pt(cfg.From[0], cfg.From[1]),
		P2: image.Pt(cfg.To[0], cfg.To[1]),
	}
}
