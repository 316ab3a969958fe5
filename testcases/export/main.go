// Command export writes the test cases, together with the samples computed
// for them, to JSON.  Run from the module root directory.
package main

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/linedraw"
	"seehuhn.de/go/linedraw/testcases"
)

func main() {
	if err := run("testdata/testcases.json"); err != nil {
		fmt.Fprintln(os.Stderr, "export:", err)
		os.Exit(1)
	}
}

type jsonTestCase struct {
	Name      string       `json:"name"`
	Algorithm string       `json:"algorithm"`
	From      [2]int       `json:"from"`
	To        [2]int       `json:"to"`
	Width     int          `json:"width"`
	Height    int          `json:"height"`
	Scale     float64      `json:"scale"`
	Samples   []jsonSample `json:"samples"`
	Trace     []string     `json:"trace,omitempty"`
}

type jsonSample struct {
	X        int     `json:"x"`
	Y        int     `json:"y"`
	Coverage float64 `json:"coverage"`
}

func run(fileName string) (err error) {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(category, tc)
			if err != nil {
				return err
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	if err := os.MkdirAll(filepath.Dir(fileName), 0755); err != nil {
		return err
	}
	f, err := os.Create(fileName)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func toJSON(category string, tc testcases.TestCase) (jsonTestCase, error) {
	alg, err := linedraw.ParseAlgorithm(tc.Algorithm)
	if err != nil {
		return jsonTestCase{}, fmt.Errorf("%s_%s: %w", category, tc.Name, err)
	}
	res := linedraw.Rasterize(alg, linedraw.Line{P1: tc.From, P2: tc.To})

	jtc := jsonTestCase{
		Name:      category + "_" + tc.Name,
		Algorithm: alg.String(),
		From:      [2]int{tc.From.X, tc.From.Y},
		To:        [2]int{tc.To.X, tc.To.Y},
		Width:     tc.Width,
		Height:    tc.Height,
		Scale:     tc.Scale,
		Trace:     res.Trace.Lines,
	}
	for _, s := range res.Samples() {
		jtc.Samples = append(jtc.Samples, jsonSample{X: s.X, Y: s.Y, Coverage: s.Coverage})
	}
	return jtc, nil
}
