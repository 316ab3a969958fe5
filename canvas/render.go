package canvas

import (
	"seehuhn.de/go/linedraw"
	"seehuhn.de/go/linedraw/testcases"
)

// RenderExample renders a test case into a grayscale buffer.
// The buffer is pre-initialized with zeros, in row-major order.
// Each byte represents coverage from 0 (transparent) to 255 (opaque).
// Grid, axes and labels are not drawn.
func RenderExample(tc testcases.TestCase, buf []byte, width, height, stride int) (linedraw.Result, error) {
	alg, err := linedraw.ParseAlgorithm(tc.Algorithm)
	if err != nil {
		return linedraw.Result{}, err
	}
	res := linedraw.Rasterize(alg, linedraw.Line{P1: tc.From, P2: tc.To})

	c := New(width, height, tc.Scale)
	c.Fill(res.Samples(), func(y, xMin int, coverage []float32) {
		row := buf[y*stride:]
		for i, v := range coverage {
			row[xMin+i] = byte(max(0, min(255, int(v*256))))
		}
	})
	return res, nil
}
