package testcases

var degenerateCases = []TestCase{
	{Name: "step_point", Algorithm: "step-by-step", From: pt(0, 0), To: pt(0, 0), Want: pts(0, 0)},
	{Name: "dda_point", Algorithm: "DDA", From: pt(0, 0), To: pt(0, 0), Want: pts(0, 0)},
	{Name: "bresenham_point", Algorithm: "Bresenham line", From: pt(3, -2), To: pt(3, -2), Want: pts(3, -2)},
	{Name: "castle_point", Algorithm: "Castle-Pitway", From: pt(-4, 1), To: pt(-4, 1), Want: pts(-4, 1)},
	{Name: "wu_point", Algorithm: "Wu", From: pt(2, 2), To: pt(2, 2)},
	{Name: "circle_radius_0", Algorithm: "Bresenham circle", From: pt(1, 1), To: pt(1, 1), Want: pts(1, 1)},
}

func init() {
	for i := range degenerateCases {
		tc := &degenerateCases[i]
		tc.Width = 64
		tc.Height = 64
		tc.Scale = 8
	}
}
