package testcases

// exampleCases have hand-checked expected outputs.
var exampleCases = []TestCase{
	{
		Name:      "bresenham_5_2",
		Algorithm: "Bresenham line",
		From:      pt(0, 0),
		To:        pt(5, 2),
		Width:     128,
		Height:    64,
		Scale:     8,
		Want:      pts(0, 0, 1, 0, 2, 1, 3, 1, 4, 2, 5, 2),
	},
	{
		Name:      "castle_5_2",
		Algorithm: "Castle-Pitway",
		From:      pt(0, 0),
		To:        pt(5, 2),
		Width:     128,
		Height:    64,
		Scale:     8,
		Want:      pts(0, 0, 1, 0, 2, 1, 3, 1, 4, 2, 5, 2),
	},
	{
		Name:      "bresenham_2_5",
		Algorithm: "Bresenham line",
		From:      pt(0, 0),
		To:        pt(2, 5),
		Width:     64,
		Height:    128,
		Scale:     8,
		Want:      pts(0, 0, 0, 1, 1, 2, 1, 3, 2, 4, 2, 5),
	},
	{
		Name:      "step_5_2",
		Algorithm: "step-by-step",
		From:      pt(0, 0),
		To:        pt(5, 2),
		Width:     128,
		Height:    64,
		Scale:     8,
		Want:      pts(0, 0, 1, 0, 2, 1, 3, 1, 4, 2, 5, 2),
	},
	{
		Name:      "dda_reverse",
		Algorithm: "DDA",
		From:      pt(4, 2),
		To:        pt(0, 0),
		Width:     128,
		Height:    64,
		Scale:     8,
		Want:      pts(4, 2, 3, 2, 2, 1, 1, 1, 0, 0),
	},
	{
		Name:      "circle_radius_2",
		Algorithm: "Bresenham circle",
		From:      pt(0, 0),
		To:        pt(0, 2),
		Width:     64,
		Height:    64,
		Scale:     8,
		Want: pts(
			0, 2, 0, 2, 0, -2, 0, -2, 2, 0, -2, 0, 2, 0, -2, 0,
			1, 2, -1, 2, 1, -2, -1, -2, 2, 1, -2, 1, 2, -1, -2, -1,
			2, 1, -2, 1, 2, -1, -2, -1, 1, 2, -1, 2, 1, -2, -1, -2,
		),
	},
}
