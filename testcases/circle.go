package testcases

var circleCases = []TestCase{
	{
		Name:      "radius_1",
		Algorithm: "Bresenham circle",
		From:      pt(0, 0),
		To:        pt(1, 0),
		Width:     64,
		Height:    64,
		Scale:     8,
	},
	{
		Name:      "radius_5",
		Algorithm: "Bresenham circle",
		From:      pt(0, 0),
		To:        pt(3, 4),
		Width:     128,
		Height:    128,
		Scale:     8,
	},
	{
		Name:      "radius_12_offset",
		Algorithm: "Bresenham circle",
		From:      pt(2, -3),
		To:        pt(2, 9),
		Width:     256,
		Height:    256,
		Scale:     6,
	},
	{
		// radius sqrt(50) is truncated to 7
		Name:      "radius_truncated",
		Algorithm: "Bresenham circle",
		From:      pt(-1, 1),
		To:        pt(4, 6),
		Width:     256,
		Height:    256,
		Scale:     8,
	},
}
