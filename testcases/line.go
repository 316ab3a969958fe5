package testcases

var lineCases = concat(
	lineStar("step", "step-by-step", pt(0, 0)),
	lineStar("dda", "DDA", pt(0, 0)),
	lineStar("bresenham", "Bresenham line", pt(0, 0)),
	lineStar("castle", "Castle-Pitway", pt(0, 0)),
	lineStar("bresenham_offset", "Bresenham line", pt(-3, 2)),
	lineStar("castle_offset", "Castle-Pitway", pt(-3, 2)),
	[]TestCase{
		{
			Name:      "dda_long",
			Algorithm: "DDA",
			From:      pt(-13, -7),
			To:        pt(14, 6),
			Width:     256,
			Height:    128,
			Scale:     8,
		},
		{
			Name:      "step_long",
			Algorithm: "step-by-step",
			From:      pt(-13, -7),
			To:        pt(14, 6),
			Width:     256,
			Height:    128,
			Scale:     8,
		},
	},
)

func concat(lists ...[]TestCase) []TestCase {
	var res []TestCase
	for _, l := range lists {
		res = append(res, l...)
	}
	return res
}
