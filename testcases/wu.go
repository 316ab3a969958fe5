package testcases

var wuCases = append(lineStar("wu", "Wu", pt(0, 0)),
	TestCase{
		Name:      "wu_shallow",
		Algorithm: "Wu",
		From:      pt(-12, -2),
		To:        pt(13, 3),
		Width:     256,
		Height:    96,
		Scale:     8,
	},
	TestCase{
		Name:      "wu_steep",
		Algorithm: "Wu",
		From:      pt(1, -11),
		To:        pt(-2, 12),
		Width:     96,
		Height:    256,
		Scale:     8,
	},
)
