// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

package pie_test

import (
	"fmt"

	"piemarker/internal/pie"
)

func ExampleCompute() {
	slices, err := pie.Compute([]pie.SliceInput{
		{Label: "A", Value: 1, Color: "red"},
		{Label: "B", Value: 1, Color: "blue"},
		{Label: "C", Value: 2, Color: "green"},
	}, 0)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, s := range slices {
		fmt.Printf("%s %s%% [%.2f, %.2f] largeArc=%v\n", s.Label, pie.FormatNum(s.Percent, 0), s.StartFraction, s.EndFraction, s.LargeArc)
	}

	// Output:
	// A 25% [0.00, 0.25] largeArc=false
	// B 25% [0.25, 0.50] largeArc=false
	// C 50% [0.50, 1.00] largeArc=false
}
