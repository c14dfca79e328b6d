// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

package piemarker_test

import (
	"fmt"

	"piemarker/internal/marker"
	"piemarker/internal/pie"
	"piemarker/internal/pieicon"
	"piemarker/internal/piemarker"
	"piemarker/internal/svg"
)

func ExampleNew() {

	m, err := piemarker.New(marker.LatLng{Lat: 0, Lng: 0},
		piemarker.WithIconOptions(
			pieicon.WithIconSize(50, 50),
			pieicon.WithData(
				pie.SliceInput{Label: "yes", Value: 3, Color: "green"},
				pie.SliceInput{Label: "no", Value: 1, Color: "red"},
			),
		),
	)
	if err != nil {
		fmt.Println(err)
		return
	}

	pane := marker.NewPane(0, marker.LatLng{}, svg.Size{Width: 200, Height: 200})
	if err = m.AddTo(pane); err != nil {
		fmt.Println(err)
		return
	}
	placement, _ := pane.Placement(m.Icon())
	fmt.Println(placement.Position.X, placement.Position.Y, placement.ZIndex)
	for _, s := range m.PieIcon().Slices() {
		fmt.Printf("%s %s%%\n", s.Label, pie.FormatNum(s.Percent, 2))
	}
	// Output:
	// 75 75 75
	// yes 75%
	// no 25%
}
