// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

// Package pie computes pie chart slice geometry.
//
// Slices tile the unit circle in input order, starting at angle 0 and
// running clockwise in SVG coordinates. Orienting the first slice at
// 12 o'clock is left to the drawing surface, which rotates the whole
// slice group by -90 degrees once.
package pie

import (
	"fmt"
	"math"
	"strings"
)

// Compute converts data into one SliceOutput per entry, in the same order.
//
// Empty data yields an empty result. Non-empty data must have a positive
// total, see Total for the per-value rules.
func Compute(data []SliceInput, precision int) (slices []SliceOutput, err error) {

	if precision < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPrecision, precision)
	}
	slices = make([]SliceOutput, 0, len(data))
	if len(data) == 0 {
		return slices, nil
	}

	var total float64
	if total, err = Total(data); err != nil {
		return nil, err
	}
	if total == 0 {
		return nil, ErrZeroTotal
	}

	var cumulative float64
	for _, in := range data {
		var s SliceOutput
		s, cumulative = nextSlice(in, total, cumulative, precision)
		slices = append(slices, s)
	}
	return slices, nil
}

// nextSlice places in right after cumulative and returns the new cumulative fraction.
// The unrounded fraction is accumulated so display rounding never drifts.
func nextSlice(in SliceInput, total, cumulative float64, precision int) (SliceOutput, float64) {

	fraction := in.Value / total
	start := coordinatesForFraction(cumulative)
	end := coordinatesForFraction(cumulative + fraction)
	largeArc := fraction > 0.5

	return SliceOutput{
		Label:         in.Label,
		Value:         in.Value,
		Color:         in.Color,
		Style:         in.Style,
		Percent:       Round(fraction*100, precision),
		StartFraction: cumulative,
		EndFraction:   cumulative + fraction,
		Start:         start,
		End:           end,
		LargeArc:      largeArc,
		Path:          pathData(start, end, largeArc),
	}, cumulative + fraction
}

func coordinatesForFraction(fraction float64) Point {
	return Point{
		X: math.Cos(2 * math.Pi * fraction),
		Y: math.Sin(2 * math.Pi * fraction),
	}
}

// pathData draws a wedge: move to start, arc of radius 1 to end with sweep 1, line to the center.
func pathData(start, end Point, largeArc bool) string {

	largeArcFlag := "0"
	if largeArc {
		largeArcFlag = "1"
	}
	parts := []string{
		"M", formatCoord(start.X), formatCoord(start.Y),
		"A", "1", "1", "0", largeArcFlag, "1", formatCoord(end.X), formatCoord(end.Y),
		"L", "0", "0",
	}
	return strings.Join(parts, " ")
}
