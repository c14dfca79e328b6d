// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

package pie

import (
	"fmt"
	"math"
	"strconv"
)

// Round rounds v to precision decimal places, halves away from zero.
func Round(v float64, precision int) float64 {

	if precision < 0 {
		precision = 0
	}
	pow := math.Pow(10, float64(precision))
	return math.Round(v*pow) / pow
}

// FormatNum returns the display string of v rounded to precision decimal places.
// Trailing zeros are dropped: FormatNum(25.0, 2) is "25".
func FormatNum(v float64, precision int) string {
	return strconv.FormatFloat(Round(v, precision), 'f', -1, 64)
}

// Total sums the slice values. Every value must be finite and non-negative.
func Total(data []SliceInput) (total float64, err error) {

	for i, d := range data {
		if math.IsNaN(d.Value) || math.IsInf(d.Value, 0) || d.Value < 0 {
			return 0, fmt.Errorf("%w: slice #%d has value %v", ErrInvalidValue, i, d.Value)
		}
		total += d.Value
	}
	if math.IsInf(total, 0) {
		return 0, fmt.Errorf("%w: total overflows", ErrInvalidValue)
	}
	return total, nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
