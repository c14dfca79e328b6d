// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

package pie

import "errors"

var (
	// ErrInvalidValue is returned when a slice value is negative, NaN or infinite.
	ErrInvalidValue = errors.New("slice value must be a finite number >= 0")
	// ErrZeroTotal is returned when a non-empty data set sums to zero.
	ErrZeroTotal = errors.New("slice values sum to zero")
	// ErrInvalidPrecision is returned when the display precision is negative.
	ErrInvalidPrecision = errors.New("precision must be >= 0")
)
