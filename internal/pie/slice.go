// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

package pie

// SliceInput is one data entry of a pie chart.
// Slices are drawn in the order they are given.
type SliceInput struct {
	Label string  `json:"label,omitempty" yaml:"label,omitempty"`
	Value float64 `json:"value" yaml:"value"`
	Color string  `json:"color" yaml:"color"`
	// Style is appended verbatim as the style attribute of the slice path.
	Style string `json:"style,omitempty" yaml:"style,omitempty"`
}

// Point is a point on the unit circle.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// SliceOutput is the geometry computed for one SliceInput.
type SliceOutput struct {
	Label string  `json:"label,omitempty"`
	Value float64 `json:"value"`
	Color string  `json:"color"`
	Style string  `json:"style,omitempty"`

	// Percent is value/total*100 rounded to the configured precision.
	Percent float64 `json:"percent"`
	// StartFraction and EndFraction are the slice bounds as fractions of a full turn.
	StartFraction float64 `json:"startFraction"`
	EndFraction   float64 `json:"endFraction"`
	Start         Point   `json:"start"`
	End           Point   `json:"end"`
	LargeArc      bool    `json:"largeArc"`
	// Path is the SVG path data of the wedge, in the unrotated unit circle frame.
	Path string `json:"path"`
}
