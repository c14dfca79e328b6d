// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

package pieicon

import (
	"fmt"

	"piemarker/internal/pie"
)

type config struct {
	// data is the ordered list of slices.
	data []pie.SliceInput
	// width and height are the pixel size of the rendered surface.
	width  int
	height int
	// iconCenter moves the center of the pie onto the surface origin.
	// Only useful when the icon is positioned by something other than a centering marker.
	iconCenter bool
	// precision is the number of decimals kept in slice percents.
	precision int
	// className is added to the surface class attribute.
	className string
}

func newConfig() *config {
	return &config{
		width:     defaultIconSize,
		height:    defaultIconSize,
		precision: defaultPrecision,
	}
}

const (
	// defaultIconSize is the default width and height of the icon in pixels.
	defaultIconSize int = 100
	// defaultPrecision is the default number of decimals of slice percents.
	defaultPrecision int = 2
)

type Option func(*config)

func WithData(data ...pie.SliceInput) Option {
	return func(c *config) {
		c.data = append([]pie.SliceInput(nil), data...)
	}
}

func WithIconSize(width, height int) Option {
	return func(c *config) {
		c.width = width
		c.height = height
	}
}

func WithIconCenter(center bool) Option {
	return func(c *config) {
		c.iconCenter = center
	}
}

func WithPrecision(precision int) Option {
	return func(c *config) {
		c.precision = precision
	}
}

func WithClassName(className string) Option {
	return func(c *config) {
		c.className = className
	}
}

func (c *config) validate() (err error) {

	if c.width <= 0 || c.height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidSize, c.width, c.height)
	}
	if c.precision < 0 {
		return fmt.Errorf("%w: got %d", pie.ErrInvalidPrecision, c.precision)
	}
	if _, err = pie.Compute(c.data, c.precision); err != nil {
		return fmt.Errorf("%s: %w", "invalid icon data", err)
	}
	return nil
}
